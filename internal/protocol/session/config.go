package session

import (
	"time"

	"github.com/danmuck/ghostwire/internal/protocol/frame"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
)

// Config defines per-session codec and correlation settings.
type Config struct {
	SessionID      packet.SessionID
	RequestTimeout time.Duration
	Limits         frame.Limits
	MaxDepth       int
}

func DefaultConfig() Config {
	return Config{
		RequestTimeout: 30 * time.Second,
		Limits:         frame.DefaultLimits(),
		MaxDepth:       tlv.DefaultMaxDepth,
	}
}

// DecodeOptions returns the packet decode bounds for this session.
func (c Config) DecodeOptions() packet.DecodeOptions {
	return packet.DecodeOptions{
		MaxBodyBytes: c.Limits.MaxBodyBytes,
		MaxDepth:     c.MaxDepth,
	}
}
