package config

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danmuck/ghostwire/internal/protocol/frame"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/session"
)

// Session converts a validated file config. An empty session id draws a
// random one.
func (c SessionConfig) Session() (session.Config, error) {
	cfg := session.DefaultConfig()
	if strings.TrimSpace(c.SessionID) == "" {
		cfg.SessionID = randomSessionID()
	} else {
		id, err := packet.ParseSessionID(c.SessionID)
		if err != nil {
			return session.Config{}, err
		}
		cfg.SessionID = id
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.RequestTimeout))
	if err != nil {
		return session.Config{}, err
	}
	cfg.RequestTimeout = d
	cfg.Limits = frame.Limits{MaxBodyBytes: c.MaxBodyBytes}
	cfg.MaxDepth = c.MaxDepth
	return cfg, nil
}

func randomSessionID() packet.SessionID {
	return packet.SessionID(uuid.New())
}
