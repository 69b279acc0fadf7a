// Package frame moves whole obfuscated packets across byte streams. A packet
// is self-delimiting: the fixed header announces the body length, so a frame
// is just the header plus that many bytes.
package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
)

var (
	ErrShortHeader = fmt.Errorf("frame: short fixed header: %w", protocol.ErrTruncated)
	ErrShortBody   = fmt.Errorf("frame: short body: %w", protocol.ErrTruncated)
)

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxBodyBytes int
}

func DefaultLimits() Limits {
	return Limits{
		MaxBodyBytes: 8 * 1024 * 1024,
	}
}

// ReadFrame reads one packet from r. It returns io.EOF when r is exhausted
// cleanly between frames.
func ReadFrame(r io.Reader, limits Limits) ([]byte, error) {
	var fixed [packet.HeaderLen]byte
	n, err := io.ReadFull(r, fixed[:])
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, err
	}

	h, err := packet.ParseHeader(fixed[:])
	if err != nil {
		return nil, err
	}
	bodyLen, ok := h.TLVLen()
	if !ok {
		return nil, fmt.Errorf("frame: %w: body length %d", protocol.ErrInvalidLength, h.BodyLen)
	}
	if limits.MaxBodyBytes > 0 && bodyLen > limits.MaxBodyBytes {
		return nil, fmt.Errorf("frame: %w: %d > %d", protocol.ErrPayloadTooLarge, bodyLen, limits.MaxBodyBytes)
	}

	buf := make([]byte, packet.HeaderLen+bodyLen)
	copy(buf, fixed[:])
	if _, err := io.ReadFull(r, buf[packet.HeaderLen:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortBody
		}
		return nil, err
	}
	return buf, nil
}

// WriteFrame writes one encoded packet to w after checking it against limits.
func WriteFrame(w io.Writer, buf []byte, limits Limits) error {
	if len(buf) < packet.HeaderLen {
		return ErrShortHeader
	}
	h, err := packet.ParseHeader(buf)
	if err != nil {
		return err
	}
	bodyLen, ok := h.TLVLen()
	if !ok || packet.HeaderLen+bodyLen != len(buf) {
		return fmt.Errorf("frame: %w: header announces %d body bytes, have %d",
			protocol.ErrInvalidLength, h.BodyLen, len(buf)-packet.HeaderLen)
	}
	if limits.MaxBodyBytes > 0 && bodyLen > limits.MaxBodyBytes {
		return fmt.Errorf("frame: %w: %d > %d", protocol.ErrPayloadTooLarge, bodyLen, limits.MaxBodyBytes)
	}
	_, err = w.Write(buf)
	return err
}
