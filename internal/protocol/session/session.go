package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/ghostwire/internal/observability"
	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/frame"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/wire"
)

// ErrDesynchronized wraps every inbound decode failure. The stream position
// is unknown afterwards and the caller must close the connection.
var ErrDesynchronized = errors.New("session: stream desynchronized")

// Inbound is one received packet. Request is set when Packet is a response
// that matched a pending request.
type Inbound struct {
	Packet  *packet.Packet
	Request *PendingRequest
}

// Session sends and receives packets over a caller-owned reader/writer pair.
// Send and Receive may be called from different goroutines.
type Session struct {
	cfg     Config
	r       io.Reader
	w       io.Writer
	pending *Tracker
	logger  zerolog.Logger
	now     func() time.Time

	readMu sync.Mutex
	desync error

	writeMu sync.Mutex
}

func New(cfg Config, r io.Reader, w io.Writer) *Session {
	return &Session{
		cfg:     cfg,
		r:       r,
		w:       w,
		pending: NewTracker(),
		logger:  observability.Logger("session").With().Str("session_id", cfg.SessionID.String()).Logger(),
		now:     time.Now,
	}
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Pending() *Tracker {
	return s.pending
}

// Send encodes p for this session and writes it as one frame. Requests are
// tracked until their response arrives or they expire.
func (s *Session) Send(p *packet.Packet) error {
	buf, err := p.Encode(s.cfg.SessionID)
	if err != nil {
		return err
	}
	tracked := p.Kind().IsRequest()
	if tracked {
		if _, err := s.pending.Track(p, s.now(), s.cfg.RequestTimeout); err != nil {
			return err
		}
	}

	s.writeMu.Lock()
	err = frame.WriteFrame(s.w, buf, s.cfg.Limits)
	s.writeMu.Unlock()
	if err != nil {
		if tracked {
			s.pending.Cancel(p.RequestID())
		}
		return err
	}

	observability.RecordPacketSent(p.Kind().String(), len(buf))
	s.logger.Debug().
		Str("kind", p.Kind().String()).
		Str("method", p.Method()).
		Str("request_id", p.RequestID()).
		Msg("packet sent")
	return nil
}

// Receive reads and decodes the next packet. It returns io.EOF when the peer
// closes cleanly between frames and an ErrDesynchronized error, from then
// on, once any frame fails to decode.
//
// A response that matches no pending request, or matches one with a
// different method, is returned together with ErrUnknownRequest or
// ErrMethodMismatch so the caller can drop it.
func (s *Session) Receive() (Inbound, error) {
	s.readMu.Lock()
	defer s.readMu.Unlock()
	if s.desync != nil {
		return Inbound{}, s.desync
	}

	buf, err := frame.ReadFrame(s.r, s.cfg.Limits)
	if err != nil {
		if errors.Is(err, io.EOF) || !isProtocolError(err) {
			return Inbound{}, err
		}
		return Inbound{}, s.fail(err)
	}
	p, err := packet.DecodeFrom(wire.NewReader(buf), s.cfg.DecodeOptions())
	if err != nil {
		return Inbound{}, s.fail(err)
	}
	observability.RecordPacketReceived(p.Kind().String(), len(buf))

	in := Inbound{Packet: p}
	if !p.Kind().IsResponse() {
		return in, nil
	}
	req, err := s.pending.Resolve(p)
	if err != nil {
		s.logger.Warn().Err(err).Str("request_id", p.RequestID()).Msg("unmatched response")
		return in, err
	}
	in.Request = &req
	s.logger.Debug().
		Str("method", req.Method).
		Str("request_id", req.RequestID).
		Dur("rtt", s.now().Sub(req.SentAt)).
		Msg("response matched")
	return in, nil
}

// ExpireOverdue drops requests whose deadline has passed.
func (s *Session) ExpireOverdue() []PendingRequest {
	expired := s.pending.Expire(s.now())
	for _, item := range expired {
		s.logger.Warn().
			Str("method", item.Method).
			Str("request_id", item.RequestID).
			Msg("request timed out")
	}
	return expired
}

func (s *Session) fail(err error) error {
	observability.RecordDecodeFailure(observability.FailureReason(err))
	s.logger.Error().Err(err).Msg("inbound stream desynchronized")
	s.desync = fmt.Errorf("%w: %w", ErrDesynchronized, err)
	return s.desync
}

func isProtocolError(err error) bool {
	for _, target := range []error{
		protocol.ErrTruncated,
		protocol.ErrInvalidLength,
		protocol.ErrPayloadTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
