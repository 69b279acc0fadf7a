// Package server hosts a packet responder over TCP and a small admin HTTP
// surface for health and metrics.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/ghostwire/internal/observability"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/session"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
)

// MethodEnumerate lists the methods a responder answers, one String field
// per method.
const MethodEnumerate = "core_enumextcmd"

// Responder answers requests arriving on accepted connections. Requests for
// methods without a handler get ResultCallNotImplemented.
type Responder struct {
	cfg      session.Config
	handlers *HandlerRegistry
	logger   zerolog.Logger
	started  time.Time

	active atomic.Int64
	served atomic.Int64
}

func NewResponder(cfg session.Config) *Responder {
	r := &Responder{
		cfg:      cfg,
		handlers: NewHandlerRegistry(),
		logger:   observability.Logger("responder"),
		started:  time.Now(),
	}
	r.handlers.Register(MethodEnumerate, r.enumerate)
	return r
}

func (r *Responder) Handle(method string, h Handler) {
	r.handlers.Register(method, h)
}

func (r *Responder) Handlers() *HandlerRegistry {
	return r.handlers
}

func (r *Responder) enumerate(_, resp *packet.Packet) packet.ResultCode {
	for _, m := range r.handlers.Methods() {
		if err := resp.AddString(tlv.FieldString, m); err != nil {
			return packet.ResultInvalidData
		}
	}
	return packet.ResultSuccess
}

// Serve accepts connections until ctx is done or ln fails.
func (r *Responder) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	r.logger.Info().Str("addr", ln.Addr().String()).Msg("responder listening")
	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			unblock := context.AfterFunc(ctx, func() { conn.Close() })
			defer unblock()
			r.ServeConn(ctx, conn)
		}()
	}
}

// ServeConn runs one session over conn until the peer closes, the stream
// desynchronizes, or ctx is done. It does not close conn.
func (r *Responder) ServeConn(ctx context.Context, conn io.ReadWriter) error {
	r.active.Add(1)
	defer r.active.Add(-1)

	s := session.New(r.cfg, conn, conn)
	defer s.Pending().Forget()
	log := r.logger.With().Str("session_id", r.cfg.SessionID.String()).Logger()

	for ctx.Err() == nil {
		in, err := s.Receive()
		switch {
		case errors.Is(err, io.EOF):
			log.Debug().Msg("peer closed")
			return nil
		case errors.Is(err, session.ErrUnknownRequest), errors.Is(err, session.ErrMethodMismatch):
			continue
		case err != nil:
			log.Warn().Err(err).Msg("session ended")
			return err
		}
		if !in.Packet.Kind().IsRequest() {
			continue
		}
		if err := s.Send(r.dispatch(in.Packet)); err != nil {
			log.Warn().Err(err).Msg("send response failed")
			return err
		}
		r.served.Add(1)
	}
	return ctx.Err()
}

func (r *Responder) dispatch(req *packet.Packet) *packet.Packet {
	resp := req.CreateResponse()
	h, ok := r.handlers.Get(req.Method())
	if !ok {
		r.logger.Debug().Str("method", req.Method()).Msg("no handler")
		resp.SetResult(packet.ResultCallNotImplemented)
		return resp
	}
	resp.SetResult(h(req, resp))
	return resp
}

// Stats is a snapshot for the admin surface.
type Stats struct {
	ActiveSessions int64    `json:"active_sessions"`
	Served         int64    `json:"served"`
	Uptime         string   `json:"uptime"`
	Methods        []string `json:"methods"`
}

func (r *Responder) Stats() Stats {
	return Stats{
		ActiveSessions: r.active.Load(),
		Served:         r.served.Load(),
		Uptime:         time.Since(r.started).Round(time.Second).String(),
		Methods:        r.handlers.Methods(),
	}
}
