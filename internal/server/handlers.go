package server

import (
	"sort"
	"sync"

	"github.com/danmuck/ghostwire/internal/protocol/packet"
)

// Handler answers one request. It fills resp, which already carries the
// request's method and request id, and returns the result code to report.
type Handler func(req, resp *packet.Packet) packet.ResultCode

// HandlerRegistry stores handlers by method name.
type HandlerRegistry struct {
	repo map[string]Handler
	mu   sync.RWMutex
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		repo: make(map[string]Handler),
	}
}

// Register adds or replaces the handler for method.
func (hr *HandlerRegistry) Register(method string, h Handler) {
	hr.mu.Lock()
	defer hr.mu.Unlock()
	hr.repo[method] = h
}

func (hr *HandlerRegistry) Get(method string) (Handler, bool) {
	hr.mu.RLock()
	defer hr.mu.RUnlock()
	h, ok := hr.repo[method]
	return h, ok
}

// Methods lists registered method names in sorted order.
func (hr *HandlerRegistry) Methods() []string {
	hr.mu.RLock()
	defer hr.mu.RUnlock()
	out := make([]string, 0, len(hr.repo))
	for name := range hr.repo {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
