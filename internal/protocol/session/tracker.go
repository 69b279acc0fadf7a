package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/danmuck/ghostwire/internal/observability"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
)

var (
	ErrUnknownRequest   = errors.New("session: response for unknown request")
	ErrMethodMismatch   = errors.New("session: response method does not match request")
	ErrDuplicateRequest = errors.New("session: request id already pending")
)

// PendingRequest tracks one request awaiting its response.
type PendingRequest struct {
	RequestID string
	Method    string
	Kind      packet.Kind
	SentAt    time.Time
	Deadline  time.Time
}

// Tracker stores outstanding requests by request id. It is safe for
// concurrent use.
type Tracker struct {
	mu    sync.RWMutex
	items map[string]PendingRequest
}

func NewTracker() *Tracker {
	return &Tracker{
		items: make(map[string]PendingRequest),
	}
}

// Track records req as sent at now. A zero timeout never expires.
func (t *Tracker) Track(req *packet.Packet, now time.Time, timeout time.Duration) (PendingRequest, error) {
	key := strings.TrimSpace(req.RequestID())
	if key == "" {
		return PendingRequest{}, fmt.Errorf("session: request without request id")
	}
	item := PendingRequest{
		RequestID: key,
		Method:    req.Method(),
		Kind:      req.Kind(),
		SentAt:    now,
	}
	if timeout > 0 {
		item.Deadline = now.Add(timeout)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[key]; ok {
		return PendingRequest{}, fmt.Errorf("%w: %s", ErrDuplicateRequest, key)
	}
	t.items[key] = item
	observability.AddPendingRequests(1)
	return item, nil
}

// Resolve matches resp to its pending request and removes it. A response
// whose method differs from the request stays unmatched and the request
// remains pending.
func (t *Tracker) Resolve(resp *packet.Packet) (PendingRequest, error) {
	key := strings.TrimSpace(resp.RequestID())
	t.mu.Lock()
	defer t.mu.Unlock()
	item, ok := t.items[key]
	if !ok {
		return PendingRequest{}, fmt.Errorf("%w: %s", ErrUnknownRequest, key)
	}
	if item.Method != resp.Method() {
		return PendingRequest{}, fmt.Errorf("%w: sent %q, got %q", ErrMethodMismatch, item.Method, resp.Method())
	}
	delete(t.items, key)
	observability.AddPendingRequests(-1)
	return item, nil
}

// Expire removes and returns every request whose deadline is before now.
func (t *Tracker) Expire(now time.Time) []PendingRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []PendingRequest
	for key, item := range t.items {
		if item.Deadline.IsZero() || !item.Deadline.Before(now) {
			continue
		}
		out = append(out, item)
		delete(t.items, key)
	}
	if len(out) > 0 {
		observability.AddPendingRequests(-len(out))
	}
	sortPending(out)
	return out
}

// Cancel drops one pending request without resolving it.
func (t *Tracker) Cancel(requestID string) bool {
	key := strings.TrimSpace(requestID)
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[key]; !ok {
		return false
	}
	delete(t.items, key)
	observability.AddPendingRequests(-1)
	return true
}

// Forget drops every pending request, as when the connection closes.
func (t *Tracker) Forget() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.items)
	t.items = make(map[string]PendingRequest)
	if n > 0 {
		observability.AddPendingRequests(-n)
	}
	return n
}

func (t *Tracker) Get(requestID string) (PendingRequest, bool) {
	key := strings.TrimSpace(requestID)
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[key]
	return item, ok
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// List returns pending requests ordered by send time, then request id.
func (t *Tracker) List() []PendingRequest {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]PendingRequest, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item)
	}
	sortPending(out)
	return out
}

func sortPending(items []PendingRequest) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].SentAt.Equal(items[j].SentAt) {
			return items[i].SentAt.Before(items[j].SentAt)
		}
		return items[i].RequestID < items[j].RequestID
	})
}
