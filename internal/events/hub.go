// Package events fans out shell events to the browser tabs of a session over
// websockets. Delivery is fire-and-forget: a slow client loses events rather
// than blocking the sender.
package events

import (
	"sync"
	"time"
)

// Event types.
const (
	TypeNavigate   = "navigate"
	TypeOpenModule = "open_module"
	TypeViewer     = "viewer"
)

// Event is one message pushed to clients.
type Event struct {
	Type      string `json:"type"`
	View      string `json:"view,omitempty"`
	ModuleID  *int   `json:"module_id,omitempty"`
	Target    string `json:"target,omitempty"`
	Transform string `json:"transform,omitempty"`
}

// bufferSize is the per-subscriber queue length before events are dropped.
const bufferSize = 16

// Hub routes events to subscribers by session id.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a listener for session. The returned cancel func must be
// called to release it; it closes the channel.
func (h *Hub) Subscribe(session string) (<-chan Event, func()) {
	ch := make(chan Event, bufferSize)

	h.mu.Lock()
	if h.subs[session] == nil {
		h.subs[session] = make(map[chan Event]struct{})
	}
	h.subs[session][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[session], ch)
			if len(h.subs[session]) == 0 {
				delete(h.subs, session)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Publish sends ev to every subscriber of session without blocking.
func (h *Hub) Publish(session string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[session] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// PublishAfter publishes ev once delay has elapsed.
func (h *Hub) PublishAfter(session string, ev Event, delay time.Duration) {
	if delay <= 0 {
		h.Publish(session, ev)
		return
	}
	time.AfterFunc(delay, func() { h.Publish(session, ev) })
}

// Subscribers returns the number of listeners for session.
func (h *Hub) Subscribers(session string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[session])
}
