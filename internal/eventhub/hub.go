package eventhub

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"apparel/internal/pkg/errs"
)

var ErrSubscriberClosed = errors.New("subscriber is disconnected")

// Stats is a snapshot of the hub counters.
type Stats struct {
	Rooms       int
	Subscribers int
	Published   uint64
	Delivered   uint64
	Dropped     uint64
}

// Hub routes events to the subscribers of a room.
//
// Lock order is hub then room. Publish holds only the room lock while fanning out, so
// publishing to different rooms proceeds in parallel.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]*room
	subscribers map[*Subscriber]map[string]struct{}
	closed      bool

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64

	now func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		rooms:       make(map[string]*room),
		subscribers: make(map[*Subscriber]map[string]struct{}),
		now:         time.Now,
	}
}

// Subscribe registers a new subscriber with a queue of buffer events. After Close the
// subscriber is returned already disconnected.
func (h *Hub) Subscribe(buffer int) *Subscriber {
	sub := newSubscriber(buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close()
		return sub
	}
	h.subscribers[sub] = make(map[string]struct{})
	return sub
}

// Join adds sub to a room. Joining a room twice is a no-op.
func (h *Hub) Join(sub *Subscriber, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("room")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	joined, ok := h.subscribers[sub]
	if !ok || sub.isClosed() {
		return ErrSubscriberClosed
	}
	if _, already := joined[key]; already {
		return nil
	}

	r, ok := h.rooms[key]
	if !ok {
		r = newRoom()
		h.rooms[key] = r
	}

	r.mu.Lock()
	r.members[sub] = struct{}{}
	r.mu.Unlock()

	joined[key] = struct{}{}
	return nil
}

// Leave removes sub from a room. Leaving a room the subscriber is not in is a no-op.
func (h *Hub) Leave(sub *Subscriber, key string) {
	key = strings.TrimSpace(key)

	h.mu.Lock()
	defer h.mu.Unlock()

	if joined, ok := h.subscribers[sub]; ok {
		delete(joined, key)
	}
	h.removeMemberLocked(sub, key)
}

// Disconnect removes sub from every room and closes its queue.
func (h *Hub) Disconnect(sub *Subscriber) {
	h.mu.Lock()
	joined := h.subscribers[sub]
	delete(h.subscribers, sub)
	for key := range joined {
		h.removeMemberLocked(sub, key)
	}
	h.mu.Unlock()

	sub.close()
}

// Close disconnects every subscriber. It is called on shutdown so connection loops
// draining Events return.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		h.Disconnect(sub)
	}
}

// Rooms returns the rooms sub is a member of.
func (h *Hub) Rooms(sub *Subscriber) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := make([]string, 0, len(h.subscribers[sub]))
	for key := range h.subscribers[sub] {
		keys = append(keys, key)
	}
	return keys
}

// Publish marshals payload and offers it to every member of the room. It returns the
// number of subscribers the event was queued for. A room without members is not an error.
func (h *Hub) Publish(key, eventType string, payload any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return h.PublishRaw(key, eventType, raw), nil
}

// PublishRaw is Publish for an already encoded payload, as received from a relay.
func (h *Hub) PublishRaw(key, eventType string, payload json.RawMessage) int {
	h.published.Add(1)

	h.mu.RLock()
	r, ok := h.rooms[key]
	h.mu.RUnlock()
	if !ok {
		return 0
	}

	event := Event{
		Type:        eventType,
		Room:        key,
		Payload:     payload,
		PublishedAt: h.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delivered := 0
	for sub := range r.members {
		switch sub.offer(event) {
		case offerDelivered:
			delivered++
		case offerDropped:
			h.dropped.Add(1)
		case offerClosed:
			delete(r.members, sub)
		}
	}

	h.delivered.Add(uint64(delivered))
	return delivered
}

func (h *Hub) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return Stats{
		Rooms:       len(h.rooms),
		Subscribers: len(h.subscribers),
		Published:   h.published.Load(),
		Delivered:   h.delivered.Load(),
		Dropped:     h.dropped.Load(),
	}
}

// removeMemberLocked expects h.mu to be held for writing. Empty rooms are discarded.
func (h *Hub) removeMemberLocked(sub *Subscriber, key string) {
	r, ok := h.rooms[key]
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.members, sub)
	empty := len(r.members) == 0
	r.mu.Unlock()

	if empty {
		delete(h.rooms, key)
	}
}
