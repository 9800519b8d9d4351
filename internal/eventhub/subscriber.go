package eventhub

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultBuffer is the queue size used when Subscribe is given a non-positive buffer.
const DefaultBuffer = 64

// Subscriber is one connection's handle on the hub.
type Subscriber struct {
	id     string
	events chan Event

	mu     sync.Mutex
	closed bool

	dropped atomic.Uint64
}

func newSubscriber(buffer int) *Subscriber {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Subscriber{
		id:     uuid.NewString(),
		events: make(chan Event, buffer),
	}
}

func (s *Subscriber) ID() string {
	return s.id
}

// Events is closed once the subscriber has been disconnected.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Dropped returns how many events were discarded because the queue was full.
func (s *Subscriber) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscriber) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type offerResult int

const (
	offerDelivered offerResult = iota
	offerDropped
	offerClosed
)

// offer enqueues without blocking.
func (s *Subscriber) offer(e Event) offerResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return offerClosed
	}

	select {
	case s.events <- e:
		return offerDelivered
	default:
		s.dropped.Add(1)
		return offerDropped
	}
}

func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}
