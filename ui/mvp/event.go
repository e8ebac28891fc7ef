package mvp

import (
	"sync"
	"sync/atomic"
)

// Subscription is released with Close. Close is idempotent.
type Subscription interface {
	Close() error
}

// SubscriptionFunc adapts a release function into a Subscription. The
// function runs at most once.
func SubscriptionFunc(release func()) Subscription {
	return &subscription{release: release}
}

type subscription struct {
	once    sync.Once
	release func()
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
	return nil
}

// Noop is a Subscription with nothing to release. Views that never raise a
// given event return it.
var Noop Subscription = SubscriptionFunc(nil)

// Event fans a value out to its subscribers in subscription order.
// The zero value is ready to use and safe for concurrent use.
type Event[T any] struct {
	mu       sync.Mutex
	nextID   uint64
	handlers []*handler[T]
}

type handler[T any] struct {
	id   uint64
	fn   func(T)
	dead atomic.Bool
}

// Subscribe registers fn until the returned Subscription is closed.
func (e *Event[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Noop
	}
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, &handler[T]{id: id, fn: fn})
	e.mu.Unlock()
	return SubscriptionFunc(func() { e.remove(id) })
}

func (e *Event[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, h := range e.handlers {
		if h.id == id {
			h.dead.Store(true)
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Raise delivers v to a snapshot of the current subscribers. Handlers run on
// the caller's goroutine and may unsubscribe themselves. A subscriber closed
// while the snapshot is being delivered is skipped.
func (e *Event[T]) Raise(v T) {
	e.mu.Lock()
	hs := append([]*handler[T](nil), e.handlers...)
	e.mu.Unlock()
	for _, h := range hs {
		if h.dead.Load() {
			continue
		}
		h.fn(v)
	}
}

// Len returns the number of live subscribers.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}

// Signal is an Event without a payload, used for button presses.
type Signal struct{ ev Event[struct{}] }

// Subscribe registers fn until the returned Subscription is closed.
func (s *Signal) Subscribe(fn func()) Subscription {
	if fn == nil {
		return Noop
	}
	return s.ev.Subscribe(func(struct{}) { fn() })
}

// Raise notifies every subscriber once.
func (s *Signal) Raise() { s.ev.Raise(struct{}{}) }

// Len returns the number of live subscribers.
func (s *Signal) Len() int { return s.ev.Len() }
