// Package mvp holds the presenter lifecycle and view-binding contract shared
// by the touch-panel and Fusion presenters.
//
// A presenter owns at most one view at a time. Binding a view subscribes the
// presenter to the view's events; rebinding or closing releases those
// subscriptions first. Refresh pushes the presenter's state to the bound view
// and RefreshAsync queues a Refresh on the presenter's Dispatcher.
package mvp

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Presenter is the view-agnostic contract a navigation controller or
// presenter factory works with.
type Presenter interface {
	Name() string
	Refresh()
	RefreshAsync()
	Stats() Stats
	Close() error
}

// ViewPresenter is a Presenter bound to views of type V.
type ViewPresenter[V any] interface {
	Presenter
	View() (V, bool)
	SetView(V) error
}

// Stats counts lifecycle activity for instrumentation and tests.
type Stats struct {
	Refreshes     uint64 // renders pushed to a bound view
	AsyncRequests uint64 // RefreshAsync calls accepted
	Binds         uint64 // successful SetView calls
}

// Options configures a Base.
type Options struct {
	Name       string
	Dispatcher Dispatcher
	Logger     *slog.Logger
}

// Base implements the lifecycle part of ViewPresenter. Concrete presenters
// embed *Base[V] and register their render, attach and close hooks in their
// constructor.
//
// Refresh and SetView are serialized: a render never reaches a view that has
// already been detached.
type Base[V any] struct {
	name     string
	dispatch Dispatcher
	logger   *slog.Logger

	render  []func(V)
	attach  []func(V) []Subscription
	onClose []func() error

	mu     sync.Mutex
	view   V
	bound  bool
	subs   []Subscription
	closed bool

	refreshes atomic.Uint64
	async     atomic.Uint64
	binds     atomic.Uint64
}

// NewBase returns an unbound Base. A nil Dispatcher runs async refreshes
// inline.
func NewBase[V any](opts Options) *Base[V] {
	d := opts.Dispatcher
	if d == nil {
		d = InlineDispatcher{}
	}
	return &Base[V]{name: opts.Name, dispatch: d, logger: opts.Logger}
}

// OnRender adds a hook that pushes state to the bound view. Hooks run in
// registration order on every Refresh.
func (b *Base[V]) OnRender(fn func(V)) { b.render = append(b.render, fn) }

// OnAttach adds a hook that subscribes to a newly bound view's events.
func (b *Base[V]) OnAttach(fn func(V) []Subscription) { b.attach = append(b.attach, fn) }

// OnClose adds a hook released when the presenter closes, such as a domain
// listener.
func (b *Base[V]) OnClose(fn func() error) { b.onClose = append(b.onClose, fn) }

func (b *Base[V]) Name() string { return b.name }

func (b *Base[V]) Logger() *slog.Logger { return b.logger }

// View returns the bound view, or false when unbound.
func (b *Base[V]) View() (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view, b.bound
}

// Bound reports whether a view is bound.
func (b *Base[V]) Bound() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bound
}

// SetView detaches the current view, binds v and subscribes to its events.
// The old view's subscriptions are released before any new one is made.
func (b *Base[V]) SetView(v V) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	err := b.detachLocked()
	b.view = v
	b.bound = true
	for _, fn := range b.attach {
		b.subs = append(b.subs, fn(v)...)
	}
	b.binds.Add(1)
	return err
}

func (b *Base[V]) detachLocked() error {
	var errs []error
	for _, s := range b.subs {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.subs = nil
	var zero V
	b.view = zero
	b.bound = false
	return errors.Join(errs...)
}

// Refresh pushes presenter state to the bound view. Without a view it is a
// no-op.
func (b *Base[V]) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if !b.bound {
		if b.logger != nil {
			b.logger.Debug("refresh skipped, no view", "presenter", b.name)
		}
		return
	}
	for _, fn := range b.render {
		fn(b.view)
	}
	b.refreshes.Add(1)
}

// RefreshAsync queues a Refresh on the dispatcher and returns immediately.
func (b *Base[V]) RefreshAsync() {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return
	}
	b.async.Add(1)
	b.dispatch.Post(b.Refresh)
}

func (b *Base[V]) Stats() Stats {
	return Stats{
		Refreshes:     b.refreshes.Load(),
		AsyncRequests: b.async.Load(),
		Binds:         b.binds.Load(),
	}
}

// Closed reports whether Close has run.
func (b *Base[V]) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Close releases view subscriptions and runs close hooks. Every hook runs even
// when an earlier one fails. Later calls return nil.
func (b *Base[V]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	errs := []error{b.detachLocked()}
	hooks := b.onClose
	b.onClose = nil
	b.mu.Unlock()

	for _, fn := range hooks {
		errs = append(errs, fn())
	}
	return errors.Join(errs...)
}
