package mvp

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Dispatcher runs posted tasks without blocking the poster. Tasks posted
// from one goroutine run in post order.
type Dispatcher interface {
	Post(task func())
}

// SerialDispatcher runs tasks one at a time on its own goroutine, in FIFO
// order. The queue is unbounded so no posted refresh is ever dropped.
type SerialDispatcher struct {
	logger *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	closeOnce sync.Once
	done      chan struct{}
}

// NewSerialDispatcher starts the worker goroutine. Call Close to stop it.
func NewSerialDispatcher(logger *slog.Logger) *SerialDispatcher {
	d := &SerialDispatcher{logger: logger, done: make(chan struct{})}
	d.cond = sync.NewCond(&d.mu)
	go d.loop()
	return d
}

// Post enqueues task. Tasks posted after Close are dropped.
func (d *SerialDispatcher) Post(task func()) {
	if d == nil || task == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Debug("dispatcher closed, task dropped")
		}
		return
	}
	d.queue = append(d.queue, task)
	d.mu.Unlock()
	d.cond.Signal()
}

// Len returns the number of queued tasks, excluding the one running.
func (d *SerialDispatcher) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Wait blocks until every task posted before the call has run.
// It must not be called from inside a task.
func (d *SerialDispatcher) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}
	barrier := make(chan struct{})
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.queue = append(d.queue, func() { close(barrier) })
	d.mu.Unlock()
	d.cond.Signal()
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks, runs what is already queued and waits for the
// worker to exit. Safe to call more than once; not from inside a task.
func (d *SerialDispatcher) Close() error {
	if d == nil {
		return nil
	}
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		d.cond.Broadcast()
	})
	<-d.done
	return nil
}

func (d *SerialDispatcher) loop() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return
		}
		task := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()
		d.run(task)
	}
}

func (d *SerialDispatcher) run(task func()) {
	defer RecoverLog(d.logger, "dispatched task panic")
	task()
}

// RecoverLog recovers a panic and logs it with its stack. Use it deferred.
func RecoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}

// InlineDispatcher runs tasks immediately on the posting goroutine. Useful in
// tests and for transports that are already asynchronous.
type InlineDispatcher struct{}

func (InlineDispatcher) Post(task func()) {
	if task != nil {
		task()
	}
}

// QueueDispatcher holds tasks until Drain is called. A UI toolkit that must
// be touched from one thread drains it from that thread's event loop.
type QueueDispatcher struct {
	logger *slog.Logger

	mu    sync.Mutex
	queue []func()
}

func NewQueueDispatcher(logger *slog.Logger) *QueueDispatcher {
	return &QueueDispatcher{logger: logger}
}

func (d *QueueDispatcher) Post(task func()) {
	if d == nil || task == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, task)
	d.mu.Unlock()
}

// Drain runs the queued tasks in FIFO order, including tasks they post, and
// returns how many ran.
func (d *QueueDispatcher) Drain() int {
	if d == nil {
		return 0
	}
	n := 0
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		d.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, task := range batch {
			d.run(task)
			n++
		}
	}
}

// Len returns the number of queued tasks.
func (d *QueueDispatcher) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

func (d *QueueDispatcher) run(task func()) {
	defer RecoverLog(d.logger, "queued task panic")
	task()
}

var (
	_ Dispatcher = (*SerialDispatcher)(nil)
	_ Dispatcher = (*QueueDispatcher)(nil)
	_ Dispatcher = InlineDispatcher{}
)
