package conference

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// FSM tracks a single call on the room codec. Events are processed on an
// internal goroutine; exported methods may be called from any goroutine.
type FSM struct {
	logger      *slog.Logger
	dialTimeout time.Duration
	now         func() time.Time

	state  atomic.Int32
	remote atomic.Pointer[string]

	// loop-owned
	since     time.Time
	listeners []listenerEntry
	nextID    uint64

	sendMu sync.RWMutex
	closed bool
	events chan interface{}
	done   chan struct{}
}

type listenerEntry struct {
	id uint64
	l  StateListener
}

type (
	evtDial           struct{ number string }
	evtIncoming       struct{ remote string }
	evtAnswer         struct{}
	evtRemoteAnswered struct{}
	evtHangup         struct{}
	evtTick           struct{ now time.Time }
	evtAddListener    struct {
		l     StateListener
		reply chan uint64
	}
	evtRemoveListener struct{ id uint64 }
	evtSync           struct{ reply chan struct{} }
)

// NewFSM constructs and starts the event loop. A zero dialTimeout disables
// dial and ring timeouts. now may be nil.
func NewFSM(logger *slog.Logger, dialTimeout time.Duration, now func() time.Time) *FSM {
	if now == nil {
		now = time.Now
	}
	f := &FSM{
		logger:      logger,
		dialTimeout: dialTimeout,
		now:         now,
		events:      make(chan interface{}, 64),
		done:        make(chan struct{}),
	}
	empty := ""
	f.remote.Store(&empty)
	go func() {
		defer close(f.done)
		f.loop()
	}()
	return f
}

func (f *FSM) loop() {
	for ev := range f.events {
		f.handle(ev)
	}
}

func (f *FSM) handle(ev interface{}) {
	defer func() {
		if r := recover(); r != nil && f.logger != nil {
			f.logger.Error("conference listener panic", "error", r)
		}
	}()
	switch e := ev.(type) {
	case evtAddListener:
		f.nextID++
		f.listeners = append(f.listeners, listenerEntry{id: f.nextID, l: e.l})
		e.reply <- f.nextID
	case evtRemoveListener:
		for i, le := range f.listeners {
			if le.id == e.id {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				break
			}
		}
	case evtDial:
		if f.Current() == StateIdle {
			f.setRemote(e.number)
			f.transition(StateDialing)
		}
	case evtIncoming:
		if f.Current() == StateIdle {
			f.setRemote(e.remote)
			f.transition(StateRinging)
		}
	case evtAnswer:
		if f.Current() == StateRinging {
			f.transition(StateConnected)
		}
	case evtRemoteAnswered:
		if f.Current() == StateDialing {
			f.transition(StateConnected)
		}
	case evtHangup:
		f.transition(StateIdle)
	case evtTick:
		f.handleTick(e.now)
	case evtSync:
		close(e.reply)
	}
}

func (f *FSM) setRemote(s string) { f.remote.Store(&s) }

func (f *FSM) transition(next State) {
	prev := f.Current()
	if prev == next {
		return
	}
	if next == StateIdle {
		f.setRemote("")
	}
	f.since = f.now()
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("conference state transition", "from", prev.String(), "to", next.String(), "remote", f.RemoteParty())
	}
	for _, le := range f.listeners {
		le.l(prev, next)
	}
}

func (f *FSM) handleTick(now time.Time) {
	if f.dialTimeout <= 0 {
		return
	}
	switch f.Current() {
	case StateDialing, StateRinging:
		if now.Sub(f.since) > f.dialTimeout {
			if f.logger != nil {
				f.logger.Info("call setup timed out", "state", f.Current().String(), "remote", f.RemoteParty())
			}
			f.transition(StateIdle)
		}
	}
}

func (f *FSM) send(ev interface{}) bool {
	f.sendMu.RLock()
	defer f.sendMu.RUnlock()
	if f.closed {
		return false
	}
	f.events <- ev
	return true
}

// Public API implements contracts
func (f *FSM) Current() State         { return State(f.state.Load()) }
func (f *FSM) RemoteParty() string    { return *f.remote.Load() }
func (f *FSM) Dial(number string)     { f.send(evtDial{number: number}) }
func (f *FSM) Incoming(remote string) { f.send(evtIncoming{remote: remote}) }
func (f *FSM) Answer()                { f.send(evtAnswer{}) }
func (f *FSM) RemoteAnswered()        { f.send(evtRemoteAnswered{}) }
func (f *FSM) Hangup()                { f.send(evtHangup{}) }
func (f *FSM) Tick(now time.Time)     { f.send(evtTick{now: now}) }

// AddListener registers l. The returned function removes it and may be
// called more than once.
func (f *FSM) AddListener(l StateListener) (remove func()) {
	reply := make(chan uint64, 1)
	if !f.send(evtAddListener{l: l, reply: reply}) {
		return func() {}
	}
	id := <-reply
	var once sync.Once
	return func() { once.Do(func() { f.send(evtRemoveListener{id: id}) }) }
}

// Sync blocks until every event sent before it has been handled.
func (f *FSM) Sync() {
	reply := make(chan struct{})
	if f.send(evtSync{reply: reply}) {
		<-reply
	}
}

// Close stops the event loop after pending events are handled.
func (f *FSM) Close() {
	f.sendMu.Lock()
	if f.closed {
		f.sendMu.Unlock()
		return
	}
	f.closed = true
	close(f.events)
	f.sendMu.Unlock()
	<-f.done
}

// Ensure contract satisfaction
var (
	_ Source    = (*FSM)(nil)
	_ Lifecycle = (*FSM)(nil)
)
