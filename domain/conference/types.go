package conference

import "time"

// State enumerates the call states of a room's conference codec.
type State int

const (
	StateIdle State = iota
	StateDialing
	StateRinging
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDialing:
		return "dialing"
	case StateRinging:
		return "ringing"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Active reports whether a call is in progress or being set up.
func (s State) Active() bool { return s != StateIdle }

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface {
	Current() State
	RemoteParty() string
}
type CallControl interface {
	Dial(number string)
	Answer()
	Hangup()
}
type Observable interface {
	// AddListener registers l and returns a function that removes it.
	AddListener(l StateListener) (remove func())
}
type Lifecycle interface {
	Tick(now time.Time)
	Close()
}

// Source aggregates the call contract presenters depend on.
type Source interface {
	StateSource
	CallControl
	Observable
}
