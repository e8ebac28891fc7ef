package model

import (
	"sync/atomic"
)

// PowerModel tracks whether the room system is on. The zero value is off and usable.
// Concurrency-safe via atomic Bool because panel callbacks and Fusion requests may race.
type PowerModel struct{ on atomic.Bool }

// On reports whether the system is currently on.
func (m *PowerModel) On() bool {
	if m == nil {
		return false
	}
	return m.on.Load()
}

// SetOn stores the power flag and reports whether it changed.
func (m *PowerModel) SetOn(b bool) bool {
	if m == nil {
		return false
	}
	return m.on.CompareAndSwap(!b, b)
}
