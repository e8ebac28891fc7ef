package model

import (
	"sync"
	"time"
)

// CallRecord is one connected call.
type CallRecord struct {
	Remote   string
	Start    time.Time
	Duration time.Duration
}

// CallLog follows the room's call as it connects and ends, keeping the
// running call and a bounded history of finished ones, newest first.
// Safe for concurrent use.
type CallLog struct {
	mu      sync.Mutex
	max     int
	active  bool
	current CallRecord
	history []CallRecord
	total   time.Duration
}

// NewCallLog keeps up to max finished calls. max <= 0 keeps none but still
// times the running call.
func NewCallLog(max int) *CallLog { return &CallLog{max: max} }

// Observe folds the call state seen at now into the log. remote is the far
// end as currently reported; the first non-empty value sticks to the call.
// When the observation ends a call, its record is returned.
func (l *CallLog) Observe(connected bool, remote string, now time.Time) (ended CallRecord, ok bool) {
	if l == nil {
		return CallRecord{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case connected && !l.active:
		l.active = true
		l.current = CallRecord{Remote: remote, Start: now}
	case connected:
		if l.current.Remote == "" {
			l.current.Remote = remote
		}
		l.current.Duration = now.Sub(l.current.Start)
	case l.active:
		l.active = false
		l.current.Duration = now.Sub(l.current.Start)
		l.total += l.current.Duration
		ended, ok = l.current, true
		if l.max > 0 {
			l.history = append([]CallRecord{ended}, l.history...)
			if len(l.history) > l.max {
				l.history = l.history[:l.max]
			}
		}
		l.current = CallRecord{}
	}
	return ended, ok
}

// Current returns the running call, if any.
func (l *CallLog) Current() (CallRecord, bool) {
	if l == nil {
		return CallRecord{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.active
}

// Recent returns finished calls, newest first.
func (l *CallLog) Recent() []CallRecord {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]CallRecord(nil), l.history...)
}

// Total is the connected time of every observed call, the running one
// included.
func (l *CallLog) Total() time.Duration {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active {
		return l.total + l.current.Duration
	}
	return l.total
}

func (l *CallLog) Active() bool {
	_, ok := l.Current()
	return ok
}
