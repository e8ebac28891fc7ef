package presenter

import "time"

// Ticker is advanced once per loop iteration.
type Ticker interface {
	Tick(now time.Time)
}

// Loop drives periodic updates of time-based presenters and domain actors
// and invokes a scheduler callback. The zero value is usable (methods are
// nil-safe).
type Loop struct {
	Tickers  []Ticker
	Schedule func()
	Now      func() time.Time
}

func NewLoop(schedule func(), tickers ...Ticker) *Loop {
	return &Loop{Tickers: tickers, Schedule: schedule, Now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	for _, t := range l.Tickers {
		if t != nil {
			t.Tick(now)
		}
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
