package view

import (
	"time"

	"github.com/soocke/roomview-go/ui/mvp"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// Pump drains a QueueDispatcher on Tk's event loop thread. Presenters post
// refreshes from any goroutine; widgets are only touched here.
type Pump struct {
	queue    *mvp.QueueDispatcher
	interval time.Duration
	afterID  string
	stopped  bool
	onTick   func()
}

// NewPump returns a stopped pump. onTick, if set, runs after every drain.
func NewPump(queue *mvp.QueueDispatcher, interval time.Duration, onTick func()) *Pump {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Pump{queue: queue, interval: interval, onTick: onTick}
}

// Start schedules the first drain. Call from the Tk thread.
func (p *Pump) Start() {
	p.stopped = false
	p.schedule()
}

func (p *Pump) schedule() {
	// TclAfter keeps the drain on Tk's event loop thread.
	p.afterID = TclAfter(p.interval, p.run)
}

func (p *Pump) run() {
	if p.stopped {
		return
	}
	p.queue.Drain()
	if p.onTick != nil {
		p.onTick()
	}
	p.schedule()
}

// Stop cancels the pending drain. Call from the Tk thread.
func (p *Pump) Stop() {
	p.stopped = true
	if p.afterID != "" {
		TclAfterCancel(p.afterID)
		p.afterID = ""
	}
}
