// Package fusion reports room state to a Fusion-style monitoring service
// over join-addressed sigs and applies the service's remote requests.
package fusion

import (
	"sync"
	"time"

	"github.com/soocke/roomview-go/core"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/mvp"
)

// Interface is the Fusion composition root for one room.
type Interface struct {
	views      *ViewFactory
	presenters *PresenterFactory

	closeOnce sync.Once
}

// New builds the views over t and every Fusion presenter, then queues one
// refresh of each so the service receives the initial state.
func New(r *room.Room, t Transport, c *core.Core) (*Interface, error) {
	views := NewViewFactory(t)
	presenters, err := NewPresenterFactory(r, views, c)
	if err != nil {
		return nil, err
	}
	for _, p := range presenters.Presenters() {
		p.RefreshAsync()
	}
	if c != nil && c.Logger != nil {
		c.Logger.Info("fusion interface ready", "room", r.Name(), "guid", r.GUID(), "presenters", len(presenters.Presenters()))
	}
	return &Interface{views: views, presenters: presenters}, nil
}

// Presenters returns the Fusion presenters.
func (i *Interface) Presenters() []mvp.Presenter { return i.presenters.Presenters() }

// Factory returns the presenter factory.
func (i *Interface) Factory() *PresenterFactory { return i.presenters }

// Tick advances time-based reporting.
func (i *Interface) Tick(now time.Time) {
	if i == nil {
		return
	}
	i.presenters.Call.Tick(now)
}

// Close closes every presenter. Later calls return nil.
func (i *Interface) Close() error {
	if i == nil {
		return nil
	}
	var err error
	i.closeOnce.Do(func() { err = i.presenters.Close() })
	return err
}
