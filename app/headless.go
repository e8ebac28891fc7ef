package app

import (
	"context"
	"errors"
	"time"
)

// Run drives the container's loop every tick until ctx is done. Fusion
// reporting and call timeouts run from here when no panel is shown.
func Run(ctx context.Context, c *Container) error {
	c.StartDebug(ctx)
	c.Logger.Info("room running", "room", c.Room.Name(), "guid", c.Room.GUID(), "fusion", c.Fusion != nil, "tick", c.TickInterval())
	t := time.NewTicker(c.TickInterval())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("room stopping")
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-t.C:
			c.Loop.Tick()
		}
	}
}
