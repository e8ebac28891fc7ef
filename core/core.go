// Package core carries the shared services handed to presenter factories.
package core

import (
	"log/slog"
	"time"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/domain/dsp"
	"github.com/soocke/roomview-go/ui/mvp"
)

// Core is passed through presenter construction unchanged. Any field may be
// nil; presenters fall back to defaults.
type Core struct {
	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher mvp.Dispatcher
	DSP        *dsp.Device
	Now        func() time.Time
}

// Options returns presenter options named name, with the logger tagged by
// presenter.
func (c *Core) Options(name string) mvp.Options {
	if c == nil {
		return mvp.Options{Name: name}
	}
	logger := c.Logger
	if logger != nil {
		logger = logger.With("presenter", name)
	}
	return mvp.Options{Name: name, Dispatcher: c.Dispatcher, Logger: logger}
}

// Clock returns the configured time source or time.Now.
func (c *Core) Clock() func() time.Time {
	if c == nil || c.Now == nil {
		return time.Now
	}
	return c.Now
}

// Cfg returns the configuration, or defaults when unset.
func (c *Core) Cfg() *config.Config {
	if c == nil || c.Config == nil {
		return config.DefaultConfig()
	}
	return c.Config
}
