package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/core"
	"github.com/soocke/roomview-go/debug"
	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/domain/dsp"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/fusion"
	"github.com/soocke/roomview-go/ui/mvp"
	"github.com/soocke/roomview-go/ui/presenter"
)

// Container assembles the domain, the Fusion link and the shared services.
// The panel, when shown, is built on top of it by App.
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	Conference *conference.FSM
	Room       *room.Room
	DSP        *dsp.Device
	Dispatcher mvp.Dispatcher
	Core       *core.Core
	Sigs       *fusion.SigTable
	Fusion     *fusion.Interface
	Loop       *presenter.Loop

	closers []func() error
}

// BuildContainer constructs every non-UI component. dispatcher may be nil
// for a SerialDispatcher owned by the container.
func BuildContainer(cfg *config.Config, logger *slog.Logger, dispatcher mvp.Dispatcher) (*Container, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg.EnsureRoomGUID() {
		logger.Warn("no fusion room_guid configured, generated one", "guid", cfg.Fusion.RoomGUID)
	}
	c := &Container{Config: cfg, Logger: logger}

	device, err := dsp.NewDeviceFromConfig(cfg.DSP)
	if err != nil {
		return nil, fmt.Errorf("dsp: %w", err)
	}
	c.DSP = device

	c.Conference = conference.NewFSM(logger.With("component", "conference"), time.Duration(cfg.DialTimeoutSeconds)*time.Second, nil)
	c.closers = append(c.closers, func() error { c.Conference.Close(); return nil })
	c.Room = room.New(cfg.Room, cfg.Fusion.RoomGUID, c.Conference, logger.With("component", "room"))

	if dispatcher == nil {
		sd := mvp.NewSerialDispatcher(logger.With("component", "dispatcher"))
		c.closers = append(c.closers, sd.Close)
		dispatcher = sd
	}
	c.Dispatcher = dispatcher
	c.Core = &core.Core{Config: cfg, Logger: logger, Dispatcher: dispatcher, DSP: device}

	c.Loop = presenter.NewLoop(nil, c.Conference)
	if cfg.Fusion.Enabled {
		c.Sigs = fusion.NewSigTable()
		transport := fusion.NewLoggingTransport(c.Sigs, logger.With("component", "fusion", "ipid", cfg.Fusion.IPID))
		fi, err := fusion.New(c.Room, transport, c.Core)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("fusion: %w", err), c.Close())
		}
		c.Fusion = fi
		c.closers = append(c.closers, fi.Close)
		c.Loop.Tickers = append(c.Loop.Tickers, fi)
	}
	return c, nil
}

// StartDebug starts the runtime loggers when cfg.Debug is set.
func (c *Container) StartDebug(ctx context.Context) {
	if !c.Config.Debug {
		return
	}
	debug.StartGoroutineLogger(ctx, 5*time.Second, c.Logger)
	debug.StartMemLogger(ctx, 5*time.Second, c.Logger)
}

// TickInterval is the configured loop period.
func (c *Container) TickInterval() time.Duration {
	return time.Duration(c.Config.TickMillis) * time.Millisecond
}

// Close releases components in reverse construction order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}
