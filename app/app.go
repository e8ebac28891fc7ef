package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/ui/mvp"
	"github.com/soocke/roomview-go/ui/presenter"
	"github.com/soocke/roomview-go/ui/theme"
	"github.com/soocke/roomview-go/ui/view"
)

const pumpInterval = 50 * time.Millisecond

// panelApp runs the touch-panel simulator. Every presenter refresh is queued
// and drained on Tk's event loop thread.
type panelApp struct {
	c       *Container
	queue   *mvp.QueueDispatcher
	panel   *view.Panel
	factory *presenter.Factory
	pump    *view.Pump
	afterID string
}

// RunPanel builds the room with a panel on top and blocks until the window
// closes. onReady, if set, runs once the panel is bound.
func RunPanel(cfg *config.Config, logger *slog.Logger, onReady func(*Container)) error {
	queue := mvp.NewQueueDispatcher(logger.With("component", "tk-queue"))
	c, err := BuildContainer(cfg, logger, queue)
	if err != nil {
		return err
	}
	a := &panelApp{c: c, queue: queue}
	ctx, cancel := context.WithCancel(context.Background())
	c.StartDebug(ctx)

	tk.App.WmTitle(cfg.Panel.Title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", cfg.Panel.Width, cfg.Panel.Height))
	theme.SetDark(cfg.Panel.Dark)

	a.panel = view.NewPanel(cfg.Panel, logger)
	a.panel.Build(a.exitHandler)
	a.factory, err = presenter.NewFactory(c.Room, a.panel, c.Core)
	if err != nil {
		cancel()
		return errors.Join(err, c.Close())
	}
	if _, err := presenter.NavigateTo[*presenter.CallStatusPresenter](a.factory.Nav); err != nil {
		logger.Warn("no call status page", "error", err)
	}
	a.factory.RefreshAll()
	c.Loop.Tickers = append(c.Loop.Tickers, a.factory.Call)
	c.Loop.Schedule = a.scheduleTick

	a.pump = view.NewPump(queue, pumpInterval, nil)
	a.pump.Start()
	a.scheduleTick()
	if onReady != nil {
		onReady(c)
	}
	logger.Info("panel ready", "room", c.Room.Name(), "presenters", len(a.factory.Presenters()))

	tk.App.Wait()

	cancel()
	return errors.Join(a.factory.Close(), c.Close())
}

func (a *panelApp) scheduleTick() {
	// TclAfter keeps the loop on Tk's event loop thread.
	a.afterID = tk.TclAfter(a.c.TickInterval(), a.c.Loop.Tick)
}

func (a *panelApp) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
	}
	if a.pump != nil {
		a.pump.Stop()
	}
	// flush what presenters queued before the widgets go away
	a.queue.Drain()
	tk.Destroy(tk.App)
}
