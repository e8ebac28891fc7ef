package presenter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/soocke/roomview-go/core"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"
)

// Factory eagerly builds the touch-panel presenters for one room, binds them
// to the views from a ViewFactory and owns their lifetime. The set is fixed
// after construction.
type Factory struct {
	Host   *PopupHostPresenter
	Call   *CallStatusPresenter
	Layout *LayoutPresenter
	TV     *TvPresetsPresenter
	Share  *ShareMenuPresenter
	Power  *PowerPresenter
	Nav    *Navigator

	presenters []mvp.Presenter
	removeRoom func()

	closeOnce sync.Once
}

func NewFactory(r *room.Room, views ViewFactory, c *core.Core) (*Factory, error) {
	if r == nil || views == nil {
		return nil, errors.New("presenter: factory needs a room and views")
	}
	cfg := c.Cfg()
	f := &Factory{}
	// the host first: popups get it injected
	f.Host = NewPopupHostPresenter(c.Options("popup-host"))
	f.Call = NewCallStatusPresenter(c.Options("call-status"), model.NewCallLog(cfg.Panel.RecentCalls), c.Clock())
	f.Layout = NewLayoutPresenter(c.Options("layout"), r)
	f.TV = NewTvPresetsPresenter(c.Options("tv-presets"), r)
	f.Share = NewShareMenuPresenter(c.Options("share-menu"), f.Host, cfg.Panel.ShareTitle, r)
	f.Power = NewPowerPresenter(c.Options("power"), &model.PowerModel{}, r)
	f.presenters = []mvp.Presenter{f.Host, f.Call, f.Layout, f.TV, f.Share, f.Power}
	f.Nav = NewNavigator(f.presenters...)

	binds := []error{
		bind[PopupHostView](f.Host, views.PopupHostView()),
		bind[CallStatusView](f.Call, views.CallStatusView()),
		bind[LayoutView](f.Layout, views.LayoutView()),
		bind[TvPresetsView](f.TV, views.TvPresetsView()),
		bind[ShareMenuView](f.Share, views.ShareMenuView()),
		bind[PowerView](f.Power, views.PowerView()),
	}
	if err := errors.Join(binds...); err != nil {
		return nil, errors.Join(err, f.Close())
	}
	f.Call.SetCallItems(views.ChildCallViews(cfg.Panel.RecentCalls))
	f.Call.SetConferenceSource(r.Conference())
	if srcs := r.Sources(); len(srcs) > 0 {
		f.Share.SetSource(srcs[0])
	}
	f.Power.SyncPower(r.Powered())
	f.TV.SetStation(r.Station())

	f.removeRoom = r.AddListener(func(ch room.Change) {
		switch ch {
		case room.ChangePower:
			f.Power.SyncPower(r.Powered())
			f.Share.RefreshAsync()
		case room.ChangeStation:
			f.TV.SetStation(r.Station())
		}
	})
	return f, nil
}

func bind[V any](p mvp.ViewPresenter[V], v V) error {
	if err := p.SetView(v); err != nil {
		return fmt.Errorf("bind %s: %w", p.Name(), err)
	}
	return nil
}

// Presenters returns the presenters in construction order.
func (f *Factory) Presenters() []mvp.Presenter {
	return append([]mvp.Presenter(nil), f.presenters...)
}

// RefreshAll queues a refresh of every presenter.
func (f *Factory) RefreshAll() {
	for _, p := range f.presenters {
		p.RefreshAsync()
	}
}

// Close closes every presenter in reverse construction order, continuing
// past failures. Later calls return nil.
func (f *Factory) Close() error {
	if f == nil {
		return nil
	}
	var err error
	f.closeOnce.Do(func() {
		if f.removeRoom != nil {
			f.removeRoom()
		}
		var errs []error
		for i := len(f.presenters) - 1; i >= 0; i-- {
			if cerr := f.presenters[i].Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", f.presenters[i].Name(), cerr))
			}
		}
		err = errors.Join(errs...)
	})
	return err
}
