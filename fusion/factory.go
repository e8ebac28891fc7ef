package fusion

import (
	"errors"
	"fmt"
	"sync"

	"github.com/soocke/roomview-go/core"
	"github.com/soocke/roomview-go/domain/dsp"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/mvp"
)

// PresenterFactory eagerly creates the Fusion presenters and binds them to
// the views of a ViewFactory. The presenter set is fixed after construction.
type PresenterFactory struct {
	RoomStatus *RoomStatusPresenter
	Source     *SourcePresenter
	Call       *CallPresenter
	Dsp        *DspStatusPresenter

	presenters []mvp.Presenter
	closeOnce  sync.Once
}

func NewPresenterFactory(r *room.Room, views *ViewFactory, c *core.Core) (*PresenterFactory, error) {
	if r == nil || views == nil {
		return nil, errors.New("fusion: presenter factory needs a room and views")
	}
	var device *dsp.Device
	if c != nil {
		device = c.DSP
	}
	f := &PresenterFactory{
		RoomStatus: NewRoomStatusPresenter(c.Options("fusion-room"), r),
		Source:     NewSourcePresenter(c.Options("fusion-source"), r),
		Call:       NewCallPresenter(c.Options("fusion-call"), r.Conference(), c.Clock()),
		Dsp:        NewDspStatusPresenter(c.Options("fusion-dsp"), device),
	}
	f.presenters = []mvp.Presenter{f.RoomStatus, f.Source, f.Call, f.Dsp}

	err := errors.Join(
		bind[RoomStatusView](f.RoomStatus, views.RoomStatusView()),
		bind[SourceView](f.Source, views.SourceView()),
		bind[CallView](f.Call, views.CallView()),
		bind[DspView](f.Dsp, views.DspView()),
	)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	return f, nil
}

func bind[V any](p mvp.ViewPresenter[V], v V) error {
	if err := p.SetView(v); err != nil {
		return fmt.Errorf("bind %s: %w", p.Name(), err)
	}
	return nil
}

// Presenters returns the presenters in construction order.
func (f *PresenterFactory) Presenters() []mvp.Presenter {
	return append([]mvp.Presenter(nil), f.presenters...)
}

// Close closes every presenter, continuing past failures, and returns the
// joined errors. Later calls return nil.
func (f *PresenterFactory) Close() error {
	if f == nil {
		return nil
	}
	var err error
	f.closeOnce.Do(func() {
		var errs []error
		for _, p := range f.presenters {
			if cerr := p.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", p.Name(), cerr))
			}
		}
		err = errors.Join(errs...)
	})
	return err
}
