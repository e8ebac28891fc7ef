package presenter

import (
	"sync"

	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/mvp"
)

// Tuner tunes the room's TV receiver.
type Tuner interface {
	Stations() []room.Station
	Tune(s room.Station) error
}

// TvPresetsPresenter offers tuner presets and shows the tuned station.
type TvPresetsPresenter struct {
	*mvp.Base[TvPresetsView]
	tuner   Tuner
	presets []room.Station

	mu      sync.Mutex
	station room.Station
}

func NewTvPresetsPresenter(opts mvp.Options, tuner Tuner) *TvPresetsPresenter {
	p := &TvPresetsPresenter{Base: mvp.NewBase[TvPresetsView](opts), tuner: tuner, presets: tuner.Stations()}
	p.OnRender(p.render)
	p.OnAttach(func(v TvPresetsView) []mvp.Subscription {
		return []mvp.Subscription{v.OnPresetPressed(func(i int) {
			if err := p.SelectPreset(i); err != nil && p.Logger() != nil {
				p.Logger().Error("select preset", "index", i, "error", err)
			}
		})}
	})
	return p
}

// SetStation records the tuned station, e.g. after the tuner reports a
// change made elsewhere.
func (p *TvPresetsPresenter) SetStation(s room.Station) {
	p.mu.Lock()
	p.station = s
	p.mu.Unlock()
	p.RefreshAsync()
}

// Station returns the tuned station.
func (p *TvPresetsPresenter) Station() room.Station {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.station
}

// SelectPreset tunes preset i.
func (p *TvPresetsPresenter) SelectPreset(i int) error {
	if err := mvp.CheckIndex("preset", i, len(p.presets)); err != nil {
		return err
	}
	st := p.presets[i]
	if err := p.tuner.Tune(st); err != nil {
		return err
	}
	p.SetStation(st)
	return nil
}

func (p *TvPresetsPresenter) render(v TvPresetsView) {
	station := p.Station()
	labels := make([]string, len(p.presets))
	for i, s := range p.presets {
		labels[i] = s.Name
	}
	v.SetPresetLabels(labels)
	for i, s := range p.presets {
		if err := v.SetPresetSelected(i, s == station); err != nil && p.Logger() != nil {
			p.Logger().Error("preset selected", "error", err)
		}
	}
	name := station.Name
	if station.Channel != "" {
		name += " (" + station.Channel + ")"
	}
	v.SetStationName(name)
}
