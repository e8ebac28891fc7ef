package presenter

import (
	"github.com/soocke/roomview-go/ui/mvp"
)

// PowerModel holds the panel's view of room power.
type PowerModel interface {
	On() bool
	SetOn(bool) bool
}

// LifecycleContract narrows what the presenter needs from the room.
type LifecycleContract interface {
	Start()
	Stop()
}

// PowerPresenter owns presentation logic for switching the room on and off.
// While the room is off every other control on the panel is disabled.
type PowerPresenter struct {
	*mvp.Base[PowerView]
	model   PowerModel
	service LifecycleContract
}

func NewPowerPresenter(opts mvp.Options, model PowerModel, service LifecycleContract) *PowerPresenter {
	p := &PowerPresenter{Base: mvp.NewBase[PowerView](opts), model: model, service: service}
	p.OnRender(p.render)
	p.OnAttach(func(v PowerView) []mvp.Subscription {
		return []mvp.Subscription{v.OnPowerToggle(p.Toggle)}
	})
	return p
}

// Enable starts the room. Idempotent.
func (p *PowerPresenter) Enable() {
	if p == nil || p.model == nil || p.service == nil {
		return
	}
	if p.model.On() { // already on
		return
	}
	p.service.Start()
	p.SyncPower(true)
}

// Disable stops the room. Idempotent.
func (p *PowerPresenter) Disable() {
	if p == nil || p.model == nil || p.service == nil {
		return
	}
	if !p.model.On() { // already off
		return
	}
	p.service.Stop()
	p.SyncPower(false)
}

// Toggle flips power delegating to Enable/Disable.
func (p *PowerPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.On() {
		p.Disable()
		return
	}
	p.Enable()
}

// SyncPower records power changed elsewhere, e.g. from Fusion, without
// driving the room.
func (p *PowerPresenter) SyncPower(on bool) {
	if p == nil || p.model == nil {
		return
	}
	if p.model.SetOn(on) {
		p.RefreshAsync()
	}
}

func (p *PowerPresenter) render(v PowerView) {
	on := p.model.On()
	v.SetPowerState(on)
	v.SetControlsEnabled(on)
}
