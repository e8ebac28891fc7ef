package presenter

import (
	"time"

	"github.com/soocke/roomview-go/ui/mvp"
)

// View contracts consumed by the panel presenters. Event methods subscribe a
// handler and return the subscription; setters push state and never raise
// the view's own events. Index-addressed setters are 0-based against the
// labels most recently passed to the matching Set...Labels call and return
// an error wrapping mvp.ErrIndexOutOfRange otherwise.

// VisibilityView reports when a page or popup is shown or hidden.
type VisibilityView interface {
	OnVisibilityChanged(fn func(visible bool)) mvp.Subscription
}

// CallStatusView shows the state of the room's call.
type CallStatusView interface {
	SetCallState(label string)
	SetRemoteParty(name string)
	SetCallDuration(d time.Duration)
	SetHangupEnabled(enabled bool)
	SetAnswerEnabled(enabled bool)
	OnHangup(fn func()) mvp.Subscription
	OnAnswer(fn func()) mvp.Subscription
}

// CallItemView is one row of the recent calls list.
type CallItemView interface {
	SetLabel(text string)
	SetVisible(visible bool)
}

// LayoutView offers the room's display layouts.
type LayoutView interface {
	SetLayoutLabels(labels []string)
	SetLayoutSelected(index int, selected bool) error
	OnLayoutPressed(fn func(index int)) mvp.Subscription
}

// TvPresetsView offers the TV tuner presets.
type TvPresetsView interface {
	SetPresetLabels(labels []string)
	SetPresetSelected(index int, selected bool) error
	SetStationName(name string)
	OnPresetPressed(fn func(index int)) mvp.Subscription
}

// ShareMenuView is the share popup: pick a source and the destinations to
// send it to.
type ShareMenuView interface {
	VisibilityView
	SetSourceName(name string)
	SetSourceLabels(labels []string)
	SetSourceSelected(index int, selected bool) error
	OnSourcePressed(fn func(index int)) mvp.Subscription
	SetDestinationLabels(labels []string)
	SetDestinationSelected(index int, selected bool) error
	SetShareEnabled(enabled bool)
	OnDestinationPressed(fn func(index int)) mvp.Subscription
	OnShare(fn func()) mvp.Subscription
}

// PopupHostView frames whichever popup is current.
type PopupHostView interface {
	SetTitle(title string)
	SetOpen(open bool)
	OnCloseRequested(fn func()) mvp.Subscription
}

// PowerView shows and toggles system power.
type PowerView interface {
	SetPowerState(on bool)
	SetControlsEnabled(enabled bool)
	OnPowerToggle(fn func()) mvp.Subscription
}

// ViewFactory supplies the panel's views. The factory owns their lifetime.
type ViewFactory interface {
	CallStatusView() CallStatusView
	ChildCallViews(count int) []CallItemView
	LayoutView() LayoutView
	TvPresetsView() TvPresetsView
	ShareMenuView() ShareMenuView
	PopupHostView() PopupHostView
	PowerView() PowerView
}
