package view

import (
	"log/slog"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/ui/mvp"
	"github.com/soocke/roomview-go/ui/presenter"
	"github.com/soocke/roomview-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Panel lays out the touch-panel simulator in the App window and hands its
// views to the presenter factory. Build must run on the Tk thread before any
// view is requested.
type Panel struct {
	cfg    config.PanelConfig
	logger *slog.Logger

	call    *callStatusView
	recent  *FrameWidget
	items   []*callItemView
	layout  *layoutView
	tv      *tvPresetsView
	share   *shareMenuView
	host    *popupHostView
	power   *powerView
	shareBt *ButtonWidget
}

func NewPanel(cfg config.PanelConfig, logger *slog.Logger) *Panel {
	return &Panel{cfg: cfg, logger: logger}
}

// Build constructs the layout. onExit runs when the Exit button is pressed.
func (p *Panel) Build(onExit func()) {
	row := 0
	section := func(title string) *FrameWidget {
		lbl := Label(Txt(title), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
		f := Frame()
		Grid(f, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
		row++
		return f
	}

	p.power = newPowerView(section("Power"))
	p.call = newCallStatusView(section("Call"))
	p.recent = section("Recent")
	p.layout = &layoutView{list: newButtonList("layout", section("Layout"))}
	tvFrame := section("TV")
	p.tv = newTvPresetsView(tvFrame)

	shareFrame := section("Share")
	p.share = newShareMenuView(p.cfg.ShareTitle)
	p.shareBt = shareFrame.Button(Txt(p.cfg.ShareTitle+"..."), Command(p.share.show))
	Grid(p.shareBt, In(shareFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))

	p.host = newPopupHostView(section("Popup"))
	// closing from either place is one user action
	p.share.onClosed = p.closePopup
	p.host.onClose = p.closePopup

	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(row), Column(1), Sticky("e"), Padx("0.4m"), Pady("0.4m"))
	p.power.onControls = p.setControlsEnabled
}

func (p *Panel) closePopup() {
	p.share.hide()
	p.host.closer.Raise()
}

func (p *Panel) setControlsEnabled(enabled bool) {
	p.layout.list.setEnabled(enabled)
	p.tv.list.setEnabled(enabled)
	p.shareBt.Configure(State(stateOf(enabled)))
}

func (p *Panel) CallStatusView() presenter.CallStatusView { return p.call }

func (p *Panel) ChildCallViews(count int) []presenter.CallItemView {
	for len(p.items) < count {
		p.items = append(p.items, newCallItemView(p.recent, len(p.items)))
	}
	out := make([]presenter.CallItemView, count)
	for i := range out {
		out[i] = p.items[i]
	}
	return out
}

func (p *Panel) LayoutView() presenter.LayoutView       { return p.layout }
func (p *Panel) TvPresetsView() presenter.TvPresetsView { return p.tv }
func (p *Panel) ShareMenuView() presenter.ShareMenuView { return p.share }
func (p *Panel) PopupHostView() presenter.PopupHostView { return p.host }
func (p *Panel) PowerView() presenter.PowerView         { return p.power }

type layoutView struct{ list *buttonList }

func (v *layoutView) SetLayoutLabels(labels []string) { v.list.setLabels(labels) }
func (v *layoutView) SetLayoutSelected(i int, selected bool) error {
	return v.list.setSelected(i, selected)
}
func (v *layoutView) OnLayoutPressed(fn func(int)) mvp.Subscription {
	return v.list.pressed.Subscribe(fn)
}

type tvPresetsView struct {
	list       *buttonList
	stationLbl *LabelWidget
}

func newTvPresetsView(frame *FrameWidget) *tvPresetsView {
	presets := frame.Frame()
	Grid(presets, In(frame), Row(0), Column(0), Sticky("w"))
	v := &tvPresetsView{list: newButtonList("preset", presets), stationLbl: frame.Label(Width(20), Anchor("w"))}
	Grid(v.stationLbl, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.4m"))
	return v
}

func (v *tvPresetsView) SetPresetLabels(labels []string) { v.list.setLabels(labels) }
func (v *tvPresetsView) SetPresetSelected(i int, selected bool) error {
	return v.list.setSelected(i, selected)
}
func (v *tvPresetsView) SetStationName(name string) { v.stationLbl.Configure(Txt(name)) }
func (v *tvPresetsView) OnPresetPressed(fn func(int)) mvp.Subscription {
	return v.list.pressed.Subscribe(fn)
}

// popupHostView shows which popup is open and offers to close it.
type popupHostView struct {
	titleLbl *TLabelWidget
	closeBtn *ButtonWidget
	closer   mvp.Signal
	onClose  func()
}

func newPopupHostView(frame *FrameWidget) *popupHostView {
	v := &popupHostView{titleLbl: frame.TLabel(Txt("<none>"), Width(16), Style(theme.StylePopupTitle))}
	v.closeBtn = frame.Button(Txt("Close"), Command(func() {
		if v.onClose != nil {
			v.onClose()
			return
		}
		v.closer.Raise()
	}))
	Grid(v.titleLbl, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	Grid(v.closeBtn, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	v.closeBtn.Configure(State("disabled"))
	return v
}

func (v *popupHostView) SetTitle(title string) {
	if title == "" {
		title = "<none>"
	}
	v.titleLbl.Configure(Txt(title))
}

func (v *popupHostView) SetOpen(open bool) { v.closeBtn.Configure(State(stateOf(open))) }

func (v *popupHostView) OnCloseRequested(fn func()) mvp.Subscription {
	return v.closer.Subscribe(fn)
}

type powerView struct {
	stateLbl   *LabelWidget
	toggle     mvp.Signal
	onControls func(bool)
}

func newPowerView(frame *FrameWidget) *powerView {
	v := &powerView{stateLbl: frame.Label(Txt("Off"), Width(6), Borderwidth(1), Relief("ridge"))}
	btn := frame.Button(Txt("Power"), Command(v.toggle.Raise))
	Grid(v.stateLbl, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	Grid(btn, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	return v
}

func (v *powerView) SetPowerState(on bool) {
	text := "Off"
	if on {
		text = "On"
	}
	v.stateLbl.Configure(Txt(text))
}

func (v *powerView) SetControlsEnabled(enabled bool) {
	if v.onControls != nil {
		v.onControls(enabled)
	}
}

func (v *powerView) OnPowerToggle(fn func()) mvp.Subscription { return v.toggle.Subscribe(fn) }

var _ presenter.ViewFactory = (*Panel)(nil)
