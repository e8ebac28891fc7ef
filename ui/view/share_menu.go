package view

import (
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// shareMenuView is the share popup window. Labels and selection are kept
// while the window is closed and applied when it opens.
type shareMenuView struct {
	title string

	win      *ToplevelWidget
	list     *buttonList
	srcList  *buttonList
	srcLbl   *LabelWidget
	shareBtn *ButtonWidget

	source   string
	dests    *model.LabelSet
	sources  *model.LabelSet
	canShare bool

	visibility mvp.Event[bool]
	pressed    mvp.Event[int]
	srcPressed mvp.Event[int]
	share      mvp.Signal
	onClosed   func()
}

func newShareMenuView(title string) *shareMenuView {
	return &shareMenuView{
		title:   title,
		dests:   model.NewLabelSet("destination"),
		sources: model.NewLabelSet("source"),
	}
}

// restore replays cached labels and selection onto a freshly built list.
func restore(l *buttonList, s *model.LabelSet) {
	l.setLabels(s.Labels())
	for i := 0; i < s.Len(); i++ {
		_ = l.setSelected(i, s.Selected(i))
	}
}

func (v *shareMenuView) visible() bool { return v.win != nil }

// show opens the window and reports it visible. User action.
func (v *shareMenuView) show() {
	if v.win != nil {
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle(v.title)
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.userClose)
	v.win = win
	v.srcLbl = win.Label(Txt("Source: "+v.source), Anchor("w"))
	Grid(v.srcLbl, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	srcs := win.Frame()
	Grid(srcs, Row(1), Column(0), Sticky("we"))
	v.srcList = newButtonList("source", srcs)
	v.srcList.pressed.Subscribe(v.srcPressed.Raise)
	restore(v.srcList, v.sources)
	dests := win.Frame()
	Grid(dests, Row(2), Column(0), Sticky("we"))
	v.list = newButtonList("destination", dests)
	v.list.pressed.Subscribe(v.pressed.Raise)
	restore(v.list, v.dests)
	controls := win.Frame()
	Grid(controls, Row(3), Column(0), Sticky("we"))
	v.shareBtn = win.Button(Txt("Share"), Command(v.share.Raise))
	Grid(v.shareBtn, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.shareBtn.Configure(State(stateOf(v.canShare)))
	closeBtn := win.Button(Txt("Close"), Command(v.userClose))
	Grid(closeBtn, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.visibility.Raise(true)
}

// hide closes the window and reports it hidden.
func (v *shareMenuView) hide() {
	if v.win == nil {
		return
	}
	Destroy(v.win)
	v.win, v.list, v.srcList, v.srcLbl, v.shareBtn = nil, nil, nil, nil, nil
	v.visibility.Raise(false)
}

func (v *shareMenuView) userClose() {
	if v.onClosed != nil {
		v.onClosed()
		return
	}
	v.hide()
}

func (v *shareMenuView) OnVisibilityChanged(fn func(bool)) mvp.Subscription {
	return v.visibility.Subscribe(fn)
}

func (v *shareMenuView) SetSourceName(name string) {
	v.source = name
	if v.srcLbl != nil {
		v.srcLbl.Configure(Txt("Source: " + name))
	}
}

func (v *shareMenuView) SetSourceLabels(labels []string) {
	v.sources.SetLabels(labels)
	if v.srcList != nil {
		v.srcList.setLabels(labels)
	}
}

func (v *shareMenuView) SetSourceSelected(i int, selected bool) error {
	if err := v.sources.SetSelected(i, selected); err != nil {
		return err
	}
	if v.srcList != nil {
		return v.srcList.setSelected(i, selected)
	}
	return nil
}

func (v *shareMenuView) SetDestinationLabels(labels []string) {
	v.dests.SetLabels(labels)
	if v.list != nil {
		v.list.setLabels(labels)
	}
}

func (v *shareMenuView) SetDestinationSelected(i int, selected bool) error {
	if err := v.dests.SetSelected(i, selected); err != nil {
		return err
	}
	if v.list != nil {
		return v.list.setSelected(i, selected)
	}
	return nil
}

func (v *shareMenuView) SetShareEnabled(enabled bool) {
	v.canShare = enabled
	if v.shareBtn != nil {
		v.shareBtn.Configure(State(stateOf(enabled)))
	}
}

func (v *shareMenuView) OnDestinationPressed(fn func(int)) mvp.Subscription {
	return v.pressed.Subscribe(fn)
}

func (v *shareMenuView) OnSourcePressed(fn func(int)) mvp.Subscription {
	return v.srcPressed.Subscribe(fn)
}

func (v *shareMenuView) OnShare(fn func()) mvp.Subscription { return v.share.Subscribe(fn) }
