package view

import (
	"fmt"
	"time"

	"github.com/soocke/roomview-go/ui/mvp"
	"github.com/soocke/roomview-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

type callStatusView struct {
	stateLbl    *TLabelWidget
	remoteLbl   *LabelWidget
	durationLbl *LabelWidget
	hangupBtn   *TButtonWidget
	answerBtn   *ButtonWidget
	hangup      mvp.Signal
	answer      mvp.Signal
}

func newCallStatusView(frame *FrameWidget) *callStatusView {
	v := &callStatusView{
		stateLbl:    TLabel(Txt("No Call"), Width(14), Style(theme.StyleCallLabel)),
		remoteLbl:   Label(Width(18), Anchor("w")),
		durationLbl: Label(Txt("00:00"), Width(8)),
	}
	v.answerBtn = Button(Txt("Answer"), Command(v.answer.Raise))
	v.hangupBtn = TButton(Txt("Hang Up"), Style(theme.StyleDangerButton), Command(v.hangup.Raise))
	Grid(v.stateLbl, In(frame), Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Grid(v.remoteLbl, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.4m"))
	Grid(v.durationLbl, In(frame), Row(0), Column(2), Sticky("w"), Padx("0.4m"))
	Grid(v.answerBtn, In(frame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Grid(v.hangupBtn, In(frame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	return v
}

func (v *callStatusView) SetCallState(label string)  { v.stateLbl.Configure(Txt(label)) }
func (v *callStatusView) SetRemoteParty(name string) { v.remoteLbl.Configure(Txt(name)) }

func (v *callStatusView) SetCallDuration(d time.Duration) {
	seconds := int(d.Seconds())
	min, sec := seconds/60, seconds%60
	v.durationLbl.Configure(Txt(fmt.Sprintf("%02d:%02d", min, sec)))
}

func (v *callStatusView) SetHangupEnabled(enabled bool) {
	v.hangupBtn.Configure(State(stateOf(enabled)))
}

func (v *callStatusView) SetAnswerEnabled(enabled bool) {
	v.answerBtn.Configure(State(stateOf(enabled)))
}

func (v *callStatusView) OnHangup(fn func()) mvp.Subscription { return v.hangup.Subscribe(fn) }
func (v *callStatusView) OnAnswer(fn func()) mvp.Subscription { return v.answer.Subscribe(fn) }

// callItemView is one row of the recent calls list. Hidden rows are blanked.
type callItemView struct {
	lbl     *LabelWidget
	label   string
	visible bool
}

func newCallItemView(frame *FrameWidget, row int) *callItemView {
	v := &callItemView{lbl: Label(Width(24), Anchor("w"))}
	Grid(v.lbl, In(frame), Row(row), Column(0), Sticky("w"), Padx("0.4m"))
	return v
}

func (v *callItemView) SetLabel(text string) {
	v.label = text
	v.apply()
}

func (v *callItemView) SetVisible(visible bool) {
	v.visible = visible
	v.apply()
}

func (v *callItemView) apply() {
	text := ""
	if v.visible {
		text = v.label
	}
	v.lbl.Configure(Txt(text))
}
