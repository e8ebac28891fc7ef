package view

import (
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// buttonList is a row of buttons, one per label, with a sunken relief
// marking selected entries.
type buttonList struct {
	set     *model.LabelSet
	frame   *FrameWidget
	buttons []*ButtonWidget
	enabled bool
	pressed mvp.Event[int]
}

func newButtonList(what string, frame *FrameWidget) *buttonList {
	return &buttonList{set: model.NewLabelSet(what), frame: frame, enabled: true}
}

func (l *buttonList) setLabels(labels []string) {
	old := l.set.Labels()
	if !l.set.SetLabels(labels) {
		for i, b := range l.buttons {
			if old[i] != labels[i] {
				b.Configure(Txt(labels[i]))
			}
			b.Configure(Relief("raised"))
		}
		return
	}
	for _, b := range l.buttons {
		Destroy(b)
	}
	l.buttons = l.buttons[:0]
	for i, s := range labels {
		b := l.frame.Button(Txt(s), Width(12), Command(func() { l.pressed.Raise(i) }))
		Grid(b, In(l.frame), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		b.Configure(State(stateOf(l.enabled)))
		l.buttons = append(l.buttons, b)
	}
}

func (l *buttonList) setSelected(i int, selected bool) error {
	if err := l.set.SetSelected(i, selected); err != nil {
		return err
	}
	relief := "raised"
	if selected {
		relief = "sunken"
	}
	l.buttons[i].Configure(Relief(relief))
	return nil
}

func (l *buttonList) setEnabled(enabled bool) {
	l.enabled = enabled
	for _, b := range l.buttons {
		b.Configure(State(stateOf(enabled)))
	}
}

func stateOf(enabled bool) string {
	if enabled {
		return "normal"
	}
	return "disabled"
}
