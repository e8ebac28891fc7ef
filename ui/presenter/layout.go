package presenter

import (
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/mvp"
)

// LayoutSource narrows the room to layout selection.
type LayoutSource interface {
	Layouts() []string
	Layout() int
	SelectLayout(i int) error
	AddListener(l room.Listener) (remove func())
}

// LayoutPresenter offers the room's display layouts and marks the active one.
type LayoutPresenter struct {
	*mvp.Base[LayoutView]
	room LayoutSource
}

func NewLayoutPresenter(opts mvp.Options, r LayoutSource) *LayoutPresenter {
	p := &LayoutPresenter{Base: mvp.NewBase[LayoutView](opts), room: r}
	p.OnRender(p.render)
	p.OnAttach(func(v LayoutView) []mvp.Subscription {
		return []mvp.Subscription{v.OnLayoutPressed(func(i int) {
			if err := p.room.SelectLayout(i); err != nil && p.Logger() != nil {
				p.Logger().Error("select layout", "index", i, "error", err)
			}
		})}
	})
	remove := r.AddListener(func(c room.Change) {
		if c == room.ChangeLayout {
			p.RefreshAsync()
		}
	})
	p.OnClose(func() error { remove(); return nil })
	return p
}

func (p *LayoutPresenter) render(v LayoutView) {
	labels := p.room.Layouts()
	v.SetLayoutLabels(labels)
	current := p.room.Layout()
	for i := range labels {
		if err := v.SetLayoutSelected(i, i == current); err != nil && p.Logger() != nil {
			p.Logger().Error("layout selected", "error", err)
		}
	}
}
