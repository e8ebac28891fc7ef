package presenter

import (
	"errors"
	"sync"

	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"
)

var (
	ErrNoSource       = errors.New("presenter: no source to share")
	ErrNoDestinations = errors.New("presenter: no destination selected")
)

// Router narrows the room to what sharing needs.
type Router interface {
	Sources() []room.Source
	Destinations() []string
	Powered() bool
	Route(source int, destinations []int) error
}

// ShareMenuPresenter drives the share popup: the user toggles destinations
// and shares the current source to them.
type ShareMenuPresenter struct {
	*Popup[ShareMenuView]
	router    Router
	selection *model.Selection

	mu        sync.Mutex
	source    room.Source
	hasSource bool
}

func NewShareMenuPresenter(opts mvp.Options, host PopupHost, title string, router Router) *ShareMenuPresenter {
	p := &ShareMenuPresenter{router: router, selection: model.NewSelection(len(router.Destinations()))}
	p.Popup = NewPopup[ShareMenuView](opts, host, title, p)
	p.OnRender(p.render)
	p.OnAttach(func(v ShareMenuView) []mvp.Subscription {
		return []mvp.Subscription{
			v.OnSourcePressed(func(i int) {
				if err := p.SelectSource(i); err != nil {
					p.logError("select source", err)
				}
			}),
			v.OnDestinationPressed(func(i int) {
				if err := p.ToggleDestination(i); err != nil {
					p.logError("toggle destination", err)
				}
			}),
			v.OnShare(func() {
				if err := p.Share(); err != nil {
					p.logError("share", err)
				}
			}),
		}
	})
	return p
}

// SetSource sets the source that Share routes.
func (p *ShareMenuPresenter) SetSource(s room.Source) {
	p.mu.Lock()
	p.source, p.hasSource = s, true
	p.mu.Unlock()
	p.RefreshAsync()
}

// Source returns the source that Share routes.
func (p *ShareMenuPresenter) Source() (room.Source, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source, p.hasSource
}

// SelectSource makes source i the one Share routes.
func (p *ShareMenuPresenter) SelectSource(i int) error {
	srcs := p.router.Sources()
	if err := mvp.CheckIndex("source", i, len(srcs)); err != nil {
		return err
	}
	p.SetSource(srcs[i])
	return nil
}

// ToggleDestination flips destination i in the pending selection.
func (p *ShareMenuPresenter) ToggleDestination(i int) error {
	if _, err := p.selection.Toggle(i); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// SelectedDestinations returns the pending selection.
func (p *ShareMenuPresenter) SelectedDestinations() []int { return p.selection.Indices() }

// Share routes the source to the selected destinations and clears the
// selection on success.
func (p *ShareMenuPresenter) Share() error {
	src, ok := p.Source()
	if !ok {
		return ErrNoSource
	}
	dests := p.selection.Indices()
	if len(dests) == 0 {
		return ErrNoDestinations
	}
	if err := p.router.Route(src.Index, dests); err != nil {
		return err
	}
	p.selection.Reset(len(p.router.Destinations()))
	p.Refresh()
	return nil
}

func (p *ShareMenuPresenter) render(v ShareMenuView) {
	src, ok := p.Source()
	name := ""
	if ok {
		name = src.Name
	}
	v.SetSourceName(name)
	srcs := p.router.Sources()
	srcLabels := make([]string, len(srcs))
	for i, s := range srcs {
		srcLabels[i] = s.Name
	}
	v.SetSourceLabels(srcLabels)
	for i, s := range srcs {
		if err := v.SetSourceSelected(i, ok && s.Index == src.Index); err != nil {
			p.logError("source selected", err)
		}
	}
	labels := p.router.Destinations()
	v.SetDestinationLabels(labels)
	for i := range labels {
		if err := v.SetDestinationSelected(i, p.selection.Selected(i)); err != nil {
			p.logError("destination selected", err)
		}
	}
	v.SetShareEnabled(ok && p.router.Powered() && len(p.selection.Indices()) > 0)
}

func (p *ShareMenuPresenter) logError(msg string, err error) {
	if l := p.Logger(); l != nil {
		l.Error(msg, "error", err)
	}
}
