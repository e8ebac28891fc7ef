package presenter

import (
	"sync"
	"sync/atomic"

	"github.com/soocke/roomview-go/ui/mvp"
)

// PopupHost adopts a popup presenter as its current menu content.
type PopupHost interface {
	SetMenu(menu mvp.Presenter, title string)
}

// Popup is the lifecycle shared by popup presenters. It starts Hidden; when
// its view reports visible it hands its menu presenter and title to the
// injected host. Hiding takes no host action.
type Popup[V VisibilityView] struct {
	*mvp.Base[V]
	host    PopupHost
	title   string
	menu    mvp.Presenter
	visible atomic.Bool
}

// NewPopup returns a hidden popup. menu is what the host adopts; nil means
// the popup itself.
func NewPopup[V VisibilityView](opts mvp.Options, host PopupHost, title string, menu mvp.Presenter) *Popup[V] {
	p := &Popup[V]{Base: mvp.NewBase[V](opts), host: host, title: title, menu: menu}
	p.OnAttach(func(v V) []mvp.Subscription {
		// a new view has not been shown yet
		p.visible.Store(false)
		return []mvp.Subscription{v.OnVisibilityChanged(p.onVisibilityChanged)}
	})
	return p
}

func (p *Popup[V]) onVisibilityChanged(visible bool) {
	if !visible {
		p.visible.Store(false)
		return
	}
	if !p.visible.CompareAndSwap(false, true) {
		return
	}
	if p.host == nil {
		if l := p.Logger(); l != nil {
			l.Warn("popup shown without host", "title", p.title)
		}
		return
	}
	menu := p.menu
	if menu == nil {
		menu = p
	}
	p.host.SetMenu(menu, p.title)
}

// Title is the string the host shows for this popup.
func (p *Popup[V]) Title() string { return p.title }

// Visible reports whether the last visibility event was true.
func (p *Popup[V]) Visible() bool { return p.visible.Load() }

// PopupHostPresenter hosts whichever popup most recently became visible.
type PopupHostPresenter struct {
	*mvp.Base[PopupHostView]

	mu    sync.Mutex
	menu  mvp.Presenter
	title string
}

func NewPopupHostPresenter(opts mvp.Options) *PopupHostPresenter {
	p := &PopupHostPresenter{Base: mvp.NewBase[PopupHostView](opts)}
	p.OnRender(p.render)
	p.OnAttach(func(v PopupHostView) []mvp.Subscription {
		return []mvp.Subscription{v.OnCloseRequested(p.Dismiss)}
	})
	return p
}

// SetMenu makes menu the current content and refreshes both.
func (p *PopupHostPresenter) SetMenu(menu mvp.Presenter, title string) {
	if p == nil || menu == nil {
		return
	}
	p.mu.Lock()
	p.menu = menu
	p.title = title
	p.mu.Unlock()
	if l := p.Logger(); l != nil {
		l.Debug("popup adopted", "menu", menu.Name(), "title", title)
	}
	p.Refresh()
	menu.RefreshAsync()
}

// Dismiss clears the current content.
func (p *PopupHostPresenter) Dismiss() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.menu = nil
	p.title = ""
	p.mu.Unlock()
	p.Refresh()
}

// Menu returns the current content and its title.
func (p *PopupHostPresenter) Menu() (mvp.Presenter, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.menu, p.title
}

func (p *PopupHostPresenter) render(v PopupHostView) {
	menu, title := p.Menu()
	v.SetTitle(title)
	v.SetOpen(menu != nil)
}

var _ PopupHost = (*PopupHostPresenter)(nil)
