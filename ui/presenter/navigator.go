package presenter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/soocke/roomview-go/ui/mvp"
)

var ErrNoPresenter = errors.New("presenter: no presenter registered")

// Navigator tracks the panel's presenters and which one is on screen.
type Navigator struct {
	mu         sync.Mutex
	presenters []mvp.Presenter
	current    mvp.Presenter
}

func NewNavigator(ps ...mvp.Presenter) *Navigator {
	n := &Navigator{}
	n.Register(ps...)
	return n
}

// Register adds presenters. Nil entries are ignored.
func (n *Navigator) Register(ps ...mvp.Presenter) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, p := range ps {
		if p != nil {
			n.presenters = append(n.presenters, p)
		}
	}
}

// Current returns the presenter last navigated to, or nil.
func (n *Navigator) Current() mvp.Presenter {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Navigator) setCurrent(p mvp.Presenter) {
	n.mu.Lock()
	n.current = p
	n.mu.Unlock()
}

func (n *Navigator) snapshot() []mvp.Presenter {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]mvp.Presenter(nil), n.presenters...)
}

// Find returns the first registered presenter of type T.
func Find[T mvp.Presenter](n *Navigator) (T, error) {
	var zero T
	if n == nil {
		return zero, ErrNoPresenter
	}
	for _, p := range n.snapshot() {
		if t, ok := p.(T); ok {
			return t, nil
		}
	}
	return zero, fmt.Errorf("%T: %w", zero, ErrNoPresenter)
}

// NavigateTo refreshes the presenter of type T and makes it current. A
// presenter with no view bound is not ready to be shown and yields
// mvp.ErrNotBound.
func NavigateTo[T mvp.Presenter](n *Navigator) (T, error) {
	p, err := Find[T](n)
	if err != nil {
		return p, err
	}
	if b, ok := any(p).(interface{ Bound() bool }); ok && !b.Bound() {
		return p, fmt.Errorf("%s: %w", p.Name(), mvp.ErrNotBound)
	}
	p.Refresh()
	n.setCurrent(p)
	return p, nil
}
