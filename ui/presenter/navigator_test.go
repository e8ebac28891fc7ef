package presenter

import (
	"errors"
	"testing"

	"github.com/soocke/roomview-go/ui/mvp"
)

func TestNavigateTo_RefreshesAndMarksCurrent(t *testing.T) {
	r := newTestRoom(t)
	layout := NewLayoutPresenter(mvp.Options{Name: "layout"}, r)
	tv := NewTvPresetsPresenter(mvp.Options{Name: "tv"}, r)
	if err := layout.SetView(&fakeLayoutView{}); err != nil {
		t.Fatalf("set view: %v", err)
	}
	nav := NewNavigator(tv, layout, nil)

	got, err := NavigateTo[*LayoutPresenter](nav)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if got != layout || nav.Current() != mvp.Presenter(layout) {
		t.Fatalf("navigated to wrong presenter")
	}
	if layout.Stats().Refreshes != 1 {
		t.Fatalf("expected one refresh, got %d", layout.Stats().Refreshes)
	}
}

func TestNavigateTo_Missing(t *testing.T) {
	nav := NewNavigator()
	if _, err := NavigateTo[*PowerPresenter](nav); !errors.Is(err, ErrNoPresenter) {
		t.Fatalf("expected ErrNoPresenter, got %v", err)
	}
	if nav.Current() != nil {
		t.Fatalf("current set on failure")
	}
	if _, err := Find[*PowerPresenter](nil); !errors.Is(err, ErrNoPresenter) {
		t.Fatalf("nil navigator: %v", err)
	}
}

func TestNavigateTo_UnboundIsNotReady(t *testing.T) {
	r := newTestRoom(t)
	layout := NewLayoutPresenter(mvp.Options{Name: "layout"}, r)
	nav := NewNavigator(layout)
	if _, err := NavigateTo[*LayoutPresenter](nav); !errors.Is(err, mvp.ErrNotBound) {
		t.Fatalf("expected ErrNotBound, got %v", err)
	}
	if nav.Current() != nil {
		t.Fatalf("unbound presenter became current")
	}
	if layout.Stats().Refreshes != 0 {
		t.Fatalf("unbound presenter refreshed")
	}
}
