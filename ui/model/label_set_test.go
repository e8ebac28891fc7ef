package model

import (
	"errors"
	"testing"

	"github.com/soocke/roomview-go/ui/mvp"
)

func TestLabelSet_SelectionFollowsLatestLabels(t *testing.T) {
	s := NewLabelSet("destination")
	if !s.SetLabels([]string{"Left", "Right", "Projector"}) {
		t.Fatalf("first labels should report a resize")
	}
	if err := s.SetSelected(2, true); err != nil {
		t.Fatalf("select 2: %v", err)
	}
	err := s.SetSelected(99, true)
	if !errors.Is(err, mvp.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err.Error() != "destination 99 of 3: mvp: index out of range" {
		t.Fatalf("unexpected error text %q", err)
	}
	if !s.Selected(2) || s.Selected(99) {
		t.Fatalf("selection changed by rejected index")
	}

	if s.SetLabels([]string{"A", "B", "C"}) {
		t.Fatalf("same count reported a resize")
	}
	if s.Selected(2) {
		t.Fatalf("new labels kept the old selection")
	}
	s.SetLabels([]string{"A"})
	if err := s.SetSelected(2, true); !errors.Is(err, mvp.ErrIndexOutOfRange) {
		t.Fatalf("index 2 accepted after shrinking to 1 label: %v", err)
	}
	if s.Label(0) != "A" || s.Label(1) != "" || s.Len() != 1 {
		t.Fatalf("labels = %v", s.Labels())
	}
}
