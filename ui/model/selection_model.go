package model

import (
	"sort"
	"sync"

	"github.com/soocke/roomview-go/ui/mvp"
)

// Selection holds which of n items are selected, e.g. share destinations.
// The zero value has no items. Safe for concurrent use.
type Selection struct {
	mu       sync.Mutex
	n        int
	selected map[int]bool
}

func NewSelection(n int) *Selection {
	s := &Selection{}
	s.Reset(n)
	return s
}

// Reset sizes the selection to n items, all unselected.
func (s *Selection) Reset(n int) {
	if s == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	s.mu.Lock()
	s.n = n
	s.selected = make(map[int]bool)
	s.mu.Unlock()
}

// Toggle flips item i and returns its new state.
func (s *Selection) Toggle(i int) (bool, error) {
	if s == nil {
		return false, mvp.CheckIndex("item", i, 0)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := mvp.CheckIndex("item", i, s.n); err != nil {
		return false, err
	}
	if s.selected[i] {
		delete(s.selected, i)
		return false, nil
	}
	s.selected[i] = true
	return true, nil
}

// Selected reports whether item i is selected. Out of range is unselected.
func (s *Selection) Selected(i int) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected[i]
}

// Indices returns the selected items in ascending order.
func (s *Selection) Indices() []int {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	out := make([]int, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	s.mu.Unlock()
	sort.Ints(out)
	return out
}

// Len returns the number of items.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}
