package model

import "github.com/soocke/roomview-go/ui/mvp"

// LabelSet is the label and selection state behind an index-addressed list
// view. Selection is addressed against the latest labels; setting new labels
// clears it. Not safe for concurrent use; views own one each.
type LabelSet struct {
	what     string
	labels   []string
	selected []bool
}

// NewLabelSet returns an empty set. what names an item in index errors.
func NewLabelSet(what string) *LabelSet { return &LabelSet{what: what} }

// SetLabels replaces the labels and reports whether the count changed.
func (s *LabelSet) SetLabels(labels []string) (resized bool) {
	resized = len(labels) != len(s.labels)
	s.labels = append(s.labels[:0], labels...)
	s.selected = make([]bool, len(labels))
	return resized
}

// SetSelected marks item i. Out of range returns an error wrapping
// mvp.ErrIndexOutOfRange and changes nothing.
func (s *LabelSet) SetSelected(i int, selected bool) error {
	if err := mvp.CheckIndex(s.what, i, len(s.labels)); err != nil {
		return err
	}
	s.selected[i] = selected
	return nil
}

func (s *LabelSet) Labels() []string { return append([]string(nil), s.labels...) }

func (s *LabelSet) Label(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	return s.labels[i]
}

func (s *LabelSet) Selected(i int) bool { return i >= 0 && i < len(s.selected) && s.selected[i] }

func (s *LabelSet) Len() int { return len(s.labels) }
