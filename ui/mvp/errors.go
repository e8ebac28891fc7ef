package mvp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBound is returned by operations that need a view when none is bound.
	ErrNotBound = errors.New("mvp: no view bound")
	// ErrClosed is returned once a presenter or dispatcher has been closed.
	ErrClosed = errors.New("mvp: closed")
	// ErrIndexOutOfRange marks an index-addressed setter called outside the
	// most recently supplied label sequence.
	ErrIndexOutOfRange = errors.New("mvp: index out of range")
)

// CheckIndex reports whether index addresses one of n labels. what names the
// addressed item in the error, e.g. "destination".
func CheckIndex(what string, index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%s %d of %d: %w", what, index, n, ErrIndexOutOfRange)
	}
	return nil
}
