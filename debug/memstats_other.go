//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd

package debug

import "errors"

func readMaxRSS() (uint64, error) { return 0, errors.New("rss not supported on this platform") }
