//go:build linux || darwin || freebsd || netbsd || openbsd

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// readMaxRSS returns the peak resident set size in bytes.
func readMaxRSS() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	rss := uint64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		rss *= 1024 // kilobytes everywhere but darwin
	}
	return rss, nil
}
