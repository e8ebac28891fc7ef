package debug

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// MemSample is one memory reading.
type MemSample struct {
	Goroutines int
	HeapAlloc  uint64
	HeapInuse  uint64
	HeapSys    uint64
	NumGC      uint32
	MaxRSS     uint64 // peak resident set size; 0 when the platform reading failed
}

// ReadMem takes a sample. The error reports only the peak RSS reading.
func ReadMem() (MemSample, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := MemSample{
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		HeapSys:    ms.HeapSys,
		NumGC:      ms.NumGC,
	}
	rss, err := readMaxRSS()
	s.MaxRSS = rss
	return s, err
}

// StartMemLogger logs peak RSS with Go heap stats every interval until ctx is
// done. RSS failures are logged once and suppressed.
func StartMemLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			s, err := ReadMem()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats",
				slog.Int("goroutines", s.Goroutines),
				slog.Uint64("heap_alloc", s.HeapAlloc),
				slog.Uint64("heap_inuse", s.HeapInuse),
				slog.Uint64("heap_sys", s.HeapSys),
				slog.Uint64("max_rss", s.MaxRSS),
				slog.Uint64("num_gc", uint64(s.NumGC)),
			)
		}
	}()
}
