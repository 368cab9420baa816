package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNanos     atomic.Int64
)

// StartCoarseClock starts the background goroutine that caches the wall
// clock every millisecond. Pipelines that log from tight per-frame loops
// can opt in to read the cached value instead of paying time.Now per
// record. Safe to call multiple times; the goroutine is started exactly
// once and runs for the lifetime of the process. The facility itself never
// starts it; timestamping stays synchronous unless a caller asks for this.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseNanos.Store(time.Now().UnixNano())
		go func() {
			ticker := time.NewTicker(time.Millisecond)
			for range ticker.C {
				coarseNanos.Store(time.Now().UnixNano())
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. StartCoarseClock must
// have been called before using CoarseNow.
func CoarseNow() time.Time {
	return time.Unix(0, coarseNanos.Load())
}
