package core

import "sync/atomic"

// Filter is the process-wide maximum level threshold. It is the only shared
// mutable datum in the facility: every log call reads it, configuration
// occasionally writes it. Reads and writes go through a single atomic so a
// concurrent reader always observes a value some writer validly stored,
// never a torn intermediate. No ordering is guaranteed relative to log
// calls in flight on other threads; the threshold is eventually visible.
type Filter struct {
	max atomic.Int32
}

// NewFilter creates a Filter with the given initial threshold.
func NewFilter(f LevelFilter) *Filter {
	fl := &Filter{}
	fl.SetMax(f)
	return fl
}

// SetMax replaces the threshold. Out-of-range input is clamped to the
// nearest valid filter value rather than rejected.
func (fl *Filter) SetMax(f LevelFilter) {
	fl.max.Store(int32(f.Clamp()))
}

// Max returns the current threshold. Never blocks.
func (fl *Filter) Max() LevelFilter {
	return LevelFilter(fl.max.Load())
}

// Admits is the hot-path check: one atomic load and one comparison.
func (fl *Filter) Admits(l Level) bool {
	return int32(l) <= fl.max.Load()
}
