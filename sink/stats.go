package sink

import "sync/atomic"

// Stats tracks per-sink counters. The facility is fail-silent toward its
// callers, so these counters are the only place sink failures surface.
type Stats struct {
	// ConsumedTotal counts records made visible by the sink
	ConsumedTotal uint64
	// DroppedTotal counts records dropped without an attempt (e.g. the
	// daemon socket is absent or the record exceeds the wire budget)
	DroppedTotal uint64
	// WriteErrorTotal counts failed write attempts
	WriteErrorTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementConsumed atomically increments the consumed counter
func (s *Stats) IncrementConsumed() {
	atomic.AddUint64(&s.ConsumedTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementWriteError atomically increments the write-error counter
func (s *Stats) IncrementWriteError() {
	atomic.AddUint64(&s.WriteErrorTotal, 1)
}

// GetConsumed returns the consumed count
func (s *Stats) GetConsumed() uint64 {
	return atomic.LoadUint64(&s.ConsumedTotal)
}

// GetDropped returns the dropped count
func (s *Stats) GetDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedTotal)
}

// GetWriteErrors returns the write-error count
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrorTotal)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	ConsumedTotal   uint64
	DroppedTotal    uint64
	WriteErrorTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ConsumedTotal:   s.GetConsumed(),
		DroppedTotal:    s.GetDropped(),
		WriteErrorTotal: s.GetWriteErrors(),
	}
}

// StatsProvider is implemented by sinks that expose counters.
type StatsProvider interface {
	Stats() Snapshot
}
