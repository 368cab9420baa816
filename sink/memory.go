package sink

import (
	"sync"

	"github.com/philipp01105/rtlog/core"
)

// Memory captures records in memory. It exists so tests can verify emitted
// records without real I/O; it is not intended for production use.
type Memory struct {
	mu      sync.Mutex
	records []core.Record
}

// NewMemory creates a new in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Consume stores a copy of the record. Copying matters: the dispatcher
// recycles the record after fan-out.
func (m *Memory) Consume(r *core.Record) {
	m.mu.Lock()
	m.records = append(m.records, *r)
	m.mu.Unlock()
}

// Records returns a copy of everything consumed so far.
func (m *Memory) Records() []core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of consumed records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Reset discards all captured records.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.records = m.records[:0]
	m.mu.Unlock()
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
