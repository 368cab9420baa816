package sink

import "github.com/philipp01105/rtlog/core"

// Multi fans one record out to multiple sinks in registration order. A
// failure, or even a panic, in one sink must not prevent dispatch to the
// others, so every child call is isolated.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new fan-out sink.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Consume sends the record to every child sink, in order.
func (m *Multi) Consume(r *core.Record) {
	for _, s := range m.sinks {
		consumeIsolated(s, r)
	}
}

func consumeIsolated(s Sink, r *core.Record) {
	defer func() {
		// A panicking sink is a sink bug; the logging call must survive it.
		_ = recover()
	}()
	s.Consume(r)
}

// Close closes all child sinks and returns the last error.
func (m *Multi) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
