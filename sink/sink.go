package sink

import "github.com/philipp01105/rtlog/core"

// Sink is an output destination that consumes one finished Record and
// attempts to make it visible. Consume is best effort and fail-silent:
// implementations swallow their own I/O failures, account for them in
// their Stats, and never surface anything to the log caller. Sinks only
// read the record and must not retain it past the call.
type Sink interface {
	Consume(r *core.Record)

	// Close releases sink resources. Records consumed after Close are
	// dropped.
	Close() error
}
