// Package sink provides the Sink interface and its built-in
// implementations for dispatching finished records to output destinations.
//
// Sinks are fail-silent by contract: logging must never become an error
// path for the application, so write failures are swallowed at the sink
// boundary and only surface through the per-sink Stats counters.
//
// Built-in sinks:
//
//   - Console renders one line per record to the console stream, holding
//     an internal write lock only for the actual I/O.
//   - Logd forwards wire-encoded records to the host logging daemon over
//     a Unix seqpacket socket and degrades to a silent drop when the
//     daemon is unreachable.
//   - Multi fans a record out to several sinks in registration order with
//     per-child isolation.
//   - Memory captures records for tests.
//
// Sinks are registered once at initialization time and treated as shared
// immutable handles afterwards; each manages its own internal
// synchronization for the write operation.
package sink
