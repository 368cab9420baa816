// Package core defines the shared types used across the rtlog facility.
//
// It provides the two level scales (Level for emitted records, LevelFilter
// for configured thresholds, which adds the Off state no record can have),
// the process-wide atomic Filter, the transient Record produced by one log
// call, and the wire codec used to forward records to the logd daemon.
//
// Record objects are pooled via sync.Pool so the emit path stays
// allocation-free once warm. The dispatcher gets a Record with GetRecord
// and returns it with PutRecord after the last sink has consumed it.
//
// The admission rule lives here: a record at Level l passes threshold f
// iff ordinal(l) <= ordinal(f), with Off below every level and Trace
// above every level.
package core
