package core

import (
	"sync"
	"time"
)

// Record is the transient tuple produced by one log call. It is
// constructed, dispatched to the sinks, and discarded within the scope of
// that call; sinks only read it and never retain it past Consume.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string
	File    string
	Line    int
	Tgid    uint32
	Tid     uint32
	Message string
}

// recordPool recycles Record objects so the emit path stays allocation-free
// once warm.
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool.
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool. The dispatcher calls this after
// the last sink has consumed the record.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Drop string references so pooled records don't pin large messages.
	r.Tag = ""
	r.File = ""
	r.Message = ""
	recordPool.Put(r)
}
