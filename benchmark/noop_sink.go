package benchmark

import (
	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/sink"
)

type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

func (noopSink) Consume(r *core.Record) {
	_ = len(r.Message)
}

func (noopSink) Close() error {
	return nil
}
