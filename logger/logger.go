package logger

import (
	"os"
	"runtime"
	"time"

	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/format"
	"github.com/philipp01105/rtlog/sink"
)

// Logger is the log entry point every call site funnels through. The sink
// set is immutable after construction; the level threshold is the one
// mutable datum and is atomic, so a Logger is safe for concurrent use from
// any number of goroutines without locking on the read path.
type Logger struct {
	filter      *core.Filter
	sink        sink.Sink // nil when no sink is registered
	tgid        uint32
	coarseClock bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	filter      core.LevelFilter
	sinks       []sink.Sink
	coarseClock bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		filter: core.InfoFilter, // Default threshold
	}
}

// WithMaxLevel sets the initial level threshold
func (b *Builder) WithMaxLevel(f core.LevelFilter) *Builder {
	b.filter = f
	return b
}

// WithSinks appends output sinks; dispatch follows registration order
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.sinks = append(b.sinks, sinks...)
	return b
}

// WithCoarseClock stamps records from the cached millisecond clock instead
// of calling time.Now per record. Enabling it starts the clock goroutine.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	var s sink.Sink
	switch len(b.sinks) {
	case 0:
		// No sinks: every admitted record is a cheap no-op.
	case 1:
		s = b.sinks[0]
	default:
		s = sink.NewMulti(b.sinks...)
	}
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		filter:      core.NewFilter(b.filter),
		sink:        s,
		tgid:        uint32(os.Getpid()),
		coarseClock: b.coarseClock,
	}
}

// SetMaxLevel replaces the level threshold. Safe to call concurrently with
// log calls from other goroutines; in-flight calls observe either the old
// or the new value.
func (l *Logger) SetMaxLevel(f core.LevelFilter) {
	l.filter.SetMax(f)
}

// MaxLevel returns the current level threshold. Never blocks.
func (l *Logger) MaxLevel() core.LevelFilter {
	return l.filter.Max()
}

// Log emits one record with an explicitly supplied call site. It is the
// single function all per-level helpers funnel through: the filter check
// runs before any formatting or allocation, so a rejected record costs one
// atomic load and one comparison.
func (l *Logger) Log(file string, line int, level core.Level, tag, template string, args ...interface{}) {
	if !l.filter.Admits(level) || l.sink == nil {
		return
	}
	l.emit(file, line, level, tag, template, args)
}

// log is the shared helper path; it captures the caller two frames up.
func (l *Logger) log(level core.Level, tag, template string, args []interface{}) {
	if !l.filter.Admits(level) || l.sink == nil {
		return
	}
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "", 0
	}
	l.emit(file, line, level, tag, template, args)
}

func (l *Logger) emit(file string, line int, level core.Level, tag, template string, args []interface{}) {
	msg := format.Message(template, args...)

	r := core.GetRecord()
	r.Time = l.now()
	r.Level = level
	r.Tag = tag
	r.File = file
	r.Line = line
	r.Tgid = l.tgid
	r.Tid = core.ThreadID()
	r.Message = msg

	// Sinks never fail toward the caller, so the record can always be
	// recycled once the fan-out returns.
	l.sink.Consume(r)
	core.PutRecord(r)
}

func (l *Logger) now() time.Time {
	if l.coarseClock {
		return core.CoarseNow()
	}
	return time.Now()
}

// Error logs an error message
func (l *Logger) Error(tag, template string, args ...interface{}) {
	l.log(core.ErrorLevel, tag, template, args)
}

// Warn logs a warning message
func (l *Logger) Warn(tag, template string, args ...interface{}) {
	l.log(core.WarnLevel, tag, template, args)
}

// Info logs an info message
func (l *Logger) Info(tag, template string, args ...interface{}) {
	l.log(core.InfoLevel, tag, template, args)
}

// Debug logs a debug message
func (l *Logger) Debug(tag, template string, args ...interface{}) {
	l.log(core.DebugLevel, tag, template, args)
}

// Trace logs a trace message
func (l *Logger) Trace(tag, template string, args ...interface{}) {
	l.log(core.TraceLevel, tag, template, args)
}

// Close closes the logger's sinks
func (l *Logger) Close() error {
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}
