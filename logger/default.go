package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/sink"
)

// EnvLevel names the environment variable consulted by Init. A valid
// filter name ("OFF", "ERROR", ..., "TRACE") overrides the level passed to
// Init; an invalid value is reported on stderr and ignored.
const EnvLevel = "RTLOG_LEVEL"

var defaultLogger atomic.Pointer[Logger]

func init() {
	// Before Init runs, the default logger has an Off threshold and no
	// sinks: log calls are silently dropped on the fast-reject path.
	defaultLogger.Store(NewBuilder().WithMaxLevel(core.Off).Build())
}

// Init configures the process-wide default logger: the initial level
// threshold and which of the console and logd sinks are active. It is
// meant to run once, before the pipeline starts logging; calling it again
// is an idempotent reset that replaces the threshold and the sink set.
// Calling Init concurrently from two threads is not supported, but cannot
// corrupt the threshold's atomicity.
func Init(level core.LevelFilter, console, logd bool) {
	if env, ok := levelFromEnv(); ok {
		level = env
	}

	b := NewBuilder().WithMaxLevel(level)
	if console {
		b.WithSinks(sink.NewConsole(sink.ConsoleConfig{}))
	}
	if logd {
		b.WithSinks(sink.NewLogd(""))
	}
	SetDefault(b.Build())
}

// levelFromEnv tries to parse the threshold override from the environment.
func levelFromEnv() (core.LevelFilter, bool) {
	s := os.Getenv(EnvLevel)
	if s == "" {
		return core.Off, false
	}
	f, ok := core.ParseFilter(s)
	if !ok {
		fmt.Fprintf(os.Stderr, "rtlog: failed to parse level from %s=%q\n", EnvLevel, s)
		return core.Off, false
	}
	return f, true
}

// Default returns the default logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// SetMaxLevel replaces the default logger's threshold.
func SetMaxLevel(f core.LevelFilter) {
	Default().SetMaxLevel(f)
}

// MaxLevel returns the default logger's current threshold.
func MaxLevel() core.LevelFilter {
	return Default().MaxLevel()
}

// Package-level convenience functions using the default logger

// Error logs an error message using the default logger
func Error(tag, template string, args ...interface{}) {
	Default().log(core.ErrorLevel, tag, template, args)
}

// Warn logs a warning message using the default logger
func Warn(tag, template string, args ...interface{}) {
	Default().log(core.WarnLevel, tag, template, args)
}

// Info logs an info message using the default logger
func Info(tag, template string, args ...interface{}) {
	Default().log(core.InfoLevel, tag, template, args)
}

// Debug logs a debug message using the default logger
func Debug(tag, template string, args ...interface{}) {
	Default().log(core.DebugLevel, tag, template, args)
}

// Trace logs a trace message using the default logger
func Trace(tag, template string, args ...interface{}) {
	Default().log(core.TraceLevel, tag, template, args)
}

// Log emits one record through the default logger with an explicit call
// site, for callers that carry file and line themselves.
func Log(file string, line int, level core.Level, tag, template string, args ...interface{}) {
	Default().Log(file, line, level, tag, template, args...)
}
