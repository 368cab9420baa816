package core

import "strings"

// Level represents the severity of a single emitted record.
// Error is the highest priority and carries the lowest ordinal.
type Level int8

const (
	// ErrorLevel for failures the pipeline cannot recover from silently
	ErrorLevel Level = 1
	// WarnLevel for recoverable anomalies
	WarnLevel Level = 2
	// InfoLevel for general operational messages
	InfoLevel Level = 3
	// DebugLevel for detailed debugging information
	DebugLevel Level = 4
	// TraceLevel for the most verbose per-step output
	TraceLevel Level = 5
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the five defined severity levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// LevelFilter is the configurable threshold scale. Unlike Level it has an
// Off state that admits no records at all. Trace admits everything.
type LevelFilter int8

const (
	Off          LevelFilter = 0
	ErrorFilter  LevelFilter = 1
	WarnFilter   LevelFilter = 2
	InfoFilter   LevelFilter = 3
	DebugFilter  LevelFilter = 4
	TraceFilter  LevelFilter = 5
	maxFilterVal             = TraceFilter
)

// String returns the string representation of the filter
func (f LevelFilter) String() string {
	if f == Off {
		return "OFF"
	}
	return Level(f).String()
}

// Clamp maps out-of-range values onto the nearest valid filter. Filters
// are total: configuration mistakes narrow or widen output, never fail.
func (f LevelFilter) Clamp() LevelFilter {
	if f < Off {
		return Off
	}
	if f > maxFilterVal {
		return maxFilterVal
	}
	return f
}

// Admits reports whether a record at level l passes threshold f.
// A level is admitted iff its ordinal does not exceed the filter's.
func (f LevelFilter) Admits(l Level) bool {
	return int8(l) <= int8(f)
}

// ParseFilter converts a string to a LevelFilter. The second return value
// reports whether the input named a known filter.
func ParseFilter(s string) (LevelFilter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF":
		return Off, true
	case "ERROR":
		return ErrorFilter, true
	case "WARN", "WARNING":
		return WarnFilter, true
	case "INFO":
		return InfoFilter, true
	case "DEBUG":
		return DebugFilter, true
	case "TRACE":
		return TraceFilter, true
	default:
		return Off, false
	}
}
