package logger

import "github.com/philipp01105/rtlog/core"

// Re-export the level scales for convenience
type (
	Level       = core.Level
	LevelFilter = core.LevelFilter
)

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel

	Off         = core.Off
	ErrorFilter = core.ErrorFilter
	WarnFilter  = core.WarnFilter
	InfoFilter  = core.InfoFilter
	DebugFilter = core.DebugFilter
	TraceFilter = core.TraceFilter
)

// ParseFilter converts a string to a LevelFilter
func ParseFilter(s string) (LevelFilter, bool) {
	return core.ParseFilter(s)
}
