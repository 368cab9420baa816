package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strconv"

	"github.com/philipp01105/rtlog/core"
)

// ConsoleConfig holds console rendering configuration
type ConsoleConfig struct {
	// Color enables per-level ANSI colors
	Color bool
	// Timestamps prepends a wall-clock timestamp to every line
	Timestamps bool
	// ShowThread adds the (tgid tid) column after the tag
	ShowThread bool
	// TimestampFormat specifies the time layout (empty for HH:MM:SS.mmm)
	TimestampFormat string
}

// Console renders records as one-line human-readable text. The default
// shape is fixed for compatibility with existing log consumers:
//
//	[LEVEL] tag: message (file:line)
//
// Timestamps and the thread column extend the line on the left and after
// the tag without disturbing that shape.
type Console struct {
	ConsoleConfig
}

// NewConsole creates a new console renderer
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "15:04:05.000"
	}
	return &Console{ConsoleConfig: cfg}
}

// pre-formatted level brackets to keep the common path a single WriteString
var levelBrackets = [...]string{
	core.ErrorLevel: "[ERROR] ",
	core.WarnLevel:  "[WARN] ",
	core.InfoLevel:  "[INFO] ",
	core.DebugLevel: "[DEBUG] ",
	core.TraceLevel: "[TRACE] ",
}

// per-level ANSI colors: red, yellow, green, gray, white
var levelColors = [...]string{
	core.ErrorLevel: "\x1b[1;31m",
	core.WarnLevel:  "\x1b[1;33m",
	core.InfoLevel:  "\x1b[1;32m",
	core.DebugLevel: "\x1b[1;90m",
	core.TraceLevel: "\x1b[1;37m",
}

const colorReset = "\x1b[0m"

// FormatTo renders a record and writes it to the writer in one Write call.
func (c *Console) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()
	c.FormatEntry(r, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry renders a record into the given buffer.
func (c *Console) FormatEntry(r *core.Record, buf *bytes.Buffer) {
	if c.Timestamps {
		buf.Write(r.Time.AppendFormat(buf.AvailableBuffer(), c.TimestampFormat))
		buf.WriteByte(' ')
	}

	if int(r.Level) < len(levelBrackets) && r.Level.Valid() {
		if c.Color {
			buf.WriteByte('[')
			buf.WriteString(levelColors[r.Level])
			buf.WriteString(r.Level.String())
			buf.WriteString(colorReset)
			buf.WriteString("] ")
		} else {
			buf.WriteString(levelBrackets[r.Level])
		}
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	buf.WriteString(r.Tag)
	if c.ShowThread {
		buf.WriteString(" (")
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(r.Tgid), 10))
		buf.WriteByte(' ')
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(r.Tid), 10))
		buf.WriteByte(')')
	}
	buf.WriteString(": ")

	buf.WriteString(r.Message)

	buf.WriteString(" (")
	if r.File != "" {
		buf.WriteString(filepath.Base(r.File))
	} else {
		buf.WriteString("unknown")
	}
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(r.Line), 10))
	buf.WriteString(")\n")
}
