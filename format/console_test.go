package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/rtlog/core"
)

func testRecord() *core.Record {
	return &core.Record{
		Time:    time.Date(2026, 8, 23, 10, 30, 0, 500*1e6, time.UTC),
		Level:   core.InfoLevel,
		Tag:     "net",
		File:    "/src/pipeline/camera.go",
		Line:    42,
		Tgid:    100,
		Tid:     101,
		Message: "connected to host:8080",
	}
}

func TestConsole_CompatibilityShape(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{})
	c.FormatEntry(testRecord(), &buf)

	want := "[INFO] net: connected to host:8080 (camera.go:42)\n"
	if buf.String() != want {
		t.Errorf("line = %q, want %q", buf.String(), want)
	}
}

func TestConsole_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Timestamps: true})
	c.FormatEntry(testRecord(), &buf)

	if !strings.HasPrefix(buf.String(), "10:30:00.500 [INFO] ") {
		t.Errorf("line = %q, want timestamp prefix", buf.String())
	}
}

func TestConsole_ThreadColumn(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{ShowThread: true})
	c.FormatEntry(testRecord(), &buf)

	if !strings.Contains(buf.String(), "net (100 101): ") {
		t.Errorf("line = %q, want tgid/tid column", buf.String())
	}
}

func TestConsole_Color(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Color: true})
	r := testRecord()
	r.Level = core.ErrorLevel
	c.FormatEntry(r, &buf)

	out := buf.String()
	if !strings.Contains(out, "\x1b[1;31mERROR\x1b[0m") {
		t.Errorf("line = %q, want red level name", out)
	}
	// The bracket shape survives around the escape codes.
	if !strings.Contains(out, "] net: ") {
		t.Errorf("line = %q, want bracket shape", out)
	}
}

func TestConsole_UnknownFile(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{})
	r := testRecord()
	r.File = ""
	r.Line = 0
	c.FormatEntry(r, &buf)

	if !strings.Contains(buf.String(), "(unknown:0)") {
		t.Errorf("line = %q, want (unknown:0)", buf.String())
	}
}

func TestConsole_FormatTo(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{})
	if err := c.FormatTo(testRecord(), &buf); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}
	if !strings.Contains(buf.String(), "[INFO] net: ") {
		t.Errorf("line = %q", buf.String())
	}
}

func TestConsole_EveryLevelName(t *testing.T) {
	levels := map[core.Level]string{
		core.ErrorLevel: "[ERROR] ",
		core.WarnLevel:  "[WARN] ",
		core.InfoLevel:  "[INFO] ",
		core.DebugLevel: "[DEBUG] ",
		core.TraceLevel: "[TRACE] ",
	}
	c := NewConsole(ConsoleConfig{})
	for level, prefix := range levels {
		var buf bytes.Buffer
		r := testRecord()
		r.Level = level
		c.FormatEntry(r, &buf)
		if !strings.HasPrefix(buf.String(), prefix) {
			t.Errorf("level %s line = %q, want prefix %q", level, buf.String(), prefix)
		}
	}
}
