package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/rtlog/core"
)

// SlogHandler adapts a Logger to log/slog.Handler, so libraries that speak
// slog emit through the pipeline facility under a fixed tag. Attributes
// are rendered into the bounded message as key=value pairs; the facility's
// record model is a flat message, not a structured document.
type SlogHandler struct {
	logger *Logger
	tag    string
	// attrs accumulated via WithAttrs, rendered at registration time so
	// they keep the group scope that was current when they were added
	attrs string
	group string
}

// NewSlogHandler creates a slog.Handler that forwards to l under tag.
func NewSlogHandler(l *Logger, tag string) *SlogHandler {
	return &SlogHandler{logger: l, tag: tag}
}

// Enabled consults the logger's threshold, so disabled slog calls stay on
// the fast-reject path.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.filter.Admits(slogLevelToCore(level))
}

// Handle converts a slog.Record and emits it through the Logger.
func (h *SlogHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Message)
	b.WriteString(h.attrs)

	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	file, line := "", 0
	if rec.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{rec.PC}).Next()
		file, line = frame.File, frame.Line
	}

	h.logger.Log(file, line, slogLevelToCore(rec.Level), h.tag, "%s", b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &SlogHandler{logger: h.logger, tag: h.tag, attrs: b.String(), group: h.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{logger: h.logger, tag: h.tag, attrs: h.attrs, group: group}
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		g := a.Key
		if group != "" {
			g = group + "." + a.Key
		}
		for _, inner := range a.Value.Group() {
			appendAttr(b, g, inner)
		}
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore maps slog levels onto the severity scale. Levels below
// Debug map to Trace, which slog itself has no name for.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
