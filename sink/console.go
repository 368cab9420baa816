package sink

import (
	"bytes"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/format"
)

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer receiving rendered lines (default: os.Stdout)
	Writer io.Writer
	// Renderer for line formatting (default: the compatibility shape,
	// with colors auto-enabled when Writer is a terminal)
	Renderer *format.Console
}

// Console writes one rendered line per record to the process's console
// stream. A single internal lock serializes writes, so records emitted by
// one goroutine appear in call order even when the underlying writer is
// not append-atomic. Write failures are counted, never propagated.
type Console struct {
	renderer *format.Console
	stats    *Stats
	mu       sync.Mutex // protects syncBuf and writer
	w        io.Writer
	syncBuf  bytes.Buffer
	parPool  sync.Pool // *bytes.Buffer for contended Consume calls
}

// NewConsole creates a new console sink.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Renderer == nil {
		cfg.Renderer = format.NewConsole(format.ConsoleConfig{
			Color: isTerminal(cfg.Writer),
		})
	}

	c := &Console{
		renderer: cfg.Renderer,
		stats:    NewStats(),
		w:        cfg.Writer,
	}
	c.syncBuf.Grow(256)
	c.parPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}
	return c
}

// Consume renders and writes one record. Under no contention it formats
// into the sink-owned buffer already guarded by the write lock; under
// contention it formats into a pooled buffer outside the lock and only
// holds the lock for the actual write.
func (c *Console) Consume(r *core.Record) {
	if c.mu.TryLock() {
		c.syncBuf.Reset()
		c.renderer.FormatEntry(r, &c.syncBuf)
		_, err := c.w.Write(c.syncBuf.Bytes())
		c.mu.Unlock()
		c.count(err)
		return
	}

	buf := c.parPool.Get().(*bytes.Buffer)
	buf.Reset()
	c.renderer.FormatEntry(r, buf)
	c.mu.Lock()
	_, err := c.w.Write(buf.Bytes())
	c.mu.Unlock()
	c.parPool.Put(buf)
	c.count(err)
}

func (c *Console) count(err error) {
	if err != nil {
		c.stats.IncrementWriteError()
		return
	}
	c.stats.IncrementConsumed()
}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// Close is a no-op; the sink does not own its writer.
func (c *Console) Close() error {
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
