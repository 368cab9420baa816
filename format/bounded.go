package format

import (
	"fmt"
	"sync"
)

// MaxMessageSize is the fixed capacity of the message buffer, terminator
// accounting included. It matches the record budget on the daemon socket.
const MaxMessageSize = 8 * 1024

// maxPayload is the largest message Message will produce. The final byte
// of the buffer is reserved for the terminator, so an expansion of exactly
// MaxMessageSize-1 bytes survives intact and anything longer is cut there.
const maxPayload = MaxMessageSize - 1

// truncWriter appends into a fixed-capacity buffer and silently discards
// overflow. It reports the full length to fmt so expansion runs to
// completion without error; truncation is not an error by contract.
type truncWriter struct {
	buf []byte
}

func (w *truncWriter) Write(p []byte) (int, error) {
	n := len(p)
	if free := maxPayload - len(w.buf); free > 0 {
		if len(p) > free {
			p = p[:free]
		}
		w.buf = append(w.buf, p...)
	}
	return n, nil
}

var msgPool = sync.Pool{
	New: func() interface{} {
		return &truncWriter{buf: make([]byte, 0, maxPayload)}
	},
}

// Message expands template with args into a message of at most
// MaxMessageSize-1 bytes. Over-long expansions are truncated
// deterministically at the capacity boundary; a multi-byte encoding unit
// straddling the boundary is cut, not repaired. Plain text (zero args) is
// bounded by the same rule and never interpreted.
//
// Message is only ever called for records that passed the filter check, so
// filtered-out calls never pay for argument expansion.
func Message(template string, args ...interface{}) string {
	if len(args) == 0 {
		if len(template) <= maxPayload {
			return template
		}
		return template[:maxPayload]
	}

	w := msgPool.Get().(*truncWriter)
	w.buf = w.buf[:0]
	fmt.Fprintf(w, template, args...)
	msg := string(w.buf)
	msgPool.Put(w)
	return msg
}
