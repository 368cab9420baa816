package sink

import (
	"net"
	"sync"

	"github.com/philipp01105/rtlog/core"
)

// DefaultLogdSocket is the well-known address of the host logging daemon.
const DefaultLogdSocket = "/tmp/logd.sock"

// Logd forwards wire-encoded records to the host logging daemon over a
// Unix seqpacket socket, one record per packet. The connection is dialed
// lazily on first use and re-dialed after a write failure. A host without
// a running daemon degrades to a silent drop, not a failure: the sink
// never surfaces anything to the log caller.
type Logd struct {
	path  string
	stats *Stats

	mu   sync.Mutex // protects conn and buf
	conn net.Conn
	buf  []byte // reused encode buffer
}

// NewLogd creates a new daemon sink. An empty path selects the well-known
// socket address.
func NewLogd(path string) *Logd {
	if path == "" {
		path = DefaultLogdSocket
	}
	return &Logd{
		path:  path,
		stats: NewStats(),
		buf:   make([]byte, 0, core.MaxRecordSize),
	}
}

// Consume encodes and sends one record. Oversized records and records
// arriving while the daemon is unreachable are dropped.
func (l *Logd) Consume(r *core.Record) {
	if r.EncodedLen() > core.MaxRecordSize {
		l.stats.IncrementDropped()
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn == nil {
		conn, err := net.Dial("unixpacket", l.path)
		if err != nil {
			l.stats.IncrementDropped()
			return
		}
		l.conn = conn
	}

	l.buf = r.AppendWire(l.buf[:0])
	if _, err := l.conn.Write(l.buf); err != nil {
		// Drop the connection; the next record re-dials.
		l.conn.Close()
		l.conn = nil
		l.stats.IncrementWriteError()
		return
	}
	l.stats.IncrementConsumed()
}

// Stats returns a snapshot of the current statistics
func (l *Logd) Stats() Snapshot {
	return l.stats.GetSnapshot()
}

// Close drops the daemon connection if one is open.
func (l *Logd) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return nil
	}
	err := l.conn.Close()
	l.conn = nil
	return err
}
