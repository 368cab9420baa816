//go:build linux

package logd

import (
	"bytes"
	"encoding/binary"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/sink"
)

// syncWriter lets the test read what the render loop wrote without racing it.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func startTestServer(t *testing.T, out *syncWriter) (*Server, Config) {
	t.Helper()

	dir := t.TempDir()
	cfg := Config{
		PacketSocket: filepath.Join(dir, "pkt.sock"),
		StreamSocket: filepath.Join(dir, "stream.sock"),
		Output:       OutputConfig{ShowThread: true},
	}

	srv := NewServer(cfg, out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv, cfg
}

func waitForOutput(t *testing.T, out *syncWriter, substr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), substr) {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %q, output so far: %q", substr, out.String())
}

func TestServer_RendersPacketRecords(t *testing.T) {
	out := &syncWriter{}
	_, cfg := startTestServer(t, out)

	client := sink.NewLogd(cfg.PacketSocket)
	defer client.Close()

	rec := &core.Record{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Tag:     "net",
		File:    "camera.go",
		Line:    42,
		Tgid:    7,
		Tid:     9,
		Message: "connected to host:8080",
	}
	client.Consume(rec)

	waitForOutput(t, out, "net (7 9): connected to host:8080 (camera.go:42)")

	if got := client.Stats().ConsumedTotal; got != 1 {
		t.Errorf("Expected 1 consumed record on the client, got %d", got)
	}
}

func TestServer_RendersStreamRecords(t *testing.T) {
	out := &syncWriter{}
	_, cfg := startTestServer(t, out)

	conn, err := net.Dial("unix", cfg.StreamSocket)
	if err != nil {
		t.Fatalf("Failed to dial stream socket: %v", err)
	}
	defer conn.Close()

	rec := core.Record{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Tag:     "planner",
		File:    "route.go",
		Line:    108,
		Message: "fallback path engaged",
	}
	payload := rec.AppendWire(nil)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := conn.Write(lenBuf[:]); err != nil {
		t.Fatalf("Failed to write length prefix: %v", err)
	}
	if _, err := conn.Write(payload); err != nil {
		t.Fatalf("Failed to write record: %v", err)
	}

	waitForOutput(t, out, "planner (0 0): fallback path engaged (route.go:108)")
	if !strings.Contains(out.String(), "[WARN]") {
		t.Errorf("Expected warn bracket in output, got %q", out.String())
	}
}

func TestServer_MergesBothListeners(t *testing.T) {
	out := &syncWriter{}
	_, cfg := startTestServer(t, out)

	client := sink.NewLogd(cfg.PacketSocket)
	defer client.Close()
	client.Consume(&core.Record{
		Time: time.Now(), Level: core.InfoLevel,
		Tag: "lidar", File: "scan.go", Line: 1, Message: "via packet",
	})

	conn, err := net.Dial("unix", cfg.StreamSocket)
	if err != nil {
		t.Fatalf("Failed to dial stream socket: %v", err)
	}
	defer conn.Close()
	rec := core.Record{
		Time: time.Now(), Level: core.InfoLevel,
		Tag: "radar", File: "scan.go", Line: 2, Message: "via stream",
	}
	payload := rec.AppendWire(nil)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	conn.Write(lenBuf[:])
	conn.Write(payload)

	waitForOutput(t, out, "via packet")
	waitForOutput(t, out, "via stream")
}

func TestServer_DropsMalformedInput(t *testing.T) {
	out := &syncWriter{}
	_, cfg := startTestServer(t, out)

	// A connection sending garbage is dropped without taking the server down.
	bad, err := net.Dial("unixpacket", cfg.PacketSocket)
	if err != nil {
		t.Fatalf("Failed to dial packet socket: %v", err)
	}
	bad.Write([]byte{0x01, 0x02, 0x03})
	bad.Close()

	client := sink.NewLogd(cfg.PacketSocket)
	defer client.Close()
	client.Consume(&core.Record{
		Time: time.Now(), Level: core.InfoLevel,
		Tag: "net", File: "a.go", Line: 3, Message: "still alive",
	})

	waitForOutput(t, out, "still alive")
}

func TestServer_StreamRejectsOversizedFrame(t *testing.T) {
	out := &syncWriter{}
	_, cfg := startTestServer(t, out)

	conn, err := net.Dial("unix", cfg.StreamSocket)
	if err != nil {
		t.Fatalf("Failed to dial stream socket: %v", err)
	}
	defer conn.Close()

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], core.MaxRecordSize+1)
	if _, err := conn.Write(lenBuf[:]); err != nil {
		t.Fatalf("Failed to write length prefix: %v", err)
	}

	// The server closes the connection instead of reading the frame.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	one := make([]byte, 1)
	if _, err := conn.Read(one); err == nil {
		t.Error("Expected connection to be closed after oversized frame")
	}

	if s := out.String(); s != "" {
		t.Errorf("Expected no rendered output, got %q", s)
	}
}

func TestServer_RemovesStaleSocket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pkt.sock")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to plant stale socket file: %v", err)
	}

	srv := NewServer(Config{PacketSocket: path}, &syncWriter{})
	if err := srv.Start(); err != nil {
		t.Fatalf("Expected start to replace the stale socket, got %v", err)
	}
	srv.Close()
}

func TestServer_CloseIsIdempotent(t *testing.T) {
	srv, _ := startTestServer(t, &syncWriter{})

	if err := srv.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Errorf("Expected second close to be a no-op, got %v", err)
	}
}
