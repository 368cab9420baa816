package logd

import (
	"bufio"
	"encoding/binary"
	"io"
	"net"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/rtlog/core"
	"github.com/philipp01105/rtlog/format"
	"github.com/philipp01105/rtlog/logger"
)

// Server is the receiving side of the system-log sink. It accepts
// wire-encoded records on a seqpacket socket (one record per datagram) and
// on a stream socket (u32 big-endian length prefix per record), funnels
// everything through one channel and renders it with a single goroutine,
// so output from concurrent clients interleaves per record, never per
// byte.
type Server struct {
	cfg     Config
	out     io.Writer
	console *format.Console
	records chan core.Record

	mu        sync.Mutex
	listeners []net.Listener
	conns     map[net.Conn]struct{}
	closed    bool

	loops    sync.WaitGroup // accept loops and per-connection readers
	rendered sync.WaitGroup
}

// NewServer creates a daemon server rendering to out.
func NewServer(cfg Config, out io.Writer) *Server {
	return &Server{
		cfg: cfg,
		out: out,
		console: format.NewConsole(format.ConsoleConfig{
			Color:      cfg.Output.Color,
			Timestamps: cfg.Output.Timestamps,
			ShowThread: cfg.Output.ShowThread,
		}),
		records: make(chan core.Record, 256),
		conns:   make(map[net.Conn]struct{}),
	}
}

// Start binds the configured sockets and launches the accept and render
// loops. Stale socket files from a previous run are removed first.
func (s *Server) Start() error {
	if s.cfg.PacketSocket != "" {
		ln, err := s.bind("unixpacket", s.cfg.PacketSocket)
		if err != nil {
			return err
		}
		s.loops.Add(1)
		go s.acceptLoop(ln, s.readPackets)
		logger.Info("logd", "listening on %s", s.cfg.PacketSocket)
	}
	if s.cfg.StreamSocket != "" {
		ln, err := s.bind("unix", s.cfg.StreamSocket)
		if err != nil {
			return err
		}
		s.loops.Add(1)
		go s.acceptLoop(ln, s.readStream)
		logger.Info("logd", "listening on %s", s.cfg.StreamSocket)
	}

	s.rendered.Add(1)
	go s.renderLoop()
	return nil
}

func (s *Server) bind(network, path string) (net.Listener, error) {
	if _, err := os.Stat(path); err == nil {
		logger.Debug("logd", "removing stale socket at %s", path)
		if err := os.Remove(path); err != nil {
			return nil, errors.Wrapf(err, "failed to remove %s", path)
		}
	}
	ln, err := net.Listen(network, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to bind %s", path)
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, ln)
	s.mu.Unlock()
	return ln, nil
}

func (s *Server) acceptLoop(ln net.Listener, read func(net.Conn)) {
	defer s.loops.Done()
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		if !s.track(conn) {
			conn.Close()
			return
		}
		logger.Debug("logd", "accepted connection on %s", ln.Addr())

		s.loops.Add(1)
		go func() {
			defer s.loops.Done()
			defer s.untrack(conn)
			read(conn)
		}()
	}
}

// readPackets handles a seqpacket connection: every Read returns exactly
// one encoded record.
func (s *Server) readPackets(conn net.Conn) {
	buf := make([]byte, core.MaxRecordSize)
	for {
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			return
		}
		rec, err := core.DecodeWire(buf[:n])
		if err != nil {
			logger.Info("logd", "dropping connection: %v", err)
			return
		}
		s.records <- rec
	}
}

// readStream handles a stream connection carrying length-prefixed records.
func (s *Server) readStream(conn net.Conn) {
	br := bufio.NewReaderSize(conn, core.MaxRecordSize)
	var lenBuf [4]byte
	buf := make([]byte, core.MaxRecordSize)
	for {
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return
		}
		n := binary.BigEndian.Uint32(lenBuf[:])
		if n == 0 || n > core.MaxRecordSize {
			logger.Info("logd", "dropping connection: frame of %d bytes", n)
			return
		}
		if _, err := io.ReadFull(br, buf[:n]); err != nil {
			return
		}
		rec, err := core.DecodeWire(buf[:n])
		if err != nil {
			logger.Info("logd", "dropping connection: %v", err)
			return
		}
		s.records <- rec
	}
}

func (s *Server) renderLoop() {
	defer s.rendered.Done()
	for rec := range s.records {
		// Render errors are swallowed like any sink write failure.
		_ = s.console.FormatTo(&rec, s.out)
	}
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	conn.Close()
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

// Close shuts the listeners and connections down, drains the record
// channel and stops the renderer. Socket files are unlinked by the
// listeners on close.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for _, ln := range s.listeners {
		ln.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.loops.Wait()
	close(s.records)
	s.rendered.Wait()
	return nil
}
