package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/glowkv/glowkv/internal/resp"
	"go.uber.org/zap"
)

// Server owns the listening socket, accepts connections, and spawns
// one handler goroutine per connection, tracked by a WaitGroup so
// Shutdown can wait for every in-flight command to finish before the
// process exits.
type Server struct {
	addr   string
	engine *Engine
	logger *zap.Logger

	listener net.Listener
	wg       sync.WaitGroup

	connsMu sync.Mutex
	conns   map[net.Conn]struct{}
}

// New builds a Server that will listen on addr and dispatch through
// engine.
func New(addr string, engine *Engine, logger *zap.Logger) *Server {
	return &Server{addr: addr, engine: engine, logger: logger, conns: make(map[net.Conn]struct{})}
}

// Listen binds the configured address. Call Serve afterward to start
// accepting; splitting the two lets callers learn the bound address
// (useful for ":0" in tests) before blocking.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the address the server is actually bound to.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks, accepting connections until the listener is closed by
// Shutdown. Every accepted connection is handled in its own goroutine.
func (s *Server) Serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("accept failed", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// Shutdown stops accepting new connections, signals every live
// handler to exit by closing its connection (an idle handler is
// blocked in a read with no other way to observe the shutdown
// signal), and waits for them to drain, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	s.connsMu.Lock()
	for conn := range s.conns {
		conn.Close() //nolint:errcheck
	}
	s.connsMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handleConnection runs the per-connection read/dispatch/write loop
// until the peer closes or a read or write on the connection fails; a
// request line that fails to parse gets an error reply and the loop
// continues. A recovered panic
// in a single handler closes that connection without affecting any
// other, per the server's isolation contract.
func (s *Server) handleConnection(conn net.Conn) {
	peer := NewPeer(conn)

	s.connsMu.Lock()
	s.conns[conn] = struct{}{}
	s.connsMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered panic in connection handler", zap.Any("panic", r))
		}
		s.connsMu.Lock()
		delete(s.conns, conn)
		s.connsMu.Unlock()
		peer.Close() //nolint:errcheck
		if s.logger.Core().Enabled(zap.DebugLevel) {
			s.logger.Debug("client disconnected", zap.String("addr", peer.RemoteAddr().String()))
		}
	}()

	if s.logger.Core().Enabled(zap.DebugLevel) {
		s.logger.Debug("client connected", zap.String("addr", peer.RemoteAddr().String()))
	}

	for {
		line, err := peer.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Warn("read failed", zap.Error(err))
			}
			return
		}

		cmd, args, parseErr := resp.ParseLine(line)

		var reply resp.Value
		switch {
		case parseErr != nil:
			reply = resp.MakeErrorf("ERR %s", parseErr.Error())
		case cmd == "":
			continue
		default:
			reply = s.engine.Execute(cmd, args)
		}

		if err := peer.Send(reply); err != nil {
			s.logger.Warn("write reply failed", zap.Error(err))
			return
		}

		if peer.InputBuffered() == 0 {
			if err := peer.Flush(); err != nil {
				s.logger.Warn("flush failed", zap.Error(err))
				return
			}
		}
	}
}
