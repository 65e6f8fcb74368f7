// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/server.go
// Summary: Unix socket control server.
// Usage: One request per line, one response per line. Each connection gets
//        its own goroutine; the handler is expected to do its own
//        serialization (see Loop).

package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/framegrace/scrolltile/protocol"
)

// Server accepts control connections on a Unix domain socket. It implements
// suture.Service.
type Server struct {
	addr    string
	handler Handler
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func New(addr string, handler Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{addr: addr, handler: handler, logger: logger}
}

func (s *Server) String() string { return "control-server" }

// Serve listens until the context is cancelled. A stale socket file from a
// previous run is removed first.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.RemoveAll(s.addr); err != nil {
		return err
	}
	l, err := net.Listen("unix", s.addr)
	if err != nil {
		return err
	}
	defer l.Close()
	defer os.RemoveAll(s.addr)

	go func() {
		<-ctx.Done()
		l.Close()
	}()
	s.logger.Info("control socket listening", "addr", s.addr)

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return ctx.Err()
			}
			s.logger.Warn("accept failed", "err", err)
			continue
		}
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer c.Close()
			s.handleConn(c)
		}(conn)
	}
}

func (s *Server) handleConn(c net.Conn) {
	dec := protocol.NewDecoder(c)
	enc := protocol.NewEncoder(c)
	for {
		req, err := dec.Decode()
		if err == io.EOF {
			return
		}
		if err != nil {
			// Framing is unrecoverable mid-stream; report and drop.
			_ = enc.Encode(protocol.Response{OK: false, Error: err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			if enc.Encode(protocol.Response{OK: false, Error: err.Error()}) != nil {
				return
			}
			continue
		}
		resp := s.handler.Handle(req)
		if !resp.OK {
			s.logger.Debug("request rejected", "action", req.Action, "err", resp.Error)
		}
		if enc.Encode(resp) != nil {
			return
		}
	}
}
