// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/loop.go
// Summary: Single-goroutine execution of everything that touches the layout.
// Usage: The render driver and the control server both funnel their work
//        through one Loop, so layout state never needs locking.

package server

import (
	"context"
	"sync"

	"github.com/framegrace/scrolltile/protocol"
)

// Loop serializes work onto one goroutine. It implements suture.Service.
type Loop struct {
	handler Handler
	work    chan func()
	quit    chan struct{}
	once    sync.Once
}

func NewLoop(handler Handler) *Loop {
	return &Loop{
		handler: handler,
		work:    make(chan func()),
		quit:    make(chan struct{}),
	}
}

func (l *Loop) String() string { return "engine-loop" }

// Serve runs submitted work until the context is cancelled.
func (l *Loop) Serve(ctx context.Context) error {
	defer l.once.Do(func() { close(l.quit) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.work:
			fn()
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to finish. It reports
// false when the loop has stopped and fn did not run.
func (l *Loop) Do(fn func()) bool {
	done := make(chan struct{})
	select {
	case l.work <- func() { fn(); close(done) }:
	case <-l.quit:
		return false
	}
	select {
	case <-done:
		return true
	case <-l.quit:
		// A submitted fn still completes before Serve returns.
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// Handle forwards a request onto the loop goroutine.
func (l *Loop) Handle(req protocol.Request) protocol.Response {
	var resp protocol.Response
	if !l.Do(func() { resp = l.handler.Handle(req) }) {
		return protocol.Response{OK: false, Error: "engine loop stopped"}
	}
	return resp
}
