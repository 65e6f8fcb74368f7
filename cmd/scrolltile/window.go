// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrolltile/window.go
// Summary: Fake window collaborator for the demo driver.
// Notes: Requests commit a couple of frames after they arrive, exercising
//        the same asynchronous acknowledgement path a real client takes.

package main

import (
	"github.com/google/uuid"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/scroll"
)

// Frames between a request and its acknowledgement.
const ackFrames = 2

type pendingFullscreen struct {
	on   bool
	size geom.Size
}

type demoWindow struct {
	id    uuid.UUID
	title string

	size       geom.Size
	fullscreen bool

	pendingSize *geom.Size
	pendingFS   *pendingFullscreen
	ackIn       int
}

func newDemoWindow(title string) *demoWindow {
	return &demoWindow{id: uuid.New(), title: title}
}

func (d *demoWindow) ID() scroll.WindowID { return d.id }
func (d *demoWindow) Size() geom.Size     { return d.size }
func (d *demoWindow) IsFullscreen() bool  { return d.fullscreen }

func (d *demoWindow) MinSize() geom.Size { return geom.Size{W: 8, H: 3} }
func (d *demoWindow) MaxSize() geom.Size { return geom.Size{} }

func (d *demoWindow) RequestSize(size geom.Size) {
	s := size
	d.pendingSize = &s
	d.ackIn = ackFrames
}

func (d *demoWindow) RequestFullscreen(on bool, output geom.Size) {
	d.pendingFS = &pendingFullscreen{on: on, size: output}
	d.ackIn = ackFrames
}

// tick advances the fake client by one frame. It reports true when a pending
// request committed and the engine should run its communicate step.
func (d *demoWindow) tick() bool {
	if d.pendingSize == nil && d.pendingFS == nil {
		return false
	}
	if d.ackIn > 0 {
		d.ackIn--
		return false
	}
	if d.pendingFS != nil {
		d.fullscreen = d.pendingFS.on
		if d.fullscreen {
			d.size = d.pendingFS.size
		}
		d.pendingFS = nil
	}
	if d.pendingSize != nil {
		if !d.fullscreen {
			d.size = *d.pendingSize
		}
		d.pendingSize = nil
	}
	return true
}
