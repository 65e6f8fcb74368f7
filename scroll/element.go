// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/element.go
// Summary: Capability interface the windowing collaborator implements.
// Usage: The engine is written entirely against LayoutElement; concrete
//        window types live outside this module.

package scroll

import (
	"github.com/framegrace/scrolltile/geom"
	"github.com/google/uuid"
)

// WindowID identifies a window across the whole layout.
type WindowID = uuid.UUID

// LayoutElement is the window capability surface the engine needs. Size
// requests are asynchronous: the collaborator applies them at its own pace
// and the engine learns the committed result through the communicate step
// (Workspace.UpdateWindow). Implementations must tolerate redundant
// requests for the same size.
type LayoutElement interface {
	// ID returns the stable identifier of the window.
	ID() WindowID

	// Size returns the last committed window size.
	Size() geom.Size

	// RequestSize asks the window to become the given size. The request
	// may be fulfilled later, partially, or not at all.
	RequestSize(size geom.Size)

	// RequestFullscreen asks the window to enter or leave fullscreen at
	// the given output size.
	RequestFullscreen(on bool, output geom.Size)

	// IsFullscreen returns the committed fullscreen state.
	IsFullscreen() bool

	// MinSize returns the minimum usable size; zero components mean
	// unconstrained.
	MinSize() geom.Size

	// MaxSize returns the maximum size; zero components mean
	// unconstrained.
	MaxSize() geom.Size
}
