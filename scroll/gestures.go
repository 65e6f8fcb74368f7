// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/gestures.go
// Summary: View-offset swipe gestures, DnD edge scrolling, and interactive
//          window resizing.
// Notes: While a gesture runs it owns the camera; normal camera resolution
//        resumes only at End. Cancel leaves no net effect.

package scroll

import (
	"math"

	"github.com/framegrace/scrolltile/geom"
)

// ResizeEdge is the bitmask of window edges being dragged.
type ResizeEdge uint8

const (
	EdgeTop ResizeEdge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e ResizeEdge) has(f ResizeEdge) bool { return e&f != 0 }

// interactiveResize tracks one in-progress pointer resize.
type interactiveResize struct {
	window             WindowID
	originalWindowSize geom.Size
	edges              ResizeEdge
}

func (w *Workspace) cancelResizeForColumn(col *Column) {
	if w.interactiveResize == nil {
		return
	}
	if col.contains(w.interactiveResize.window) {
		w.interactiveResize = nil
		for i := range col.data {
			col.data[i].resizingByLeftEdge = false
		}
	}
}

// ViewOffsetGestureBegin takes the camera over. A running animation is
// frozen at its current value.
func (w *Workspace) ViewOffsetGestureBegin() {
	if len(w.columns) == 0 || w.interactiveResize != nil {
		return
	}
	current := w.viewOffsetState.current()
	w.viewOffsetState = viewOffset{
		kind: viewOffsetGesture,
		gesture: &viewGesture{
			currentViewOffset:    current,
			stationaryViewOffset: w.viewOffsetState.stationary(),
			startViewOffset:      current,
		},
	}
}

// ViewOffsetGestureUpdate moves the camera by the accumulated swipe delta.
// Returns false when no gesture is running.
func (w *Workspace) ViewOffsetGestureUpdate(deltaX float64) bool {
	if !w.viewOffsetState.isGesture() || w.viewOffsetState.gesture.dnd {
		return false
	}
	g := w.viewOffsetState.gesture
	g.totalDelta += deltaX
	g.currentViewOffset = g.startViewOffset + g.totalDelta
	return true
}

// ViewOffsetGestureEnd releases the camera: the column nearest the final
// (velocity-projected) position becomes active and the camera animates to
// its resolved offset.
func (w *Workspace) ViewOffsetGestureEnd(velocity float64) bool {
	if !w.viewOffsetState.isGesture() {
		return false
	}
	g := w.viewOffsetState.gesture

	currentOffset := g.currentViewOffset
	if len(w.columns) == 0 {
		w.viewOffsetState = staticViewOffset(currentOffset)
		return true
	}

	// Project a little ahead by the release velocity so a flick keeps its
	// direction even when it hasn't crossed the halfway point yet.
	projected := currentOffset + velocity*0.150

	// Pick the column whose resolved camera position is nearest to where
	// the gesture would land.
	activeX := w.columnX(w.activeColumnIdx)
	targetViewPos := activeX + projected

	bestIdx := w.activeColumnIdx
	bestDist := math.Inf(1)
	xs := w.columnXs()
	for idx := range w.columns {
		offset := w.computeNewViewOffsetForColumn(targetViewPos, idx, w.activeColumnIdx)
		snapPos := xs[idx] + offset
		dist := math.Abs(snapPos - targetViewPos)
		if dist < bestDist {
			bestDist = dist
			bestIdx = idx
		}
	}

	// Freeze the gesture where the finger left it, then hand the camera
	// back to normal resolution.
	w.viewOffsetState = staticViewOffset(currentOffset)
	if bestIdx != w.activeColumnIdx {
		w.activateColumn(bestIdx)
	} else {
		w.animateViewOffsetToColumn(math.NaN(), bestIdx, -1)
	}
	return true
}

// ViewOffsetGestureCancel ends the gesture with no net effect: the camera
// returns to where it was when the gesture began.
func (w *Workspace) ViewOffsetGestureCancel() bool {
	if !w.viewOffsetState.isGesture() {
		return false
	}
	g := w.viewOffsetState.gesture
	w.viewOffsetState = staticViewOffset(g.startViewOffset)
	if len(w.columns) > 0 {
		w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
	}
	return true
}

// DnDScrollGestureBegin starts the velocity-less drag-and-drop variant:
// moving a dragged item near the view edge scrolls the strip.
func (w *Workspace) DnDScrollGestureBegin() {
	if w.viewOffsetState.isGesture() && w.viewOffsetState.gesture.dnd {
		return
	}
	current := w.viewOffsetState.current()
	w.viewOffsetState = viewOffset{
		kind: viewOffsetGesture,
		gesture: &viewGesture{
			currentViewOffset:    current,
			stationaryViewOffset: w.viewOffsetState.stationary(),
			startViewOffset:      current,
			dnd:                  true,
		},
	}
	w.interactiveResize = nil
}

// DnDScrollGestureScroll feeds a scroll delta into the DnD gesture.
func (w *Workspace) DnDScrollGestureScroll(delta float64) bool {
	if !w.viewOffsetState.isGesture() || !w.viewOffsetState.gesture.dnd {
		return false
	}
	g := w.viewOffsetState.gesture
	g.totalDelta += delta
	g.currentViewOffset = g.startViewOffset + g.totalDelta
	return true
}

// DnDScrollGestureEnd releases the DnD scroll. A drag that never scrolled
// keeps the view exactly where it was instead of snapping.
func (w *Workspace) DnDScrollGestureEnd() {
	if !w.viewOffsetState.isGesture() || !w.viewOffsetState.gesture.dnd {
		return
	}
	g := w.viewOffsetState.gesture
	if g.totalDelta == 0 {
		w.viewOffsetState = staticViewOffset(g.startViewOffset)
		if len(w.columns) > 0 {
			w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
		}
		return
	}
	w.ViewOffsetGestureEnd(0)
}

// InteractiveResizeBegin starts a pointer resize on a window by the given
// edges. Only one resize can run at a time, and only on normal columns.
func (w *Workspace) InteractiveResizeBegin(id WindowID, edges ResizeEdge) bool {
	if w.interactiveResize != nil {
		return false
	}
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	col := w.columns[colIdx]
	if !col.pendingSizingMode().IsNormal() {
		return false
	}
	tileIdx := col.position(id)

	w.interactiveResize = &interactiveResize{
		window:             id,
		originalWindowSize: col.tiles[tileIdx].TileSize(),
		edges:              edges,
	}
	if edges.has(EdgeLeft) {
		col.data[tileIdx].resizingByLeftEdge = true
	}

	w.viewOffsetState.stopAnimAndGesture()
	return true
}

// InteractiveResizeUpdate applies the pointer delta since the begin.
// Dragging the left or top edge grows toward that edge.
func (w *Workspace) InteractiveResizeUpdate(id WindowID, delta geom.Point) bool {
	resize := w.interactiveResize
	if resize == nil || resize.window != id {
		return false
	}

	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	col := w.columns[colIdx]
	tileIdx := col.position(id)

	if resize.edges.has(EdgeLeft) || resize.edges.has(EdgeRight) {
		dx := delta.X
		if resize.edges.has(EdgeLeft) {
			dx = -dx
		}
		// In centered mode both sides move, so the width changes twice as
		// fast as the pointer.
		if w.isCenteringFocusedColumn() {
			dx *= 2
		}
		width := math.Round(resize.originalWindowSize.W + dx)
		col.setColumnWidth(SetFixed(width), tileIdx, false)
		w.data[colIdx].update(col)
	}

	if resize.edges.has(EdgeTop) || resize.edges.has(EdgeBottom) {
		// The top edge of the topmost window resizes nothing.
		if !(resize.edges.has(EdgeTop) && tileIdx == 0) {
			dy := delta.Y
			if resize.edges.has(EdgeTop) {
				dy = -dy
			}
			height := math.Round(resize.originalWindowSize.H + dy)
			col.setWindowHeight(SetFixed(height), tileIdx, false)
			w.data[colIdx].update(col)
		}
	}

	return true
}

// InteractiveResizeEnd finishes the resize and animates the active column
// back into view.
func (w *Workspace) InteractiveResizeEnd(id WindowID) {
	resize := w.interactiveResize
	if resize == nil || resize.window != id {
		return
	}

	if colIdx := w.columnIdxOf(id); colIdx >= 0 {
		col := w.columns[colIdx]
		for i := range col.data {
			col.data[i].resizingByLeftEdge = false
		}
		if colIdx == w.activeColumnIdx {
			w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
		}
	}

	w.interactiveResize = nil
}
