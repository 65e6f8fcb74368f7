// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/view_offset.go
// Summary: The camera along the scroll axis: a static offset, an animation,
//          or an ongoing gesture, plus the offset-resolution rule.
// Notes: view_pos = column_x + view_offset, so negative offsets scroll the
//        view toward the leading edge.

package scroll

import (
	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

type viewOffsetKind int

const (
	viewOffsetStatic viewOffsetKind = iota
	viewOffsetAnimation
	viewOffsetGesture
)

// viewOffset is a tagged value: exactly one of the three states is active.
type viewOffset struct {
	kind    viewOffsetKind
	static  float64
	anim    *anim.Animation
	gesture *viewGesture
}

// viewGesture owns the camera between begin and end. An extra animation can
// ride on top of the finger position, for activating a specific column
// mid-gesture.
type viewGesture struct {
	currentViewOffset float64
	animation         *anim.Animation

	// Offset to restore when the gesture is cancelled or used for the
	// prev-column-on-removal bookkeeping.
	stationaryViewOffset float64

	startViewOffset float64
	totalDelta      float64

	// Drag-and-drop scrolls have no velocity and no rubber banding.
	dnd bool
}

func staticViewOffset(offset float64) viewOffset {
	return viewOffset{kind: viewOffsetStatic, static: offset}
}

// current is the instantaneous camera offset.
func (v *viewOffset) current() float64 {
	switch v.kind {
	case viewOffsetAnimation:
		return v.anim.Value()
	case viewOffsetGesture:
		cur := v.gesture.currentViewOffset
		if v.gesture.animation != nil {
			cur += v.gesture.animation.Value()
		}
		return cur
	default:
		return v.static
	}
}

// target is the value to compute new offsets against: where the camera is
// heading, not where it happens to be mid-flight.
func (v *viewOffset) target() float64 {
	switch v.kind {
	case viewOffsetAnimation:
		return v.anim.To()
	case viewOffsetGesture:
		// Used when a gesture is interrupted.
		return v.gesture.currentViewOffset
	default:
		return v.static
	}
}

// stationary is a value safe to save and restore later: never a mid-flight
// animation or finger position.
func (v *viewOffset) stationary() float64 {
	switch v.kind {
	case viewOffsetAnimation:
		return v.anim.To()
	case viewOffsetGesture:
		return v.gesture.stationaryViewOffset
	default:
		return v.static
	}
}

func (v *viewOffset) isStatic() bool  { return v.kind == viewOffsetStatic }
func (v *viewOffset) isGesture() bool { return v.kind == viewOffsetGesture }

func (v *viewOffset) isAnimationOngoing() bool {
	switch v.kind {
	case viewOffsetAnimation:
		return true
	case viewOffsetGesture:
		return v.gesture.animation != nil
	default:
		return false
	}
}

// offset shifts the camera by delta without a visual jump, whatever state
// it is in. Used when columns before the active one change width.
func (v *viewOffset) offset(delta float64) {
	switch v.kind {
	case viewOffsetAnimation:
		v.anim.Offset(delta)
	case viewOffsetGesture:
		v.gesture.stationaryViewOffset += delta
		v.gesture.currentViewOffset += delta
		v.gesture.startViewOffset += delta
	default:
		v.static += delta
	}
}

// cancelGesture freezes the camera where the gesture left it.
func (v *viewOffset) cancelGesture() {
	if v.kind == viewOffsetGesture {
		*v = staticViewOffset(v.gesture.currentViewOffset)
	}
}

// stopAnimAndGesture snaps the camera to its instantaneous value.
func (v *viewOffset) stopAnimAndGesture() {
	*v = staticViewOffset(v.current())
}

// animateFromCurrent replaces the state with an animation that starts where
// the camera currently is and lands on to.
func (v *viewOffset) animateFromCurrent(clock *anim.Clock, to float64, params anim.Params) {
	from := v.current()
	if from == to {
		*v = staticViewOffset(to)
		return
	}
	a := anim.New(clock, from, to, 0, params)
	*v = viewOffset{kind: viewOffsetAnimation, anim: a}
}

// advance collapses a finished animation back into a static offset.
func (v *viewOffset) advance() {
	switch v.kind {
	case viewOffsetAnimation:
		if v.anim.IsDone() {
			*v = staticViewOffset(v.anim.To())
		}
	case viewOffsetGesture:
		if v.gesture.animation != nil && v.gesture.animation.IsDone() {
			v.gesture.currentViewOffset += v.gesture.animation.To()
			v.gesture.animation = nil
		}
	}
}

// animateExtraFrom layers a decaying offset on top of the gesture's finger
// position.
func (g *viewGesture) animateExtraFrom(clock *anim.Clock, from float64, params anim.Params) {
	current := 0.0
	if g.animation != nil {
		current = g.animation.Value()
	}
	g.animation = anim.New(clock, from+current, 0, 0, params)
}

// computeNewViewOffset resolves the camera for bringing a column into view
// with minimal motion. All coordinates are leading-edge based; curViewX is
// the camera's leading edge, newColX/newColWidth the column's.
func computeNewViewOffset(curViewX, viewWidth, newColX, newColWidth, gaps float64) float64 {
	// A column wider than the view pins its leading edge.
	if viewWidth <= newColWidth {
		return 0
	}

	// Padding shrinks below the configured gap when the column almost
	// fills the view.
	padding := geom.Clamp((viewWidth-newColWidth)/2, 0, gaps)

	colLeft := newColX - padding
	colRight := newColX + newColWidth + padding

	// Fully visible already: keep the current offset.
	if curViewX <= colLeft && colRight <= curViewX+viewWidth {
		return -(newColX - curViewX)
	}

	// Otherwise align to whichever edge is closer.
	distToLeft := curViewX - colLeft
	if distToLeft < 0 {
		distToLeft = -distToLeft
	}
	distToRight := (curViewX + viewWidth) - colRight
	if distToRight < 0 {
		distToRight = -distToRight
	}
	if distToLeft <= distToRight {
		return -padding
	}
	return newColWidth + padding - viewWidth
}

// computeWorkingArea insets the view by the struts, clamping to a
// non-negative size.
func computeWorkingArea(viewSize geom.Size, struts geom.Struts) geom.Rect {
	area := geom.Rect{Size: viewSize}
	area.Loc.X += struts.Left
	area.Size.W -= struts.Left + struts.Right
	area.Loc.Y += struts.Top
	area.Size.H -= struts.Top + struts.Bottom
	area.Size = geom.SanitizeSize(area.Size)
	return area
}
