// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/tile.go
// Summary: A single window's visual box inside a column.
// Usage: Owned exclusively by a Column; holds the requested-vs-committed
//        size bookkeeping and the per-tile animations.

package scroll

import (
	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// Tile wraps one window handle with layout bookkeeping. The committed size
// is only ever read from the window (via updateWindow, the communicate
// step); the engine never computes it directly.
type Tile struct {
	window  LayoutElement
	clock   *anim.Clock
	options *Options

	viewSize geom.Size

	// Last size requested from the window. The zero value means nothing
	// was requested yet.
	requestedSize geom.Size

	// Requested (compositor-side) fullscreen state. The window's own
	// IsFullscreen lags behind this until it acknowledges.
	pendingFullscreen bool

	// Whether the next commit should start a resize animation.
	animateNextCommit bool

	// Committed size seen by the last updateWindow call, for idempotence.
	lastCommitted geom.Size

	resizeAnim *resizeAnimation
	moveX      *moveAnimation
	moveY      *moveAnimation
	openAnim   *anim.Animation
	alphaAnim  *anim.Animation
}

// resizeAnimation interpolates the rendered size from the size at the
// moment of the commit to the committed size.
type resizeAnimation struct {
	anim *anim.Animation
	from geom.Size
}

// moveAnimation renders a decaying positional offset: offset = from*value,
// with the animation running 1 -> 0.
type moveAnimation struct {
	anim *anim.Animation
	from float64
}

func newTile(window LayoutElement, clock *anim.Clock, options *Options) *Tile {
	return &Tile{
		window:        window,
		clock:         clock,
		options:       options,
		lastCommitted: geom.SanitizeSize(window.Size()),
	}
}

func (t *Tile) Window() LayoutElement { return t.window }

func (t *Tile) ID() WindowID { return t.window.ID() }

func (t *Tile) updateConfig(viewSize geom.Size, options *Options) {
	t.viewSize = viewSize
	t.options = options
}

// CommittedSize returns the size the window last acknowledged.
func (t *Tile) CommittedSize() geom.Size {
	return geom.SanitizeSize(t.window.Size())
}

// RequestedSize returns the last size requested from the window.
func (t *Tile) RequestedSize() geom.Size {
	return t.requestedSize
}

// TileSize is the size used for layout accounting: the committed size, or
// the requested one while the window has not committed anything yet.
func (t *Tile) TileSize() geom.Size {
	committed := t.CommittedSize()
	if committed.IsEmpty() {
		return t.requestedSize
	}
	return committed
}

// minSize returns the window's minimum size with both components >= 1.
func (t *Tile) minSize() geom.Size {
	s := geom.SanitizeSize(t.window.MinSize())
	if s.W < 1 {
		s.W = 1
	}
	if s.H < 1 {
		s.H = 1
	}
	return s
}

// maxSize returns the window's maximum size; zero components mean
// unconstrained.
func (t *Tile) maxSize() geom.Size {
	return geom.SanitizeSize(t.window.MaxSize())
}

// clampToSizeHints applies the window min/max constraints to a size.
func (t *Tile) clampToSizeHints(size geom.Size) geom.Size {
	minS := t.minSize()
	maxS := t.maxSize()
	if size.W < minS.W {
		size.W = minS.W
	}
	if maxS.W > 0 && size.W > maxS.W {
		size.W = maxS.W
	}
	if size.H < minS.H {
		size.H = minS.H
	}
	if maxS.H > 0 && size.H > maxS.H {
		size.H = maxS.H
	}
	return size
}

// requestTileSize asks the window for a new size. A request identical to
// the previous one is dropped, so redundant layout passes never spam the
// window or restart animations.
func (t *Tile) requestTileSize(size geom.Size, animate bool) {
	size = t.clampToSizeHints(geom.SanitizeSize(size))
	if size == t.requestedSize && !t.pendingFullscreen {
		return
	}
	t.requestedSize = size
	if animate {
		t.animateNextCommit = true
	}
	if t.pendingFullscreen {
		// Leaving fullscreen through a normal size request.
		t.pendingFullscreen = false
		t.window.RequestFullscreen(false, t.viewSize)
	}
	t.window.RequestSize(size)
}

// requestFullscreen asks the window to fullscreen at the view size.
func (t *Tile) requestFullscreen(animate bool) {
	if t.pendingFullscreen {
		return
	}
	t.pendingFullscreen = true
	if animate {
		t.animateNextCommit = true
	}
	t.window.RequestFullscreen(true, t.viewSize)
}

// isPendingFullscreen returns the requested fullscreen state.
func (t *Tile) isPendingFullscreen() bool { return t.pendingFullscreen }

// SizingMode reports the committed sizing state.
func (t *Tile) SizingMode() SizingMode {
	if t.window.IsFullscreen() {
		return SizingFullscreen
	}
	return SizingNormal
}

// updateWindow is the communicate step: it ingests the committed size.
// Calling it twice with the same committed size is a no-op (no new size
// request, no animation restart). Returns whether anything changed.
func (t *Tile) updateWindow() bool {
	committed := t.CommittedSize()
	if committed == t.lastCommitted {
		return false
	}

	if t.animateNextCommit && !t.options.Animations.Off {
		// The window has already committed the new size; the visual
		// starting point is the previous commit as currently rendered.
		prev := t.lastCommitted
		if prev.IsEmpty() {
			prev = committed
		}
		from := t.renderSizeFrom(prev)
		t.resizeAnim = &resizeAnimation{
			anim: anim.New(t.clock, 0, 1, 0, t.options.animParams(t.options.Animations.WindowResize)),
			from: from,
		}
	}
	t.animateNextCommit = false
	t.lastCommitted = committed
	return true
}

// RenderSize is the interpolated on-screen size.
func (t *Tile) RenderSize() geom.Size {
	if t.window.IsFullscreen() {
		return t.viewSize
	}
	return t.renderSizeFrom(t.TileSize())
}

// renderSizeFrom interpolates the in-flight resize animation toward base.
func (t *Tile) renderSizeFrom(base geom.Size) geom.Size {
	if r := t.resizeAnim; r != nil {
		v := r.anim.Value()
		base = geom.Size{
			W: r.from.W + (base.W-r.from.W)*v,
			H: r.from.H + (base.H-r.from.H)*v,
		}
	}
	return base
}

// RenderOffset is the decaying positional offset from move animations.
func (t *Tile) RenderOffset() geom.Point {
	var off geom.Point
	if m := t.moveX; m != nil {
		off.X += m.from * m.anim.Value()
	}
	if m := t.moveY; m != nil {
		off.Y += m.from * m.anim.Value()
	}
	return off
}

// Alpha is the current render opacity, combining the open animation and
// any tabbed-display fade.
func (t *Tile) Alpha() float64 {
	alpha := 1.0
	if t.openAnim != nil {
		alpha *= t.openAnim.Value()
	}
	if t.alphaAnim != nil {
		alpha *= t.alphaAnim.Value()
	}
	return geom.Clamp(alpha, 0, 1)
}

func (t *Tile) startOpenAnimation() {
	t.openAnim = anim.New(t.clock, 0, 1, 0, t.options.animParams(t.options.Animations.WindowOpen))
}

// animateAlpha fades the tile between two opacities, used by the tabbed
// display mode.
func (t *Tile) animateAlpha(from, to float64, params anim.Params) {
	t.alphaAnim = anim.New(t.clock, from, to, 0, t.options.animParams(params))
}

// ensureAlphaAnimatesTo1 restores full opacity, animating from the current
// value if a fade is in flight.
func (t *Tile) ensureAlphaAnimatesTo1() {
	if t.alphaAnim == nil {
		return
	}
	if t.alphaAnim.To() == 1 {
		return
	}
	t.animateAlpha(t.alphaAnim.Value(), 1, t.options.Animations.WindowMovement)
}

func (t *Tile) animateMoveXFrom(delta float64) {
	t.animateMoveXFromWithConfig(delta, t.options.Animations.WindowMovement)
}

func (t *Tile) animateMoveXFromWithConfig(delta float64, params anim.Params) {
	current := 0.0
	if m := t.moveX; m != nil {
		current = m.from * m.anim.Value()
	}
	t.moveX = &moveAnimation{
		anim: anim.New(t.clock, 1, 0, 0, t.options.animParams(params)),
		from: delta + current,
	}
}

func (t *Tile) animateMoveYFrom(delta float64) {
	t.animateMoveYFromWithConfig(delta, t.options.Animations.WindowMovement)
}

func (t *Tile) animateMoveYFromWithConfig(delta float64, params anim.Params) {
	current := 0.0
	if m := t.moveY; m != nil {
		current = m.from * m.anim.Value()
	}
	t.moveY = &moveAnimation{
		anim: anim.New(t.clock, 1, 0, 0, t.options.animParams(params)),
		from: delta + current,
	}
}

// offsetMoveYAnimCurrent shifts an in-flight Y move animation so a sudden
// non-animated size change above this tile doesn't cause a visual jump.
// Stationary tiles are left alone.
func (t *Tile) offsetMoveYAnimCurrent(offset float64) {
	m := t.moveY
	if m == nil {
		return
	}
	v := m.anim.Value()
	// If the animation is almost done there is little point offsetting it.
	if v > 0.001 {
		m.from += offset / v
	}
}

// advanceAnimations drops finished animations. Values are sampled lazily
// from the clock, so this only prunes state.
func (t *Tile) advanceAnimations() {
	if t.resizeAnim != nil && t.resizeAnim.anim.IsDone() {
		t.resizeAnim = nil
	}
	if t.moveX != nil && t.moveX.anim.IsDone() {
		t.moveX = nil
	}
	if t.moveY != nil && t.moveY.anim.IsDone() {
		t.moveY = nil
	}
	if t.openAnim != nil && t.openAnim.IsDone() {
		t.openAnim = nil
	}
	if t.alphaAnim != nil && t.alphaAnim.IsDone() {
		if t.alphaAnim.To() == 1 {
			t.alphaAnim = nil
		}
	}
}

func (t *Tile) areAnimationsOngoing() bool {
	return t.resizeAnim != nil || t.moveX != nil || t.moveY != nil ||
		t.openAnim != nil ||
		(t.alphaAnim != nil && !t.alphaAnim.IsDone())
}
