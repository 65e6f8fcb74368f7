// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geom/geom.go
// Summary: Floating-point geometry primitives shared by the layout engine.
// Usage: Used throughout the scroll package for tile and column positioning.

package geom

import "math"

// Point is a location in logical coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Loc  Point
	Size Size
}

// Struts is a four-sided inset applied to an output to obtain the working
// area.
type Struts struct {
	Left, Right, Top, Bottom float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func Sz(w, h float64) Size { return Size{W: w, H: h} }

func NewRect(x, y, w, h float64) Rect {
	return Rect{Loc: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (s Size) IsEmpty() bool { return s.W <= 0 || s.H <= 0 }

// Max returns the component-wise maximum of the two sizes.
func (s Size) Max(o Size) Size {
	return Size{W: math.Max(s.W, o.W), H: math.Max(s.H, o.H)}
}

func (r Rect) Right() float64 { return r.Loc.X + r.Size.W }

func (r Rect) Bottom() float64 { return r.Loc.Y + r.Size.H }

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Loc.X && p.X < r.Right() && p.Y >= r.Loc.Y && p.Y < r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Loc.X < o.Right() && o.Loc.X < r.Right() &&
		r.Loc.Y < o.Bottom() && o.Loc.Y < r.Bottom()
}

// MirrorU converts a leading-edge coordinate along the scroll axis into the
// mirrored coordinate for right-to-left layouts: x' = viewWidth - u - w.
// Applying it twice is the identity, so the same call serves both
// directions.
func MirrorU(u, width, viewWidth float64) float64 {
	return viewWidth - u - width
}

// ClampInt keeps v within [lo, hi]; a degenerate range collapses to lo.
func ClampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp limits v to [lo, hi]. When lo > hi it returns lo, matching the
// behavior expected when a degenerate working area collapses the range.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// SanitizeSize replaces NaN, infinite or negative dimensions with safe
// values so a single misbehaving window cannot poison layout math.
func SanitizeSize(s Size) Size {
	if math.IsNaN(s.W) || math.IsInf(s.W, 0) || s.W < 0 {
		s.W = 0
	}
	if math.IsNaN(s.H) || math.IsInf(s.H, 0) || s.H < 0 {
		s.H = 0
	}
	return s
}
