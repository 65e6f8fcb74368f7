// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/easing.go
// Summary: Easing curves for duration-based animations.

package anim

import "math"

// Curve identifies an easing function mapping progress [0,1] to an eased
// value [0,1].
type Curve int

const (
	EaseOutCubic Curve = iota
	EaseOutExpo
	EaseLinear
)

// Y evaluates the curve at x. Inputs outside [0,1] are clamped.
func (c Curve) Y(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	switch c {
	case EaseOutCubic:
		t := x - 1
		return t*t*t + 1
	case EaseOutExpo:
		return 1 - math.Pow(2, -10*x)
	default:
		return x
	}
}

// CurveFromString maps a configuration name to a curve, defaulting to
// ease-out-cubic for unknown names.
func CurveFromString(name string) Curve {
	switch name {
	case "ease-out-expo":
		return EaseOutExpo
	case "linear":
		return EaseLinear
	default:
		return EaseOutCubic
	}
}
