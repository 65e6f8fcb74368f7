// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/options.go
// Summary: Validation boundary: raw Config values become engine Options.
// Notes: Out-of-range values are clamped here, never inside the engine. The
//        engine assumes every option it receives is already sane.

package config

import (
	"math"
	"time"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
	"github.com/framegrace/scrolltile/scroll"
)

// Clamping ranges for user-supplied numbers.
const (
	minDampingRatio = 0.1
	maxDampingRatio = 10.0
	minStiffness    = 0.1
	maxProportion   = 10.0
)

// Options validates the config and produces engine options. It never fails:
// every out-of-range value has a defined clamped interpretation.
func (c *Config) Options() *scroll.Options {
	o := scroll.DefaultOptions()

	if c.Gaps != nil {
		o.Gaps = sanitizeNonNegative(*c.Gaps)
	}
	o.Struts = geom.Struts{
		Left:   sanitizeNonNegative(c.Struts.Left),
		Right:  sanitizeNonNegative(c.Struts.Right),
		Top:    sanitizeNonNegative(c.Struts.Top),
		Bottom: sanitizeNonNegative(c.Struts.Bottom),
	}

	switch c.CenterFocusedColumn {
	case "always":
		o.CenterFocusedColumn = scroll.CenterAlways
	case "on-overflow":
		o.CenterFocusedColumn = scroll.CenterOnOverflow
	default:
		o.CenterFocusedColumn = scroll.CenterNever
	}
	o.AlwaysCenterSingleColumn = c.AlwaysCenterSingleColumn
	o.RTL = c.RTL

	if c.DefaultColumnWidth != nil {
		if w, ok := columnWidth(*c.DefaultColumnWidth); ok {
			o.DefaultColumnWidth = w
		}
	}
	if c.DefaultColumnDisplay == "tabbed" {
		o.DefaultColumnDisplay = scroll.DisplayTabbed
	}

	if presets := presetSizes(c.PresetColumnWidths); len(presets) > 0 {
		o.PresetColumnWidths = presets
	}
	if presets := presetSizes(c.PresetWindowHeights); len(presets) > 0 {
		o.PresetWindowHeights = presets
	}

	o.Animations.Off = c.Animations.Off
	if c.Animations.Slowdown != nil {
		s := *c.Animations.Slowdown
		if math.IsNaN(s) || s < 0 {
			s = 0
		}
		o.Animations.Slowdown = s
	}
	applyAnimation(&o.Animations.HorizontalViewMovement, c.Animations.HorizontalViewMovement)
	applyAnimation(&o.Animations.WindowMovement, c.Animations.WindowMovement)
	applyAnimation(&o.Animations.WindowResize, c.Animations.WindowResize)
	applyAnimation(&o.Animations.WindowOpen, c.Animations.WindowOpen)
	applyAnimation(&o.Animations.WindowClose, c.Animations.WindowClose)

	return o
}

// columnWidth converts a SizeSpec, rejecting specs with no usable value.
func columnWidth(s SizeSpec) (scroll.ColumnWidth, bool) {
	if p := sanitizeProportion(s.Proportion); p > 0 {
		return scroll.ProportionWidth(p), true
	}
	if s.Fixed >= 1 && !math.IsNaN(s.Fixed) {
		return scroll.FixedWidth(s.Fixed), true
	}
	return scroll.ColumnWidth{}, false
}

// presetSizes keeps the valid entries of a preset list, in order.
func presetSizes(specs []SizeSpec) []scroll.PresetSize {
	var out []scroll.PresetSize
	for _, s := range specs {
		if p := sanitizeProportion(s.Proportion); p > 0 {
			out = append(out, scroll.PresetSize{Proportion: p})
			continue
		}
		if s.Fixed >= 1 && !math.IsNaN(s.Fixed) {
			out = append(out, scroll.PresetSize{Fixed: s.Fixed})
		}
	}
	return out
}

// applyAnimation overlays one configured transition onto its default.
func applyAnimation(dst *anim.Params, src *Animation) {
	if src == nil {
		return
	}
	p := anim.Params{Off: src.Off}
	if src.Spring != nil {
		sp := anim.NewSpringParams(
			clamp(src.Spring.DampingRatio, minDampingRatio, maxDampingRatio),
			math.Max(src.Spring.Stiffness, minStiffness),
			math.Max(src.Spring.Epsilon, 0.00001),
		)
		p.Spring = &sp
	} else {
		ms := src.DurationMs
		if ms < 0 {
			ms = 0
		}
		p.Duration = time.Duration(ms) * time.Millisecond
		p.Curve = anim.CurveFromString(src.Curve)
	}
	*dst = p
}

func sanitizeNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// sanitizeProportion clamps to (0, maxProportion]; non-positive or NaN
// values come back as 0, meaning "unset".
func sanitizeProportion(p float64) float64 {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	return math.Min(p, maxProportion)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
