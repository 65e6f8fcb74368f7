// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/options.go
// Summary: Configurable properties of the layout engine.
// Usage: Built by the config package at the boundary; the engine assumes
//        every value in here is already validated and in range.

package scroll

import (
	"time"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// CenterFocusedColumn selects the camera centering policy.
type CenterFocusedColumn int

const (
	// CenterNever scrolls the minimum amount to fit the active column.
	CenterNever CenterFocusedColumn = iota
	// CenterAlways keeps the active column centered.
	CenterAlways
	// CenterOnOverflow behaves like CenterNever until the columns involved
	// no longer fit the view together, then centers.
	CenterOnOverflow
)

// ColumnDisplay selects how a column arranges its tiles.
type ColumnDisplay int

const (
	// DisplayNormal stacks all tiles vertically with gaps.
	DisplayNormal ColumnDisplay = iota
	// DisplayTabbed shows only the active tile at full column height.
	DisplayTabbed
)

// SizingMode is the effective sizing state of a tile or column.
type SizingMode int

const (
	SizingNormal SizingMode = iota
	SizingMaximized
	SizingFullscreen
)

func (m SizingMode) IsFullscreen() bool { return m == SizingFullscreen }
func (m SizingMode) IsMaximized() bool  { return m == SizingMaximized }
func (m SizingMode) IsNormal() bool     { return m == SizingNormal }

// PresetSize is one entry of a preset width/height list.
type PresetSize struct {
	// Proportion of the working area, used when > 0.
	Proportion float64
	// Fixed size in logical pixels, used when Proportion == 0.
	Fixed float64
}

// AnimationOptions hold per-transition animation parameters.
type AnimationOptions struct {
	// Off disables every animation regardless of per-kind settings.
	Off bool
	// Slowdown multiplies all animation timescales.
	Slowdown float64

	HorizontalViewMovement anim.Params
	WindowMovement         anim.Params
	WindowResize           anim.Params
	WindowOpen             anim.Params
	WindowClose            anim.Params
}

// Options are the layout knobs consumed (not owned) by this engine.
type Options struct {
	// Gaps between tiles and columns, logical pixels.
	Gaps float64
	// Struts inset the output to produce the working area.
	Struts geom.Struts

	CenterFocusedColumn      CenterFocusedColumn
	AlwaysCenterSingleColumn bool

	// RTL mirrors render positions along the scroll axis.
	RTL bool

	DefaultColumnWidth   ColumnWidth
	DefaultColumnDisplay ColumnDisplay

	PresetColumnWidths  []PresetSize
	PresetWindowHeights []PresetSize

	Animations AnimationOptions
}

// DefaultOptions returns the built-in defaults, matching the documented
// preset lists (thirds for widths, thirds for heights).
func DefaultOptions() *Options {
	return &Options{
		Gaps:                 16,
		DefaultColumnWidth:   ProportionWidth(0.5),
		DefaultColumnDisplay: DisplayNormal,
		PresetColumnWidths: []PresetSize{
			{Proportion: 1.0 / 3.0},
			{Proportion: 0.5},
			{Proportion: 2.0 / 3.0},
		},
		PresetWindowHeights: []PresetSize{
			{Proportion: 1.0 / 3.0},
			{Proportion: 0.5},
			{Proportion: 2.0 / 3.0},
		},
		Animations: DefaultAnimationOptions(),
	}
}

// DefaultAnimationOptions mirror the upstream defaults: spring-driven view
// and window movement, eased resize.
func DefaultAnimationOptions() AnimationOptions {
	viewSpring := anim.NewSpringParams(1, 800, 0.0001)
	moveSpring := anim.NewSpringParams(1, 800, 0.0001)
	return AnimationOptions{
		Slowdown: 1,
		HorizontalViewMovement: anim.Params{Spring: &viewSpring},
		WindowMovement:         anim.Params{Spring: &moveSpring},
		WindowResize: anim.Params{
			Duration: 250 * time.Millisecond,
			Curve:    anim.EaseOutCubic,
		},
		WindowOpen: anim.Params{
			Duration: 150 * time.Millisecond,
			Curve:    anim.EaseOutExpo,
		},
		WindowClose: anim.Params{
			Duration: 150 * time.Millisecond,
			Curve:    anim.EaseOutCubic,
		},
	}
}

// animParams returns p with the global off switch applied.
func (o *Options) animParams(p anim.Params) anim.Params {
	if o.Animations.Off {
		p.Off = true
	}
	return p
}
