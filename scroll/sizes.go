// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/sizes.go
// Summary: Tagged width/height values and the size-change request type.

package scroll

import "math"

type widthKind int

const (
	widthProportion widthKind = iota
	widthFixed
)

// ColumnWidth is the desired width of a column: either a proportion of the
// working-area width or a fixed pixel value. A column always has exactly
// one width mode.
type ColumnWidth struct {
	kind  widthKind
	value float64
}

// ProportionWidth creates a proportional column width.
func ProportionWidth(p float64) ColumnWidth {
	return ColumnWidth{kind: widthProportion, value: clampProportion(p)}
}

// FixedWidth creates a fixed pixel column width.
func FixedWidth(px float64) ColumnWidth {
	return ColumnWidth{kind: widthFixed, value: clampPixels(px)}
}

// IsProportion reports whether the width is proportional, returning the
// fraction when it is.
func (w ColumnWidth) IsProportion() (float64, bool) {
	if w.kind == widthProportion {
		return w.value, true
	}
	return 0, false
}

// IsFixed reports whether the width is fixed, returning the pixel value
// when it is.
func (w ColumnWidth) IsFixed() (float64, bool) {
	if w.kind == widthFixed {
		return w.value, true
	}
	return 0, false
}

// resolve converts the width into pixels against the working-area width.
// Proportional widths are computed on the gap-reduced span and rounded to
// whole pixels; rounding always starts from the stored fraction so
// repeated resolves cannot accumulate drift.
func (w ColumnWidth) resolve(workingWidth, gaps float64) float64 {
	switch w.kind {
	case widthProportion:
		return math.Round((workingWidth-gaps)*w.value) - gaps
	default:
		return math.Round(w.value)
	}
}

func columnWidthFromPreset(preset PresetSize) ColumnWidth {
	if preset.Proportion > 0 {
		return ProportionWidth(preset.Proportion)
	}
	return FixedWidth(preset.Fixed)
}

type heightKind int

const (
	heightAuto heightKind = iota
	heightFixed
	heightPreset
)

// WindowHeight is the desired height of one tile within a column. At most
// one tile per column is non-auto; resizing a tile converts the others to
// auto, weighted to preserve their apparent heights.
type WindowHeight struct {
	kind heightKind
	// weight for auto, pixels for fixed.
	value float64
	// preset list index for preset heights.
	preset int
}

func autoHeight(weight float64) WindowHeight {
	return WindowHeight{kind: heightAuto, value: weight}
}

func fixedHeight(px float64) WindowHeight {
	return WindowHeight{kind: heightFixed, value: px}
}

func presetHeight(idx int) WindowHeight {
	return WindowHeight{kind: heightPreset, preset: idx}
}

func (h WindowHeight) isAuto() bool { return h.kind == heightAuto }

type sizeChangeKind int

const (
	sizeSetFixed sizeChangeKind = iota
	sizeSetProportion
	sizeAdjustFixed
	sizeAdjustProportion
)

// SizeChange describes a width/height mutation requested by the user:
// set to a fixed pixel value or proportion, or adjust the current value by
// a pixel or percentage-point delta.
type SizeChange struct {
	kind  sizeChangeKind
	value float64
}

func SetFixed(px float64) SizeChange {
	return SizeChange{kind: sizeSetFixed, value: px}
}

// SetProportion takes a percentage (50 = half the working area).
func SetProportion(percent float64) SizeChange {
	return SizeChange{kind: sizeSetProportion, value: percent}
}

func AdjustFixed(deltaPx float64) SizeChange {
	return SizeChange{kind: sizeAdjustFixed, value: deltaPx}
}

// AdjustProportion takes a percentage-point delta.
func AdjustProportion(deltaPercent float64) SizeChange {
	return SizeChange{kind: sizeAdjustProportion, value: deltaPercent}
}

func sizeChangeFromPreset(preset PresetSize) SizeChange {
	if preset.Proportion > 0 {
		return SetProportion(preset.Proportion * 100)
	}
	return SetFixed(preset.Fixed)
}

// Limits protecting the fixed-point math from pathological configuration.
const (
	maxPixelSize = 100000.0
	maxFraction  = 10000.0
)

func clampProportion(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, maxFraction)
}

func clampPixels(px float64) float64 {
	if math.IsNaN(px) || px < 1 {
		return 1
	}
	return math.Min(px, maxPixelSize)
}
