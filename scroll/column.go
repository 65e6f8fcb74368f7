// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/column.go
// Summary: A vertical stack of tiles sharing one width on the scroll axis.
// Usage: Owned exclusively by a Workspace. All positions handed out here are
//        leading-edge based; the workspace applies the camera and any RTL
//        mirroring on top.

package scroll

import (
	"math"
	"sort"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// tileData caches per-tile layout facts so offset iteration does not have to
// poke every window.
type tileData struct {
	height WindowHeight
	size   geom.Size
	// Set while an interactive resize drags the left edge, which anchors
	// the tile to the column's right side instead of its left.
	resizingByLeftEdge bool
}

func newTileData(tile *Tile, height WindowHeight) tileData {
	return tileData{height: height, size: tile.TileSize()}
}

func (d *tileData) update(tile *Tile) {
	d.size = tile.TileSize()
}

// Column is a group of tiles stacked on top of each other, always exactly as
// many data entries as tiles, never empty while owned by a workspace.
type Column struct {
	tiles []*Tile
	data  []tileData

	activeTileIdx int

	width          ColumnWidth
	presetWidthIdx int // -1 when the width is not a preset

	isFullWidth       bool
	pendingFullscreen bool
	pendingMaximized  bool

	display ColumnDisplay

	viewSize    geom.Size
	workingArea geom.Rect

	clock   *anim.Clock
	options *Options

	moveAnim *moveAnimation
}

func newColumn(tile *Tile, clock *anim.Clock, viewSize geom.Size, workingArea geom.Rect, options *Options, width ColumnWidth, isFullWidth bool) *Column {
	c := &Column{
		tiles:          []*Tile{},
		data:           []tileData{},
		presetWidthIdx: -1,
		width:          width,
		isFullWidth:    isFullWidth,
		display:        options.DefaultColumnDisplay,
		viewSize:       viewSize,
		workingArea:    workingArea,
		clock:          clock,
		options:        options,
	}
	c.addTileAt(0, tile, false)
	return c
}

func (c *Column) updateConfig(viewSize geom.Size, workingArea geom.Rect, options *Options) {
	c.viewSize = viewSize
	c.workingArea = workingArea
	c.options = options
	for _, t := range c.tiles {
		t.updateConfig(viewSize, options)
	}
}

func (c *Column) tileCount() int { return len(c.tiles) }

func (c *Column) activeTile() *Tile { return c.tiles[c.activeTileIdx] }

func (c *Column) contains(id WindowID) bool {
	return c.position(id) >= 0
}

func (c *Column) position(id WindowID) int {
	for i, t := range c.tiles {
		if t.ID() == id {
			return i
		}
	}
	return -1
}

func (c *Column) activateIdx(idx int) bool {
	if idx < 0 || idx >= len(c.tiles) || idx == c.activeTileIdx {
		return false
	}
	if c.display == DisplayTabbed {
		c.tiles[c.activeTileIdx].animateAlpha(c.tiles[c.activeTileIdx].Alpha(), 0, c.options.Animations.WindowMovement)
	}
	c.activeTileIdx = idx
	c.tiles[idx].ensureAlphaAnimatesTo1()
	if c.display == DisplayTabbed {
		c.tiles[idx].animateAlpha(c.tiles[idx].Alpha(), 1, c.options.Animations.WindowMovement)
	}
	return true
}

func (c *Column) focusUp() bool   { return c.activateIdx(c.activeTileIdx - 1) }
func (c *Column) focusDown() bool { return c.activateIdx(c.activeTileIdx + 1) }
func (c *Column) focusTop()       { c.activateIdx(0) }
func (c *Column) focusBottom()    { c.activateIdx(len(c.tiles) - 1) }

// addTileAt inserts a tile, keeping the data slice in step, and animates the
// displaced tiles from their previous offsets.
func (c *Column) addTileAt(idx int, tile *Tile, animate bool) {
	tile.updateConfig(c.viewSize, c.options)

	prevOffsets := c.tileOffsets()

	// A second tile in a normal column cancels fullscreen/maximize; tabbed
	// columns keep it, the new tab simply joins.
	if c.display != DisplayTabbed {
		c.pendingFullscreen = false
		c.pendingMaximized = false
	}

	c.data = append(c.data, tileData{})
	copy(c.data[idx+1:], c.data[idx:])
	c.data[idx] = newTileData(tile, autoHeight(1))
	c.tiles = append(c.tiles, nil)
	copy(c.tiles[idx+1:], c.tiles[idx:])
	c.tiles[idx] = tile

	if idx <= c.activeTileIdx && len(c.tiles) > 1 {
		c.activeTileIdx++
	}

	c.updateTileSizes(animate)
	c.refreshData()

	if !animate {
		return
	}
	newOffsets := c.tileOffsets()
	for i := range c.tiles {
		if i == idx {
			continue
		}
		prevIdx := i
		if i > idx {
			prevIdx = i - 1
		}
		dy := prevOffsets[prevIdx].Y - newOffsets[i].Y
		if dy != 0 {
			c.tiles[i].animateMoveYFrom(dy)
		}
	}
}

// removeTileAt detaches a tile; the caller deals with an emptied column.
func (c *Column) removeTileAt(idx int) *Tile {
	prevOffsets := c.tileOffsets()

	tile := c.tiles[idx]
	c.tiles = append(c.tiles[:idx], c.tiles[idx+1:]...)
	c.data = append(c.data[:idx], c.data[idx+1:]...)

	if len(c.tiles) == 0 {
		c.activeTileIdx = 0
		return tile
	}
	if idx < c.activeTileIdx || c.activeTileIdx == len(c.tiles) {
		c.activeTileIdx--
	}

	// A single leftover tile goes back to auto height.
	if len(c.tiles) == 1 {
		c.data[0].height = autoHeight(1)
	}

	c.updateTileSizes(true)
	c.refreshData()

	newOffsets := c.tileOffsets()
	for i := range c.tiles {
		prevIdx := i
		if i >= idx {
			prevIdx = i + 1
		}
		dy := prevOffsets[prevIdx].Y - newOffsets[i].Y
		if dy != 0 {
			c.tiles[i].animateMoveYFrom(dy)
		}
	}
	return tile
}

// moveUp swaps the active tile with the one above it, animating both.
func (c *Column) moveUp() bool {
	newIdx := c.activeTileIdx - 1
	if newIdx < 0 {
		return false
	}
	offsets := c.tileOffsets()
	activeY := offsets[c.activeTileIdx].Y
	otherY := offsets[newIdx].Y

	c.tiles[c.activeTileIdx], c.tiles[newIdx] = c.tiles[newIdx], c.tiles[c.activeTileIdx]
	c.data[c.activeTileIdx], c.data[newIdx] = c.data[newIdx], c.data[c.activeTileIdx]
	c.activeTileIdx = newIdx

	newActiveY := c.tileOffset(newIdx).Y
	c.tiles[newIdx].animateMoveYFrom(activeY - newActiveY)
	c.tiles[newIdx+1].animateMoveYFrom(otherY - c.tileOffset(newIdx+1).Y)
	return true
}

// moveDown swaps the active tile with the one below it.
func (c *Column) moveDown() bool {
	newIdx := c.activeTileIdx + 1
	if newIdx >= len(c.tiles) {
		return false
	}
	offsets := c.tileOffsets()
	activeY := offsets[c.activeTileIdx].Y
	otherY := offsets[newIdx].Y

	c.tiles[c.activeTileIdx], c.tiles[newIdx] = c.tiles[newIdx], c.tiles[c.activeTileIdx]
	c.data[c.activeTileIdx], c.data[newIdx] = c.data[newIdx], c.data[c.activeTileIdx]
	c.activeTileIdx = newIdx

	newActiveY := c.tileOffset(newIdx).Y
	c.tiles[newIdx].animateMoveYFrom(activeY - newActiveY)
	c.tiles[newIdx-1].animateMoveYFrom(otherY - c.tileOffset(newIdx-1).Y)
	return true
}

// SizingMode reports the committed mode: fullscreen wins as soon as any tile
// is still actually fullscreen, which keeps the camera-restore bookkeeping
// honest while un-fullscreen requests are in flight.
func (c *Column) SizingMode() SizingMode {
	for _, t := range c.tiles {
		if t.SizingMode().IsFullscreen() {
			return SizingFullscreen
		}
	}
	if c.pendingMaximized {
		return SizingMaximized
	}
	return SizingNormal
}

func (c *Column) pendingSizingMode() SizingMode {
	if c.pendingFullscreen {
		return SizingFullscreen
	}
	if c.pendingMaximized {
		return SizingMaximized
	}
	return SizingNormal
}

func (c *Column) isPendingFullscreen() bool { return c.pendingFullscreen }
func (c *Column) isPendingMaximized() bool  { return c.pendingMaximized }

func (c *Column) setFullscreen(on bool) {
	if c.pendingFullscreen == on {
		return
	}
	c.pendingFullscreen = on
	c.updateTileSizes(true)
}

func (c *Column) setMaximized(on bool) {
	if c.pendingMaximized == on {
		return
	}
	c.pendingMaximized = on
	c.updateTileSizes(true)
}

func (c *Column) displayMode() ColumnDisplay { return c.display }

func (c *Column) setColumnDisplay(display ColumnDisplay) {
	if c.display == display {
		return
	}
	c.display = display
	for i, t := range c.tiles {
		if display == DisplayTabbed && i != c.activeTileIdx {
			t.animateAlpha(t.Alpha(), 0, c.options.Animations.WindowMovement)
		} else {
			t.ensureAlphaAnimatesTo1()
		}
	}
	c.updateTileSizes(true)
}

func (c *Column) toggleColumnDisplay() {
	if c.display == DisplayTabbed {
		c.setColumnDisplay(DisplayNormal)
	} else {
		c.setColumnDisplay(DisplayTabbed)
	}
}

// resolveColumnWidth turns a width value into pixels for the current working
// area.
func (c *Column) resolveColumnWidth(width ColumnWidth) float64 {
	return width.resolve(c.workingArea.Size.W, c.options.Gaps)
}

func (c *Column) resolvePresetWidth(preset PresetSize) float64 {
	return columnWidthFromPreset(preset).resolve(c.workingArea.Size.W, c.options.Gaps)
}

func (c *Column) resolvePresetHeight(preset PresetSize) float64 {
	if preset.Proportion > 0 {
		return math.Round((c.workingArea.Size.H-c.options.Gaps)*preset.Proportion) - c.options.Gaps
	}
	return preset.Fixed
}

// updateTileSizes recomputes every tile's requested size from the column
// width and the height assignments, then sends the requests. Heights use an
// iterative distribution: pick auto heights by weight, and whenever one
// falls below a tile's min height, fix that tile at its min and redo the
// split with what remains.
func (c *Column) updateTileSizes(animate bool) {
	switch c.pendingSizingMode() {
	case SizingFullscreen:
		for _, t := range c.tiles {
			t.requestFullscreen(animate)
		}
		return
	case SizingMaximized:
		size := geom.Size{
			W: c.workingArea.Size.W - c.options.Gaps*2,
			H: c.workingArea.Size.H - c.options.Gaps*2,
		}
		for _, t := range c.tiles {
			t.requestTileSize(size, animate)
		}
		return
	}

	isTabbed := c.display == DisplayTabbed
	gaps := c.options.Gaps

	minSizes := make([]geom.Size, len(c.tiles))
	maxSizes := make([]geom.Size, len(c.tiles))
	for i, t := range c.tiles {
		minSizes[i] = t.minSize()
		maxSizes[i] = t.maxSize()
	}

	// Column width: the widest min wins, the narrowest positive max caps.
	minWidth := 1.0
	for _, s := range minSizes {
		minWidth = math.Max(minWidth, s.W)
	}
	maxWidth := math.MaxFloat64
	for _, s := range maxSizes {
		if s.W > 0 {
			maxWidth = math.Min(maxWidth, s.W)
		}
	}
	maxWidth = math.Max(maxWidth, minWidth)

	width := c.width
	if c.isFullWidth {
		width = ProportionWidth(1)
	}
	widthPx := geom.Clamp(c.resolveColumnWidth(width), minWidth, maxWidth)

	maxTileHeight := c.workingArea.Size.H - gaps*2

	// With several stacked tiles, the non-auto one may not squeeze the
	// others below their min heights.
	maxNonAutoHeight := math.NaN()
	if len(c.tiles) > 1 && !isTabbed {
		for nonAutoIdx, d := range c.data {
			if d.height.isAuto() {
				continue
			}
			minTaken := 0.0
			for i, s := range minSizes {
				if i != nonAutoIdx {
					minTaken += s.H + gaps
				}
			}
			maxNonAutoHeight = math.Max(1, math.Round(maxTileHeight-minTaken))
			break
		}
	}

	// Turn fixed and preset heights into concrete pixels; auto stays auto
	// for the distribution below.
	heights := make([]WindowHeight, len(c.tiles))
	for i, d := range c.data {
		switch d.height.kind {
		case heightAuto:
			heights[i] = d.height
		case heightFixed:
			h := math.Max(1, math.Round(d.height.value))
			if !math.IsNaN(maxNonAutoHeight) {
				h = math.Min(h, maxNonAutoHeight)
			} else {
				h = math.Min(h, maxTileHeight)
			}
			heights[i] = fixedHeight(h)
		case heightPreset:
			h := c.resolvePresetHeight(c.options.PresetWindowHeights[d.height.preset])
			h = geom.Clamp(math.Round(h), 1, maxPixelSize)
			if !math.IsNaN(maxNonAutoHeight) {
				h = math.Min(h, maxNonAutoHeight)
			}
			heights[i] = fixedHeight(h)
		}
	}

	// All tabs share one height: the fixed tab's if any, otherwise the
	// full working height, but never below the tallest tab's min height.
	if isTabbed {
		tabbedHeight := maxTileHeight
		for _, h := range heights {
			if !h.isAuto() {
				tabbedHeight = h.value
				break
			}
		}
		minHeight := 0.0
		for _, s := range minSizes {
			minHeight = math.Max(minHeight, s.H)
		}
		// A larger-than-workspace tab must not force every tab to that size.
		minHeight = math.Min(minHeight, maxTileHeight)
		tabbedHeight = math.Max(tabbedHeight, minHeight)
		for i := range heights {
			heights[i] = fixedHeight(tabbedHeight)
		}
	}

	heightLeft := c.workingArea.Size.H - gaps*float64(len(c.tiles)+1)
	autoTilesLeft := len(c.tiles)

	for i := range heights {
		// An exact height constraint wins over everything.
		if minSizes[i].H == maxSizes[i].H && minSizes[i].H > 0 {
			heights[i] = fixedHeight(minSizes[i].H)
		}
		if heights[i].isAuto() {
			continue
		}
		h := heights[i].value
		if maxSizes[i].H > 0 {
			h = math.Min(h, maxSizes[i].H)
		}
		h = math.Max(h, minSizes[i].H)
		heights[i] = fixedHeight(h)
		heightLeft -= h
		autoTilesLeft--
	}

	totalWeight := 0.0
	for _, h := range heights {
		if h.isAuto() {
			totalWeight += h.value
		}
	}

	// Distribute the remainder, restarting whenever a min height trips:
	// fixing a tile at its min leaves less for the rest, so a single pass
	// could trip later mins too early and snap visibly.
outer:
	for autoTilesLeft > 0 {
		heightLeft2 := heightLeft
		totalWeight2 := totalWeight
		for i, h := range heights {
			if !h.isAuto() {
				continue
			}
			weight := h.value
			auto := heightLeft2 * (weight / totalWeight2)

			if minSizes[i].H > auto {
				auto = minSizes[i].H
				heights[i] = fixedHeight(auto)
				heightLeft -= auto
				totalWeight -= weight
				autoTilesLeft--
				continue outer
			}

			auto = math.Max(1, math.Round(auto))
			heightLeft2 -= auto
			totalWeight2 -= weight
		}

		// Every min height held; finalize.
		for i, h := range heights {
			if !h.isAuto() {
				continue
			}
			weight := h.value
			auto := math.Max(1, math.Round(heightLeft*(weight/totalWeight)))
			heights[i] = fixedHeight(auto)
			heightLeft -= auto
			totalWeight -= weight
			autoTilesLeft--
		}
	}

	for i, t := range c.tiles {
		t.requestTileSize(geom.Size{W: widthPx, H: heights[i].value}, animate)
	}
}

// width is the rendered column width: the widest tile wins.
func (c *Column) renderWidth() float64 {
	w := 0.0
	for _, t := range c.tiles {
		w = math.Max(w, t.RenderSize().W)
	}
	return w
}

// logicalWidth is the width used for camera math, taken from the cached
// tile data so in-flight resize animations don't wobble the view.
func (c *Column) logicalWidth() float64 {
	w := 0.0
	for _, d := range c.data {
		w = math.Max(w, d.size.W)
	}
	return w
}

// toggleWidth cycles through the preset widths. When the current width is
// not a preset, entry is smart: forwards picks the first preset wider than
// the current width, backwards the last narrower one.
func (c *Column) toggleWidth(tileIdx int, forwards bool) {
	if tileIdx < 0 {
		tileIdx = c.activeTileIdx
	}
	presets := c.options.PresetColumnWidths
	if len(presets) == 0 {
		return
	}

	presetIdx := c.presetWidthIdx
	if c.isFullWidth || c.pendingMaximized {
		presetIdx = -1
	}

	if presetIdx >= 0 {
		if forwards {
			presetIdx = (presetIdx + 1) % len(presets)
		} else {
			presetIdx = (presetIdx + len(presets) - 1) % len(presets)
		}
	} else {
		current := c.tiles[tileIdx].TileSize().W
		if req := c.tiles[tileIdx].RequestedSize(); !req.IsEmpty() {
			current = req.W
		}
		if forwards {
			presetIdx = 0
			for i, p := range presets {
				// Allowance of one pixel for rounding.
				if current+1 < c.resolvePresetWidth(p) {
					presetIdx = i
					break
				}
			}
		} else {
			presetIdx = len(presets) - 1
			for i := len(presets) - 1; i >= 0; i-- {
				if c.resolvePresetWidth(presets[i])+1 < current {
					presetIdx = i
					break
				}
			}
		}
	}

	c.setColumnWidth(sizeChangeFromPreset(presets[presetIdx]), tileIdx, true)
	c.presetWidthIdx = presetIdx
}

// toggleFullWidth is the maximize toggle: a flag over the stored width, so
// untoggling restores the exact previous width.
func (c *Column) toggleFullWidth() {
	if c.pendingMaximized {
		c.pendingMaximized = false
		c.isFullWidth = false
	} else {
		c.isFullWidth = !c.isFullWidth
	}
	c.updateTileSizes(true)
}

func (c *Column) setColumnWidth(change SizeChange, tileIdx int, animate bool) {
	current := c.width
	if c.isFullWidth || c.pendingMaximized {
		current = ProportionWidth(1)
	}
	currentPx := c.resolveColumnWidth(current)

	var width ColumnWidth
	switch change.kind {
	case sizeSetFixed:
		width = FixedWidth(change.value)
	case sizeSetProportion:
		width = ProportionWidth(change.value / 100)
	case sizeAdjustFixed:
		width = FixedWidth(currentPx + change.value)
	case sizeAdjustProportion:
		prop, ok := current.IsProportion()
		if !ok {
			full := c.workingArea.Size.W - c.options.Gaps
			if full <= 0 {
				prop = 1
			} else {
				prop = (currentPx + c.options.Gaps) / full
			}
		}
		width = ProportionWidth(prop + change.value/100)
	}

	c.width = width
	c.presetWidthIdx = -1
	c.isFullWidth = false
	c.pendingMaximized = false
	c.updateTileSizes(animate)
}

// setWindowHeight gives one tile an explicit height. Every other tile is
// first converted to auto: only one window per column is ever non-auto.
func (c *Column) setWindowHeight(change SizeChange, tileIdx int, animate bool) {
	if tileIdx < 0 {
		tileIdx = c.activeTileIdx
	}

	// Skipping the conversion when the target is already non-auto is not
	// just an optimization: it preserves the auto weights in case a resize
	// pushed other windows to their min size and then back.
	if c.data[tileIdx].height.isAuto() {
		c.convertHeightsToAuto()
	}

	tile := c.tiles[tileIdx]
	currentPx := tile.TileSize().H
	if c.data[tileIdx].height.kind == heightFixed {
		currentPx = c.data[tileIdx].height.value
	}

	workingH := c.workingArea.Size.H
	gaps := c.options.Gaps
	full := workingH - gaps
	currentProp := 1.0
	if full > 0 {
		currentProp = (currentPx + gaps) / full
	}

	var height float64
	switch change.kind {
	case sizeSetFixed:
		height = change.value
	case sizeSetProportion:
		height = (workingH-gaps)*(change.value/100) - gaps
	case sizeAdjustFixed:
		height = currentPx + change.value
	case sizeAdjustProportion:
		height = (workingH-gaps)*(currentProp+change.value/100) - gaps
	}

	// Leave room for the other tiles' min heights (tabs overlap, so they
	// don't constrain each other).
	minTaken := 0.0
	if c.display != DisplayTabbed {
		for i, t := range c.tiles {
			if i != tileIdx {
				minTaken += t.minSize().H + gaps
			}
		}
	}
	heightLeft := math.Max(1, workingH-gaps*2-minTaken)
	height = math.Min(height, heightLeft)

	minS := tile.minSize()
	maxS := tile.maxSize()
	if maxS.H > 0 {
		height = math.Min(height, maxS.H)
	}
	height = math.Max(height, minS.H)

	c.data[tileIdx].height = fixedHeight(geom.Clamp(height, 1, maxPixelSize))
	c.pendingMaximized = false
	c.updateTileSizes(animate)
}

func (c *Column) resetWindowHeight(tileIdx int) {
	if c.display == DisplayTabbed {
		// Any tab may hold the fixed height, so reset them all.
		for i := range c.data {
			c.data[i].height = autoHeight(1)
		}
	} else {
		if tileIdx < 0 {
			tileIdx = c.activeTileIdx
		}
		c.data[tileIdx].height = autoHeight(1)
	}
	c.updateTileSizes(true)
}

// toggleWindowHeight cycles the preset heights for one tile, with the same
// smart re-entry rule as toggleWidth.
func (c *Column) toggleWindowHeight(tileIdx int, forwards bool) {
	if tileIdx < 0 {
		tileIdx = c.activeTileIdx
	}
	presets := c.options.PresetWindowHeights
	if len(presets) == 0 {
		return
	}

	if c.data[tileIdx].height.isAuto() {
		c.convertHeightsToAuto()
	}

	var presetIdx int
	if h := c.data[tileIdx].height; h.kind == heightPreset && !c.pendingMaximized {
		if forwards {
			presetIdx = (h.preset + 1) % len(presets)
		} else {
			presetIdx = (h.preset + len(presets) - 1) % len(presets)
		}
	} else {
		current := c.data[tileIdx].size.H
		resolved := make([]float64, len(presets))
		for i, p := range presets {
			resolved[i] = geom.Clamp(math.Round(c.resolvePresetHeight(p)), 1, maxPixelSize)
		}
		if forwards {
			presetIdx = 0
			for i, r := range resolved {
				if current+1 < r {
					presetIdx = i
					break
				}
			}
		} else {
			presetIdx = len(presets) - 1
			for i := len(presets) - 1; i >= 0; i-- {
				if resolved[i]+1 < current {
					presetIdx = i
					break
				}
			}
		}
	}

	c.data[tileIdx].height = presetHeight(presetIdx)
	c.pendingMaximized = false
	c.updateTileSizes(true)
}

// convertHeightsToAuto turns every height into an auto weight preserving the
// apparent heights. Weights are scale-invariant, so the median tile height
// becomes weight 1.
func (c *Column) convertHeightsToAuto() {
	heights := make([]float64, len(c.tiles))
	for i, t := range c.tiles {
		heights[i] = t.TileSize().H
	}
	sorted := append([]float64(nil), heights...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if median <= 0 {
		median = 1
	}
	for i := range c.data {
		c.data[i].height = autoHeight(heights[i] / median)
	}
}

// tilesOrigin is where the first tile starts within the column. Fullscreen
// draws from the output corner, everything else from the working area inset
// by one gap.
func (c *Column) tilesOrigin() geom.Point {
	if c.SizingMode().IsFullscreen() {
		return geom.Point{}
	}
	return geom.Point{X: 0, Y: c.workingArea.Loc.Y + c.options.Gaps}
}

// tileOffsets returns each tile's position relative to the column's leading
// edge. In always-center mode narrower tiles are centered within the column;
// a tile dragged by its left edge is anchored to the right instead.
func (c *Column) tileOffsets() []geom.Point {
	offsets := make([]geom.Point, len(c.tiles))
	center := c.options.CenterFocusedColumn == CenterAlways
	tabbed := c.display == DisplayTabbed
	colWidth := c.logicalWidth()

	origin := c.tilesOrigin()
	for i, d := range c.data {
		pos := origin
		if center {
			pos.X += (colWidth - d.size.W) / 2
		} else if d.resizingByLeftEdge {
			pos.X += colWidth - d.size.W
		}
		offsets[i] = pos
		if !tabbed {
			origin.Y += d.size.H + c.options.Gaps
		}
	}
	return offsets
}

func (c *Column) tileOffset(idx int) geom.Point {
	return c.tileOffsets()[idx]
}

// refreshData re-reads every tile's layout size, so geometry is coherent
// even before the windows ever commit.
func (c *Column) refreshData() {
	for i, t := range c.tiles {
		c.data[i].update(t)
	}
}

// updateWindow ingests a commit for one window and keeps the tiles below it
// visually attached to the resize.
func (c *Column) updateWindow(id WindowID) bool {
	tileIdx := c.position(id)
	if tileIdx < 0 {
		return false
	}
	tile := c.tiles[tileIdx]

	prevHeight := c.data[tileIdx].size.H
	tile.updateWindow()
	c.data[tileIdx].update(tile)
	offset := prevHeight - c.data[tileIdx].size.H

	if c.display == DisplayTabbed || offset == 0 {
		return true
	}
	if tile.resizeAnim != nil {
		// The apparent size change is smooth, so tiles below get a matching
		// Y animation.
		for _, below := range c.tiles[tileIdx+1:] {
			below.animateMoveYFromWithConfig(offset, c.options.Animations.WindowResize)
		}
	} else {
		// No resize animation but a nonzero offset: the window resized on
		// its own. Stationary tiles below jump with it; already-animating
		// ones offset their animation to avoid a visible snap.
		for _, below := range c.tiles[tileIdx+1:] {
			below.offsetMoveYAnimCurrent(offset)
		}
	}
	return true
}

func (c *Column) renderOffset() geom.Point {
	var off geom.Point
	if m := c.moveAnim; m != nil {
		off.X += m.from * m.anim.Value()
	}
	return off
}

func (c *Column) animateMoveFrom(fromXOffset float64) {
	c.animateMoveFromWithConfig(fromXOffset, c.options.Animations.WindowMovement)
}

func (c *Column) animateMoveFromWithConfig(fromXOffset float64, params anim.Params) {
	current := 0.0
	if m := c.moveAnim; m != nil {
		current = m.from * m.anim.Value()
	}
	c.moveAnim = &moveAnimation{
		anim: anim.New(c.clock, 1, 0, 0, c.options.animParams(params)),
		from: fromXOffset + current,
	}
}

func (c *Column) offsetMoveAnimCurrent(offset float64) {
	m := c.moveAnim
	if m == nil {
		return
	}
	if v := m.anim.Value(); v > 0.001 {
		m.from += offset / v
	}
}

func (c *Column) advanceAnimations() {
	if c.moveAnim != nil && c.moveAnim.anim.IsDone() {
		c.moveAnim = nil
	}
	for _, t := range c.tiles {
		t.advanceAnimations()
	}
}

func (c *Column) areAnimationsOngoing() bool {
	if c.moveAnim != nil {
		return true
	}
	for _, t := range c.tiles {
		if t.areAnimationsOngoing() {
			return true
		}
	}
	return false
}
