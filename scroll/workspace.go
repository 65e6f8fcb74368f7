// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/workspace.go
// Summary: One scrollable row of columns and the camera over it.
// Usage: Created per output workspace by a Monitor. All mutating operations
//        funnel through here; the camera only ever moves in response to
//        activation, resizing, or gestures.
// Notes: Internally every position is leading-edge based. RTL mirroring is
//        applied only when producing render positions.

package scroll

import (
	"math"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// columnData caches the logical column width so camera math never reads
// animated render sizes.
type columnData struct {
	width float64
}

func (d *columnData) update(col *Column) {
	d.width = col.logicalWidth()
}

// RemovedTile is a tile detached from a workspace together with the sizing
// it should keep when re-inserted elsewhere.
type RemovedTile struct {
	Tile        *Tile
	Width       ColumnWidth
	IsFullWidth bool
}

// closingTile is a removed tile kept around while its close animation
// fades out. pos is in strip coordinates, camera not applied.
type closingTile struct {
	window LayoutElement
	pos    geom.Point
	size   geom.Size
	alpha  *anim.Animation
}

// TileRender is one tile's final on-screen placement for a frame.
type TileRender struct {
	Window  LayoutElement
	Rect    geom.Rect
	Alpha   float64
	Active  bool
	Visible bool
}

// Workspace is a scrollable space: columns on a horizontal strip, a camera
// showing a view-sized window onto it.
type Workspace struct {
	columns []*Column
	data    []columnData

	activeColumnIdx int

	viewOffsetState viewOffset

	// Stationary offset to restore when the column added right of the
	// active one is removed again without the focus having moved.
	activatePrevColumnOnRemoval *float64

	// Stationary offset to restore when the active column leaves
	// fullscreen or maximize.
	viewOffsetToRestore *float64

	interactiveResize *interactiveResize

	// Tiles whose windows are gone but whose close animation still runs.
	closing []closingTile

	viewSize    geom.Size
	workingArea geom.Rect

	clock   *anim.Clock
	options *Options
}

func NewWorkspace(viewSize geom.Size, clock *anim.Clock, options *Options) *Workspace {
	return &Workspace{
		viewOffsetState: staticViewOffset(0),
		viewSize:        viewSize,
		workingArea:     computeWorkingArea(viewSize, options.Struts),
		clock:           clock,
		options:         options,
	}
}

// UpdateConfig applies a new view size and options, re-resolving the camera
// so policies like always-center take effect immediately.
func (w *Workspace) UpdateConfig(viewSize geom.Size, options *Options) {
	w.viewSize = viewSize
	w.workingArea = computeWorkingArea(viewSize, options.Struts)
	w.options = options
	for i, col := range w.columns {
		col.updateConfig(viewSize, w.workingArea, options)
		col.updateTileSizes(false)
		w.data[i].update(col)
	}
	if len(w.columns) > 0 && !w.viewOffsetState.isGesture() {
		w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
	}
}

func (w *Workspace) IsEmpty() bool { return len(w.columns) == 0 }

func (w *Workspace) ViewSize() geom.Size     { return w.viewSize }
func (w *Workspace) WorkingArea() geom.Rect  { return w.workingArea }
func (w *Workspace) Options() *Options       { return w.options }
func (w *Workspace) Clock() *anim.Clock      { return w.clock }
func (w *Workspace) ActiveColumnIdx() int    { return w.activeColumnIdx }
func (w *Workspace) ColumnCount() int        { return len(w.columns) }
func (w *Workspace) ViewOffset() float64     { return w.viewOffsetState.current() }
func (w *Workspace) IsViewStatic() bool      { return w.viewOffsetState.isStatic() }

// ActiveWindow returns the focused window, or nil on an empty workspace.
func (w *Workspace) ActiveWindow() LayoutElement {
	if len(w.columns) == 0 {
		return nil
	}
	return w.columns[w.activeColumnIdx].activeTile().Window()
}

// HasWindow reports whether the workspace contains the window.
func (w *Workspace) HasWindow(id WindowID) bool {
	return w.columnIdxOf(id) >= 0
}

func (w *Workspace) columnIdxOf(id WindowID) int {
	for i, col := range w.columns {
		if col.contains(id) {
			return i
		}
	}
	return -1
}

// Windows calls fn for every window in layout order.
func (w *Workspace) Windows(fn func(LayoutElement)) {
	for _, col := range w.columns {
		for _, t := range col.tiles {
			fn(t.Window())
		}
	}
}

// ViewPos is the camera's leading edge in strip coordinates.
func (w *Workspace) ViewPos() float64 {
	return w.columnX(w.activeColumnIdx) + w.viewOffsetState.current()
}

// TargetViewPos is where the camera will be once animations settle.
func (w *Workspace) TargetViewPos() float64 {
	return w.columnX(w.activeColumnIdx) + w.viewOffsetState.target()
}

// columnXs returns the leading edge of every column plus one past the end.
func (w *Workspace) columnXs() []float64 {
	xs := make([]float64, len(w.data)+1)
	x := 0.0
	for i, d := range w.data {
		xs[i] = x
		x += d.width + w.options.Gaps
	}
	xs[len(w.data)] = x
	return xs
}

func (w *Workspace) columnX(idx int) float64 {
	x := 0.0
	for i := 0; i < idx && i < len(w.data); i++ {
		x += w.data[i].width + w.options.Gaps
	}
	return x
}

// isCenteringFocusedColumn covers both the Always policy and the
// single-column special case.
func (w *Workspace) isCenteringFocusedColumn() bool {
	return w.options.CenterFocusedColumn == CenterAlways ||
		(w.options.AlwaysCenterSingleColumn && len(w.columns) <= 1)
}

// computeNewViewOffsetFit resolves the minimal-motion camera offset for a
// column. targetX NaN means "use the animation target position".
func (w *Workspace) computeNewViewOffsetFit(targetX, colX, width float64, mode SizingMode) float64 {
	if mode.IsFullscreen() {
		return 0
	}

	area := w.workingArea
	padding := w.options.Gaps
	if mode.IsMaximized() {
		area = geom.Rect{Size: w.viewSize}
		padding = 0
	}

	if math.IsNaN(targetX) {
		targetX = w.TargetViewPos()
	}

	newOffset := computeNewViewOffset(targetX+area.Loc.X, area.Size.W, colX, width, padding)

	// Non-fullscreen columns are always offset at least by the working
	// area position.
	return newOffset - area.Loc.X
}

func (w *Workspace) computeNewViewOffsetCentered(targetX, colX, width float64, mode SizingMode) float64 {
	if mode.IsFullscreen() {
		return w.computeNewViewOffsetFit(targetX, colX, width, mode)
	}
	area := w.workingArea
	if mode.IsMaximized() {
		area = geom.Rect{Size: w.viewSize}
	}
	// Wider-than-view columns fall back to leading-edge pinning.
	if area.Size.W <= width {
		return w.computeNewViewOffsetFit(targetX, colX, width, mode)
	}
	return -(area.Size.W-width)/2 - area.Loc.X
}

func (w *Workspace) computeNewViewOffsetForColumnFit(targetX float64, idx int) float64 {
	col := w.columns[idx]
	return w.computeNewViewOffsetFit(targetX, w.columnX(idx), w.data[idx].width, col.SizingMode())
}

func (w *Workspace) computeNewViewOffsetForColumnCentered(targetX float64, idx int) float64 {
	col := w.columns[idx]
	return w.computeNewViewOffsetCentered(targetX, w.columnX(idx), w.data[idx].width, col.SizingMode())
}

// computeNewViewOffsetForColumn applies the centering policy. prevIdx < 0
// means there is no meaningful source column for the OnOverflow test.
func (w *Workspace) computeNewViewOffsetForColumn(targetX float64, idx, prevIdx int) float64 {
	if w.isCenteringFocusedColumn() {
		return w.computeNewViewOffsetForColumnCentered(targetX, idx)
	}

	switch w.options.CenterFocusedColumn {
	case CenterAlways:
		return w.computeNewViewOffsetForColumnCentered(targetX, idx)
	case CenterOnOverflow:
		if prevIdx < 0 || prevIdx == idx {
			return w.computeNewViewOffsetForColumnFit(targetX, idx)
		}

		// The source is always the target's neighbor on the side the
		// focus came from.
		var sourceIdx int
		if prevIdx > idx {
			sourceIdx = min(idx+1, len(w.columns)-1)
		} else {
			sourceIdx = max(idx-1, 0)
		}

		sourceX := w.columnX(sourceIdx)
		sourceW := w.data[sourceIdx].width
		targetColX := w.columnX(idx)
		targetW := w.data[idx].width

		var totalWidth float64
		if sourceX < targetColX {
			totalWidth = targetColX - sourceX + targetW
		} else {
			totalWidth = sourceX - targetColX + sourceW
		}
		totalWidth += w.options.Gaps * 2

		if totalWidth <= w.workingArea.Size.W {
			return w.computeNewViewOffsetForColumnFit(targetX, idx)
		}
		return w.computeNewViewOffsetForColumnCentered(targetX, idx)
	default:
		return w.computeNewViewOffsetForColumnFit(targetX, idx)
	}
}

func (w *Workspace) animateViewOffset(idx int, newViewOffset float64) {
	w.animateViewOffsetWithConfig(idx, newViewOffset, w.options.Animations.HorizontalViewMovement)
}

func (w *Workspace) animateViewOffsetWithConfig(idx int, newViewOffset float64, params anim.Params) {
	newColX := w.columnX(idx)
	oldColX := w.columnX(w.activeColumnIdx)
	w.viewOffsetState.offset(oldColX - newColX)

	// Already there or already heading there: only correct the remainder.
	toDiff := newViewOffset - w.viewOffsetState.target()
	if math.Abs(toDiff) < 1 {
		w.viewOffsetState.offset(toDiff)
		return
	}

	if w.viewOffsetState.isGesture() && w.viewOffsetState.gesture.dnd {
		// A DnD scroll stays a gesture; the activation rides on top as an
		// extra decaying offset.
		g := w.viewOffsetState.gesture
		delta := newViewOffset - g.currentViewOffset
		g.stationaryViewOffset = newViewOffset
		g.currentViewOffset = newViewOffset
		g.animateExtraFrom(w.clock, -delta, w.options.animParams(params))
		return
	}

	w.viewOffsetState.animateFromCurrent(w.clock, newViewOffset, w.options.animParams(params))
}

func (w *Workspace) animateViewOffsetToColumn(targetX float64, idx, prevIdx int) {
	w.animateViewOffsetToColumnWithConfig(targetX, idx, prevIdx, w.options.Animations.HorizontalViewMovement)
}

func (w *Workspace) animateViewOffsetToColumnWithConfig(targetX float64, idx, prevIdx int, params anim.Params) {
	offset := w.computeNewViewOffsetForColumn(targetX, idx, prevIdx)
	w.animateViewOffsetWithConfig(idx, offset, params)
}

func (w *Workspace) activateColumn(idx int) {
	w.activateColumnWithConfig(idx, w.options.Animations.HorizontalViewMovement)
}

func (w *Workspace) activateColumnWithConfig(idx int, params anim.Params) {
	if w.activeColumnIdx == idx {
		return
	}

	w.animateViewOffsetToColumnWithConfig(math.NaN(), idx, w.activeColumnIdx, params)

	w.activeColumnIdx = idx
	w.activatePrevColumnOnRemoval = nil
	w.viewOffsetToRestore = nil
	w.interactiveResize = nil
}

// AddWindow wraps a window into a new column right of the active one.
func (w *Workspace) AddWindow(window LayoutElement, activate bool) {
	tile := newTile(window, w.clock, w.options)
	w.addTile(-1, tile, activate, w.options.DefaultColumnWidth, false)
	tile.startOpenAnimation()
}

// AddWindowRightOf places the new window in a column right of an existing
// one.
func (w *Workspace) AddWindowRightOf(rightOf WindowID, window LayoutElement, activate bool) bool {
	idx := w.columnIdxOf(rightOf)
	if idx < 0 {
		return false
	}
	tile := newTile(window, w.clock, w.options)
	w.addTile(idx+1, tile, activate, w.options.DefaultColumnWidth, false)
	tile.startOpenAnimation()
	return true
}

// addTile makes a new column for the tile. colIdx < 0 means right of the
// active column.
func (w *Workspace) addTile(colIdx int, tile *Tile, activate bool, width ColumnWidth, isFullWidth bool) {
	column := newColumn(tile, w.clock, w.viewSize, w.workingArea, w.options, width, isFullWidth)
	w.addColumn(colIdx, column, activate)
}

func (w *Workspace) addColumn(idx int, column *Column, activate bool) {
	wasEmpty := len(w.columns) == 0

	if idx < 0 {
		if wasEmpty {
			idx = 0
		} else {
			idx = w.activeColumnIdx + 1
		}
	}

	column.updateConfig(w.viewSize, w.workingArea, w.options)
	w.data = append(w.data, columnData{})
	copy(w.data[idx+1:], w.data[idx:])
	w.data[idx] = columnData{}
	w.data[idx].update(column)
	w.columns = append(w.columns, nil)
	copy(w.columns[idx+1:], w.columns[idx:])
	w.columns[idx] = column

	if activate {
		// First window on an empty workspace: clear leftover offsets and
		// skip the animation.
		if wasEmpty {
			w.viewOffsetState = staticViewOffset(w.computeNewViewOffsetForColumn(math.NaN(), idx, -1))
		}

		var prevOffset *float64
		if !wasEmpty && idx == w.activeColumnIdx+1 {
			v := w.viewOffsetState.stationary()
			prevOffset = &v
		}

		w.activateColumnWithConfig(idx, w.options.Animations.HorizontalViewMovement)
		w.activatePrevColumnOnRemoval = prevOffset
	} else if !wasEmpty && idx <= w.activeColumnIdx {
		w.activeColumnIdx++
	}

	// The columns pushed aside animate from their old positions.
	offset := w.data[idx].width + w.options.Gaps
	if w.activeColumnIdx <= idx {
		for _, col := range w.columns[idx+1:] {
			col.animateMoveFrom(-offset)
		}
	} else {
		for _, col := range w.columns[:idx] {
			col.animateMoveFrom(offset)
		}
	}
}

// RemoveWindow detaches a window, dissolving its column when it was the
// last tile. Returns the window, or false when unknown.
func (w *Workspace) RemoveWindow(id WindowID) (LayoutElement, bool) {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return nil, false
	}
	tileIdx := w.columns[colIdx].position(id)
	w.startCloseAnimation(colIdx, tileIdx)
	removed := w.removeTileByIdx(colIdx, tileIdx)
	return removed.Tile.Window(), true
}

// startCloseAnimation freezes a tile's current placement and starts the
// fade-out. Closing is a window event, not a move: RemoveTile (workspace
// and monitor transfers) never comes through here.
func (w *Workspace) startCloseAnimation(colIdx, tileIdx int) {
	col := w.columns[colIdx]
	if col.displayMode() == DisplayTabbed && tileIdx != col.activeTileIdx {
		// A hidden tab disappears without a visual.
		return
	}
	tile := col.tiles[tileIdx]
	alpha := anim.New(w.clock, tile.Alpha(), 0, 0,
		w.options.animParams(w.options.Animations.WindowClose))
	if alpha.IsDone() {
		return
	}

	xs := w.columnXs()
	offsets := col.tileOffsets()
	off := tile.RenderOffset()
	w.closing = append(w.closing, closingTile{
		window: tile.Window(),
		pos: geom.Pt(
			xs[colIdx]+col.renderOffset().X+offsets[tileIdx].X+off.X,
			offsets[tileIdx].Y+off.Y,
		),
		size:  tile.RenderSize(),
		alpha: alpha,
	})
}

// RemoveTile detaches a tile keeping its column sizing, for moving it to
// another workspace or monitor.
func (w *Workspace) RemoveTile(id WindowID) (RemovedTile, bool) {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return RemovedTile{}, false
	}
	tileIdx := w.columns[colIdx].position(id)
	return w.removeTileByIdx(colIdx, tileIdx), true
}

// RemoveActiveTile detaches the focused tile.
func (w *Workspace) RemoveActiveTile() (RemovedTile, bool) {
	if len(w.columns) == 0 {
		return RemovedTile{}, false
	}
	col := w.columns[w.activeColumnIdx]
	return w.removeTileByIdx(w.activeColumnIdx, col.activeTileIdx), true
}

func (w *Workspace) removeTileByIdx(colIdx, tileIdx int) RemovedTile {
	column := w.columns[colIdx]

	// The last tile takes the whole column with it.
	if column.tileCount() == 1 {
		col := w.removeColumnByIdx(colIdx)
		return RemovedTile{
			Tile:        col.tiles[0],
			Width:       col.width,
			IsFullWidth: col.isFullWidth,
		}
	}

	prevWidth := w.data[colIdx].width
	wasNormal := column.SizingMode().IsNormal()

	tile := column.removeTileAt(tileIdx)

	// The active column dropping out of fullscreen by losing the pending
	// tile invalidates the stored restore offset.
	if colIdx == w.activeColumnIdx && !wasNormal && column.SizingMode().IsNormal() {
		w.viewOffsetToRestore = nil
	}

	if w.interactiveResize != nil && w.interactiveResize.window == tile.ID() {
		w.interactiveResize = nil
	}

	w.data[colIdx].update(column)
	offset := prevWidth - w.data[colIdx].width

	if w.activeColumnIdx <= colIdx {
		for _, col := range w.columns[colIdx+1:] {
			col.animateMoveFrom(offset)
		}
	} else {
		for _, col := range w.columns[:colIdx+1] {
			col.animateMoveFrom(-offset)
		}
	}

	return RemovedTile{Tile: tile, Width: column.width, IsFullWidth: column.isFullWidth}
}

func (w *Workspace) removeColumnByIdx(colIdx int) *Column {
	// The other columns slide over the gap the column leaves.
	offset := w.data[colIdx].width + w.options.Gaps
	if w.activeColumnIdx <= colIdx {
		for _, col := range w.columns[colIdx+1:] {
			col.animateMoveFrom(offset)
		}
	} else {
		for _, col := range w.columns[:colIdx] {
			col.animateMoveFrom(-offset)
		}
	}

	column := w.columns[colIdx]
	w.columns = append(w.columns[:colIdx], w.columns[colIdx+1:]...)
	w.data = append(w.data[:colIdx], w.data[colIdx+1:]...)

	if w.interactiveResize != nil && column.contains(w.interactiveResize.window) {
		w.interactiveResize = nil
	}

	if colIdx+1 == w.activeColumnIdx {
		// The column we were going to return to is itself gone.
		w.activatePrevColumnOnRemoval = nil
	}
	if colIdx == w.activeColumnIdx {
		w.viewOffsetToRestore = nil
	}

	if len(w.columns) == 0 {
		w.activeColumnIdx = 0
		return column
	}

	params := w.options.Animations.HorizontalViewMovement

	switch {
	case colIdx < w.activeColumnIdx:
		// A column to the left: the active one keeps its position.
		w.activeColumnIdx--
		w.activatePrevColumnOnRemoval = nil
	case colIdx == w.activeColumnIdx && w.activatePrevColumnOnRemoval != nil:
		if colIdx > 0 {
			prevOffset := *w.activatePrevColumnOnRemoval
			w.activateColumnWithConfig(w.activeColumnIdx-1, params)
			// Restore the saved offset, then still resolve in case the
			// previous column resized meanwhile.
			w.animateViewOffsetWithConfig(w.activeColumnIdx, prevOffset, params)
			w.animateViewOffsetToColumnWithConfig(math.NaN(), w.activeColumnIdx, -1, params)
		} else if w.activeColumnIdx == len(w.columns) {
			w.activeColumnIdx--
		}
	default:
		idx := min(w.activeColumnIdx, len(w.columns)-1)
		if idx != w.activeColumnIdx {
			w.activateColumnWithConfig(idx, params)
		} else {
			w.animateViewOffsetToColumnWithConfig(math.NaN(), idx, -1, params)
		}
	}

	return column
}

// UpdateWindow is the communicate step: ingest a window's committed size
// and re-resolve whatever depends on it. Unknown windows return false.
func (w *Workspace) UpdateWindow(id WindowID) bool {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	column := w.columns[colIdx]
	wasNormal := column.SizingMode().IsNormal()
	prevOrigin := column.tilesOrigin()
	tileIdx := column.position(id)

	prevWidth := w.data[colIdx].width

	column.updateWindow(id)
	w.data[colIdx].update(column)
	column.updateTileSizes(false)

	offset := prevWidth - w.data[colIdx].width

	// Neighboring columns track the interpolated width every frame while a
	// resize animation runs; without one they jump along with the commit
	// unless they were already moving.
	ongoingResize := column.tiles[tileIdx].resizeAnim != nil
	if offset != 0 {
		if w.activeColumnIdx <= colIdx {
			for _, col := range w.columns[colIdx+1:] {
				if ongoingResize {
					col.animateMoveFromWithConfig(offset, w.options.Animations.WindowResize)
				} else {
					col.offsetMoveAnimCurrent(offset)
				}
			}
		} else {
			for _, col := range w.columns[:colIdx+1] {
				if ongoingResize {
					col.animateMoveFromWithConfig(-offset, w.options.Animations.WindowResize)
				} else {
					col.offsetMoveAnimCurrent(-offset)
				}
			}
		}
	}

	// Fullscreen transitions move the tiles origin (struts are ignored in
	// fullscreen); keep the tiles visually in place.
	newOrigin := column.tilesOrigin()
	originDelta := prevOrigin.Sub(newOrigin)
	if originDelta != (geom.Point{}) {
		for _, t := range column.tiles {
			t.animateMoveXFrom(originDelta.X)
			t.animateMoveYFrom(originDelta.Y)
		}
	}

	if colIdx != w.activeColumnIdx {
		return true
	}

	isNormal := column.SizingMode().IsNormal()

	// Going fullscreen/maximized: remember where the camera was.
	if wasNormal && !isNormal {
		v := w.viewOffsetState.stationary()
		w.viewOffsetToRestore = &v
	}

	// Coming back: take the restore offset even if the view is currently
	// frozen; it is only valid for this particular unfullscreen.
	var unfullscreenOffset *float64
	if !wasNormal && isNormal {
		unfullscreenOffset = w.viewOffsetToRestore
		w.viewOffsetToRestore = nil
	}

	// Only move the camera when it isn't owned by a resize or gesture.
	if w.interactiveResize == nil && !w.viewOffsetState.isGesture() {
		if unfullscreenOffset != nil {
			w.animateViewOffset(colIdx, *unfullscreenOffset)
		}

		// Sync the view movement with the resize so the two read as one
		// motion, which matters most in always-centered mode.
		params := w.options.Animations.HorizontalViewMovement
		if ongoingResize {
			params = w.options.Animations.WindowResize
		}
		w.animateViewOffsetToColumnWithConfig(math.NaN(), colIdx, -1, params)
	}

	return true
}

// ActivateWindow focuses a window and resolves the camera for it.
func (w *Workspace) ActivateWindow(id WindowID) bool {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	col := w.columns[colIdx]
	col.activateIdx(col.position(id))
	w.activateColumn(colIdx)
	return true
}

func (w *Workspace) FocusLeft() bool {
	if w.activeColumnIdx == 0 {
		return false
	}
	w.activateColumn(w.activeColumnIdx - 1)
	return true
}

func (w *Workspace) FocusRight() bool {
	if len(w.columns) == 0 || w.activeColumnIdx+1 >= len(w.columns) {
		return false
	}
	w.activateColumn(w.activeColumnIdx + 1)
	return true
}

func (w *Workspace) FocusColumnFirst() {
	if len(w.columns) > 0 {
		w.activateColumn(0)
	}
}

func (w *Workspace) FocusColumnLast() {
	if len(w.columns) > 0 {
		w.activateColumn(len(w.columns) - 1)
	}
}

// FocusColumn focuses a 1-based column index, clamped to the row.
func (w *Workspace) FocusColumn(index int) {
	if len(w.columns) == 0 {
		return
	}
	idx := geom.ClampInt(index-1, 0, len(w.columns)-1)
	w.activateColumn(idx)
}

func (w *Workspace) FocusDown() bool {
	if len(w.columns) == 0 {
		return false
	}
	return w.columns[w.activeColumnIdx].focusDown()
}

func (w *Workspace) FocusUp() bool {
	if len(w.columns) == 0 {
		return false
	}
	return w.columns[w.activeColumnIdx].focusUp()
}

func (w *Workspace) FocusTop() {
	if len(w.columns) > 0 {
		w.columns[w.activeColumnIdx].focusTop()
	}
}

func (w *Workspace) FocusBottom() {
	if len(w.columns) > 0 {
		w.columns[w.activeColumnIdx].focusBottom()
	}
}

// MoveColumnToIndex moves the active column to a 1-based index.
func (w *Workspace) MoveColumnToIndex(index int) {
	if len(w.columns) == 0 {
		return
	}
	w.moveColumnTo(geom.ClampInt(index-1, 0, len(w.columns)-1))
}

func (w *Workspace) moveColumnTo(newIdx int) {
	if w.activeColumnIdx == newIdx {
		return
	}

	currentColX := w.columnX(w.activeColumnIdx)
	nextColX := w.columnX(w.activeColumnIdx + 1)

	column := w.columns[w.activeColumnIdx]
	data := w.data[w.activeColumnIdx]
	oldIdx := w.activeColumnIdx
	w.columns = append(w.columns[:oldIdx], w.columns[oldIdx+1:]...)
	w.data = append(w.data[:oldIdx], w.data[oldIdx+1:]...)
	if w.interactiveResize != nil && column.contains(w.interactiveResize.window) {
		w.interactiveResize = nil
	}
	w.columns = append(w.columns, nil)
	copy(w.columns[newIdx+1:], w.columns[newIdx:])
	w.columns[newIdx] = column
	w.data = append(w.data, columnData{})
	copy(w.data[newIdx+1:], w.data[newIdx:])
	w.data[newIdx] = data

	// Keep the camera still while the indices shuffle under it.
	w.viewOffsetState.offset(currentColX - w.columnX(oldIdx))

	newColX := w.columnX(newIdx)
	w.columns[newIdx].animateMoveFrom(currentColX - newColX)

	othersOffset := nextColX - currentColX
	if oldIdx < newIdx {
		for _, col := range w.columns[oldIdx:newIdx] {
			col.animateMoveFrom(othersOffset)
		}
	} else {
		for _, col := range w.columns[newIdx+1 : oldIdx+1] {
			col.animateMoveFrom(-othersOffset)
		}
	}

	w.activateColumnWithConfig(newIdx, w.options.Animations.WindowMovement)
}

func (w *Workspace) MoveLeft() bool {
	if w.activeColumnIdx == 0 {
		return false
	}
	w.moveColumnTo(w.activeColumnIdx - 1)
	return true
}

func (w *Workspace) MoveRight() bool {
	if len(w.columns) == 0 || w.activeColumnIdx+1 >= len(w.columns) {
		return false
	}
	w.moveColumnTo(w.activeColumnIdx + 1)
	return true
}

func (w *Workspace) MoveColumnToFirst() {
	if len(w.columns) > 0 {
		w.moveColumnTo(0)
	}
}

func (w *Workspace) MoveColumnToLast() {
	if len(w.columns) > 0 {
		w.moveColumnTo(len(w.columns) - 1)
	}
}

func (w *Workspace) MoveDown() bool {
	if len(w.columns) == 0 {
		return false
	}
	return w.columns[w.activeColumnIdx].moveDown()
}

func (w *Workspace) MoveUp() bool {
	if len(w.columns) == 0 {
		return false
	}
	return w.columns[w.activeColumnIdx].moveUp()
}

// ConsumeOrExpelWindowLeft moves the active window into the column to the
// left, or out into its own column when it has siblings.
func (w *Workspace) ConsumeOrExpelWindowLeft() {
	if len(w.columns) == 0 {
		return
	}
	sourceColIdx := w.activeColumnIdx
	sourceCol := w.columns[sourceColIdx]
	sourceTileIdx := sourceCol.activeTileIdx

	if sourceCol.tileCount() == 1 {
		if sourceColIdx == 0 {
			return
		}
		targetColIdx := sourceColIdx - 1

		// Returning focus left is where it's going anyway; keep the saved
		// offset if one is already pending.
		if w.activatePrevColumnOnRemoval == nil {
			v := w.viewOffsetState.stationary() + w.columnX(sourceColIdx) - w.columnX(targetColIdx)
			w.activatePrevColumnOnRemoval = &v
		}

		removed := w.removeTileByIdx(sourceColIdx, 0)
		w.addTileToColumn(targetColIdx, -1, removed.Tile, true)
	} else {
		removed := w.removeTileByIdx(sourceColIdx, sourceTileIdx)
		w.addTile(sourceColIdx, removed.Tile, true, removed.Width, removed.IsFullWidth)
		// We added to the left; don't activate even further left on
		// removal.
		w.activatePrevColumnOnRemoval = nil
	}
}

// ConsumeOrExpelWindowRight is the mirror operation.
func (w *Workspace) ConsumeOrExpelWindowRight() {
	if len(w.columns) == 0 {
		return
	}
	sourceColIdx := w.activeColumnIdx
	sourceCol := w.columns[sourceColIdx]
	sourceTileIdx := sourceCol.activeTileIdx

	if sourceCol.tileCount() == 1 {
		if sourceColIdx+1 >= len(w.columns) {
			return
		}
		w.activatePrevColumnOnRemoval = nil
		removed := w.removeTileByIdx(sourceColIdx, 0)
		w.addTileToColumn(sourceColIdx, -1, removed.Tile, true)
	} else {
		removed := w.removeTileByIdx(sourceColIdx, sourceTileIdx)
		w.addTile(sourceColIdx+1, removed.Tile, true, removed.Width, removed.IsFullWidth)
	}
}

// ConsumeIntoColumn pulls the first window of the next column into the
// active one.
func (w *Workspace) ConsumeIntoColumn() {
	if len(w.columns) < 2 || w.activeColumnIdx+1 >= len(w.columns) {
		return
	}
	targetColIdx := w.activeColumnIdx
	removed := w.removeTileByIdx(w.activeColumnIdx+1, 0)
	w.addTileToColumn(targetColIdx, -1, removed.Tile, false)
}

// ExpelFromColumn pushes the bottom window of the active column into its
// own column to the right.
func (w *Workspace) ExpelFromColumn() {
	if len(w.columns) == 0 {
		return
	}
	sourceCol := w.columns[w.activeColumnIdx]
	if sourceCol.tileCount() == 1 {
		return
	}
	sourceTileIdx := sourceCol.tileCount() - 1
	removed := w.removeTileByIdx(w.activeColumnIdx, sourceTileIdx)
	w.addTile(w.activeColumnIdx+1, removed.Tile, false, removed.Width, removed.IsFullWidth)
}

// SwapWindowLeft exchanges the active window with its left neighbor
// column's active window (or moves the whole column when both are lone
// tiles).
func (w *Workspace) SwapWindowLeft()  { w.swapWindowInDirection(-1) }
func (w *Workspace) SwapWindowRight() { w.swapWindowInDirection(1) }

func (w *Workspace) swapWindowInDirection(dir int) {
	if len(w.columns) == 0 {
		return
	}
	targetIdx := w.activeColumnIdx + dir
	if targetIdx < 0 || targetIdx >= len(w.columns) {
		return
	}

	sourceIdx := w.activeColumnIdx
	if w.columns[sourceIdx].tileCount() == 1 && w.columns[targetIdx].tileCount() == 1 {
		w.moveColumnTo(targetIdx)
		return
	}

	sourceCol := w.columns[sourceIdx]
	targetCol := w.columns[targetIdx]
	sourceTileIdx := sourceCol.activeTileIdx
	targetTileIdx := targetCol.activeTileIdx

	sourceTile := sourceCol.removeTileAt(sourceTileIdx)
	targetTile := targetCol.removeTileAt(targetTileIdx)

	if targetCol.tileCount() == 0 {
		targetCol.addTileAt(0, sourceTile, true)
	} else {
		targetCol.addTileAt(targetTileIdx, sourceTile, true)
		targetCol.activateIdx(targetTileIdx)
	}
	if sourceCol.tileCount() == 0 {
		sourceCol.addTileAt(0, targetTile, true)
	} else {
		sourceCol.addTileAt(sourceTileIdx, targetTile, true)
		sourceCol.activateIdx(sourceTileIdx)
	}

	w.data[sourceIdx].update(sourceCol)
	w.data[targetIdx].update(targetCol)
	w.activateColumnWithConfig(targetIdx, w.options.Animations.WindowMovement)
}

// addTileToColumn inserts a tile into an existing column. tileIdx < 0
// appends.
func (w *Workspace) addTileToColumn(colIdx, tileIdx int, tile *Tile, activate bool) {
	prevNextX := w.columnX(colIdx + 1)

	target := w.columns[colIdx]
	if tileIdx < 0 {
		tileIdx = target.tileCount()
	}

	target.addTileAt(tileIdx, tile, true)
	w.data[colIdx].update(target)

	if activate {
		target.activateIdx(tileIdx)
		if w.activeColumnIdx != colIdx {
			w.activateColumn(colIdx)
		}
	}

	if target.displayMode() == DisplayTabbed && target.activeTileIdx != tileIdx {
		// Joining a tabbed column in the background starts hidden.
		tile.animateAlpha(tile.Alpha(), 0, w.options.Animations.WindowMovement)
	}

	// A wider window grows the column immediately; neighbors animate over.
	offset := w.columnX(colIdx+1) - prevNextX
	if offset != 0 {
		if w.activeColumnIdx <= colIdx {
			for _, col := range w.columns[colIdx+1:] {
				col.animateMoveFrom(-offset)
			}
		} else {
			for _, col := range w.columns[:colIdx+1] {
				col.animateMoveFrom(offset)
			}
		}
	}
}

// ToggleWidth cycles the active column through the preset widths.
func (w *Workspace) ToggleWidth(forwards bool) {
	if len(w.columns) == 0 {
		return
	}
	col := w.columns[w.activeColumnIdx]
	col.toggleWidth(-1, forwards)
	w.cancelResizeForColumn(col)
}

// ToggleFullWidth toggles maximize-to-full-width on the active column.
func (w *Workspace) ToggleFullWidth() {
	if len(w.columns) == 0 {
		return
	}
	col := w.columns[w.activeColumnIdx]
	col.toggleFullWidth()
	w.cancelResizeForColumn(col)
}

// SetWindowWidth applies a width change to the column of a window; the nil
// id targets the active column.
func (w *Workspace) SetWindowWidth(id *WindowID, change SizeChange) {
	col, tileIdx := w.columnForOptionalWindow(id)
	if col == nil {
		return
	}
	col.setColumnWidth(change, tileIdx, true)
	w.cancelResizeForColumn(col)
}

func (w *Workspace) SetWindowHeight(id *WindowID, change SizeChange) {
	col, tileIdx := w.columnForOptionalWindow(id)
	if col == nil {
		return
	}
	col.setWindowHeight(change, tileIdx, true)
	w.cancelResizeForColumn(col)
}

func (w *Workspace) ResetWindowHeight(id *WindowID) {
	col, tileIdx := w.columnForOptionalWindow(id)
	if col == nil {
		return
	}
	col.resetWindowHeight(tileIdx)
	w.cancelResizeForColumn(col)
}

func (w *Workspace) ToggleWindowWidth(id *WindowID, forwards bool) {
	col, tileIdx := w.columnForOptionalWindow(id)
	if col == nil {
		return
	}
	col.toggleWidth(tileIdx, forwards)
	w.cancelResizeForColumn(col)
}

func (w *Workspace) ToggleWindowHeight(id *WindowID, forwards bool) {
	col, tileIdx := w.columnForOptionalWindow(id)
	if col == nil {
		return
	}
	col.toggleWindowHeight(tileIdx, forwards)
	w.cancelResizeForColumn(col)
}

func (w *Workspace) columnForOptionalWindow(id *WindowID) (*Column, int) {
	if len(w.columns) == 0 {
		return nil, -1
	}
	if id == nil {
		return w.columns[w.activeColumnIdx], -1
	}
	colIdx := w.columnIdxOf(*id)
	if colIdx < 0 {
		return nil, -1
	}
	col := w.columns[colIdx]
	return col, col.position(*id)
}

// ExpandColumnToAvailableWidth grows the active column over the slack left
// by the other fully visible columns.
func (w *Workspace) ExpandColumnToAvailableWidth() {
	if len(w.columns) == 0 {
		return
	}
	col := w.columns[w.activeColumnIdx]
	if !col.pendingSizingMode().IsNormal() || col.isFullWidth {
		return
	}

	if w.isCenteringFocusedColumn() {
		// The active column cannot control its position in centered mode,
		// so the simple thing is the honest thing.
		col.toggleFullWidth()
		w.cancelResizeForColumn(col)
		return
	}

	viewX := w.TargetViewPos()
	workingX := w.workingArea.Loc.X
	workingW := w.workingArea.Size.W
	gap := w.options.Gaps

	widthTaken := 0.0
	leftmostColX := math.NaN()
	activeColX := math.NaN()
	countedOther := false

	xs := w.columnXs()
	for idx := range w.columns {
		colX := xs[idx]
		if colX < viewX+workingX+gap {
			continue
		}
		if math.IsNaN(leftmostColX) {
			leftmostColX = colX
		}
		width := w.data[idx].width
		if viewX+workingX+workingW < colX+width+gap {
			break
		}
		if idx == w.activeColumnIdx {
			activeColX = colX
		} else {
			countedOther = true
		}
		widthTaken += width + gap
	}

	if math.IsNaN(activeColX) {
		return
	}

	availableWidth := workingW - gap - widthTaken
	if availableWidth <= 0 {
		return
	}

	w.cancelResizeForColumn(col)

	if !countedOther {
		// Only the active column is fully on-screen; full-width keeps an
		// easy way back out.
		col.toggleFullWidth()
		return
	}

	activeWidth := w.data[w.activeColumnIdx].width
	col.width = FixedWidth(activeWidth + availableWidth)
	col.presetWidthIdx = -1
	col.isFullWidth = false
	col.updateTileSizes(true)

	// Keep the leftmost visible window in view.
	newViewX := leftmostColX - gap - workingX
	w.animateViewOffset(w.activeColumnIdx, newViewX-activeColX)
	w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
}

// SetFullscreen requests fullscreen for a window's column. A window sharing
// a normal column is first expelled into its own column.
func (w *Workspace) SetFullscreen(id WindowID, on bool) bool {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	if on == w.columns[colIdx].isPendingFullscreen() {
		return false
	}

	col := w.columns[colIdx]
	w.cancelResizeForColumn(col)

	if on && col.tileCount() > 1 && col.displayMode() != DisplayTabbed {
		w.expelWindowForFullscreen(colIdx, id)
		colIdx = w.columnIdxOf(id)
		col = w.columns[colIdx]
	}

	col.setFullscreen(on)
	w.data[colIdx].update(col)
	return true
}

// ToggleFullscreen flips the pending fullscreen state for a window.
func (w *Workspace) ToggleFullscreen(id WindowID) bool {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	return w.SetFullscreen(id, !w.columns[colIdx].isPendingFullscreen())
}

// SetMaximized requests the maximized sizing mode for a window's column.
func (w *Workspace) SetMaximized(id WindowID, on bool) bool {
	colIdx := w.columnIdxOf(id)
	if colIdx < 0 {
		return false
	}
	if on == w.columns[colIdx].isPendingMaximized() {
		return false
	}

	col := w.columns[colIdx]
	w.cancelResizeForColumn(col)

	if on && col.tileCount() > 1 && col.displayMode() != DisplayTabbed {
		w.expelWindowForFullscreen(colIdx, id)
		colIdx = w.columnIdxOf(id)
		col = w.columns[colIdx]
	}

	col.setMaximized(on)
	w.data[colIdx].update(col)

	if colIdx == w.activeColumnIdx && !w.viewOffsetState.isGesture() {
		if on {
			v := w.viewOffsetState.stationary()
			w.viewOffsetToRestore = &v
			w.animateViewOffsetToColumn(math.NaN(), colIdx, -1)
		} else if w.viewOffsetToRestore != nil {
			prev := *w.viewOffsetToRestore
			w.viewOffsetToRestore = nil
			w.animateViewOffset(colIdx, prev)
			w.animateViewOffsetToColumn(math.NaN(), colIdx, -1)
		}
	}
	return true
}

// expelWindowForFullscreen extracts a window that shares a column into its
// own column right of the source.
func (w *Workspace) expelWindowForFullscreen(colIdx int, id WindowID) {
	col := w.columns[colIdx]
	tileIdx := col.position(id)
	wasActive := w.activeColumnIdx == colIdx && col.activeTileIdx == tileIdx
	removed := w.removeTileByIdx(colIdx, tileIdx)
	w.addTile(colIdx+1, removed.Tile, wasActive, removed.Width, removed.IsFullWidth)
}

// SetColumnDisplay switches the active column between normal and tabbed.
func (w *Workspace) SetColumnDisplay(display ColumnDisplay) {
	if len(w.columns) == 0 {
		return
	}
	col := w.columns[w.activeColumnIdx]
	if col.displayMode() == display {
		return
	}
	w.cancelResizeForColumn(col)
	col.setColumnDisplay(display)
	w.data[w.activeColumnIdx].update(col)

	// A multi-tile column leaving tabbed mode cannot stay fullscreen.
	if display != DisplayTabbed && col.tileCount() > 1 {
		id := col.activeTile().ID()
		w.SetFullscreen(id, false)
		w.SetMaximized(id, false)
	}
}

func (w *Workspace) ToggleColumnTabbedDisplay() {
	if len(w.columns) == 0 {
		return
	}
	if w.columns[w.activeColumnIdx].displayMode() == DisplayTabbed {
		w.SetColumnDisplay(DisplayNormal)
	} else {
		w.SetColumnDisplay(DisplayTabbed)
	}
}

// CenterColumn centers the active column regardless of policy.
func (w *Workspace) CenterColumn() {
	if len(w.columns) == 0 {
		return
	}
	offset := w.computeNewViewOffsetForColumnCentered(math.NaN(), w.activeColumnIdx)
	w.animateViewOffset(w.activeColumnIdx, offset)
	w.cancelResizeForColumn(w.columns[w.activeColumnIdx])
}

// CenterVisibleColumns spreads the fully visible columns evenly around the
// center of the view.
func (w *Workspace) CenterVisibleColumns() {
	if len(w.columns) == 0 || w.isCenteringFocusedColumn() {
		return
	}

	viewX := w.TargetViewPos()
	workingX := w.workingArea.Loc.X
	workingW := w.workingArea.Size.W
	gap := w.options.Gaps

	widthTaken := 0.0
	leftmostColX := math.NaN()
	activeColX := math.NaN()

	xs := w.columnXs()
	for idx := range w.columns {
		colX := xs[idx]
		if colX < viewX+workingX+gap {
			continue
		}
		if math.IsNaN(leftmostColX) {
			leftmostColX = colX
		}
		width := w.data[idx].width
		if viewX+workingX+workingW < colX+width+gap {
			break
		}
		if idx == w.activeColumnIdx {
			activeColX = colX
		}
		widthTaken += width + gap
	}

	if math.IsNaN(activeColX) {
		return
	}

	w.cancelResizeForColumn(w.columns[w.activeColumnIdx])

	freeSpace := workingW - widthTaken + gap
	newViewX := leftmostColX - freeSpace/2 - workingX

	w.animateViewOffset(w.activeColumnIdx, newViewX-activeColX)
	w.animateViewOffsetToColumn(math.NaN(), w.activeColumnIdx, -1)
}

// AdvanceAnimations collapses finished animations. now must be
// non-decreasing; the clock ignores regressions.
func (w *Workspace) AdvanceAnimations() {
	w.viewOffsetState.advance()
	for _, col := range w.columns {
		col.advanceAnimations()
	}
	kept := w.closing[:0]
	for _, c := range w.closing {
		if !c.alpha.IsDone() {
			kept = append(kept, c)
		}
	}
	w.closing = kept
}

func (w *Workspace) AreAnimationsOngoing() bool {
	if w.viewOffsetState.isAnimationOngoing() {
		return true
	}
	for _, col := range w.columns {
		if col.areAnimationsOngoing() {
			return true
		}
	}
	for _, c := range w.closing {
		if !c.alpha.IsDone() {
			return true
		}
	}
	return false
}

// RenderTiles produces the final per-frame placement of every tile, camera
// applied, in layout order. In RTL the scroll axis is mirrored here and
// nowhere else.
func (w *Workspace) RenderTiles() []TileRender {
	if len(w.columns) == 0 && len(w.closing) == 0 {
		return nil
	}
	viewPos := w.ViewPos()
	view := geom.Rect{Size: w.viewSize}
	var out []TileRender

	xs := w.columnXs()
	for colIdx, col := range w.columns {
		colX := xs[colIdx] - viewPos + col.renderOffset().X
		offsets := col.tileOffsets()
		for tileIdx, tile := range col.tiles {
			// Tiles scrolled out of the view stay in the output, marked
			// not-visible, so renderers can cull without the engine
			// destroying anything.
			visible := col.displayMode() != DisplayTabbed || tileIdx == col.activeTileIdx
			size := tile.RenderSize()
			off := tile.RenderOffset()
			x := colX + offsets[tileIdx].X + off.X
			y := offsets[tileIdx].Y + off.Y
			if w.options.RTL {
				x = geom.MirrorU(x, size.W, w.viewSize.W)
			}
			rect := geom.NewRect(x, y, size.W, size.H)
			out = append(out, TileRender{
				Window:  tile.Window(),
				Rect:    rect,
				Alpha:   tile.Alpha(),
				Active:  colIdx == w.activeColumnIdx && tileIdx == col.activeTileIdx,
				Visible: visible && rect.Intersects(view),
			})
		}
	}

	for _, c := range w.closing {
		x := c.pos.X - viewPos
		if w.options.RTL {
			x = geom.MirrorU(x, c.size.W, w.viewSize.W)
		}
		rect := geom.NewRect(x, c.pos.Y, c.size.W, c.size.H)
		out = append(out, TileRender{
			Window:  c.window,
			Rect:    rect,
			Alpha:   c.alpha.Value(),
			Visible: rect.Intersects(view),
		})
	}
	return out
}
