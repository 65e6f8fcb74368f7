// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/monitor.go
// Summary: One output's ordered stack of workspaces.
// Notes: Workspaces are dynamic: there is always exactly one empty
//        workspace at the end, and emptied middle workspaces are collected
//        once they are no longer active.

package scroll

import (
	"log/slog"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// Monitor owns the workspaces shown on a single output.
type Monitor struct {
	name     string
	viewSize geom.Size

	workspaces         []*Workspace
	activeWorkspaceIdx int

	clock   *anim.Clock
	options *Options
	logger  *slog.Logger
}

func NewMonitor(name string, viewSize geom.Size, clock *anim.Clock, options *Options, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Monitor{
		name:     name,
		viewSize: viewSize,
		clock:    clock,
		options:  options,
		logger:   logger.With("output", name),
	}
	m.workspaces = []*Workspace{NewWorkspace(viewSize, clock, options)}
	return m
}

func (m *Monitor) Name() string        { return m.name }
func (m *Monitor) ViewSize() geom.Size { return m.viewSize }

func (m *Monitor) WorkspaceCount() int { return len(m.workspaces) }

func (m *Monitor) ActiveWorkspaceIdx() int { return m.activeWorkspaceIdx }

func (m *Monitor) ActiveWorkspace() *Workspace {
	return m.workspaces[m.activeWorkspaceIdx]
}

// Workspace returns the workspace at idx, or nil when out of range.
func (m *Monitor) Workspace(idx int) *Workspace {
	if idx < 0 || idx >= len(m.workspaces) {
		return nil
	}
	return m.workspaces[idx]
}

// UpdateConfig applies a new output size and options to every workspace.
func (m *Monitor) UpdateConfig(viewSize geom.Size, options *Options) {
	m.viewSize = viewSize
	m.options = options
	for _, ws := range m.workspaces {
		ws.UpdateConfig(viewSize, options)
	}
}

// workspaceIdxOf finds the workspace holding a window, or -1.
func (m *Monitor) workspaceIdxOf(id WindowID) int {
	for i, ws := range m.workspaces {
		if ws.HasWindow(id) {
			return i
		}
	}
	return -1
}

// HasWindow reports whether any workspace on this output holds the window.
func (m *Monitor) HasWindow(id WindowID) bool {
	return m.workspaceIdxOf(id) >= 0
}

// AddWindow opens a window on the active workspace.
func (m *Monitor) AddWindow(window LayoutElement, activate bool) {
	m.ActiveWorkspace().AddWindow(window, activate)
	m.cleanUpWorkspaces()
}

// RemoveWindow closes out a window wherever it lives on this output.
func (m *Monitor) RemoveWindow(id WindowID) (LayoutElement, bool) {
	idx := m.workspaceIdxOf(id)
	if idx < 0 {
		return nil, false
	}
	win, ok := m.workspaces[idx].RemoveWindow(id)
	m.cleanUpWorkspaces()
	return win, ok
}

// UpdateWindow routes the communicate step to the owning workspace.
func (m *Monitor) UpdateWindow(id WindowID) bool {
	idx := m.workspaceIdxOf(id)
	if idx < 0 {
		return false
	}
	return m.workspaces[idx].UpdateWindow(id)
}

// ActivateWindow focuses a window, switching workspaces when needed.
func (m *Monitor) ActivateWindow(id WindowID) bool {
	idx := m.workspaceIdxOf(id)
	if idx < 0 {
		return false
	}
	m.activeWorkspaceIdx = idx
	return m.workspaces[idx].ActivateWindow(id)
}

// SwitchWorkspaceUp activates the previous workspace.
func (m *Monitor) SwitchWorkspaceUp() bool {
	if m.activeWorkspaceIdx == 0 {
		return false
	}
	m.activeWorkspaceIdx--
	m.cleanUpWorkspaces()
	return true
}

// SwitchWorkspaceDown activates the next workspace.
func (m *Monitor) SwitchWorkspaceDown() bool {
	if m.activeWorkspaceIdx+1 >= len(m.workspaces) {
		return false
	}
	m.activeWorkspaceIdx++
	m.cleanUpWorkspaces()
	return true
}

// SwitchWorkspace activates a workspace by index, clamped to the stack.
func (m *Monitor) SwitchWorkspace(idx int) {
	m.activeWorkspaceIdx = geom.ClampInt(idx, 0, len(m.workspaces)-1)
	m.cleanUpWorkspaces()
}

// MoveWindowToWorkspace transfers a window on this output to another
// workspace, keeping its column sizing.
func (m *Monitor) MoveWindowToWorkspace(id WindowID, targetIdx int) bool {
	sourceIdx := m.workspaceIdxOf(id)
	if sourceIdx < 0 {
		return false
	}
	targetIdx = geom.ClampInt(targetIdx, 0, len(m.workspaces)-1)
	if targetIdx == sourceIdx {
		return true
	}

	removed, ok := m.workspaces[sourceIdx].RemoveTile(id)
	if !ok {
		return false
	}
	m.attachRemovedTile(m.workspaces[targetIdx], removed, sourceIdx == m.activeWorkspaceIdx)
	m.logger.Debug("moved window to workspace", "window", id, "workspace", targetIdx)
	m.cleanUpWorkspaces()
	return true
}

// MoveColumnToWorkspace transfers the whole active column.
func (m *Monitor) MoveColumnToWorkspace(targetIdx int) bool {
	source := m.ActiveWorkspace()
	if source.IsEmpty() {
		return false
	}
	targetIdx = geom.ClampInt(targetIdx, 0, len(m.workspaces)-1)
	if m.workspaces[targetIdx] == source {
		return true
	}
	target := m.workspaces[targetIdx]

	// Peel the tiles off by id; the first one recreates the column on the
	// target, the rest join it in order.
	col := source.columns[source.activeColumnIdx]
	ids := make([]WindowID, 0, col.tileCount())
	for _, t := range col.tiles {
		ids = append(ids, t.ID())
	}
	var anchor WindowID
	for i, id := range ids {
		removed, ok := source.RemoveTile(id)
		if !ok {
			continue
		}
		if i == 0 {
			m.attachRemovedTile(target, removed, true)
			anchor = removed.Tile.ID()
		} else {
			target.addTileToColumn(target.columnIdxOf(anchor), -1, removed.Tile, false)
		}
	}
	m.cleanUpWorkspaces()
	return true
}

// attachRemovedTile re-homes a detached tile into a workspace.
func (m *Monitor) attachRemovedTile(target *Workspace, removed RemovedTile, activate bool) {
	target.addTile(-1, removed.Tile, activate, removed.Width, removed.IsFullWidth)
}

// cleanUpWorkspaces enforces the dynamic-workspace invariant: no empty
// workspace in the middle unless it is active, and exactly one trailing
// empty workspace.
func (m *Monitor) cleanUpWorkspaces() {
	for i := len(m.workspaces) - 2; i >= 0; i-- {
		if i == m.activeWorkspaceIdx || !m.workspaces[i].IsEmpty() {
			continue
		}
		m.workspaces = append(m.workspaces[:i], m.workspaces[i+1:]...)
		if i < m.activeWorkspaceIdx {
			m.activeWorkspaceIdx--
		}
	}

	if len(m.workspaces) == 0 || !m.workspaces[len(m.workspaces)-1].IsEmpty() {
		m.workspaces = append(m.workspaces, NewWorkspace(m.viewSize, m.clock, m.options))
	}

	if m.activeWorkspaceIdx >= len(m.workspaces) {
		m.activeWorkspaceIdx = len(m.workspaces) - 1
	}
}

// adoptWorkspaces takes over another monitor's workspaces when its output
// disconnects.
func (m *Monitor) adoptWorkspaces(others []*Workspace) {
	for _, ws := range others {
		if ws.IsEmpty() {
			continue
		}
		ws.UpdateConfig(m.viewSize, m.options)
		// Insert before the trailing empty workspace.
		last := len(m.workspaces) - 1
		m.workspaces = append(m.workspaces[:last], append([]*Workspace{ws}, m.workspaces[last:]...)...)
	}
	m.cleanUpWorkspaces()
}

// AdvanceAnimations steps every workspace on this output.
func (m *Monitor) AdvanceAnimations() {
	for _, ws := range m.workspaces {
		ws.AdvanceAnimations()
	}
}

func (m *Monitor) AreAnimationsOngoing() bool {
	for _, ws := range m.workspaces {
		if ws.AreAnimationsOngoing() {
			return true
		}
	}
	return false
}
