// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/layout.go
// Summary: Top-level routing across outputs.
// Usage: One Layout per compositor. Every user-facing action lands here and
//        is routed to the monitor/workspace that owns the target.

package scroll

import (
	"log/slog"
	"time"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
)

// Layout maps connected outputs to monitors and routes all actions.
type Layout struct {
	monitors         []*Monitor
	activeMonitorIdx int

	clock   *anim.Clock
	options *Options
	logger  *slog.Logger
}

func NewLayout(clock *anim.Clock, options *Options, logger *slog.Logger) *Layout {
	if options == nil {
		options = DefaultOptions()
	}
	if logger == nil {
		logger = slog.Default()
	}
	clock.SetSlowdown(options.Animations.Slowdown)
	return &Layout{
		clock:   clock,
		options: options,
		logger:  logger,
	}
}

func (l *Layout) Clock() *anim.Clock { return l.clock }
func (l *Layout) Options() *Options  { return l.options }

// UpdateOptions swaps the layout options in on every monitor.
func (l *Layout) UpdateOptions(options *Options) {
	l.options = options
	l.clock.SetSlowdown(options.Animations.Slowdown)
	for _, m := range l.monitors {
		m.UpdateConfig(m.ViewSize(), options)
	}
}

// AddOutput connects a monitor. A duplicate name resizes the existing one.
func (l *Layout) AddOutput(name string, viewSize geom.Size) *Monitor {
	if m := l.Monitor(name); m != nil {
		m.UpdateConfig(viewSize, l.options)
		return m
	}
	m := NewMonitor(name, viewSize, l.clock, l.options, l.logger)
	l.monitors = append(l.monitors, m)
	l.logger.Info("output connected", "output", name, "width", viewSize.W, "height", viewSize.H)
	return m
}

// RemoveOutput disconnects a monitor; its workspaces migrate to the first
// remaining monitor. Removing the last output drops its windows, which the
// caller is expected to re-add on the next connect.
func (l *Layout) RemoveOutput(name string) bool {
	idx := l.monitorIdx(name)
	if idx < 0 {
		return false
	}
	removed := l.monitors[idx]
	l.monitors = append(l.monitors[:idx], l.monitors[idx+1:]...)
	if l.activeMonitorIdx >= len(l.monitors) {
		l.activeMonitorIdx = 0
	}

	if len(l.monitors) > 0 {
		l.monitors[0].adoptWorkspaces(removed.workspaces)
		l.logger.Info("output disconnected, workspaces migrated",
			"output", name, "target", l.monitors[0].Name())
	} else {
		l.logger.Warn("last output disconnected, windows dropped", "output", name)
	}
	return true
}

func (l *Layout) monitorIdx(name string) int {
	for i, m := range l.monitors {
		if m.Name() == name {
			return i
		}
	}
	return -1
}

// Monitor returns the monitor for an output name, or nil.
func (l *Layout) Monitor(name string) *Monitor {
	if idx := l.monitorIdx(name); idx >= 0 {
		return l.monitors[idx]
	}
	return nil
}

// ActiveMonitor returns the focused monitor, or nil with no outputs.
func (l *Layout) ActiveMonitor() *Monitor {
	if len(l.monitors) == 0 {
		return nil
	}
	return l.monitors[l.activeMonitorIdx]
}

// ActiveWorkspace returns the focused workspace, or nil with no outputs.
func (l *Layout) ActiveWorkspace() *Workspace {
	m := l.ActiveMonitor()
	if m == nil {
		return nil
	}
	return m.ActiveWorkspace()
}

// FocusOutput moves monitor focus by name.
func (l *Layout) FocusOutput(name string) bool {
	idx := l.monitorIdx(name)
	if idx < 0 {
		return false
	}
	l.activeMonitorIdx = idx
	return true
}

// monitorOf finds the monitor holding a window.
func (l *Layout) monitorOf(id WindowID) *Monitor {
	for _, m := range l.monitors {
		if m.HasWindow(id) {
			return m
		}
	}
	return nil
}

// AddWindow opens a window on the focused workspace.
func (l *Layout) AddWindow(window LayoutElement, activate bool) bool {
	m := l.ActiveMonitor()
	if m == nil {
		return false
	}
	m.AddWindow(window, activate)
	l.logger.Debug("window added", "window", window.ID())
	return true
}

// RemoveWindow closes out a window wherever it lives.
func (l *Layout) RemoveWindow(id WindowID) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	_, ok := m.RemoveWindow(id)
	if ok {
		l.logger.Debug("window removed", "window", id)
	}
	return ok
}

// UpdateWindow is the communicate step entry point.
func (l *Layout) UpdateWindow(id WindowID) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	return m.UpdateWindow(id)
}

// ActivateWindow focuses a window across monitors and workspaces.
func (l *Layout) ActivateWindow(id WindowID) bool {
	for i, m := range l.monitors {
		if m.HasWindow(id) {
			l.activeMonitorIdx = i
			return m.ActivateWindow(id)
		}
	}
	return false
}

// MoveWindowToMonitor transfers a window to another output's active
// workspace, keeping its column sizing.
func (l *Layout) MoveWindowToMonitor(id WindowID, output string) bool {
	target := l.Monitor(output)
	if target == nil {
		return false
	}
	source := l.monitorOf(id)
	if source == nil {
		return false
	}
	if source == target {
		return true
	}
	wsIdx := source.workspaceIdxOf(id)
	removed, ok := source.workspaces[wsIdx].RemoveTile(id)
	if !ok {
		return false
	}
	source.cleanUpWorkspaces()
	target.attachRemovedTile(target.ActiveWorkspace(), removed, true)
	target.cleanUpWorkspaces()
	l.logger.Debug("window moved to output", "window", id, "output", output)
	return true
}

// MoveWindowToWorkspace transfers a window to a workspace index on its own
// monitor.
func (l *Layout) MoveWindowToWorkspace(id WindowID, idx int) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	return m.MoveWindowToWorkspace(id, idx)
}

// MoveColumnToWorkspace transfers the focused column on the active monitor.
func (l *Layout) MoveColumnToWorkspace(idx int) bool {
	m := l.ActiveMonitor()
	if m == nil {
		return false
	}
	return m.MoveColumnToWorkspace(idx)
}

// SetFullscreen routes a fullscreen request to the owning workspace. It
// reports whether the window exists; requesting the state the window is
// already in is a quiet no-op, not a failure.
func (l *Layout) SetFullscreen(id WindowID, on bool) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	m.workspaces[m.workspaceIdxOf(id)].SetFullscreen(id, on)
	return true
}

func (l *Layout) ToggleFullscreen(id WindowID) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	return m.workspaces[m.workspaceIdxOf(id)].ToggleFullscreen(id)
}

// SetMaximized reports found-ness with the same no-op convention as
// SetFullscreen.
func (l *Layout) SetMaximized(id WindowID, on bool) bool {
	m := l.monitorOf(id)
	if m == nil {
		return false
	}
	m.workspaces[m.workspaceIdxOf(id)].SetMaximized(id, on)
	return true
}

// AdvanceAnimations moves the shared clock forward and collapses finished
// animations everywhere. now must be non-decreasing.
func (l *Layout) AdvanceAnimations(now time.Duration) {
	l.clock.SetNow(now)
	for _, m := range l.monitors {
		m.AdvanceAnimations()
	}
}

func (l *Layout) AreAnimationsOngoing() bool {
	for _, m := range l.monitors {
		if m.AreAnimationsOngoing() {
			return true
		}
	}
	return false
}
