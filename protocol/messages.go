// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: protocol/messages.go
// Summary: Typed action requests understood by the control socket.

package protocol

import (
	"fmt"

	"github.com/google/uuid"
)

// Action enumerates every user-facing operation.
type Action string

const (
	// Focus movement.
	ActionFocusLeft        Action = "focus-left"
	ActionFocusRight       Action = "focus-right"
	ActionFocusUp          Action = "focus-up"
	ActionFocusDown        Action = "focus-down"
	ActionFocusTop         Action = "focus-top"
	ActionFocusBottom      Action = "focus-bottom"
	ActionFocusColumnFirst Action = "focus-column-first"
	ActionFocusColumnLast  Action = "focus-column-last"
	ActionFocusColumn      Action = "focus-column"
	ActionFocusWindow      Action = "focus-window"
	ActionFocusOutput      Action = "focus-output"

	// Column and window movement.
	ActionMoveLeft          Action = "move-left"
	ActionMoveRight         Action = "move-right"
	ActionMoveUp            Action = "move-up"
	ActionMoveDown          Action = "move-down"
	ActionMoveColumnFirst   Action = "move-column-first"
	ActionMoveColumnLast    Action = "move-column-last"
	ActionMoveColumnToIndex Action = "move-column-to-index"
	ActionSwapWindowLeft    Action = "swap-window-left"
	ActionSwapWindowRight   Action = "swap-window-right"

	// Column membership.
	ActionConsumeOrExpelLeft  Action = "consume-or-expel-left"
	ActionConsumeOrExpelRight Action = "consume-or-expel-right"
	ActionConsumeIntoColumn   Action = "consume-into-column"
	ActionExpelFromColumn     Action = "expel-from-column"

	// Sizing.
	ActionToggleWidth        Action = "toggle-width"
	ActionToggleWindowHeight Action = "toggle-window-height"
	ActionToggleFullWidth    Action = "toggle-full-width"
	ActionSetWindowWidth     Action = "set-window-width"
	ActionSetWindowHeight    Action = "set-window-height"
	ActionResetWindowHeight  Action = "reset-window-height"
	ActionExpandColumn       Action = "expand-column"

	// Sizing modes and display.
	ActionToggleFullscreen Action = "toggle-fullscreen"
	ActionSetFullscreen    Action = "set-fullscreen"
	ActionSetMaximized     Action = "set-maximized"
	ActionToggleTabbed     Action = "toggle-tabbed"

	// Camera.
	ActionCenterColumn         Action = "center-column"
	ActionCenterVisibleColumns Action = "center-visible-columns"

	// Workspaces and outputs.
	ActionSwitchWorkspaceUp     Action = "switch-workspace-up"
	ActionSwitchWorkspaceDown   Action = "switch-workspace-down"
	ActionSwitchWorkspace       Action = "switch-workspace"
	ActionMoveWindowToWorkspace Action = "move-window-to-workspace"
	ActionMoveColumnToWorkspace Action = "move-column-to-workspace"
	ActionMoveWindowToMonitor   Action = "move-window-to-monitor"
)

// SizeChange mirrors the engine's size-change forms. Exactly one field is
// meaningful, selected by Kind.
type SizeChange struct {
	Kind  SizeChangeKind `json:"kind"`
	Value float64        `json:"value"`
}

type SizeChangeKind string

const (
	SizeSetFixed         SizeChangeKind = "set-fixed"
	SizeSetProportion    SizeChangeKind = "set-proportion"
	SizeAdjustFixed      SizeChangeKind = "adjust-fixed"
	SizeAdjustProportion SizeChangeKind = "adjust-proportion"
)

// Request is one decoded action. Optional parameters are pointers so absent
// and zero-valued fields stay distinguishable.
type Request struct {
	Action Action `json:"action"`

	// Window targets a specific window; nil means the active one.
	Window *uuid.UUID `json:"window,omitempty"`
	// Index parametrizes column/workspace targeting actions.
	Index *int `json:"index,omitempty"`
	// Output names a monitor for output-directed actions.
	Output string `json:"output,omitempty"`
	// Size parametrizes the set-window-width/height actions.
	Size *SizeChange `json:"size,omitempty"`
	// Forwards selects the cycling direction for toggle actions.
	Forwards *bool `json:"forwards,omitempty"`
	// On selects the target state for set-fullscreen/set-maximized.
	On *bool `json:"on,omitempty"`
}

// Response reports the outcome of one request.
type Response struct {
	Version int    `json:"version"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// Validate checks that the request carries the parameters its action needs.
func (r Request) Validate() error {
	switch r.Action {
	case ActionFocusColumn, ActionMoveColumnToIndex, ActionSwitchWorkspace,
		ActionMoveWindowToWorkspace, ActionMoveColumnToWorkspace:
		if r.Index == nil {
			return fmt.Errorf("protocol: action %q requires index", r.Action)
		}
	case ActionFocusOutput, ActionMoveWindowToMonitor:
		if r.Output == "" {
			return fmt.Errorf("protocol: action %q requires output", r.Action)
		}
	case ActionSetWindowWidth, ActionSetWindowHeight:
		if r.Size == nil {
			return fmt.Errorf("protocol: action %q requires size", r.Action)
		}
		switch r.Size.Kind {
		case SizeSetFixed, SizeSetProportion, SizeAdjustFixed, SizeAdjustProportion:
		default:
			return fmt.Errorf("protocol: unknown size change kind %q", r.Size.Kind)
		}
	case ActionFocusWindow, ActionSetFullscreen, ActionToggleFullscreen:
		if r.Window == nil && r.Action == ActionFocusWindow {
			return fmt.Errorf("protocol: action %q requires window", r.Action)
		}
	case "":
		return fmt.Errorf("protocol: missing action")
	}
	return nil
}
