// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/router.go
// Summary: Translates decoded control requests into layout calls.
// Notes: The Router is not safe for concurrent use; wrap it in a Loop when
//        more than one goroutine dispatches into it.

package server

import (
	"errors"
	"fmt"

	"github.com/framegrace/scrolltile/protocol"
	"github.com/framegrace/scrolltile/scroll"
)

var errNoOutputs = errors.New("no outputs connected")

// Handler processes one decoded request and produces the response.
type Handler interface {
	Handle(req protocol.Request) protocol.Response
}

// Router maps every protocol action onto the layout operation it names.
type Router struct {
	layout *scroll.Layout
}

func NewRouter(layout *scroll.Layout) *Router {
	return &Router{layout: layout}
}

func (r *Router) Handle(req protocol.Request) protocol.Response {
	// Required parameters are pointer-typed; validation is what makes the
	// dereferences below safe.
	if err := req.Validate(); err != nil {
		return protocol.Response{OK: false, Error: err.Error()}
	}
	if err := r.apply(req); err != nil {
		return protocol.Response{OK: false, Error: err.Error()}
	}
	return protocol.Response{OK: true}
}

// targetWindow resolves the optional window parameter; absent means the
// active window.
func (r *Router) targetWindow(req protocol.Request) (scroll.WindowID, error) {
	if req.Window != nil {
		return *req.Window, nil
	}
	ws := r.layout.ActiveWorkspace()
	if ws == nil {
		return scroll.WindowID{}, errNoOutputs
	}
	win := ws.ActiveWindow()
	if win == nil {
		return scroll.WindowID{}, errors.New("no active window")
	}
	return win.ID(), nil
}

func toSizeChange(sc protocol.SizeChange) (scroll.SizeChange, error) {
	switch sc.Kind {
	case protocol.SizeSetFixed:
		return scroll.SetFixed(sc.Value), nil
	case protocol.SizeSetProportion:
		return scroll.SetProportion(sc.Value), nil
	case protocol.SizeAdjustFixed:
		return scroll.AdjustFixed(sc.Value), nil
	case protocol.SizeAdjustProportion:
		return scroll.AdjustProportion(sc.Value), nil
	}
	return scroll.SizeChange{}, fmt.Errorf("unknown size change kind %q", sc.Kind)
}

func (r *Router) apply(req protocol.Request) error {
	l := r.layout

	// Layout- and monitor-level actions first; everything else targets the
	// active workspace.
	switch req.Action {
	case protocol.ActionFocusOutput:
		if !l.FocusOutput(req.Output) {
			return fmt.Errorf("no such output %q", req.Output)
		}
		return nil

	case protocol.ActionFocusWindow:
		if !l.ActivateWindow(*req.Window) {
			return fmt.Errorf("no such window %s", req.Window)
		}
		return nil

	case protocol.ActionToggleFullscreen:
		id, err := r.targetWindow(req)
		if err != nil {
			return err
		}
		if !l.ToggleFullscreen(id) {
			return fmt.Errorf("no such window %s", id)
		}
		return nil

	case protocol.ActionSetFullscreen:
		id, err := r.targetWindow(req)
		if err != nil {
			return err
		}
		on := true
		if req.On != nil {
			on = *req.On
		}
		if !l.SetFullscreen(id, on) {
			return fmt.Errorf("no such window %s", id)
		}
		return nil

	case protocol.ActionSetMaximized:
		id, err := r.targetWindow(req)
		if err != nil {
			return err
		}
		on := true
		if req.On != nil {
			on = *req.On
		}
		if !l.SetMaximized(id, on) {
			return fmt.Errorf("no such window %s", id)
		}
		return nil

	case protocol.ActionMoveWindowToMonitor:
		id, err := r.targetWindow(req)
		if err != nil {
			return err
		}
		if !l.MoveWindowToMonitor(id, req.Output) {
			return fmt.Errorf("cannot move window to output %q", req.Output)
		}
		return nil

	case protocol.ActionMoveWindowToWorkspace:
		id, err := r.targetWindow(req)
		if err != nil {
			return err
		}
		if !l.MoveWindowToWorkspace(id, *req.Index) {
			return fmt.Errorf("no such window %s", id)
		}
		return nil

	case protocol.ActionMoveColumnToWorkspace:
		if !l.MoveColumnToWorkspace(*req.Index) {
			return errNoOutputs
		}
		return nil

	case protocol.ActionSwitchWorkspaceUp, protocol.ActionSwitchWorkspaceDown,
		protocol.ActionSwitchWorkspace:
		m := l.ActiveMonitor()
		if m == nil {
			return errNoOutputs
		}
		switch req.Action {
		case protocol.ActionSwitchWorkspaceUp:
			m.SwitchWorkspaceUp()
		case protocol.ActionSwitchWorkspaceDown:
			m.SwitchWorkspaceDown()
		default:
			m.SwitchWorkspace(*req.Index)
		}
		return nil
	}

	ws := l.ActiveWorkspace()
	if ws == nil {
		return errNoOutputs
	}

	forwards := true
	if req.Forwards != nil {
		forwards = *req.Forwards
	}

	switch req.Action {
	case protocol.ActionFocusLeft:
		ws.FocusLeft()
	case protocol.ActionFocusRight:
		ws.FocusRight()
	case protocol.ActionFocusUp:
		ws.FocusUp()
	case protocol.ActionFocusDown:
		ws.FocusDown()
	case protocol.ActionFocusTop:
		ws.FocusTop()
	case protocol.ActionFocusBottom:
		ws.FocusBottom()
	case protocol.ActionFocusColumnFirst:
		ws.FocusColumnFirst()
	case protocol.ActionFocusColumnLast:
		ws.FocusColumnLast()
	case protocol.ActionFocusColumn:
		ws.FocusColumn(*req.Index)

	case protocol.ActionMoveLeft:
		ws.MoveLeft()
	case protocol.ActionMoveRight:
		ws.MoveRight()
	case protocol.ActionMoveUp:
		ws.MoveUp()
	case protocol.ActionMoveDown:
		ws.MoveDown()
	case protocol.ActionMoveColumnFirst:
		ws.MoveColumnToFirst()
	case protocol.ActionMoveColumnLast:
		ws.MoveColumnToLast()
	case protocol.ActionMoveColumnToIndex:
		ws.MoveColumnToIndex(*req.Index)
	case protocol.ActionSwapWindowLeft:
		ws.SwapWindowLeft()
	case protocol.ActionSwapWindowRight:
		ws.SwapWindowRight()

	case protocol.ActionConsumeOrExpelLeft:
		ws.ConsumeOrExpelWindowLeft()
	case protocol.ActionConsumeOrExpelRight:
		ws.ConsumeOrExpelWindowRight()
	case protocol.ActionConsumeIntoColumn:
		ws.ConsumeIntoColumn()
	case protocol.ActionExpelFromColumn:
		ws.ExpelFromColumn()

	case protocol.ActionToggleWidth:
		ws.ToggleWindowWidth(req.Window, forwards)
	case protocol.ActionToggleWindowHeight:
		ws.ToggleWindowHeight(req.Window, forwards)
	case protocol.ActionToggleFullWidth:
		ws.ToggleFullWidth()
	case protocol.ActionSetWindowWidth:
		change, err := toSizeChange(*req.Size)
		if err != nil {
			return err
		}
		ws.SetWindowWidth(req.Window, change)
	case protocol.ActionSetWindowHeight:
		change, err := toSizeChange(*req.Size)
		if err != nil {
			return err
		}
		ws.SetWindowHeight(req.Window, change)
	case protocol.ActionResetWindowHeight:
		ws.ResetWindowHeight(req.Window)
	case protocol.ActionExpandColumn:
		ws.ExpandColumnToAvailableWidth()

	case protocol.ActionToggleTabbed:
		ws.ToggleColumnTabbedDisplay()
	case protocol.ActionCenterColumn:
		ws.CenterColumn()
	case protocol.ActionCenterVisibleColumns:
		ws.CenterVisibleColumns()

	default:
		return fmt.Errorf("unknown action %q", req.Action)
	}
	return nil
}
