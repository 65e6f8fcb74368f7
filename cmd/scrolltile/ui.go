// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrolltile/ui.go
// Summary: tcell renderer and key handling for the demo driver.
// Usage: One terminal cell per layout unit. All layout access goes through
//        the engine loop; the UI goroutine only draws snapshots.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/protocol"
	"github.com/framegrace/scrolltile/scroll"
	"github.com/framegrace/scrolltile/server"
)

const (
	demoOutput    = "tty"
	frameInterval = 16 * time.Millisecond
)

type demoUI struct {
	layout *scroll.Layout
	loop   *server.Loop
	quit   context.CancelFunc

	// Touched only from the loop goroutine after Serve starts.
	windows map[scroll.WindowID]*demoWindow
	nextWin int

	maximized bool
}

func newDemoUI(layout *scroll.Layout, loop *server.Loop, quit context.CancelFunc) *demoUI {
	return &demoUI{
		layout:  layout,
		loop:    loop,
		quit:    quit,
		windows: make(map[scroll.WindowID]*demoWindow),
	}
}

func (u *demoUI) String() string { return "demo-ui" }

func (u *demoUI) Serve(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	w, h := screen.Size()
	u.loop.Do(func() {
		u.layout.AddOutput(demoOutput, geom.Size{W: float64(w), H: float64(h)})
		for i := 0; i < 3; i++ {
			u.spawnWindow()
		}
	})

	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			u.handleEvent(ev)
		case <-ticker.C:
			u.frame(screen, time.Since(start))
		}
	}
}

// spawnWindow must run on the loop goroutine.
func (u *demoUI) spawnWindow() {
	u.nextWin++
	win := newDemoWindow(fmt.Sprintf("win %d", u.nextWin))
	u.windows[win.ID()] = win
	u.layout.AddWindow(win, true)
}

func (u *demoUI) frame(screen tcell.Screen, now time.Duration) {
	var tiles []scroll.TileRender
	u.loop.Do(func() {
		for id, win := range u.windows {
			if win.tick() {
				u.layout.UpdateWindow(id)
			}
		}
		u.layout.AdvanceAnimations(now)
		if ws := u.layout.ActiveWorkspace(); ws != nil {
			tiles = ws.RenderTiles()
		}
	})

	screen.Clear()
	for _, t := range tiles {
		if t.Visible {
			u.drawTile(screen, t)
		}
	}
	screen.Show()
}

func (u *demoUI) drawTile(screen tcell.Screen, t scroll.TileRender) {
	x := int(math.Round(t.Rect.Loc.X))
	y := int(math.Round(t.Rect.Loc.Y))
	w := int(math.Round(t.Rect.Size.W))
	h := int(math.Round(t.Rect.Size.H))
	if w < 2 || h < 2 {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if t.Active {
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	if t.Alpha < 1 {
		style = style.Dim(true)
	}

	for cx := x + 1; cx < x+w-1; cx++ {
		screen.SetContent(cx, y, '─', nil, style)
		screen.SetContent(cx, y+h-1, '─', nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		screen.SetContent(x, cy, '│', nil, style)
		screen.SetContent(x+w-1, cy, '│', nil, style)
	}
	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(x+w-1, y, '┐', nil, style)
	screen.SetContent(x, y+h-1, '└', nil, style)
	screen.SetContent(x+w-1, y+h-1, '┘', nil, style)

	title := ""
	if win, ok := t.Window.(*demoWindow); ok {
		title = win.title
	}
	if t.Window.IsFullscreen() {
		title += " (fullscreen)"
	}
	label := runewidth.Truncate(" "+title+" ", w-2, "…")
	cx := x + 1 + (w-2-runewidth.StringWidth(label))/2
	for _, r := range label {
		screen.SetContent(cx, y, r, nil, style)
		cx += runewidth.RuneWidth(r)
	}
}

func (u *demoUI) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		u.loop.Do(func() {
			u.layout.AddOutput(demoOutput, geom.Size{W: float64(w), H: float64(h)})
		})
	case *tcell.EventKey:
		u.handleKey(ev)
	}
}

func (u *demoUI) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		u.quit()
		return
	case tcell.KeyLeft:
		u.act(protocol.Request{Action: protocol.ActionFocusLeft})
		return
	case tcell.KeyRight:
		u.act(protocol.Request{Action: protocol.ActionFocusRight})
		return
	case tcell.KeyUp:
		u.act(protocol.Request{Action: protocol.ActionFocusUp})
		return
	case tcell.KeyDown:
		u.act(protocol.Request{Action: protocol.ActionFocusDown})
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		u.quit()
	case 'n':
		u.loop.Do(u.spawnWindow)
	case 'x':
		u.closeActiveWindow()
	case 'h':
		u.act(protocol.Request{Action: protocol.ActionFocusLeft})
	case 'l':
		u.act(protocol.Request{Action: protocol.ActionFocusRight})
	case 'k':
		u.act(protocol.Request{Action: protocol.ActionFocusUp})
	case 'j':
		u.act(protocol.Request{Action: protocol.ActionFocusDown})
	case 'H':
		u.act(protocol.Request{Action: protocol.ActionMoveLeft})
	case 'L':
		u.act(protocol.Request{Action: protocol.ActionMoveRight})
	case 'K':
		u.act(protocol.Request{Action: protocol.ActionMoveUp})
	case 'J':
		u.act(protocol.Request{Action: protocol.ActionMoveDown})
	case 'r':
		u.act(protocol.Request{Action: protocol.ActionToggleWidth})
	case 'R':
		u.act(protocol.Request{Action: protocol.ActionToggleWindowHeight})
	case 'F':
		u.act(protocol.Request{Action: protocol.ActionToggleFullWidth})
	case 'f':
		u.act(protocol.Request{Action: protocol.ActionToggleFullscreen})
	case 'm':
		on := !u.maximized
		u.maximized = on
		u.act(protocol.Request{Action: protocol.ActionSetMaximized, On: &on})
	case 't':
		u.act(protocol.Request{Action: protocol.ActionToggleTabbed})
	case 'c':
		u.act(protocol.Request{Action: protocol.ActionCenterColumn})
	case 'e':
		u.act(protocol.Request{Action: protocol.ActionExpandColumn})
	case '[':
		u.act(protocol.Request{Action: protocol.ActionConsumeOrExpelLeft})
	case ']':
		u.act(protocol.Request{Action: protocol.ActionConsumeOrExpelRight})
	case 'w':
		u.act(protocol.Request{Action: protocol.ActionSwitchWorkspaceUp})
	case 's':
		u.act(protocol.Request{Action: protocol.ActionSwitchWorkspaceDown})
	}
}

func (u *demoUI) act(req protocol.Request) {
	if resp := u.loop.Handle(req); !resp.OK {
		slog.Debug("action rejected", "action", req.Action, "err", resp.Error)
	}
}

func (u *demoUI) closeActiveWindow() {
	u.loop.Do(func() {
		ws := u.layout.ActiveWorkspace()
		if ws == nil {
			return
		}
		win := ws.ActiveWindow()
		if win == nil {
			return
		}
		u.layout.RemoveWindow(win.ID())
		delete(u.windows, win.ID())
	})
}
