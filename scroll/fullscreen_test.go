package scroll

import (
	"testing"
)

func TestFullscreenRequestsViewSize(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)

	if !ws.SetFullscreen(win.ID(), true) {
		t.Fatalf("SetFullscreen failed")
	}
	if !win.requestedFullscreen {
		t.Fatalf("window never saw the fullscreen request")
	}
	if win.fullscreenSize.W != 1280 || win.fullscreenSize.H != 720 {
		t.Fatalf("fullscreen size: got %+v", win.fullscreenSize)
	}

	win.commit()
	ws.UpdateWindow(win.ID())
	if !ws.columns[0].SizingMode().IsFullscreen() {
		t.Fatalf("column not fullscreen after the ack")
	}

	tiles := ws.RenderTiles()
	r := tiles[0].Rect
	if r.Loc.X != 0 || r.Loc.Y != 0 || r.Size.W != 1280 || r.Size.H != 720 {
		t.Fatalf("fullscreen render rect: got %+v", r)
	}
}

func TestFullscreenRestoresCameraAfterAck(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	ws.options.DefaultColumnWidth = ProportionWidth(1.0 / 3.0)

	for i := 0; i < 3; i++ {
		addWindow(t, ws)
	}
	ws.AdvanceAnimations()
	posBefore := ws.TargetViewPos()

	win := ws.ActiveWindow().(*stubWindow)
	ws.SetFullscreen(win.ID(), true)
	win.commit()
	ws.UpdateWindow(win.ID())
	ws.AdvanceAnimations()

	// Leave fullscreen; the camera must come back exactly where it was.
	ws.SetFullscreen(win.ID(), false)
	win.commit()
	ws.UpdateWindow(win.ID())
	ws.AdvanceAnimations()

	if got := ws.TargetViewPos(); got != posBefore {
		t.Fatalf("camera after fullscreen round trip: got %v, want %v", got, posBefore)
	}
}

func TestDoubleToggleBeforeAckLeavesCameraAlone(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	ws.options.DefaultColumnWidth = ProportionWidth(1.0 / 3.0)

	for i := 0; i < 3; i++ {
		addWindow(t, ws)
	}
	ws.AdvanceAnimations()
	posBefore := ws.TargetViewPos()

	win := ws.ActiveWindow().(*stubWindow)
	ws.ToggleFullscreen(win.ID())
	ws.ToggleFullscreen(win.ID())

	// The window never acked, so the net requested state is windowed and
	// the camera never moved.
	if win.requestedFullscreen {
		t.Fatalf("net requested fullscreen state must be off")
	}
	if got := ws.TargetViewPos(); got != posBefore {
		t.Fatalf("camera moved without a commit: got %v, want %v", got, posBefore)
	}
}

func TestFullscreenExpelsFromSharedColumn(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)

	ws.SetFullscreen(wins[1].ID(), true)
	if got := ws.ColumnCount(); got != 2 {
		t.Fatalf("sharing window must be expelled first: %d columns", got)
	}
	if !wins[1].requestedFullscreen {
		t.Fatalf("expelled window never saw the fullscreen request")
	}
	// The window left behind goes back to the full column height.
	settle(t, ws, wins)
	if got := wins[0].requestedSize.H; got != 720 {
		t.Fatalf("remaining tile height: got %v, want 720", got)
	}
}

func TestTabbedColumnFullscreensWithoutExpel(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)
	ws.ToggleColumnTabbedDisplay()
	settle(t, ws, wins)

	ws.SetFullscreen(wins[1].ID(), true)
	if got := ws.ColumnCount(); got != 1 {
		t.Fatalf("tabbed column must fullscreen in place: %d columns", got)
	}
	for i, win := range wins {
		if !win.requestedFullscreen {
			t.Fatalf("tab %d missed the fullscreen request", i)
		}
	}
}

func TestSetMaximizedUsesWorkingAreaMinusGaps(t *testing.T) {
	o := testOptions()
	o.Gaps = 16
	ws := testWorkspace(1280, 720, o)
	win := addWindow(t, ws)

	ws.SetMaximized(win.ID(), true)
	win.commit()
	ws.UpdateWindow(win.ID())

	if got := win.requestedSize.W; got != 1280-32 {
		t.Fatalf("maximized width: got %v, want %v", got, 1280-32)
	}
	if got := win.requestedSize.H; got != 720-32 {
		t.Fatalf("maximized height: got %v, want %v", got, 720-32)
	}
	if !ws.columns[0].SizingMode().IsMaximized() {
		t.Fatalf("column not maximized")
	}

	// Redundant request is refused.
	if ws.SetMaximized(win.ID(), true) {
		t.Fatalf("setting maximized twice must be a no-op")
	}
}

func TestSecondTileCancelsFullscreen(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	w1 := addWindow(t, ws)

	ws.SetFullscreen(w1.ID(), true)
	w1.commit()
	ws.UpdateWindow(w1.ID())

	// Consuming another window into a normal fullscreen column drops the
	// fullscreen state.
	w2 := addWindow(t, ws)
	ws.ConsumeOrExpelWindowLeft()
	if w1.requestedFullscreen {
		t.Fatalf("fullscreen must be cancelled when a tile joins")
	}
	settle(t, ws, []*stubWindow{w1, w2})
	if !ws.columns[0].SizingMode().IsNormal() {
		t.Fatalf("column must be back to normal sizing")
	}
}
