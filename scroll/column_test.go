package scroll

import (
	"math"
	"testing"
)

// stackWindows opens n windows and consumes them into a single column,
// committing every size request along the way. Tiles end up in open order,
// top to bottom.
func stackWindows(t *testing.T, ws *Workspace, n int) []*stubWindow {
	t.Helper()
	wins := make([]*stubWindow, 0, n)
	wins = append(wins, addWindow(t, ws))
	for i := 1; i < n; i++ {
		win := addWindow(t, ws)
		ws.ConsumeOrExpelWindowLeft()
		wins = append(wins, win)
	}
	settle(t, ws, wins)
	return wins
}

// settle commits every pending request and feeds the acks back in until the
// sizes stop changing.
func settle(t *testing.T, ws *Workspace, wins []*stubWindow) {
	t.Helper()
	for range [4]int{} {
		for _, win := range wins {
			win.commit()
			ws.UpdateWindow(win.ID())
		}
	}
}

func TestAutoHeightsSplitEvenly(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)

	for i, win := range wins {
		if got := win.requestedSize.H; got != 360 {
			t.Fatalf("tile %d height: got %v, want 360", i, got)
		}
	}
}

func TestMinHeightTripsAndRedistributes(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	w1 := addWindow(t, ws)
	w1.minSz.H = 600
	w2 := addWindow(t, ws)
	ws.ConsumeOrExpelWindowLeft()
	settle(t, ws, []*stubWindow{w1, w2})

	// An even split would give 360 each; w1's min forces 600, leaving 120.
	if got := w1.requestedSize.H; got != 600 {
		t.Fatalf("min-height tile: got %v, want 600", got)
	}
	if got := w2.requestedSize.H; got != 120 {
		t.Fatalf("squeezed tile: got %v, want 120", got)
	}
}

func TestSetWindowHeightFixed(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 3)

	id := wins[0].ID()
	ws.SetWindowHeight(&id, SetFixed(300))
	settle(t, ws, wins)

	if got := wins[0].requestedSize.H; got != 300 {
		t.Fatalf("fixed tile: got %v, want 300", got)
	}
	if wins[1].requestedSize.H != 210 || wins[2].requestedSize.H != 210 {
		t.Fatalf("auto tiles: got %v and %v, want 210 each",
			wins[1].requestedSize.H, wins[2].requestedSize.H)
	}
}

func TestOnlyOneNonAutoHeightPerColumn(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 3)

	id0 := wins[0].ID()
	ws.SetWindowHeight(&id0, SetFixed(300))
	settle(t, ws, wins)

	id1 := wins[1].ID()
	ws.SetWindowHeight(&id1, SetFixed(400))
	settle(t, ws, wins)

	col := ws.columns[0]
	nonAuto := 0
	for _, d := range col.data {
		if !d.height.isAuto() {
			nonAuto++
		}
	}
	if nonAuto != 1 {
		t.Fatalf("non-auto heights in column: got %d, want 1", nonAuto)
	}
	if got := wins[1].requestedSize.H; got != 400 {
		t.Fatalf("second fixed tile: got %v, want 400", got)
	}
	// The previously-fixed tile keeps roughly its apparent share via its
	// auto weight.
	if wins[0].requestedSize.H <= wins[2].requestedSize.H {
		t.Fatalf("taller tile must stay taller: %v vs %v",
			wins[0].requestedSize.H, wins[2].requestedSize.H)
	}
	total := wins[0].requestedSize.H + wins[1].requestedSize.H + wins[2].requestedSize.H
	if total != 720 {
		t.Fatalf("heights must fill the column: got %v", total)
	}
}

func TestTabbedColumnSharesFullHeight(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)

	ws.ToggleColumnTabbedDisplay()
	settle(t, ws, wins)

	for i, win := range wins {
		if got := win.requestedSize.H; got != 720 {
			t.Fatalf("tab %d height: got %v, want 720", i, got)
		}
	}

	// Only the active tab renders visible, but both are reported.
	tiles := ws.RenderTiles()
	if len(tiles) != 2 {
		t.Fatalf("render count: got %d", len(tiles))
	}
	visible := 0
	for _, tr := range tiles {
		if tr.Visible {
			visible++
		}
	}
	if visible != 1 {
		t.Fatalf("visible tabs: got %d, want 1", visible)
	}
}

func TestTabbedTilesShareOneOrigin(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 3)
	ws.ToggleColumnTabbedDisplay()
	settle(t, ws, wins)

	offsets := ws.columns[0].tileOffsets()
	for i := 1; i < len(offsets); i++ {
		if offsets[i].Y != offsets[0].Y {
			t.Fatalf("tab %d y offset: got %v, want %v", i, offsets[i].Y, offsets[0].Y)
		}
	}
}

func TestToggleWindowHeightSmartReentry(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)

	// Current height 360; presets resolve to 240/360/480. Forwards picks
	// the first preset taller than the current height.
	id := wins[0].ID()
	ws.ToggleWindowHeight(&id, true)
	settle(t, ws, wins)
	if got := wins[0].requestedSize.H; got != 480 {
		t.Fatalf("forwards re-entry: got %v, want 480", got)
	}

	// Now on a preset: cycling wraps through the list.
	ws.ToggleWindowHeight(&id, true)
	settle(t, ws, wins)
	if got := wins[0].requestedSize.H; got != 240 {
		t.Fatalf("preset wrap: got %v, want 240", got)
	}
}

func TestResetWindowHeightReturnsToAuto(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)

	id := wins[0].ID()
	ws.SetWindowHeight(&id, SetFixed(600))
	settle(t, ws, wins)
	if wins[0].requestedSize.H != 600 {
		t.Fatalf("setup: got %v", wins[0].requestedSize.H)
	}

	ws.ResetWindowHeight(&id)
	settle(t, ws, wins)
	if got := wins[0].requestedSize.H; got != 360 {
		t.Fatalf("reset height: got %v, want 360", got)
	}
}

func TestToggleWidthBackwardsPicksNarrowerPreset(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)

	// Default 640 sits exactly on the middle preset; backwards from a
	// non-preset state picks the last preset narrower than the current
	// width.
	ws.ToggleWidth(false)
	win.commit()
	ws.UpdateWindow(win.ID())
	if got := win.requestedSize.W; got != 427 {
		t.Fatalf("backwards re-entry: got %v, want 427", got)
	}
}

func TestSetColumnWidthClearsFullWidthAndPreset(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)
	col := ws.columns[0]

	ws.ToggleWidth(true)
	if col.presetWidthIdx < 0 {
		t.Fatalf("toggle must record the preset index")
	}
	ws.ToggleFullWidth()
	if !col.isFullWidth {
		t.Fatalf("full width flag not set")
	}

	ws.SetWindowWidth(nil, SetFixed(500))
	win.commit()
	ws.UpdateWindow(win.ID())
	if col.presetWidthIdx != -1 || col.isFullWidth {
		t.Fatalf("explicit width must clear preset and full-width state")
	}
	if got := win.requestedSize.W; got != 500 {
		t.Fatalf("fixed width: got %v, want 500", got)
	}
}

func TestAdjustProportionWidth(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)

	// 50% + 10 percentage points at zero gaps.
	ws.SetWindowWidth(nil, AdjustProportion(10))
	win.commit()
	ws.UpdateWindow(win.ID())
	if got := win.requestedSize.W; got != math.Round(1280*0.6) {
		t.Fatalf("adjusted width: got %v, want %v", got, math.Round(1280*0.6))
	}
}

func TestExactSizeConstraintWins(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	w1 := addWindow(t, ws)
	w1.minSz.H = 200
	w1.maxSz.H = 200
	w2 := addWindow(t, ws)
	ws.ConsumeOrExpelWindowLeft()
	settle(t, ws, []*stubWindow{w1, w2})

	if got := w1.requestedSize.H; got != 200 {
		t.Fatalf("exact-constraint tile: got %v, want 200", got)
	}
	if got := w2.requestedSize.H; got != 520 {
		t.Fatalf("remaining tile: got %v, want 520", got)
	}
}

func TestMaxWidthHintCapsColumn(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := newStubWindow()
	win.maxSz.W = 500
	ws.AddWindow(win, true)
	win.commit()
	ws.UpdateWindow(win.ID())

	// Default width 640 exceeds the hint.
	if got := win.requestedSize.W; got != 500 {
		t.Fatalf("capped width: got %v, want 500", got)
	}
}
