package scroll

import (
	"testing"

	"github.com/framegrace/scrolltile/geom"
)

func gestureWorkspace(t *testing.T) *Workspace {
	t.Helper()
	ws := testWorkspace(1280, 720, nil)
	ws.options.DefaultColumnWidth = ProportionWidth(1.0 / 3.0)
	for i := 0; i < 3; i++ {
		addWindow(t, ws)
	}
	ws.FocusColumnFirst()
	ws.AdvanceAnimations()
	return ws
}

func TestGestureCancelHasNoNetEffect(t *testing.T) {
	ws := gestureWorkspace(t)
	before := ws.TargetViewPos()

	ws.ViewOffsetGestureBegin()
	ws.ViewOffsetGestureUpdate(500)
	if got := ws.ViewPos(); got != before+500 {
		t.Fatalf("mid-gesture view: got %v, want %v", got, before+500)
	}
	ws.ViewOffsetGestureCancel()
	ws.AdvanceAnimations()

	if got := ws.TargetViewPos(); got != before {
		t.Fatalf("cancelled gesture must restore the view: got %v, want %v", got, before)
	}
	if ws.activeColumnIdx != 0 {
		t.Fatalf("cancelled gesture must not change focus")
	}
}

func TestGestureOwnsCameraDuringCommits(t *testing.T) {
	ws := gestureWorkspace(t)

	ws.ViewOffsetGestureBegin()
	ws.ViewOffsetGestureUpdate(300)
	mid := ws.ViewPos()

	// A window commit mid-gesture must not steal the camera back.
	win := ws.ActiveWindow().(*stubWindow)
	id := win.ID()
	ws.SetWindowWidth(&id, SetProportion(50))
	win.commit()
	ws.UpdateWindow(id)

	if !ws.viewOffsetState.isGesture() {
		t.Fatalf("commit ended the gesture")
	}
	if got := ws.ViewPos(); got != mid {
		t.Fatalf("camera moved under the finger: got %v, want %v", got, mid)
	}
}

func TestGestureEndSnapsToNearestColumn(t *testing.T) {
	ws := gestureWorkspace(t)

	// Swiping right by two column widths lands the camera on the third
	// column's resolved position.
	ws.ViewOffsetGestureBegin()
	ws.ViewOffsetGestureUpdate(800)
	if !ws.ViewOffsetGestureEnd(0) {
		t.Fatalf("gesture end failed")
	}
	if got := ws.activeColumnIdx; got != 2 {
		t.Fatalf("snap target: got column %d, want 2", got)
	}
	if ws.viewOffsetState.isGesture() {
		t.Fatalf("gesture must release the camera on end")
	}
}

func TestGestureEndVelocityProjectsAhead(t *testing.T) {
	ws := gestureWorkspace(t)

	// A short swipe with a strong rightward flick: the projection crosses
	// into the second column even though the finger didn't.
	ws.ViewOffsetGestureBegin()
	ws.ViewOffsetGestureUpdate(120)
	ws.ViewOffsetGestureEnd(2000)
	if got := ws.activeColumnIdx; got != 1 {
		t.Fatalf("flick must carry to the next column: got %d", got)
	}
}

func TestDnDScrollWithoutMovementKeepsView(t *testing.T) {
	ws := gestureWorkspace(t)
	ws.FocusColumnLast()
	ws.AdvanceAnimations()
	before := ws.TargetViewPos()

	ws.DnDScrollGestureBegin()
	ws.DnDScrollGestureEnd()
	ws.AdvanceAnimations()

	if got := ws.TargetViewPos(); got != before {
		t.Fatalf("no-movement DnD must keep the view: got %v, want %v", got, before)
	}
}

func TestDnDScrollActivationRidesGesture(t *testing.T) {
	ws := gestureWorkspace(t)

	ws.DnDScrollGestureBegin()
	ws.DnDScrollGestureScroll(50)

	// Activating a column mid-DnD keeps the gesture alive; the jump is
	// absorbed by a decaying extra animation.
	ws.activateColumn(2)
	if !ws.viewOffsetState.isGesture() {
		t.Fatalf("activation must not end the DnD gesture")
	}
	ws.DnDScrollGestureEnd()
	if ws.viewOffsetState.isGesture() {
		t.Fatalf("gesture must end on DnD end")
	}
}

func TestInteractiveResizeRightEdge(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)
	id := win.ID()

	if !ws.InteractiveResizeBegin(id, EdgeRight) {
		t.Fatalf("resize begin failed")
	}
	ws.InteractiveResizeUpdate(id, geom.Point{X: 100})
	win.commit()
	ws.UpdateWindow(id)

	if got := win.requestedSize.W; got != 740 {
		t.Fatalf("right-edge resize: got %v, want 740", got)
	}
	ws.InteractiveResizeEnd(id)
	if ws.interactiveResize != nil {
		t.Fatalf("resize state must clear on end")
	}
}

func TestInteractiveResizeLeftEdgeFlipsDelta(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)
	id := win.ID()

	ws.InteractiveResizeBegin(id, EdgeLeft)
	if !ws.columns[0].data[0].resizingByLeftEdge {
		t.Fatalf("left-edge flag not set")
	}

	// Dragging the left edge leftwards grows the window.
	ws.InteractiveResizeUpdate(id, geom.Point{X: -100})
	win.commit()
	ws.UpdateWindow(id)
	if got := win.requestedSize.W; got != 740 {
		t.Fatalf("left-edge resize: got %v, want 740", got)
	}

	ws.InteractiveResizeEnd(id)
	if ws.columns[0].data[0].resizingByLeftEdge {
		t.Fatalf("left-edge flag must clear on end")
	}
}

func TestInteractiveResizeTopEdgeOfTopmostIsNoOp(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)
	id := wins[0].ID()

	ws.InteractiveResizeBegin(id, EdgeTop)
	ws.InteractiveResizeUpdate(id, geom.Point{Y: -50})
	settle(t, ws, wins)

	if got := wins[0].requestedSize.H; got != 360 {
		t.Fatalf("topmost top edge must not resize: got %v", got)
	}
	ws.InteractiveResizeEnd(id)
}

func TestInteractiveResizeBottomEdgeOfStackedTile(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	wins := stackWindows(t, ws, 2)
	id := wins[0].ID()

	ws.InteractiveResizeBegin(id, EdgeBottom)
	ws.InteractiveResizeUpdate(id, geom.Point{Y: 80})
	settle(t, ws, wins)

	if got := wins[0].requestedSize.H; got != 440 {
		t.Fatalf("bottom-edge resize: got %v, want 440", got)
	}
	if got := wins[1].requestedSize.H; got != 280 {
		t.Fatalf("neighbor must shrink: got %v, want 280", got)
	}
	ws.InteractiveResizeEnd(id)
}

func TestInteractiveResizeRefusedOnFullscreenColumn(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	win := addWindow(t, ws)
	ws.SetFullscreen(win.ID(), true)

	if ws.InteractiveResizeBegin(win.ID(), EdgeRight) {
		t.Fatalf("fullscreen column must refuse interactive resize")
	}
}

func TestOnlyOneInteractiveResizeAtATime(t *testing.T) {
	ws := testWorkspace(1280, 720, nil)
	w1 := addWindow(t, ws)
	w2 := addWindow(t, ws)

	if !ws.InteractiveResizeBegin(w1.ID(), EdgeRight) {
		t.Fatalf("first resize begin failed")
	}
	if ws.InteractiveResizeBegin(w2.ID(), EdgeRight) {
		t.Fatalf("second concurrent resize must be refused")
	}
}
