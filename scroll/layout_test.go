package scroll

import (
	"testing"
	"time"

	"github.com/framegrace/scrolltile/geom"
)

func testLayout() *Layout {
	return NewLayout(newTestClock(), testOptions(), nil)
}

func TestLayoutRoutesWindowsAcrossOutputs(t *testing.T) {
	l := testLayout()
	l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})
	l.AddOutput("DP-2", geom.Size{W: 1920, H: 1080})

	w1 := newStubWindow()
	l.AddWindow(w1, true)
	w1.commit()
	l.UpdateWindow(w1.ID())

	l.FocusOutput("DP-2")
	w2 := newStubWindow()
	l.AddWindow(w2, true)
	w2.commit()
	l.UpdateWindow(w2.ID())

	if !l.Monitor("eDP-1").HasWindow(w1.ID()) || !l.Monitor("DP-2").HasWindow(w2.ID()) {
		t.Fatalf("windows landed on the wrong outputs")
	}

	// Activating a window on another output moves monitor focus there.
	if !l.ActivateWindow(w1.ID()) {
		t.Fatalf("activate failed")
	}
	if got := l.ActiveMonitor().Name(); got != "eDP-1" {
		t.Fatalf("monitor focus: got %s", got)
	}
}

func TestRemoveOutputMigratesWorkspaces(t *testing.T) {
	l := testLayout()
	l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})
	l.AddOutput("DP-2", geom.Size{W: 1920, H: 1080})

	l.FocusOutput("DP-2")
	win := newStubWindow()
	l.AddWindow(win, true)
	win.commit()
	l.UpdateWindow(win.ID())

	if !l.RemoveOutput("DP-2") {
		t.Fatalf("remove output failed")
	}
	if l.Monitor("DP-2") != nil {
		t.Fatalf("removed output still present")
	}
	if !l.Monitor("eDP-1").HasWindow(win.ID()) {
		t.Fatalf("window lost on output removal")
	}
	// The adopted workspace is re-sized for its new output.
	ws := l.Monitor("eDP-1").workspaces[l.Monitor("eDP-1").workspaceIdxOf(win.ID())]
	if ws.ViewSize().W != 1280 {
		t.Fatalf("adopted workspace view size: got %v", ws.ViewSize().W)
	}
}

func TestAddOutputTwiceResizesInstead(t *testing.T) {
	l := testLayout()
	m1 := l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})
	m2 := l.AddOutput("eDP-1", geom.Size{W: 1920, H: 1080})

	if m1 != m2 {
		t.Fatalf("duplicate output name must reuse the monitor")
	}
	if got := m1.ViewSize().W; got != 1920 {
		t.Fatalf("reconnect must resize: got %v", got)
	}
}

func TestMoveWindowToMonitor(t *testing.T) {
	l := testLayout()
	l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})
	l.AddOutput("DP-2", geom.Size{W: 1920, H: 1080})

	win := newStubWindow()
	l.AddWindow(win, true)
	win.commit()
	l.UpdateWindow(win.ID())

	if !l.MoveWindowToMonitor(win.ID(), "DP-2") {
		t.Fatalf("move to monitor failed")
	}
	if l.Monitor("eDP-1").HasWindow(win.ID()) || !l.Monitor("DP-2").HasWindow(win.ID()) {
		t.Fatalf("window not transferred")
	}
}

func TestLayoutWithNoOutputsRefusesWindows(t *testing.T) {
	l := testLayout()
	if l.AddWindow(newStubWindow(), true) {
		t.Fatalf("adding a window with no outputs must fail")
	}
	if l.ActiveWorkspace() != nil {
		t.Fatalf("no active workspace without outputs")
	}
}

func TestAdvanceAnimationsDrivesClock(t *testing.T) {
	l := testLayout()
	l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})

	l.AdvanceAnimations(16 * time.Millisecond)
	if got := l.Clock().Now(); got != 16*time.Millisecond {
		t.Fatalf("clock now: got %v", got)
	}
	if l.AreAnimationsOngoing() {
		t.Fatalf("idle layout reports ongoing animations")
	}
}
