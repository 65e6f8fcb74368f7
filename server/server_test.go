package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
	"github.com/framegrace/scrolltile/protocol"
	"github.com/framegrace/scrolltile/scroll"
)

// fakeWindow acks every request immediately on commit().
type fakeWindow struct {
	id            uuid.UUID
	size          geom.Size
	requestedSize geom.Size
	fullscreen    bool
	requestedFS   bool
	fsSize        geom.Size
}

func newFakeWindow() *fakeWindow { return &fakeWindow{id: uuid.New()} }

func (f *fakeWindow) ID() scroll.WindowID { return f.id }
func (f *fakeWindow) Size() geom.Size     { return f.size }
func (f *fakeWindow) RequestSize(size geom.Size) {
	f.requestedSize = size
}
func (f *fakeWindow) RequestFullscreen(on bool, output geom.Size) {
	f.requestedFS = on
	f.fsSize = output
}
func (f *fakeWindow) IsFullscreen() bool { return f.fullscreen }
func (f *fakeWindow) MinSize() geom.Size { return geom.Size{} }
func (f *fakeWindow) MaxSize() geom.Size { return geom.Size{} }

func (f *fakeWindow) commit() {
	f.fullscreen = f.requestedFS
	if f.fullscreen {
		f.size = f.fsSize
	} else if !f.requestedSize.IsEmpty() {
		f.size = f.requestedSize
	}
}

func testLayout(t *testing.T) *scroll.Layout {
	t.Helper()
	o := scroll.DefaultOptions()
	o.Gaps = 0
	o.Animations.Off = true
	l := scroll.NewLayout(anim.NewClock(), o, nil)
	l.AddOutput("eDP-1", geom.Size{W: 1280, H: 720})
	return l
}

func addFakeWindow(t *testing.T, l *scroll.Layout) *fakeWindow {
	t.Helper()
	win := newFakeWindow()
	if !l.AddWindow(win, true) {
		t.Fatalf("add window failed")
	}
	win.commit()
	if !l.UpdateWindow(win.ID()) {
		t.Fatalf("update window failed")
	}
	return win
}

func TestRouterDispatchesActions(t *testing.T) {
	l := testLayout(t)
	r := NewRouter(l)
	addFakeWindow(t, l)
	win := addFakeWindow(t, l)

	if resp := r.Handle(protocol.Request{Action: protocol.ActionFocusLeft}); !resp.OK {
		t.Fatalf("focus-left: %v", resp.Error)
	}
	if got := l.ActiveWorkspace().ActiveColumnIdx(); got != 0 {
		t.Fatalf("active column after focus-left: got %d", got)
	}

	resp := r.Handle(protocol.Request{
		Action: protocol.ActionSetWindowWidth,
		Window: &win.id,
		Size:   &protocol.SizeChange{Kind: protocol.SizeSetProportion, Value: 50},
	})
	if !resp.OK {
		t.Fatalf("set-window-width: %v", resp.Error)
	}
	if got := win.requestedSize.W; got != 640 {
		t.Fatalf("half-proportion width request: got %v, want 640", got)
	}

	on := true
	if resp := r.Handle(protocol.Request{
		Action: protocol.ActionSetFullscreen,
		Window: &win.id,
		On:     &on,
	}); !resp.OK {
		t.Fatalf("set-fullscreen: %v", resp.Error)
	}
	if !win.requestedFS || win.fsSize.W != 1280 {
		t.Fatalf("fullscreen request: on=%v size=%v", win.requestedFS, win.fsSize)
	}
}

func TestRouterRejectsBadTargets(t *testing.T) {
	empty := NewRouter(scroll.NewLayout(anim.NewClock(), nil, nil))
	if resp := empty.Handle(protocol.Request{Action: protocol.ActionFocusLeft}); resp.OK {
		t.Fatalf("focus with no outputs must fail")
	}

	l := testLayout(t)
	r := NewRouter(l)
	addFakeWindow(t, l)

	if resp := r.Handle(protocol.Request{Action: protocol.ActionFocusOutput, Output: "HDMI-9"}); resp.OK {
		t.Fatalf("unknown output must fail")
	}
	stranger := uuid.New()
	if resp := r.Handle(protocol.Request{Action: protocol.ActionFocusWindow, Window: &stranger}); resp.OK {
		t.Fatalf("unknown window must fail")
	}
	if resp := r.Handle(protocol.Request{Action: "grow-sideways"}); resp.OK {
		t.Fatalf("unknown action must fail")
	}
}

func TestRouterEdgeActionsAreQuietNoOps(t *testing.T) {
	l := testLayout(t)
	r := NewRouter(l)
	addFakeWindow(t, l)

	// Single column: moving focus past the edge succeeds without effect.
	for _, a := range []protocol.Action{
		protocol.ActionFocusLeft, protocol.ActionFocusRight,
		protocol.ActionMoveLeft, protocol.ActionMoveRight,
		protocol.ActionSwitchWorkspaceUp,
	} {
		if resp := r.Handle(protocol.Request{Action: a}); !resp.OK {
			t.Fatalf("%s at edge: %v", a, resp.Error)
		}
	}
}

func TestLoopSerializesAndStops(t *testing.T) {
	l := testLayout(t)
	loop := NewLoop(NewRouter(l))

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- loop.Serve(ctx) }()

	ran := false
	if !loop.Do(func() { ran = true }) {
		t.Fatalf("Do on a running loop must succeed")
	}
	if !ran {
		t.Fatalf("submitted work did not run")
	}

	if resp := loop.Handle(protocol.Request{Action: protocol.ActionFocusColumnFirst}); !resp.OK {
		t.Fatalf("forwarded request failed: %v", resp.Error)
	}

	cancel()
	<-served
	if loop.Do(func() {}) {
		t.Fatalf("Do after stop must report false")
	}
	if resp := loop.Handle(protocol.Request{Action: protocol.ActionFocusLeft}); resp.OK {
		t.Fatalf("Handle after stop must fail")
	}
}

func dialRetry(t *testing.T, addr string) net.Conn {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.Dial("unix", addr)
		if err == nil {
			return conn
		}
		if time.Now().After(deadline) {
			t.Fatalf("dial %s: %v", addr, err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServerEndToEnd(t *testing.T) {
	l := testLayout(t)
	addFakeWindow(t, l)
	addFakeWindow(t, l)

	loop := NewLoop(NewRouter(l))
	addr := filepath.Join(t.TempDir(), "control.sock")
	srv := New(addr, loop, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Serve(ctx) }()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	conn := dialRetry(t, addr)
	defer conn.Close()
	lines := bufio.NewScanner(conn)

	readResp := func() protocol.Response {
		t.Helper()
		if !lines.Scan() {
			t.Fatalf("connection closed early: %v", lines.Err())
		}
		var resp protocol.Response
		if err := json.Unmarshal(lines.Bytes(), &resp); err != nil {
			t.Fatalf("bad response line %q: %v", lines.Text(), err)
		}
		return resp
	}

	if err := protocol.EncodeRequest(conn, protocol.Request{Action: protocol.ActionFocusLeft}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp := readResp(); !resp.OK || resp.Version != protocol.Version {
		t.Fatalf("focus-left response: %+v", resp)
	}

	var activeIdx int
	loop.Do(func() { activeIdx = l.ActiveWorkspace().ActiveColumnIdx() })
	if activeIdx != 0 {
		t.Fatalf("focus-left over the socket: active column %d", activeIdx)
	}

	// Missing required parameter: rejected, connection stays usable.
	if err := protocol.EncodeRequest(conn, protocol.Request{Action: protocol.ActionFocusColumn}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp := readResp(); resp.OK || resp.Error == "" {
		t.Fatalf("invalid request response: %+v", resp)
	}

	if err := protocol.EncodeRequest(conn, protocol.Request{Action: protocol.ActionFocusRight}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp := readResp(); !resp.OK {
		t.Fatalf("request after rejection: %+v", resp)
	}

	cancel()
	if err := <-served; err != context.Canceled {
		t.Fatalf("serve return: %v", err)
	}
}

func TestRouterSizingStateRequestsReportFoundness(t *testing.T) {
	l := testLayout(t)
	r := NewRouter(l)
	win := addFakeWindow(t, l)

	// Requesting the state the window is already in is a quiet no-op, not
	// a missing-target error.
	off := false
	for i := 0; i < 2; i++ {
		resp := r.Handle(protocol.Request{
			Action: protocol.ActionSetFullscreen,
			Window: &win.id,
			On:     &off,
		})
		if !resp.OK {
			t.Fatalf("set-fullscreen no-op %d: %v", i, resp.Error)
		}
	}
	if resp := r.Handle(protocol.Request{
		Action: protocol.ActionSetMaximized,
		Window: &win.id,
		On:     &off,
	}); !resp.OK {
		t.Fatalf("set-maximized no-op: %v", resp.Error)
	}

	// Unknown windows are missing targets for both actions.
	unknown := uuid.New()
	if resp := r.Handle(protocol.Request{
		Action: protocol.ActionSetMaximized,
		Window: &unknown,
	}); resp.OK {
		t.Fatalf("set-maximized on unknown window must fail")
	}
	if resp := r.Handle(protocol.Request{
		Action: protocol.ActionSetFullscreen,
		Window: &unknown,
	}); resp.OK {
		t.Fatalf("set-fullscreen on unknown window must fail")
	}
}
