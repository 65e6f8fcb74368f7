package scroll

import (
	"github.com/framegrace/scrolltile/geom"
	"github.com/framegrace/scrolltile/internal/anim"
	"github.com/google/uuid"
)

func newTestClock() *anim.Clock { return anim.NewClock() }

// stubWindow is a fake window collaborator. Size requests are recorded and
// only take effect when the test calls commit(), modeling the asynchronous
// acknowledgement of a real client.
type stubWindow struct {
	id uuid.UUID

	size       geom.Size
	fullscreen bool

	requestedSize       geom.Size
	requestedFullscreen bool
	fullscreenSize      geom.Size

	minSz geom.Size
	maxSz geom.Size

	sizeRequests       int
	fullscreenRequests int
}

func newStubWindow() *stubWindow {
	return &stubWindow{id: uuid.New()}
}

func (s *stubWindow) ID() WindowID    { return s.id }
func (s *stubWindow) Size() geom.Size { return s.size }

func (s *stubWindow) RequestSize(size geom.Size) {
	s.requestedSize = size
	s.sizeRequests++
}

func (s *stubWindow) RequestFullscreen(on bool, output geom.Size) {
	s.requestedFullscreen = on
	s.fullscreenSize = output
	s.fullscreenRequests++
}

func (s *stubWindow) IsFullscreen() bool { return s.fullscreen }
func (s *stubWindow) MinSize() geom.Size { return s.minSz }
func (s *stubWindow) MaxSize() geom.Size { return s.maxSz }

// commit applies the pending requests, like a client acking a configure.
func (s *stubWindow) commit() {
	s.fullscreen = s.requestedFullscreen
	if s.fullscreen {
		s.size = s.fullscreenSize
	} else if !s.requestedSize.IsEmpty() {
		s.size = s.requestedSize
	}
}

// testOptions returns zero-gap options with animations off, which keeps
// geometry assertions exact.
func testOptions() *Options {
	o := DefaultOptions()
	o.Gaps = 0
	o.Animations.Off = true
	return o
}

func testWorkspace(w, h float64, o *Options) *Workspace {
	if o == nil {
		o = testOptions()
	}
	return NewWorkspace(geom.Size{W: w, H: h}, newTestClock(), o)
}
