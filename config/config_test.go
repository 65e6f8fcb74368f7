package config

import (
	"testing"

	"github.com/framegrace/scrolltile/scroll"
)

func TestEmptyConfigYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	o := cfg.Options()
	want := scroll.DefaultOptions()
	if o.Gaps != want.Gaps {
		t.Fatalf("gaps: got %v, want %v", o.Gaps, want.Gaps)
	}
	if len(o.PresetColumnWidths) != 3 {
		t.Fatalf("preset widths: got %d", len(o.PresetColumnWidths))
	}
	if o.Animations.Slowdown != 1 {
		t.Fatalf("slowdown: got %v", o.Animations.Slowdown)
	}
}

func TestFullConfigRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(`
gaps: 8
struts:
  left: 4
  top: 24
center-focused-column: always
always-center-single-column: true
rtl: true
default-column-width:
  proportion: 0.25
default-column-display: tabbed
preset-column-widths:
  - proportion: 0.25
  - fixed: 800
animations:
  slowdown: 2.5
  window-resize:
    duration-ms: 100
    curve: ease-out-expo
  horizontal-view-movement:
    spring:
      damping-ratio: 0.8
      stiffness: 500
      epsilon: 0.001
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	o := cfg.Options()

	if o.Gaps != 8 || o.Struts.Left != 4 || o.Struts.Top != 24 {
		t.Fatalf("geometry options: %+v", o)
	}
	if o.CenterFocusedColumn != scroll.CenterAlways || !o.AlwaysCenterSingleColumn || !o.RTL {
		t.Fatalf("centering options: %+v", o)
	}
	if p, ok := o.DefaultColumnWidth.IsProportion(); !ok || p != 0.25 {
		t.Fatalf("default width: got %v %v", p, ok)
	}
	if o.DefaultColumnDisplay != scroll.DisplayTabbed {
		t.Fatalf("display: got %v", o.DefaultColumnDisplay)
	}
	if len(o.PresetColumnWidths) != 2 || o.PresetColumnWidths[1].Fixed != 800 {
		t.Fatalf("presets: %+v", o.PresetColumnWidths)
	}
	if o.Animations.Slowdown != 2.5 {
		t.Fatalf("slowdown: got %v", o.Animations.Slowdown)
	}
	if o.Animations.WindowResize.Duration.Milliseconds() != 100 {
		t.Fatalf("resize duration: got %v", o.Animations.WindowResize.Duration)
	}
	if o.Animations.HorizontalViewMovement.Spring == nil {
		t.Fatalf("view movement spring missing")
	}
}

func TestExplicitZeroGapsSurvives(t *testing.T) {
	cfg, err := Parse([]byte("gaps: 0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cfg.Options().Gaps; got != 0 {
		t.Fatalf("explicit zero gaps: got %v", got)
	}
}

func TestOutOfRangeValuesClamp(t *testing.T) {
	cfg, err := Parse([]byte(`
gaps: -10
preset-column-widths:
  - proportion: -1
  - proportion: 50
  - fixed: 0.5
  - proportion: 0.5
animations:
  slowdown: -3
  window-movement:
    spring:
      damping-ratio: 99
      stiffness: -5
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	o := cfg.Options()

	if o.Gaps != 0 {
		t.Fatalf("negative gaps must clamp to 0: got %v", o.Gaps)
	}
	// Invalid presets drop, oversized proportions clamp.
	if len(o.PresetColumnWidths) != 2 {
		t.Fatalf("presets kept: got %d, want 2", len(o.PresetColumnWidths))
	}
	if o.PresetColumnWidths[0].Proportion != 10 {
		t.Fatalf("oversized proportion must clamp to 10: got %v", o.PresetColumnWidths[0].Proportion)
	}
	if o.Animations.Slowdown != 0 {
		t.Fatalf("negative slowdown: got %v", o.Animations.Slowdown)
	}
	if o.Animations.WindowMovement.Spring == nil {
		t.Fatalf("spring missing")
	}
}

func TestMalformedYAMLFails(t *testing.T) {
	if _, err := Parse([]byte("gaps: [not a number\n")); err == nil {
		t.Fatalf("malformed yaml must fail")
	}
}

func TestSocketPathOverride(t *testing.T) {
	cfg := &Config{SocketPath: "/tmp/custom.sock"}
	if got := cfg.ResolvedSocketPath(); got != "/tmp/custom.sock" {
		t.Fatalf("socket override: got %s", got)
	}
	if got := (&Config{}).ResolvedSocketPath(); got == "" {
		t.Fatalf("default socket path must not be empty")
	}
}
