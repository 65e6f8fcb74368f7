// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: YAML configuration model and loader for the layout engine.
// Usage: Load a Config, then call Options() to obtain validated engine
//        options. The engine itself never sees raw config values.

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Field values are raw user input;
// validation and clamping happen in Options().
type Config struct {
	// Gaps is nil when unset so an explicit zero survives decoding.
	Gaps   *float64 `yaml:"gaps"`
	Struts Struts   `yaml:"struts"`

	CenterFocusedColumn      string `yaml:"center-focused-column"`
	AlwaysCenterSingleColumn bool   `yaml:"always-center-single-column"`
	RTL                      bool   `yaml:"rtl"`

	DefaultColumnWidth   *SizeSpec `yaml:"default-column-width"`
	DefaultColumnDisplay string    `yaml:"default-column-display"`

	PresetColumnWidths  []SizeSpec `yaml:"preset-column-widths"`
	PresetWindowHeights []SizeSpec `yaml:"preset-window-heights"`

	Animations Animations `yaml:"animations"`

	// SocketPath overrides the default control socket location.
	SocketPath string `yaml:"socket-path"`
}

// Struts inset the output edges.
type Struts struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// SizeSpec is a width or height given either as a proportion of the working
// area or as fixed logical pixels. Exactly one should be set.
type SizeSpec struct {
	Proportion float64 `yaml:"proportion"`
	Fixed      float64 `yaml:"fixed"`
}

// Animations configures the animation driver.
type Animations struct {
	Off      bool     `yaml:"off"`
	Slowdown *float64 `yaml:"slowdown"`

	HorizontalViewMovement *Animation `yaml:"horizontal-view-movement"`
	WindowMovement         *Animation `yaml:"window-movement"`
	WindowResize           *Animation `yaml:"window-resize"`
	WindowOpen             *Animation `yaml:"window-open"`
	WindowClose            *Animation `yaml:"window-close"`
}

// Animation is one transition: either an easing curve over a duration or a
// spring. A non-nil Spring wins.
type Animation struct {
	Off        bool    `yaml:"off"`
	DurationMs int     `yaml:"duration-ms"`
	Curve      string  `yaml:"curve"`
	Spring     *Spring `yaml:"spring"`
}

// Spring is a damped-spring parameter triple.
type Spring struct {
	DampingRatio float64 `yaml:"damping-ratio"`
	Stiffness    float64 `yaml:"stiffness"`
	Epsilon      float64 `yaml:"epsilon"`
}

// Load reads a config file. A missing file yields the empty Config, whose
// Options() are the engine defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &cfg, nil
}
