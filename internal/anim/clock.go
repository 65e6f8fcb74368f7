// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/clock.go
// Summary: Frame clock shared by every animation in one engine instance.
// Usage: The layout engine advances the clock once per frame; animations
//        sample it lazily when their value is read.
// Notes: The slowdown multiplier lives on the clock instance rather than in
//        process-wide state so multiple engines (tests) don't interfere.

package anim

import "time"

// Clock is a monotonic frame clock. Timestamps fed to SetNow must be
// non-decreasing; a regression is ignored rather than propagated, since a
// backwards step would make every in-flight animation discontinuous.
type Clock struct {
	now      time.Duration
	slowdown float64
}

func NewClock() *Clock {
	return &Clock{slowdown: 1}
}

// Now returns the current frame time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// SetNow advances the clock. Non-monotonic input is dropped.
func (c *Clock) SetNow(now time.Duration) {
	if now < c.now {
		return
	}
	c.now = now
}

// Slowdown returns the current animation slowdown multiplier.
func (c *Clock) Slowdown() float64 {
	return c.slowdown
}

// SetSlowdown sets the multiplier applied to every animation timescale.
// Values at or below zero make animations complete instantly.
func (c *Clock) SetSlowdown(slowdown float64) {
	if slowdown < 0 {
		slowdown = 0
	}
	c.slowdown = slowdown
}
