// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/animation.go
// Summary: A single animated value driven by an easing curve or a spring.
// Usage: Layout state machines hold a *Animation while a quantity is in
//        flight and drop it (keeping the target) once done.

package anim

import "time"

// Params configure one kind of transition. A nil Spring selects the
// duration+curve form; a non-nil Spring overrides Duration with the
// spring's computed rest time.
type Params struct {
	Off      bool
	Duration time.Duration
	Curve    Curve
	Spring   *SpringParams
}

// Animation interpolates between two values over time, sampled lazily
// against the shared Clock. An Animation is immutable except for Offset,
// which shifts both endpoints (used when the coordinate space under the
// animation moves).
type Animation struct {
	clock    *Clock
	from     float64
	to       float64
	start    time.Duration
	duration time.Duration
	curve    Curve
	spring   *Spring
}

// New creates an animation starting at the clock's current time. With
// Params.Off, or a spring whose bounded rest search fails, the animation is
// created already done (Value() == to immediately).
func New(clock *Clock, from, to, initialVelocity float64, p Params) *Animation {
	a := &Animation{
		clock: clock,
		from:  from,
		to:    to,
		start: clock.Now(),
		curve: p.Curve,
	}

	if p.Off {
		return a
	}

	if p.Spring != nil {
		s := Spring{
			From:            from,
			To:              to,
			InitialVelocity: initialVelocity,
			Params:          *p.Spring,
		}
		d, ok := s.ClampedDuration()
		if !ok {
			// Treat a non-converging spring as already at rest.
			return a
		}
		a.spring = &s
		a.duration = d
		return a
	}

	a.duration = p.Duration
	return a
}

// elapsed returns the slowdown-adjusted time since the animation started.
// A slowdown at or below epsilon reports the animation as over.
func (a *Animation) elapsed() time.Duration {
	raw := a.clock.Now() - a.start
	if raw < 0 {
		return 0
	}
	slowdown := a.clock.Slowdown()
	if slowdown <= epsilonF64 {
		return a.duration
	}
	if slowdown == 1 {
		return raw
	}
	return time.Duration(float64(raw) / slowdown)
}

// IsDone reports whether the animation has reached its target.
func (a *Animation) IsDone() bool {
	return a.elapsed() >= a.duration
}

// Value returns the current interpolated value.
func (a *Animation) Value() float64 {
	elapsed := a.elapsed()
	if elapsed >= a.duration {
		return a.to
	}

	if a.spring != nil {
		return a.spring.ValueAt(elapsed)
	}

	x := elapsed.Seconds() / a.duration.Seconds()
	return a.curve.Y(x)*(a.to-a.from) + a.from
}

// From returns the starting value.
func (a *Animation) From() float64 { return a.from }

// To returns the target value.
func (a *Animation) To() float64 { return a.to }

// Offset shifts both endpoints by delta without restarting the animation.
func (a *Animation) Offset(delta float64) {
	a.from += delta
	a.to += delta
	if a.spring != nil {
		a.spring.From += delta
		a.spring.To += delta
	}
}
