// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/spring.go
// Summary: Damped harmonic oscillator used for spring-driven animations.
// Notes: The rest-duration search is based on libadwaita's
//        adw-spring-animation (LGPL-2.1-or-later), which in turn derives
//        from RBBAnimation (MIT).

package anim

import (
	"math"
	"time"
)

// SpringParams describe a spring with unit mass.
type SpringParams struct {
	Damping   float64
	Mass      float64
	Stiffness float64
	Epsilon   float64
}

// Spring is a spring animation between two values.
type Spring struct {
	From            float64
	To              float64
	InitialVelocity float64
	Params          SpringParams
}

// NewSpringParams derives concrete spring parameters from a damping ratio
// (1 = critically damped), stiffness and rest epsilon. Negative inputs are
// clamped to zero.
func NewSpringParams(dampingRatio, stiffness, epsilon float64) SpringParams {
	dampingRatio = math.Max(dampingRatio, 0)
	stiffness = math.Max(stiffness, 0)
	epsilon = math.Max(epsilon, 0)

	mass := 1.0
	criticalDamping := 2 * math.Sqrt(mass*stiffness)
	return SpringParams{
		Damping:   dampingRatio * criticalDamping,
		Mass:      mass,
		Stiffness: stiffness,
		Epsilon:   epsilon,
	}
}

// ValueAt returns the spring position at time t from the start.
func (s Spring) ValueAt(t time.Duration) float64 {
	return s.oscillate(t.Seconds())
}

const maxSpringDuration = time.Duration(math.MaxInt64)

// Duration computes the time until the spring is at rest.
func (s Spring) Duration() time.Duration {
	const delta = 0.001

	beta := s.Params.Damping / (2 * s.Params.Mass)

	if math.Abs(beta) <= math.SmallestNonzeroFloat64 || beta < 0 {
		return maxSpringDuration
	}

	if math.Abs(s.To-s.From) <= epsilonF64 {
		return 0
	}

	omega0 := math.Sqrt(s.Params.Stiffness / s.Params.Mass)

	// As a first ansatz for the overdamped solution, and a general
	// estimation for the oscillating ones, take the value of the envelope
	// when it's < epsilon.
	x0 := -math.Log(s.Params.Epsilon) / beta

	// float64 epsilon is too small for this specific comparison, so use the
	// float32 one even though these are doubles.
	if math.Abs(beta-omega0) <= epsilonF32 || beta < omega0 {
		return durationFromSeconds(x0)
	}

	// The overdamped solution decays much slower than the envelope, so use
	// the value of the oscillation itself with Newton's root finding.
	y0 := s.oscillate(x0)
	m := (s.oscillate(x0+delta) - y0) / delta

	x1 := (s.To - y0 + m*x0) / m
	y1 := s.oscillate(x1)

	for i := 0; math.Abs(s.To-y1) > s.Params.Epsilon; i++ {
		if i > 1000 {
			return 0
		}

		x0 = x1
		y0 = y1

		m = (s.oscillate(x0+delta) - y0) / delta

		x1 = (s.To - y0 + m*x0) / m
		y1 = s.oscillate(x1)

		// Overdamped springs have some numerical stability issues.
		if math.IsNaN(y1) || math.IsInf(y1, 0) {
			return durationFromSeconds(x0)
		}
	}

	return durationFromSeconds(x1)
}

// ClampedDuration computes the time until the spring first reaches its
// target position. It returns ok=false when the bounded search (3000 steps
// of 1 ms) fails to converge; callers must treat the spring as already at
// rest in that case rather than animating forever.
func (s Spring) ClampedDuration() (time.Duration, bool) {
	beta := s.Params.Damping / (2 * s.Params.Mass)

	if math.Abs(beta) <= math.SmallestNonzeroFloat64 || beta < 0 {
		return maxSpringDuration, true
	}

	if math.Abs(s.To-s.From) <= epsilonF64 {
		return 0, true
	}

	// The first frame is not that important, and starting at 1 avoids
	// finding the trivial 0 for in-place animations.
	i := 1
	y := s.oscillate(float64(i) / 1000)

	for (s.To-s.From > epsilonF64 && s.To-y > s.Params.Epsilon) ||
		(s.From-s.To > epsilonF64 && y-s.To > s.Params.Epsilon) {
		if i > 3000 {
			return 0, false
		}

		i++
		y = s.oscillate(float64(i) / 1000)
	}

	return time.Duration(i) * time.Millisecond, true
}

// oscillate returns the spring position at t seconds: the solution of
// m*x'' + b*x' + k*x = 0 offset to the target.
func (s Spring) oscillate(t float64) float64 {
	b := s.Params.Damping
	m := s.Params.Mass
	k := s.Params.Stiffness
	v0 := s.InitialVelocity

	beta := b / (2 * m)
	omega0 := math.Sqrt(k / m)

	x0 := s.From - s.To

	envelope := math.Exp(-beta * t)

	switch {
	case math.Abs(beta-omega0) <= epsilonF32:
		// Critically damped.
		return s.To + envelope*(x0+(beta*x0+v0)*t)
	case beta < omega0:
		// Underdamped.
		omega1 := math.Sqrt(omega0*omega0 - beta*beta)
		return s.To + envelope*
			(x0*math.Cos(omega1*t)+((beta*x0+v0)/omega1)*math.Sin(omega1*t))
	default:
		// Overdamped.
		omega2 := math.Sqrt(beta*beta - omega0*omega0)
		return s.To + envelope*
			(x0*math.Cosh(omega2*t)+((beta*x0+v0)/omega2)*math.Sinh(omega2*t))
	}
}

const (
	epsilonF64 = 2.220446049250313e-16
	epsilonF32 = 1.1920929e-07
)

func durationFromSeconds(secs float64) time.Duration {
	if math.IsNaN(secs) || secs < 0 {
		return 0
	}
	if secs > math.MaxInt64/float64(time.Second) {
		return maxSpringDuration
	}
	return time.Duration(secs * float64(time.Second))
}
