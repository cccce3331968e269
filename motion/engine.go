// Package motion simulates a decelerating particle on a single bounded axis
// with reflective walls. Two independent engines drive the dodger's X and Y.
package motion

import (
	"fmt"
	"log"
	"math"
)

// restEpsilon is the rebound speed below which the engine settles to rest at
// the wall. Keeps the bounce loop finite when speed has decayed to nothing.
const restEpsilon = 1e-9

// DiagnosticFunc receives recoverable numeric anomalies (root-finding drift).
// These are never returned as errors; the simulation must not halt.
type DiagnosticFunc func(format string, args ...any)

// RangeError reports a parameter outside its allowed range. Setter and
// constructor misuse fails fast with this type.
type RangeError struct {
	Op       string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("motion: %s: value %v out of range [%v, %v]", e.Op, e.Value, e.Min, e.Max)
}

// Engine integrates one axis of motion under constant deceleration. The
// caller supplies wall-clock time (seconds) on every impulse and update; the
// engine never reads an ambient clock.
type Engine struct {
	upper       float64 // position range is [0, upper]
	decel       float64 // deceleration magnitude, px/s^2
	halfRebound float64 // speed at which a rebound keeps half its magnitude
	diag        DiagnosticFunc

	// Current trajectory origin. Replaced wholesale on every impulse,
	// update and wall bounce, so each segment is one quadratic arc.
	originTime float64
	pos        float64
	vel        float64
}

// NewEngine creates an engine for the range [0, upper]. decel and halfRebound
// must be positive. A nil diag falls back to log.Printf.
func NewEngine(upper, decel, halfRebound float64, diag DiagnosticFunc) (*Engine, error) {
	if !(upper > 0) || math.IsInf(upper, 0) {
		return nil, &RangeError{Op: "NewEngine upper", Value: upper, Min: 0, Max: math.Inf(1)}
	}
	if !(decel > 0) || math.IsInf(decel, 0) {
		return nil, &RangeError{Op: "NewEngine decel", Value: decel, Min: 0, Max: math.Inf(1)}
	}
	if !(halfRebound > 0) || math.IsInf(halfRebound, 0) {
		return nil, &RangeError{Op: "NewEngine halfRebound", Value: halfRebound, Min: 0, Max: math.Inf(1)}
	}
	if diag == nil {
		diag = log.Printf
	}
	return &Engine{upper: upper, decel: decel, halfRebound: halfRebound, diag: diag}, nil
}

// Upper returns the upper position bound.
func (e *Engine) Upper() float64 { return e.upper }

// Position returns the position computed by the most recent impulse or update.
func (e *Engine) Position() float64 { return e.pos }

// Velocity returns the velocity computed by the most recent impulse or update.
func (e *Engine) Velocity() float64 { return e.vel }

// Moving reports whether the engine has nonzero velocity.
func (e *Engine) Moving() bool { return e.vel != 0 }

// SetPosition places the particle. Fails unless 0 <= p <= upper.
func (e *Engine) SetPosition(p float64) error {
	if !(p >= 0 && p <= e.upper) {
		return &RangeError{Op: "SetPosition", Value: p, Min: 0, Max: e.upper}
	}
	e.pos = p
	return nil
}

// SetVelocity starts a new trajectory at the current position. Both the time
// and the velocity must be finite.
func (e *Engine) SetVelocity(now, v float64) error {
	if math.IsNaN(now) || math.IsInf(now, 0) {
		return &RangeError{Op: "SetVelocity time", Value: now, Min: math.Inf(-1), Max: math.Inf(1)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &RangeError{Op: "SetVelocity velocity", Value: v, Min: math.Inf(-1), Max: math.Inf(1)}
	}
	e.originTime = now
	e.vel = v
	return nil
}

// Rebound maps an impact speed to the reduced, reversed speed after hitting a
// wall: -v / (|v|/H + 1). Antisymmetric, always smaller in magnitude than v,
// and monotone in |v|; H is the speed at which half the magnitude survives.
func (e *Engine) Rebound(v float64) float64 {
	return -v / (math.Abs(v)/e.halfRebound + 1)
}

// Update advances the trajectory to now and returns the new position and
// velocity. now must not precede the trajectory origin. A single call may
// cross a wall more than once; each crossing is solved analytically and
// starts a fresh segment at the wall with the rebound velocity.
func (e *Engine) Update(now float64) (pos, vel float64, err error) {
	if math.IsNaN(now) || now < e.originTime {
		return e.pos, e.vel, &RangeError{Op: "Update time", Value: now, Min: e.originTime, Max: math.Inf(1)}
	}

	t := now - e.originTime
	pos, vel = e.pos, e.vel

	for t > 0 && vel != 0 {
		s := 1.0
		if vel < 0 {
			s = -1.0
		}

		// Deceleration cannot reverse direction within a segment: clamp
		// the step to the exact zero-crossing time.
		zero := math.Abs(vel) / e.decel
		step := t
		if step > zero {
			step = zero
		}

		vEnd := vel - s*e.decel*step
		pEnd := pos + (vel+vEnd)/2*step

		if pEnd >= 0 && pEnd <= e.upper {
			pos = pEnd
			if step == zero {
				vel = 0
			} else {
				vel = vEnd
			}
			t -= step
			continue
		}

		// Wall crossed mid-step. Solve for the exact crossing time and
		// restart the segment at the wall with the rebound velocity.
		wall := 0.0
		if pEnd > e.upper {
			wall = e.upper
		}
		tHit := e.crossingTime(pos, vel, s, wall, step)
		vHit := vel - s*e.decel*tHit

		pos = wall
		vel = e.Rebound(vHit)
		if math.Abs(vel) < restEpsilon {
			vel = 0
		}
		t -= tHit
	}

	e.originTime = now
	e.pos = pos
	e.vel = vel
	return pos, vel, nil
}

// crossingTime solves p0 + v0*tau - s*decel/2*tau^2 == wall for the first
// crossing (the lower quadratic root). Numerical drift can push the root
// outside (0, step]; such results are clamped to step and reported through
// the diagnostic channel, never returned as an error.
func (e *Engine) crossingTime(p0, v0, s, wall, step float64) float64 {
	a := -s * e.decel / 2
	b := v0
	c := p0 - wall

	disc := b*b - 4*a*c
	if disc < 0 {
		e.diag("motion: negative discriminant %v solving wall crossing, clamping to %v", disc, step)
		return step
	}

	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	lo, hi := r1, r2
	if lo > hi {
		lo, hi = hi, lo
	}

	tHit := lo
	if tHit <= 0 {
		tHit = hi
	}
	if tHit <= 0 || tHit > step {
		e.diag("motion: wall crossing time %v outside (0, %v], clamping", tHit, step)
		return step
	}
	return tHit
}
