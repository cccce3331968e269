// Package pointer estimates the pointer's position and velocity inside a
// fixed tracking frame from an irregular stream of input samples.
package pointer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultExpiry is the sample-validity window in seconds. A velocity whose
// newest sample is older than this is reported as zero.
const DefaultExpiry = 0.3

// FormatError reports geometry that could not be read as a plain pixel
// length (e.g. "4px" or "4").
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pointer: %q is not a plain pixel length", e.Input)
}

// ParsePixels reads a CSS-style pixel length. Only a bare number with an
// optional "px" suffix is accepted.
func ParsePixels(s string) (float64, error) {
	v := strings.TrimSuffix(strings.TrimSpace(s), "px")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &FormatError{Input: s}
	}
	return n, nil
}

// Sample is one raw pointer event: client coordinates plus the event
// timestamp in seconds.
type Sample struct {
	X, Y float64
	Time float64
}

// Frame describes the tracking area: its client-space origin and the border
// widths that inset the usable interior, as pixel-length strings the way the
// host styling reports them.
type Frame struct {
	OriginX, OriginY      float64
	BorderLeft, BorderTop string
}

// Tracker converts raw pointer samples into a relative position (possibly
// unknown) and a smoothed velocity estimate. All state is owned by the
// tracker and mutated only through Observe and Discontinue.
type Tracker struct {
	offsetX, offsetY float64
	expiry           float64
	onChange         func()

	x, y         float64 // relative position, NaN while unknown
	lastX, lastY float64 // last raw client coords, for duplicate detection
	velX, velY   float64
	lastTime     float64
}

// NewTracker fixes the frame offsets and registers the position-changed
// notification. Border widths that do not parse as pixel lengths fail with a
// FormatError. expiry <= 0 selects DefaultExpiry.
func NewTracker(frame Frame, expiry float64, onChange func()) (*Tracker, error) {
	bl, err := ParsePixels(frame.BorderLeft)
	if err != nil {
		return nil, err
	}
	bt, err := ParsePixels(frame.BorderTop)
	if err != nil {
		return nil, err
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Tracker{
		offsetX:  frame.OriginX + bl,
		offsetY:  frame.OriginY + bt,
		expiry:   expiry,
		onChange: onChange,
		x:        math.NaN(),
		y:        math.NaN(),
		lastX:    math.NaN(),
		lastY:    math.NaN(),
		lastTime: math.NaN(),
	}, nil
}

// Observe folds a continuous event (move/over/scroll) into the estimate.
// A sample repeating the previous client coordinates is a no-op, so zero
// displacements never pollute the velocity.
func (t *Tracker) Observe(s Sample) {
	if s.X == t.lastX && s.Y == t.lastY {
		return
	}

	dt := s.Time - t.lastTime
	nx := s.X - t.offsetX
	ny := s.Y - t.offsetY

	t.velX = t.blend(t.velX, (nx-t.x)/dt, dt)
	t.velY = t.blend(t.velY, (ny-t.y)/dt, dt)

	t.x, t.y = nx, ny
	t.lastX, t.lastY = s.X, s.Y
	t.lastTime = s.Time
	t.notify()
}

// Discontinue handles a leave or resize: the position becomes unknown and
// the velocity update runs with an undefined displacement, which freezes the
// estimate until a continuous sample arrives (or the expiry window lapses).
func (t *Tracker) Discontinue(s Sample) {
	dt := s.Time - t.lastTime

	t.velX = t.blend(t.velX, math.NaN(), dt)
	t.velY = t.blend(t.velY, math.NaN(), dt)

	t.x, t.y = math.NaN(), math.NaN()
	t.lastX, t.lastY = math.NaN(), math.NaN()
	t.lastTime = s.Time
	t.notify()
}

// blend folds a raw per-event velocity into the running estimate.
func (t *Tracker) blend(cur, raw, dt float64) float64 {
	switch {
	case math.IsNaN(raw) || math.IsInf(raw, 0):
		// Undefined displacement: keep the last estimate.
		return cur
	case dt > t.expiry:
		// History too stale to average against.
		return raw
	case math.IsNaN(cur) || math.IsInf(cur, 0) || cur == 0 || sign(raw) != sign(cur):
		// Snap on reversal instead of converging slowly through zero.
		return raw
	default:
		return (cur + raw) / 2
	}
}

// Position returns the relative pointer position; ok is false while the
// position is unknown (before the first sample and after a discontinuity).
func (t *Tracker) Position() (x, y float64, ok bool) {
	if math.IsNaN(t.x) || math.IsNaN(t.y) {
		return 0, 0, false
	}
	return t.x, t.y, true
}

// Velocity returns the estimate, or zero when the newest sample is older
// than the expiry window. Always defined.
func (t *Tracker) Velocity(now float64) (vx, vy float64) {
	if math.IsNaN(t.lastTime) || now-t.lastTime > t.expiry {
		return 0, 0
	}
	return t.velX, t.velY
}

// LastSampleTime returns the timestamp of the newest sample, or NaN if none.
func (t *Tracker) LastSampleTime() float64 { return t.lastTime }

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
