// Package dodge couples the pointer tracker to the two motion engines: it
// detects hits, chooses response velocities, and schedules the periodic
// re-simulation while the dodger is moving.
package dodge

import (
	"math"
	"math/rand"

	"github.com/dodgebox/dodgebox/motion"
	"github.com/dodgebox/dodgebox/pointer"
)

// Config fixes the dodger's geometry and response tuning at construction.
type Config struct {
	Width, Height  float64 // dodger footprint in arena px
	UpperX, UpperY float64 // motion range of the top-left corner per axis
	Decel          float64 // deceleration magnitude, px/s^2
	HalfRebound    float64 // wall rebound reference speed, px/s
	Padding        float64 // hit-box inflation around the footprint

	MinAxisSpeed    float64 // sign-preserving per-axis floor after a hit
	MinSpeed        float64 // combined-magnitude floor after a hit
	EscapeTime      float64 // budget to clear the half-depth from a dead stop
	ActivationSpeed float64 // speed imparted by a catch attempt
	ImmunityWindow  float64 // seconds of hit suppression after activation
	TickInterval    float64 // re-simulation period, seconds
	SampleExpiry    float64 // tracker sample-validity window, seconds

	Diag motion.DiagnosticFunc
}

// Listener receives the controller's output signals. Nil funcs are skipped.
type Listener struct {
	Moved         func(x, y float64)
	MotionChanged func(moving bool)
	HitChanged    func(hit bool)
	Activated     func()
}

// Controller owns one tracker and two motion engines, created at
// construction and bound to the fixed frame geometry. All methods must run
// on the host's single event loop.
type Controller struct {
	cfg     Config
	tracker *pointer.Tracker
	ex, ey  *motion.Engine
	sched   Scheduler
	clock   Clock
	rng     *rand.Rand
	l       Listener

	hit    bool
	immune bool
	moving bool

	// Last reported positions; collisions reset the engines here rather
	// than to a freshly interpolated value, so floating error does not
	// compound across hits.
	reportedX, reportedY float64

	ticker   Handle
	cooldown Handle
}

// NewController builds the tracker and both engines. Frame border widths
// that fail to parse surface as a pointer.FormatError; bad motion tuning as
// a motion.RangeError.
func NewController(cfg Config, frame pointer.Frame, sched Scheduler, clock Clock, rng *rand.Rand, l Listener) (*Controller, error) {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 0.01
	}

	ex, err := motion.NewEngine(cfg.UpperX, cfg.Decel, cfg.HalfRebound, cfg.Diag)
	if err != nil {
		return nil, err
	}
	ey, err := motion.NewEngine(cfg.UpperY, cfg.Decel, cfg.HalfRebound, cfg.Diag)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:   cfg,
		ex:    ex,
		ey:    ey,
		sched: sched,
		clock: clock,
		rng:   rng,
		l:     l,
	}

	c.tracker, err = pointer.NewTracker(frame, cfg.SampleExpiry, func() {
		c.checkHit(c.clock())
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Place positions the dodger without imparting motion.
func (c *Controller) Place(x, y float64) error {
	if err := c.ex.SetPosition(x); err != nil {
		return err
	}
	if err := c.ey.SetPosition(y); err != nil {
		return err
	}
	c.reportedX, c.reportedY = x, y
	c.report()
	return nil
}

// Observe forwards a continuous pointer sample to the owned tracker.
func (c *Controller) Observe(s pointer.Sample) { c.tracker.Observe(s) }

// Discontinue forwards a leave/resize discontinuity to the owned tracker.
func (c *Controller) Discontinue(s pointer.Sample) { c.tracker.Discontinue(s) }

// Position returns the last reported dodger position.
func (c *Controller) Position() (x, y float64) { return c.reportedX, c.reportedY }

// Velocity returns the current per-axis velocities.
func (c *Controller) Velocity() (vx, vy float64) { return c.ex.Velocity(), c.ey.Velocity() }

// Moving reports whether either axis has nonzero velocity.
func (c *Controller) Moving() bool { return c.ex.Moving() || c.ey.Moving() }

// Hit reports whether the pointer is currently inside the padded hit box.
func (c *Controller) Hit() bool { return c.hit }

// Immune reports whether the post-activation immunity window is open.
func (c *Controller) Immune() bool { return c.immune }

// PointerPosition exposes the tracker position for the host's overlays.
func (c *Controller) PointerPosition() (x, y float64, ok bool) { return c.tracker.Position() }

// PointerVelocity exposes the tracker velocity estimate.
func (c *Controller) PointerVelocity(now float64) (vx, vy float64) { return c.tracker.Velocity(now) }

// Activate handles a catch attempt at arena point (ax, ay): the dodger is
// launched straight away from it at the configured speed and becomes immune
// to hits until the cooldown lapses.
func (c *Controller) Activate(ax, ay float64) {
	now := c.clock()

	ux, uy := c.awayFrom(ax, ay)
	c.applyImpulse(now, ux*c.cfg.ActivationSpeed, uy*c.cfg.ActivationSpeed)

	c.immune = true
	c.setHit(false)
	if c.cooldown != nil {
		c.cooldown.Stop()
	}
	c.cooldown = c.sched.After(c.cfg.ImmunityWindow, func() {
		c.cooldown = nil
		c.immune = false
		c.checkHit(c.clock())
	})

	if c.l.Activated != nil {
		c.l.Activated()
	}
}

// Halt stops all motion and tears down the tick loop. The immunity window,
// if open, is left to its cooldown.
func (c *Controller) Halt() {
	now := c.clock()
	_ = c.ex.SetVelocity(now, 0)
	_ = c.ey.SetVelocity(now, 0)
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.setMoving(false)
}

// checkHit runs the hit test and, on a not-hit to hit transition, the
// collision response.
func (c *Controller) checkHit(now float64) {
	px, py, ok := c.tracker.Position()
	inside := ok && !c.immune && c.insideHitBox(px, py)

	if inside && !c.hit {
		c.respond(now, px, py)
	}
	c.setHit(inside)
}

func (c *Controller) insideHitBox(px, py float64) bool {
	left := c.ex.Position() - c.cfg.Padding
	top := c.ey.Position() - c.cfg.Padding
	return px >= left && px <= left+c.cfg.Width+2*c.cfg.Padding &&
		py >= top && py <= top+c.cfg.Height+2*c.cfg.Padding
}

// respond chooses the post-hit velocities. The axis struck edge-on rebounds
// the approach mirrored in the pointer's frame; the other axis picks up half
// the pointer velocity as drag.
func (c *Controller) respond(now, px, py float64) {
	tvx, tvy := c.tracker.Velocity(now)
	cvx, cvy := c.ex.Velocity(), c.ey.Velocity()
	rvx, rvy := tvx-cvx, tvy-cvy

	left := c.ex.Position() - c.cfg.Padding
	right := c.ex.Position() + c.cfg.Width + c.cfg.Padding
	top := c.ey.Position() - c.cfg.Padding
	bottom := c.ey.Position() + c.cfg.Height + c.cfg.Padding

	// Penetration depth from the entry edge: the edge opposite the sign of
	// the relative velocity on each axis.
	distX := right - px
	if rvx >= 0 {
		distX = px - left
	}
	distY := bottom - py
	if rvy >= 0 {
		distY = py - top
	}

	lhs := math.Abs(rvx) * distY
	rhs := math.Abs(rvy) * distX

	nvx := cvx + tvx/2
	nvy := cvy + tvy/2
	// At an exact corner both comparisons hold and both axes rebound.
	if lhs >= rhs {
		nvx = c.ex.Rebound(-rvx) + tvx
	}
	if lhs <= rhs {
		nvy = c.ey.Rebound(-rvy) + tvy
	}

	nvx = minAxisClamp(nvx, c.cfg.MinAxisSpeed)
	nvy = minAxisClamp(nvy, c.cfg.MinAxisSpeed)

	if m := math.Hypot(nvx, nvy); m < c.cfg.MinSpeed {
		if m == 0 {
			// Dead stop under the pointer: push straight away, fast
			// enough to clear the half-depth within the escape budget.
			ux, uy := c.awayFrom(px, py)
			speed := math.Hypot(c.cfg.Width/2+c.cfg.Padding, c.cfg.Height/2+c.cfg.Padding) / c.cfg.EscapeTime
			if speed < c.cfg.MinSpeed {
				speed = c.cfg.MinSpeed
			}
			nvx, nvy = ux*speed, uy*speed
		} else {
			nvx *= c.cfg.MinSpeed / m
			nvy *= c.cfg.MinSpeed / m
		}
	}

	c.applyImpulse(now, nvx, nvy)
}

// awayFrom returns the unit vector from the given point toward the hit-box
// center, or a random direction when the point sits exactly on the center.
func (c *Controller) awayFrom(px, py float64) (ux, uy float64) {
	cx := c.ex.Position() + c.cfg.Width/2
	cy := c.ey.Position() + c.cfg.Height/2
	dx, dy := cx-px, cy-py
	n := math.Hypot(dx, dy)
	if n == 0 {
		a := c.rng.Float64() * 2 * math.Pi
		return math.Cos(a), math.Sin(a)
	}
	return dx / n, dy / n
}

// applyImpulse resets the engines to the last reported position, sets the
// new trajectory, and (re)installs the tick loop.
func (c *Controller) applyImpulse(now, vx, vy float64) {
	if err := c.ex.SetPosition(c.reportedX); err == nil {
		_ = c.ex.SetVelocity(now, vx)
	}
	if err := c.ey.SetPosition(c.reportedY); err == nil {
		_ = c.ey.SetVelocity(now, vy)
	}

	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Moving() {
		c.ticker = c.sched.Every(c.cfg.TickInterval, c.tick)
		c.setMoving(true)
	} else {
		c.setMoving(false)
	}
}

// tick advances both engines, reports the new position, and re-runs the hit
// test; fast relative motion can re-trigger a hit between pointer events.
func (c *Controller) tick() {
	now := c.clock()

	x, _, errX := c.ex.Update(now)
	y, _, errY := c.ey.Update(now)
	if errX == nil {
		c.reportedX = x
	}
	if errY == nil {
		c.reportedY = y
	}
	c.report()
	c.checkHit(now)

	if !c.Moving() && c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
		c.setMoving(false)
	}
}

func (c *Controller) report() {
	if c.l.Moved != nil {
		c.l.Moved(c.reportedX, c.reportedY)
	}
}

func (c *Controller) setHit(hit bool) {
	if hit == c.hit {
		return
	}
	c.hit = hit
	if c.l.HitChanged != nil {
		c.l.HitChanged(hit)
	}
}

func (c *Controller) setMoving(moving bool) {
	if moving == c.moving {
		return
	}
	c.moving = moving
	if c.l.MotionChanged != nil {
		c.l.MotionChanged(moving)
	}
}

// minAxisClamp lifts a nonzero speed to at least min, preserving sign.
func minAxisClamp(v, min float64) float64 {
	if v > 0 && v < min {
		return min
	}
	if v < 0 && v > -min {
		return -min
	}
	return v
}
