package dodge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodgebox/dodgebox/motion"
	"github.com/dodgebox/dodgebox/pointer"
)

type recorder struct {
	moved   int
	hits    []bool
	motions []bool
	acts    int
}

func (r *recorder) listener() Listener {
	return Listener{
		Moved:         func(x, y float64) { r.moved++ },
		MotionChanged: func(m bool) { r.motions = append(r.motions, m) },
		HitChanged:    func(h bool) { r.hits = append(r.hits, h) },
		Activated:     func() { r.acts++ },
	}
}

type harness struct {
	c   *Controller
	fs  *FrameScheduler
	rec *recorder
	now float64
}

// step moves both the clock and the scheduler forward together, the way the
// host frame loop does.
func (h *harness) step(to float64) {
	h.now = to
	h.fs.Advance(to)
}

func testConfig() Config {
	return Config{
		Width:           40,
		Height:          40,
		UpperX:          400,
		UpperY:          400,
		Decel:           100,
		HalfRebound:     1000,
		Padding:         5,
		MinAxisSpeed:    20,
		MinSpeed:        100,
		EscapeTime:      0.2,
		ActivationSpeed: 1500,
		ImmunityWindow:  0.8,
		TickInterval:    0.01,
		Diag:            func(string, ...any) {},
	}
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{fs: NewFrameScheduler(0), rec: &recorder{}}
	c, err := NewController(cfg, pointer.Frame{BorderLeft: "0px", BorderTop: "0px"},
		h.fs, func() float64 { return h.now }, rand.New(rand.NewSource(11)), h.rec.listener())
	require.NoError(t, err)
	require.NoError(t, c.Place(200, 200))
	h.c = c
	return h
}

func TestNewControllerSurfacesTypedErrors(t *testing.T) {
	cfg := testConfig()
	fs := NewFrameScheduler(0)
	clock := func() float64 { return 0 }

	var fe *pointer.FormatError
	_, err := NewController(cfg, pointer.Frame{BorderLeft: "wide", BorderTop: "0px"},
		fs, clock, rand.New(rand.NewSource(1)), Listener{})
	require.ErrorAs(t, err, &fe)

	bad := cfg
	bad.Decel = -1
	var re *motion.RangeError
	_, err = NewController(bad, pointer.Frame{BorderLeft: "0px", BorderTop: "0px"},
		fs, clock, rand.New(rand.NewSource(1)), Listener{})
	require.ErrorAs(t, err, &re)
}

func TestHorizontalHitRebound(t *testing.T) {
	h := newHarness(t, testConfig())

	// Approach from the left at 1000 px/s, second sample lands inside the
	// padded box (left edge is at 195).
	h.c.Observe(pointer.Sample{X: 100, Y: 220, Time: 0})
	h.now = 0.1
	h.c.Observe(pointer.Sample{X: 200, Y: 220, Time: 0.1})

	require.True(t, h.c.Hit())
	require.Equal(t, []bool{true}, h.rec.hits)

	vx, vy := h.c.Velocity()
	// Rebound(-1000) + trackerVel: 1000/(1000/1000+1) + 1000.
	assert.InDelta(t, 1500, vx, 1e-9)
	// Drag axis: 0 + 0/2, not lifted by the sign-preserving clamp.
	assert.Zero(t, vy)
	assert.True(t, h.c.Moving())
	assert.Equal(t, []bool{true}, h.rec.motions)
}

func TestCornerTieRebindsBothAxes(t *testing.T) {
	h := newHarness(t, testConfig())

	// Perfectly diagonal entry, equal penetration on both axes: the tie
	// flags both axes rebound-eligible.
	h.c.Observe(pointer.Sample{X: 150, Y: 150, Time: 0})
	h.now = 0.05
	h.c.Observe(pointer.Sample{X: 196, Y: 196, Time: 0.05})

	require.True(t, h.c.Hit())
	vx, vy := h.c.Velocity()
	want := 920/(920/1000.0+1) + 920
	assert.InDelta(t, want, vx, 1e-9)
	assert.InDelta(t, want, vy, 1e-9)
}

func TestHitWhileImmuneChangesNothing(t *testing.T) {
	h := newHarness(t, testConfig())

	h.c.Activate(100, 100)
	require.True(t, h.c.Immune())
	vx0, vy0 := h.c.Velocity()

	// Pointer dives straight into the box during the immunity window.
	h.c.Observe(pointer.Sample{X: 100, Y: 220, Time: 0})
	h.now = 0.05
	h.c.Observe(pointer.Sample{X: 210, Y: 220, Time: 0.05})

	assert.False(t, h.c.Hit())
	vx, vy := h.c.Velocity()
	assert.Equal(t, vx0, vx)
	assert.Equal(t, vy0, vy)
}

func TestActivationSpeedAndDirection(t *testing.T) {
	h := newHarness(t, testConfig())

	// Hit-box center is (220, 220); activating below it launches straight up.
	h.c.Activate(220, 260)

	vx, vy := h.c.Velocity()
	assert.InDelta(t, 0, vx, 1e-9)
	assert.InDelta(t, -1500, vy, 1e-9)
	assert.Equal(t, 1, h.rec.acts)
	assert.True(t, h.c.Immune())
}

func TestActivationAtExactCenterUsesRandomDirection(t *testing.T) {
	h := newHarness(t, testConfig())

	h.c.Activate(220, 220)

	vx, vy := h.c.Velocity()
	assert.InDelta(t, 1500, math.Hypot(vx, vy), 1e-9)
	assert.True(t, vx != 0 || vy != 0)
}

func TestImmunityCooldownSupersedes(t *testing.T) {
	h := newHarness(t, testConfig())

	h.c.Activate(100, 100)
	h.step(0.5)
	require.True(t, h.c.Immune())

	// Re-activation cancels the pending cooldown and opens a fresh window.
	h.c.Activate(100, 100)
	h.step(0.9)
	assert.True(t, h.c.Immune(), "first cooldown must have been canceled")
	h.step(1.4)
	assert.False(t, h.c.Immune())
}

func TestTickLoopAdvancesAndRests(t *testing.T) {
	cfg := testConfig()
	cfg.ActivationSpeed = 50 // rests after 0.5s at decel 100
	h := newHarness(t, cfg)

	h.c.Activate(220, 260)
	x0, y0 := h.c.Position()

	h.step(0.1)
	x1, y1 := h.c.Position()
	assert.Equal(t, x0, x1)
	assert.Less(t, y1, y0, "launch was straight up")
	assert.Positive(t, h.rec.moved)

	// Run past the natural stop: the tick loop must tear itself down.
	h.step(1.0)
	assert.False(t, h.c.Moving())
	assert.Equal(t, false, h.rec.motions[len(h.rec.motions)-1])

	movedAtRest := h.rec.moved
	h.step(2.0)
	assert.Equal(t, movedAtRest, h.rec.moved, "no ticks may fire while resting")
}

func TestUnknownPointerCannotHit(t *testing.T) {
	h := newHarness(t, testConfig())

	h.c.Observe(pointer.Sample{X: 100, Y: 220, Time: 0})
	h.c.Discontinue(pointer.Sample{Time: 0.05})

	// The dodger sits still; an unknown pointer position is "no hit
	// possible", never a crash.
	assert.False(t, h.c.Hit())
	assert.False(t, h.c.Moving())
}

func TestHitFlagClearsWhenPointerLeaves(t *testing.T) {
	h := newHarness(t, testConfig())

	h.c.Observe(pointer.Sample{X: 100, Y: 220, Time: 0})
	h.now = 0.1
	h.c.Observe(pointer.Sample{X: 200, Y: 220, Time: 0.1})
	require.True(t, h.c.Hit())

	h.now = 0.2
	h.c.Observe(pointer.Sample{X: 100, Y: 220, Time: 0.2})
	assert.False(t, h.c.Hit())
	assert.Equal(t, []bool{true, false}, h.rec.hits)
}

func TestStationaryPointerHitGetsEscapeVelocity(t *testing.T) {
	h := newHarness(t, testConfig())

	// Stale-velocity pointer placed inside the box: relative velocity is
	// zero, so the combined-magnitude floor kicks in with the away-push.
	h.c.Observe(pointer.Sample{X: 210, Y: 230, Time: 0})

	require.True(t, h.c.Hit())
	vx, vy := h.c.Velocity()
	m := math.Hypot(vx, vy)
	assert.GreaterOrEqual(t, m, 100.0)

	// Push points from the pointer toward the center, i.e. up-left here.
	assert.Positive(t, vx*(220-210)+vy*(220-230), "push must point away from the pointer")
}
