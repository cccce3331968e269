package motion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, upper, decel, halfRebound float64) *Engine {
	t.Helper()
	e, err := NewEngine(upper, decel, halfRebound, func(string, ...any) {})
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsBadParams(t *testing.T) {
	for _, tc := range []struct {
		name             string
		upper, decel, hr float64
	}{
		{"zero upper", 0, 25, 1000},
		{"negative upper", -10, 25, 1000},
		{"nan upper", math.NaN(), 25, 1000},
		{"zero decel", 100, 0, 1000},
		{"negative halfRebound", 100, 25, -1},
		{"inf decel", 100, math.Inf(1), 1000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(tc.upper, tc.decel, tc.hr, nil)
			var re *RangeError
			require.ErrorAs(t, err, &re)
		})
	}
}

func TestSetPositionRange(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)

	require.NoError(t, e.SetPosition(0))
	require.NoError(t, e.SetPosition(100))
	require.NoError(t, e.SetPosition(42.5))

	var re *RangeError
	require.ErrorAs(t, e.SetPosition(-0.001), &re)
	require.ErrorAs(t, e.SetPosition(100.001), &re)
	require.ErrorAs(t, e.SetPosition(math.NaN()), &re)

	// Failed setter leaves state untouched.
	assert.Equal(t, 42.5, e.Position())
}

func TestSetVelocityRejectsNonFinite(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)

	var re *RangeError
	require.ErrorAs(t, e.SetVelocity(math.NaN(), 10), &re)
	require.ErrorAs(t, e.SetVelocity(0, math.Inf(1)), &re)
	require.NoError(t, e.SetVelocity(0, 10))
}

func TestReboundProperties(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)

	assert.Zero(t, e.Rebound(0))

	for _, v := range []float64{0.01, 1, 42, 999, 1000, 5000, 1e6} {
		r := e.Rebound(v)
		assert.Negative(t, r, "sign must flip for v=%v", v)
		assert.Less(t, math.Abs(r), v, "magnitude must shrink for v=%v", v)
		// Antisymmetry.
		assert.InDelta(t, -r, e.Rebound(-v), 1e-12)
	}

	// Monotone in |v|.
	prev := 0.0
	for _, v := range []float64{1, 10, 100, 1000, 10000} {
		r := math.Abs(e.Rebound(v))
		assert.Greater(t, r, prev)
		prev = r
	}

	// At the half-rebound reference speed exactly half survives.
	assert.InDelta(t, -500, e.Rebound(1000), 1e-9)
}

func TestRestStateIsIdempotent(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)
	require.NoError(t, e.SetPosition(73.25))
	require.NoError(t, e.SetVelocity(5, 0))

	pos, vel, err := e.Update(5)
	require.NoError(t, err)
	assert.Equal(t, 73.25, pos)
	assert.Zero(t, vel)

	pos, vel, err = e.Update(500)
	require.NoError(t, err)
	assert.Equal(t, 73.25, pos)
	assert.Zero(t, vel)
	assert.False(t, e.Moving())
}

func TestUpdateRejectsTimeRegression(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)
	require.NoError(t, e.SetVelocity(10, 5))

	var re *RangeError
	_, _, err := e.Update(9.999)
	require.ErrorAs(t, err, &re)

	_, _, err = e.Update(10)
	require.NoError(t, err)
}

func TestSingleSegmentClosedForm(t *testing.T) {
	// No wall reached: pos(t) = p0 + (v0 + v(t))/2 * t with v(t) = v0 - a*t.
	e := newTestEngine(t, 1000, 25, 1000)
	require.NoError(t, e.SetPosition(50))
	require.NoError(t, e.SetVelocity(0, 200))

	pos, vel, err := e.Update(1)
	require.NoError(t, err)
	assert.InDelta(t, 175.0, vel, 1e-9)
	assert.InDelta(t, 50+(200+175.0)/2, pos, 1e-9)
	assert.True(t, e.Moving())
}

func TestDecelerationStopsWithoutReversing(t *testing.T) {
	e := newTestEngine(t, 100, 25, 1000)
	require.NoError(t, e.SetPosition(10))
	require.NoError(t, e.SetVelocity(0, 10))

	// Zero crossing at t = 10/25 = 0.4; the remaining 0.6s must not move it.
	pos, vel, err := e.Update(1)
	require.NoError(t, err)
	assert.Zero(t, vel)
	assert.InDelta(t, 10+10*0.4/2, pos, 1e-9)
	assert.False(t, e.Moving())
}

func TestSingleReboundMatchesTwoSegmentSolution(t *testing.T) {
	const (
		upper = 100.0
		decel = 25.0
		hr    = 1000.0
		p0    = 50.0
		v0    = 2000.0
		tEnd  = 0.05
	)
	e := newTestEngine(t, upper, decel, hr)
	require.NoError(t, e.SetPosition(p0))
	require.NoError(t, e.SetVelocity(0, v0))

	// First segment: p0 + v0*tau - decel/2*tau^2 == upper, lower root.
	a := decel / 2
	tHit := (v0 - math.Sqrt(v0*v0-4*a*(upper-p0))) / (2 * a)
	require.Greater(t, tHit, 0.0)
	require.Less(t, tHit, tEnd)

	vHit := v0 - decel*tHit
	vReb := -vHit / (vHit/hr + 1)

	// Second segment from the wall; no further crossing before tEnd.
	rem := tEnd - tHit
	wantVel := vReb + decel*rem
	wantPos := upper + (vReb+wantVel)/2*rem
	require.Greater(t, wantPos, 0.0)

	pos, vel, err := e.Update(tEnd)
	require.NoError(t, err)
	assert.Negative(t, vel, "velocity must change sign after exactly one rebound")
	assert.InDelta(t, wantVel, vel, 1e-9)
	assert.InDelta(t, wantPos, pos, 1e-9)
}

func TestMultipleBouncesInOneUpdate(t *testing.T) {
	// Fast particle, tiny box, coarse poll: several wall hits must resolve
	// inside one call and the result must land inside the box.
	e := newTestEngine(t, 20, 5, 1000)
	require.NoError(t, e.SetPosition(10))
	require.NoError(t, e.SetVelocity(0, 900))

	pos, _, err := e.Update(0.25)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pos, 0.0)
	assert.LessOrEqual(t, pos, 20.0)
}

func TestPositionStaysBoundedUnderRandomUpdates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := newTestEngine(t, 300, 40, 800)
	require.NoError(t, e.SetPosition(150))

	now := 0.0
	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			require.NoError(t, e.SetVelocity(now, (rng.Float64()-0.5)*6000))
		}
		now += rng.Float64() * 0.2
		pos, _, err := e.Update(now)
		require.NoError(t, err)
		require.GreaterOrEqual(t, pos, 0.0, "step %d", i)
		require.LessOrEqual(t, pos, 300.0, "step %d", i)
	}
}

func TestEventuallyComesToRest(t *testing.T) {
	e := newTestEngine(t, 100, 50, 200)
	require.NoError(t, e.SetPosition(50))
	require.NoError(t, e.SetVelocity(0, 4000))

	_, vel, err := e.Update(600)
	require.NoError(t, err)
	assert.Zero(t, vel)
	assert.False(t, e.Moving())
}
