package pointer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(Frame{BorderLeft: "0px", BorderTop: "0px"}, 0, nil)
	require.NoError(t, err)
	return tr
}

func TestParsePixels(t *testing.T) {
	for in, want := range map[string]float64{
		"4px":    4,
		"  12px": 12,
		"3.5px":  3.5,
		"0px":    0,
		"7":      7,
		"-2px":   -2,
	} {
		got, err := ParsePixels(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "px", "4em", "abc", "NaNpx", "Infpx", "4 px px"} {
		_, err := ParsePixels(in)
		var fe *FormatError
		require.ErrorAs(t, err, &fe, in)
	}
}

func TestNewTrackerBadGeometry(t *testing.T) {
	var fe *FormatError
	_, err := NewTracker(Frame{BorderLeft: "thick", BorderTop: "0px"}, 0, nil)
	require.ErrorAs(t, err, &fe)
	_, err = NewTracker(Frame{BorderLeft: "1px", BorderTop: "medium"}, 0, nil)
	require.ErrorAs(t, err, &fe)
}

func TestFrameOffsets(t *testing.T) {
	tr, err := NewTracker(Frame{OriginX: 100, OriginY: 50, BorderLeft: "4px", BorderTop: "2px"}, 0, nil)
	require.NoError(t, err)

	tr.Observe(Sample{X: 154, Y: 82, Time: 0})
	x, y, ok := tr.Position()
	require.True(t, ok)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 30.0, y)
}

func TestPositionUnknownBeforeFirstSample(t *testing.T) {
	tr := newTestTracker(t)
	_, _, ok := tr.Position()
	assert.False(t, ok)
}

func TestVelocityBlending(t *testing.T) {
	tr := newTestTracker(t)

	// First sample has no history: position set, velocity untouched.
	tr.Observe(Sample{X: 0, Y: 0, Time: 0})
	vx, vy := tr.Velocity(0)
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	// Zero current estimate snaps to the raw value.
	tr.Observe(Sample{X: 10, Y: 0, Time: 0.1})
	vx, _ = tr.Velocity(0.1)
	assert.InDelta(t, 100, vx, 1e-12)

	// Same direction: average.
	tr.Observe(Sample{X: 30, Y: 0, Time: 0.2})
	vx, _ = tr.Velocity(0.2)
	assert.InDelta(t, 150, vx, 1e-12)

	// Reversal snaps instead of converging through zero.
	tr.Observe(Sample{X: 20, Y: 0, Time: 0.3})
	vx, _ = tr.Velocity(0.3)
	assert.InDelta(t, -100, vx, 1e-12)
}

func TestStaleHistoryDiscarded(t *testing.T) {
	tr := newTestTracker(t)
	tr.Observe(Sample{X: 0, Y: 0, Time: 0})
	tr.Observe(Sample{X: 10, Y: 0, Time: 0.1}) // vx = 100

	// Gap longer than the expiry window: raw value replaces the estimate
	// instead of being averaged with it.
	tr.Observe(Sample{X: 15, Y: 0, Time: 1.1})
	vx, _ := tr.Velocity(1.1)
	assert.InDelta(t, 5.0, vx, 1e-12)
}

func TestDuplicateCoordinatesAreIgnored(t *testing.T) {
	changes := 0
	tr, err := NewTracker(Frame{BorderLeft: "0", BorderTop: "0"}, 0, func() { changes++ })
	require.NoError(t, err)

	tr.Observe(Sample{X: 5, Y: 5, Time: 0})
	tr.Observe(Sample{X: 8, Y: 5, Time: 0.05})
	vx, _ := tr.Velocity(0.05)
	require.NotZero(t, vx)
	require.Equal(t, 2, changes)

	// Identical client coordinates: complete no-op, even with a newer
	// timestamp that would otherwise produce a zero-velocity sample.
	tr.Observe(Sample{X: 8, Y: 5, Time: 0.1})
	gotX, _ := tr.Velocity(0.1)
	assert.Equal(t, vx, gotX)
	assert.Equal(t, 2, changes)
}

func TestVelocityExpires(t *testing.T) {
	tr := newTestTracker(t)
	tr.Observe(Sample{X: 0, Y: 0, Time: 0})
	tr.Observe(Sample{X: 50, Y: 20, Time: 0.1})

	vx, vy := tr.Velocity(0.1 + DefaultExpiry)
	assert.NotZero(t, vx)
	assert.NotZero(t, vy)

	// 301ms after the last event with a 300ms window: reported as zero.
	vx, vy = tr.Velocity(0.1 + DefaultExpiry + 0.001)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestDiscontinuityFreezesVelocity(t *testing.T) {
	tr := newTestTracker(t)
	tr.Observe(Sample{X: 0, Y: 0, Time: 0})
	tr.Observe(Sample{X: 30, Y: 0, Time: 0.1})
	vx, _ := tr.Velocity(0.1)
	require.InDelta(t, 300, vx, 1e-12)

	tr.Discontinue(Sample{Time: 0.15})

	_, _, ok := tr.Position()
	assert.False(t, ok, "position must be unknown after a discontinuity")

	// Velocity frozen at its last value while the sample is fresh...
	gotX, _ := tr.Velocity(0.2)
	assert.InDelta(t, 300, gotX, 1e-12)

	// ...and zero once it goes stale.
	gotX, gotY := tr.Velocity(0.15 + DefaultExpiry + 0.001)
	assert.Zero(t, gotX)
	assert.Zero(t, gotY)
}

func TestObserveAfterDiscontinuityRestoresPosition(t *testing.T) {
	tr := newTestTracker(t)
	tr.Observe(Sample{X: 10, Y: 10, Time: 0})
	tr.Discontinue(Sample{Time: 0.05})

	tr.Observe(Sample{X: 40, Y: 10, Time: 0.1})
	x, y, ok := tr.Position()
	require.True(t, ok)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 10.0, y)

	// Displacement from an unknown position is undefined, so the velocity
	// estimate is still the frozen pre-discontinuity value.
	vx, _ := tr.Velocity(0.1)
	assert.True(t, !math.IsNaN(vx))
}
