package dodge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameSchedulerAfter(t *testing.T) {
	fs := NewFrameScheduler(0)
	fired := 0
	fs.After(0.5, func() { fired++ })

	fs.Advance(0.4)
	assert.Zero(t, fired)
	fs.Advance(0.5)
	assert.Equal(t, 1, fired)
	fs.Advance(2)
	assert.Equal(t, 1, fired, "one-shot must not refire")
}

func TestFrameSchedulerAfterStop(t *testing.T) {
	fs := NewFrameScheduler(0)
	fired := 0
	h := fs.After(0.5, func() { fired++ })
	h.Stop()
	fs.Advance(1)
	assert.Zero(t, fired)
}

func TestFrameSchedulerEveryCatchesUp(t *testing.T) {
	fs := NewFrameScheduler(0)
	fired := 0
	fs.Every(0.01, func() { fired++ })

	// One coarse frame spanning many intervals fires once per interval.
	fs.Advance(0.05)
	assert.Equal(t, 5, fired)

	fs.Advance(0.06)
	assert.Equal(t, 6, fired)
}

func TestFrameSchedulerStopDuringCallback(t *testing.T) {
	fs := NewFrameScheduler(0)
	fired := 0
	var h Handle
	h = fs.Every(0.01, func() {
		fired++
		h.Stop()
	})

	fs.Advance(0.1)
	assert.Equal(t, 1, fired)
	fs.Advance(0.2)
	assert.Equal(t, 1, fired)
}

func TestFrameSchedulerInstallDuringCallback(t *testing.T) {
	fs := NewFrameScheduler(0)
	chained := 0
	fs.After(0.1, func() {
		fs.After(0.1, func() { chained++ })
	})

	fs.Advance(0.1)
	assert.Zero(t, chained, "task installed mid-advance becomes due next frame")
	fs.Advance(0.2)
	assert.Equal(t, 1, chained)
}
