package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_SingleFlightDropsOverlappingTriggers(t *testing.T) {
	release := make(chan struct{})
	var runs atomic.Int32

	m := NewManager("test", time.Hour, func(context.Context) error {
		runs.Add(1)
		<-release
		return nil
	})

	assert.True(t, m.Trigger("first"))

	// Wait for the run to actually start holding the lock.
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)

	assert.False(t, m.Trigger("second"), "overlapping trigger must be dropped")
	assert.False(t, m.Trigger("third"))

	close(release)
	m.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestManager_LockReleasesAfterRun(t *testing.T) {
	var runs atomic.Int32
	m := NewManager("test", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	assert.True(t, m.Trigger("a"))
	assert.Eventually(t, func() bool { return m.Trigger("b") }, time.Second, time.Millisecond)

	m.Stop()
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestManager_LockReleasesAfterFailure(t *testing.T) {
	m := NewManager("test", time.Hour, func(context.Context) error {
		return assert.AnError
	})

	assert.True(t, m.Trigger("a"))
	assert.Eventually(t, func() bool { return m.Trigger("b") }, time.Second, time.Millisecond)
	m.Stop()
}

func TestManager_IntervalTicks(t *testing.T) {
	var runs atomic.Int32
	m := NewManager("test", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	m.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	m.Stop()
}

func TestManager_StopIsIdempotent(t *testing.T) {
	m := NewManager("test", time.Hour, func(context.Context) error { return nil })
	m.Start()
	m.Stop()
	assert.NotPanics(t, m.Stop)
}
