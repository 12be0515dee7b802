package scheduler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval between polls, tuned alongside the original surfaces.
const DefaultInterval = 3 * time.Second

// Manager drives one sync type. Every source of work, the interval
// ticker, reactive HTTP triggers, realtime events, funnels through
// Trigger, so overlap prevention lives in exactly one place: a
// single-flight flag. A trigger arriving while a run is in flight is
// dropped, not queued; the next tick re-syncs, which bounds staleness by
// the polling interval.
type Manager struct {
	name     string
	interval time.Duration
	run      func(context.Context) error

	busy    atomic.Bool
	stop    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
}

func NewManager(name string, interval time.Duration, run func(context.Context) error) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manager{
		name:     name,
		interval: interval,
		run:      run,
		stop:     make(chan struct{}),
	}
}

// Start installs the recurring tick. Reactive triggers can be fired at any
// time, before or after Start.
func (m *Manager) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Trigger("interval")
			case <-m.stop:
				return
			}
		}
	}()
}

// Trigger requests a sync run. Returns false when the request was dropped
// because a run is already in flight.
func (m *Manager) Trigger(reason string) bool {
	if !m.busy.CompareAndSwap(false, true) {
		return false
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.busy.Store(false)

		// No mid-run cancellation: an in-flight sync runs to completion
		// or failure before the lock releases.
		if err := m.run(context.Background()); err != nil {
			log.Printf("%s sync error (%s): %v", m.name, reason, err)
		}
	}()
	return true
}

// Stop tears the ticker down and waits for any in-flight run.
func (m *Manager) Stop() {
	m.stopped.Do(func() { close(m.stop) })
	m.wg.Wait()
}
