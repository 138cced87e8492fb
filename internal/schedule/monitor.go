// Package schedule provides the repeating-timer abstraction the presentation
// layer uses to re-evaluate session timing. Evaluation itself stays pure; a
// Monitor only decides when the next tick happens and hands the tick instant
// to its callback.
package schedule

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Monitor owns a single repeating timer. Each component that displays live
// timing creates its own Monitor and must stop it on teardown so no recurring
// work outlives the view that wanted it.
type Monitor struct {
	mu       sync.Mutex
	running  bool
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// Start begins ticking at the given interval, invoking fn with the current
// instant on every tick. fn is also invoked once immediately so callers have
// a verdict to render before the first interval elapses.
func (m *Monitor) Start(interval time.Duration, fn func(now time.Time)) error {
	if interval <= 0 {
		return errors.New("interval must be positive")
	}
	if fn == nil {
		return errors.New("tick callback is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("monitor already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	m.running = true
	m.interval = interval
	m.cancel = cancel
	m.done = done

	go func() {
		defer close(done)
		fn(time.Now())

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				fn(t)
			}
		}
	}()

	log.Printf("monitor: started (interval=%s)", interval)
	return nil
}

// IsRunning returns whether the monitor is currently ticking.
func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Interval returns the cadence the monitor was started with, or zero when
// stopped.
func (m *Monitor) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return 0
	}
	return m.interval
}

// Stop halts the timer and waits for the tick goroutine to exit. Stopping an
// already-stopped monitor is a no-op.
func (m *Monitor) Stop() error {
	return m.StopWithTimeout(0)
}

// StopWithTimeout is Stop with a bound on how long to wait for an in-flight
// tick callback to return.
func (m *Monitor) StopWithTimeout(timeout time.Duration) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cancel := m.cancel
	done := m.done
	m.running = false
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-done:
		log.Printf("monitor: stopped")
		return nil
	case <-time.After(timeout):
		log.Printf("monitor: stop timeout exceeded after %v", timeout)
		return errors.New("monitor stop timeout exceeded")
	}
}
