package schedule

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Teardown collects the stop functions of every timer a component created and
// releases them together on shutdown, with a timeout and error tracking.
type Teardown struct {
	mu       sync.Mutex
	stoppers []stopper
	timeout  time.Duration
	once     sync.Once
}

type stopper struct {
	name string
	fn   func() error
}

// NewTeardown creates a teardown registry with the specified timeout.
func NewTeardown(timeout time.Duration) *Teardown {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Teardown{timeout: timeout}
}

// Register adds a named stop function to run on teardown.
func (t *Teardown) Register(name string, fn func() error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stoppers = append(t.stoppers, stopper{name: name, fn: fn})
}

// RegisterMonitor registers a monitor's Stop under the given name.
func (t *Teardown) RegisterMonitor(name string, m *Monitor) {
	t.Register(name, m.Stop)
}

// Execute stops every registered resource exactly once, bounded by the
// teardown timeout. It returns the errors encountered, if any.
func (t *Teardown) Execute() []error {
	var errs []error
	t.once.Do(func() {
		errs = t.executeWithTimeout()
	})
	return errs
}

func (t *Teardown) executeWithTimeout() []error {
	t.mu.Lock()
	stoppers := make([]stopper, len(t.stoppers))
	copy(stoppers, t.stoppers)
	t.mu.Unlock()

	if len(stoppers) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	done := make(chan struct{})
	var mu sync.Mutex
	var stopErrors []error

	go func() {
		defer close(done)
		for _, s := range stoppers {
			func() {
				defer func() {
					if r := recover(); r != nil {
						mu.Lock()
						stopErrors = append(stopErrors, errors.New("panic during teardown"))
						mu.Unlock()
						log.Printf("teardown: panic stopping %s: %v", s.name, r)
					}
				}()

				if err := s.fn(); err != nil {
					mu.Lock()
					stopErrors = append(stopErrors, err)
					mu.Unlock()
					log.Printf("teardown: error stopping %s: %v", s.name, err)
				} else {
					log.Printf("teardown: stopped %s", s.name)
				}
			}()
		}
	}()

	select {
	case <-done:
		return stopErrors
	case <-ctx.Done():
		log.Printf("teardown: timeout after %v, some timers may still be running", t.timeout)
		mu.Lock()
		stopErrors = append(stopErrors, errors.New("teardown timeout exceeded"))
		mu.Unlock()
		return stopErrors
	}
}
