package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMonitorTicks(t *testing.T) {
	var ticks int64
	m := &Monitor{}

	err := m.Start(20*time.Millisecond, func(now time.Time) {
		atomic.AddInt64(&ticks, 1)
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !m.IsRunning() {
		t.Fatal("expected running after Start")
	}
	if m.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, want 20ms", m.Interval())
	}

	time.Sleep(110 * time.Millisecond)

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if m.IsRunning() {
		t.Fatal("expected not running after Stop")
	}

	// One immediate invocation plus roughly five interval ticks.
	got := atomic.LoadInt64(&ticks)
	if got < 3 {
		t.Errorf("expected at least 3 ticks, got %d", got)
	}

	// No further ticks after Stop.
	after := atomic.LoadInt64(&ticks)
	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt64(&ticks) != after {
		t.Error("monitor kept ticking after Stop")
	}
}

func TestMonitorStartValidation(t *testing.T) {
	m := &Monitor{}

	if err := m.Start(0, func(time.Time) {}); err == nil {
		t.Error("expected error for zero interval")
	}
	if err := m.Start(time.Second, nil); err == nil {
		t.Error("expected error for nil callback")
	}
}

func TestMonitorDoubleStart(t *testing.T) {
	m := &Monitor{}
	defer m.Stop()

	if err := m.Start(time.Hour, func(time.Time) {}); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	if err := m.Start(time.Hour, func(time.Time) {}); err == nil {
		t.Error("expected error on second Start while running")
	}
}

func TestMonitorStopIdempotent(t *testing.T) {
	m := &Monitor{}

	if err := m.Stop(); err != nil {
		t.Errorf("Stop on fresh monitor returned error: %v", err)
	}

	if err := m.Start(time.Hour, func(time.Time) {}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := m.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := m.Stop(); err != nil {
		t.Errorf("second Stop returned error: %v", err)
	}
}

func TestMonitorRestart(t *testing.T) {
	m := &Monitor{}

	for i := 0; i < 3; i++ {
		if err := m.Start(time.Hour, func(time.Time) {}); err != nil {
			t.Fatalf("Start cycle %d failed: %v", i, err)
		}
		if err := m.Stop(); err != nil {
			t.Fatalf("Stop cycle %d failed: %v", i, err)
		}
	}
}
