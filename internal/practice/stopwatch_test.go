package practice

import (
	"context"
	"testing"
	"time"
)

func TestStopwatchTickOnlyWhileRunning(t *testing.T) {
	s := NewStopwatch()

	// Stopped: ticks are dropped.
	s.tick()
	if got := s.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %d after stopped tick, want 0", got)
	}

	s.Start()
	s.tick()
	s.tick()
	if got := s.Elapsed(); got != 2 {
		t.Errorf("Elapsed() = %d, want 2", got)
	}

	// Stopping pauses without clearing.
	s.Stop()
	s.tick()
	if got := s.Elapsed(); got != 2 {
		t.Errorf("Elapsed() = %d after paused tick, want 2", got)
	}

	// Resuming continues from where it left off.
	s.Start()
	s.tick()
	if got := s.Elapsed(); got != 3 {
		t.Errorf("Elapsed() = %d after resume, want 3", got)
	}
}

func TestStopwatchToggle(t *testing.T) {
	s := NewStopwatch()
	if !s.Toggle() {
		t.Error("first Toggle() = false, want true")
	}
	if !s.Running() {
		t.Error("Running() = false after toggle on")
	}
	if s.Toggle() {
		t.Error("second Toggle() = true, want false")
	}
}

func TestStopwatchReset(t *testing.T) {
	s := NewStopwatch()
	s.Start()
	s.tick()
	s.Reset()

	if s.Running() {
		t.Error("Running() = true after Reset")
	}
	if got := s.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %d after Reset, want 0", got)
	}
}

// Run must return promptly when its context is cancelled so the tick loop
// never outlives the screen that owns it.
func TestStopwatchRunTeardown(t *testing.T) {
	s := NewStopwatch()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{60, "0:01:00"},
		{61, "0:01:01"},
		{3599, "0:59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{36000, "10:00:00"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.seconds); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || b == "" {
		t.Fatal("NewSessionID() returned empty string")
	}
	if a == b {
		t.Errorf("NewSessionID() returned duplicate %q", a)
	}
	if len(a) != 26 {
		t.Errorf("len(NewSessionID()) = %d, want 26", len(a))
	}
}
