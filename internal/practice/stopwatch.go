// Package practice holds the practice-session stopwatch. The stopwatch is
// a periodic 1-second tick that accumulates only while toggled on, and its
// tick loop is torn down with the owning screen's context so no recurring
// callback leaks.
package practice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// TickInterval is the stopwatch resolution.
const TickInterval = time.Second

// Stopwatch counts whole seconds while running. Safe for concurrent use:
// the tick loop and the toggling screen run on different goroutines.
type Stopwatch struct {
	mu      sync.Mutex
	running bool
	seconds int
}

// NewStopwatch creates a stopped stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// Start begins accumulating seconds.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
}

// Stop pauses accumulation without clearing the elapsed time.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Toggle flips the running state and reports the new state.
func (s *Stopwatch) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
	return s.running
}

// Running reports whether the stopwatch is accumulating.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Reset stops the stopwatch and clears the elapsed time.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.seconds = 0
}

// Elapsed returns the accumulated whole seconds.
func (s *Stopwatch) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seconds
}

// Run drives the stopwatch until ctx is cancelled. It blocks; callers run
// it on its own goroutine for the lifetime of the practice screen and
// cancel the context when the screen goes away.
func (s *Stopwatch) Run(ctx context.Context) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Stopwatch) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.seconds++
	}
}

// FormatElapsed renders whole seconds as H:MM:SS, matching the practice
// screen's timer display.
func FormatElapsed(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
}

// NewSessionID mints a sortable identifier for a practice session.
func NewSessionID() string {
	return ulid.Make().String()
}
