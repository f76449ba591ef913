package wizard

import (
	"fmt"

	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// Engine drives a wizard flow over the step graph. It owns the route state
// and holds the one writable reference to the draft session; steps only see
// forms and return patches. Not safe for concurrent use.
type Engine struct {
	session *draft.Session
	steps   map[StepID]Step
	current StepID
	history []StepID
	route   RouteState
}

// NewEngine creates an engine positioned at the given start step.
// Onboarding starts at StepCreateAccount; a returning user's practice flow
// starts at StepHome.
func NewEngine(session *draft.Session, start StepID) (*Engine, error) {
	steps := newSteps()
	if _, ok := steps[start]; !ok {
		return nil, fmt.Errorf("unknown start step %q", start)
	}
	return &Engine{
		session: session,
		steps:   steps,
		current: start,
	}, nil
}

// Current returns the active step identifier.
func (e *Engine) Current() StepID {
	return e.current
}

// CurrentStep returns the active step.
func (e *Engine) CurrentStep() Step {
	return e.steps[e.current]
}

// Route returns a copy of the flow's route state.
func (e *Engine) Route() RouteState {
	rs := e.route
	rs.ShotQueue = append([]string(nil), e.route.ShotQueue...)
	return rs
}

// Session exposes the underlying draft session for submission and display.
func (e *Engine) Session() *draft.Session {
	return e.session
}

// Submit validates the form against the current step. On validation
// failure the field errors are returned and the engine does not move.
// On success the step's patch is merged into the draft and the engine
// advances to the step chosen by the routing table.
func (e *Engine) Submit(f Form) []validation.FieldError {
	step := e.steps[e.current]
	if errs := step.Validate(f); len(errs) > 0 {
		return errs
	}
	e.session.Merge(step.Commit(f))
	next := step.Next(f, &e.route)
	if next != e.current {
		e.history = append(e.history, e.current)
		e.current = next
	}
	return nil
}

// Back returns to the previously visited step. Patches already committed
// by later steps are kept; there are no rollback semantics, so changing an
// earlier answer can leave a stale combination downstream.
func (e *Engine) Back() bool {
	if len(e.history) == 0 {
		return false
	}
	e.current = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	return true
}

// AtHome reports whether the flow has reached the home state.
func (e *Engine) AtHome() bool {
	return e.current == StepHome
}
