// Package wizard implements the onboarding and practice-session flows as an
// explicit step state machine. Each step validates its own inputs, proposes
// a draft patch, and routes to the next step through a shared transition
// table, so the full reachable step graph is enumerable.
package wizard

import (
	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// StepID identifies one screen's input/validate/commit/route unit.
type StepID string

const (
	StepCreateAccount         StepID = "create-account"
	StepLogin                 StepID = "login"
	StepUserProfile           StepID = "user-profile"
	StepSportsSelection       StepID = "sports-selection"
	StepNotifications         StepID = "notifications"
	StepAthleticStatus        StepID = "athletic-status"
	StepGoalSetting           StepID = "goal-setting"
	StepBaselineReminder      StepID = "baseline-reminder"
	StepBaselineQuestionnaire StepID = "baseline-questionnaire"
	StepHome                  StepID = "home"

	StepStartPractice       StepID = "start-practice"
	StepPracticeType        StepID = "practice-type"
	StepRoundReflection     StepID = "round-reflection"
	StepSkillsPractice      StepID = "skills-practice"
	StepTeeReflection       StepID = "tee-reflection"
	StepApproachReflection  StepID = "approach-reflection"
	StepShortGameReflection StepID = "short-game-reflection"
	StepPuttingReflection   StepID = "putting-reflection"
	StepSessionFeedback     StepID = "session-feedback"
	StepTakeaway            StepID = "takeaway"
)

// Form carries one step's raw input values keyed by field name, as screen
// controls yield them: text, selection labels, and slider readings as
// decimal strings. Multi-select fields hold one value per selection.
type Form map[string][]string

// Get returns the first value for the field, or "" when unset.
func (f Form) Get(field string) string {
	if vs := f[field]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Set replaces the field's values with a single value.
func (f Form) Set(field, value string) {
	f[field] = []string{value}
}

// Add appends a value to a multi-select field.
func (f Form) Add(field, value string) {
	f[field] = append(f[field], value)
}

// Values returns all values for a multi-select field.
func (f Form) Values(field string) []string {
	return f[field]
}

// RouteState threads flow-scoped routing data between steps: where the
// practice session happens, which practice type was chosen, and the queue
// of shot-type reflections still owed. It is not domain data and is never
// merged into the draft.
type RouteState struct {
	Location     string
	PracticeType string
	ShotQueue    []string
	Reflections  map[string][]string
}

// RecordReflection stores the options chosen on a reflection step.
func (rs *RouteState) RecordReflection(step string, options []string) {
	if rs.Reflections == nil {
		rs.Reflections = map[string][]string{}
	}
	rs.Reflections[step] = append([]string(nil), options...)
}

// Step is the uniform per-screen contract. Validate inspects only the raw
// form; Commit is called only after Validate returns no errors and produces
// the draft patch; Next is a pure routing decision over the form and the
// flow's route state.
type Step interface {
	ID() StepID
	Validate(f Form) []validation.FieldError
	Commit(f Form) draft.Patch
	Next(f Form, rs *RouteState) StepID
}
