package wizard

import (
	"strconv"
	"strings"
	"time"

	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/types"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// birthdateLayout is the wire format the date picker yields.
const birthdateLayout = "2006-01-02"

// createAccountStep captures the registration identity. The password is
// validated here but never stored in the draft; it goes straight to the
// register call.
type createAccountStep struct{}

func (createAccountStep) ID() StepID { return StepCreateAccount }

func (createAccountStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Email("email", f.Get("email")))
	if err := validation.Required("password", f.Get("password")); err != nil {
		c.Add(err)
	} else {
		c.Add(validation.MinLength("password", f.Get("password"), 6))
	}
	return c.Errors()
}

func (createAccountStep) Commit(f Form) draft.Patch {
	email := strings.TrimSpace(f.Get("email"))
	return draft.Patch{Email: &email}
}

func (s createAccountStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// loginStep authenticates an existing user and adopts the email as the
// session identity, skipping the rest of onboarding.
type loginStep struct{}

func (loginStep) ID() StepID { return StepLogin }

func (loginStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Email("email", f.Get("email")))
	if err := validation.Required("password", f.Get("password")); err != nil {
		c.Add(err)
	} else {
		c.Add(validation.MinLength("password", f.Get("password"), 6))
	}
	return c.Errors()
}

func (loginStep) Commit(f Form) draft.Patch {
	email := strings.TrimSpace(f.Get("email"))
	return draft.Patch{Email: &email}
}

func (s loginStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// userProfileStep captures name, birthdate, gender, city and state.
type userProfileStep struct{}

func (userProfileStep) ID() StepID { return StepUserProfile }

func (userProfileStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Required("name", f.Get("name")))
	c.Add(validation.Selected("gender", f.Get("gender")))
	if f.Get("gender") != "" {
		c.Add(validation.Enum("gender", f.Get("gender"), draft.Genders))
	}
	c.Add(validation.Selected("state", f.Get("state")))
	if f.Get("state") != "" {
		c.Add(validation.Enum("state", f.Get("state"), draft.States))
	}
	c.Add(validation.Required("city", f.Get("city")))
	if v := f.Get("birthdate"); v == "" {
		c.Add(&validation.FieldError{Field: "birthdate", Message: "birthdate is required"})
	} else if _, err := time.Parse(birthdateLayout, v); err != nil {
		c.Add(&validation.FieldError{Field: "birthdate", Message: "must be a date in YYYY-MM-DD form"})
	}
	return c.Errors()
}

func (userProfileStep) Commit(f Form) draft.Patch {
	name := strings.TrimSpace(f.Get("name"))
	city := strings.TrimSpace(f.Get("city"))
	state := f.Get("state")
	gender := types.Gender(f.Get("gender"))
	p := draft.Patch{
		Name:   &name,
		City:   &city,
		State:  &state,
		Gender: &gender,
	}
	if t, err := time.Parse(birthdateLayout, f.Get("birthdate")); err == nil {
		p.Birthdate = &t
	}
	return p
}

func (s userProfileStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// sportsSelectionStep captures a single sport. The draft stores it as a
// one-element list because the API expects a list; a changed selection
// replaces the previous one wholesale.
type sportsSelectionStep struct{}

func (sportsSelectionStep) ID() StepID { return StepSportsSelection }

func (sportsSelectionStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Selected("sport", f.Get("sport")))
	if f.Get("sport") != "" {
		c.Add(validation.Enum("sport", f.Get("sport"), draft.Sports))
	}
	return c.Errors()
}

func (sportsSelectionStep) Commit(f Form) draft.Patch {
	return draft.Patch{Sport: []string{f.Get("sport")}}
}

func (s sportsSelectionStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// notificationsStep records the permission outcome. Both granted and denied
// proceed; the step only needs the boolean to decide whether reminders can
// be scheduled later. Nothing is committed to the draft.
type notificationsStep struct{}

func (notificationsStep) ID() StepID { return StepNotifications }

func (notificationsStep) Validate(f Form) []validation.FieldError { return nil }

func (notificationsStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s notificationsStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// athleticStatusStep captures competitive level and handicap. The handicap
// arrives as a selection string and is committed as an integer so the
// profile serializes it numerically.
type athleticStatusStep struct{}

func (athleticStatusStep) ID() StepID { return StepAthleticStatus }

func (athleticStatusStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Selected("athletic_status", f.Get("athletic_status")))
	if f.Get("athletic_status") != "" {
		c.Add(validation.Enum("athletic_status", f.Get("athletic_status"), draft.AthleticStatuses))
	}
	if err := validation.Selected("handicap", f.Get("handicap")); err != nil {
		c.Add(err)
	} else {
		c.Add(validation.IntInRange("handicap", f.Get("handicap"), 0, draft.MaxHandicap))
	}
	return c.Errors()
}

func (athleticStatusStep) Commit(f Form) draft.Patch {
	status := types.AthleticStatus(f.Get("athletic_status"))
	p := draft.Patch{AthleticStatus: &status}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Get("handicap"))); err == nil {
		p.Handicap = &n
	}
	return p
}

func (s athleticStatusStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// goalSettingStep captures the short-term expectation and long-term goal.
// Text past the 250-rune boundary is dropped, not rejected.
type goalSettingStep struct{}

func (goalSettingStep) ID() StepID { return StepGoalSetting }

func (goalSettingStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Required("expectation", f.Get("expectation")))
	c.Add(validation.Required("goal", f.Get("goal")))
	return c.Errors()
}

func (goalSettingStep) Commit(f Form) draft.Patch {
	expectation := validation.Truncate(strings.TrimSpace(f.Get("expectation")), draft.MaxGoalLength)
	goal := validation.Truncate(strings.TrimSpace(f.Get("goal")), draft.MaxGoalLength)
	return draft.Patch{Expectation: &expectation, Goal: &goal}
}

func (s goalSettingStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// baselineReminderStep is informational; it has no inputs.
type baselineReminderStep struct{}

func (baselineReminderStep) ID() StepID { return StepBaselineReminder }

func (baselineReminderStep) Validate(f Form) []validation.FieldError { return nil }

func (baselineReminderStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s baselineReminderStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// QuestionnaireFields are the slider answers collected by the baseline
// questionnaire, in presentation order. Sliders default to the midpoint 5.
var QuestionnaireFields = []string{
	"confidence", "focus", "anxiety", "enjoyment", "burnout", "effort", "motivation",
}

// baselineQuestionnaireStep collects the seven slider answers. The answers
// are ephemeral: they go to the submission gateway, not into the draft.
type baselineQuestionnaireStep struct{}

func (baselineQuestionnaireStep) ID() StepID { return StepBaselineQuestionnaire }

func (baselineQuestionnaireStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	for _, field := range QuestionnaireFields {
		c.Add(validation.SliderValue(field, f.Get(field)))
	}
	return c.Errors()
}

func (baselineQuestionnaireStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s baselineQuestionnaireStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// homeStep is the terminal onboarding state and the entry point into the
// practice flow.
type homeStep struct{}

func (homeStep) ID() StepID { return StepHome }

func (homeStep) Validate(f Form) []validation.FieldError { return nil }

func (homeStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s homeStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), f.Get("action"))
}

// newSteps builds the full step registry.
func newSteps() map[StepID]Step {
	steps := map[StepID]Step{
		StepCreateAccount:         createAccountStep{},
		StepLogin:                 loginStep{},
		StepUserProfile:           userProfileStep{},
		StepSportsSelection:       sportsSelectionStep{},
		StepNotifications:         notificationsStep{},
		StepAthleticStatus:        athleticStatusStep{},
		StepGoalSetting:           goalSettingStep{},
		StepBaselineReminder:      baselineReminderStep{},
		StepBaselineQuestionnaire: baselineQuestionnaireStep{},
		StepHome:                  homeStep{},
		StepStartPractice:         startPracticeStep{},
		StepPracticeType:          practiceTypeStep{},
		StepRoundReflection:       roundReflectionStep{},
		StepSkillsPractice:        skillsPracticeStep{},
		StepSessionFeedback:       sessionFeedbackStep{},
		StepTakeaway:              takeawayStep{},
	}
	for shot, id := range map[string]StepID{
		"tee":      StepTeeReflection,
		"approach": StepApproachReflection,
		"short":    StepShortGameReflection,
		"putting":  StepPuttingReflection,
	} {
		steps[id] = shotReflectionStep{id: id, shot: shot, options: ReflectionOptions[shot]}
	}
	return steps
}
