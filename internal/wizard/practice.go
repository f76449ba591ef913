package wizard

import (
	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// ReflectionOptions lists the selectable reflection prompts per shot type.
var ReflectionOptions = map[string][]string{
	"tee": {
		"driver-accuracy", "shot-shape", "tempo", "alignment",
		"competitive", "routine",
	},
	"approach": {
		"distance-control", "trajectory", "target-commitment", "tempo",
		"competitive", "routine",
	},
	"short": {
		"chipping", "pitching", "bunker-play", "landing-spot",
		"competitive", "routine",
	},
	"putting": {
		"distance", "block", "direction", "fundamentals",
		"competitive", "tempo", "routine",
	},
}

// RoundReflectionOptions lists the prompts offered after a played round.
var RoundReflectionOptions = []string{
	"improving", "preparation", "bad-shot", "calm", "clutch",
	"confident", "equipment", "intimidated", "awareness",
}

// startPracticeStep opens a practice session and records where it happens.
type startPracticeStep struct{}

func (startPracticeStep) ID() StepID { return StepStartPractice }

func (startPracticeStep) Validate(f Form) []validation.FieldError { return nil }

func (startPracticeStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s startPracticeStep) Next(f Form, rs *RouteState) StepID {
	if loc := f.Get("location"); loc != "" {
		rs.Location = loc
	} else if rs.Location == "" {
		rs.Location = "indoor"
	}
	return nextStep(s.ID(), "")
}

// practiceTypeStep branches the flow: a played round routes to a single
// round reflection, every practice type routes to the shot-type selector.
type practiceTypeStep struct{}

func (practiceTypeStep) ID() StepID { return StepPracticeType }

func (practiceTypeStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	if err := validation.Selected("practice type", f.Get("type")); err != nil {
		c.Add(err)
	} else {
		c.Add(validation.Enum("type", f.Get("type"), []string{
			PracticePlay, PracticeIntentional, PracticeCasual, PracticeEquipment,
		}))
	}
	return c.Errors()
}

func (practiceTypeStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s practiceTypeStep) Next(f Form, rs *RouteState) StepID {
	rs.PracticeType = f.Get("type")
	return nextStep(s.ID(), rs.PracticeType)
}

// skillsPracticeStep collects the shot types worked on and enqueues one
// reflection step per selection, preserving selection order. The first
// shot is visited immediately; the remainder thread forward in the route
// state until the queue drains.
type skillsPracticeStep struct{}

func (skillsPracticeStep) ID() StepID { return StepSkillsPractice }

func (skillsPracticeStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	selected := f.Values("shot_types")
	if len(selected) == 0 {
		c.Add(&validation.FieldError{Field: "shot_types", Message: "please select at least one shot type"})
	}
	for _, shot := range selected {
		c.Add(validation.Enum("shot_types", shot, ShotTypes))
	}
	return c.Errors()
}

func (skillsPracticeStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s skillsPracticeStep) Next(f Form, rs *RouteState) StepID {
	selected := f.Values("shot_types")
	if len(selected) == 0 {
		return nextStep(s.ID(), "")
	}
	rs.ShotQueue = append([]string(nil), selected[1:]...)
	return nextStep(s.ID(), selected[0])
}

// shotReflectionStep is one per-shot reflection screen. All four share the
// same contract and differ only in their option set. Completing a
// reflection pops the next queued shot; an empty queue routes to feedback.
type shotReflectionStep struct {
	id      StepID
	shot    string
	options []string
}

func (s shotReflectionStep) ID() StepID { return s.id }

func (s shotReflectionStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	selected := f.Values("options")
	if len(selected) == 0 {
		c.Add(&validation.FieldError{Field: "options", Message: "please select at least one option"})
	}
	for _, opt := range selected {
		c.Add(validation.Enum("options", opt, s.options))
	}
	return c.Errors()
}

func (s shotReflectionStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s shotReflectionStep) Next(f Form, rs *RouteState) StepID {
	rs.RecordReflection(s.shot, f.Values("options"))
	if len(rs.ShotQueue) == 0 {
		return nextStep(s.id, "")
	}
	next := rs.ShotQueue[0]
	rs.ShotQueue = append([]string(nil), rs.ShotQueue[1:]...)
	return nextStep(s.id, next)
}

// roundReflectionStep is the single reflection after a played round.
type roundReflectionStep struct{}

func (roundReflectionStep) ID() StepID { return StepRoundReflection }

func (roundReflectionStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	selected := f.Values("options")
	if len(selected) == 0 {
		c.Add(&validation.FieldError{Field: "options", Message: "please select at least one option"})
	}
	for _, opt := range selected {
		c.Add(validation.Enum("options", opt, RoundReflectionOptions))
	}
	return c.Errors()
}

func (roundReflectionStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s roundReflectionStep) Next(f Form, rs *RouteState) StepID {
	rs.RecordReflection("round", f.Values("options"))
	return nextStep(s.ID(), "")
}

// sessionFeedbackStep collects slider ratings about the session itself.
var sessionFeedbackFields = []string{"effort", "enjoyment", "focus"}

type sessionFeedbackStep struct{}

func (sessionFeedbackStep) ID() StepID { return StepSessionFeedback }

func (sessionFeedbackStep) Validate(f Form) []validation.FieldError {
	var c validation.Collector
	for _, field := range sessionFeedbackFields {
		c.Add(validation.SliderValue(field, f.Get(field)))
	}
	return c.Errors()
}

func (sessionFeedbackStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s sessionFeedbackStep) Next(f Form, rs *RouteState) StepID {
	return nextStep(s.ID(), "")
}

// takeawayStep captures free-text session takeaways, truncated like the
// goal fields. Both boxes are optional; the step always routes home.
type takeawayStep struct{}

func (takeawayStep) ID() StepID { return StepTakeaway }

func (takeawayStep) Validate(f Form) []validation.FieldError { return nil }

func (takeawayStep) Commit(f Form) draft.Patch { return draft.Patch{} }

func (s takeawayStep) Next(f Form, rs *RouteState) StepID {
	var notes []string
	for _, note := range f.Values("notes") {
		if note != "" {
			notes = append(notes, validation.Truncate(note, draft.MaxGoalLength))
		}
	}
	if len(notes) > 0 {
		rs.RecordReflection("takeaway", notes)
	}
	return nextStep(s.ID(), "")
}
