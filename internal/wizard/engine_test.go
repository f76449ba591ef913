package wizard

import (
	"strings"
	"testing"

	"github.com/jmaydwell1/eliteprep/internal/draft"
)

func form(pairs ...string) Form {
	f := Form{}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Add(pairs[i], pairs[i+1])
	}
	return f
}

func sliderForm(fields []string, value string) Form {
	f := Form{}
	for _, field := range fields {
		f.Set(field, value)
	}
	return f
}

func mustSubmit(t *testing.T, e *Engine, f Form) {
	t.Helper()
	if errs := e.Submit(f); len(errs) > 0 {
		t.Fatalf("Submit at %q failed: %v", e.Current(), errs)
	}
}

func newTestEngine(t *testing.T, start StepID) *Engine {
	t.Helper()
	e, err := NewEngine(draft.NewSession(), start)
	if err != nil {
		t.Fatalf("NewEngine(%q) error = %v", start, err)
	}
	return e
}

func TestNewEngineUnknownStart(t *testing.T) {
	if _, err := NewEngine(draft.NewSession(), StepID("nope")); err == nil {
		t.Error("NewEngine with unknown start = nil error, want error")
	}
}

func TestOnboardingWalk(t *testing.T) {
	e := newTestEngine(t, StepCreateAccount)

	mustSubmit(t, e, form("email", "user@example.com", "password", "secret1"))
	if e.Current() != StepUserProfile {
		t.Fatalf("after create-account at %q, want %q", e.Current(), StepUserProfile)
	}

	mustSubmit(t, e, form(
		"name", "Jordan", "birthdate", "1998-04-12",
		"gender", "Female", "city", "Austin", "state", "Texas"))
	mustSubmit(t, e, form("sport", "Golf"))
	mustSubmit(t, e, Form{}) // notifications has no inputs
	mustSubmit(t, e, form("athletic_status", "Intermediate", "handicap", "12"))
	mustSubmit(t, e, form("expectation", "Sharper focus", "goal", "Win club championship"))
	mustSubmit(t, e, Form{}) // baseline reminder is informational
	mustSubmit(t, e, sliderForm(QuestionnaireFields, "7"))

	if !e.AtHome() {
		t.Fatalf("after questionnaire at %q, want home", e.Current())
	}

	d := e.Session().Draft()
	if d.Email != "user@example.com" || d.Name != "Jordan" {
		t.Errorf("draft identity = %q/%q", d.Email, d.Name)
	}
	if d.Handicap == nil || *d.Handicap != 12 {
		t.Errorf("draft handicap = %v, want 12", d.Handicap)
	}
	if len(d.Sport) != 1 || d.Sport[0] != "Golf" {
		t.Errorf("draft sport = %v, want [Golf]", d.Sport)
	}
	if missing := e.Session().Missing(draft.RequiredProfileFields); len(missing) != 0 {
		t.Errorf("completed walk still missing %v", missing)
	}
}

func TestLoginSkipsOnboarding(t *testing.T) {
	e := newTestEngine(t, StepLogin)
	mustSubmit(t, e, form("email", "user@example.com", "password", "secret1"))

	if !e.AtHome() {
		t.Errorf("after login at %q, want home", e.Current())
	}
	if got := e.Session().Draft().Email; got != "user@example.com" {
		t.Errorf("draft email = %q", got)
	}
}

func TestSubmitValidationFailureHoldsPosition(t *testing.T) {
	e := newTestEngine(t, StepCreateAccount)

	errs := e.Submit(form("email", "not-an-email", "password", "short"))
	if len(errs) != 2 {
		t.Fatalf("Submit() errors = %v, want email and password failures", errs)
	}
	if e.Current() != StepCreateAccount {
		t.Errorf("engine moved to %q on invalid input", e.Current())
	}
	if got := e.Session().Draft().Email; got != "" {
		t.Errorf("invalid input committed email %q", got)
	}
}

func TestGoalTruncation(t *testing.T) {
	e := newTestEngine(t, StepGoalSetting)

	long := strings.Repeat("g", draft.MaxGoalLength+50)
	mustSubmit(t, e, form("expectation", "Improve", "goal", long))

	d := e.Session().Draft()
	if len([]rune(d.Goal)) != draft.MaxGoalLength {
		t.Errorf("goal length = %d runes, want %d", len([]rune(d.Goal)), draft.MaxGoalLength)
	}
}

func TestHandicapZeroCommits(t *testing.T) {
	e := newTestEngine(t, StepAthleticStatus)
	mustSubmit(t, e, form("athletic_status", "Beginner", "handicap", "0"))

	d := e.Session().Draft()
	if d.Handicap == nil || *d.Handicap != 0 {
		t.Errorf("handicap = %v, want explicit 0", d.Handicap)
	}
}

func TestBack(t *testing.T) {
	e := newTestEngine(t, StepCreateAccount)
	mustSubmit(t, e, form("email", "user@example.com", "password", "secret1"))

	if !e.Back() {
		t.Fatal("Back() = false with history")
	}
	if e.Current() != StepCreateAccount {
		t.Errorf("Back() landed on %q, want %q", e.Current(), StepCreateAccount)
	}

	// Committed patches survive going back.
	if got := e.Session().Draft().Email; got != "user@example.com" {
		t.Errorf("Back() rolled back email to %q", got)
	}

	if e.Back() {
		t.Error("Back() = true with empty history")
	}
}

func TestPracticeFlowShotQueueThreading(t *testing.T) {
	e := newTestEngine(t, StepHome)

	mustSubmit(t, e, form("action", "practice"))
	mustSubmit(t, e, form("location", "outdoor"))
	mustSubmit(t, e, form("type", PracticeIntentional))
	if e.Current() != StepSkillsPractice {
		t.Fatalf("at %q, want %q", e.Current(), StepSkillsPractice)
	}

	// Selection order drives visit order: tee first, the rest queued.
	mustSubmit(t, e, form("shot_types", "tee", "shot_types", "approach", "shot_types", "putting"))
	if e.Current() != StepTeeReflection {
		t.Fatalf("at %q, want %q", e.Current(), StepTeeReflection)
	}
	if q := e.Route().ShotQueue; len(q) != 2 || q[0] != "approach" || q[1] != "putting" {
		t.Fatalf("queue = %v, want [approach putting]", q)
	}

	mustSubmit(t, e, form("options", "tempo"))
	if e.Current() != StepApproachReflection {
		t.Fatalf("at %q, want %q", e.Current(), StepApproachReflection)
	}

	mustSubmit(t, e, form("options", "distance-control"))
	if e.Current() != StepPuttingReflection {
		t.Fatalf("at %q, want %q", e.Current(), StepPuttingReflection)
	}

	// Queue drained: the last reflection routes to feedback.
	mustSubmit(t, e, form("options", "fundamentals"))
	if e.Current() != StepSessionFeedback {
		t.Fatalf("at %q, want %q", e.Current(), StepSessionFeedback)
	}

	mustSubmit(t, e, sliderForm([]string{"effort", "enjoyment", "focus"}, "8"))
	mustSubmit(t, e, form("notes", "commit to the routine"))

	if !e.AtHome() {
		t.Fatalf("at %q, want home", e.Current())
	}

	route := e.Route()
	if got := route.Reflections["tee"]; len(got) != 1 || got[0] != "tempo" {
		t.Errorf("tee reflections = %v", got)
	}
	if got := route.Reflections["takeaway"]; len(got) != 1 {
		t.Errorf("takeaway notes = %v", got)
	}
	if route.Location != "outdoor" {
		t.Errorf("location = %q, want outdoor", route.Location)
	}
}

func TestPracticeFlowPlayedRound(t *testing.T) {
	e := newTestEngine(t, StepStartPractice)

	mustSubmit(t, e, Form{}) // location defaults to indoor
	if got := e.Route().Location; got != "indoor" {
		t.Errorf("location = %q, want default indoor", got)
	}

	mustSubmit(t, e, form("type", PracticePlay))
	if e.Current() != StepRoundReflection {
		t.Fatalf("at %q, want %q", e.Current(), StepRoundReflection)
	}

	mustSubmit(t, e, form("options", "clutch", "options", "confident"))
	if e.Current() != StepSessionFeedback {
		t.Fatalf("at %q, want %q", e.Current(), StepSessionFeedback)
	}
	if got := e.Route().Reflections["round"]; len(got) != 2 {
		t.Errorf("round reflections = %v, want two", got)
	}
}

func TestSkillsPracticeRejectsUnknownShot(t *testing.T) {
	e := newTestEngine(t, StepSkillsPractice)

	if errs := e.Submit(form("shot_types", "chipping-green")); len(errs) == 0 {
		t.Error("unknown shot type accepted")
	}
	if errs := e.Submit(Form{}); len(errs) == 0 {
		t.Error("empty shot selection accepted")
	}
}

func TestRouteReturnsCopy(t *testing.T) {
	e := newTestEngine(t, StepSkillsPractice)
	mustSubmit(t, e, form("shot_types", "tee", "shot_types", "approach"))

	route := e.Route()
	route.ShotQueue[0] = "putting"

	if got := e.Route().ShotQueue[0]; got != "approach" {
		t.Errorf("mutating Route() copy changed queue: %q", got)
	}
}
