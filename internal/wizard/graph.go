package wizard

// The step graph is a lookup table from (current step, selected variant) to
// the next step. Linear steps use the empty variant. Branching decisions
// that used to live in per-screen conditionals are all enumerable here.

// transitionKey addresses one edge of the step graph.
type transitionKey struct {
	From    StepID
	Variant string
}

// Practice type variants selected on the practice-type step.
const (
	PracticePlay        = "play"
	PracticeIntentional = "intentional"
	PracticeCasual      = "casual"
	PracticeEquipment   = "equipment"
)

// Shot types selectable on the skills-practice step, in display order.
var ShotTypes = []string{"tee", "approach", "short", "putting"}

var transitions = map[transitionKey]StepID{
	{StepCreateAccount, ""}: StepUserProfile,
	{StepLogin, ""}:         StepHome,

	{StepUserProfile, ""}:           StepSportsSelection,
	{StepSportsSelection, ""}:       StepNotifications,
	{StepNotifications, ""}:         StepAthleticStatus,
	{StepAthleticStatus, ""}:        StepGoalSetting,
	{StepGoalSetting, ""}:           StepBaselineReminder,
	{StepBaselineReminder, ""}:      StepBaselineQuestionnaire,
	{StepBaselineQuestionnaire, ""}: StepHome,

	{StepStartPractice, ""}: StepPracticeType,

	// A played round gets a single round reflection; every practice type
	// goes through the shot-type selector instead.
	{StepPracticeType, PracticePlay}:        StepRoundReflection,
	{StepPracticeType, PracticeIntentional}: StepSkillsPractice,
	{StepPracticeType, PracticeCasual}:      StepSkillsPractice,
	{StepPracticeType, PracticeEquipment}:   StepSkillsPractice,

	// Shot-type reflections are addressed by the shot variant. The
	// skills-practice step and each reflection step pop the next shot
	// from the route-state queue; an empty queue routes to feedback.
	{StepSkillsPractice, "tee"}:      StepTeeReflection,
	{StepSkillsPractice, "approach"}: StepApproachReflection,
	{StepSkillsPractice, "short"}:    StepShortGameReflection,
	{StepSkillsPractice, "putting"}:  StepPuttingReflection,

	{StepTeeReflection, "tee"}:      StepTeeReflection,
	{StepTeeReflection, "approach"}: StepApproachReflection,
	{StepTeeReflection, "short"}:    StepShortGameReflection,
	{StepTeeReflection, "putting"}:  StepPuttingReflection,
	{StepTeeReflection, ""}:         StepSessionFeedback,

	{StepApproachReflection, "tee"}:      StepTeeReflection,
	{StepApproachReflection, "approach"}: StepApproachReflection,
	{StepApproachReflection, "short"}:    StepShortGameReflection,
	{StepApproachReflection, "putting"}:  StepPuttingReflection,
	{StepApproachReflection, ""}:         StepSessionFeedback,

	{StepShortGameReflection, "tee"}:      StepTeeReflection,
	{StepShortGameReflection, "approach"}: StepApproachReflection,
	{StepShortGameReflection, "short"}:    StepShortGameReflection,
	{StepShortGameReflection, "putting"}:  StepPuttingReflection,
	{StepShortGameReflection, ""}:         StepSessionFeedback,

	{StepPuttingReflection, "tee"}:      StepTeeReflection,
	{StepPuttingReflection, "approach"}: StepApproachReflection,
	{StepPuttingReflection, "short"}:    StepShortGameReflection,
	{StepPuttingReflection, "putting"}:  StepPuttingReflection,
	{StepPuttingReflection, ""}:         StepSessionFeedback,

	{StepRoundReflection, ""}: StepSessionFeedback,
	{StepSessionFeedback, ""}: StepTakeaway,
	{StepTakeaway, ""}:        StepHome,

	{StepHome, "practice"}: StepStartPractice,
}

// nextStep resolves an edge of the step graph. A missing edge falls back
// to the step's empty-variant edge; a step with neither is terminal.
func nextStep(from StepID, variant string) StepID {
	if next, ok := transitions[transitionKey{from, variant}]; ok {
		return next
	}
	if next, ok := transitions[transitionKey{from, ""}]; ok {
		return next
	}
	return from
}

// Graph returns a copy of the full transition table keyed by step and
// variant, for enumeration in tests and tooling.
func Graph() map[StepID]map[string]StepID {
	g := make(map[StepID]map[string]StepID)
	for k, next := range transitions {
		if g[k.From] == nil {
			g[k.From] = make(map[string]StepID)
		}
		g[k.From][k.Variant] = next
	}
	return g
}
