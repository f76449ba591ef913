package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/gateway"
	"github.com/jmaydwell1/eliteprep/internal/notify"
	"github.com/jmaydwell1/eliteprep/internal/wizard"
)

// flowRunner drives a wizard engine from line-based terminal input. Each
// iteration prompts for the active step's fields, validates locally, merges
// the step's patch, and runs the step's backend call. A failed backend call
// returns the flow to the step it left so the user can retry.
type flowRunner struct {
	in       *bufio.Scanner
	out      io.Writer
	client   *gateway.Client
	engine   *wizard.Engine
	notifier notify.Provider
}

func newFlowRunner(in io.Reader, out io.Writer, client *gateway.Client, engine *wizard.Engine) *flowRunner {
	return &flowRunner{
		in:       bufio.NewScanner(in),
		out:      out,
		client:   client,
		engine:   engine,
		notifier: notify.Static{Status: notify.StatusUndetermined},
	}
}

// run advances the flow until it reaches the home state or input ends.
func (r *flowRunner) run(ctx context.Context) error {
	for !r.engine.AtHome() {
		if err := r.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *flowRunner) step(ctx context.Context) error {
	id := r.engine.Current()
	f, password, err := r.collect(id)
	if err != nil {
		return err
	}

	if errs := r.engine.Submit(f); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(r.out, "  %s: %s\n", e.Field, e.Message)
		}
		return nil
	}

	if err := r.afterStep(ctx, id, f, password); err != nil {
		fmt.Fprintln(r.out, gateway.UserMessage(err))
		r.engine.Back()
	}
	return nil
}

// afterStep runs the backend call owed by the step just completed.
func (r *flowRunner) afterStep(ctx context.Context, id wizard.StepID, f wizard.Form, password string) error {
	switch id {
	case wizard.StepCreateAccount:
		resp, err := r.client.Register(ctx, r.engine.Session().Draft().Email, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, resp.Message)

	case wizard.StepLogin:
		resp, err := r.client.Login(ctx, r.engine.Session().Draft().Email, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, resp.Message)

	case wizard.StepNotifications:
		if notify.Granted(r.notifier) {
			fmt.Fprintln(r.out, "Practice reminders enabled.")
		} else {
			fmt.Fprintln(r.out, "Practice reminders skipped. You can enable them later in settings.")
		}

	case wizard.StepGoalSetting:
		ack, err := r.client.SubmitProfile(ctx, r.engine.Session().Draft())
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, ack.Message)

	case wizard.StepBaselineQuestionnaire:
		ack, err := r.client.SubmitQuestionnaire(ctx,
			r.engine.Session().Draft().Email, slidersFromForm(f))
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, ack.Message)
	}
	return nil
}

// collect prompts for the active step's fields and returns the raw form.
// The password is returned separately; it is never stored in the draft.
func (r *flowRunner) collect(id wizard.StepID) (wizard.Form, string, error) {
	f := wizard.Form{}
	switch id {
	case wizard.StepCreateAccount, wizard.StepLogin:
		if id == wizard.StepCreateAccount {
			fmt.Fprintln(r.out, "Create your account")
		} else {
			fmt.Fprintln(r.out, "Welcome back")
		}
		email, err := r.ask("Email", "")
		if err != nil {
			return nil, "", err
		}
		password, err := r.ask("Password", "")
		if err != nil {
			return nil, "", err
		}
		f.Set("email", email)
		f.Set("password", password)
		return f, password, nil

	case wizard.StepUserProfile:
		fmt.Fprintln(r.out, "Tell us about yourself")
		fields := []struct{ form, label string }{
			{"name", "Name"},
			{"birthdate", "Birthdate (YYYY-MM-DD)"},
			{"city", "City"},
		}
		for _, fld := range fields {
			v, err := r.ask(fld.label, "")
			if err != nil {
				return nil, "", err
			}
			f.Set(fld.form, v)
		}
		gender, err := r.choose("Gender", draft.Genders)
		if err != nil {
			return nil, "", err
		}
		f.Set("gender", gender)
		state, err := r.choose("State", draft.States)
		if err != nil {
			return nil, "", err
		}
		f.Set("state", state)
		return f, "", nil

	case wizard.StepSportsSelection:
		sport, err := r.choose("Pick your sport", draft.Sports)
		if err != nil {
			return nil, "", err
		}
		f.Set("sport", sport)
		return f, "", nil

	case wizard.StepNotifications:
		v, err := r.ask("Enable practice reminders? (y/n)", "n")
		if err != nil {
			return nil, "", err
		}
		status := notify.StatusDenied
		if strings.EqualFold(v, "y") || strings.EqualFold(v, "yes") {
			status = notify.StatusGranted
		}
		r.notifier = notify.Static{Status: status}
		return f, "", nil

	case wizard.StepAthleticStatus:
		status, err := r.choose("Athletic status", draft.AthleticStatuses)
		if err != nil {
			return nil, "", err
		}
		f.Set("athletic_status", status)
		handicap, err := r.ask(fmt.Sprintf("Handicap (0-%d)", draft.MaxHandicap), "")
		if err != nil {
			return nil, "", err
		}
		f.Set("handicap", handicap)
		return f, "", nil

	case wizard.StepGoalSetting:
		expectation, err := r.ask("What do you expect from this program?", "")
		if err != nil {
			return nil, "", err
		}
		goal, err := r.ask("What is your long-term goal?", "")
		if err != nil {
			return nil, "", err
		}
		f.Set("expectation", expectation)
		f.Set("goal", goal)
		return f, "", nil

	case wizard.StepBaselineReminder:
		fmt.Fprintln(r.out, "Next up: a short baseline questionnaire. "+
			"Rate each prompt from 0 to 10.")
		if _, err := r.ask("Press Enter to continue", ""); err != nil {
			return nil, "", err
		}
		return f, "", nil

	case wizard.StepBaselineQuestionnaire:
		for _, field := range wizard.QuestionnaireFields {
			v, err := r.ask(sliderPrompt(field), "5")
			if err != nil {
				return nil, "", err
			}
			f.Set(field, v)
		}
		return f, "", nil

	case wizard.StepStartPractice:
		loc, err := r.choose("Where are you practicing?", []string{"indoor", "outdoor", "course"})
		if err != nil {
			return nil, "", err
		}
		f.Set("location", loc)
		return f, "", nil

	case wizard.StepPracticeType:
		t, err := r.choose("What kind of session?", []string{
			wizard.PracticePlay, wizard.PracticeIntentional,
			wizard.PracticeCasual, wizard.PracticeEquipment,
		})
		if err != nil {
			return nil, "", err
		}
		f.Set("type", t)
		return f, "", nil

	case wizard.StepSkillsPractice:
		shots, err := r.chooseMany("Which shot types did you work on?", wizard.ShotTypes)
		if err != nil {
			return nil, "", err
		}
		for _, shot := range shots {
			f.Add("shot_types", shot)
		}
		return f, "", nil

	case wizard.StepRoundReflection:
		opts, err := r.chooseMany("How did the round go?", wizard.RoundReflectionOptions)
		if err != nil {
			return nil, "", err
		}
		for _, o := range opts {
			f.Add("options", o)
		}
		return f, "", nil

	case wizard.StepTeeReflection, wizard.StepApproachReflection,
		wizard.StepShortGameReflection, wizard.StepPuttingReflection:
		shot := reflectionShot(id)
		opts, err := r.chooseMany(
			fmt.Sprintf("What did you focus on (%s)?", shot),
			wizard.ReflectionOptions[shot])
		if err != nil {
			return nil, "", err
		}
		for _, o := range opts {
			f.Add("options", o)
		}
		return f, "", nil

	case wizard.StepSessionFeedback:
		for _, field := range []string{"effort", "enjoyment", "focus"} {
			v, err := r.ask(sliderPrompt(field), "5")
			if err != nil {
				return nil, "", err
			}
			f.Set(field, v)
		}
		return f, "", nil

	case wizard.StepTakeaway:
		for _, label := range []string{"Biggest takeaway (optional)", "Next focus (optional)"} {
			v, err := r.ask(label, "")
			if err != nil {
				return nil, "", err
			}
			if v = strings.TrimSpace(v); v != "" {
				f.Add("notes", v)
			}
		}
		return f, "", nil
	}

	return f, "", nil
}

func reflectionShot(id wizard.StepID) string {
	switch id {
	case wizard.StepTeeReflection:
		return "tee"
	case wizard.StepApproachReflection:
		return "approach"
	case wizard.StepShortGameReflection:
		return "short"
	default:
		return "putting"
	}
}

func sliderPrompt(field string) string {
	return fmt.Sprintf("Rate your %s (0-10)", field)
}

func slidersFromForm(f wizard.Form) gateway.SliderAnswers {
	get := func(field string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(f.Get(field)), 64)
		return v
	}
	return gateway.SliderAnswers{
		Focus:      get("focus"),
		Confidence: get("confidence"),
		Anxiety:    get("anxiety"),
		Enjoyment:  get("enjoyment"),
		Burnout:    get("burnout"),
		Effort:     get("effort"),
		Motivation: get("motivation"),
	}
}

// ask prompts for a single line. An empty answer yields the fallback.
func (r *flowRunner) ask(label, fallback string) (string, error) {
	if strings.TrimSpace(fallback) != "" {
		fmt.Fprintf(r.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(r.out, "%s: ", label)
	}
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	v := strings.TrimSpace(r.in.Text())
	if v == "" {
		return strings.TrimSpace(fallback), nil
	}
	return v, nil
}

// choose prompts for one option, by number or by exact label.
func (r *flowRunner) choose(label string, options []string) (string, error) {
	fmt.Fprintf(r.out, "%s:\n", label)
	for i, opt := range options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, opt)
	}
	v, err := r.ask("Choice", "")
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(v); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return v, nil
}

// chooseMany prompts for a comma-separated list of options.
func (r *flowRunner) chooseMany(label string, options []string) ([]string, error) {
	fmt.Fprintf(r.out, "%s (comma-separated):\n", label)
	for i, opt := range options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, opt)
	}
	v, err := r.ask("Choices", "")
	if err != nil {
		return nil, err
	}
	var picked []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, convErr := strconv.Atoi(part); convErr == nil && n >= 1 && n <= len(options) {
			picked = append(picked, options[n-1])
			continue
		}
		picked = append(picked, part)
	}
	return picked, nil
}
