// Package draft holds the accumulating onboarding profile for the lifetime
// of an app session. The Session is the single owner of the mutable draft;
// wizard steps receive read snapshots and return proposed patches, never a
// writable reference. Progress does not survive a process restart.
package draft

import (
	"time"

	"github.com/jmaydwell1/eliteprep/internal/types"
)

// Field names the draft attributes that can be required before submission.
type Field string

const (
	FieldEmail          Field = "email"
	FieldName           Field = "name"
	FieldBirthdate      Field = "birthdate"
	FieldGender         Field = "gender"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldSport          Field = "sport"
	FieldAthleticStatus Field = "athletic_status"
	FieldHandicap       Field = "handicap"
	FieldExpectation    Field = "expectation"
	FieldGoal           Field = "goal"
)

// RequiredProfileFields must all be present before the full profile is
// posted to the backend.
var RequiredProfileFields = []Field{
	FieldEmail,
	FieldName,
	FieldBirthdate,
	FieldGender,
	FieldCity,
	FieldState,
	FieldSport,
	FieldAthleticStatus,
	FieldHandicap,
}

// RequiredGoalFields must be present before the goal-setting step submits.
var RequiredGoalFields = []Field{
	FieldExpectation,
	FieldGoal,
}

// MaxGoalLength is the rune limit on the free-text goal fields. Input past
// the limit is silently truncated, never rejected.
const MaxGoalLength = 250

// MaxHandicap is the upper bound of the handicap selection range.
const MaxHandicap = 54

// Draft is the in-memory onboarding profile. Absent values are modeled
// explicitly: nil pointers for birthdate and handicap, empty strings and
// slices elsewhere. A selected handicap of 0 is present, not missing.
type Draft struct {
	Email          string
	Name           string
	Birthdate      *time.Time
	Gender         types.Gender
	City           string
	State          string
	Sport          []string
	AthleticStatus types.AthleticStatus
	Handicap       *int
	Expectation    string
	Goal           string
}

// Patch is a partial draft update. Nil fields are left untouched by Merge;
// set fields overwrite, with list values replaced wholesale.
type Patch struct {
	Email          *string
	Name           *string
	Birthdate      *time.Time
	Gender         *types.Gender
	City           *string
	State          *string
	Sport          []string
	AthleticStatus *types.AthleticStatus
	Handicap       *int
	Expectation    *string
	Goal           *string
}

// Session owns the draft across wizard steps. It is not safe for concurrent
// use; the app mutates it only from the active step's commit.
type Session struct {
	draft Draft
}

// NewSession creates an empty onboarding session.
func NewSession() *Session {
	return &Session{}
}

// Draft returns a read-only snapshot of the current draft. The sport list
// is copied so callers cannot mutate session state through it.
func (s *Session) Draft() Draft {
	d := s.draft
	if d.Sport != nil {
		d.Sport = append([]string(nil), d.Sport...)
	}
	return d
}

// Merge applies a patch key-wise, last write wins. Sport is replaced, not
// concatenated, so a corrected selection does not retain a stale entry.
func (s *Session) Merge(p Patch) Draft {
	if p.Email != nil {
		s.draft.Email = *p.Email
	}
	if p.Name != nil {
		s.draft.Name = *p.Name
	}
	if p.Birthdate != nil {
		t := *p.Birthdate
		s.draft.Birthdate = &t
	}
	if p.Gender != nil {
		s.draft.Gender = *p.Gender
	}
	if p.City != nil {
		s.draft.City = *p.City
	}
	if p.State != nil {
		s.draft.State = *p.State
	}
	if p.Sport != nil {
		s.draft.Sport = append([]string(nil), p.Sport...)
	}
	if p.AthleticStatus != nil {
		s.draft.AthleticStatus = *p.AthleticStatus
	}
	if p.Handicap != nil {
		h := *p.Handicap
		s.draft.Handicap = &h
	}
	if p.Expectation != nil {
		s.draft.Expectation = *p.Expectation
	}
	if p.Goal != nil {
		s.draft.Goal = *p.Goal
	}
	return s.Draft()
}

// Reset restores all fields to empty, as on logout or an abandoned flow.
func (s *Session) Reset() {
	s.draft = Draft{}
}

// Missing returns the subset of required fields that are empty or absent.
func (s *Session) Missing(required []Field) []Field {
	return s.draft.Missing(required)
}

// Missing returns the required fields the draft does not satisfy. List
// fields need non-zero length; pointer fields need non-nil; strings need
// non-empty.
func (d Draft) Missing(required []Field) []Field {
	var missing []Field
	for _, f := range required {
		if !d.present(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (d Draft) present(f Field) bool {
	switch f {
	case FieldEmail:
		return d.Email != ""
	case FieldName:
		return d.Name != ""
	case FieldBirthdate:
		return d.Birthdate != nil
	case FieldGender:
		return d.Gender != ""
	case FieldCity:
		return d.City != ""
	case FieldState:
		return d.State != ""
	case FieldSport:
		return len(d.Sport) > 0
	case FieldAthleticStatus:
		return d.AthleticStatus != ""
	case FieldHandicap:
		return d.Handicap != nil
	case FieldExpectation:
		return d.Expectation != ""
	case FieldGoal:
		return d.Goal != ""
	default:
		return false
	}
}

// Profile converts a complete draft into the wire shape posted to
// /onboarding. Callers should check Missing(RequiredProfileFields) first;
// absent numeric fields fall back to zero values here.
func (d Draft) Profile() types.OnboardingProfile {
	p := types.OnboardingProfile{
		Email:          d.Email,
		Name:           d.Name,
		Birthdate:      d.Birthdate,
		Gender:         d.Gender,
		City:           d.City,
		State:          d.State,
		Sport:          d.Sport,
		AthleticStatus: d.AthleticStatus,
		Expectation:    d.Expectation,
		Goal:           d.Goal,
	}
	if d.Handicap != nil {
		p.Handicap = *d.Handicap
	}
	return p
}
