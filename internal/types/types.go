package types

import (
	"encoding/json"
	"time"
)

// Gender is the self-reported gender captured during onboarding.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// AthleticStatus classifies the athlete's competitive level.
type AthleticStatus string

const (
	StatusBeginner     AthleticStatus = "Beginner"
	StatusIntermediate AthleticStatus = "Intermediate"
	StatusAdvanced     AthleticStatus = "Advanced"
	StatusProfessional AthleticStatus = "Professional"
)

// Credentials is the request body for /register and /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse acknowledges a successful register or login.
// The email echoed back becomes the session's identity field.
type AuthResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// OnboardingProfile is the full draft object posted to /onboarding.
// Handicap is an integer on the wire; clients that collect it as a
// selection string must coerce before serializing.
type OnboardingProfile struct {
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Birthdate      *time.Time     `json:"birthdate,omitempty"`
	Gender         Gender         `json:"gender"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Sport          []string       `json:"sport"`
	AthleticStatus AthleticStatus `json:"athletic_status"`
	Handicap       int            `json:"handicap"`
	Expectation    string         `json:"expectation"`
	Goal           string         `json:"goal"`
}

// MarshalJSON ensures a nil sport list marshals as [] not null.
func (p OnboardingProfile) MarshalJSON() ([]byte, error) {
	if p.Sport == nil {
		p.Sport = []string{}
	}
	type Alias OnboardingProfile
	return json.Marshal(Alias(p))
}

// QuestionnaireSubmission is the body posted to /performance-trends.
// Each answer is a slider reading rounded to the nearest integer in [0,10].
// The server assigns the timestamp.
type QuestionnaireSubmission struct {
	Email      string `json:"email"`
	Focus      int    `json:"focus"`
	Confidence int    `json:"confidence"`
	Anxiety    int    `json:"anxiety"`
	Enjoyment  int    `json:"enjoyment"`
	Burnout    int    `json:"burnout"`
	Effort     int    `json:"effort"`
	Motivation int    `json:"motivation"`
}

// Ack is a content-agnostic server acknowledgment.
type Ack struct {
	Message string `json:"message"`
}

// PerformanceAverages is the aggregate returned by
// GET /performance-averages/{email}. All values are floats in [0,10].
type PerformanceAverages struct {
	AverageFocus      float64 `json:"average_focus"`
	AverageAnxiety    float64 `json:"average_anxiety"`
	AverageEnjoyment  float64 `json:"average_enjoyment"`
	AverageBurnout    float64 `json:"average_burnout"`
	AverageConfidence float64 `json:"average_confidence"`
	TotalAverage      float64 `json:"total_average"`
}

// GenerateRequest is the body posted to /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse carries the AI coach reply. Servers may populate either
// field; FormattedResponse wins when both are present.
type GenerateResponse struct {
	FormattedResponse string `json:"formatted_response,omitempty"`
	Response          string `json:"response,omitempty"`
}

// Text returns the usable reply regardless of which field the server set.
func (g GenerateResponse) Text() string {
	if g.FormattedResponse != "" {
		return g.FormattedResponse
	}
	return g.Response
}

// FieldDetail is one entry of a 422 validation error body. The shape
// mirrors FastAPI's error detail items so the joined message the client
// builds matches what the deployed backend produces.
type FieldDetail struct {
	Loc  []string `json:"loc,omitempty"`
	Msg  string   `json:"msg"`
	Type string   `json:"type,omitempty"`
}

// Detail strings the client discriminates on for 404 responses from
// /performance-averages. These are part of the wire contract, not copy.
const (
	DetailUserNotFound = "User not found"
	DetailNoData       = "No performance data available"
)
