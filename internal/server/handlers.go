// Package server is the development backend: a runnable implementation of
// the REST contract the mobile client consumes. It exists so the gateway
// and the CLI can be exercised end-to-end without the deployed service.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jmaydwell1/eliteprep/internal/coach"
	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/store"
	"github.com/jmaydwell1/eliteprep/internal/types"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// Handler implements the API handlers
type Handler struct {
	store   *store.SQLiteStore
	coach   coach.Generator
	version string
}

// NewHandler creates a new Handler.
func NewHandler(s *store.SQLiteStore, c coach.Generator, version string) *Handler {
	return &Handler{
		store:   s,
		coach:   c,
		version: version,
	}
}

// Health returns the health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	var c validation.Collector
	c.Add(validation.Email("email", req.Email))
	c.Add(validation.MinLength("password", req.Password, 6))
	if c.HasErrors() {
		writeFieldErrors(w, c.Errors())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.store.CreateUser(r.Context(), email, req.Password); err != nil {
		slog.Warn("register failed", "email", email, "error", err)
		mapStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Message: "User registered successfully",
		Email:   email,
	})
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.store.Authenticate(r.Context(), email, req.Password); err != nil {
		mapStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Message: "Login successful",
		Email:   email,
	})
}

// UpdateOnboarding handles POST /onboarding.
func (h *Handler) UpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	var profile types.OnboardingProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	if errs := validateProfile(profile); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	if err := h.store.UpsertProfile(r.Context(), profile); err != nil {
		slog.Error("profile update failed", "email", profile.Email, "error", err)
		mapStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.Ack{Message: "Onboarding data saved"})
}

// AddPerformanceTrend handles POST /performance-trends.
func (h *Handler) AddPerformanceTrend(w http.ResponseWriter, r *http.Request) {
	var sub types.QuestionnaireSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	if errs := validateSubmission(sub); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	id, err := h.store.AddTrend(r.Context(), sub)
	if err != nil {
		slog.Error("trend insert failed", "email", sub.Email, "error", err)
		mapStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Performance trend recorded",
		"id":      id,
	})
}

// PerformanceAverages handles GET /performance-averages/{email}.
func (h *Handler) PerformanceAverages(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	averages, err := h.store.Averages(r.Context(), email)
	if err != nil {
		mapStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, averages)
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeDetail(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	reply, err := h.coach.Generate(r.Context(), req.Prompt)
	if err != nil {
		slog.Error("generation failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, types.GenerateResponse{FormattedResponse: reply})
}

// validateProfile checks the full onboarding payload: required fields plus
// closed-set and range constraints, mirroring the client's rules so the
// 422 path stays exercised when a stale client skips one.
func validateProfile(p types.OnboardingProfile) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Email("email", p.Email))
	c.Add(validation.Required("name", p.Name))
	if p.Birthdate == nil {
		c.Add(&validation.FieldError{Field: "birthdate", Message: "birthdate is required"})
	}
	c.Add(validation.Enum("gender", string(p.Gender), draft.Genders))
	c.Add(validation.Required("city", p.City))
	c.Add(validation.Enum("state", p.State, draft.States))
	if len(p.Sport) == 0 {
		c.Add(&validation.FieldError{Field: "sport", Message: "at least one sport is required"})
	}
	c.Add(validation.Enum("athletic_status", string(p.AthleticStatus), draft.AthleticStatuses))
	if p.Handicap < 0 || p.Handicap > draft.MaxHandicap {
		c.Add(&validation.FieldError{
			Field:   "handicap",
			Message: fmt.Sprintf("must be between 0 and %d", draft.MaxHandicap),
		})
	}
	c.Add(validation.MaxLength("expectation", p.Expectation, draft.MaxGoalLength))
	c.Add(validation.MaxLength("goal", p.Goal, draft.MaxGoalLength))
	return c.Errors()
}

// validateSubmission checks a questionnaire payload.
func validateSubmission(sub types.QuestionnaireSubmission) []validation.FieldError {
	var c validation.Collector
	c.Add(validation.Email("email", sub.Email))
	answers := map[string]int{
		"focus":      sub.Focus,
		"confidence": sub.Confidence,
		"anxiety":    sub.Anxiety,
		"enjoyment":  sub.Enjoyment,
		"burnout":    sub.Burnout,
		"effort":     sub.Effort,
		"motivation": sub.Motivation,
	}
	for field, v := range answers {
		if v < 0 || v > 10 {
			c.Add(&validation.FieldError{Field: field, Message: "must be between 0 and 10"})
		}
	}
	return c.Errors()
}
