package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jmaydwell1/eliteprep/internal/store"
	"github.com/jmaydwell1/eliteprep/internal/types"
	"github.com/jmaydwell1/eliteprep/internal/validation"
)

// Error bodies use the deployed backend's {"detail": ...} shape: a string
// for simple failures, a list of field items for 422s. The mobile client
// branches on these exact shapes, so they are contract, not convention.

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeDetail writes an error response with a string detail.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeFieldErrors writes a 422 response with per-field detail items.
func writeFieldErrors(w http.ResponseWriter, errs []validation.FieldError) {
	details := make([]types.FieldDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, types.FieldDetail{
			Loc:  []string{"body", e.Field},
			Msg:  e.Message,
			Type: "value_error",
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": details})
}

// mapStoreError converts domain errors to wire responses.
func mapStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeDetail(w, http.StatusNotFound, types.DetailUserNotFound)
	case errors.Is(err, store.ErrNoTrends):
		writeDetail(w, http.StatusNotFound, types.DetailNoData)
	case errors.Is(err, store.ErrDuplicateUser):
		writeDetail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, store.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		// Never expose internal error details to client
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
