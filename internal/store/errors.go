package store

import "errors"

// Domain errors surfaced to the API layer, which maps them onto the wire
// contract's detail strings.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates a registration against an existing email.
	ErrDuplicateUser = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoTrends indicates the user exists but has no questionnaire
	// submissions to average.
	ErrNoTrends = errors.New("no performance data available")
)
