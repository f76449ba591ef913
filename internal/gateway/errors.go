package gateway

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors callers branch on. Each maps to a distinct recovery
// action in the UI: re-register, do a first check-in, or retry later.
var (
	// ErrPrerequisite means a submission was attempted before an earlier
	// step established what it needs (e.g. no identity email). No network
	// I/O is performed.
	ErrPrerequisite = errors.New("prerequisite missing")

	// ErrInFlight means the same mutating call is already running; the
	// caller should wait for it to settle instead of firing a duplicate.
	ErrInFlight = errors.New("request already in flight")

	// ErrUserNotFound is a 404 whose detail says the account does not
	// exist on the server.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoData is a 404 whose detail says the user exists but has no
	// questionnaire submissions yet.
	ErrNoData = errors.New("no performance data available")
)

// TransportError wraps a network-level failure (unreachable, timeout).
// These are retryable by re-triggering the action; nothing is retried
// automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is an HTTP 422 with structured per-field details,
// flattened into one human-readable message.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "Please check your input and try again."
	}
	return strings.Join(e.Messages, "\n")
}

// ServerError is any other non-2xx response. A 500 carries a generic
// try-again message; other statuses carry the server's detail string when
// one was provided.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// UserMessage maps a gateway error to the copy shown in the blocking
// acknowledgment. The mapping is a contract callers rely on, not cosmetic.
func UserMessage(err error) string {
	var srv *ServerError
	var tr *TransportError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPrerequisite):
		return "Please complete the registration process first."
	case errors.Is(err, ErrInFlight):
		return "Hang on, your last submission is still being saved."
	case errors.Is(err, ErrUserNotFound):
		return "Your account was not found. Please register first."
	case errors.Is(err, ErrNoData):
		return "No check-ins yet. Complete your baseline questionnaire to see your readiness."
	case errors.As(err, &srv):
		if srv.Status == 500 {
			return "Something went wrong on our end. Please try again later."
		}
		return srv.Error()
	case errors.As(err, &tr):
		return "Could not reach the server. Check your connection and try again."
	default:
		return err.Error()
	}
}
