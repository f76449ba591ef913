// Package notify abstracts the platform notification-permission provider.
// The wizard only needs the granted/denied outcome to decide whether
// reminders can be scheduled; token transport to the backend is not wired.
package notify

// Status is the platform permission state.
type Status string

const (
	StatusUndetermined Status = "undetermined"
	StatusGranted      Status = "granted"
	StatusDenied       Status = "denied"
)

// Provider is the external permission collaborator.
type Provider interface {
	// PermissionStatus returns the current permission state without
	// prompting.
	PermissionStatus() (Status, error)

	// RequestPermission prompts the user if the state is undetermined and
	// returns the resulting state.
	RequestPermission() (Status, error)

	// DeviceToken returns the push token once permission is granted.
	DeviceToken() (string, error)
}

// Granted resolves the permission flow to a boolean: request only when
// undetermined, then report whether notifications may be sent. Errors from
// the provider degrade to denied; onboarding proceeds either way.
func Granted(p Provider) bool {
	status, err := p.PermissionStatus()
	if err != nil {
		return false
	}
	if status == StatusUndetermined {
		status, err = p.RequestPermission()
		if err != nil {
			return false
		}
	}
	return status == StatusGranted
}

// Static is a fixed-response provider for tests and headless use.
type Static struct {
	Status Status
	Token  string
}

// PermissionStatus returns the configured status.
func (s Static) PermissionStatus() (Status, error) { return s.Status, nil }

// RequestPermission promotes an undetermined status to granted.
func (s Static) RequestPermission() (Status, error) {
	if s.Status == StatusUndetermined {
		return StatusGranted, nil
	}
	return s.Status, nil
}

// DeviceToken returns the configured token.
func (s Static) DeviceToken() (string, error) { return s.Token, nil }
