package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Collector accumulates validation errors without failing on first.
type Collector struct {
	errors []FieldError
}

// Add appends a validation error to the collector if non-nil.
func (c *Collector) Add(err *FieldError) {
	if err != nil {
		c.errors = append(c.errors, *err)
	}
}

// HasErrors returns true if the collector has accumulated any errors.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns all accumulated validation errors.
func (c *Collector) Errors() []FieldError {
	return c.errors
}

// Required returns an error if the value is empty or whitespace-only.
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		}
	}
	return nil
}

// Email returns an error if the value does not match a simple
// text@text.text shape. Intentionally loose; the backend revalidates.
func Email(field, value string) *FieldError {
	if err := Required(field, value); err != nil {
		return err
	}
	at := strings.Index(value, "@")
	if at < 1 {
		return invalidEmail(field)
	}
	domain := value[at+1:]
	dot := strings.Index(domain, ".")
	if dot < 1 || dot == len(domain)-1 || strings.Contains(domain, "@") {
		return invalidEmail(field)
	}
	return nil
}

func invalidEmail(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Message: "must be a valid email address",
	}
}

// MinLength returns an error if the value has fewer than min runes.
func MinLength(field, value string, min int) *FieldError {
	if utf8.RuneCountInString(value) < min {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		}
	}
	return nil
}

// MaxLength returns an error if the value exceeds max runes.
func MaxLength(field, value string, max int) *FieldError {
	if utf8.RuneCountInString(value) > max {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("exceeds maximum length of %d characters", max),
		}
	}
	return nil
}

// Truncate clips the value to at most max runes. Input past the boundary
// is dropped rather than rejected; truncating twice is a no-op.
func Truncate(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max])
}

// Enum returns an error if the value is not in the allowed list.
func Enum(field, value string, allowed []string) *FieldError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// Selected returns an error if no choice has been made from a closed set.
// Unlike Enum, the message reads as a selection prompt.
func Selected(field, value string) *FieldError {
	if value == "" {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("please select your %s", field),
		}
	}
	return nil
}

// IntInRange returns an error if the value is not an integer in [min, max].
func IntInRange(field, value string, min, max int) *FieldError {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &FieldError{
			Field:   field,
			Message: "must be a whole number",
		}
	}
	if n < min || n > max {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		}
	}
	return nil
}

// SliderValue returns an error if the value does not parse as a number
// in [0, 10]. Slider readings arrive as decimal strings.
func SliderValue(field, value string) *FieldError {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return &FieldError{
			Field:   field,
			Message: "must be a number",
		}
	}
	if f < 0 || f > 10 {
		return &FieldError{
			Field:   field,
			Message: "must be between 0 and 10",
		}
	}
	return nil
}
