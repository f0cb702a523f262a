package domain

import "fmt"

// ValidationError reports a missing or malformed required field. The HTTP
// layer is responsible for turning it into user-facing text.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Missing builds a ValidationError for an empty required field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required"}
}

// Invalid builds a ValidationError for a malformed field value.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
