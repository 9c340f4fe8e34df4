package model

import "strings"

// ValidationError signals malformed request input: missing or non-positive
// credit fields, out-of-range thresholds, non-finite computed features. It is
// distinct from a business refusal, which is a normal decision outcome.
type ValidationError struct {
	Message string
	Fields  []string
}

// NewValidationError creates a ValidationError for the given fields.
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}
