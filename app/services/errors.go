package services

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested record does not exist. Handlers map
// it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrTerminalState signals an attempt to mutate or re-complete an assessment
// that has already reached completed or cancelled.
var ErrTerminalState = errors.New("assessment is in a terminal state")

// ErrAssessmentOpen signals a create while the student already has an
// in-progress assessment.
var ErrAssessmentOpen = errors.New("student already has an assessment in progress")

// ValidationError carries per-field validation failures so handlers can
// return them as a 400 body instead of a bare null.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
