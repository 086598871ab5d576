package types

import (
	"fmt"
	"strings"
)

// FieldViolation identifies one invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError reports every violated input constraint for a submission,
// not just the first. Surfaced directly to the user; never retried.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// HasField reports whether the named field is among the violations.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func NewValidationError(fields ...FieldViolation) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ServiceError indicates the calling layer misused the API, such as asking
// for recommendations without a valid eligibility result. Logged, not shown
// verbatim to the user.
type ServiceError struct {
	Op      string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func NewServiceError(op, message string) *ServiceError {
	return &ServiceError{Op: op, Message: message}
}

// NetworkError wraps a failed network call made by a surrounding collaborator
// (image fetching). The core classifier and recommender never raise it.
type NetworkError struct {
	URL       string
	Retryable bool
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
