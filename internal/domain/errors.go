package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("validation error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrStateConflict        = errors.New("state conflict")
	ErrThresholdUnavailable = errors.New("threshold unavailable")
	ErrEncryption           = errors.New("encryption error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateConflictError reports an operation that is not valid for the current
// record state, or a lost optimistic-version race. Callers may retry after
// re-reading the record.
type StateConflictError struct {
	Op    string
	State RecordState
}

func (e *StateConflictError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%s: concurrent modification, re-read and retry", e.Op)
	}
	return fmt.Sprintf("%s: not allowed in state %s", e.Op, e.State)
}

func (e *StateConflictError) Unwrap() error { return ErrStateConflict }

// NewStateConflict creates a StateConflictError for op attempted in state.
func NewStateConflict(op string, state RecordState) *StateConflictError {
	return &StateConflictError{Op: op, State: state}
}
