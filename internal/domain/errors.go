package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrInvalidRequest is returned when a lookup cannot start (empty headword).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrSourceUnavailable marks a dictionary or translation fetch failure.
	// The orchestrator recovers from it locally.
	ErrSourceUnavailable = errors.New("lookup source unavailable")
	// ErrNotionSyncFailed means the entry was kept locally but the remote
	// save failed; the entry is queued for background retry.
	ErrNotionSyncFailed = errors.New("notion sync failed")
	// ErrNotionNotConfigured means a Notion save was attempted without credentials.
	ErrNotionNotConfigured = errors.New("notion not configured")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError

	// kind is an optional extra sentinel the error also matches.
	kind error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() []error {
	if e.kind != nil {
		return []error{ErrValidation, e.kind}
	}
	return []error{ErrValidation}
}

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

// NewInvalidRequestError creates a ValidationError that also matches ErrInvalidRequest.
func NewInvalidRequestError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
		kind:   ErrInvalidRequest,
	}
}
