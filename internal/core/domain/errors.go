package domain

import (
	"errors"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries the ordered list of per-field messages produced
// when a document fails schema validation. It is returned by the persistence
// layer before anything is written.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// NewValidationError wraps a list of field messages.
func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}
