package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the domain, services and repositories wraps exactly one of them.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrInvalidReference = errors.New("invalid reference")
	ErrPersistence      = errors.New("persistence failure")
	ErrValidation       = errors.New("validation failed")
)

var (
	ErrDeviceNotFound        = fmt.Errorf("device %w", ErrNotFound)
	ErrLocationNotFound      = fmt.Errorf("location %w", ErrNotFound)
	ErrDuplicateLocationName = fmt.Errorf("location name already in use: %w", ErrDuplicateName)
	ErrUnknownLocation       = fmt.Errorf("location does not exist: %w", ErrInvalidReference)
	ErrInvalidID             = fmt.Errorf("malformed identifier: %w", ErrValidation)
	ErrDatabaseConnection    = fmt.Errorf("database connection error: %w", ErrPersistence)
	ErrDatabaseQuery         = fmt.Errorf("database query error: %w", ErrPersistence)
	ErrTransaction           = fmt.Errorf("transaction error: %w", ErrPersistence)
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Errors: make([]ValidationError, 0)}
}

func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Field+": "+e.Message)
	}

	return strings.Join(parts, "; ")
}

func (v *ValidationErrors) Unwrap() error {
	return ErrValidation
}

// OrNil returns nil when nothing was recorded so the caller can return it directly.
func (v *ValidationErrors) OrNil() error {
	if !v.HasErrors() {
		return nil
	}

	return v
}
