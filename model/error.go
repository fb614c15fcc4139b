// Package model defines the data model of the application.
package model

import "errors"

// Sentinel errors for missing resources.
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrProjectNotFound = errors.New("project not found")
)

// ValidationError marks input that failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
