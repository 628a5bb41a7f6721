package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Controllers map these to HTTP
// statuses in one place instead of duplicating try/catch per handler.
var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrHotelContextRequired = errors.New("hotel context required")
	ErrNoRoleAssigned       = errors.New("no role assigned for this hotel")
)

// ValidationError covers missing required fields, invalid enum values
// and duplicate unique keys.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError rejects booking status changes outside the
// allowed transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking status transition: %s -> %s", e.From, e.To)
}
