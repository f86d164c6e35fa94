package models

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInProgress = errors.New("payment already in progress for booking")
	ErrInitiationFailed  = errors.New("payment initiation failed")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNoActiveAttempt   = errors.New("no payment in progress for booking")
	ErrCancelledByCaller = errors.New("payment cancelled by caller")
	ErrAttemptNotFound   = errors.New("payment attempt not found")
)

// ValidationError reports bad caller input. It is raised before any gateway
// call is made.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PollingError is a transient status query failure. It is logged per tick
// and never surfaced to callers.
type PollingError struct {
	CorrelationID string
	Attempt       int
	Err           error
}

func (e *PollingError) Error() string {
	return fmt.Sprintf("status query %d for %s failed: %v", e.Attempt, e.CorrelationID, e.Err)
}

func (e *PollingError) Unwrap() error {
	return e.Err
}
