package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned when an order is not found
	ErrOrderNotFound = errors.New("order not found")

	// ErrBatchNotFound is returned when a batch is not found
	ErrBatchNotFound = errors.New("batch not found")

	// ErrConflict is returned when a conditional write loses a race.
	// Callers retry the whole operation from scratch, never mid-sequence.
	ErrConflict = errors.New("conditional write conflict")

	// ErrNoPaymentAddress is returned when the payment address pool is empty
	ErrNoPaymentAddress = errors.New("no free payment address")

	// ErrInvalidTransition is returned for an order status transition
	// outside the state machine
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// ValidationError is returned for malformed input, rejected before any store access
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotEligibleError is returned when an address cannot mint from a batch.
// It carries the machine-readable reason so the caller can decide whether to
// prompt the user or escalate; it is never retried.
type NotEligibleError struct {
	Reason           EligibilityReason
	WhitelistedBatch int
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible: %s", e.Reason)
}
