package apierrors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized machine-readable error code. Callers
// use it to decide whether to retry, prompt the user or escalate.
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeNotEligible      ErrorCode = "not_eligible"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeStaleState       ErrorCode = "stale_state"

	// Server errors (5xx)
	ErrCodeStorageFailure ErrorCode = "storage_failure"
	ErrCodeInternalError  ErrorCode = "internal_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewNotEligibleError(reason string) *APIError {
	return &APIError{
		Code:    ErrCodeNotEligible,
		Message: "Not eligible",
		Details: reason,
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewStaleStateError marks a request that lost against a concurrent update;
// the caller should re-read and retry if still applicable.
func NewStaleStateError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeStaleState,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewStorageFailureError marks a transient store failure; the caller may
// retry the whole operation from scratch.
func NewStorageFailureError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeStorageFailure,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
