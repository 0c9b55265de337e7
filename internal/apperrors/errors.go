package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates that credentials were missing or rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSessionExpired indicates that the core banking API rejected the session token.
// Receiving it means the stored session has already been cleared.
var ErrSessionExpired = errors.New("session expired")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrTransport indicates that the core banking API could not be reached.
var ErrTransport = errors.New("banking service unavailable")

// ErrUpstream indicates an unclassified failure reported by the core banking API.
var ErrUpstream = errors.New("banking service error")

// ErrIdentityUnresolved indicates that the current user's roles are not known yet.
var ErrIdentityUnresolved = errors.New("identity not resolved")

// ErrSubmitInFlight indicates that a form already has a submission in progress.
var ErrSubmitInFlight = errors.New("submission already in progress")

// APIError is a failure response returned by the core banking API.
// It unwraps to one of the sentinel errors above so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// NewAPIError classifies an HTTP status returned by the core banking API.
func NewAPIError(status int, message string) *APIError {
	return &APIError{StatusCode: status, Message: message, Kind: KindForStatus(status)}
}

// KindForStatus maps an upstream HTTP status to its sentinel error.
func KindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrUpstream
	}
}

// Message returns the server supplied message of err when it carries one,
// otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return fallback
}

// ValidationError is a locally detected input problem. It unwraps to ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
