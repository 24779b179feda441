package domain

import "errors"

// Sentinel errors returned by services and repositories. The API layer maps
// each of these to a deterministic HTTP status code.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrClanNotFound       = errors.New("clan not found")
	ErrHeroNotFound       = errors.New("hero not found")
	ErrItemNotFound       = errors.New("item not found")
)

// ValidationError reports a rejected input value, scoped to a field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidationError builds a field-scoped validation failure.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a uniqueness or single-membership violation.
type ConflictError struct {
	Field  string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Field + " already in use"
}

// NewConflictError builds a conflict on the given field with an optional
// human-readable reason.
func NewConflictError(field, reason string) *ConflictError {
	return &ConflictError{Field: field, Reason: reason}
}
