// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Callers match with errors.Is.
var (
	// ErrValidation marks caller-input problems: empty names, non-positive
	// amounts, out-of-range days, unresolved category references.
	ErrValidation = errors.New("validation failed")
	// ErrReferentialIntegrity marks a delete blocked by a dependent record.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	// ErrInvalidFormat marks a malformed or incomplete restore file.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrStorageUnavailable marks a persistence read, write or clear failure.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Validationf returns an ErrValidation wrapped with a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsUserFacing reports whether err belongs to the taxonomy the CLI reports
// verbatim instead of as an internal failure.
func IsUserFacing(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrReferentialIntegrity) ||
		errors.Is(err, ErrInvalidFormat)
}
