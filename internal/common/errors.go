// Package common provides shared errors and logging setup used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrUnknownBackend = errors.New("unknown storage backend")

	// Expense validation errors.
	ErrMissingID       = errors.New("missing expense id")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrMissingCategory = errors.New("missing category")
	ErrMissingDate     = errors.New("missing date")

	// Import validation errors.
	ErrWrongAppMarker  = errors.New("file was not produced by this application")
	ErrMissingSections = errors.New("file is missing the expenses or categories section")
	ErrNoValidRecords  = errors.New("file contains no valid records")
)

// UserError wraps an error with a message meant to be shown to the user
// verbatim.
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
