package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can branch
// on the kind with errors.Is without knowing the concrete failure.
var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error is a registry failure with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Validationf builds an ad-hoc validation error.
func Validationf(format string, args ...any) *Error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

var (
	ErrEmptyCredentials = newError(ErrValidation, "Username and password are required")
	ErrUsernameHasSpace = newError(ErrValidation, "Username must not contain whitespace")
	ErrUsernameTaken    = newError(ErrConflict, "User already exists")
	ErrUserNotFound     = newError(ErrNotFound, "User not found")

	ErrSessionNotFound = newError(ErrNotFound, "Session not found")

	ErrEmptyTitle   = newError(ErrValidation, "Title is required")
	ErrTitleTaken   = newError(ErrConflict, "Todo already exists")
	ErrTodoNotFound = newError(ErrNotFound, "Todo is not exist!")

	ErrEmptyDescription = newError(ErrValidation, "Description is required")
	ErrNegativePriority = newError(ErrValidation, "Priority must not be negative")
	ErrInvalidPriority  = newError(ErrValidation, "Priority must be a finite number")
	ErrDescriptionTaken = newError(ErrConflict, "Task already exists")
	ErrTaskNotFound     = newError(ErrNotFound, "Task is not exist!")
)
