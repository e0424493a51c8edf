// Package apperr defines the error taxonomy shared by all domain services.
// Services wrap these sentinels with %w; the HTTP boundary maps them to
// status codes via errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid marks malformed or missing input rejected before any store call.
	ErrInvalid = errors.New("invalid input")
	// ErrUnauthorized marks missing or bad credentials or tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks an authenticated caller acting on a resource it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a referenced entity that is absent or soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation such as a duplicate username.
	ErrConflict = errors.New("conflict")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Forbiddenf wraps ErrForbidden with a formatted message.
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

// Invalidf wraps ErrInvalid with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalid)...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// Unauthorizedf wraps ErrUnauthorized with a formatted message.
func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnauthorized)...)
}
