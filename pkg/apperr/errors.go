package apperr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every *Error unwraps to exactly one of these so callers
// can branch with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries the failing operation and a caller-facing message.
type Error struct {
	Op      string // e.g. "orders.Place"
	Kind    error  // one of the sentinels above
	Message string // safe to return to the client
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(op, format string, args ...interface{}) *Error {
	return newError(ErrValidation, op, format, args...)
}

func NotFound(op, format string, args ...interface{}) *Error {
	return newError(ErrNotFound, op, format, args...)
}

func Conflict(op, format string, args ...interface{}) *Error {
	return newError(ErrConflict, op, format, args...)
}

func Unauthorized(op, format string, args ...interface{}) *Error {
	return newError(ErrUnauthorized, op, format, args...)
}

func Forbidden(op, format string, args ...interface{}) *Error {
	return newError(ErrForbidden, op, format, args...)
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind error, op, message string, err error) *Error {
	return &Error{Op: op, Kind: kind, Message: message, Err: err}
}

// Message returns the client-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func IsForbidden(err error) bool    { return errors.Is(err, ErrForbidden) }
