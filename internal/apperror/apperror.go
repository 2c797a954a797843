// Package apperror defines the error taxonomy shared by all services.
// Every failure that crosses a service boundary is one of these kinds;
// callers match with errors.Is against the sentinel values.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrConflict             = errors.New("conflict")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrRestoreWindowExpired = errors.New("restore window expired")
	ErrInternal             = errors.New("internal error")
)

// Error carries a user-facing message and wraps one of the sentinel kinds.
// The cause is kept for logging but never serialized to callers.
type Error struct {
	kind    error
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// Cause returns the underlying failure, if any.
func (e *Error) Cause() error {
	return e.cause
}

func newError(kind error, msg string, cause error) *Error {
	return &Error{kind: kind, Message: msg, cause: cause}
}

func Validation(format string, args ...any) *Error {
	return newError(ErrValidation, fmt.Sprintf(format, args...), nil)
}

func Conflict(format string, args ...any) *Error {
	return newError(ErrConflict, fmt.Sprintf(format, args...), nil)
}

func Unauthenticated(format string, args ...any) *Error {
	return newError(ErrUnauthenticated, fmt.Sprintf(format, args...), nil)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(ErrUnauthorized, fmt.Sprintf(format, args...), nil)
}

func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, fmt.Sprintf(format, args...), nil)
}

func RestoreWindowExpired(format string, args ...any) *Error {
	return newError(ErrRestoreWindowExpired, fmt.Sprintf(format, args...), nil)
}

// Internal wraps an unexpected failure. The cause stays behind the boundary.
func Internal(cause error, format string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(format, args...), cause)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsUnauthenticated(err error) bool { return errors.Is(err, ErrUnauthenticated) }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsRestoreWindowExpired(err error) bool { return errors.Is(err, ErrRestoreWindowExpired) }

func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }
