// Package errors combines stdlib errors with pkg/errors stack traces and adds
// the retryable marker used by reminder dispatch.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// AsType is a generic version of As that returns the typed error and a boolean.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// retryableError marks a failure that a later attempt of the same work may not hit,
// such as storage being briefly unreachable.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }

func (e *retryableError) Unwrap() error { return e.err }

// Retryable wraps err with message and marks it retryable. It returns nil for a nil err.
func Retryable(err error, message string) error {
	if err == nil {
		return nil
	}

	return pkgerrors.Wrap(&retryableError{err: err}, message)
}

// IsRetryable reports whether err or anything it wraps was marked by Retryable.
func IsRetryable(err error) bool {
	_, ok := AsType[*retryableError](err)

	return ok
}
