// Package errors provides error types and utilities for owaspkit.
// It extends the standard errors package with context wrapping and a coarse
// classification (Kind) that callers use to pick exit codes and log levels.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates invalid input or configuration was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported indicates a requested feature or variant is not supported
	ErrUnsupported = errors.New("unsupported")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrMalformed indicates a record could not be parsed
	ErrMalformed = errors.New("malformed record")

	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates an operation was canceled before completion
	ErrCanceled = errors.New("operation canceled")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrServiceUnavailable indicates a service is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimit indicates the remote endpoint throttled the request
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrUnauthorized indicates the remote endpoint rejected the credentials
	ErrUnauthorized = errors.New("unauthorized")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, "open wordlist")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsUnsupported reports whether the error is an unsupported error
func IsUnsupported(err error) bool {
	return Is(err, ErrUnsupported)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsMalformed reports whether the error is a malformed record error
func IsMalformed(err error) bool {
	return Is(err, ErrMalformed)
}

// IsTimeout reports whether the error is a timeout, including context deadlines
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout) || Is(err, context.DeadlineExceeded)
}

// IsCanceled reports whether the error is a cancellation, including context cancellation
func IsCanceled(err error) bool {
	return Is(err, ErrCanceled) || Is(err, context.Canceled)
}

// IsConnectionFailed reports whether the error is a connection failed error
func IsConnectionFailed(err error) bool {
	return Is(err, ErrConnectionFailed)
}

// IsServiceUnavailable reports whether the error is a service unavailable error
func IsServiceUnavailable(err error) bool {
	return Is(err, ErrServiceUnavailable)
}

// IsRateLimit reports whether the error is a rate limit error
func IsRateLimit(err error) bool {
	return Is(err, ErrRateLimit)
}

// IsUnauthorized reports whether the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return Is(err, ErrUnauthorized)
}

// ErrorKind is the coarse class of a failure.
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindConfiguration ErrorKind = "configuration"
	KindResource      ErrorKind = "resource"
	KindMalformed     ErrorKind = "malformed"
	KindCanceled      ErrorKind = "canceled"
	KindInternal      ErrorKind = "internal"
)

// Kind classifies err. Configuration and resource errors are fatal to a run,
// malformed records are recoverable, and anything unrecognised is internal.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case IsInvalidInput(err), IsUnsupported(err):
		return KindConfiguration
	case IsNotFound(err):
		return KindResource
	case IsMalformed(err):
		return KindMalformed
	case IsCanceled(err), IsTimeout(err):
		return KindCanceled
	default:
		return KindInternal
	}
}
