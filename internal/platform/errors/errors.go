// Package errors provides error types and utilities for ispdb.
// It extends the standard errors package with sentinels used to classify
// lookup failures before they are logged and collapsed into "no document".
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidEmail indicates the email address failed syntax validation
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUnexpectedStatus indicates an HTTP response other than 200 OK
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMissingMarker indicates a body without a client configuration document
	ErrMissingMarker = errors.New("no client configuration in body")

	// ErrNoRecords indicates a DNS answer without usable records
	ErrNoRecords = errors.New("no records found")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
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
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
//
// Example:
//
//	if err != nil {
//		return errors.Wrapf(err, "lookup MX for %s", domain)
//	}
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsNoRecords reports whether the error is an empty DNS answer
func IsNoRecords(err error) bool {
	return Is(err, ErrNoRecords)
}

// IsSoft reports whether err belongs to the expected failure class of a
// lookup: network faults, bad statuses, missing markers and empty answers.
func IsSoft(err error) bool {
	switch {
	case Is(err, ErrTimeout),
		Is(err, ErrConnectionFailed),
		Is(err, ErrUnexpectedStatus),
		Is(err, ErrMissingMarker),
		Is(err, ErrNoRecords),
		Is(err, ErrInvalidResponse):
		return true
	default:
		return false
	}
}
