package civil

import (
	"errors"
	"fmt"
)

// Error represents a failed conversion or clock read.
//
// Error kinds:
//   - CLOCK_UNAVAILABLE: the platform could not supply the current instant.
//   - CONVERSION_FAILURE: the platform's local-time resolution rejected an
//     instant (e.g. the resulting year is unrepresentable).
//   - INVALID_FIELD: caller-supplied calendar fields are outside their valid
//     ranges on the inverse path.
//
// Failures are reported synchronously to the immediate caller and never
// retried or logged internally; recovery policy belongs to the caller.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending calendar field (INVALID_FIELD only).
	Field string

	// Value is the offending field value (INVALID_FIELD only).
	Value int64
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeClockUnavailable indicates the real-time clock read failed.
	ErrCodeClockUnavailable ErrorCode = "CLOCK_UNAVAILABLE"

	// ErrCodeConversionFailure indicates local-time resolution rejected an instant.
	ErrCodeConversionFailure ErrorCode = "CONVERSION_FAILURE"

	// ErrCodeInvalidField indicates an out-of-range calendar field.
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s, value=%d)", e.Code, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsClockUnavailable returns true if the error is a clock read failure.
// Uses errors.As to handle wrapped errors.
func IsClockUnavailable(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeClockUnavailable
}

// IsConversionFailure returns true if the error is a local-time resolution failure.
// Uses errors.As to handle wrapped errors.
func IsConversionFailure(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeConversionFailure
}

// IsInvalidField returns true if the error is an out-of-range field rejection.
// Uses errors.As to handle wrapped errors.
func IsInvalidField(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeInvalidField
}

// NewClockUnavailableError creates an Error for a failed clock read.
func NewClockUnavailableError(message string) *Error {
	return &Error{Code: ErrCodeClockUnavailable, Message: message}
}

// NewConversionFailureError creates an Error for a rejected local-time resolution.
func NewConversionFailureError(message string) *Error {
	return &Error{Code: ErrCodeConversionFailure, Message: message}
}

// NewInvalidFieldError creates an Error for an out-of-range calendar field.
func NewInvalidFieldError(field string, value int64, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidField,
		Message: message,
		Field:   field,
		Value:   value,
	}
}
