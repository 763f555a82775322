// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the slotring library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrRingClosed      = fmt.Errorf("ring is closed")
	ErrLockFailed      = fmt.Errorf("lock acquisition failed")
	ErrCorrupted       = fmt.Errorf("ring accounting corrupted")
	ErrAllocFailed     = fmt.Errorf("storage allocation failed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeClosed
	ErrCodeLockFailed
	ErrCodeCorrupted
	ErrCodeAllocFailed
	ErrCodeInternal
)

// Error represents a structured error with code, context, and an
// optional wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithCause wraps the underlying error, typically one of the sentinel
// vars, so callers can keep matching with errors.Is.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
