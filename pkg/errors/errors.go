package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so cloned messages still compare equal.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || e == nil || other == nil {
		return false
	}
	return e.Code == other.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for lookup outcomes.
var (
	ErrConfiguration    = New("CONFIGURATION_ERROR", http.StatusInternalServerError, "Google credentials not loaded")
	ErrMissingStudentID = New("BAD_REQUEST", http.StatusBadRequest, "Missing student ID")
	ErrStudentNotFound  = New("NOT_FOUND", http.StatusNotFound, "Student not found")
	ErrUnclassified     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUnavailable      = New("UNAVAILABLE", http.StatusServiceUnavailable, "store unavailable")
	ErrCacheMiss        = errors.New("cache miss")
)

// NotFound returns the not-found error for a specific student identifier.
func NotFound(studentID string) *Error {
	return Clone(ErrStudentNotFound, fmt.Sprintf("Student %s not found", studentID))
}

// Unclassified wraps an unexpected failure, exposing its text as the message.
func Unclassified(err error) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, ErrUnclassified.Code, ErrUnclassified.Status, err.Error())
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Unclassified(err)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
