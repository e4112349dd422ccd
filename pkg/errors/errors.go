package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Pattern table errors
	ErrMissingInput ErrorCode = "MISSING_INPUT"
	ErrRead         ErrorCode = "READ"
	ErrFormat       ErrorCode = "FORMAT"
	ErrCompile      ErrorCode = "COMPILE"
	ErrTableFormat  ErrorCode = "TABLE_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// Coder is implemented by errors that carry an ErrorCode. Error types
// outside this package (such as row errors from the parser) implement it
// so the helpers below can classify them.
type Coder interface {
	ErrorCode() ErrorCode
}

// PatsubError represents a structured error with code and details
type PatsubError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PatsubError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PatsubError) Unwrap() error {
	return e.Wrapped
}

// ErrorCode implements Coder
func (e *PatsubError) ErrorCode() ErrorCode {
	return e.Code
}

// Is implements errors.Is interface
func (e *PatsubError) Is(target error) bool {
	var targetErr *PatsubError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PatsubError with the given code and message
func New(code ErrorCode, message string) *PatsubError {
	return &PatsubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PatsubError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PatsubError {
	return &PatsubError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PatsubError
func Wrap(err error, code ErrorCode, message string) *PatsubError {
	if err == nil {
		return nil
	}
	return &PatsubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PatsubError {
	if err == nil {
		return nil
	}
	return &PatsubError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PatsubError) WithDetail(key string, value interface{}) *PatsubError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PatsubError) WithDetails(details map[string]interface{}) *PatsubError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode reports whether any error in err's chain carries code.
// A row error wrapping a compile failure matches both ErrTableFormat
// and ErrCompile.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		if c, ok := err.(Coder); ok && c.ErrorCode() == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetErrorCode returns the outermost error code in err's chain, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var c Coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PatsubError
func GetErrorDetails(err error) map[string]interface{} {
	var patsubErr *PatsubError
	if errors.As(err, &patsubErr) {
		return patsubErr.Details
	}
	return nil
}
