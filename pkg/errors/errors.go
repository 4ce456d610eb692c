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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Path errors
	ErrPathResolve ErrorCode = "PATH_RESOLVE"

	// Setup capability errors
	ErrSetupExec ErrorCode = "SETUP_EXEC"

	// Performance curve errors
	ErrCurveInput  ErrorCode = "CURVE_INPUT"
	ErrCurveInterp ErrorCode = "CURVE_INTERP"
)

// TrtpyError represents a structured error with code and details
type TrtpyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TrtpyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TrtpyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TrtpyError) Is(target error) bool {
	var targetErr *TrtpyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TrtpyError with the given code and message
func New(code ErrorCode, message string) *TrtpyError {
	return &TrtpyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TrtpyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TrtpyError {
	return &TrtpyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TrtpyError
func Wrap(err error, code ErrorCode, message string) *TrtpyError {
	if err == nil {
		return nil
	}
	return &TrtpyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TrtpyError {
	if err == nil {
		return nil
	}
	return &TrtpyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TrtpyError) WithDetail(key string, value interface{}) *TrtpyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var trtpyErr *TrtpyError
	if errors.As(err, &trtpyErr) {
		return trtpyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TrtpyError
func GetErrorCode(err error) ErrorCode {
	var trtpyErr *TrtpyError
	if errors.As(err, &trtpyErr) {
		return trtpyErr.Code
	}
	return ErrUnknown
}
