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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Resource folder errors
	ErrFolderInvalid    ErrorCode = "FOLDER_INVALID"
	ErrQualifierInvalid ErrorCode = "QUALIFIER_INVALID"
	ErrNoMatch          ErrorCode = "NO_MATCH"

	// Device errors
	ErrDeviceNotFound ErrorCode = "DEVICE_NOT_FOUND"
	ErrDeviceParse    ErrorCode = "DEVICE_PARSE"
	ErrDeviceState    ErrorCode = "DEVICE_STATE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// ResconfError represents a structured error with code and details
type ResconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ResconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ResconfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ResconfError) Is(target error) bool {
	var targetErr *ResconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ResconfError with the given code and message
func New(code ErrorCode, message string) *ResconfError {
	return &ResconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ResconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ResconfError {
	return &ResconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ResconfError
func Wrap(err error, code ErrorCode, message string) *ResconfError {
	if err == nil {
		return nil
	}
	return &ResconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ResconfError {
	if err == nil {
		return nil
	}
	return &ResconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ResconfError) WithDetail(key string, value interface{}) *ResconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ResconfError) WithDetails(details map[string]interface{}) *ResconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rcErr *ResconfError
	if errors.As(err, &rcErr) {
		return rcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ResconfError
func GetErrorCode(err error) ErrorCode {
	var rcErr *ResconfError
	if errors.As(err, &rcErr) {
		return rcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ResconfError
func GetErrorDetails(err error) map[string]interface{} {
	var rcErr *ResconfError
	if errors.As(err, &rcErr) {
		return rcErr.Details
	}
	return nil
}