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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Argument errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Hosts file errors
	ErrHostsUnavailable ErrorCode = "HOSTS_UNAVAILABLE"
	ErrReadFail         ErrorCode = "READ_FAIL"
	ErrWriteFail        ErrorCode = "WRITE_FAIL"

	// Backup errors
	ErrBackupFail  ErrorCode = "BACKUP_FAIL"
	ErrRestoreFail ErrorCode = "RESTORE_FAIL"
)

// HostboiError represents a structured error with code and details
type HostboiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HostboiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HostboiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HostboiError) Is(target error) bool {
	var targetErr *HostboiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HostboiError with the given code and message
func New(code ErrorCode, message string) *HostboiError {
	return &HostboiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HostboiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HostboiError {
	return &HostboiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HostboiError
func Wrap(err error, code ErrorCode, message string) *HostboiError {
	if err == nil {
		return nil
	}
	return &HostboiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HostboiError {
	if err == nil {
		return nil
	}
	return &HostboiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HostboiError) WithDetail(key string, value interface{}) *HostboiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// The outermost HostboiError in the chain decides.
func IsErrorCode(err error, code ErrorCode) bool {
	var hbErr *HostboiError
	if errors.As(err, &hbErr) {
		return hbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HostboiError
func GetErrorCode(err error) ErrorCode {
	var hbErr *HostboiError
	if errors.As(err, &hbErr) {
		return hbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HostboiError
func GetErrorDetails(err error) map[string]interface{} {
	var hbErr *HostboiError
	if errors.As(err, &hbErr) {
		return hbErr.Details
	}
	return nil
}
