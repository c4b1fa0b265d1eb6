package errors

import (
	"errors"
	"fmt"
)

// NewAlreadyRunningError creates an error for clocking in while a clock runs
func NewAlreadyRunningError(namespace string) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyRunning,
		Message: fmt.Sprintf("a clock is already running for namespace '%s'", namespace),
		Code:    "ALREADY_RUNNING",
		Context: map[string]interface{}{
			"namespace": namespace,
		},
	}
}

// NewNotRunningError creates an error for clock-out or abort without a running clock
func NewNotRunningError(namespace string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotRunning,
		Message: fmt.Sprintf("clock is not running for namespace '%s'", namespace),
		Code:    "NOT_RUNNING",
		Context: map[string]interface{}{
			"namespace": namespace,
		},
	}
}

// NewOverlapError creates an error for an entry colliding with an existing one
func NewOverlapError(namespace string) *AppError {
	return &AppError{
		Type:    ErrorTypeOverlap,
		Message: "new entry overlaps an existing one",
		Code:    "ENTRY_OVERLAP",
		Context: map[string]interface{}{
			"namespace": namespace,
		},
	}
}

// NewParseError creates an error for unparseable user input, carrying the offending text
func NewParseError(input string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("unable to parse datetime '%s'", input),
		Code:    "PARSE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewCorruptDataError creates an error for stored data that fails to deserialize
func NewCorruptDataError(key string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptData,
		Message: fmt.Sprintf("stored data for '%s' is corrupt", key),
		Code:    "CORRUPT_DATA",
		Cause:   cause,
		Context: map[string]interface{}{
			"key": key,
		},
	}
}

// NewStorageError creates an error for a failing storage operation
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		case ErrorTypeCorruptData:
			return appErr.Message + ". Edit or remove the file to continue."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
