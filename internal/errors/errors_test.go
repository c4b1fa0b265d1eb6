package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeAlreadyRunning, "already_running"},
		{ErrorTypeNotRunning, "not_running"},
		{ErrorTypeOverlap, "overlap"},
		{ErrorTypeParse, "parse"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeCorruptData, "corrupt_data"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeValidation, "validation"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestNewAlreadyRunningError(t *testing.T) {
	err := NewAlreadyRunningError("work")

	assert.True(t, err.IsType(ErrorTypeAlreadyRunning))
	assert.Equal(t, "ALREADY_RUNNING", err.Code)
	assert.Contains(t, err.Error(), "work")

	ns, ok := err.GetContext("namespace")
	assert.True(t, ok)
	assert.Equal(t, "work", ns)
}

func TestNewNotRunningError(t *testing.T) {
	err := NewNotRunningError("work")

	assert.True(t, err.IsType(ErrorTypeNotRunning))
	assert.Contains(t, err.Message, "not running")
}

func TestNewOverlapError(t *testing.T) {
	err := NewOverlapError("work")

	assert.True(t, err.IsType(ErrorTypeOverlap))
	assert.Equal(t, "new entry overlaps an existing one", err.Message)
}

func TestNewParseError_CarriesInput(t *testing.T) {
	err := NewParseError("not-a-time", nil)

	assert.True(t, err.IsType(ErrorTypeParse))
	assert.Contains(t, err.Message, "not-a-time")

	input, ok := err.GetContext("input")
	assert.True(t, ok)
	assert.Equal(t, "not-a-time", input)
}

func TestNewCorruptDataError_Unwraps(t *testing.T) {
	cause := fmt.Errorf("yaml: mapping values are not allowed")
	err := NewCorruptDataError("work.yaml", cause)

	assert.True(t, err.IsType(ErrorTypeCorruptData))
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "caused by")
}

func TestIsErrorType(t *testing.T) {
	err := NewStorageError("write file", fmt.Errorf("disk full"))

	assert.True(t, IsErrorType(err, ErrorTypeStorage))
	assert.False(t, IsErrorType(err, ErrorTypeOverlap))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeStorage))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	inner := NewNotRunningError("work")
	wrapped := fmt.Errorf("command failed: %w", inner)

	assert.True(t, IsErrorType(wrapped, ErrorTypeNotRunning))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(NewNotFoundError("namespace", "work"))
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "storage errors are generic",
			err:      NewStorageError("write file", fmt.Errorf("disk full")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "overlap errors keep their message",
			err:      NewOverlapError("work"),
			expected: "new entry overlaps an existing one",
		},
		{
			name:     "plain errors pass through",
			err:      fmt.Errorf("plain failure"),
			expected: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "ENTRY_OVERLAP", GetErrorCode(NewOverlapError("work")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(fmt.Errorf("plain")))
}
