package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return NewMissingParameterError("lat")
			},
			expected: "MISSING_PARAMETER: lat parameter is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return NewRemoteUnavailableError("weather provider call failed", cause)
			},
			expected: "REMOTE_UNAVAILABLE: weather provider call failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewMalformedRemoteResponseError("decode mandi response", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewValidationError("bad").Unwrap())
}

func TestTypeOf_WrappedChain(t *testing.T) {
	inner := NewRemoteUnavailableError("translation call failed", nil)
	wrapped := fmt.Errorf("translate: %w", inner)

	assert.Equal(t, ErrorTypeRemoteUnavailable, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestErrorTypeCheckers(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		missingParameter bool
		validation       bool
		notFound         bool
		remote           bool
		configuration    bool
	}{
		{
			name:             "MissingParameter",
			err:              NewMissingParameterError("text"),
			missingParameter: true,
		},
		{
			name:       "Validation",
			err:        NewValidationError("lat must be a number"),
			validation: true,
		},
		{
			name:     "NotFound",
			err:      NewNotFoundError("no such crop"),
			notFound: true,
		},
		{
			name:   "RemoteUnavailable",
			err:    NewRemoteUnavailableError("timeout", nil),
			remote: true,
		},
		{
			name:   "MalformedRemoteResponse",
			err:    fmt.Errorf("wrapped: %w", NewMalformedRemoteResponseError("bad json", nil)),
			remote: true,
		},
		{
			name:          "Configuration",
			err:           NewConfigurationError("SERVER_PORT invalid", nil),
			configuration: true,
		},
		{
			name: "PlainError",
			err:  fmt.Errorf("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missingParameter, IsMissingParameterError(tt.err))
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.remote, IsRemoteError(tt.err))
			assert.Equal(t, tt.configuration, IsConfigurationError(tt.err))
		})
	}
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeMissingParameter, "MISSING_PARAMETER"},
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeRemoteUnavailable, "REMOTE_UNAVAILABLE"},
		{ErrorTypeMalformedRemoteResponse, "MALFORMED_REMOTE_RESPONSE"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}
