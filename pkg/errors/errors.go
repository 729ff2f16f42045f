package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Request errors - raised before any cache or remote interaction
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeMissingParameter
	ErrorTypeValidation
	ErrorTypeNotFound

	// Remote collaborator errors - recovered by fallback or surfaced with detail
	ErrorTypeRemoteUnavailable
	ErrorTypeMalformedRemoteResponse

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeMissingParameter:
		return "MISSING_PARAMETER"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeRemoteUnavailable:
		return "REMOTE_UNAVAILABLE"
	case ErrorTypeMalformedRemoteResponse:
		return "MALFORMED_REMOTE_RESPONSE"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Request error constructors

// NewMissingParameterError reports a required request parameter that was not supplied.
func NewMissingParameterError(param string) *AppError {
	return New(ErrorTypeMissingParameter, fmt.Sprintf("%s parameter is required", param))
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

// Remote collaborator error constructors
func NewRemoteUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeRemoteUnavailable, message, cause)
}

func NewMalformedRemoteResponseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeMalformedRemoteResponse, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsMissingParameterError(err error) bool {
	return TypeOf(err) == ErrorTypeMissingParameter
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ErrorTypeConfiguration
}

// IsRemoteError reports whether err came from a remote collaborator, either
// unreachable or answering with a payload that could not be used.
func IsRemoteError(err error) bool {
	t := TypeOf(err)
	return t == ErrorTypeRemoteUnavailable || t == ErrorTypeMalformedRemoteResponse
}
