package api

import (
	"errors"
	"net/http"

	errorspkg "farmerassist.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statusFor maps an application error onto an HTTP status and a client-facing message
func statusFor(err error) (int, ErrorResponse) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}

	response := ErrorResponse{Code: appErr.Type.String()}

	switch appErr.Type {
	case errorspkg.ErrorTypeMissingParameter, errorspkg.ErrorTypeValidation:
		response.Error = appErr.Message
		return http.StatusBadRequest, response
	case errorspkg.ErrorTypeNotFound:
		response.Error = appErr.Message
		return http.StatusNotFound, response
	case errorspkg.ErrorTypeRemoteUnavailable:
		response.Error = "External service unavailable"
		return http.StatusServiceUnavailable, response
	case errorspkg.ErrorTypeMalformedRemoteResponse:
		response.Error = "External service returned an invalid response"
		return http.StatusServiceUnavailable, response
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, response := statusFor(err)
	c.JSON(statusCode, response)
}
