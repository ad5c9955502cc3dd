package model

import (
	"errors"
	"net/http"
)

// ApiError carries the HTTP status a failure maps to. Handlers never build
// status codes themselves; they surface whatever error the usecase returned
// and the respond helper translates it into the envelope.
type ApiError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errs       []string `json:"errors,omitempty"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	if message == "" {
		message = "Something went wrong"
	}
	return &ApiError{StatusCode: statusCode, Message: message}
}

func NewValidationError(message string) *ApiError {
	return NewApiError(http.StatusBadRequest, message)
}

func NewAuthenticationError(message string) *ApiError {
	return NewApiError(http.StatusUnauthorized, message)
}

func NewAuthorizationError(message string) *ApiError {
	return NewApiError(http.StatusForbidden, message)
}

func NewNotFoundError(message string) *ApiError {
	return NewApiError(http.StatusNotFound, message)
}

func NewConflictError(message string) *ApiError {
	return NewApiError(http.StatusConflict, message)
}

func NewUpstreamError(message string) *ApiError {
	return NewApiError(http.StatusBadGateway, message)
}

// AsApiError unwraps err into an *ApiError when possible.
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
