// Package errors defines the error type HTTP handlers hand to pkg/response.
package errors

import "net/http"

// HTTPError is an error with the HTTP status it should be reported as.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. code must be a valid HTTP status.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
