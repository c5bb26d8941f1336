package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code the transport should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any
}

// NewHTTPError builds an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithDetails attaches structured details (e.g. field violations).
func (e *HTTPError) WithDetails(details any) *HTTPError {
	return &HTTPError{StatusCode: e.StatusCode, Message: e.Message, Details: details}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common transport errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an *HTTPError when one is in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
