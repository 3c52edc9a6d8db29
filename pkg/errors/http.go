package errors

import "net/http"

// HTTPError is an error with a fixed response code and status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError defaults statusCode to 400 when zero.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(401, "Unauthorized", http.StatusUnauthorized)
}

func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(403, "Forbidden", http.StatusForbidden)
}

func NewNotFoundHTTPError(message string) *HTTPError {
	return NewHTTPError(404, message, http.StatusNotFound)
}

func (e *HTTPError) Error() string {
	return e.Message
}
