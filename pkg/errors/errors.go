package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be rendered with.
// Delivery layers produce these from their mapError functions; pkg/response
// translates them into the standard envelope.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}
