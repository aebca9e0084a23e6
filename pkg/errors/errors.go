// Package errors defines the HTTP-aware error type used at delivery
// boundaries. Domain packages keep plain sentinel errors; delivery layers
// translate them into HTTPError via their mapError functions.
package errors

import "net/http"

// HTTPError carries the status code and client-facing message for an error
// response envelope.
type HTTPError struct {
	Status  int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{Status: status, Message: message}
}

// StatusOf returns the HTTP status for err: the embedded status for an
// HTTPError, 500 otherwise.
func StatusOf(err error) int {
	if he, ok := err.(HTTPError); ok {
		return he.Status
	}
	return http.StatusInternalServerError
}
