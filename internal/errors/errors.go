package errors

import "net/http"

// Error is an API-visible failure: an HTTP status, a user-facing message and,
// for validation failures, every violated rule. Anything that is not an
// *Error reaches the client as a generic 500.
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Details []string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidInput reports the violated validation rules (HTTP 400). All rules
// are listed so a client can fix everything in one round trip.
func InvalidInput(details ...string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

// Unauthenticated rejects a request whose identity could not be established
// (HTTP 401). Callers pick from a fixed set of messages that never reveal
// which verification step failed.
func Unauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden rejects an operation on a record the caller does not own (HTTP 403).
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports an unknown record id (HTTP 404). resource is the display
// name, e.g. "Workout".
func NotFound(resource string) *Error {
	return &Error{Status: http.StatusNotFound, Message: resource + " not found"}
}

// Internal hides unexpected failure detail from the client (HTTP 500).
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}
