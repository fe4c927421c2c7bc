// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP boundary. Services return these; the boundary maps them to a
// status code once, via errors.As. Anything that is not an *Error surfaces
// as a generic 500.
package apperr

import "net/http"

// Error carries the HTTP status an error maps to, a client-safe message and
// optional per-field detail lines.
type Error struct {
	Status  int
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an error with an explicit status.
func New(status int, message string, details ...string) *Error {
	return &Error{Status: status, Message: message, Details: details}
}

// BadRequest marks malformed input or a failed validation guard (400).
func BadRequest(message string, details ...string) *Error {
	return New(http.StatusBadRequest, message, details...)
}

// Unauthorized marks a missing/invalid credential or a wrong current
// password (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden is reserved; no flow maps to it today (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound marks an entity that is absent or owned by someone else; the two
// cases are deliberately indistinguishable (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict marks duplicate names, in-use deletions and duplicate signup
// emails (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}
