package models

import "errors"

// Service-level error taxonomy. Services return only these values (or a
// *ValidationError); raw store and transport errors are logged at the
// service boundary and collapsed into ErrInternal so that no internal
// detail ever reaches a caller.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrInternal     = errors.New("operation failed, try again")
)

// ValidationError carries per-field messages for malformed input. It is
// returned before any repository call is made.
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "invalid input data"
}
