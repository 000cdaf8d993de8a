// Package result defines the uniform success/error contract returned by every
// service operation. Errors carry a machine-readable code, a human-readable
// message, and optional structured details (e.g. field-level validation issues).
package result

import (
	"errors"
	"fmt"

	"github.com/hmorales/wedplan/internal/storage"
)

// Code classifies a service failure.
type Code string

const (
	// CodeValidation indicates input failed schema validation or a
	// cross-field business rule. Never retried.
	CodeValidation Code = "VALIDATION_ERROR"

	// CodeDatabase indicates a transport or query failure from the
	// persistence layer. Surfaced with the underlying message.
	CodeDatabase Code = "DATABASE_ERROR"

	// CodeNotFound indicates the requested entity does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeConflict indicates a uniqueness or overlap violation.
	CodeConflict Code = "CONFLICT"

	// CodePartialImport indicates a CSV import where all rows validated
	// but one or more failed to persist. Carries both successes and
	// failures in Details.
	CodePartialImport Code = "PARTIAL_IMPORT_FAILURE"

	// CodeUnknown indicates an uncaught failure.
	CodeUnknown Code = "UNKNOWN_ERROR"
)

// Issue is a single field-level validation problem.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the error arm of the result envelope.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation builds a VALIDATION_ERROR with optional details.
func Validation(message string, details any) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// Issues builds a VALIDATION_ERROR from field-level issues.
func Issues(issues []Issue) *Error {
	return &Error{Code: CodeValidation, Message: "Validation failed", Details: issues}
}

// NotFound builds a NOT_FOUND error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict builds a CONFLICT error.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Database builds a DATABASE_ERROR carrying the underlying message.
func Database(err error) *Error {
	return &Error{Code: CodeDatabase, Message: err.Error()}
}

// Unknown builds an UNKNOWN_ERROR.
func Unknown(message string) *Error {
	if message == "" {
		message = "Unknown error occurred"
	}
	return &Error{Code: CodeUnknown, Message: message}
}

// FromStore maps a storage error to the service taxonomy: ErrNotFound becomes
// NOT_FOUND with the given message, ErrConflict becomes CONFLICT, and anything
// else is a DATABASE_ERROR surfaced verbatim.
func FromStore(err error, notFoundMessage string) *Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NotFound(notFoundMessage)
	case errors.Is(err, storage.ErrConflict):
		return Conflict(err.Error())
	default:
		return Database(err)
	}
}

// Recover converts a panic into an UNKNOWN_ERROR assigned to *errp. Every
// public service operation defers this so no panic escapes the envelope.
func Recover(errp **Error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = Unknown(err.Error())
			return
		}
		*errp = Unknown(fmt.Sprint(r))
	}
}
