// Package apierrors defines the error taxonomy the domain operations speak
// and maps it onto HTTP responses. Every user-visible failure is a JSON body
// with a single human-readable "error" string; unexpected errors are logged
// and collapsed into a generic 500 so internals never leak.
package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/logger"
)

// Kind classifies a failure for status-code mapping.
type Kind int

const (
	// KindValidation is a missing or malformed input field.
	KindValidation Kind = iota
	// KindNotFound means a referenced entity is absent.
	KindNotFound
	// KindConflict is a uniqueness or duplicate-assignment violation.
	// The frontend contract maps it to 400, not 409.
	KindConflict
	// KindAuthentication is a failed credential check.
	KindAuthentication
	// KindInternal is a storage or hashing fault unrelated to the input.
	KindInternal
)

// Error is a user-facing failure with a stable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a 400 validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict creates a conflict error (served as 400 per the frontend contract).
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication creates a 401 error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Internal creates a 500 error with a caller-chosen message.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// Respond writes err as a JSON error response. Errors outside the taxonomy
// are logged and reported as a generic internal server error.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == KindInternal {
			logger.Log.Errorw("internal error", "path", c.FullPath(), "error", err)
		}
		c.JSON(apiErr.Status(), gin.H{"error": apiErr.Message})
		return
	}

	logger.Log.Errorw("unexpected error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
