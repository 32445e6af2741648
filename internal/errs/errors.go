// Package errs holds the error kinds the API reports to clients. Handlers map
// them to HTTP statuses in one place.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors is the key for messages that are not tied to one field.
const NonFieldErrors = "non_field_errors"

var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the resource that failed to resolve.
func NotFound(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// ValidationError carries field-scoped messages. It renders as a 400.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Invalid builds a ValidationError with a single message.
func Invalid(field, message string) *ValidationError {
	return NewValidation().Add(field, message)
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns nil when no messages were collected.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// PermissionDeniedError is returned when a policy rejects the caller.
type PermissionDeniedError struct {
	Message string
}

func (e *PermissionDeniedError) Error() string {
	return "permission denied: " + e.Message
}

func PermissionDenied(message string) error {
	return &PermissionDeniedError{Message: message}
}

// AuthenticationError means the supplied credentials could not be accepted.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

func Unauthenticated(message string) error {
	return &AuthenticationError{Message: message}
}

// FieldError is a single message rendered as a bare string under its field,
// unlike ValidationError which renders lists.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
