package model

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string            `json:"error"`
	Message       string            `json:"message"`
	Details       map[string]string `json:"details,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeInvalidPagination  = "INVALID_PAGINATION"
	ErrCodeItemNotFound       = "ITEM_NOT_FOUND"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// ValidationError reports payload fields that failed validation.
// Fields maps the JSON field name to a human readable reason.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StorageErrorKind classifies backend failures.
type StorageErrorKind string

const (
	StorageErrorConstraint StorageErrorKind = "constraint"
	StorageErrorConnection StorageErrorKind = "connection"
	StorageErrorTimeout    StorageErrorKind = "timeout"
	StorageErrorUnknown    StorageErrorKind = "unknown"
)

// StorageError wraps a failure of the relational backend.
// It is never exposed to API clients.
type StorageError struct {
	Op   string
	Kind StorageErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s storage error: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
