package domain

import (
	"errors"
	"fmt"
)

// KeyPrefix namespaces every key the service writes.
const KeyPrefix = "cmsdash:"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidSchema signals input that fails domain validation.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrInvalidQuery signals a list query naming an unknown field or order.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrRevisionConflict signals an optimistic locking conflict.
	ErrRevisionConflict = errors.New("revision conflict")
	// ErrAssistantDisabled signals that no writing assistant is configured.
	ErrAssistantDisabled = errors.New("assistant disabled")
	// ErrAssistantError signals a writing assistant provider failure.
	ErrAssistantError = errors.New("assistant error")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)

// RevisionConflictError wraps ErrRevisionConflict with the current resource revision.
type RevisionConflictError struct {
	CurrentRevision int
}

func (e *RevisionConflictError) Error() string {
	return fmt.Sprintf("%s: current revision is %d", ErrRevisionConflict.Error(), e.CurrentRevision)
}

func (e *RevisionConflictError) Unwrap() error { return ErrRevisionConflict }

// NewRevisionConflict creates a revision conflict error.
func NewRevisionConflict(currentRevision int) error {
	return &RevisionConflictError{CurrentRevision: currentRevision}
}

// Invalid wraps a validation message with ErrInvalidSchema.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidSchema)
}
