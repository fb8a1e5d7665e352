package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails its schema. It is client-correctable.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError covers both a missing identifier and an update that modified nothing.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError wraps an unexpected storage fault together with the
// operation that was attempted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return "Error " + e.Op }

func (e *PersistenceError) Unwrap() error { return e.Err }

// Cause renders the operation with its underlying error, for logs only.
func (e *PersistenceError) Cause() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}
