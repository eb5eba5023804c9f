package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an id does not reference an existing record.
var ErrNotFound = errors.New("record not found")

// ValidationError carries the per-field messages collected by a Validate() call.
// Nothing is persisted when one of these is returned.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}
	return strings.Join(parts, "; ")
}

// PersistenceError wraps a store failure. It is surfaced to the caller, never retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RenderError reports malformed data reaching the document renderer.
type RenderError struct {
	Detail string
}

func (e *RenderError) Error() string {
	return e.Detail
}
