package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a missing id.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a create or update before anything is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError reports a failed save. The in-memory change that
// triggered the save has already been applied and is kept.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err only signals a failed save, in which case
// the result returned alongside it is valid.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
