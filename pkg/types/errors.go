package types

import (
	"errors"
	"fmt"
)

// Error classes. Typed errors below match one of these with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrIntegrity  = errors.New("integrity constraint violated")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
)

// Lifecycle and command errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrReadOnlyTable   = errors.New("table is read-only")
	ErrCommandDisabled = errors.New("command is disabled")
)

// ValidationError reports missing or malformed input for a column. It is
// raised before the store is touched.
type ValidationError struct {
	Column  string // Column name, empty for row-level problems.
	Value   string // Offending raw text.
	Message string // Human-readable reason.
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s", e.Column, e.Message)
	}
	return e.Message
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IntegrityError reports a constraint violation raised by the store: foreign
// key, NOT NULL, uniqueness or CHECK.
type IntegrityError struct {
	Table string // Relation the statement targeted.
	Op    string // insert, update or delete.
	Err   error  // Driver error.
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

// Is matches ErrIntegrity.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// NotFoundError reports an unknown table, column or row.
type NotFoundError struct {
	Kind string // "table", "column" or "row".
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreError reports a connection or I/O fault.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is matches ErrStore.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsUserError reports whether err is something the user can correct by
// changing input: validation, integrity, not-found, read-only or disabled
// command errors.
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrIntegrity) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrReadOnlyTable) ||
		errors.Is(err, ErrCommandDisabled)
}
