package common

import (
	"errors"
	"fmt"
)

// ErrStoreTimeout marks a store call that exceeded its configured deadline.
// Surfaced distinctly from StoreError so callers can decide to retry.
var ErrStoreTimeout = errors.New("store query timed out")

// ErrNotImplemented marks a graph kind that is acknowledged but not built
// yet. It is never reported as an empty graph.
var ErrNotImplemented = errors.New("not implemented")

// ValidationError is a caller-correctable input problem, e.g. a filter model
// with no populated dimension. It maps to a 400 response and is never
// retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// StoreError wraps a query execution failure with the name of the failing
// query. The read path has no side effects, so store errors are not retried
// automatically.
type StoreError struct {
	Query string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store query %q failed: %v", e.Query, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
