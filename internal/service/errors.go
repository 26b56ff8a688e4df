package service

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned when an overlay id is not a well-formed store identifier.
var ErrInvalidID = errors.New("invalid overlay id")

// ValidationError reports a required request field that was absent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// StoreError wraps a failure of the underlying document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s overlay: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
