package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrInvalidInput     = errors.New("invalid input")
)

// InsufficientDataError is returned when a required series is empty.
// Callers are expected to fall back rather than fail.
type InsufficientDataError struct {
	Source string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s is empty", e.Source)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// InvalidInputError rejects a value at the boundary before any computation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
