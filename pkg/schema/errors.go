package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is returned when a required field is absent from the input.
	ErrRequired = errors.New("field is required")

	// ErrDependencyUnavailable is returned when a validator needs a sibling
	// field that has not been validated yet.
	ErrDependencyUnavailable = errors.New("dependency field not available")

	// ErrInvalidModel is returned by NewModel for malformed field declarations.
	ErrInvalidModel = errors.New("invalid model definition")

	// ErrUnknownField is returned by Assign for a field the model does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrCoercion is returned when a raw value cannot be converted to the field type.
	ErrCoercion = errors.New("cannot coerce value")
)

// FieldError locates a construction failure on a record field.
type FieldError struct {
	Record string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IndexError locates a failure on an element of a sequence field.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("[%d]: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
