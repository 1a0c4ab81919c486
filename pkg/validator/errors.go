package validator

import "errors"

var (
	// ErrValidation matches failures of KindValidation: the supplied
	// configuration is structurally invalid.
	ErrValidation = errors.New("validation error")

	// ErrSetup matches failures of KindSetup: the configuration violates a
	// setup-time contract such as unique names.
	ErrSetup = errors.New("setup error")

	// ErrUnexpectedType is returned when a validator receives a value of a
	// type it was not built for.
	ErrUnexpectedType = errors.New("unexpected value type")
)
