package simulation

import "errors"

var (
	// ErrUnsupportedFormat is returned for documents that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrDecode is returned when a document cannot be parsed.
	ErrDecode = errors.New("failed to decode simulation document")

	// ErrInvalid wraps every construction failure.
	ErrInvalid = errors.New("invalid simulation")
)
