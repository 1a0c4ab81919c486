package i18n

import "errors"

var (
	ErrParseCatalog = errors.New("failed to parse message catalog")
	ErrEmptyCatalog = errors.New("message catalog has no languages")
)
