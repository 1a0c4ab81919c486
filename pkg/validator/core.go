package validator

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindValidation marks structurally invalid values such as a non-planar size.
	KindValidation Kind = "validation"
	// KindSetup marks configuration contract violations such as duplicate names.
	KindSetup Kind = "setup"
)

// ValidationError represents a single validation error with translation support.
// Index is the 0-based position within a sequence field, or -1 when the
// error is not tied to an element.
type ValidationError struct {
	Field             string
	Message           string
	Kind              Kind
	Index             int
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is match a ValidationError against ErrValidation or ErrSetup.
func (e ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrSetup:
		return e.Kind == KindSetup
	}
	return false
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// First executes rules in order and returns the first failure.
// Rules after the failing one are not evaluated.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// ExtractValidationError returns the first ValidationError found in err's chain.
func ExtractValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if err == nil {
		return verr, false
	}
	if errors.As(err, &verr) {
		return verr, true
	}
	return verr, false
}
