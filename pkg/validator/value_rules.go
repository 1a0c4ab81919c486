package validator

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/simkit/pkg/geometry"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v, given %v", min, value),
			Kind:           KindValidation,
			Index:          -1,
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"value": value,
			},
		},
	}
}

// NonNegativeExtent validates that no component of an extent is negative.
func NonNegativeExtent(field string, value geometry.Vector) Rule {
	return Rule{
		Check: func() bool {
			return value[0] >= 0 && value[1] >= 0 && value[2] >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("extents must be non-negative, given %v", value),
			Kind:           KindValidation,
			Index:          -1,
			TranslationKey: "validation.non_negative",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// InList validates that value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of %v, given %v", allowed, value),
			Kind:           KindValidation,
			Index:          -1,
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
				"value":   value,
			},
		},
	}
}
