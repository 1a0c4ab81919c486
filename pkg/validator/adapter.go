package validator

import (
	"fmt"

	"github.com/dmitrymomot/simkit/pkg/schema"
)

// Check adapts rule constructors into a validator for a field holding T.
// Rules run in order and the first failure is returned.
func Check[T any](field string, rules ...func(value T) Rule) schema.Validator {
	return schema.Validator{
		Field: field,
		Fn: func(_ string, value any, _ schema.Values) (any, error) {
			typed, ok := value.(T)
			if !ok {
				return nil, fmt.Errorf("%w: %s: got %T, want %T", ErrUnexpectedType, field, value, typed)
			}
			for _, rule := range rules {
				if err := First(rule(typed)); err != nil {
					return nil, err
				}
			}
			return value, nil
		},
	}
}
