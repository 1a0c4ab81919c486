package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// CoerceFunc converts a raw input value into the field's Go type.
type CoerceFunc func(raw any) (any, error)

// As returns a CoerceFunc that converts raw values to T.
// Values already of type T pass through; anything else goes through a JSON
// round trip, so decoded documents (maps, []any, float64) coerce into structs,
// arrays and slices.
func As[T any]() CoerceFunc {
	return func(raw any) (any, error) {
		if typed, ok := raw.(T); ok {
			return typed, nil
		}
		var out T
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCoercion, err)
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("%w to %T: %w", ErrCoercion, out, err)
		}
		return out, nil
	}
}
