package schema

import "fmt"

// Values holds the fields of a record validated so far, keyed by field name.
type Values map[string]any

// Has reports whether the field has been validated.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Get returns the field as T.
// It fails with ErrDependencyUnavailable when the field is missing.
func Get[T any](v Values, name string) (T, error) {
	var zero T
	raw, ok := v[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrDependencyUnavailable, name)
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: field %q holds %T, want %T", ErrCoercion, name, raw, zero)
	}
	return typed, nil
}
