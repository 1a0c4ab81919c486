package validator

import (
	"fmt"

	"github.com/dmitrymomot/simkit/pkg/geometry"
)

// Named is implemented by records with an optional name.
type Named interface {
	GetName() string
}

// Renamable is implemented by records that can return a copy of themselves
// under a different name.
type Renamable[T any] interface {
	Named
	WithName(name string) T
}

// Placed is implemented by records occupying a region of space.
type Placed interface {
	GetGeometry() geometry.Geometry
}

// MediumCarrier is implemented by records made of a named medium.
type MediumCarrier interface {
	GetMediumName() string
}

func sequence[T any](field string, value any) ([]T, error) {
	items, ok := value.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: %s: got %T, want %T", ErrUnexpectedType, field, value, items)
	}
	return items, nil
}
