package validator

import (
	"fmt"

	"github.com/dmitrymomot/simkit/pkg/geometry"
	"github.com/dmitrymomot/simkit/pkg/schema"
)

// PlanarSize validates that exactly one component of size is zero.
func PlanarSize(record string, size geometry.Vector) Rule {
	return Rule{
		Check: func() bool {
			zeros := 0
			for _, s := range size {
				if s == 0.0 {
					zeros++
				}
			}
			return zeros == 1
		},
		Error: ValidationError{
			Field:          "size",
			Message:        fmt.Sprintf("'%s' object must be planar, given size=%v", record, size),
			Kind:           KindValidation,
			Index:          -1,
			TranslationKey: "validation.planar",
			TranslationValues: map[string]any{
				"record": record,
				"size":   size,
			},
		},
	}
}

// InSimBounds validates that the geometry of the element at index in field
// intersects the simulation bounds.
func InSimBounds(field string, index int, element any, g geometry.Geometry, bounds geometry.Bounds) Rule {
	return Rule{
		Check: func() bool {
			return bounds.Intersects(g.Bounds())
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("'%v' (at `simulation.%s[%d]`) is completely outside of simulation domain", element, field, index),
			Kind:           KindSetup,
			Index:          index,
			TranslationKey: "validation.outside_domain",
			TranslationValues: map[string]any{
				"element": element,
				"field":   field,
				"index":   index,
			},
		},
	}
}

// AssertPlane returns a validator for the "size" field that requires the
// record to be planar: exactly one of the three extents must be 0.
// It runs on every construction, including when size is defaulted.
func AssertPlane() schema.Validator {
	return schema.Validator{
		Field:  "size",
		Always: true,
		Fn: func(record string, value any, _ schema.Values) (any, error) {
			size, ok := value.(geometry.Vector)
			if !ok {
				return nil, fmt.Errorf("%w: size: got %T, want %T", ErrUnexpectedType, value, size)
			}
			if err := First(PlanarSize(record, size)); err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

// ObjectsInSimBounds returns a validator for a sequence field requiring every
// element's geometry to intersect the simulation domain built from the
// sibling "size" and "center" fields. Elements are checked in order and the
// first one outside the domain fails.
func ObjectsInSimBounds[T Placed](field string) schema.Validator {
	return schema.Validator{
		Field:     field,
		Always:    true,
		DependsOn: []string{"size", "center"},
		Fn: func(_ string, value any, values schema.Values) (any, error) {
			items, err := sequence[T](field, value)
			if err != nil {
				return nil, err
			}
			size, err := schema.Get[geometry.Vector](values, "size")
			if err != nil {
				return nil, err
			}
			center, err := schema.Get[geometry.Vector](values, "center")
			if err != nil {
				return nil, err
			}

			bounds := geometry.NewBounds(center, size)
			for i, item := range items {
				if err := First(InSimBounds(field, i, item, item.GetGeometry(), bounds)); err != nil {
					return nil, err
				}
			}
			return value, nil
		},
	}
}
