package geometry

import "fmt"

// Type names a supported shape.
type Type string

const (
	TypeBox      Type = "box"
	TypeSphere   Type = "sphere"
	TypeCylinder Type = "cylinder"
)

// Geometry is a tagged shape description as it appears in simulation files.
// Only the fields relevant to Type are used: Size for boxes, Radius for
// spheres, Radius, Length and Axis (0=x, 1=y, 2=z) for cylinders.
type Geometry struct {
	Type   Type    `json:"type" yaml:"type"`
	Center Vector  `json:"center" yaml:"center"`
	Size   Vector  `json:"size,omitempty" yaml:"size,omitempty"`
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Length float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Axis   int     `json:"axis,omitempty" yaml:"axis,omitempty"`
}

// Box returns a box geometry.
func Box(center, size Vector) Geometry {
	return Geometry{Type: TypeBox, Center: center, Size: size}
}

// Sphere returns a sphere geometry.
func Sphere(center Vector, radius float64) Geometry {
	return Geometry{Type: TypeSphere, Center: center, Radius: radius}
}

// Cylinder returns a cylinder geometry aligned with axis.
func Cylinder(center Vector, radius, length float64, axis int) Geometry {
	return Geometry{Type: TypeCylinder, Center: center, Radius: radius, Length: length, Axis: axis}
}

// Validate checks the shape parameters.
func (g Geometry) Validate() error {
	switch g.Type {
	case TypeBox:
		for _, s := range g.Size {
			if s < 0 {
				return fmt.Errorf("%w: box size %v", ErrNegativeExtent, g.Size)
			}
		}
	case TypeSphere:
		if g.Radius < 0 {
			return fmt.Errorf("%w: sphere radius %g", ErrNegativeExtent, g.Radius)
		}
	case TypeCylinder:
		if g.Radius < 0 || g.Length < 0 {
			return fmt.Errorf("%w: cylinder radius %g length %g", ErrNegativeExtent, g.Radius, g.Length)
		}
		if g.Axis < 0 || g.Axis > 2 {
			return fmt.Errorf("%w: %d", ErrInvalidAxis, g.Axis)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, g.Type)
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the shape.
func (g Geometry) Bounds() Bounds {
	switch g.Type {
	case TypeSphere:
		d := 2 * g.Radius
		return NewBounds(g.Center, Vector{d, d, d})
	case TypeCylinder:
		d := 2 * g.Radius
		size := Vector{d, d, d}
		axis := g.Axis
		if axis < 0 || axis > 2 {
			axis = 2
		}
		size[axis] = g.Length
		return NewBounds(g.Center, size)
	default:
		return NewBounds(g.Center, g.Size)
	}
}

func (g Geometry) String() string {
	switch g.Type {
	case TypeSphere:
		return fmt.Sprintf("Sphere(center=%v, radius=%g)", g.Center, g.Radius)
	case TypeCylinder:
		return fmt.Sprintf("Cylinder(center=%v, radius=%g, length=%g, axis=%d)", g.Center, g.Radius, g.Length, g.Axis)
	default:
		return fmt.Sprintf("Box(center=%v, size=%v)", g.Center, g.Size)
	}
}
