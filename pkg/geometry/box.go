package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned box given by its minimum and maximum corners.
type Bounds struct {
	r3.Box
}

// NewBounds returns the box with the given center and size.
// Zero extents are allowed and describe planes, lines or points.
func NewBounds(center, size Vector) Bounds {
	half := r3.Scale(0.5, size.vec())
	c := center.vec()
	return Bounds{r3.Box{Min: r3.Sub(c, half), Max: r3.Add(c, half)}}
}

// Intersects reports whether the two boxes share at least one point.
// Boxes that only touch on a face, edge or corner intersect, and so do
// degenerate boxes with zero extents.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

func (b Bounds) String() string {
	return fmt.Sprintf("[(%g, %g, %g), (%g, %g, %g)]", b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}
