// Package geometry provides the shapes used by simulation records and the
// bounding-box intersection test used for simulation-domain containment.
//
// Shapes are described by the tagged Geometry struct so they decode directly
// from JSON or YAML documents. Containment is decided on axis-aligned
// bounding boxes: two shapes intersect when their closed bounding boxes share
// at least one point, so a planar monitor lying on the domain boundary is
// considered inside.
//
//	domain := geometry.NewBounds(geometry.Vector{0, 0, 0}, geometry.Vector{4, 4, 4})
//	ok := domain.Intersects(geometry.Sphere(geometry.Vector{2.5, 0, 0}, 1).Bounds())
package geometry
