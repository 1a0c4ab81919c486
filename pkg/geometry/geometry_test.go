package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/simkit/pkg/geometry"
)

func TestNewBounds(t *testing.T) {
	t.Parallel()

	b := geometry.NewBounds(geometry.Vector{1, 2, 3}, geometry.Vector{2, 4, 0})
	assert.Equal(t, 0.0, b.Min.X)
	assert.Equal(t, 2.0, b.Max.X)
	assert.Equal(t, 0.0, b.Min.Y)
	assert.Equal(t, 4.0, b.Max.Y)
	assert.Equal(t, 3.0, b.Min.Z)
	assert.Equal(t, 3.0, b.Max.Z)
	assert.Equal(t, "[(0, 0, 3), (2, 4, 3)]", b.String())
}

func TestBoundsIntersects(t *testing.T) {
	t.Parallel()

	domain := geometry.NewBounds(geometry.Vector{0, 0, 0}, geometry.Vector{2, 2, 2})

	tests := []struct {
		name   string
		center geometry.Vector
		size   geometry.Vector
		want   bool
	}{
		{"inside", geometry.Vector{0, 0, 0}, geometry.Vector{1, 1, 1}, true},
		{"enclosing", geometry.Vector{0, 0, 0}, geometry.Vector{10, 10, 10}, true},
		{"partial overlap", geometry.Vector{1.5, 0, 0}, geometry.Vector{2, 1, 1}, true},
		{"touching face", geometry.Vector{1.5, 0, 0}, geometry.Vector{1, 1, 1}, true},
		{"touching corner", geometry.Vector{1.5, 1.5, 1.5}, geometry.Vector{1, 1, 1}, true},
		{"plane inside", geometry.Vector{0, 0, 0}, geometry.Vector{1, 0, 1}, true},
		{"plane on boundary", geometry.Vector{0, 1, 0}, geometry.Vector{1, 0, 1}, true},
		{"point inside", geometry.Vector{0.5, 0.5, 0.5}, geometry.Vector{}, true},
		{"disjoint on x", geometry.Vector{3, 0, 0}, geometry.Vector{1, 1, 1}, false},
		{"disjoint on z only", geometry.Vector{0, 0, -5}, geometry.Vector{1, 1, 1}, false},
		{"plane just outside", geometry.Vector{0, 1.01, 0}, geometry.Vector{1, 0, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := geometry.NewBounds(tt.center, tt.size)
			assert.Equal(t, tt.want, domain.Intersects(other))
			assert.Equal(t, tt.want, other.Intersects(domain), "intersection is symmetric")
		})
	}
}

func TestGeometryBounds(t *testing.T) {
	t.Parallel()

	t.Run("box", func(t *testing.T) {
		g := geometry.Box(geometry.Vector{1, 1, 1}, geometry.Vector{2, 2, 2})
		assert.Equal(t, geometry.NewBounds(geometry.Vector{1, 1, 1}, geometry.Vector{2, 2, 2}), g.Bounds())
	})

	t.Run("sphere", func(t *testing.T) {
		g := geometry.Sphere(geometry.Vector{0, 0, 0}, 1.5)
		assert.Equal(t, geometry.NewBounds(geometry.Vector{}, geometry.Vector{3, 3, 3}), g.Bounds())
	})

	t.Run("cylinder along y", func(t *testing.T) {
		g := geometry.Cylinder(geometry.Vector{0, 0, 0}, 1, 10, 1)
		assert.Equal(t, geometry.NewBounds(geometry.Vector{}, geometry.Vector{2, 10, 2}), g.Bounds())
	})

	t.Run("cylinder with out of range axis falls back to z", func(t *testing.T) {
		g := geometry.Cylinder(geometry.Vector{0, 0, 0}, 1, 10, 7)
		assert.Equal(t, geometry.NewBounds(geometry.Vector{}, geometry.Vector{2, 2, 10}), g.Bounds())
	})
}

func TestShapeBoundsIntersect(t *testing.T) {
	t.Parallel()

	sphere := geometry.Sphere(geometry.Vector{0, 0, 0}, 1).Bounds()
	assert.True(t, sphere.Intersects(geometry.Box(geometry.Vector{1.5, 0, 0}, geometry.Vector{1, 1, 1}).Bounds()))
	assert.False(t, sphere.Intersects(geometry.Box(geometry.Vector{3, 0, 0}, geometry.Vector{1, 1, 1}).Bounds()))
}

func TestGeometryValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, geometry.Box(geometry.Vector{}, geometry.Vector{1, 0, 1}).Validate())
	assert.NoError(t, geometry.Sphere(geometry.Vector{}, 1).Validate())
	assert.NoError(t, geometry.Cylinder(geometry.Vector{}, 1, 2, 0).Validate())

	assert.ErrorIs(t, geometry.Box(geometry.Vector{}, geometry.Vector{1, -1, 1}).Validate(), geometry.ErrNegativeExtent)
	assert.ErrorIs(t, geometry.Sphere(geometry.Vector{}, -1).Validate(), geometry.ErrNegativeExtent)
	assert.ErrorIs(t, geometry.Cylinder(geometry.Vector{}, 1, 2, 3).Validate(), geometry.ErrInvalidAxis)
	assert.ErrorIs(t, geometry.Geometry{Type: "torus"}.Validate(), geometry.ErrUnknownType)
	assert.ErrorIs(t, geometry.Geometry{}.Validate(), geometry.ErrUnknownType)
}

func TestGeometryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Box(center=[0 0 0], size=[1 2 3])", geometry.Box(geometry.Vector{}, geometry.Vector{1, 2, 3}).String())
	assert.Equal(t, "Sphere(center=[1 0 0], radius=0.5)", geometry.Sphere(geometry.Vector{1, 0, 0}, 0.5).String())
}
