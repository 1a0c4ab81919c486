package geometry

import (
	"fmt"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Vector is a point or extent in 3D space, in simulation length units.
// Decoding rejects anything other than exactly three components.
type Vector [3]float64

func (v Vector) vec() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var xs []float64
	if err := json.Unmarshal(data, &xs); err != nil {
		return err
	}
	return v.set(xs)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return err
	}
	return v.set(xs)
}

func (v *Vector) set(xs []float64) error {
	if len(xs) != 3 {
		return fmt.Errorf("%w: got %d components", ErrVectorLength, len(xs))
	}
	copy((*v)[:], xs)
	return nil
}
