package simulation

import (
	"fmt"

	"github.com/dmitrymomot/simkit/pkg/geometry"
	"github.com/dmitrymomot/simkit/pkg/schema"
)

// Medium is a material with a relative permittivity.
type Medium struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	Permittivity float64 `json:"permittivity" yaml:"permittivity"`
}

func (m Medium) GetName() string { return m.Name }

// Vacuum is the default background medium.
var Vacuum = Medium{Permittivity: 1}

// Structure is a piece of material placed in the simulation domain.
type Structure struct {
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Geometry geometry.Geometry `json:"geometry" yaml:"geometry"`
	Medium   Medium            `json:"medium" yaml:"medium"`
}

func (s Structure) GetName() string                { return s.Name }
func (s Structure) GetGeometry() geometry.Geometry { return s.Geometry }
func (s Structure) GetMediumName() string          { return s.Medium.Name }
func (s Structure) WithName(name string) Structure { s.Name = name; return s }
func (s Structure) String() string {
	return fmt.Sprintf("Structure(name=%q, geometry=%v, medium=%q)", s.Name, s.Geometry, s.Medium.Name)
}

// SourceType selects the kind of excitation.
type SourceType string

const (
	SourcePoint     SourceType = "point"
	SourcePlaneWave SourceType = "plane_wave"
)

// Source injects fields into the simulation. Plane-wave sources are planar.
type Source struct {
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	Type   SourceType      `json:"type" yaml:"type"`
	Center geometry.Vector `json:"center" yaml:"center"`
	Size   geometry.Vector `json:"size" yaml:"size"`
}

func (s Source) GetName() string                { return s.Name }
func (s Source) GetGeometry() geometry.Geometry { return geometry.Box(s.Center, s.Size) }
func (s Source) WithName(name string) Source    { s.Name = name; return s }
func (s Source) String() string {
	return fmt.Sprintf("Source(name=%q, type=%s, center=%v, size=%v)", s.Name, s.Type, s.Center, s.Size)
}

// MonitorType selects what a monitor records.
type MonitorType string

const (
	MonitorField MonitorType = "field"
	MonitorFlux  MonitorType = "flux"
)

// Monitor records data over a region. Flux monitors are planar.
type Monitor struct {
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	Type   MonitorType     `json:"type" yaml:"type"`
	Center geometry.Vector `json:"center" yaml:"center"`
	Size   geometry.Vector `json:"size" yaml:"size"`
}

func (m Monitor) GetName() string                { return m.Name }
func (m Monitor) GetGeometry() geometry.Geometry { return geometry.Box(m.Center, m.Size) }
func (m Monitor) WithName(name string) Monitor   { m.Name = name; return m }
func (m Monitor) String() string {
	return fmt.Sprintf("Monitor(name=%q, type=%s, center=%v, size=%v)", m.Name, m.Type, m.Center, m.Size)
}

// Simulation is a validated simulation setup.
// Use New or Decode to build one; the zero value is not validated.
type Simulation struct {
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Size       geometry.Vector `json:"size" yaml:"size"`
	Center     geometry.Vector `json:"center" yaml:"center"`
	Medium     Medium          `json:"medium" yaml:"medium"`
	Structures []Structure     `json:"structures" yaml:"structures"`
	Sources    []Source        `json:"sources" yaml:"sources"`
	Monitors   []Monitor       `json:"monitors" yaml:"monitors"`

	values schema.Values
	models *models
}

// Bounds returns the simulation domain.
func (s *Simulation) Bounds() geometry.Bounds {
	return geometry.NewBounds(s.Center, s.Size)
}
