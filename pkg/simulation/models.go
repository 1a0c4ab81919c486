package simulation

import (
	"fmt"

	"github.com/dmitrymomot/simkit/pkg/geometry"
	"github.com/dmitrymomot/simkit/pkg/schema"
	"github.com/dmitrymomot/simkit/pkg/validator"
)

// models holds the record types for one set of options.
type models struct {
	medium       *schema.Model
	structure    *schema.Model
	pointSource  *schema.Model
	planeWave    *schema.Model
	fieldMonitor *schema.Model
	fluxMonitor  *schema.Model
	simulation   *schema.Model
}

func newModels(cfg config) *models {
	nameCheck := validator.ValidateNameString(validator.EnforceReservedChars(cfg.enforceReservedNames))
	nameField := schema.Field{Name: "name", Default: "", Coerce: schema.As[string]()}

	ms := &models{}

	ms.medium = schema.MustModel("Medium",
		[]schema.Field{
			nameField,
			{Name: "permittivity", Default: 1.0, Coerce: schema.As[float64]()},
		},
		nameCheck,
		validator.Check("permittivity", func(v float64) validator.Rule {
			return validator.MinNum("permittivity", v, 1.0)
		}),
	)

	ms.structure = schema.MustModel("Structure",
		[]schema.Field{
			nameField,
			{Name: "geometry", Required: true, Coerce: schema.As[geometry.Geometry]()},
			{Name: "medium", Default: Vacuum, Coerce: ms.coerceMedium},
		},
		nameCheck,
		validator.Check("geometry", validGeometry),
	)

	ms.pointSource = regionModel("PointSource", nameCheck, sourceTypes)
	ms.planeWave = regionModel("PlaneWave", nameCheck, sourceTypes, validator.AssertPlane())
	ms.fieldMonitor = regionModel("FieldMonitor", nameCheck, monitorTypes)
	ms.fluxMonitor = regionModel("FluxMonitor", nameCheck, monitorTypes, validator.AssertPlane())

	ms.simulation = schema.MustModel("Simulation",
		[]schema.Field{
			nameField,
			{Name: "size", Required: true, Coerce: schema.As[geometry.Vector]()},
			{Name: "center", Default: geometry.Vector{}, Coerce: schema.As[geometry.Vector]()},
			{Name: "medium", Default: Vacuum, Coerce: ms.coerceMedium},
			{Name: "structures", Default: []Structure{}, Coerce: coerceList(ms.newStructure)},
			{Name: "sources", Default: []Source{}, Coerce: coerceList(ms.newSource)},
			{Name: "monitors", Default: []Monitor{}, Coerce: coerceList(ms.newMonitor)},
		},
		nameCheck,
		validator.Check("size", func(v geometry.Vector) validator.Rule {
			return validator.NonNegativeExtent("size", v)
		}),

		validator.UniqueNames[Structure]("structures"),
		validator.UniqueMediumNames[Structure]("structures"),
		validator.ObjectsInSimBounds[Structure]("structures"),
		validator.SetDefaultNames[Structure]("structures"),

		validator.UniqueNames[Source]("sources"),
		validator.ObjectsInSimBounds[Source]("sources"),
		validator.SetDefaultNames[Source]("sources"),

		validator.UniqueNames[Monitor]("monitors"),
		validator.ObjectsInSimBounds[Monitor]("monitors"),
		validator.SetDefaultNames[Monitor]("monitors"),
	)

	return ms
}

var (
	sourceTypes  = []string{string(SourcePoint), string(SourcePlaneWave)}
	monitorTypes = []string{string(MonitorField), string(MonitorFlux)}
)

// regionModel declares a named box-shaped record with a type tag.
// The default type is the first entry of types.
func regionModel(name string, nameCheck schema.Validator, types []string, extra ...schema.Validator) *schema.Model {
	validators := []schema.Validator{
		nameCheck,
		validator.Check("type", func(v string) validator.Rule {
			return validator.InList("type", v, types)
		}),
		validator.Check("size", func(v geometry.Vector) validator.Rule {
			return validator.NonNegativeExtent("size", v)
		}),
	}
	return schema.MustModel(name,
		[]schema.Field{
			{Name: "name", Default: "", Coerce: schema.As[string]()},
			{Name: "type", Default: types[0], Coerce: schema.As[string]()},
			{Name: "center", Default: geometry.Vector{}, Coerce: schema.As[geometry.Vector]()},
			{Name: "size", Default: geometry.Vector{}, Coerce: schema.As[geometry.Vector]()},
		},
		append(validators, extra...)...,
	)
}

func validGeometry(g geometry.Geometry) validator.Rule {
	err := g.Validate()
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return validator.Rule{
		Check: func() bool { return err == nil },
		Error: validator.ValidationError{
			Field:          "geometry",
			Message:        msg,
			Kind:           validator.KindValidation,
			Index:          -1,
			TranslationKey: "validation.geometry",
			TranslationValues: map[string]any{
				"field":  "geometry",
				"reason": msg,
			},
		},
	}
}

func (ms *models) coerceMedium(raw any) (any, error) {
	doc, err := document(raw)
	if err != nil {
		return nil, err
	}
	return build[Medium](ms.medium, doc)
}

func (ms *models) newStructure(doc map[string]any) (Structure, error) {
	return build[Structure](ms.structure, doc)
}

func (ms *models) newSource(doc map[string]any) (Source, error) {
	m := ms.pointSource
	if doc["type"] == string(SourcePlaneWave) {
		m = ms.planeWave
	}
	return build[Source](m, doc)
}

func (ms *models) newMonitor(doc map[string]any) (Monitor, error) {
	m := ms.fieldMonitor
	if doc["type"] == string(MonitorFlux) {
		m = ms.fluxMonitor
	}
	return build[Monitor](m, doc)
}

// build validates doc against m and converts the result to T.
func build[T any](m *schema.Model, doc map[string]any) (T, error) {
	var zero T
	values, err := m.Build(doc)
	if err != nil {
		return zero, err
	}
	out, err := schema.As[T]()(map[string]any(values))
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// coerceList converts a sequence of documents into records, building every
// element through its own model.
func coerceList[T any](newElem func(map[string]any) (T, error)) schema.CoerceFunc {
	return func(raw any) (any, error) {
		docs, err := schema.As[[]map[string]any]()(raw)
		if err != nil {
			return nil, err
		}
		list := docs.([]map[string]any)
		out := make([]T, 0, len(list))
		for i, doc := range list {
			elem, err := newElem(doc)
			if err != nil {
				return nil, &schema.IndexError{Index: i, Err: err}
			}
			out = append(out, elem)
		}
		return out, nil
	}
}

func document(raw any) (map[string]any, error) {
	doc, err := schema.As[map[string]any]()(raw)
	if err != nil {
		return nil, err
	}
	m, ok := doc.(map[string]any)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: expected an object, got %T", schema.ErrCoercion, raw)
	}
	return m, nil
}
