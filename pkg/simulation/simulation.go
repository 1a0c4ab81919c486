package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/simkit/pkg/geometry"
	"github.com/dmitrymomot/simkit/pkg/logger"
	"github.com/dmitrymomot/simkit/pkg/schema"
	"github.com/dmitrymomot/simkit/pkg/validator"
)

var (
	defaultModels  = newModels(config{})
	reservedModels = newModels(config{enforceReservedNames: true})
)

func resolve(opts []Option) config {
	cfg := config{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg config) models() *models {
	if cfg.enforceReservedNames {
		return reservedModels
	}
	return defaultModels
}

// New validates input and builds a Simulation.
// Input keys are the JSON field names of Simulation; values may be decoded
// documents (maps, slices, numbers) or the corresponding Go types.
// The first violated invariant aborts construction; the returned error wraps
// ErrInvalid and a *schema.FieldError locating the failure.
func New(input map[string]any, opts ...Option) (*Simulation, error) {
	cfg := resolve(opts)
	ms := cfg.models()

	values, err := ms.simulation.Build(input)
	if err != nil {
		logRejected(cfg.logger, err)
		return nil, errors.Join(ErrInvalid, err)
	}
	return fromValues(values, ms)
}

// Set validates a new value for one field against the rest of the
// simulation and returns an updated copy. The receiver is not modified.
// Fields validated against the assigned one, such as the containment of
// structures when size or center change, are checked again.
//
// The copy keeps the name rules the receiver was built with unless
// WithReservedNameChars is given, in which case the assigned field and the
// fields checked again follow the requested rules.
func (s *Simulation) Set(field string, raw any, opts ...Option) (*Simulation, error) {
	cfg := resolve(opts)
	ms := s.models
	if ms == nil || cfg.reservedNamesSet {
		ms = cfg.models()
	}
	values := s.values
	if values == nil {
		var err error
		if values, err = ms.simulation.Build(s.document()); err != nil {
			return nil, errors.Join(ErrInvalid, err)
		}
	}

	updated, err := ms.simulation.Assign(values, field, raw)
	if err != nil {
		logRejected(cfg.logger, err)
		return nil, errors.Join(ErrInvalid, err)
	}
	return fromValues(updated, ms)
}

func (s *Simulation) document() map[string]any {
	return map[string]any{
		"name":       s.Name,
		"size":       s.Size,
		"center":     s.Center,
		"medium":     s.Medium,
		"structures": s.Structures,
		"sources":    s.Sources,
		"monitors":   s.Monitors,
	}
}

func fromValues(values schema.Values, ms *models) (*Simulation, error) {
	name, nameErr := schema.Get[string](values, "name")
	size, sizeErr := schema.Get[geometry.Vector](values, "size")
	center, centerErr := schema.Get[geometry.Vector](values, "center")
	medium, mediumErr := schema.Get[Medium](values, "medium")
	structures, structuresErr := schema.Get[[]Structure](values, "structures")
	sources, sourcesErr := schema.Get[[]Source](values, "sources")
	monitors, monitorsErr := schema.Get[[]Monitor](values, "monitors")

	if err := errors.Join(nameErr, sizeErr, centerErr, mediumErr, structuresErr, sourcesErr, monitorsErr); err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}

	return &Simulation{
		Name:       name,
		Size:       size,
		Center:     center,
		Medium:     medium,
		Structures: structures,
		Sources:    sources,
		Monitors:   monitors,
		values:     values,
		models:     ms,
	}, nil
}

// Failure describes where construction stopped.
type Failure struct {
	// Path is the dotted location of the failing field, such as
	// "Simulation.monitors[1].FluxMonitor.size".
	Path   string
	Record string
	Field  string
	// Index is the position of the innermost failing sequence element,
	// or -1.
	Index   int
	Kind    validator.Kind
	Message string
	// TranslationKey and TranslationValues come from the underlying
	// validator error, for rendering Message in other languages.
	TranslationKey    string
	TranslationValues map[string]any
}

// Explain extracts a Failure from an error returned by New, Set or Decode.
// ok is false when err carries no field location.
func Explain(err error) (Failure, bool) {
	f := Failure{Index: -1}
	var segments []string
	found := false

	for e := err; e != nil; {
		switch v := e.(type) {
		case *schema.FieldError:
			found = true
			f.Record, f.Field = v.Record, v.Field
			segments = append(segments, v.Record+"."+v.Field)
			e = v.Err
			continue
		case *schema.IndexError:
			f.Index = v.Index
			if n := len(segments); n > 0 {
				segments[n-1] += fmt.Sprintf("[%d]", v.Index)
			}
			e = v.Err
			continue
		}
		e = unwrapOne(e)
	}
	if !found {
		return f, false
	}

	f.Path = strings.Join(segments, ".")
	f.Message = err.Error()
	if verr, ok := validator.ExtractValidationError(err); ok {
		f.Kind = verr.Kind
		f.Message = verr.Message
		f.TranslationKey = verr.TranslationKey
		f.TranslationValues = verr.TranslationValues
		if verr.Index >= 0 {
			f.Index = verr.Index
		}
	}
	return f, true
}

// unwrapOne follows single-error chains and the first branch of joined errors.
func unwrapOne(err error) error {
	switch v := err.(type) {
	case interface{ Unwrap() error }:
		return v.Unwrap()
	case interface{ Unwrap() []error }:
		for _, e := range v.Unwrap() {
			if e == ErrInvalid {
				continue
			}
			return e
		}
	}
	return nil
}

func logRejected(log *slog.Logger, err error) {
	f, ok := Explain(err)
	if !ok {
		log.Debug("simulation rejected", logger.Error(err))
		return
	}
	log.Debug("simulation rejected",
		logger.Record(f.Record),
		logger.Field(f.Field),
		logger.Index(f.Index),
		logger.Kind(string(f.Kind)),
		slog.String("path", f.Path),
		logger.Error(err),
	)
}
