package schema

import (
	"fmt"
	"slices"
)

// ValidatorFunc checks, and may replace, a single field value.
// record is the name of the record type being built, values holds the
// siblings validated so far.
type ValidatorFunc func(record string, value any, values Values) (any, error)

// Validator binds a ValidatorFunc to one field.
type Validator struct {
	Field string
	// Pre runs the validator on the raw input, before coercion.
	Pre bool
	// Always runs the validator when the field was not supplied and a
	// default is used instead.
	Always bool
	// DependsOn lists sibling fields that must be validated first.
	DependsOn []string
	Fn        ValidatorFunc
}

// Field declares a record attribute.
type Field struct {
	Name     string
	Required bool
	// Default is used when the field is absent from the input.
	// A nil Default leaves an optional field unset and skips its validators.
	Default any
	Coerce  CoerceFunc
}

// Model is a record type: an ordered field list with attached validators.
// A Model is immutable once built and safe for concurrent use.
type Model struct {
	name   string
	fields []Field
	pre    map[string][]Validator
	post   map[string][]Validator
}

// NewModel builds a Model. Validators run per field in the order given.
// Every dependency a validator declares must name a field declared before
// the validator's own field.
func NewModel(name string, fields []Field, validators ...Validator) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty record name", ErrInvalidModel)
	}

	position := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrInvalidModel, name, i)
		}
		if _, dup := position[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: field %q declared twice", ErrInvalidModel, name, f.Name)
		}
		position[f.Name] = i
	}

	m := &Model{
		name:   name,
		fields: slices.Clone(fields),
		pre:    make(map[string][]Validator),
		post:   make(map[string][]Validator),
	}

	for _, v := range validators {
		at, ok := position[v.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %s: validator bound to undeclared field %q", ErrInvalidModel, name, v.Field)
		}
		if v.Fn == nil {
			return nil, fmt.Errorf("%w: %s: nil validator on field %q", ErrInvalidModel, name, v.Field)
		}
		for _, dep := range v.DependsOn {
			depAt, ok := position[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s depends on undeclared field %q", ErrInvalidModel, name, v.Field, dep)
			}
			if depAt >= at {
				return nil, fmt.Errorf("%w: %s.%s depends on %q, which is declared after it", ErrInvalidModel, name, v.Field, dep)
			}
		}
		if v.Pre {
			m.pre[v.Field] = append(m.pre[v.Field], v)
		} else {
			m.post[v.Field] = append(m.post[v.Field], v)
		}
	}

	return m, nil
}

// MustModel is like NewModel but panics on error.
// Intended for package-level model declarations.
func MustModel(name string, fields []Field, validators ...Validator) *Model {
	m, err := NewModel(name, fields, validators...)
	if err != nil {
		panic(err)
	}
	return m
}

// Build validates input field by field in declaration order.
// The first failing field aborts construction with a *FieldError.
func (m *Model) Build(input map[string]any) (Values, error) {
	values := make(Values, len(m.fields))
	for _, f := range m.fields {
		raw, present := input[f.Name]
		val, set, err := m.validateField(f, raw, present, values)
		if err != nil {
			return nil, err
		}
		if set {
			values[f.Name] = val
		}
	}
	return values, nil
}

// Assign validates a new value for one field against the other fields of
// values and returns an updated copy. values is not modified.
// Post validators of later fields that depend on the assigned field run
// again against the updated values, so a change can be rejected because of
// a field it invalidates.
func (m *Model) Assign(values Values, field string, raw any) (Values, error) {
	idx := slices.IndexFunc(m.fields, func(f Field) bool { return f.Name == field })
	if idx < 0 {
		return nil, &FieldError{Record: m.name, Field: field, Err: ErrUnknownField}
	}

	siblings := values.Clone()
	delete(siblings, field)

	val, _, err := m.validateField(m.fields[idx], raw, true, siblings)
	if err != nil {
		return nil, err
	}
	siblings[field] = val

	if err := m.revalidate(siblings, idx); err != nil {
		return nil, err
	}
	return siblings, nil
}

// revalidate re-runs, in declaration order, the post validators of the
// fields after from whose dependencies changed. A field rewritten this way
// counts as changed for the fields after it.
func (m *Model) revalidate(values Values, from int) error {
	changed := map[string]bool{m.fields[from].Name: true}
	for _, f := range m.fields[from+1:] {
		cur, ok := values[f.Name]
		if !ok {
			continue
		}
		affected := slices.DeleteFunc(slices.Clone(m.post[f.Name]), func(v Validator) bool {
			return !slices.ContainsFunc(v.DependsOn, func(dep string) bool { return changed[dep] })
		})
		if len(affected) == 0 {
			continue
		}

		siblings := values.Clone()
		delete(siblings, f.Name)
		val, err := m.run(affected, cur, true, siblings)
		if err != nil {
			return m.fieldError(f.Name, err)
		}
		values[f.Name] = val
		changed[f.Name] = true
	}
	return nil
}

func (m *Model) validateField(f Field, raw any, present bool, values Values) (any, bool, error) {
	if !present {
		if f.Required {
			return nil, false, m.fieldError(f.Name, ErrRequired)
		}
		if f.Default == nil {
			return nil, false, nil
		}
		raw = f.Default
	}

	val, err := m.run(m.pre[f.Name], raw, present, values)
	if err != nil {
		return nil, false, m.fieldError(f.Name, err)
	}

	if f.Coerce != nil {
		if val, err = f.Coerce(val); err != nil {
			return nil, false, m.fieldError(f.Name, err)
		}
	}

	if val, err = m.run(m.post[f.Name], val, present, values); err != nil {
		return nil, false, m.fieldError(f.Name, err)
	}
	return val, true, nil
}

func (m *Model) run(validators []Validator, val any, present bool, values Values) (any, error) {
	for _, v := range validators {
		if !present && !v.Always {
			continue
		}
		for _, dep := range v.DependsOn {
			if !values.Has(dep) {
				return nil, fmt.Errorf("%w: %q", ErrDependencyUnavailable, dep)
			}
		}
		next, err := v.Fn(m.name, val, values)
		if err != nil {
			return nil, err
		}
		val = next
	}
	return val, nil
}

func (m *Model) fieldError(field string, err error) error {
	return &FieldError{Record: m.name, Field: field, Err: err}
}
