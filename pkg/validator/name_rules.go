package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/simkit/pkg/schema"
)

// ReservedNameChars are the characters used by synthesized default names.
const ReservedNameChars = "[]"

// DefaultName returns the name synthesized for the unnamed element at index in field.
func DefaultName(field string, index int) string {
	return field + "[" + strconv.Itoa(index) + "]"
}

// NoReservedChars validates that name contains neither '[' nor ']'.
func NoReservedChars(field, name string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(name, ReservedNameChars)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("'[' or ']' not allowed in name: %s (used for defaults)", name),
			Kind:           KindSetup,
			Index:          -1,
			TranslationKey: "validation.reserved_chars",
			TranslationValues: map[string]any{
				"field": field,
				"name":  name,
			},
		},
	}
}

// UniqueStrings validates that names has no repeated entries.
func UniqueStrings(field string, names []string) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[string]struct{}, len(names))
			for _, n := range names {
				seen[n] = struct{}{}
			}
			return len(seen) == len(names)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("'%s' names are not unique, given %s.", field, quoteList(names)),
			Kind:           KindSetup,
			Index:          -1,
			TranslationKey: "validation.unique_names",
			TranslationValues: map[string]any{
				"field": field,
				"names": names,
			},
		},
	}
}

type nameConfig struct {
	enforceReserved bool
}

// NameOption configures ValidateNameString.
type NameOption func(*nameConfig)

// EnforceReservedChars turns the reserved-character rule on or off.
// It is off by default, which makes ValidateNameString a pass-through.
func EnforceReservedChars(on bool) NameOption {
	return func(c *nameConfig) { c.enforceReserved = on }
}

// ValidateNameString returns a validator for the "name" field that runs on
// the raw input before coercion. With EnforceReservedChars(true) it rejects
// names containing '[' or ']', which are reserved for default names.
func ValidateNameString(opts ...NameOption) schema.Validator {
	cfg := nameConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return schema.Validator{
		Field:  "name",
		Pre:    true,
		Always: true,
		Fn: func(_ string, value any, _ schema.Values) (any, error) {
			if !cfg.enforceReserved {
				return value, nil
			}
			var name string
			switch v := value.(type) {
			case string:
				name = v
			case *string:
				if v != nil {
					name = *v
				}
			}
			if name == "" {
				return value, nil
			}
			if err := First(NoReservedChars("name", name)); err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

// UniqueNames returns a validator for a sequence field requiring the
// non-empty names of its elements to be pairwise distinct.
func UniqueNames[T Named](field string) schema.Validator {
	return schema.Validator{
		Field:  field,
		Always: true,
		Fn: func(_ string, value any, _ schema.Values) (any, error) {
			items, err := sequence[T](field, value)
			if err != nil {
				return nil, err
			}
			names := make([]string, 0, len(items))
			for _, item := range items {
				if n := item.GetName(); n != "" {
					names = append(names, n)
				}
			}
			if err := First(UniqueStrings(field, names)); err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

// UniqueMediumNames returns a validator for a sequence field requiring the
// medium names of its elements, together with the name of the background
// medium in the sibling "medium" field, to be pairwise distinct.
// Names holding exactly one of '[' and ']' are left out of the comparison.
func UniqueMediumNames[T MediumCarrier](field string) schema.Validator {
	return schema.Validator{
		Field:     field,
		Always:    true,
		DependsOn: []string{"medium"},
		Fn: func(_ string, value any, values schema.Values) (any, error) {
			items, err := sequence[T](field, value)
			if err != nil {
				return nil, err
			}
			background, err := schema.Get[Named](values, "medium")
			if err != nil {
				return nil, err
			}

			candidates := make([]string, 0, len(items)+1)
			candidates = append(candidates, background.GetName())
			for _, item := range items {
				if n := item.GetMediumName(); n != "" {
					candidates = append(candidates, n)
				}
			}

			names := candidates[:0]
			for _, n := range candidates {
				if strings.Contains(n, "[") != strings.Contains(n, "]") {
					continue
				}
				names = append(names, n)
			}

			if err := First(UniqueStrings(field, names)); err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

// SetDefaultNames returns a validator for a sequence field that names every
// unnamed element after its position, as in "structures[2]".
// The result is a new slice; the input slice and named elements are left
// untouched. Synthesized names are not checked against explicit ones.
func SetDefaultNames[T Renamable[T]](field string) schema.Validator {
	return schema.Validator{
		Field:  field,
		Always: true,
		Fn: func(_ string, value any, _ schema.Values) (any, error) {
			items, err := sequence[T](field, value)
			if err != nil {
				return nil, err
			}
			named := make([]T, len(items))
			for i, item := range items {
				if item.GetName() == "" {
					item = item.WithName(DefaultName(field, i))
				}
				named[i] = item
			}
			return named, nil
		},
	}
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
