// Package schema hosts declarative record types and runs field validators
// against them.
//
// A Model is an ordered list of fields. Each field may be coerced from raw
// input into its Go type and checked by any number of validators, attached by
// field name when the model is declared. Validators run before coercion (Pre)
// or after it, and see the sibling fields validated so far through Values.
//
// Cross-field reads are declared, not implied: a Validator lists the sibling
// fields it reads in DependsOn, NewModel rejects dependencies on fields that
// come later in declaration order, and Build fails with
// ErrDependencyUnavailable when a declared dependency is absent at run time
// (for example an optional field left unset).
//
//	m := schema.MustModel("Monitor",
//		[]schema.Field{
//			{Name: "name", Default: "", Coerce: schema.As[string]()},
//			{Name: "size", Required: true, Coerce: schema.As[geometry.Vector]()},
//		},
//		validator.AssertPlane(),
//	)
//	values, err := m.Build(map[string]any{"size": []any{1, 0, 1}})
//
// Construction stops at the first failing field. The error is a *FieldError
// naming the record and field, wrapping what the validator returned.
package schema
