// Package validator provides composable validation rules and the field
// validator factories attached to simulation record models.
//
// A Rule pairs a Check function with a ValidationError describing the
// failure. First evaluates rules in order and stops at the first failure.
//
// The factories return schema.Validator values bound to one field:
//
//   - AssertPlane: "size" must have exactly one zero extent.
//   - ValidateNameString: optional rejection of '[' and ']' in "name".
//   - UniqueNames / UniqueMediumNames: no repeated names in a sequence field.
//   - ObjectsInSimBounds: every element intersects the simulation domain
//     built from the sibling "size" and "center" fields.
//   - SetDefaultNames: unnamed elements become "<field>[<index>]".
//
// Sequence factories are generic over the element type, which must implement
// the small interfaces in this package (Named, Placed, MediumCarrier,
// Renamable).
//
//	model := schema.MustModel("Simulation", fields,
//		validator.UniqueNames[Structure]("structures"),
//		validator.ObjectsInSimBounds[Structure]("structures"),
//		validator.SetDefaultNames[Structure]("structures"),
//	)
//
// # Error kinds
//
// Every ValidationError carries a Kind. KindValidation failures (non-planar
// size, out-of-range values) match ErrValidation under errors.Is; KindSetup
// failures (duplicate names, objects outside the domain, reserved
// characters) match ErrSetup.
package validator
