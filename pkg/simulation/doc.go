// Package simulation defines the simulation records (domain, background
// medium, structures, sources and monitors) and builds them through
// validated schema models.
//
// Every record is constructed field by field; the invariants are enforced by
// the validator factories attached to each model:
//
//   - flux monitors and plane-wave sources must be planar;
//   - structure, source and monitor names must be unique per field, as must
//     the medium names of the structures together with the background medium;
//   - every structure, source and monitor must intersect the simulation domain;
//   - unnamed elements are named after their position, e.g. "monitors[0]".
//
// Documents decode from JSON or YAML:
//
//	f, _ := os.Open("waveguide.yaml")
//	sim, err := simulation.Decode(f, simulation.FormatYAML)
//	if err != nil {
//		if failure, ok := simulation.Explain(err); ok {
//			fmt.Println(failure.Path, failure.Message)
//		}
//	}
//
// Names holding '[' or ']' are accepted unless WithReservedNameChars(true)
// is passed, which rejects them since they could collide with default names.
package simulation
