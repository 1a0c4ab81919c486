// Package validate exposes simulation validation over HTTP.
//
// POST /v1/simulations/validate accepts a JSON or YAML simulation document,
// selected by Content-Type, and answers with a Report. Valid documents are
// echoed back with default names filled in. Rejected ones carry a Problem
// locating the failing field:
//
//	{"valid": false, "error": {"message": "...", "kind": "setup",
//	  "path": "Simulation.structures", "index": 2}}
//
// When Accept-Language names a language of the i18n catalog, the problem
// also carries the message rendered in that language.
//
// Status codes: 200 valid, 422 invalid record, 400 undecodable body,
// 413 body over MaxBodySize, 415 unsupported Content-Type.
package validate
