// Package graphio reads graph definition documents and turns them into
// core.Graph values.
//
// A document names the vertex count, optional vertex labels, an optional
// default start vertex and the edge list:
//
//	vertices: 4
//	labels: [A, B, C, D]
//	start: B
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: A, to: C, weight: 2}
//	  - {from: B, to: C, weight: -3}
//	  - {from: B, to: D, weight: 4}
//	  - {from: C, to: D, weight: 5}
//
// Edge endpoints and start may be labels or decimal indices. Labels win when
// a label looks like a number. When vertices is omitted, the label count is
// used.
//
// Formats: YAML (gopkg.in/yaml.v3), TOML (github.com/pelletier/go-toml/v2)
// and JSON (encoding/json), chosen explicitly or by file extension.
package graphio
