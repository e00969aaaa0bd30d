// Package builder provides deterministic generators for core.Graph fixtures.
//
// A Constructor adds edges to a graph that already has its vertices; several
// constructors can be composed in one BuildGraph call and are applied in the
// order given. Randomized constructors draw from a seeded *rand.Rand, so the
// same seed, options and constructor order always yield the same edge
// sequence (and therefore the same tie-breaking in the solver).
//
// Constructors:
//
//	Path()               0→1→…→n-1
//	Cycle()              Path plus the closing edge n-1→0
//	RandomDAG(p)         each forward pair u<v independently with probability p
//	Layered(width)       full bipartite links between consecutive layers
//
// Options (BuilderOption):
//
//	WithSeed(seed)       deterministic RNG
//	WithRand(r)          caller-owned RNG
//	WithWeightFn(fn)     edge weight source, default constant 1
//
// Weight sources: ConstantWeightFn, UniformWeightFn, DefaultWeightFn.
package builder
