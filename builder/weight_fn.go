// File: weight_fn.go
// Role: edge weight sources for constructors.

package builder

import (
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight. It must be deterministic for a given
// RNG state; rng may be nil for non-random sources.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi] inclusive. Bounds are
// swapped when hi < lo. Any span is supported, up to the full int64 range.
// With a nil rng it yields lo.
// Complexity: O(1) expected.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo) // exact: hi-lo fits in uint64

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 0 {
			return lo
		}

		return int64(uint64(lo) + uniformUint64(rng, span))
	}
}

// uniformUint64 draws uniformly from [0, span].
func uniformUint64(rng *rand.Rand, span uint64) uint64 {
	switch {
	case span == math.MaxUint64:
		return rng.Uint64()
	case span < math.MaxInt64:
		return uint64(rng.Int63n(int64(span + 1)))
	}
	// span+1 > 2^63: rejection accepts more than half of the draws
	n := span + 1
	for {
		if x := rng.Uint64(); x < n {
			return x
		}
	}
}
