// File: options.go
// Role: BuilderOption and the resolved builderConfig.

package builder

import "math/rand"

// BuilderOption configures a BuildGraph call.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, read-only view seen by constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil, // no RNG unless explicitly set
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightFn == nil {
		cfg.weightFn = DefaultWeightFn
	}

	return cfg
}

// WithRand uses r for every random draw. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight source. A nil fn keeps the default.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}
