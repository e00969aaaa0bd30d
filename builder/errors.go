// File: errors.go
// Role: sentinel errors returned by constructors.

package builder

import "errors"

// ErrTooFewVertices indicates the graph is too small for the requested shape.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps failures from the underlying graph or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("builder: invalid option value")
