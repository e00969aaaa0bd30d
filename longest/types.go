// Package longest defines core types, sentinel errors and configuration
// options for the longest-path solver.
package longest

import (
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors returned by the solver.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to LongestPath.
	ErrGraphNil = errors.New("longest: graph is nil")

	// ErrVertexOutOfRange indicates a start vertex outside [0, VertexCount()).
	// It is the core sentinel so callers can match either name.
	ErrVertexOutOfRange = core.ErrVertexOutOfRange

	// ErrNoPathExists indicates that a cycle of positive total weight is
	// reachable from the start vertex, so the longest path is unbounded.
	ErrNoPathExists = errors.New("longest: positive cycle reachable, no longest path exists")

	// ErrOverflow indicates that a longest distance left the int64 range.
	ErrOverflow = errors.New("longest: distance overflows int64")

	// ErrInconsistentPath indicates that reconstruction input is inconsistent:
	// mismatched table sizes, or a walk that would revisit a vertex.
	ErrInconsistentPath = errors.New("longest: inconsistent distance table")
)

// Distance is an extended integer: either unreached (conceptually -∞) or a
// finite path weight. The zero value is unreached.
type Distance struct {
	Reached bool  // false means unreached
	Value   int64 // meaningful only when Reached
}

// Finite returns a reached Distance with value v.
func Finite(v int64) Distance {
	return Distance{Reached: true, Value: v}
}

// Less reports d < o, ordering unreached below every finite value.
// Two unreached distances are equal.
func (d Distance) Less(o Distance) bool {
	if !o.Reached {
		return false
	}
	if !d.Reached {
		return true
	}

	return d.Value < o.Value
}

// Add returns d+w. Unreached stays unreached. ErrOverflow is returned when the
// sum does not fit in int64.
func (d Distance) Add(w int64) (Distance, error) {
	if !d.Reached {
		return d, nil
	}
	sum, err := addInt64(d.Value, w)
	if err != nil {
		return Distance{}, err
	}

	return Finite(sum), nil
}

// String renders "-inf" for unreached and the decimal value otherwise.
func (d Distance) String() string {
	if !d.Reached {
		return "-inf"
	}

	return strconv.FormatInt(d.Value, 10)
}

// addInt64 adds with overflow detection.
func addInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// Result is the outcome of a successful LongestPath call.
type Result struct {
	// Start is the query's start vertex.
	Start int

	// Path lists the vertices of the reconstructed path, beginning with Start.
	Path []int

	// PathWeight is the longest distance from Start to the last vertex of Path.
	PathWeight int64

	// Distances holds the best distance from Start for every vertex.
	Distances []Distance

	// Reachable marks vertices reachable from Start.
	Reachable []bool

	// Passes is the number of relaxation passes performed.
	Passes int
}

// Distance returns the best distance to v and whether v was reached.
func (r *Result) Distance(v int) (int64, bool) {
	if v < 0 || v >= len(r.Distances) || !r.Distances[v].Reached {
		return 0, false
	}

	return r.Distances[v].Value, true
}

// End returns the last vertex of the path.
func (r *Result) End() int {
	return r.Path[len(r.Path)-1]
}

// Len returns the number of edges on the path.
func (r *Result) Len() int {
	return len(r.Path) - 1
}

// Options configures the solver.
//
// EarlyExit does not change distances or paths, only Result.Passes.
type Options struct {
	Logger    *slog.Logger // debug records about passes and outcome; default discards
	EarlyExit bool         // stop relaxing once a full pass changes nothing
}

// Option represents a functional option for configuring LongestPath.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithEarlyExit stops relaxation after the first pass without improvement.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns Options with a discarding logger and the full
// V-1 relaxation passes.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		EarlyExit: false,
	}
}
