package longest

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/dfs"
)

// LongestPath computes the longest path from start in g.
//
// Returns:
//
//   - res: path, its weight, the distance table and the reachability set.
//   - err: ErrGraphNil, ErrVertexOutOfRange, ErrNoPathExists, ErrOverflow or
//     ErrInconsistentPath (all wrapped with context; test with errors.Is).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. start must be in [0, V) (ErrVertexOutOfRange).
//
// The graph is not mutated. Edges are read from a snapshot taken at the start
// of the call, so the tie-breaking order is fixed for the whole query.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
func LongestPath(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("longest: start %d not in [0,%d): %w", start, g.VertexCount(), ErrVertexOutOfRange)
	}

	// 3) Snapshot and scan reachability
	snap := g.Snapshot()
	reach, err := dfs.Reachable(snap, start)
	if err != nil {
		return nil, fmt.Errorf("longest: reachability from %d: %w", start, err)
	}

	r := &runner{
		n:     snap.VertexCount(),
		edges: snap.Edges(),
		reach: reach,
		dist:  make([]wideDist, snap.VertexCount()),
		opts:  cfg,
		log:   cfg.Logger.With(slog.Int("start", start)),
	}

	// 4) Relax, check for positive cycles, then narrow to int64
	r.init(start)
	r.relax()
	if err = r.detect(); err != nil {
		r.log.Debug("cycle check failed", slog.Int("passes", r.passes), slog.Any("err", err))
		return nil, err
	}
	dist, err := r.narrow()
	if err != nil {
		r.log.Debug("distance overflow", slog.Any("err", err))
		return nil, err
	}

	// 5) Rebuild the path
	path, weight, err := Reconstruct(r.edges, start, dist, r.reach)
	if err != nil {
		r.log.Debug("reconstruction failed", slog.Any("err", err))
		return nil, err
	}
	r.log.Debug("longest path found",
		slog.Int("passes", r.passes),
		slog.Int("vertices", len(path)),
		slog.Int64("weight", weight),
	)

	return &Result{
		Start:      start,
		Path:       path,
		PathWeight: weight,
		Distances:  dist,
		Reachable:  r.reach,
		Passes:     r.passes,
	}, nil
}

// runner holds the mutable state for a single LongestPath execution.
type runner struct {
	n      int          // vertex count
	edges  []core.Edge  // snapshot edges in insertion order; read-only
	reach  []bool       // reachability from start; read-only after scan
	dist   []wideDist   // best-known distance per vertex, exact
	opts   Options      // configuration
	log    *slog.Logger // logger bound to this query
	passes int          // relaxation passes performed
}

// init sets every distance to unreached except the start, which is 0.
func (r *runner) init(start int) {
	for v := range r.dist {
		r.dist[v] = wideDist{}
	}
	r.dist[start] = wideDist{reached: true}
}

// relax performs V-1 passes over all edges, or fewer with EarlyExit when a
// pass makes no change. V <= 1 means zero passes.
func (r *runner) relax() {
	for i := 0; i < r.n-1; i++ {
		changed := r.pass()
		r.passes++
		if !changed && r.opts.EarlyExit {
			r.log.Debug("relaxation converged early", slog.Int("passes", r.passes))
			break
		}
	}
}

// pass relaxes every edge once and reports whether any distance improved.
func (r *runner) pass() bool {
	changed := false
	var e core.Edge
	for _, e = range r.edges {
		if cand, better := r.candidate(e); better {
			r.dist[e.To] = cand
			changed = true
		}
	}

	return changed
}

// detect runs one extra pass without updating; any strict improvement means
// a positive cycle is reachable from start. It runs even when V <= 1 so a
// positive self-loop on the start vertex is caught.
func (r *runner) detect() error {
	var e core.Edge
	for _, e = range r.edges {
		if _, better := r.candidate(e); better {
			return fmt.Errorf("%w: edge %d→%d weight=%d still improves %d",
				ErrNoPathExists, e.From, e.To, e.Weight, e.To)
		}
	}

	return nil
}

// candidate computes dist[From]+Weight for edge e and reports whether it is
// strictly greater than dist[To]. Edges leaving unreachable or unreached
// vertices never qualify.
func (r *runner) candidate(e core.Edge) (wideDist, bool) {
	from := r.dist[e.From]
	if !r.reach[e.From] || !from.reached {
		return wideDist{}, false
	}
	cand := wideDist{reached: true, v: from.v.add(e.Weight)}
	to := r.dist[e.To]

	return cand, !to.reached || to.v.less(cand.v)
}

// narrow converts the exact table to Distances. A reached vertex whose
// longest distance leaves the int64 range fails with ErrOverflow.
func (r *runner) narrow() ([]Distance, error) {
	res := make([]Distance, r.n)
	for v, d := range r.dist {
		if !d.reached {
			continue
		}
		val, ok := d.v.int64()
		if !ok {
			return nil, fmt.Errorf("%w: longest distance to %d", ErrOverflow, v)
		}
		res[v] = Finite(val)
	}

	return res, nil
}
