package graphio

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/longpath/core"
)

// NewDocument returns a document over the given labels with no edges.
// It is the programmatic counterpart of Decode.
func NewDocument(labels ...string) (*Document, error) {
	doc := &Document{Vertices: len(labels), Labels: labels}
	if err := doc.buildIndex(); err != nil {
		return nil, err
	}

	return doc, nil
}

// buildIndex settles the vertex count and maps labels to indices.
func (d *Document) buildIndex() error {
	if d.Vertices == 0 {
		d.Vertices = len(d.Labels)
	}
	if d.Vertices <= 0 {
		return ErrNoVertices
	}
	if len(d.Labels) > d.Vertices {
		return fmt.Errorf("%w: %d labels, %d vertices", ErrTooManyLabels, len(d.Labels), d.Vertices)
	}

	d.index = make(map[string]int, len(d.Labels))
	for i, l := range d.Labels {
		if l == "" {
			continue
		}
		if prev, ok := d.index[l]; ok {
			return fmt.Errorf("%w: %q on %d and %d", ErrDuplicateLabel, l, prev, i)
		}
		d.index[l] = i
	}

	return nil
}

// Connect appends an edge by label or index.
func (d *Document) Connect(from, to string, weight int64) {
	d.Edges = append(d.Edges, EdgeSpec{From: from, To: to, Weight: weight})
}

// Resolve maps a label or decimal index to a vertex index.
func (d *Document) Resolve(ref string) (int, error) {
	if v, ok := d.index[ref]; ok {
		return v, nil
	}
	v, err := strconv.Atoi(ref)
	if err != nil || v < 0 || v >= d.Vertices {
		return -1, fmt.Errorf("%w: %q", ErrUnknownVertex, ref)
	}

	return v, nil
}

// Name returns the label of v, or its decimal index when unlabeled.
func (d *Document) Name(v int) string {
	if v >= 0 && v < len(d.Labels) && d.Labels[v] != "" {
		return d.Labels[v]
	}

	return strconv.Itoa(v)
}

// Names maps a vertex path to display names.
func (d *Document) Names(path []int) []string {
	res := make([]string, len(path))
	for i, v := range path {
		res[i] = d.Name(v)
	}

	return res
}

// StartVertex resolves the document's default start. ok is false when the
// document does not name one.
func (d *Document) StartVertex() (v int, ok bool, err error) {
	if d.Start == "" {
		return -1, false, nil
	}
	if v, err = d.Resolve(d.Start); err != nil {
		return -1, false, fmt.Errorf("start: %w", err)
	}

	return v, true, nil
}

// Build creates a core.Graph with the document's vertex count and edges, in
// file order.
func (d *Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	opts = append([]core.GraphOption{core.WithEdgeCapacity(len(d.Edges))}, opts...)
	g, err := core.NewGraph(d.Vertices, opts...)
	if err != nil {
		return nil, err
	}

	var from, to int
	for i, e := range d.Edges {
		if from, err = d.Resolve(e.From); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if to, err = d.Resolve(e.To); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if _, err = g.AddEdge(from, to, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}
