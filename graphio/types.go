package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by graphio.
var (
	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrNoVertices indicates a document with neither a vertex count nor labels.
	ErrNoVertices = errors.New("graphio: document declares no vertices")

	// ErrTooManyLabels indicates more labels than declared vertices.
	ErrTooManyLabels = errors.New("graphio: more labels than vertices")

	// ErrDuplicateLabel indicates two vertices share a label.
	ErrDuplicateLabel = errors.New("graphio: duplicate vertex label")

	// ErrUnknownVertex indicates a reference that is neither a label nor a valid index.
	ErrUnknownVertex = errors.New("graphio: unknown vertex")

	// ErrBadEndpoint indicates an edge endpoint of an unsupported type.
	ErrBadEndpoint = errors.New("graphio: edge endpoint must be a label or an integer index")
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name ("yml" included) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// EdgeSpec is one edge of a Document. From and To are labels or decimal indices.
type EdgeSpec struct {
	From   string
	To     string
	Weight int64
}

// Document is a decoded graph definition.
type Document struct {
	// Vertices is the vertex count.
	Vertices int

	// Labels optionally names vertices 0..len(Labels)-1.
	Labels []string

	// Start optionally names the default start vertex.
	Start string

	// Edges in file order; this order is the graph's insertion order.
	Edges []EdgeSpec

	index map[string]int // label → vertex
}

// rawEdge and rawDocument mirror the file layout. Endpoints are decoded as
// any so both `from: A` and `from: 0` are accepted in every format.
type rawEdge struct {
	From   any   `yaml:"from" json:"from" toml:"from"`
	To     any   `yaml:"to" json:"to" toml:"to"`
	Weight int64 `yaml:"weight" json:"weight" toml:"weight"`
}

type rawDocument struct {
	Vertices int       `yaml:"vertices" json:"vertices" toml:"vertices"`
	Labels   []string  `yaml:"labels" json:"labels" toml:"labels"`
	Start    any       `yaml:"start" json:"start" toml:"start"`
	Edges    []rawEdge `yaml:"edges" json:"edges" toml:"edges"`
}
