package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes the document at path, picking the format from the
// file extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document from r. Unknown keys are rejected in every format.
func Decode(r io.Reader, format Format) (*Document, error) {
	var raw rawDocument

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: decode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&raw); err != nil {
			return nil, fmt.Errorf("graphio: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return fromRaw(raw)
}

// fromRaw normalizes endpoints to strings and validates vertex count and labels.
func fromRaw(raw rawDocument) (*Document, error) {
	doc := &Document{
		Vertices: raw.Vertices,
		Labels:   raw.Labels,
		Edges:    make([]EdgeSpec, len(raw.Edges)),
	}

	var err error
	if doc.Start, err = refString(raw.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	for i, e := range raw.Edges {
		spec := EdgeSpec{Weight: e.Weight}
		if spec.From, err = refString(e.From); err != nil {
			return nil, fmt.Errorf("edge %d from: %w", i, err)
		}
		if spec.To, err = refString(e.To); err != nil {
			return nil, fmt.Errorf("edge %d to: %w", i, err)
		}
		doc.Edges[i] = spec
	}

	if err = doc.buildIndex(); err != nil {
		return nil, err
	}

	return doc, nil
}

// refString renders a decoded endpoint as a label or decimal index.
func refString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		// 2^63 is exactly representable; anything at or past it would wrap
		if x == math.Trunc(x) && x >= math.MinInt64 && x < -math.MinInt64 {
			return strconv.FormatInt(int64(x), 10), nil
		}
	}

	return "", fmt.Errorf("%w: %v (%T)", ErrBadEndpoint, v, v)
}
