package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
	"github.com/katalvlaran/longpath/longest"
)

// noPathMessage is printed when a positive cycle is reachable from the start.
const noPathMessage = "Positive cycle detected, no longest path exists."

// jsonResult is the machine-readable solve output.
type jsonResult struct {
	Start     string            `json:"start"`
	Found     bool              `json:"found"`
	Path      []string          `json:"path,omitempty"`
	Weight    int64             `json:"weight"`
	Distances map[string]*int64 `json:"distances,omitempty"`
}

func renderResult(w io.Writer, format string, doc *graphio.Document, res *longest.Result) error {
	names := doc.Names(res.Path)

	switch format {
	case config.FormatJSON:
		out := jsonResult{
			Start:     doc.Name(res.Start),
			Found:     true,
			Path:      names,
			Weight:    res.PathWeight,
			Distances: make(map[string]*int64, len(res.Distances)),
		}
		for v := range res.Distances {
			if d, ok := res.Distance(v); ok {
				out.Distances[doc.Name(v)] = &d
			} else {
				out.Distances[doc.Name(v)] = nil
			}
		}
		return writeJSON(w, out)

	case config.FormatPlain:
		_, err := fmt.Fprintf(w, "Longest path from vertex %s:\n%s\n", doc.Name(res.Start), strings.Join(names, " "))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Longest path from " + doc.Name(res.Start))
	t.AppendHeader(table.Row{"Vertex", "Distance", "Reachable", "On path"})

	onPath := make(map[int]bool, len(res.Path))
	for _, v := range res.Path {
		onPath[v] = true
	}
	for v, d := range res.Distances {
		t.AppendRow(table.Row{doc.Name(v), d.String(), res.Reachable[v], onPath[v]})
	}
	t.AppendFooter(table.Row{"Path", strings.Join(names, " → "), "Weight", res.PathWeight})
	t.Render()

	return nil
}

func renderNoPath(w io.Writer, format string, doc *graphio.Document, start int) error {
	if format == config.FormatJSON {
		return writeJSON(w, jsonResult{Start: doc.Name(start), Found: false})
	}
	_, err := fmt.Fprintln(w, noPathMessage)

	return err
}

func renderStats(w io.Writer, format string, st *core.GraphStats) error {
	if format == config.FormatJSON {
		return writeJSON(w, st)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"vertices", st.VertexCount},
		{"edges", st.EdgeCount},
		{"self-loops", st.SelfLoops},
		{"negative weights", st.NegativeWeight},
		{"zero weights", st.ZeroWeight},
		{"positive weights", st.PositiveWeight},
	})
	if format == config.FormatPlain {
		t.Style().Options = table.OptionsNoBordersAndSeparators
	}
	t.Render()

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
