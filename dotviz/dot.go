package dotviz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/isotree/arcgraph"
)

const selectedEps = 1e-5

var (
	// ErrNilGraph is returned when ToDOT is given no graph.
	ErrNilGraph = errors.New("dotviz: graph is nil")

	// ErrLength indicates a vector that does not match the graph.
	ErrLength = errors.New("dotviz: vector length mismatch")
)

// Options configures the drawing.
type Options struct {
	// Name is the digraph identifier, written quoted. Defaults to "G".
	Name string

	// Names are node display names indexed by id. Missing or empty entries
	// fall back to the numeric id.
	Names []string

	// Threshold splits red (above) from yellow (at or below) nodes.
	Threshold float64
}

// ToDOT renders the oriented tree: selection has one slot per arc (1 marks a
// tree arc), q one priority per node, root is the tree root.
func ToDOT(g *arcgraph.Graph, selection, q []float64, root int, opts Options) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if len(selection) != g.ArcCount() {
		return "", fmt.Errorf("dotviz: %d selection slots for %d arcs: %w", len(selection), g.ArcCount(), ErrLength)
	}
	if len(q) != g.NodeCount() {
		return "", fmt.Errorf("dotviz: %d priorities for %d nodes: %w", len(q), g.NodeCount(), ErrLength)
	}
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(name))
	for v := 0; v < g.NodeCount(); v++ {
		color, shape := nodeStyle(q[v], v == root, opts.Threshold)
		fmt.Fprintf(&buf, "  N_%d [shape = %s, style = filled, fillcolor = %s, label = %s];\n",
			v, shape, color, label(v, q[v], opts.Names))
	}
	for k, x := range selection {
		if math.Abs(x-1) < selectedEps {
			a := g.Arc(k)
			fmt.Fprintf(&buf, "  N_%d -> N_%d [ color = blue ];\n", a.From, a.To)
		}
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

func nodeStyle(q float64, root bool, threshold float64) (color, shape string) {
	color, shape = "yellow", "box"
	if q > threshold {
		color = "red"
	}
	if root {
		shape = "ellipse"
		if color == "yellow" {
			color = "green"
		}
	}
	return color, shape
}

func label(v int, q float64, names []string) string {
	name := ""
	if v < len(names) {
		name = names[v]
	}
	if name == "" {
		name = fmt.Sprint(v)
	}
	return quoteText(name, fmt.Sprintf(`\n%.4f`, q))
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted ID; any name is a valid graph ID
// once quoted.
func quote(s string) string { return quoteText(s, "") }

// quoteText quotes s and appends raw, which is already DOT-escaped.
func quoteText(s, raw string) string {
	return `"` + dotEscaper.Replace(s) + raw + `"`
}

// RenderSVG lays out a DOT graph and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("dotviz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("dotviz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("dotviz: render: %w", err)
	}
	return buf.Bytes(), nil
}
