// Package dataio reads and writes the plain-text files the CLI works with.
//
// A graph file holds one undirected edge per line as two whitespace-separated
// node names. A line with a single name declares a node without adding an
// edge, which keeps isolated nodes and pins id order. Names are mapped to
// dense ids in first-seen order; blank lines and lines starting with '#' are
// skipped. A vector file holds one float per
// line, indexed by node (q, r) or by arc (x).
package dataio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/isotree/arcgraph"
)

var (
	// ErrSyntax indicates a line that does not parse.
	ErrSyntax = errors.New("dataio: syntax error")

	// ErrNamesMismatch indicates a name table that does not cover the graph.
	ErrNamesMismatch = errors.New("dataio: names do not match graph")
)

// Names maps node names to dense ids and back.
type Names struct {
	ids   map[string]int
	names []string
}

// NewNames returns an empty name table.
func NewNames() *Names {
	return &Names{ids: make(map[string]int)}
}

// Intern returns the id of name, assigning the next free id on first use.
func (n *Names) Intern(name string) int {
	if id, ok := n.ids[name]; ok {
		return id
	}
	id := len(n.names)
	n.ids[name] = id
	n.names = append(n.names, name)
	return id
}

// ID looks up a name.
func (n *Names) ID(name string) (int, bool) {
	id, ok := n.ids[name]
	return id, ok
}

// Name returns the name of id, or "" when id is unknown.
func (n *Names) Name(id int) string {
	if id < 0 || id >= len(n.names) {
		return ""
	}
	return n.names[id]
}

// Len returns the number of names.
func (n *Names) Len() int { return len(n.names) }

// List returns the names indexed by id. The slice is a copy.
func (n *Names) List() []string { return append([]string(nil), n.names...) }

// ReadGraph parses a graph file. Each edge line yields one companion arc pair
// in file order, so edge e of the result is the e-th edge line of the input.
func ReadGraph(r io.Reader) (*arcgraph.Graph, *Names, error) {
	names := NewNames()
	var pairs [][2]int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)
		switch len(parts) {
		case 1:
			names.Intern(parts[0])
		case 2:
			pairs = append(pairs, [2]int{names.Intern(parts[0]), names.Intern(parts[1])})
		default:
			return nil, nil, fmt.Errorf("dataio: line %d: want 1 or 2 fields, got %d: %w", line, len(parts), ErrSyntax)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("dataio: read graph: %w", err)
	}

	g := arcgraph.New(names.Len())
	for i, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, nil, fmt.Errorf("dataio: edge %d (%s %s): %w", i, names.Name(p[0]), names.Name(p[1]), err)
		}
	}

	return g, names, nil
}

// WriteGraph declares every node in id order, then writes every undirected
// edge of g once, as its forward arc. ReadGraph restores the same ids.
func WriteGraph(w io.Writer, g *arcgraph.Graph, names *Names) error {
	if names.Len() != g.NodeCount() {
		return fmt.Errorf("dataio: %d names for %d nodes: %w", names.Len(), g.NodeCount(), ErrNamesMismatch)
	}
	bw := bufio.NewWriter(w)
	for v := 0; v < g.NodeCount(); v++ {
		fmt.Fprintln(bw, names.Name(v))
	}
	for e := 0; e < g.EdgeCount(); e++ {
		a := g.Arc(arcgraph.ForwardArc(e))
		fmt.Fprintf(bw, "%s %s\n", names.Name(a.From), names.Name(a.To))
	}
	return bw.Flush()
}

// ReadVector parses one float per line. Blank lines and '#' comments are
// skipped.
func ReadVector(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("dataio: line %d: %q: %w", line, text, ErrSyntax)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataio: read vector: %w", err)
	}
	return out, nil
}

// WriteVector writes v one value per line with the shortest exact
// representation.
func WriteVector(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)
	for _, x := range v {
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadGraphFile opens path and parses it with ReadGraph.
func ReadGraphFile(path string) (*arcgraph.Graph, *Names, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadGraph(f)
}

// ReadVectorFile opens path and parses it with ReadVector.
func ReadVectorFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVector(f)
}

// WriteVectorFile creates or truncates path and writes v.
func WriteVectorFile(path string, v []float64) error {
	return writeFile(path, func(w io.Writer) error { return WriteVector(w, v) })
}

// WriteGraphFile creates or truncates path and writes g.
func WriteGraphFile(path string, g *arcgraph.Graph, names *Names) error {
	return writeFile(path, func(w io.Writer) error { return WriteGraph(w, g, names) })
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
