package arcgraph

import "fmt"

// Graph is an immutable-after-construction arc list with per-node adjacency.
// It is not safe for concurrent mutation; concurrent reads are fine.
type Graph struct {
	nodes int
	arcs  []Arc
	adj   [][]Link // adj[v]: out-arcs of v in arc id order
}

// New returns an empty graph over nodes 0..n-1. A negative n is treated as zero.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{nodes: n, adj: make([][]Link, n)}
}

// FromArcs builds a graph from a raw arc list. Only node ranges are checked;
// companion pairing is validated later by Validate or CheckCompanion.
func FromArcs(n int, arcs []Arc) (*Graph, error) {
	g := New(n)
	g.arcs = make([]Arc, 0, len(arcs))
	for k, a := range arcs {
		if !g.hasNode(a.From) || !g.hasNode(a.To) {
			return nil, fmt.Errorf("arcgraph: arc %d (%d→%d) with %d nodes: %w", k, a.From, a.To, n, ErrNodeOutOfRange)
		}
		g.appendArc(a)
	}

	return g, nil
}

// AddEdge appends the companion pair u→v, v→u and returns the even arc id.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if !g.hasNode(u) || !g.hasNode(v) {
		return -1, fmt.Errorf("arcgraph: AddEdge(%d, %d) with %d nodes: %w", u, v, g.nodes, ErrNodeOutOfRange)
	}
	if u == v {
		return -1, fmt.Errorf("arcgraph: AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if len(g.arcs)%2 != 0 {
		// A FromArcs graph with a dangling arc cannot grow well-formed pairs.
		return -1, fmt.Errorf("arcgraph: AddEdge(%d, %d): %w", u, v, ErrMalformedEdgeCount)
	}
	k := len(g.arcs)
	g.appendArc(Arc{From: u, To: v})
	g.appendArc(Arc{From: v, To: u})

	return k, nil
}

func (g *Graph) appendArc(a Arc) {
	k := len(g.arcs)
	g.arcs = append(g.arcs, a)
	g.adj[a.From] = append(g.adj[a.From], Link{To: a.To, Arc: k})
}

func (g *Graph) hasNode(v int) bool { return v >= 0 && v < g.nodes }

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.nodes }

// ArcCount returns the number of stored arcs (2E for a well-formed graph).
func (g *Graph) ArcCount() int { return len(g.arcs) }

// EdgeCount returns the number of complete companion pairs.
func (g *Graph) EdgeCount() int { return len(g.arcs) / 2 }

// Arc returns arc k. It panics when k is out of range, like a slice index.
func (g *Graph) Arc(k int) Arc { return g.arcs[k] }

// Arcs returns a copy of the arc list.
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, len(g.arcs))
	copy(out, g.arcs)

	return out
}

// Links returns the out-arcs of v. The returned slice is shared; do not modify it.
func (g *Graph) Links(v int) []Link { return g.adj[v] }

// CheckCompanion verifies that arc k and its companion are mutually reversed.
func (g *Graph) CheckCompanion(k int) error {
	c := Companion(k)
	if k < 0 || c < 0 || k >= len(g.arcs) || c >= len(g.arcs) {
		return fmt.Errorf("arcgraph: companion of arc %d: %w", k, ErrArcOutOfRange)
	}
	if g.arcs[c] != g.arcs[k].Reversed() {
		return fmt.Errorf("arcgraph: arc %d (%d→%d) vs arc %d (%d→%d): %w",
			k, g.arcs[k].From, g.arcs[k].To, c, g.arcs[c].From, g.arcs[c].To, ErrInvalidCompanionEdge)
	}

	return nil
}

// Validate checks the arc count parity and every companion pair.
func (g *Graph) Validate() error {
	if len(g.arcs)%2 != 0 {
		return fmt.Errorf("arcgraph: %d arcs: %w", len(g.arcs), ErrMalformedEdgeCount)
	}
	for k := 0; k < len(g.arcs); k += 2 {
		if err := g.CheckCompanion(k); err != nil {
			return err
		}
	}

	return nil
}
