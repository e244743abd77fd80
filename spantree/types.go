package spantree

import (
	"errors"

	"github.com/katalvlaran/isotree/arcgraph"
)

var (
	// ErrNilGraph indicates a nil *arcgraph.Graph.
	ErrNilGraph = errors.New("spantree: graph is nil")

	// ErrEmptyGraph indicates a graph with zero nodes; no tree has a root.
	ErrEmptyGraph = errors.New("spantree: graph has no nodes")

	// ErrWeightLength indicates len(weights) != number of arcs.
	ErrWeightLength = errors.New("spantree: weight vector length mismatch")

	// ErrInvalidWeight indicates a NaN candidate weight, which has no order.
	ErrInvalidWeight = errors.New("spantree: NaN weight")

	// ErrEdgeOutOfRange indicates an undirected edge id outside [0, E).
	ErrEdgeOutOfRange = errors.New("spantree: edge out of range")
)

// Tree is a set of undirected edges of a graph together with its adjacency.
// It is usually a spanning tree, but FromEdges may build any edge subset,
// which is exactly what the validators need to be tested against.
type Tree struct {
	nodes int
	edges []int             // undirected edge ids, ascending
	adj   [][]arcgraph.Link // adj[v]: neighbour and the arc leading v → neighbour
}

// Len returns the number of nodes spanned.
func (t *Tree) Len() int { return t.nodes }

// EdgeCount returns the number of selected undirected edges.
func (t *Tree) EdgeCount() int { return len(t.edges) }

// Edges returns a copy of the selected undirected edge ids in ascending order.
func (t *Tree) Edges() []int {
	out := make([]int, len(t.edges))
	copy(out, t.edges)

	return out
}

// Links returns the tree adjacency of v with arc ids oriented away from v.
// The returned slice is shared; do not modify it.
func (t *Tree) Links(v int) []arcgraph.Link { return t.adj[v] }

// Degree returns the number of tree neighbours of v.
func (t *Tree) Degree(v int) int { return len(t.adj[v]) }

// Neighbor returns the i-th tree neighbour of v.
func (t *Tree) Neighbor(v, i int) int { return t.adj[v][i].To }

// Weight sums max(x[2e], x[2e+1]) over the selected edges.
func (t *Tree) Weight(weights []float64) float64 {
	var total float64
	for _, e := range t.edges {
		k := arcgraph.ForwardArc(e)
		total += max(weights[k], weights[k+1])
	}

	return total
}
