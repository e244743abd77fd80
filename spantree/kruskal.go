package spantree

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/dsu"
)

// weightedEdge is an undirected edge with its candidate weight.
type weightedEdge struct {
	weight float64
	edge   int
}

// Maximum computes a maximum-weight spanning tree (forest, if g is
// disconnected) of g under the per-arc weighting.
//
// Error Conditions:
//   - ErrNilGraph, ErrEmptyGraph     : nothing to span.
//   - ErrWeightLength                : len(weights) != g.ArcCount().
//   - ErrInvalidWeight               : some weight is NaN.
//   - arcgraph.ErrMalformedEdgeCount : odd arc count.
//   - arcgraph.ErrInvalidCompanionEdge: a companion pair is not reversed.
func Maximum(g *arcgraph.Graph, weights []float64) (*Tree, error) {
	// 1. Validate shape.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if len(weights) != g.ArcCount() {
		return nil, fmt.Errorf("spantree: %d weights for %d arcs: %w", len(weights), g.ArcCount(), ErrWeightLength)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("spantree: %w", err)
	}

	// 2. Collect undirected edges with their pair weight.
	edges := make([]weightedEdge, 0, g.EdgeCount())
	for k := 0; k < g.ArcCount(); k += 2 {
		if math.IsNaN(weights[k]) || math.IsNaN(weights[k+1]) {
			return nil, fmt.Errorf("spantree: arc pair %d/%d: %w", k, k+1, ErrInvalidWeight)
		}
		edges = append(edges, weightedEdge{
			weight: max(weights[k], weights[k+1]),
			edge:   arcgraph.EdgeOf(k),
		})
	}

	// 3. Heaviest first; equal weights keep ascending edge id order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight > edges[j].weight
	})

	// 4. Kruskal scan.
	set := dsu.New(n)
	selected := make([]int, 0, n-1)
	for _, we := range edges {
		a := g.Arc(arcgraph.ForwardArc(we.edge))
		if set.Union(a.From, a.To) {
			selected = append(selected, we.edge)
			if len(selected) == n-1 {
				break
			}
		}
	}

	return build(g, selected), nil
}

// FromEdges builds a Tree over g from an arbitrary set of undirected edge ids.
// No acyclicity or connectivity check is made; see treecheck.Structure.
func FromEdges(g *arcgraph.Graph, edges []int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, e := range edges {
		if e < 0 || e >= g.EdgeCount() {
			return nil, fmt.Errorf("spantree: edge %d of %d: %w", e, g.EdgeCount(), ErrEdgeOutOfRange)
		}
	}

	return build(g, append([]int(nil), edges...)), nil
}

// build sorts the edge ids and wires both directions of every edge into the
// adjacency. Node v sees arc 2e when it is the source of 2e, else its companion.
func build(g *arcgraph.Graph, edges []int) *Tree {
	sort.Ints(edges)
	t := &Tree{
		nodes: g.NodeCount(),
		edges: edges,
		adj:   make([][]arcgraph.Link, g.NodeCount()),
	}
	for _, e := range edges {
		k := arcgraph.ForwardArc(e)
		a := g.Arc(k)
		t.adj[a.From] = append(t.adj[a.From], arcgraph.Link{To: a.To, Arc: k})
		t.adj[a.To] = append(t.adj[a.To], arcgraph.Link{To: a.From, Arc: arcgraph.Companion(k)})
	}

	return t
}
