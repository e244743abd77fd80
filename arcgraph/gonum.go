package arcgraph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Undirected exports g as a gonum undirected graph with node ids 0..N-1.
// Self-loop arcs (only possible through FromArcs) are skipped; parallel
// arcs collapse into one gonum edge.
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.nodes; v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, a := range g.arcs {
		if a.From == a.To {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(a.From), simple.Node(a.To)))
	}

	return ug
}

// Connected reports whether every node is reachable from every other node,
// ignoring arc direction. A graph with zero nodes is not connected.
func (g *Graph) Connected() bool {
	if g.nodes == 0 {
		return false
	}

	return len(topo.ConnectedComponents(g.Undirected())) == 1
}
