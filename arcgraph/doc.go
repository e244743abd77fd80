// Package arcgraph is the read-only graph accessor used by the tree repair
// pipeline.
//
// Nodes are dense integers 0..N-1. Every undirected edge is stored as two
// companion arcs at consecutive indices:
//
//	arc 2e   : u → v
//	arc 2e+1 : v → u
//
// so Companion(k) is k+1 for even k and k-1 for odd k, and EdgeOf(k) = k/2
// names the undirected edge both arcs belong to. Per-arc vectors supplied by
// an external optimizer (candidate weights, 0/1 selections) are indexed by
// arc id.
//
// Construction:
//
//   - New(n) + AddEdge(u, v) always produces well-formed companion pairs.
//   - FromArcs(n, arcs) accepts an arbitrary arc list (range-checked only) so
//     that malformed inputs surface as ErrMalformedEdgeCount or
//     ErrInvalidCompanionEdge at validation time, not at load time.
//
// Lookup:
//
//   - Links(v) returns the out-arcs of v as Link{To, Arc}: the neighbour and
//     the arc id that leads from v to it.
//
// Interop:
//
//   - Undirected() exports the graph as a gonum simple.UndirectedGraph.
//   - Connected() runs gonum's topo.ConnectedComponents as a pre-check.
//
// Fixtures:
//
//   - Path, Cycle, Star, Complete, Grid and RandomConnected build deterministic
//     graphs for tests, benchmarks and the CLI generate command.
package arcgraph
