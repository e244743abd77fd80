// Package isotree repairs the fractional answer of a tree-structured module
// search into a discrete, valid one.
//
// An external solver proposes a weight for every directed arc (x) and a
// priority for every node (q). isotree keeps the maximum-weight spanning tree
// of x, roots it at the highest priority, smooths q so it never increases
// away from the root, and emits the oriented 0/1 arc selection together with
// a one-hot root indicator.
//
// Packages:
//
//	dsu/       disjoint-set forest used by Kruskal and plateau grouping
//	arcgraph/  companion-arc graph, validation, fixtures, gonum bridge
//	spantree/  maximum spanning tree over companion pairs
//	treecheck/ iterative DFS validators and orientation emitter
//	isotonic/  root selection, isotonic tree smoothing, plateaus
//	repair/    the end-to-end pipeline and failure kinds
//	dotviz/    Graphviz DOT export and SVG rendering
//
// Quick ASCII example, q in brackets:
//
//	A[1] ─── B[1] ─── C[1] ─── D[5]
//
// becomes the path D → C → B → A rooted at D, with q unchanged.
//
// The isotree command (cmd/isotree) wraps repair with file I/O, a TOML
// config and DOT/SVG output.
package isotree
