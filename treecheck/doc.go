// Package treecheck validates that an edge set forms a single spanning tree
// and, once priorities are smoothed, emits the tree's orientation away from
// its root.
//
// Both validators run an iterative depth-first search over an explicit stack
// of (node, entry edge, next link) frames, so depth is bounded by heap memory
// rather than the goroutine stack. Nodes carry three states:
//
//	White – not reached yet
//	Gray  – on the current DFS path
//	Black – fully explored
//
// The link a node was entered through is skipped by undirected edge id, not
// by neighbour id, so a doubled edge back to the parent is reported as a cycle.
//
// Errors (all are structural-invariant violations; callers must not retry):
//
//   - ErrCycleDetected  – a Gray node was reached again.
//   - ErrUnexpectedEdge – a Black node was reached through a non-entry edge.
//     Impossible for a symmetric adjacency; it flags an internal bug.
//   - ErrDisconnected   – some node stayed non-Black after the walk.
//   - ErrUnorderedTree  – Ordered found q[child] > q[parent].
package treecheck
