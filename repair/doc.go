// Package repair is the single entry point that turns a candidate
// (fractional) assignment into a structurally valid discrete answer: a
// spanning tree oriented away from one root whose node priorities never
// increase along a root-to-leaf path.
//
// Pipeline
//
//	candidate weights ─► spantree.Maximum ─► treecheck.Structure
//	                 ─► isotonic.SelectRoot ─► isotonic.Smooth
//	                 ─► treecheck.Ordered (orientation + root indicator)
//
// Entry points
//
//   - Repair(g, weights, q, opts...) never mutates its inputs and returns a
//     Result owning fresh Priorities, Selection and RootIndicator slices.
//   - RepairInPlace(g, x, q, r, opts...) keeps the dual-purpose buffer shape
//     used by heuristic callbacks: x is read as weights and overwritten with
//     the 0/1 selection, q is smoothed in place, r becomes one-hot.
//
// Errors
//
// Every failure is a structural-invariant violation or an invalid call; none
// is retried internally. KindOf classifies an error into the tagged set
// (MalformedEdgeCount, InvalidCompanionEdge, CycleDetected, UnexpectedEdge,
// Disconnected, UnorderedTree, InvalidInput) so the calling search loop can
// decide whether to drop the candidate, skip the heuristic or abort. Outputs
// are undefined whenever an error is returned.
//
// Concurrency
//
// A call is synchronous and runs to completion. Concurrent calls are safe as
// long as they do not share output buffers; RepairInPlace requires exclusive
// access to x, q and r for its duration.
package repair
