// Package spantree selects a maximum-weight spanning tree from a per-arc
// candidate weighting over an arcgraph.Graph.
//
// Algorithm (Kruskal, maximum variant):
//
//  1. Validate: weights has one entry per arc, no NaN; arc count is even and
//     every companion pair (2e, 2e+1) is mutually reversed.
//  2. Undirected edge e weighs max(x[2e], x[2e+1]).
//  3. Sort edges by weight descending with sort.SliceStable, so equal weights
//     keep their original index order. The tie-break is part of the contract:
//     identical inputs always yield the identical tree.
//  4. Scan the sorted edges; take an edge when dsu.Union joins two components.
//     Stop once N-1 edges are taken.
//
// A disconnected input yields a forest with fewer than N-1 edges. Maximum does
// not reject it; treecheck.Structure does.
//
// Complexity:
//
//   - Time:   O(E log E + E·α(N)).
//   - Memory: O(N + E).
package spantree
