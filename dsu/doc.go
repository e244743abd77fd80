// Package dsu provides a slice-backed disjoint-set (union-find) over dense
// integer ids 0..n-1.
//
// What & Why
//
//   - Kruskal-style spanning tree construction needs to answer "are u and v
//     already connected?" for every candidate edge. A disjoint-set answers it in
//     near-constant amortized time (inverse Ackermann α(n)).
//   - Plateau detection merges tree neighbours that share a smoothed value.
//
// Implementation
//
//   - Find walks to the root iteratively and compresses the path afterwards,
//     so no recursion depth depends on the input size.
//   - Union attaches the smaller set under the larger one (union by size) and
//     reports whether the two ids were previously disjoint.
//
// Complexity:
//
//   - Time:   O(α(n)) amortized per Find/Union.
//   - Memory: O(n).
//
// Ids outside [0, n) are a programmer error and panic with an index error,
// exactly like indexing the underlying slices would.
package dsu
