// Package isotonic repairs node priorities over a tree so that they are
// non-increasing along every root-to-leaf path.
//
// What & Why
//
//   - The tree comes from a candidate edge weighting and the priorities from a
//     candidate node scoring; nothing forces the two to agree. Smoothing merges
//     violating regions into equal-valued plateaus, the tree analogue of the
//     Pool-Adjacent-Violators step of isotonic regression on a line.
//
// Steps
//
//  1. SelectRoot picks the node with the greatest priority; the first index
//     wins exact ties.
//  2. Smooth walks the tree in post-order from that root. When a child's
//     subtree is finished, a tuning step starts a group at the parent and a
//     max-heap of candidates seeded with the child:
//     - pop the highest candidate (ties: smaller node id first);
//     - while the group average is below it, absorb it and push its tree
//     neighbours other than the one it was reached from;
//     - assign the final average to every absorbed node.
//  3. Plateaus reports the resulting equal-valued connected groups.
//
// Smooth never mutates its input: it returns a fresh slice, so the priority
// vector changes owner explicitly between pipeline stages.
//
// Complexity:
//
//   - Time:   O(Σ k_i log k_i) over tuning steps, k_i = nodes touched by step i;
//     O(N log N) when no plateau grows past a node's own subtree frontier.
//   - Memory: O(N) for the explicit stack, heap and group buffers.
package isotonic
