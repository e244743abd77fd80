package treecheck

import (
	"fmt"

	"github.com/katalvlaran/isotree/arcgraph"
)

// Ordered walks t from root, asserting q[child] <= q[parent] on every tree
// edge, and emits the orientation:
//
//   - selection (one slot per arc) is zeroed, then every parent→child arc is set to 1;
//   - rootMark (one slot per node) is zeroed, then rootMark[root] = 1.
//
// selection must have one slot per graph arc.
// On error the contents of selection and rootMark are undefined.
func Ordered(t Tree, root int, q, selection, rootMark []float64) error {
	n := t.Len()
	if n == 0 {
		return ErrEmptyTree
	}
	if root < 0 || root >= n {
		return fmt.Errorf("treecheck: root %d with %d nodes: %w", root, n, ErrRootOutOfRange)
	}
	if len(q) != n || len(rootMark) != n {
		return fmt.Errorf("treecheck: %d priorities, %d root slots for %d nodes: %w",
			len(q), len(rootMark), n, ErrBufferLength)
	}

	clear(selection)
	clear(rootMark)
	rootMark[root] = 1

	return walk(t, root, func(parent int, link arcgraph.Link) error {
		// Negated so that NaN on either side also fails.
		if !(q[link.To] <= q[parent]) {
			return fmt.Errorf("treecheck: q[%d]=%g > q[%d]=%g: %w",
				link.To, q[link.To], parent, q[parent], ErrUnorderedTree)
		}
		if link.Arc < 0 || link.Arc >= len(selection) {
			return fmt.Errorf("treecheck: arc %d with %d selection slots: %w",
				link.Arc, len(selection), ErrBufferLength)
		}
		selection[link.Arc] = 1

		return nil
	})
}
