package treecheck

import (
	"fmt"

	"github.com/katalvlaran/isotree/arcgraph"
)

// descend is called for every tree edge parent→child before the child is
// entered. link.Arc is the arc oriented parent→child.
type descend func(parent int, link arcgraph.Link) error

// walk runs the iterative three-colour DFS from start and then checks that
// every node finished. onDescend may be nil.
func walk(t Tree, start int, onDescend descend) error {
	n := t.Len()
	state := make([]uint8, n) // White for every node
	stack := make([]frame, 0, 64)

	// 1. Seed the stack with start, entered through no edge.
	state[start] = Gray
	stack = append(stack, frame{node: start, entry: -1})

	// 2. Examine one link of the top frame per iteration.
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		links := t.Links(top.node)

		// All links examined: finish the node and pop.
		if top.next >= len(links) {
			state[top.node] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		link := links[top.next]
		top.next++

		// Skip the edge we came in through.
		if arcgraph.EdgeOf(link.Arc) == top.entry {
			continue
		}

		switch state[link.To] {
		case White:
			// Tree edge: report it, then enter the child.
			if onDescend != nil {
				if err := onDescend(top.node, link); err != nil {
					return err
				}
			}
			state[link.To] = Gray
			// top is invalidated by append; it is not used past this point.
			stack = append(stack, frame{node: link.To, entry: arcgraph.EdgeOf(link.Arc)})
		case Gray:
			// The child is on the current path: a cycle closes here.
			return fmt.Errorf("treecheck: node %d reached again from %d via arc %d: %w",
				link.To, top.node, link.Arc, ErrCycleDetected)
		default:
			// Black: a finished subtree reached a second time.
			return fmt.Errorf("treecheck: finished node %d reached from %d via arc %d: %w",
				link.To, top.node, link.Arc, ErrUnexpectedEdge)
		}
	}

	// 3. Anything not finished was never reached.
	for v, s := range state {
		if s != Black {
			return fmt.Errorf("treecheck: node %d not reached from %d: %w", v, start, ErrDisconnected)
		}
	}

	return nil
}
