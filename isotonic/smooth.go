package isotonic

import (
	"container/heap"
	"fmt"
)

// frame is one explicit-stack entry of the post-order walk.
type frame struct {
	node   int
	parent int // -1 for the root
	next   int // index of the next link to examine
}

// smoother holds the buffers reused by every tuning step of one Smooth call.
type smoother struct {
	tree    Tree
	q       []float64
	queue   candidateHeap
	changed []int
	res     *Result
}

// Smooth returns priorities repaired so that every tree edge parent→child,
// oriented away from root, satisfies q[child] <= q[parent]. The input slice
// is not modified.
//
// Error Conditions:
//   - ErrLengthMismatch  : len(q) != t.Len().
//   - ErrRootOutOfRange  : root outside [0, N).
//   - ErrInvalidPriority : some priority is NaN or infinite.
func Smooth(t Tree, root int, q []float64) (*Result, error) {
	n := t.Len()
	if len(q) != n {
		return nil, fmt.Errorf("isotonic: %d priorities for %d nodes: %w", len(q), n, ErrLengthMismatch)
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("isotonic: root %d with %d nodes: %w", root, n, ErrRootOutOfRange)
	}
	if err := checkFinite(q); err != nil {
		return nil, err
	}

	res := &Result{Priorities: append([]float64(nil), q...)}
	s := &smoother{tree: t, q: res.Priorities, res: res}

	// Iterative post-order: a node is tuned against its parent right after its
	// own subtree finishes, before the parent moves to its next child.
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: root, parent: -1})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		links := t.Links(top.node)

		// 1. Descend into the next child, skipping the parent link.
		if top.next < len(links) {
			to := links[top.next].To
			top.next++
			if to != top.parent {
				stack = append(stack, frame{node: to, parent: top.node})
			}
			continue
		}

		// 2. Subtree finished: pop it and repair it against its parent.
		done := *top
		stack = stack[:len(stack)-1]
		if done.parent >= 0 {
			s.tune(done.parent, done.node)
		}
	}

	return res, nil
}

// tune grows a group from parent into the finished subtree of child while the
// group average stays below the best remaining candidate, then flattens the
// group to its average.
func (s *smoother) tune(parent, child int) {
	// 1. The group starts as the parent alone.
	count := 1
	average := s.q[parent]
	s.changed = append(s.changed[:0], parent)

	// 2. Seed the queue with the child; it must never walk back to parent.
	s.queue = s.queue[:0]
	heap.Push(&s.queue, candidate{key: s.q[child], node: child, from: parent})

	// 3. Absorb the best candidate while it still outranks the group.
	for s.queue.Len() > 0 {
		c := heap.Pop(&s.queue).(candidate)
		if !(average < c.key) {
			break // the rest of the queue is no higher
		}
		for _, l := range s.tree.Links(c.node) {
			if l.To != c.from {
				heap.Push(&s.queue, candidate{key: s.q[l.To], node: l.To, from: c.node})
			}
		}
		s.changed = append(s.changed, c.node)
		// Incremental mean: no running sum to overflow.
		count++
		average += (c.key - average) / float64(count)
	}

	// 4. Flatten the group.
	if len(s.changed) > 1 {
		s.res.Merges++
		s.res.Absorbed += len(s.changed) - 1
	}
	for _, v := range s.changed {
		s.q[v] = average
	}
}
