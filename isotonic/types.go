package isotonic

import (
	"errors"

	"github.com/katalvlaran/isotree/arcgraph"
)

var (
	// ErrEmptyPriorities indicates an empty priority vector.
	ErrEmptyPriorities = errors.New("isotonic: empty priorities")

	// ErrInvalidPriority indicates a NaN or infinite priority.
	ErrInvalidPriority = errors.New("isotonic: non-finite priority")

	// ErrRootOutOfRange indicates a root outside [0, N).
	ErrRootOutOfRange = errors.New("isotonic: root out of range")

	// ErrLengthMismatch indicates len(q) != number of tree nodes.
	ErrLengthMismatch = errors.New("isotonic: priority length mismatch")
)

// Tree is the adjacency the smoother walks. It must be a tree; callers run
// treecheck.Structure first. *spantree.Tree satisfies it.
type Tree interface {
	Len() int
	Links(v int) []arcgraph.Link
}

// Result is the outcome of Smooth.
type Result struct {
	// Priorities are the smoothed values, one per node. Freshly allocated.
	Priorities []float64

	// Merges counts tuning steps that absorbed at least one candidate.
	Merges int

	// Absorbed counts candidates absorbed over all tuning steps. A node may be
	// absorbed more than once as plateaus grow towards the root.
	Absorbed int
}
