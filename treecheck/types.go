package treecheck

import (
	"errors"

	"github.com/katalvlaran/isotree/arcgraph"
)

// Visit states.
const (
	White = iota // not reached
	Gray         // on the DFS path
	Black        // finished
)

var (
	// ErrCycleDetected indicates the edge set contains a cycle.
	ErrCycleDetected = errors.New("treecheck: cycle detected")

	// ErrUnexpectedEdge indicates a finished node was reached through a non-entry edge.
	ErrUnexpectedEdge = errors.New("treecheck: unexpected edge")

	// ErrDisconnected indicates some node was never reached from the start node.
	ErrDisconnected = errors.New("treecheck: tree is disconnected")

	// ErrUnorderedTree indicates a child with a greater priority than its parent.
	ErrUnorderedTree = errors.New("treecheck: unordered tree")

	// ErrRootOutOfRange indicates a root outside [0, N).
	ErrRootOutOfRange = errors.New("treecheck: root out of range")

	// ErrBufferLength indicates a priority or output buffer of the wrong length.
	ErrBufferLength = errors.New("treecheck: buffer length mismatch")

	// ErrEmptyTree indicates a tree over zero nodes.
	ErrEmptyTree = errors.New("treecheck: tree has no nodes")
)

// Tree is the adjacency view the validators walk. Links(v) must list, for
// every undirected edge incident to v, the neighbour and the arc id oriented
// away from v. *spantree.Tree satisfies it.
type Tree interface {
	Len() int
	Links(v int) []arcgraph.Link
}

// frame is one explicit-stack entry of the iterative DFS.
type frame struct {
	node  int
	entry int // undirected edge id the node was entered through, -1 for the start
	next  int // index of the next link to examine
}
