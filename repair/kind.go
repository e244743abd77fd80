package repair

import (
	"errors"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/treecheck"
)

// Kind tags a repair failure.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota

	// KindInvalidInput covers malformed calls: nil graph, length mismatches,
	// NaN weights, non-finite priorities, empty graphs.
	KindInvalidInput

	// KindMalformedEdgeCount: the arc list has odd length.
	KindMalformedEdgeCount

	// KindInvalidCompanionEdge: arcs 2e and 2e+1 are not mutually reversed.
	KindInvalidCompanionEdge

	// KindCycleDetected: a walk reached a node still on its path.
	KindCycleDetected

	// KindUnexpectedEdge: a walk reached a finished node through a non-entry edge.
	KindUnexpectedEdge

	// KindDisconnected: some node is unreachable from the walk's start.
	KindDisconnected

	// KindUnorderedTree: a child still outranks its parent after smoothing.
	KindUnorderedTree
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindInvalidInput:         "invalid input",
	KindMalformedEdgeCount:   "malformed edge count",
	KindInvalidCompanionEdge: "invalid companion edge",
	KindCycleDetected:        "cycle detected",
	KindUnexpectedEdge:       "unexpected edge",
	KindDisconnected:         "disconnected",
	KindUnorderedTree:        "unordered tree",
}

// String returns the lower-case kind name, or "unknown".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Fatal reports whether k is a structural-invariant violation, as opposed to
// a malformed call (KindInvalidInput) or no error at all.
func (k Kind) Fatal() bool {
	return k >= KindMalformedEdgeCount && k <= KindUnorderedTree
}

// KindOf classifies err. nil maps to KindNone; errors outside the structural
// set map to KindInvalidInput.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, arcgraph.ErrMalformedEdgeCount):
		return KindMalformedEdgeCount
	case errors.Is(err, arcgraph.ErrInvalidCompanionEdge):
		return KindInvalidCompanionEdge
	case errors.Is(err, treecheck.ErrCycleDetected):
		return KindCycleDetected
	case errors.Is(err, treecheck.ErrUnexpectedEdge):
		return KindUnexpectedEdge
	case errors.Is(err, treecheck.ErrDisconnected):
		return KindDisconnected
	case errors.Is(err, treecheck.ErrUnorderedTree):
		return KindUnorderedTree
	default:
		return KindInvalidInput
	}
}
