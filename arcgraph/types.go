package arcgraph

import "errors"

var (
	// ErrMalformedEdgeCount indicates an odd number of arcs: edges must come in companion pairs.
	ErrMalformedEdgeCount = errors.New("arcgraph: arc count is odd")

	// ErrInvalidCompanionEdge indicates that an arc and its companion are not mutually reversed.
	ErrInvalidCompanionEdge = errors.New("arcgraph: companion arcs are not reversed")

	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("arcgraph: node out of range")

	// ErrArcOutOfRange indicates an arc id outside [0, 2E).
	ErrArcOutOfRange = errors.New("arcgraph: arc out of range")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop u—u.
	ErrLoopNotAllowed = errors.New("arcgraph: self-loop not allowed")

	// ErrTooFewNodes indicates that a fixture constructor received a size below its minimum.
	ErrTooFewNodes = errors.New("arcgraph: too few nodes")

	// ErrNeedRandSource indicates that a stochastic constructor was called without *rand.Rand.
	ErrNeedRandSource = errors.New("arcgraph: rng is required")
)

// Arc is one directed half of an undirected edge.
type Arc struct {
	From int
	To   int
}

// Reversed returns the arc pointing the other way.
func (a Arc) Reversed() Arc { return Arc{From: a.To, To: a.From} }

// Link is an adjacency entry: the neighbour reached and the id of the arc
// leading to it from the node whose adjacency list holds the link.
type Link struct {
	To  int
	Arc int
}

// Companion returns the id of the reverse arc paired with arc k.
func Companion(k int) int {
	if k%2 == 0 {
		return k + 1
	}

	return k - 1
}

// EdgeOf returns the undirected edge id shared by arc k and its companion.
func EdgeOf(k int) int { return k / 2 }

// ForwardArc returns the even arc id of undirected edge e.
func ForwardArc(e int) int { return 2 * e }
