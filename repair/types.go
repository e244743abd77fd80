package repair

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/isotree/spantree"
)

var (
	// ErrPriorityLength indicates len(q) != number of graph nodes.
	ErrPriorityLength = errors.New("repair: priority length mismatch")

	// ErrBufferLength indicates an in-place buffer of the wrong length.
	ErrBufferLength = errors.New("repair: buffer length mismatch")
)

// Options configures a Repair call.
type Options struct {
	// Logger receives debug-level stage timings. Defaults to a discarding logger.
	Logger *log.Logger

	// CheckConnectivity runs a connected-components pre-check on the input
	// graph and fails with treecheck.ErrDisconnected before Kruskal runs.
	CheckConnectivity bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no pre-check.
func DefaultOptions() Options {
	return Options{
		Logger:            log.New(io.Discard),
		CheckConnectivity: false,
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConnectivityCheck enables the connectivity pre-check.
func WithConnectivityCheck() Option {
	return func(o *Options) {
		o.CheckConnectivity = true
	}
}

// Result is a repaired assignment.
type Result struct {
	// Root is the argmax of the candidate priorities, computed before smoothing.
	Root int

	// Tree is the selected spanning tree.
	Tree *spantree.Tree

	// Priorities are the smoothed node priorities.
	Priorities []float64

	// Selection has one slot per arc: 1 for arcs oriented parent→child in the tree, else 0.
	Selection []float64

	// RootIndicator is one-hot over nodes at Root.
	RootIndicator []float64

	// Plateaus lists maximal connected groups of equal smoothed priority.
	Plateaus [][]int

	// Merges and Absorbed report smoothing activity (see isotonic.Result).
	Merges   int
	Absorbed int
}
