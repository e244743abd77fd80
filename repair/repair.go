package repair

import (
	"fmt"
	"time"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/isotonic"
	"github.com/katalvlaran/isotree/spantree"
	"github.com/katalvlaran/isotree/treecheck"
)

// Repair converts the candidate weighting and priorities into a rooted,
// priority-ordered spanning tree. weights (one per arc) and q (one per node)
// are read only.
func Repair(g *arcgraph.Graph, weights, q []float64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	start := time.Now()

	// 1. Shape checks that no later stage owns.
	if g == nil {
		return nil, fmt.Errorf("repair: %w", spantree.ErrNilGraph)
	}
	if len(q) != g.NodeCount() {
		return nil, fmt.Errorf("repair: %d priorities for %d nodes: %w", len(q), g.NodeCount(), ErrPriorityLength)
	}
	if o.CheckConnectivity && g.NodeCount() > 0 && !g.Connected() {
		return nil, fmt.Errorf("repair: connectivity pre-check: %w", treecheck.ErrDisconnected)
	}

	// 2. Maximum spanning tree and its structure.
	tree, err := spantree.Maximum(g, weights)
	if err != nil {
		return nil, fmt.Errorf("repair: spanning tree: %w", err)
	}
	if err = treecheck.Structure(tree); err != nil {
		return nil, fmt.Errorf("repair: tree structure: %w", err)
	}
	o.Logger.Debug("spanning tree selected", "nodes", tree.Len(), "edges", tree.EdgeCount())

	// 3. Root, then smoothing.
	root, err := isotonic.SelectRoot(q)
	if err != nil {
		return nil, fmt.Errorf("repair: root: %w", err)
	}
	sm, err := isotonic.Smooth(tree, root, q)
	if err != nil {
		return nil, fmt.Errorf("repair: smoothing: %w", err)
	}
	o.Logger.Debug("priorities smoothed", "root", root, "merges", sm.Merges, "absorbed", sm.Absorbed)

	// 4. Orientation, re-checking the order independently of the smoother.
	res := &Result{
		Root:          root,
		Tree:          tree,
		Priorities:    sm.Priorities,
		Selection:     make([]float64, g.ArcCount()),
		RootIndicator: make([]float64, g.NodeCount()),
		Merges:        sm.Merges,
		Absorbed:      sm.Absorbed,
	}
	if err = treecheck.Ordered(tree, root, res.Priorities, res.Selection, res.RootIndicator); err != nil {
		return nil, fmt.Errorf("repair: ordered tree: %w", err)
	}
	if res.Plateaus, err = isotonic.Plateaus(tree, res.Priorities); err != nil {
		return nil, fmt.Errorf("repair: plateaus: %w", err)
	}

	o.Logger.Debug("tree repaired", "root", root, "plateaus", len(res.Plateaus),
		"elapsed", time.Since(start).Round(time.Microsecond))

	return res, nil
}

// RepairInPlace runs Repair with the dual-purpose buffer contract: x holds
// the candidate weights on entry and the 0/1 parent→child selection on
// return, q is replaced by the smoothed priorities and r by the one-hot root
// indicator. On error the buffers are left untouched, but callers must still
// treat them as undefined.
func RepairInPlace(g *arcgraph.Graph, x, q, r []float64, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("repair: %w", spantree.ErrNilGraph)
	}
	if len(x) != g.ArcCount() || len(r) != g.NodeCount() {
		return fmt.Errorf("repair: %d arc slots and %d root slots for %d arcs, %d nodes: %w",
			len(x), len(r), g.ArcCount(), g.NodeCount(), ErrBufferLength)
	}

	res, err := Repair(g, x, q, opts...)
	if err != nil {
		return err
	}
	copy(x, res.Selection)
	copy(q, res.Priorities)
	copy(r, res.RootIndicator)

	return nil
}
