package repair_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/isotonic"
	"github.com/katalvlaran/isotree/repair"
	"github.com/katalvlaran/isotree/spantree"
	"github.com/katalvlaran/isotree/treecheck"
)

// checkOrientation re-walks the oriented selection without using the library
// validators: every selected arc must point from a node at least as high as
// its target, every non-root node must have exactly one incoming selected arc,
// and following incoming arcs from any node must reach the root.
func checkOrientation(t *testing.T, g *arcgraph.Graph, res *repair.Result) {
	t.Helper()
	n := g.NodeCount()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	selected := 0
	for k, v := range res.Selection {
		if v == 0 {
			continue
		}
		require.Equal(t, 1.0, v, "arc %d", k)
		a := g.Arc(k)
		require.Equal(t, -1, parent[a.To], "node %d has two parents", a.To)
		parent[a.To] = a.From
		assert.LessOrEqual(t, res.Priorities[a.To], res.Priorities[a.From], "arc %d→%d", a.From, a.To)
		assert.Zero(t, res.Selection[arcgraph.Companion(k)], "both directions of edge %d", arcgraph.EdgeOf(k))
		selected++
	}
	assert.Equal(t, n-1, selected)
	assert.Equal(t, -1, parent[res.Root])

	for v := 0; v < n; v++ {
		u, steps := v, 0
		for u != res.Root {
			u = parent[u]
			require.NotEqual(t, -1, u, "node %d does not reach the root", v)
			steps++
			require.LessOrEqual(t, steps, n, "cycle above node %d", v)
		}
	}

	sum := 0.0
	for _, v := range res.RootIndicator {
		sum += v
	}
	assert.Equal(t, 1.0, sum)
	assert.Equal(t, 1.0, res.RootIndicator[res.Root])
}

// TestRepair_PathScenario: path 0-1-2-3, equal weights, q=[1,1,1,5].
func TestRepair_PathScenario(t *testing.T) {
	g, err := arcgraph.Path(4)
	require.NoError(t, err)
	x := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	q := []float64{1, 1, 1, 5}

	res, err := repair.Repair(g, x, q)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Root)
	assert.Equal(t, []float64{1, 1, 1, 5}, res.Priorities)
	assert.Equal(t, []float64{0, 0, 0, 1}, res.RootIndicator)
	assert.Equal(t, []float64{0, 1, 0, 1, 0, 1}, res.Selection) // 3→2, 2→1, 1→0
	assert.Equal(t, []int{0, 1, 2}, res.Tree.Edges())
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, res.Plateaus)
	assert.Zero(t, res.Merges)

	// Inputs are untouched.
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, x)
	assert.Equal(t, []float64{1, 1, 1, 5}, q)
	checkOrientation(t, g, res)
}

// TestRepair_TreeFollowsWeights: the candidate weighting decides the tree,
// the priorities decide the orientation.
//
//	0 ── 1
//	│ ╲  │
//	3 ── 2
func TestRepair_TreeFollowsWeights(t *testing.T) {
	g, err := arcgraph.Cycle(4) // e0 0-1, e1 1-2, e2 2-3, e3 3-0
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2) // e4
	require.NoError(t, err)

	x := []float64{
		0.9, 0, // e0
		0, 0.1, // e1
		0.2, 0.2, // e2
		0, 0, // e3
		0.3, 0.8, // e4
	}
	q := []float64{0.2, 0.4, 0.9, 0.1}

	res, err := repair.Repair(g, x, q)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, res.Tree.Edges()) // 0.9, 0.8, 0.2
	assert.Equal(t, 2, res.Root)
	// Root 2 → 0 (via e4) → 1 (0.4 > 0.2 merges {0,1} at 0.3); 2 → 3.
	assert.InDeltaSlice(t, []float64{0.3, 0.3, 0.9, 0.1}, res.Priorities, 1e-12)
	checkOrientation(t, g, res)
}

// TestRepair_TiedMaximum: the first maximal priority becomes the root and the
// equal neighbour stays untouched.
func TestRepair_TiedMaximum(t *testing.T) {
	g, err := arcgraph.Path(3)
	require.NoError(t, err)
	res, err := repair.Repair(g, []float64{1, 1, 1, 1}, []float64{1, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Root)
	assert.Equal(t, []float64{1, 5, 5}, res.Priorities)
	checkOrientation(t, g, res)
}

// TestRepair_RandomGraphs is the spanning/single-root/monotonicity property
// over random connected graphs and weightings.
func TestRepair_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(101))
	for trial := 0; trial < 60; trial++ {
		n := 1 + r.Intn(70)
		g, err := arcgraph.RandomConnected(n, r.Intn(2*n+1), r)
		require.NoError(t, err)

		x := make([]float64, g.ArcCount())
		for i := range x {
			x[i] = math.Round(r.Float64()*4) / 4 // coarse: plenty of weight ties
		}
		q := make([]float64, n)
		for i := range q {
			q[i] = r.Float64()
		}
		want := 0
		for i := range q {
			if q[i] > q[want] {
				want = i
			}
		}

		res, err := repair.Repair(g, x, q, repair.WithConnectivityCheck())
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, n-1, res.Tree.EdgeCount())
		assert.Equal(t, want, res.Root, "root is the pre-smoothing argmax")
		checkOrientation(t, g, res)

		again, err := repair.Repair(g, x, q)
		require.NoError(t, err)
		assert.Equal(t, res.Selection, again.Selection, "trial %d: deterministic", trial)
		assert.Equal(t, res.Priorities, again.Priorities)
	}
}

// TestRepair_Errors maps every failure to its kind.
func TestRepair_Errors(t *testing.T) {
	path3, _ := arcgraph.Path(3)
	odd, _ := arcgraph.FromArcs(2, []arcgraph.Arc{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 1}})
	bad, _ := arcgraph.FromArcs(3, []arcgraph.Arc{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 0, To: 2}})
	split := arcgraph.New(4)
	_, _ = split.AddEdge(0, 1)
	_, _ = split.AddEdge(2, 3)

	cases := []struct {
		name   string
		g      *arcgraph.Graph
		x, q   []float64
		opts   []repair.Option
		target error
		kind   repair.Kind
	}{
		{"nil graph", nil, nil, nil, nil, spantree.ErrNilGraph, repair.KindInvalidInput},
		{"q length", path3, make([]float64, 4), []float64{1}, nil, repair.ErrPriorityLength, repair.KindInvalidInput},
		{"x length", path3, make([]float64, 3), make([]float64, 3), nil, spantree.ErrWeightLength, repair.KindInvalidInput},
		{"odd arcs", odd, make([]float64, 3), make([]float64, 2), nil, arcgraph.ErrMalformedEdgeCount, repair.KindMalformedEdgeCount},
		{"companion", bad, make([]float64, 4), make([]float64, 3), nil, arcgraph.ErrInvalidCompanionEdge, repair.KindInvalidCompanionEdge},
		{"disconnected", split, make([]float64, 4), make([]float64, 4), nil, treecheck.ErrDisconnected, repair.KindDisconnected},
		{"disconnected precheck", split, make([]float64, 4), make([]float64, 4),
			[]repair.Option{repair.WithConnectivityCheck()}, treecheck.ErrDisconnected, repair.KindDisconnected},
		{"nan priority", path3, make([]float64, 4), []float64{1, math.NaN(), 0}, nil, nil, repair.KindInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := repair.Repair(tc.g, tc.x, tc.q, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, res)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
			assert.Equal(t, tc.kind, repair.KindOf(err))
		})
	}
}

// TestRepair_InfinitePriorities: a -Inf node between two +Inf nodes would
// smooth to NaN; it is rejected up front instead.
func TestRepair_InfinitePriorities(t *testing.T) {
	g, err := arcgraph.Path(3)
	require.NoError(t, err)

	res, err := repair.Repair(g, []float64{1, 1, 1, 1}, []float64{math.Inf(1), math.Inf(-1), math.Inf(1)})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, isotonic.ErrInvalidPriority)
	assert.Equal(t, repair.KindInvalidInput, repair.KindOf(err))
}

// TestKindOf covers classification of bare and wrapped sentinels.
func TestKindOf(t *testing.T) {
	assert.Equal(t, repair.KindNone, repair.KindOf(nil))
	assert.Equal(t, repair.KindCycleDetected, repair.KindOf(fmt.Errorf("x: %w", treecheck.ErrCycleDetected)))
	assert.Equal(t, repair.KindUnexpectedEdge, repair.KindOf(treecheck.ErrUnexpectedEdge))
	assert.Equal(t, repair.KindUnorderedTree, repair.KindOf(treecheck.ErrUnorderedTree))
	assert.Equal(t, repair.KindInvalidInput, repair.KindOf(errors.New("boom")))

	assert.True(t, repair.KindCycleDetected.Fatal())
	assert.True(t, repair.KindMalformedEdgeCount.Fatal())
	assert.True(t, repair.KindUnorderedTree.Fatal())
	assert.False(t, repair.KindInvalidInput.Fatal())
	assert.False(t, repair.KindNone.Fatal())

	assert.Equal(t, "cycle detected", repair.KindCycleDetected.String())
	assert.Equal(t, "unknown", repair.Kind(99).String())
}

// TestRepairInPlace checks the dual-purpose buffer contract.
func TestRepairInPlace(t *testing.T) {
	g, err := arcgraph.Path(4)
	require.NoError(t, err)
	x := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	q := []float64{5, 1, 3, 1}
	r := []float64{7, 7, 7, 7}

	require.NoError(t, repair.RepairInPlace(g, x, q, r))
	// Root 0; 1 (1) then 2 (3) violate: {1,2} → 2; 3 stays at 1.
	assert.Equal(t, []float64{5, 2, 2, 1}, q)
	assert.Equal(t, []float64{1, 0, 0, 0}, r)
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, x) // 0→1, 1→2, 2→3

	assert.ErrorIs(t, repair.RepairInPlace(g, x[:5], q, r), repair.ErrBufferLength)
	assert.ErrorIs(t, repair.RepairInPlace(g, x, q, r[:3]), repair.ErrBufferLength)
	assert.ErrorIs(t, repair.RepairInPlace(nil, x, q, r), spantree.ErrNilGraph)
}

// TestRepair_Logging checks that stage messages reach a debug logger.
func TestRepair_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g, _ := arcgraph.Star(3)
	_, err := repair.Repair(g, []float64{1, 1, 1, 1}, []float64{1, 2, 3}, repair.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "spanning tree selected")
	assert.Contains(t, buf.String(), "tree repaired")

	// A nil logger keeps the silent default.
	_, err = repair.Repair(g, []float64{1, 1, 1, 1}, []float64{1, 2, 3}, repair.WithLogger(nil))
	assert.NoError(t, err)
}
