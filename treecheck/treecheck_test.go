package treecheck_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/spantree"
	"github.com/katalvlaran/isotree/treecheck"
)

// fakeTree is a hand-written adjacency, used to build shapes a real
// spantree.Tree can never produce (asymmetric links).
type fakeTree [][]arcgraph.Link

func (f fakeTree) Len() int                    { return len(f) }
func (f fakeTree) Links(v int) []arcgraph.Link { return f[v] }

// treeOf builds a spantree.Tree over g from the given edge ids.
func treeOf(t *testing.T, g *arcgraph.Graph, edges ...int) *spantree.Tree {
	t.Helper()
	tree, err := spantree.FromEdges(g, edges)
	require.NoError(t, err)
	return tree
}

// TestStructure_ValidTrees accepts paths, stars and a single node.
func TestStructure_ValidTrees(t *testing.T) {
	p, _ := arcgraph.Path(6)
	assert.NoError(t, treecheck.Structure(treeOf(t, p, 0, 1, 2, 3, 4)))

	s, _ := arcgraph.Star(5)
	assert.NoError(t, treecheck.Structure(treeOf(t, s, 0, 1, 2, 3)))

	one := arcgraph.New(1)
	assert.NoError(t, treecheck.Structure(treeOf(t, one)))
}

// TestStructure_CycleDetected feeds a triangle with all three edges selected.
func TestStructure_CycleDetected(t *testing.T) {
	g, err := arcgraph.Complete(3)
	require.NoError(t, err)
	err = treecheck.Structure(treeOf(t, g, 0, 1, 2))
	assert.ErrorIs(t, err, treecheck.ErrCycleDetected)
}

// TestStructure_ParallelEdgeIsCycle selects both copies of a doubled edge.
func TestStructure_ParallelEdgeIsCycle(t *testing.T) {
	g := arcgraph.New(2)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 0)
	err := treecheck.Structure(treeOf(t, g, 0, 1))
	assert.ErrorIs(t, err, treecheck.ErrCycleDetected)
}

// TestStructure_Disconnected leaves node 3 unreachable.
func TestStructure_Disconnected(t *testing.T) {
	g, err := arcgraph.Path(4)
	require.NoError(t, err)
	err = treecheck.Structure(treeOf(t, g, 0, 1))
	assert.ErrorIs(t, err, treecheck.ErrDisconnected)

	// Two components where node 0's side is complete but another is not reached.
	h := arcgraph.New(4)
	_, _ = h.AddEdge(0, 1)
	_, _ = h.AddEdge(2, 3)
	assert.ErrorIs(t, treecheck.Structure(treeOf(t, h, 0, 1)), treecheck.ErrDisconnected)
}

// TestStructure_UnexpectedEdge uses an asymmetric adjacency: node 2 lists an
// edge to 1 that node 1 does not list, so 1 is already Black when reached.
func TestStructure_UnexpectedEdge(t *testing.T) {
	f := fakeTree{
		{{To: 1, Arc: 0}, {To: 2, Arc: 2}}, // node 0
		{{To: 0, Arc: 1}},                  // node 1
		{{To: 0, Arc: 3}, {To: 1, Arc: 5}}, // node 2
	}
	assert.ErrorIs(t, treecheck.Structure(f), treecheck.ErrUnexpectedEdge)
}

// TestStructure_Empty rejects zero nodes.
func TestStructure_Empty(t *testing.T) {
	assert.ErrorIs(t, treecheck.Structure(fakeTree{}), treecheck.ErrEmptyTree)
}

// TestStructure_DeepPath runs on a path deep enough to matter for a recursive walk.
func TestStructure_DeepPath(t *testing.T) {
	const n = 200000
	g, err := arcgraph.Path(n)
	require.NoError(t, err)
	edges := make([]int, n-1)
	for i := range edges {
		edges[i] = i
	}
	assert.NoError(t, treecheck.Structure(treeOf(t, g, edges...)))
}

// TestOrdered_PathScenario is the 4-node path 0-1-2-3 rooted at 3 with q=[1,1,1,5].
func TestOrdered_PathScenario(t *testing.T) {
	g, err := arcgraph.Path(4)
	require.NoError(t, err)
	tree := treeOf(t, g, 0, 1, 2)

	q := []float64{1, 1, 1, 5}
	sel := []float64{9, 9, 9, 9, 9, 9} // stale contents must be cleared
	root := []float64{9, 9, 9, 9}
	require.NoError(t, treecheck.Ordered(tree, 3, q, sel, root))

	// Arcs 5 (3→2), 3 (2→1), 1 (1→0): parent→child orientation.
	assert.Equal(t, []float64{0, 1, 0, 1, 0, 1}, sel)
	assert.Equal(t, []float64{0, 0, 0, 1}, root)
	assert.Equal(t, []float64{1, 1, 1, 5}, q) // read-only
}

// TestOrdered_Unordered catches a child above its parent.
func TestOrdered_Unordered(t *testing.T) {
	g, err := arcgraph.Path(4)
	require.NoError(t, err)
	tree := treeOf(t, g, 0, 1, 2)

	q := []float64{1, 2, 1, 5} // 2→1 descends from 1 to 2
	err = treecheck.Ordered(tree, 3, q, make([]float64, 6), make([]float64, 4))
	assert.ErrorIs(t, err, treecheck.ErrUnorderedTree)
}

// TestOrdered_NaNIsUnordered: a NaN on either end of a tree edge has no
// order and must fail rather than pass every comparison.
func TestOrdered_NaNIsUnordered(t *testing.T) {
	g, err := arcgraph.Path(3)
	require.NoError(t, err)
	tree := treeOf(t, g, 0, 1)

	for _, q := range [][]float64{
		{math.Inf(1), math.NaN(), math.NaN()}, // NaN child under +Inf
		{math.NaN(), 1, 1},                    // NaN root
	} {
		err = treecheck.Ordered(tree, 0, q, make([]float64, 4), make([]float64, 3))
		assert.ErrorIs(t, err, treecheck.ErrUnorderedTree, "q=%v", q)
	}
}

// TestOrdered_EqualValuesAllowed accepts plateaus (q[child] == q[parent]).
func TestOrdered_EqualValuesAllowed(t *testing.T) {
	g, err := arcgraph.Star(4)
	require.NoError(t, err)
	tree := treeOf(t, g, 0, 1, 2)
	sel := make([]float64, 6)
	require.NoError(t, treecheck.Ordered(tree, 0, []float64{2, 2, 2, 2}, sel, make([]float64, 4)))
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, sel)
}

// TestOrdered_StructuralErrors mirrors Structure's failure modes.
func TestOrdered_StructuralErrors(t *testing.T) {
	k3, _ := arcgraph.Complete(3)
	q := []float64{3, 2, 1}
	err := treecheck.Ordered(treeOf(t, k3, 0, 1, 2), 0, q, make([]float64, 6), make([]float64, 3))
	assert.ErrorIs(t, err, treecheck.ErrCycleDetected)

	p, _ := arcgraph.Path(3)
	err = treecheck.Ordered(treeOf(t, p, 0), 0, q, make([]float64, 4), make([]float64, 3))
	assert.ErrorIs(t, err, treecheck.ErrDisconnected)
}

// TestOrdered_BadArguments covers root and buffer validation.
func TestOrdered_BadArguments(t *testing.T) {
	p, _ := arcgraph.Path(3)
	tree := treeOf(t, p, 0, 1)
	q := []float64{1, 1, 1}

	assert.ErrorIs(t, treecheck.Ordered(tree, 3, q, make([]float64, 4), make([]float64, 3)), treecheck.ErrRootOutOfRange)
	assert.ErrorIs(t, treecheck.Ordered(tree, -1, q, make([]float64, 4), make([]float64, 3)), treecheck.ErrRootOutOfRange)
	assert.ErrorIs(t, treecheck.Ordered(tree, 0, q[:2], make([]float64, 4), make([]float64, 3)), treecheck.ErrBufferLength)
	assert.ErrorIs(t, treecheck.Ordered(tree, 0, q, make([]float64, 4), make([]float64, 2)), treecheck.ErrBufferLength)
	assert.ErrorIs(t, treecheck.Ordered(tree, 0, q, make([]float64, 1), make([]float64, 3)), treecheck.ErrBufferLength)
	assert.ErrorIs(t, treecheck.Ordered(fakeTree{}, 0, nil, nil, nil), treecheck.ErrEmptyTree)
}
