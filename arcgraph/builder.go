package arcgraph

import (
	"fmt"
	"math/rand"
)

// File-local minima for the fixture constructors.
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 1
	minCompleteNodes = 1
	minGridSide      = 1
	minRandomNodes   = 1
)

// Path builds P_n: edges (i-1)—i for i = 1..n-1, in increasing order.
func Path(n int) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("arcgraph: Path n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	g := New(n)
	for i := 1; i < n; i++ {
		g.mustAdd(i-1, i)
	}

	return g, nil
}

// Cycle builds C_n: the path 0..n-1 closed by the edge (n-1)—0.
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("arcgraph: Cycle n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	g, _ := Path(n)
	g.mustAdd(n-1, 0)

	return g, nil
}

// Star builds a star with centre 0 and leaves 1..n-1.
func Star(n int) (*Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("arcgraph: Star n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	g := New(n)
	for i := 1; i < n; i++ {
		g.mustAdd(0, i)
	}

	return g, nil
}

// Complete builds K_n with edges emitted for i < j in lexicographic order.
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("arcgraph: Complete n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	g := New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.mustAdd(i, j)
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice. Node (r, c) has id r*cols+c; for each node
// in row-major order the right edge is emitted before the down edge.
func Grid(rows, cols int) (*Graph, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("arcgraph: Grid %dx%d: %w", rows, cols, ErrTooFewNodes)
	}
	g := New(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				g.mustAdd(id, id+1)
			}
			if r+1 < rows {
				g.mustAdd(id, id+cols)
			}
		}
	}

	return g, nil
}

// RandomConnected builds a connected simple graph on n nodes: a random
// spanning tree (node i attaches to a uniformly chosen earlier node) plus up
// to extra additional distinct edges. The result is deterministic for a given
// rng state. extra is capped at the number of free node pairs.
func RandomConnected(n, extra int, rng *rand.Rand) (*Graph, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("arcgraph: RandomConnected n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewNodes)
	}
	if rng == nil {
		return nil, fmt.Errorf("arcgraph: RandomConnected: %w", ErrNeedRandSource)
	}

	g := New(n)
	seen := make(map[[2]int]struct{}, n+extra)
	key := func(u, v int) [2]int {
		if u > v {
			u, v = v, u
		}
		return [2]int{u, v}
	}

	// 1. Random spanning tree keeps the graph connected.
	for i := 1; i < n; i++ {
		p := rng.Intn(i)
		g.mustAdd(p, i)
		seen[key(p, i)] = struct{}{}
	}

	// 2. Extra edges, rejecting loops and duplicates.
	free := n*(n-1)/2 - (n - 1)
	if extra > free {
		extra = free
	}
	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, dup := seen[key(u, v)]; dup {
			continue
		}
		seen[key(u, v)] = struct{}{}
		g.mustAdd(u, v)
		added++
	}

	return g, nil
}

// mustAdd is used by constructors whose arguments are valid by construction.
func (g *Graph) mustAdd(u, v int) {
	if _, err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
}
