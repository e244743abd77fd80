package isotonic

import (
	"fmt"

	"github.com/katalvlaran/isotree/dsu"
)

// Plateaus groups tree nodes into maximal connected sets sharing exactly the
// same priority. Groups are ordered by their smallest node id and members are
// ascending; singletons are included.
func Plateaus(t Tree, q []float64) ([][]int, error) {
	n := t.Len()
	if len(q) != n {
		return nil, fmt.Errorf("isotonic: %d priorities for %d nodes: %w", len(q), n, ErrLengthMismatch)
	}

	set := dsu.New(n)
	for v := 0; v < n; v++ {
		for _, l := range t.Links(v) {
			if l.To > v && q[l.To] == q[v] {
				set.Union(v, l.To)
			}
		}
	}

	// Nodes are scanned in ascending order, so groups are created in order of
	// their smallest member and filled in ascending order.
	index := make(map[int]int, set.Count())
	groups := make([][]int, 0, set.Count())
	for v := 0; v < n; v++ {
		r := set.Find(v)
		i, ok := index[r]
		if !ok {
			i = len(groups)
			index[r] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], v)
	}

	return groups, nil
}
