package dsu

// DisjointSet tracks connectivity classes of n elements.
// The zero value is an empty set; use New to allocate elements.
type DisjointSet struct {
	parent []int // parent[v] == v for roots
	size   []int // valid only at roots: number of elements in the set
	count  int   // number of disjoint sets remaining
}

// New creates n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as zero.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements tracked.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets remaining.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of the set containing v.
func (d *DisjointSet) Find(v int) int {
	// 1. Walk up to the root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Path compression: point every node on the walked path at the root.
	for d.parent[v] != root {
		v, d.parent[v] = d.parent[v], root
	}

	return root
}

// Union merges the sets containing u and v.
// It returns false when u and v already shared a set, i.e. an edge u—v
// would close a cycle in the forest built so far.
func (d *DisjointSet) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	// Attach the smaller tree under the larger root.
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]
	d.count--

	return true
}

// Connected reports whether u and v belong to the same set.
func (d *DisjointSet) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Size returns the number of elements in the set containing v.
func (d *DisjointSet) Size(v int) int {
	return d.size[d.Find(v)]
}
