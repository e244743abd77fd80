package isotonic

// candidate is a node waiting to be absorbed into the current group.
type candidate struct {
	key  float64 // priority at push time
	node int
	from int // neighbour it was reached from; never walked back into
}

// candidateHeap is a max-heap on key; equal keys pop the smaller node id first.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key > h[j].key
	}
	return h[i].node < h[j].node
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}
