package treecheck

// Structure asserts that t is a single cycle-free tree spanning all nodes,
// walking from node 0.
func Structure(t Tree) error {
	if t.Len() == 0 {
		return ErrEmptyTree
	}

	return walk(t, 0, nil)
}
