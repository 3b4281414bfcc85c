package leftist

import "fmt"

// Verify walks the whole tree and checks the structural invariants: heap
// order, the leftist property, null-path-length bookkeeping, and the size
// counter. It returns a descriptive error for the first violation found.
// Verify is a diagnostic for tests and debugging; the public operations
// maintain the invariants without it.
func (h *Heap) Verify() error {
	count, err := verifyNode(h.root)
	if err != nil {
		return err
	}
	if count != h.size {
		return fmt.Errorf("size mismatch: counter is %d, tree has %d nodes", h.size, count)
	}
	return nil
}

// verifyNode checks n's subtree and returns its node count.
func verifyNode(n *node) (int, error) {
	if n == nil {
		return 0, nil
	}

	for _, child := range []*node{n.left, n.right} {
		if child != nil && n.key > child.key {
			return 0, fmt.Errorf("heap order violated: parent key %d > child key %d", n.key, child.key)
		}
	}

	if nullPathLength(n.left) < nullPathLength(n.right) {
		return 0, fmt.Errorf("leftist property violated at key %d: left npl %d < right npl %d",
			n.key, nullPathLength(n.left), nullPathLength(n.right))
	}

	if want := nullPathLength(n.right) + 1; n.npl != want {
		return 0, fmt.Errorf("wrong npl at key %d: have %d, want %d", n.key, n.npl, want)
	}

	leftCount, err := verifyNode(n.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := verifyNode(n.right)
	if err != nil {
		return 0, err
	}

	return leftCount + rightCount + 1, nil
}
