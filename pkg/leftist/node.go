package leftist

// node is one element of the heap. Every node is owned by exactly one
// parent slot, or by the Heap handle when it is the root; nodes never
// escape the package.
type node struct {
	key   int
	npl   int
	left  *node
	right *node
}

// nullPathLength returns the null path length of n. An absent node has
// null path length -1, a leaf 0.
func nullPathLength(n *node) int {
	if n == nil {
		return -1
	}
	return n.npl
}

// merge combines two leftist heap-ordered trees into a single tree holding
// the multiset union of their elements. It consumes both inputs: after the
// call only the returned root may be used to reach any of their nodes.
//
// The recursion descends along exactly one right-child edge per level, so
// its depth is bounded by the shorter right spine, which the leftist
// property keeps at O(log n).
func merge(h1, h2 *node) *node {
	if h1 == nil {
		return h2
	}
	if h2 == nil {
		return h1
	}

	// Keep the smaller root in h1. Equal keys are left where they are,
	// so extraction order among duplicates is unspecified.
	if h1.key > h2.key {
		h1, h2 = h2, h1
	}

	h1.right = merge(h1.right, h2)

	// Restore the leftist property on the unwind.
	if nullPathLength(h1.left) < nullPathLength(h1.right) {
		h1.left, h1.right = h1.right, h1.left
	}

	h1.npl = nullPathLength(h1.right) + 1

	return h1
}
