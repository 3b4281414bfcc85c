// Package leftist implements a mergeable min-priority queue backed by a
// leftist tree: a heap-ordered binary tree in which every node's left
// null path length is at least its right one. That keeps the right spine
// at O(log n), which makes merge logarithmic, and insert, extract-min and
// heap union are all expressed through that single merge primitive.
package leftist

import (
	"errors"
	"fmt"

	"github.com/auyeungtsun/leftist-tree/pkg/iterator"
)

// ErrEmptyHeap is returned when a minimum is requested from an empty heap.
var ErrEmptyHeap = errors.New("heap is empty")

// Heap is a handle to a leftist tree. It exclusively owns every node
// reachable from its root; no internal node is ever exposed or shared
// between two handles. The zero value is an empty heap ready to use.
//
// A Heap is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally, across whole operations,
// since MergeWith mutates both operands.
type Heap struct {
	root *node
	size int
}

// NewHeap creates a new empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap) IsEmpty() bool {
	return h.root == nil
}

// Size returns the number of elements in the heap.
func (h *Heap) Size() int {
	return h.size
}

// Insert adds key to the heap. Duplicate keys are kept as separate
// elements. Insert never fails.
func (h *Heap) Insert(key int) {
	h.root = merge(h.root, &node{key: key})
	h.size++
}

// GetMin returns the minimum key without removing it. It returns
// ErrEmptyHeap if the heap is empty.
func (h *Heap) GetMin() (int, error) {
	if h.root == nil {
		return 0, ErrEmptyHeap
	}
	return h.root.key, nil
}

// ExtractMin removes and returns the minimum key. On an empty heap it
// returns an error satisfying errors.Is(err, ErrEmptyHeap) and leaves the
// heap unchanged.
func (h *Heap) ExtractMin() (int, error) {
	if h.root == nil {
		return 0, fmt.Errorf("cannot extract min: %w", ErrEmptyHeap)
	}

	minKey := h.root.key
	h.root = merge(h.root.left, h.root.right)
	h.size--

	return minKey, nil
}

// MergeWith moves every element of other into h and leaves other empty.
// The emptied handle stays valid and reusable; a nil other is treated as
// an empty heap. Merging a heap with itself is a no-op: without the
// identity check the tree's nodes would end up referenced from two places
// and break the exclusive-ownership invariant.
func (h *Heap) MergeWith(other *Heap) {
	if other == nil || h == other {
		return
	}

	h.root = merge(h.root, other.root)
	h.size += other.size

	other.root = nil
	other.size = 0
}

// Clear removes all elements from the heap.
func (h *Heap) Clear() {
	h.root = nil
	h.size = 0
}

// Iterator returns an iterator yielding the heap's keys in non-decreasing
// order. Iteration is destructive: each Next extracts the current minimum,
// and a fully consumed iterator leaves the heap empty.
func (h *Heap) Iterator() iterator.Iterator[int] {
	return &Iterator{heap: h}
}
