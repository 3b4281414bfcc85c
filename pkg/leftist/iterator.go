package leftist

// Iterator drains a heap in non-decreasing key order. It is created by
// Heap.Iterator and advances by extracting the minimum, so the underlying
// heap shrinks as iteration proceeds.
type Iterator struct {
	heap    *Heap
	current int
}

// Next extracts the next minimum and reports whether one was available.
func (iter *Iterator) Next() bool {
	if iter.heap == nil || iter.heap.IsEmpty() {
		return false
	}

	key, err := iter.heap.ExtractMin()
	if err != nil {
		return false
	}

	iter.current = key
	return true
}

// Entry returns the key extracted by the last successful Next.
func (iter *Iterator) Entry() int {
	return iter.current
}

// Close releases the iterator's reference to the heap.
func (iter *Iterator) Close() error {
	iter.heap = nil
	return nil
}
