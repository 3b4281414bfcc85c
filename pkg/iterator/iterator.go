// Package iterator defines the iteration contract shared by the container
// packages.
package iterator

// Iterator walks a sequence of values. Next advances the iterator and
// reports whether a value is available, Entry returns the value Next
// stopped on, and Close releases anything the iterator still holds.
type Iterator[V any] interface {
	Next() bool
	Entry() V
	Close() error
}
