package iterator

import "errors"

// ErrIteratorExhausted Next was called without a prior true HasNext
var ErrIteratorExhausted = errors.New("iterator exhausted")

// An Iterator walks a finite sequence forward, lazily, without exposing
// the collection's internal representation. Restarting means asking the
// collection for a new Iterator, not resetting this one.
type Iterator[T any] interface {
	HasNext() bool

	// Next is only valid while HasNext reports true; afterwards it fails
	// with ErrIteratorExhausted.
	Next() (T, error)
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrIteratorExhausted
	}
	item := it.items[it.pos]
	it.pos++
	return item, nil
}
