package seq

import (
	"iter"
)

type (
	// Indexer produces batches of indices into a collection.
	Indexer interface {
		Iter() iter.Seq[[]int]
		Len() int
	}

	// Batcher turns index batches into batches of items.
	Batcher[T any] struct {
		items   []T
		indexer Indexer
	}
)

// Iter starts a new pass of the underlying indexer.
// Every yielded batch is a freshly allocated slice.
func (b *Batcher[T]) Iter() iter.Seq[[]T] {
	return Gather(b.items, b.indexer.Iter())
}

func (b *Batcher[T]) Len() int {
	return b.indexer.Len()
}

func NewBatcher[T any](items []T, indexer Indexer) *Batcher[T] {
	return &Batcher[T]{
		items:   items,
		indexer: indexer,
	}
}

// Gather maps every batch of indices onto items.
// An index outside of items panics like a plain slice access.
func Gather[T any](items []T, batches iter.Seq[[]int]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for indices := range batches {
			batch := make([]T, len(indices))
			for n, i := range indices {
				batch[n] = items[i]
			}

			if !yield(batch) {
				return
			}
		}
	}
}
