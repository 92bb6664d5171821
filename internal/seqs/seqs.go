package seqs

import "iter"

// Seq2 lifts a list of values into an error-carrying sequence.
func Seq2[T any](items ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Error returns a sequence yielding only the given error.
func Error[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// Collect drains a sequence into a slice, stopping at the first error.
func Collect[T any](i iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range i {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}

	return items, nil
}
