package sequence

import "iter"

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				yield(v)
			}
		},
	}
}

// Collect exhausts the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Filter returns a new Iterator containing only elements that satisfy the predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				if pred(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Take returns a new Iterator with the first n elements.
func (i *Iterator[T]) Take(n int) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			count := 0
			i.seq(func(v T) bool {
				if count < n {
					count++
					return yield(v)
				}
				return false
			})
		},
	}
}

// Partition splits elements into two slices based on a predicate.
func (i *Iterator[T]) Partition(pred func(T) bool) (matches, rest []T) {
	i.seq(func(v T) bool {
		if pred(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
		return true
	})
	return
}

// Count returns the number of elements in the iterator.
func (i *Iterator[T]) Count() int {
	count := 0
	i.seq(func(_ T) bool {
		count++
		return true
	})
	return count
}

// ToArray applies the callback function to each element of the iterator and
// returns a slice of the results, transforming elements from T to S.
func ToArray[T any, S any](it *Iterator[T], callback func(T) S) []S {
	arr := make([]S, 0, it.Count())
	it.seq(func(v T) bool {
		arr = append(arr, callback(v))
		return true
	})
	return arr
}
