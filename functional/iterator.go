package functional

// Iterator provides lazy, in-order iteration using Go range functions.
// Yield returns false to stop early.
type Iterator[T any] func(yield func(T) bool)

// FromSlice creates an iterator over a slice, in index order.
func FromSlice[T any](slice []T) Iterator[T] {
	return func(yield func(T) bool) {
		for _, v := range slice {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func Collect[T any](iter Iterator[T]) []T {
	var out []T
	iter(func(t T) bool {
		out = append(out, t)
		return true
	})
	return out
}
