package optics

// Traversal focuses on zero or more parts of a structure. All enumerates
// the targets in the traversal's stable order; Modify rewrites every target
// without mutating the source.
type Traversal[S, A any] struct {
	All    func(S) []A
	Modify func(S, func(A) A) S
}

// NewTraversal creates a Traversal from enumeration and rewrite functions.
func NewTraversal[S, A any](all func(S) []A, modify func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{All: all, Modify: modify}
}

// AsFold converts the Traversal to a fold over all of its targets, in the
// order All returns them.
func (t Traversal[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S, m Monoid[any], fn func(A) any) any {
		acc := m.Empty
		for _, a := range t.All(s) {
			acc = m.Combine(acc, fn(a))
		}
		return acc
	})
}

// SliceTraversal targets every element of a slice, in index order.
func SliceTraversal[A any]() Traversal[[]A, A] {
	return Traversal[[]A, A]{
		All: func(s []A) []A { return s },
		Modify: func(s []A, fn func(A) A) []A {
			result := make([]A, len(s))
			for i, a := range s {
				result[i] = fn(a)
			}
			return result
		},
	}
}
