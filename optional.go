package optics

import "github.com/authcorp/optics/functional"

// Optional focuses on a part of a structure that may be absent, with both
// read and write halves. Only the read half participates in folding.
type Optional[S, A any] struct {
	GetOption func(S) functional.Option[A]
	Set       func(S, A) S
}

// NewOptional creates an Optional from getOption and set functions.
func NewOptional[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{GetOption: getOption, Set: set}
}

// Modify applies a function to the focused value if present.
func (o Optional[S, A]) Modify(s S, fn func(A) A) S {
	opt := o.GetOption(s)
	if opt.IsSome() {
		return o.Set(s, fn(opt.Unwrap()))
	}
	return s
}

// AsFold converts the Optional to a zero-or-one-target fold.
func (o Optional[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S, m Monoid[any], fn func(A) any) any {
		return functional.MatchOption(o.GetOption(s), fn, func() any { return m.Empty })
	})
}

// LensToOptional converts a Lens to an always-present Optional.
func LensToOptional[S, A any](l Lens[S, A]) Optional[S, A] {
	return Optional[S, A]{
		GetOption: func(s S) functional.Option[A] {
			return functional.Some(l.Get(s))
		},
		Set: l.Set,
	}
}

// Index creates an Optional for slice access at a fixed position. Writing
// out of range leaves the slice unchanged; the source slice is never
// mutated.
func Index[T any](i int) Optional[[]T, T] {
	return Optional[[]T, T]{
		GetOption: func(s []T) functional.Option[T] {
			if i >= 0 && i < len(s) {
				return functional.Some(s[i])
			}
			return functional.None[T]()
		},
		Set: func(s []T, v T) []T {
			if i >= 0 && i < len(s) {
				result := make([]T, len(s))
				copy(result, s)
				result[i] = v
				return result
			}
			return s
		},
	}
}
