package optics

import "github.com/authcorp/optics/functional"

// Prism focuses on one variant of a sum type: matching yields zero or one
// target, and ReverseGet rebuilds the source from a target.
type Prism[S, A any] struct {
	GetOption  func(S) functional.Option[A]
	ReverseGet func(A) S
}

// NewPrism creates a prism from getOption and reverseGet functions.
func NewPrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{GetOption: getOption, ReverseGet: reverseGet}
}

// Modify applies a function to the focused value if the prism matches.
func (p Prism[S, A]) Modify(s S, fn func(A) A) S {
	opt := p.GetOption(s)
	if opt.IsNone() {
		return s
	}
	return p.ReverseGet(fn(opt.Unwrap()))
}

// AsFold converts the Prism to a zero-or-one-target fold: a match is the
// single target, a miss contributes nothing.
func (p Prism[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S, m Monoid[any], fn func(A) any) any {
		return functional.MatchOption(p.GetOption(s), fn, func() any { return m.Empty })
	})
}

// ComposePrism composes two prisms into one matching deeper.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOption: func(s S) functional.Option[B] {
			outerOpt := outer.GetOption(s)
			if outerOpt.IsNone() {
				return functional.None[B]()
			}
			return inner.GetOption(outerOpt.Unwrap())
		},
		ReverseGet: func(b B) S {
			return outer.ReverseGet(inner.ReverseGet(b))
		},
	}
}

// SomePrism matches the Some case of an Option.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return Prism[functional.Option[T], T]{
		GetOption: func(o functional.Option[T]) functional.Option[T] {
			return o
		},
		ReverseGet: func(t T) functional.Option[T] {
			return functional.Some(t)
		},
	}
}

// LeftPrism matches the Left case of an Either.
func LeftPrism[L, R any]() Prism[functional.Either[L, R], L] {
	return Prism[functional.Either[L, R], L]{
		GetOption: func(e functional.Either[L, R]) functional.Option[L] {
			return functional.MatchEither(e, functional.Some[L], func(R) functional.Option[L] {
				return functional.None[L]()
			})
		},
		ReverseGet: functional.Left[L, R],
	}
}

// RightPrism matches the Right case of an Either.
func RightPrism[L, R any]() Prism[functional.Either[L, R], R] {
	return Prism[functional.Either[L, R], R]{
		GetOption: func(e functional.Either[L, R]) functional.Option[R] {
			return functional.MatchEither(e, func(L) functional.Option[R] {
				return functional.None[R]()
			}, functional.Some[R])
		},
		ReverseGet: functional.Right[L, R],
	}
}
