package optics

import "github.com/authcorp/optics/functional"

// Monoid pairs an identity element with an associative combine operation
// over R. It is supplied per call rather than fixed per type.
//
// The library trusts the caller: Combine must be associative and Empty must
// be its identity. Neither law is checked on the production path; a
// violation yields unspecified (but non-panicking) results. The opticstest
// package provides law checkers for test suites.
type Monoid[R any] struct {
	Empty   R
	Combine func(R, R) R
}

// NewMonoid creates a Monoid from an identity element and a combine
// operation.
func NewMonoid[R any](empty R, combine func(R, R) R) Monoid[R] {
	return Monoid[R]{Empty: empty, Combine: combine}
}

// erase widens a typed monoid to the any-accumulator form the Fold
// primitive runs on. The assertions are sound as long as every accumulator
// flowing through a single foldMap call originates from the same monoid.
func erase[R any](m Monoid[R]) Monoid[any] {
	return Monoid[any]{
		Empty: m.Empty,
		Combine: func(x, y any) any {
			return m.Combine(x.(R), y.(R))
		},
	}
}

// IntSum is the (0, +) monoid used for counting targets.
func IntSum() Monoid[int] {
	return Monoid[int]{Empty: 0, Combine: func(x, y int) int { return x + y }}
}

// BoolAll is the (true, &&) monoid: the reduction holds only when every
// element holds, and holds vacuously for zero elements.
func BoolAll() Monoid[bool] {
	return Monoid[bool]{Empty: true, Combine: func(x, y bool) bool { return x && y }}
}

// FirstOption is the first-wins monoid over Option[A]: an earlier Some
// shadows everything after it.
func FirstOption[A any]() Monoid[functional.Option[A]] {
	return Monoid[functional.Option[A]]{
		Empty: functional.None[A](),
		Combine: func(x, y functional.Option[A]) functional.Option[A] {
			if x.IsSome() {
				return x
			}
			return y
		},
	}
}

// LastOption is the last-wins monoid over Option[A]: a later Some shadows
// everything before it.
func LastOption[A any]() Monoid[functional.Option[A]] {
	return Monoid[functional.Option[A]]{
		Empty: functional.None[A](),
		Combine: func(x, y functional.Option[A]) functional.Option[A] {
			if y.IsSome() {
				return y
			}
			return x
		},
	}
}

// SliceConcat is the (nil, append) monoid collecting elements in traversal
// order, duplicates preserved.
func SliceConcat[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Empty: nil,
		Combine: func(x, y []A) []A {
			out := make([]A, 0, len(x)+len(y))
			out = append(out, x...)
			return append(out, y...)
		},
	}
}
