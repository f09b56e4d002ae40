package optics

import "github.com/authcorp/optics/functional"

// IdentityFold is the fold whose single target is the source itself. It is
// the fold projection of the identity isomorphism.
func IdentityFold[A any]() Fold[A, A] {
	return IdentityIso[A]().AsFold()
}

// Codiagonal folds an Either whose branches carry the same type: the tag is
// stripped and whichever branch is present is the single target.
func Codiagonal[S any]() Fold[functional.Either[S, S], S] {
	return NewFold(func(e functional.Either[S, S], m Monoid[any], fn func(S) any) any {
		return functional.MatchEither(e,
			func(s S) any { return fn(s) },
			func(s S) any { return fn(s) },
		)
	})
}

// Select is a zero-or-one-target fold: the source itself is the target when
// it satisfies the predicate, otherwise there are no targets and the
// caller's Empty is returned untouched.
func Select[S any](predicate func(S) bool) Fold[S, S] {
	return NewFold(func(s S, m Monoid[any], fn func(S) any) any {
		if predicate(s) {
			return fn(s)
		}
		return m.Empty
	})
}

// Void is the fold with no targets for any source. It is absorbing under
// composition: composing anything with Void yields a fold with no targets.
func Void[S, A any]() Fold[S, A] {
	return NewFold(func(_ S, m Monoid[any], _ func(A) any) any {
		return m.Empty
	})
}

// FromIterable folds an iterator source: every yielded element is a target,
// in yield order.
func FromIterable[A any]() Fold[functional.Iterator[A], A] {
	return NewFold(func(iter functional.Iterator[A], m Monoid[any], fn func(A) any) any {
		acc := m.Empty
		iter(func(a A) bool {
			acc = m.Combine(acc, fn(a))
			return true
		})
		return acc
	})
}

// FromSlice folds a slice source: every element is a target, in index
// order.
func FromSlice[A any]() Fold[[]A, A] {
	return SliceTraversal[A]().AsFold()
}
