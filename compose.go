package optics

import "github.com/authcorp/optics/functional"

// ComposeFold sequences two folds: for each target A reached from S, the
// inner fold reduces onward to its C targets under the same monoid. The
// composition is associative and traverses the source once per logical
// target.
func ComposeFold[S, A, C any](outer Fold[S, A], inner Fold[A, C]) Fold[S, C] {
	return NewFold(func(s S, m Monoid[any], fn func(C) any) any {
		return outer.foldMap(s, m, func(a A) any {
			return inner.foldMap(a, m, fn)
		})
	})
}

// ComposeFoldGetter composes a fold with a getter, reaching the getter's
// single target under each A.
func ComposeFoldGetter[S, A, C any](outer Fold[S, A], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldLens composes a fold with a lens, reaching the lens's single
// target under each A.
func ComposeFoldLens[S, A, C any](outer Fold[S, A], inner Lens[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldIso composes a fold with an isomorphism.
func ComposeFoldIso[S, A, C any](outer Fold[S, A], inner Iso[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldPrism composes a fold with a prism; each A contributes its
// zero-or-one match.
func ComposeFoldPrism[S, A, C any](outer Fold[S, A], inner Prism[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldOptional composes a fold with an optional; each A contributes
// its zero-or-one target.
func ComposeFoldOptional[S, A, C any](outer Fold[S, A], inner Optional[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldTraversal composes a fold with a traversal; each A contributes
// all of its targets in the traversal's order.
func ComposeFoldTraversal[S, A, C any](outer Fold[S, A], inner Traversal[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// Choice combines two folds over a tagged union source: a Left source is
// folded by f, a Right source by g. Both branches target the same A.
func Choice[S, C, A any](f Fold[S, A], g Fold[C, A]) Fold[functional.Either[S, C], A] {
	return NewFold(func(e functional.Either[S, C], m Monoid[any], fn func(A) any) any {
		return functional.MatchEither(e,
			func(s S) any { return f.foldMap(s, m, fn) },
			func(c C) any { return g.foldMap(c, m, fn) },
		)
	})
}

// Left widens the fold to a tagged union source: a Left source is folded
// and each target re-wrapped as Left, while a Right source passes through
// untouched as a single Right target.
func Left[S, A, C any](f Fold[S, A]) Fold[functional.Either[S, C], functional.Either[A, C]] {
	return NewFold(func(e functional.Either[S, C], m Monoid[any], fn func(functional.Either[A, C]) any) any {
		return functional.MatchEither(e,
			func(s S) any {
				return f.foldMap(s, m, func(a A) any { return fn(functional.Left[A, C](a)) })
			},
			func(c C) any { return fn(functional.Right[A](c)) },
		)
	})
}

// Right is symmetric to Left: a Left source passes through untouched as a
// single Left target, while a Right source is folded and each target
// re-wrapped as Right.
func Right[S, A, C any](f Fold[S, A]) Fold[functional.Either[C, S], functional.Either[C, A]] {
	return NewFold(func(e functional.Either[C, S], m Monoid[any], fn func(functional.Either[C, A]) any) any {
		return functional.MatchEither(e,
			func(c C) any { return fn(functional.Left[C, A](c)) },
			func(s S) any {
				return f.foldMap(s, m, func(a A) any { return fn(functional.Right[C](a)) })
			},
		)
	})
}
