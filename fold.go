package optics

import "github.com/authcorp/optics/functional"

// Fold is a read-only optic reaching zero or more targets of type A from a
// source of type S. It is defined by a single primitive, foldMap, which
// reduces every target through a caller-supplied monoid; every other
// operation on Fold is derived from that one reduction.
//
// A Fold is stateless and immutable after construction: it never mutates or
// retains the source, and the same instance may be used concurrently.
//
// The accumulator type is erased to any inside the primitive because a Go
// method cannot introduce its own type parameter. Use the package-level
// FoldMap function for a fully typed reduction, or the derived methods for
// the common queries.
type Fold[S, A any] struct {
	foldMap func(s S, m Monoid[any], fn func(A) any) any
}

// NewFold creates a Fold from its reduction primitive. The implementation
// must map every target through fn and combine the results left to right in
// a stable, documented traversal order, starting from m.Empty, and must
// return m.Empty when no target is reachable.
func NewFold[S, A any](foldMap func(s S, m Monoid[any], fn func(A) any) any) Fold[S, A] {
	return Fold[S, A]{foldMap: foldMap}
}

// FoldMap reduces every target reachable from s through the monoid m after
// mapping each with fn. This is the typed front door to the primitive; all
// derived queries are specific instances of it.
func FoldMap[S, A, R any](f Fold[S, A], s S, m Monoid[R], fn func(A) R) R {
	return f.foldMap(s, erase(m), func(a A) any { return fn(a) }).(R)
}

// Size returns the number of targets reachable from s.
func (f Fold[S, A]) Size(s S) int {
	return FoldMap(f, s, IntSum(), func(A) int { return 1 })
}

// IsEmpty reports whether no target is reachable from s.
func (f Fold[S, A]) IsEmpty(s S) bool {
	return f.Size(s) == 0
}

// NonEmpty reports whether at least one target is reachable from s.
func (f Fold[S, A]) NonEmpty(s S) bool {
	return !f.IsEmpty(s)
}

// Forall reports whether every target satisfies the predicate. It is
// vacuously true when no target is reachable.
func (f Fold[S, A]) Forall(s S, predicate func(A) bool) bool {
	return FoldMap(f, s, BoolAll(), predicate)
}

// HeadOption returns the first target in traversal order, or None when no
// target is reachable.
func (f Fold[S, A]) HeadOption(s S) functional.Option[A] {
	return FoldMap(f, s, FirstOption[A](), functional.Some[A])
}

// LastOption returns the last target in traversal order, or None when no
// target is reachable.
func (f Fold[S, A]) LastOption(s S) functional.Option[A] {
	return FoldMap(f, s, LastOption[A](), functional.Some[A])
}

// Find returns the first target in traversal order satisfying the
// predicate, or None when no target does.
func (f Fold[S, A]) Find(s S, predicate func(A) bool) functional.Option[A] {
	return FoldMap(f, s, FirstOption[A](), func(a A) functional.Option[A] {
		if predicate(a) {
			return functional.Some(a)
		}
		return functional.None[A]()
	})
}

// Exists reports whether some target satisfies the predicate. It is false
// when no target is reachable.
func (f Fold[S, A]) Exists(s S, predicate func(A) bool) bool {
	return f.Find(s, predicate).IsSome()
}

// GetAll returns every target in traversal order, duplicates preserved. The
// result is nil when no target is reachable.
func (f Fold[S, A]) GetAll(s S) []A {
	return FoldMap(f, s, SliceConcat[A](), func(a A) []A { return []A{a} })
}

// Fold reduces the targets of type A directly through the given monoid,
// without mapping.
func (f Fold[S, A]) Fold(s S, m Monoid[A]) A {
	return FoldMap(f, s, m, func(a A) A { return a })
}
