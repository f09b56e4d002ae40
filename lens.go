package optics

import "github.com/authcorp/optics/functional"

// Lens focuses on exactly one part of a product type, with both read and
// write halves. Only the read half participates in folding.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// NewLens creates a Lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(s S, fn func(A) A) S {
	return l.Set(s, fn(l.Get(s)))
}

// AsGetter discards the write half.
func (l Lens[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{Get: l.Get}
}

// AsFold converts the Lens to a single-target fold over its focus.
func (l Lens[S, A]) AsFold() Fold[S, A] {
	return l.AsGetter().AsFold()
}

// ComposeLens composes two lenses into one focusing deeper.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}

// IdentityLens focuses on the source itself.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		Get: func(s S) S { return s },
		Set: func(_ S, s S) S { return s },
	}
}

// At creates a lens for map access; the focus is the optional value at the
// key. Writing None deletes the key. The source map is never mutated.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		Get: func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		Set: func(m map[K]V, opt functional.Option[V]) map[K]V {
			result := make(map[K]V, len(m))
			for k, v := range m {
				result[k] = v
			}
			if opt.IsSome() {
				result[key] = opt.Unwrap()
			} else {
				delete(result, key)
			}
			return result
		},
	}
}
