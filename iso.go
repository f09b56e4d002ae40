package optics

import "github.com/authcorp/optics/functional"

// Iso is a bijection between two types: Get and Reverse are total inverses
// of each other.
type Iso[S, A any] struct {
	Get     func(S) A
	Reverse func(A) S
}

// NewIso creates an isomorphism from a pair of inverse functions.
func NewIso[S, A any](get func(S) A, reverse func(A) S) Iso[S, A] {
	return Iso[S, A]{Get: get, Reverse: reverse}
}

// Invert swaps the direction of the isomorphism.
func (i Iso[S, A]) Invert() Iso[A, S] {
	return Iso[A, S]{Get: i.Reverse, Reverse: i.Get}
}

// ToLens converts the Iso to a Lens.
func (i Iso[S, A]) ToLens() Lens[S, A] {
	return Lens[S, A]{
		Get: i.Get,
		Set: func(_ S, a A) S { return i.Reverse(a) },
	}
}

// ToPrism converts the Iso to an always-matching Prism.
func (i Iso[S, A]) ToPrism() Prism[S, A] {
	return Prism[S, A]{
		GetOption:  func(s S) functional.Option[A] { return functional.Some(i.Get(s)) },
		ReverseGet: i.Reverse,
	}
}

// AsFold converts the Iso to a single-target fold.
func (i Iso[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S, _ Monoid[any], fn func(A) any) any {
		return fn(i.Get(s))
	})
}

// ComposeIso composes two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		Get:     func(s S) B { return inner.Get(outer.Get(s)) },
		Reverse: func(b B) S { return outer.Reverse(inner.Reverse(b)) },
	}
}

// IdentityIso is the identity bijection.
func IdentityIso[S any]() Iso[S, S] {
	return Iso[S, S]{
		Get:     func(s S) S { return s },
		Reverse: func(s S) S { return s },
	}
}
