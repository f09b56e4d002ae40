package optics

// Getter focuses on exactly one value derived from a source. It cannot
// fail and has no write half.
type Getter[S, A any] struct {
	Get func(S) A
}

// NewGetter creates a Getter from a get function.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{Get: get}
}

// AsFold converts the Getter to a single-target fold.
func (g Getter[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S, _ Monoid[any], fn func(A) any) any {
		return fn(g.Get(s))
	})
}

// ComposeGetter composes two getters into one focusing deeper.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{
		Get: func(s S) B { return inner.Get(outer.Get(s)) },
	}
}
