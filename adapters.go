package optics

// Set is a collection of distinct elements wrapping a native Go set map.
type Set[T comparable] map[T]struct{}

// Contains reports whether the element is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// SetIso is the bijection between a native set map and its Set wrapper,
// plugging native sets into the optics algebra.
func SetIso[T comparable]() Iso[map[T]struct{}, Set[T]] {
	return Iso[map[T]struct{}, Set[T]]{
		Get:     func(m map[T]struct{}) Set[T] { return Set[T](m) },
		Reverse: func(s Set[T]) map[T]struct{} { return map[T]struct{}(s) },
	}
}
