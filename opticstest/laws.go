package opticstest

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/optics"
)

// CheckMonoidLaws verifies that Combine is associative over generated
// values and that Empty is its two-sided identity. The production code
// assumes both without checking; run this against any monoid handed to
// FoldMap.
func CheckMonoidLaws[R any](t *testing.T, m optics.Monoid[R], gen *rapid.Generator[R]) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		x := gen.Draw(rt, "x")
		y := gen.Draw(rt, "y")
		z := gen.Draw(rt, "z")
		if !equal(m.Combine(m.Combine(x, y), z), m.Combine(x, m.Combine(y, z))) {
			rt.Fatalf("combine is not associative at %v, %v, %v", x, y, z)
		}
		if !equal(m.Combine(m.Empty, x), x) {
			rt.Fatalf("empty is not a left identity at %v", x)
		}
		if !equal(m.Combine(x, m.Empty), x) {
			rt.Fatalf("empty is not a right identity at %v", x)
		}
	})
}

// CheckFoldMapLaw verifies the monoid-homomorphism law for a fold: for
// generated sources, FoldMap must equal mapping GetAll through fn and
// reducing left to right with the monoid, starting from Empty.
func CheckFoldMapLaw[S, A, R any](t *testing.T, f optics.Fold[S, A], sourceGen *rapid.Generator[S], m optics.Monoid[R], fn func(A) R) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		s := sourceGen.Draw(rt, "source")
		want := m.Empty
		for _, a := range f.GetAll(s) {
			want = m.Combine(want, fn(a))
		}
		got := optics.FoldMap(f, s, m, fn)
		if !equal(got, want) {
			rt.Fatalf("foldMap %v differs from getAll reduction %v for source %v", got, want, s)
		}
	})
}

func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
