package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates a present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || o.IsNone() {
			t.Error("expected a present option")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("None creates an empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() || !o.IsNone() {
			t.Error("expected an empty option")
		}
	})

	t.Run("Unwrap panics on None", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		None[int]().Unwrap()
	})

	t.Run("UnwrapOr falls back on None", func(t *testing.T) {
		if None[int]().UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
		if Some(42).UnwrapOr(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("Filter keeps matching values", func(t *testing.T) {
		if Some(42).Filter(func(x int) bool { return x > 0 }).IsNone() {
			t.Error("expected Some to survive")
		}
		if Some(42).Filter(func(x int) bool { return x < 0 }).IsSome() {
			t.Error("expected None")
		}
		if None[int]().Filter(func(int) bool { return true }).IsSome() {
			t.Error("expected None to stay None")
		}
	})

	t.Run("ToSlice is empty or a singleton", func(t *testing.T) {
		if len(None[int]().ToSlice()) != 0 {
			t.Error("expected empty slice")
		}
		s := Some(42).ToSlice()
		if len(s) != 1 || s[0] != 42 {
			t.Errorf("expected [42], got %v", s)
		}
	})

	t.Run("String renders the state", func(t *testing.T) {
		if Some(42).String() != "Some(42)" {
			t.Error("unexpected string for Some")
		}
		if None[int]().String() != "None" {
			t.Error("unexpected string for None")
		}
	})
}

func TestOptionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("MapOption on Some applies the function", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := MapOption(Some(n), fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("MapOption on None stays None", prop.ForAll(
		func(n int) bool {
			return MapOption(None[int](), func(x int) int { return x + n }).IsNone()
		},
		gen.Int(),
	))

	properties.Property("MatchOption runs the handler for the state", prop.ForAll(
		func(n int) bool {
			onSome := func(x int) int { return x }
			onNone := func() int { return -1 }
			return MatchOption(Some(n), onSome, onNone) == n &&
				MatchOption(None[int](), onSome, onNone) == -1
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
