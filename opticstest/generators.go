// Package opticstest provides property-test support for the optics
// library: rapid generators for the functional sum types and checkers for
// the monoid and foldMap laws the production code trusts but never
// verifies.
package opticstest

import (
	"pgregory.net/rapid"

	"github.com/authcorp/optics/functional"
)

// OptionGen generates Option[T] values, mixing Some and None.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// EitherGen generates Either[L, R] values, mixing Left and Right.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// IntSliceGen generates int slices of up to 20 elements.
func IntSliceGen() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.Int(), 0, 20)
}
