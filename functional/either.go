// Package functional provides the sum types the optics algebra is built
// against: Either for tagged unions, Option for zero-or-one results, and a
// range-function Iterator for lazy element sources.
package functional

import "fmt"

// Either holds exactly one value of two possible types. The tag is fixed at
// construction and never changes.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either carrying a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either carrying a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft reports whether the Either carries a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either carries a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics on a Right.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right value or panics on a Left.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("called RightValue on Left")
	}
	return e.right
}

// MatchEither deconstructs the Either: exactly one of the two handlers runs,
// determined by the tag, and its result is returned.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEitherRight transforms the right value, passing a Left through.
func MapEitherRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapEitherLeft transforms the left value, passing a Right through.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U](e.right)
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
