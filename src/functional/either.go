package functional

import (
	"fmt"
	"iter"
)

// Either represents a value of one of two possible types.
// Left is the primary side that operations transform; Right is the secondary
// side that short-circuits and is carried through unchanged. The zero value is
// Left holding the zero L.
//
// Carrying a Right value copies it by assignment, so reference types (pointers,
// slices, maps) are shared with the source, not cloned.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left (primary) value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either with a right (secondary) value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right value or panics.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("called RightValue on Left")
	}
	return e.right
}

// LeftOr returns the left value or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Match executes one of two functions based on Either state.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// All returns an iterator over the left value (0 or 1 element).
func (e Either[L, R]) All() iter.Seq[L] {
	return func(yield func(L) bool) {
		if !e.isRight {
			yield(e.left)
		}
	}
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies fn to the left value; a Right is carried through.
func MapEither[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U, R](e.right)
	}
	return Left[U, R](fn(e.left))
}

// MapRight applies fn to the right value; a Left is carried through.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](fn(e.right))
	}
	return Left[L, U](e.left)
}

// ApplyEither applies the function held by fn to the left value of e.
// A Right in e takes precedence over a Right in fn.
func ApplyEither[L, R, U any](e Either[L, R], fn Either[func(L) U, R]) Either[U, R] {
	if e.isRight {
		return Right[U, R](e.right)
	}
	if fn.isRight {
		return Right[U, R](fn.right)
	}
	return Left[U, R](fn.left(e.left))
}

// BindEither passes the left value to fn; a Right short-circuits.
func BindEither[L, R, U any](e Either[L, R], fn func(L) Either[U, R]) Either[U, R] {
	if e.isRight {
		return Right[U, R](e.right)
	}
	return fn(e.left)
}

// JoinEither removes one level of nesting.
func JoinEither[L, R any](e Either[Either[L, R], R]) Either[L, R] {
	if e.isRight {
		return Right[L, R](e.right)
	}
	return e.left
}

// LiftA2Either combines two Either values with a binary function.
// The right value of ea wins over that of eb.
func LiftA2Either[A, B, C, R any](fn func(A, B) C, ea Either[A, R], eb Either[B, R]) Either[C, R] {
	if ea.isRight {
		return Right[C, R](ea.right)
	}
	curried := MapEither(ea, func(a A) func(B) C {
		return func(b B) C { return fn(a, b) }
	})
	return ApplyEither(eb, curried)
}

// MaybeToEither converts Just to Left and Nothing to Right(secondary).
func MaybeToEither[T, R any](m Maybe[T], secondary R) Either[T, R] {
	if m.just {
		return Left[T, R](m.value)
	}
	return Right[T, R](secondary)
}

// EitherToMaybe converts Left to Just, discarding any right value.
func EitherToMaybe[L, R any](e Either[L, R]) Maybe[L] {
	if e.isRight {
		return Nothing[L]()
	}
	return Just(e.left)
}

// EitherInstance implements Functor, Applicative and Monad for Either with
// right type R.
type EitherInstance[A, B, R any] struct{}

// Pure wraps value in Left.
func (EitherInstance[A, B, R]) Pure(value A) Either[A, R] {
	return Left[A, R](value)
}

// Lift wraps fn in Left.
func (EitherInstance[A, B, R]) Lift(fn func(A) B) Either[func(A) B, R] {
	return Left[func(A) B, R](fn)
}

// Map delegates to MapEither.
func (EitherInstance[A, B, R]) Map(fa Either[A, R], fn func(A) B) Either[B, R] {
	return MapEither(fa, fn)
}

// Apply delegates to ApplyEither.
func (EitherInstance[A, B, R]) Apply(fa Either[A, R], ff Either[func(A) B, R]) Either[B, R] {
	return ApplyEither(fa, ff)
}

// Bind delegates to BindEither.
func (EitherInstance[A, B, R]) Bind(ma Either[A, R], fn func(A) Either[B, R]) Either[B, R] {
	return BindEither(ma, fn)
}
