// Package testutil provides rapid generators and comparison helpers for the
// functional containers.
package testutil

import (
	"errors"

	"github.com/authcorp/libs/go/typeclass/src/functional"
	"pgregory.net/rapid"
)

// IdentityGen generates Identity[T] values.
func IdentityGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Identity[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Identity[T] {
		return functional.NewIdentity(valueGen.Draw(t, "value"))
	})
}

// MaybeGen generates Maybe[T] values, Just or Nothing.
func MaybeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Maybe[T] {
		if rapid.Bool().Draw(t, "isJust") {
			return functional.Just(valueGen.Draw(t, "value"))
		}
		return functional.Nothing[T]()
	})
}

// JustGen generates Just[T] values only.
func JustGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Maybe[T] {
		return functional.Just(valueGen.Draw(t, "value"))
	})
}

// NothingGen generates Nothing[T] values only.
func NothingGen[T any]() *rapid.Generator[functional.Maybe[T]] {
	return rapid.Just(functional.Nothing[T]())
}

// EitherGen generates Either[L, R] values, Left or Right.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left[L, R] values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right[L, R] values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Right[L](rightGen.Draw(t, "right"))
	})
}

// ErrorGen generates error values.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.String().Draw(t, "errorMsg"))
	})
}

// AffineIntFuncGen generates functions of the form x*a + b.
func AffineIntFuncGen() *rapid.Generator[func(int) int] {
	return rapid.Custom(func(t *rapid.T) func(int) int {
		a := rapid.IntRange(-10, 10).Draw(t, "a")
		b := rapid.IntRange(-100, 100).Draw(t, "b")
		return func(x int) int { return x*a + b }
	})
}

// SmallIntGen generates integers that do not overflow under AffineIntFuncGen.
func SmallIntGen() *rapid.Generator[int] {
	return rapid.IntRange(-1_000_000, 1_000_000)
}
