package functional

import (
	"fmt"
	"iter"
)

// Maybe represents an optional value: either Just a value or Nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just creates a Maybe holding value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, just: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// MaybeFromPtr creates a Maybe from a pointer; nil becomes Nothing.
func MaybeFromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// IsJust returns true if the Maybe holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Unwrap returns the held value or panics on Nothing.
func (m Maybe[T]) Unwrap() T {
	if !m.just {
		panic("called Unwrap on Nothing")
	}
	return m.value
}

// UnwrapOr returns the held value or defaultValue.
func (m Maybe[T]) UnwrapOr(defaultValue T) T {
	if m.just {
		return m.value
	}
	return defaultValue
}

// UnwrapOrElse returns the held value or computes one.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.just {
		return m.value
	}
	return fn()
}

// Filter returns Nothing unless the held value satisfies predicate.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.just && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// Match executes onJust or onNothing depending on the state.
func (m Maybe[T]) Match(onJust func(T), onNothing func()) {
	if m.just {
		onJust(m.value)
	} else {
		onNothing()
	}
}

// ToSlice returns an empty or single element slice.
func (m Maybe[T]) ToSlice() []T {
	if m.just {
		return []T{m.value}
	}
	return []T{}
}

// ToPtr returns a pointer to a copy of the held value, or nil.
func (m Maybe[T]) ToPtr() *T {
	if m.just {
		v := m.value
		return &v
	}
	return nil
}

// All returns an iterator over the Maybe (0 or 1 element).
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.just {
			yield(m.value)
		}
	}
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// MatchMaybe executes one of two functions and returns the result.
func MatchMaybe[T, U any](m Maybe[T], onJust func(T) U, onNothing func() U) U {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies fn to the held value; Nothing stays Nothing.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.just {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// ApplyMaybe applies the function held by fn to the value held by m.
// The result is Nothing if either operand is Nothing.
func ApplyMaybe[T, U any](m Maybe[T], fn Maybe[func(T) U]) Maybe[U] {
	if !m.just || !fn.just {
		return Nothing[U]()
	}
	return Just(fn.value(m.value))
}

// BindMaybe passes the held value to fn; Nothing short-circuits.
func BindMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return fn(m.value)
	}
	return Nothing[U]()
}

// JoinMaybe removes one level of nesting.
func JoinMaybe[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if m.just {
		return m.value
	}
	return Nothing[T]()
}

// LiftA2Maybe combines two Maybe values with a binary function.
func LiftA2Maybe[A, B, C any](fn func(A, B) C, ma Maybe[A], mb Maybe[B]) Maybe[C] {
	curried := MapMaybe(ma, func(a A) func(B) C {
		return func(b B) C { return fn(a, b) }
	})
	return ApplyMaybe(mb, curried)
}

// MaybeInstance implements Functor, Applicative and Monad for Maybe.
type MaybeInstance[A, B any] struct{}

// Pure wraps value in Just.
func (MaybeInstance[A, B]) Pure(value A) Maybe[A] {
	return Just(value)
}

// Lift wraps fn in Just.
func (MaybeInstance[A, B]) Lift(fn func(A) B) Maybe[func(A) B] {
	return Just(fn)
}

// Map delegates to MapMaybe.
func (MaybeInstance[A, B]) Map(fa Maybe[A], fn func(A) B) Maybe[B] {
	return MapMaybe(fa, fn)
}

// Apply delegates to ApplyMaybe.
func (MaybeInstance[A, B]) Apply(fa Maybe[A], ff Maybe[func(A) B]) Maybe[B] {
	return ApplyMaybe(fa, ff)
}

// Bind delegates to BindMaybe.
func (MaybeInstance[A, B]) Bind(ma Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	return BindMaybe(ma, fn)
}
