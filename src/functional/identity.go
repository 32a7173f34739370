package functional

import "fmt"

// Identity wraps exactly one value.
type Identity[T any] struct {
	value T
}

// NewIdentity creates an Identity holding value.
func NewIdentity[T any](value T) Identity[T] {
	return Identity[T]{value: value}
}

// Get returns the wrapped value.
func (i Identity[T]) Get() T {
	return i.value
}

// String implements fmt.Stringer.
func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.value)
}

// MapIdentity applies fn to the wrapped value.
func MapIdentity[T, U any](i Identity[T], fn func(T) U) Identity[U] {
	return NewIdentity(fn(i.value))
}

// ApplyIdentity applies the function held by fn to the value held by i.
func ApplyIdentity[T, U any](i Identity[T], fn Identity[func(T) U]) Identity[U] {
	return NewIdentity(fn.value(i.value))
}

// BindIdentity passes the wrapped value to fn.
func BindIdentity[T, U any](i Identity[T], fn func(T) Identity[U]) Identity[U] {
	return fn(i.value)
}

// JoinIdentity removes one level of nesting.
func JoinIdentity[T any](i Identity[Identity[T]]) Identity[T] {
	return i.value
}

// IdentityInstance implements Functor, Applicative and Monad for Identity.
type IdentityInstance[A, B any] struct{}

// Pure wraps value in an Identity.
func (IdentityInstance[A, B]) Pure(value A) Identity[A] {
	return NewIdentity(value)
}

// Lift wraps fn in an Identity.
func (IdentityInstance[A, B]) Lift(fn func(A) B) Identity[func(A) B] {
	return NewIdentity(fn)
}

// Map delegates to MapIdentity.
func (IdentityInstance[A, B]) Map(fa Identity[A], fn func(A) B) Identity[B] {
	return MapIdentity(fa, fn)
}

// Apply delegates to ApplyIdentity.
func (IdentityInstance[A, B]) Apply(fa Identity[A], ff Identity[func(A) B]) Identity[B] {
	return ApplyIdentity(fa, ff)
}

// Bind delegates to BindIdentity.
func (IdentityInstance[A, B]) Bind(ma Identity[A], fn func(A) Identity[B]) Identity[B] {
	return BindIdentity(ma, fn)
}
