// Package functional provides Functor, Applicative and Monad contracts for Go
// together with three containers that implement them: Identity, Maybe and
// Either.
//
// Go has no higher-kinded types, so every contract is parameterised over both
// element types and both container types. A contract is implemented by an
// instance type per container shape (IdentityInstance, MaybeInstance,
// EitherInstance) and the instance ties the container types together, so a
// Maybe can never be combined with an Either.
package functional

// Functor represents containers that can be mapped over.
// FA is the container holding A and FB the same container shape holding B.
type Functor[A, B, FA, FB any] interface {
	// Pure wraps a value in the container.
	Pure(value A) FA
	// Map applies fn to the wrapped value if present, keeping the shape.
	Map(fa FA, fn func(A) B) FB
}

// Map applies fn to fa through the given Functor instance.
func Map[A, B, FA, FB any, F Functor[A, B, FA, FB]](instance F, fa FA, fn func(A) B) FB {
	return instance.Map(fa, fn)
}

// IdentityFunc is an identity function for functor law testing.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc composes two functions left to right: ComposeFunc(f, g)(x) == g(f(x)).
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always returns value.
func Const[B, A any](value A) func(B) A {
	return func(B) A {
		return value
	}
}
