package functional

// Applicative represents containers whose wrapped functions can be applied to
// wrapped values. FF is the container shape holding func(A) B.
//
// Apply yields a populated container only when both operands are populated;
// otherwise the absent or secondary state of an operand is propagated, checking
// fa before ff.
type Applicative[A, B, FA, FF, FB any] interface {
	// Pure wraps a value in the container.
	Pure(value A) FA
	// Lift wraps a function in the container.
	Lift(fn func(A) B) FF
	// Apply applies the wrapped function in ff to the wrapped value in fa.
	Apply(fa FA, ff FF) FB
}

// Apply combines fa and ff through the given Applicative instance.
func Apply[A, B, FA, FF, FB any, F Applicative[A, B, FA, FF, FB]](instance F, fa FA, ff FF) FB {
	return instance.Apply(fa, ff)
}
