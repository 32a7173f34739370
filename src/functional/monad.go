package functional

// Monad represents containers that support sequencing.
//
// Implementations must satisfy:
//
//	left identity:  Bind(Pure(x), f) == f(x)
//	right identity: Bind(m, Pure) == m
//	associativity:  Bind(Bind(m, f), g) == Bind(m, func(x) { return Bind(f(x), g) })
type Monad[A, B, MA, MB any] interface {
	// Pure wraps a value in the container.
	Pure(value A) MA
	// Bind passes the wrapped value to fn and returns its container directly.
	Bind(ma MA, fn func(A) MB) MB
}

// Bind sequences ma into fn through the given Monad instance.
func Bind[A, B, MA, MB any, M Monad[A, B, MA, MB]](instance M, ma MA, fn func(A) MB) MB {
	return instance.Bind(ma, fn)
}
