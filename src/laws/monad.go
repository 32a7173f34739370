package laws

import (
	"context"
	"fmt"

	"github.com/authcorp/libs/go/typeclass/src/functional"
	"pgregory.net/rapid"
)

// MonadSuite describes the Monad instances needed to check the monad laws for
// F and G.
type MonadSuite[A, B, C, MA, MB, MC any] struct {
	Name string
	// Values feeds the left identity law.
	Values *rapid.Generator[A]
	// Containers feeds the right identity and associativity laws.
	Containers *rapid.Generator[MA]
	Unit       functional.Monad[A, A, MA, MA]
	AB         functional.Monad[A, B, MA, MB]
	BC         functional.Monad[B, C, MB, MC]
	AC         functional.Monad[A, C, MA, MC]
	F          func(A) MB
	G          func(B) MC
}

func (s MonadSuite[A, B, C, MA, MB, MC]) validate() error {
	switch {
	case s.Values == nil || s.Containers == nil:
		return fmt.Errorf("%w: %s: Values and Containers are required", ErrInvalidSuite, s.Name)
	case s.Unit == nil || s.AB == nil || s.BC == nil || s.AC == nil:
		return fmt.Errorf("%w: %s: all instances are required", ErrInvalidSuite, s.Name)
	case s.F == nil || s.G == nil:
		return fmt.Errorf("%w: %s: F and G are required", ErrInvalidSuite, s.Name)
	}
	return nil
}

// CheckMonad verifies:
//
//	left identity:  Bind(Pure(x), F) == F(x)
//	right identity: Bind(m, Pure) == m
//	associativity:  Bind(Bind(m, F), G) == Bind(m, x -> Bind(F(x), G))
func CheckMonad[A, B, C, MA, MB, MC any](ctx context.Context, c *Checker, s MonadSuite[A, B, C, MA, MB, MC]) error {
	if err := s.validate(); err != nil {
		return err
	}
	return c.checkAll(ctx, s.Name, []namedLaw{
		{name: "monad left identity", draw: func(seed int) evaluation {
			x := s.Values.Example(seed)
			return func() (any, string) {
				return x, c.diff(s.F(x), s.AB.Bind(s.AB.Pure(x), s.F))
			}
		}},
		{name: "monad right identity", draw: func(seed int) evaluation {
			m := s.Containers.Example(seed)
			return func() (any, string) {
				return m, c.diff(m, s.Unit.Bind(m, s.Unit.Pure))
			}
		}},
		{name: "monad associativity", draw: func(seed int) evaluation {
			m := s.Containers.Example(seed)
			return func() (any, string) {
				want := s.BC.Bind(s.AB.Bind(m, s.F), s.G)
				got := s.AC.Bind(m, func(a A) MC {
					return s.BC.Bind(s.F(a), s.G)
				})
				return m, c.diff(want, got)
			}
		}},
	})
}
