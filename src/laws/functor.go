package laws

import (
	"context"
	"fmt"

	"github.com/authcorp/libs/go/typeclass/src/functional"
	"pgregory.net/rapid"
)

// FunctorSuite describes the Functor instances needed to check the identity
// and composition laws for F and G. For a single instance type, set every
// instance field to the same value, instantiated at the right element types.
type FunctorSuite[A, B, C, FA, FB, FC any] struct {
	Name     string
	Values   *rapid.Generator[FA]
	Identity functional.Functor[A, A, FA, FA]
	AB       functional.Functor[A, B, FA, FB]
	BC       functional.Functor[B, C, FB, FC]
	AC       functional.Functor[A, C, FA, FC]
	F        func(A) B
	G        func(B) C
}

func (s FunctorSuite[A, B, C, FA, FB, FC]) validate() error {
	switch {
	case s.Values == nil:
		return fmt.Errorf("%w: %s: Values is required", ErrInvalidSuite, s.Name)
	case s.Identity == nil || s.AB == nil || s.BC == nil || s.AC == nil:
		return fmt.Errorf("%w: %s: all instances are required", ErrInvalidSuite, s.Name)
	case s.F == nil || s.G == nil:
		return fmt.Errorf("%w: %s: F and G are required", ErrInvalidSuite, s.Name)
	}
	return nil
}

// CheckFunctor verifies:
//
//	identity:    Map(x, id) == x
//	composition: Map(x, compose(F, G)) == Map(Map(x, F), G)
func CheckFunctor[A, B, C, FA, FB, FC any](ctx context.Context, c *Checker, s FunctorSuite[A, B, C, FA, FB, FC]) error {
	if err := s.validate(); err != nil {
		return err
	}
	return c.checkAll(ctx, s.Name, []namedLaw{
		{name: "functor identity", draw: func(seed int) evaluation {
			fa := s.Values.Example(seed)
			return func() (any, string) {
				return fa, c.diff(fa, s.Identity.Map(fa, functional.IdentityFunc[A]))
			}
		}},
		{name: "functor composition", draw: func(seed int) evaluation {
			fa := s.Values.Example(seed)
			return func() (any, string) {
				want := s.BC.Map(s.AB.Map(fa, s.F), s.G)
				got := s.AC.Map(fa, functional.ComposeFunc(s.F, s.G))
				return fa, c.diff(want, got)
			}
		}},
	})
}
