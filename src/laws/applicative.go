package laws

import (
	"context"
	"fmt"

	"github.com/authcorp/libs/go/typeclass/src/functional"
	"pgregory.net/rapid"
)

// ApplicativeSuite describes the Applicative instances needed to check the
// applicative laws for F. FAA is the function container for func(A) A and FF
// the one for func(A) B.
type ApplicativeSuite[A, B, FA, FAA, FF, FB any] struct {
	Name     string
	Values   *rapid.Generator[FA]
	Identity functional.Applicative[A, A, FA, FAA, FA]
	Instance functional.Applicative[A, B, FA, FF, FB]
	// Mapper is the Functor that Apply must agree with.
	Mapper functional.Functor[A, B, FA, FB]
	F      func(A) B

	// The absorption law is checked only when IsAbsent is set. It draws from
	// AbsentValues paired with Lift(F), and from Values paired with
	// AbsentFunctions; either generator may be nil.
	IsAbsent        func(FB) bool
	AbsentValues    *rapid.Generator[FA]
	AbsentFunctions *rapid.Generator[FF]
}

func (s ApplicativeSuite[A, B, FA, FAA, FF, FB]) validate() error {
	switch {
	case s.Values == nil:
		return fmt.Errorf("%w: %s: Values is required", ErrInvalidSuite, s.Name)
	case s.Identity == nil || s.Instance == nil || s.Mapper == nil:
		return fmt.Errorf("%w: %s: all instances are required", ErrInvalidSuite, s.Name)
	case s.F == nil:
		return fmt.Errorf("%w: %s: F is required", ErrInvalidSuite, s.Name)
	}
	return nil
}

// CheckApplicative verifies:
//
//	identity:    Apply(v, Lift(id)) == v
//	map:         Apply(v, Lift(F)) == Map(v, F)
//	absorption:  Apply(absent, _) and Apply(_, absent) are absent
func CheckApplicative[A, B, FA, FAA, FF, FB any](ctx context.Context, c *Checker, s ApplicativeSuite[A, B, FA, FAA, FF, FB]) error {
	if err := s.validate(); err != nil {
		return err
	}
	laws := []namedLaw{
		{name: "applicative identity", draw: func(seed int) evaluation {
			v := s.Values.Example(seed)
			return func() (any, string) {
				return v, c.diff(v, s.Identity.Apply(v, s.Identity.Lift(functional.IdentityFunc[A])))
			}
		}},
		{name: "applicative map", draw: func(seed int) evaluation {
			v := s.Values.Example(seed)
			return func() (any, string) {
				return v, c.diff(s.Mapper.Map(v, s.F), s.Instance.Apply(v, s.Instance.Lift(s.F)))
			}
		}},
	}
	if s.IsAbsent != nil && s.AbsentValues != nil {
		laws = append(laws, namedLaw{name: "applicative absorption (values)", draw: func(seed int) evaluation {
			v := s.AbsentValues.Example(seed)
			return func() (any, string) {
				return v, s.absent(s.Instance.Apply(v, s.Instance.Lift(s.F)))
			}
		}})
	}
	if s.IsAbsent != nil && s.AbsentFunctions != nil {
		laws = append(laws, namedLaw{name: "applicative absorption (functions)", draw: func(seed int) evaluation {
			v := s.Values.Example(seed)
			ff := s.AbsentFunctions.Example(seed)
			return func() (any, string) {
				return v, s.absent(s.Instance.Apply(v, ff))
			}
		}})
	}
	return c.checkAll(ctx, s.Name, laws)
}

func (s ApplicativeSuite[A, B, FA, FAA, FF, FB]) absent(result FB) string {
	if s.IsAbsent(result) {
		return ""
	}
	return fmt.Sprintf("expected an absent result, got %v", result)
}
