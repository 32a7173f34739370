package laws_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/libs/go/typeclass/src/functional"
	"github.com/authcorp/libs/go/typeclass/src/laws"
	"github.com/authcorp/libs/go/typeclass/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

func newChecker(t *testing.T, mutate func(*laws.Config), opts ...laws.Option) *laws.Checker {
	t.Helper()
	cfg := laws.DefaultConfig()
	cfg.Trials = 50
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := laws.NewChecker(cfg, opts...)
	require.NoError(t, err)
	return c
}

// collect flattens the joined errors returned by the Check functions.
func collect(err error) []*laws.Violation {
	if err == nil {
		return nil
	}
	if v, ok := err.(*laws.Violation); ok {
		return []*laws.Violation{v}
	}
	var out []*laws.Violation
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, collect(e)...)
		}
	}
	return out
}

func affine(x int) int { return x*3 + 1 }

func TestIdentityInstanceObeysLaws(t *testing.T) {
	ctx := context.Background()
	c := newChecker(t, nil)
	values := testutil.IdentityGen(testutil.SmallIntGen())

	require.NoError(t, laws.CheckFunctor(ctx, c, laws.FunctorSuite[int, int, string, functional.Identity[int], functional.Identity[int], functional.Identity[string]]{
		Name:     "identity",
		Values:   values,
		Identity: functional.IdentityInstance[int, int]{},
		AB:       functional.IdentityInstance[int, int]{},
		BC:       functional.IdentityInstance[int, string]{},
		AC:       functional.IdentityInstance[int, string]{},
		F:        affine,
		G:        strconv.Itoa,
	}))

	require.NoError(t, laws.CheckApplicative(ctx, c, laws.ApplicativeSuite[int, string, functional.Identity[int], functional.Identity[func(int) int], functional.Identity[func(int) string], functional.Identity[string]]{
		Name:     "identity",
		Values:   values,
		Identity: functional.IdentityInstance[int, int]{},
		Instance: functional.IdentityInstance[int, string]{},
		Mapper:   functional.IdentityInstance[int, string]{},
		F:        strconv.Itoa,
	}))

	require.NoError(t, laws.CheckMonad(ctx, c, laws.MonadSuite[int, int, string, functional.Identity[int], functional.Identity[int], functional.Identity[string]]{
		Name:       "identity",
		Values:     testutil.SmallIntGen(),
		Containers: values,
		Unit:       functional.IdentityInstance[int, int]{},
		AB:         functional.IdentityInstance[int, int]{},
		BC:         functional.IdentityInstance[int, string]{},
		AC:         functional.IdentityInstance[int, string]{},
		F:          func(x int) functional.Identity[int] { return functional.NewIdentity(affine(x)) },
		G:          func(x int) functional.Identity[string] { return functional.NewIdentity(strconv.Itoa(x)) },
	}))
}

func TestMaybeInstanceObeysLaws(t *testing.T) {
	ctx := context.Background()
	c := newChecker(t, nil)
	values := testutil.MaybeGen(testutil.SmallIntGen())

	require.NoError(t, laws.CheckFunctor(ctx, c, laws.FunctorSuite[int, int, string, functional.Maybe[int], functional.Maybe[int], functional.Maybe[string]]{
		Name:     "maybe",
		Values:   values,
		Identity: functional.MaybeInstance[int, int]{},
		AB:       functional.MaybeInstance[int, int]{},
		BC:       functional.MaybeInstance[int, string]{},
		AC:       functional.MaybeInstance[int, string]{},
		F:        affine,
		G:        strconv.Itoa,
	}))

	require.NoError(t, laws.CheckApplicative(ctx, c, laws.ApplicativeSuite[int, string, functional.Maybe[int], functional.Maybe[func(int) int], functional.Maybe[func(int) string], functional.Maybe[string]]{
		Name:            "maybe",
		Values:          values,
		Identity:        functional.MaybeInstance[int, int]{},
		Instance:        functional.MaybeInstance[int, string]{},
		Mapper:          functional.MaybeInstance[int, string]{},
		F:               strconv.Itoa,
		IsAbsent:        functional.Maybe[string].IsNothing,
		AbsentValues:    testutil.NothingGen[int](),
		AbsentFunctions: testutil.NothingGen[func(int) string](),
	}))

	require.NoError(t, laws.CheckMonad(ctx, c, laws.MonadSuite[int, int, string, functional.Maybe[int], functional.Maybe[int], functional.Maybe[string]]{
		Name:       "maybe",
		Values:     testutil.SmallIntGen(),
		Containers: values,
		Unit:       functional.MaybeInstance[int, int]{},
		AB:         functional.MaybeInstance[int, int]{},
		BC:         functional.MaybeInstance[int, string]{},
		AC:         functional.MaybeInstance[int, string]{},
		F: func(x int) functional.Maybe[int] {
			if x%2 == 0 {
				return functional.Nothing[int]()
			}
			return functional.Just(affine(x))
		},
		G: func(x int) functional.Maybe[string] { return functional.Just(strconv.Itoa(x)) },
	}))
}

func TestEitherInstanceObeysLaws(t *testing.T) {
	ctx := context.Background()
	c := newChecker(t, func(cfg *laws.Config) { cfg.Parallelism = 8 })
	values := testutil.EitherGen(testutil.SmallIntGen(), rapid.String())

	require.NoError(t, laws.CheckFunctor(ctx, c, laws.FunctorSuite[int, int, string, functional.Either[int, string], functional.Either[int, string], functional.Either[string, string]]{
		Name:     "either",
		Values:   values,
		Identity: functional.EitherInstance[int, int, string]{},
		AB:       functional.EitherInstance[int, int, string]{},
		BC:       functional.EitherInstance[int, string, string]{},
		AC:       functional.EitherInstance[int, string, string]{},
		F:        affine,
		G:        strconv.Itoa,
	}))

	require.NoError(t, laws.CheckApplicative(ctx, c, laws.ApplicativeSuite[int, string, functional.Either[int, string], functional.Either[func(int) int, string], functional.Either[func(int) string, string], functional.Either[string, string]]{
		Name:            "either",
		Values:          values,
		Identity:        functional.EitherInstance[int, int, string]{},
		Instance:        functional.EitherInstance[int, string, string]{},
		Mapper:          functional.EitherInstance[int, string, string]{},
		F:               strconv.Itoa,
		IsAbsent:        functional.Either[string, string].IsRight,
		AbsentValues:    testutil.RightGen[int](rapid.String()),
		AbsentFunctions: testutil.RightGen[func(int) string](rapid.String()),
	}))

	require.NoError(t, laws.CheckMonad(ctx, c, laws.MonadSuite[int, int, string, functional.Either[int, string], functional.Either[int, string], functional.Either[string, string]]{
		Name:       "either",
		Values:     testutil.SmallIntGen(),
		Containers: values,
		Unit:       functional.EitherInstance[int, int, string]{},
		AB:         functional.EitherInstance[int, int, string]{},
		BC:         functional.EitherInstance[int, string, string]{},
		AC:         functional.EitherInstance[int, string, string]{},
		F: func(x int) functional.Either[int, string] {
			if x < 0 {
				return functional.Right[int]("negative")
			}
			return functional.Left[int, string](affine(x))
		},
		G: func(x int) functional.Either[string, string] { return functional.Left[string, string](strconv.Itoa(x)) },
	}))
}

// flipped maps Just to Nothing and Nothing to Just, so every Functor law fails
// on every sample.
type flipped[A, B any] struct{}

func (flipped[A, B]) Pure(value A) functional.Maybe[A] { return functional.Just(value) }

func (flipped[A, B]) Map(fa functional.Maybe[A], _ func(A) B) functional.Maybe[B] {
	if fa.IsJust() {
		return functional.Nothing[B]()
	}
	var zero B
	return functional.Just(zero)
}

func flippedSuite() laws.FunctorSuite[int, int, int, functional.Maybe[int], functional.Maybe[int], functional.Maybe[int]] {
	return laws.FunctorSuite[int, int, int, functional.Maybe[int], functional.Maybe[int], functional.Maybe[int]]{
		Name:     "flipped",
		Values:   testutil.MaybeGen(testutil.SmallIntGen()),
		Identity: flipped[int, int]{},
		AB:       flipped[int, int]{},
		BC:       flipped[int, int]{},
		AC:       flipped[int, int]{},
		F:        affine,
		G:        affine,
	}
}

func TestBrokenInstanceIsReported(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newChecker(t, func(cfg *laws.Config) { cfg.Trials = 20 }, laws.WithLogger(zap.New(core)))

	err := laws.CheckFunctor(context.Background(), c, flippedSuite())
	require.Error(t, err)
	assert.ErrorIs(t, err, laws.ErrLawViolated)

	var v *laws.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "flipped", v.Suite)
	assert.NotEmpty(t, v.Diff)

	violations := collect(err)
	assert.Len(t, violations, 40)
	assert.Equal(t, "functor identity", violations[0].Law)
	assert.Equal(t, 0, violations[0].Trial)
	assert.Equal(t, "functor composition", violations[len(violations)-1].Law)

	assert.Equal(t, 40, logs.FilterMessage("law violated").Len())
	assert.Equal(t, 2, logs.FilterMessage("law checked").Len())
	assert.Equal(t, 2, logs.FilterMessage("checking law").Len())
}

func TestFailFastStopsEachLawAtFirstViolation(t *testing.T) {
	c := newChecker(t, func(cfg *laws.Config) {
		cfg.Trials = 20
		cfg.Parallelism = 1
		cfg.FailFast = true
	})

	violations := collect(laws.CheckFunctor(context.Background(), c, flippedSuite()))
	require.Len(t, violations, 2)
	assert.Equal(t, "functor identity", violations[0].Law)
	assert.Equal(t, "functor composition", violations[1].Law)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := laws.CheckFunctor(ctx, newChecker(t, nil), flippedSuite())
	assert.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got %v", err)
	assert.False(t, errors.Is(err, laws.ErrLawViolated))
}

func TestInvalidSuite(t *testing.T) {
	c := newChecker(t, nil)

	s := flippedSuite()
	s.Values = nil
	assert.ErrorIs(t, laws.CheckFunctor(context.Background(), c, s), laws.ErrInvalidSuite)

	err := laws.CheckMonad(context.Background(), c, laws.MonadSuite[int, int, int, functional.Maybe[int], functional.Maybe[int], functional.Maybe[int]]{
		Name: "empty",
	})
	assert.ErrorIs(t, err, laws.ErrInvalidSuite)

	err = laws.CheckApplicative(context.Background(), c, laws.ApplicativeSuite[int, int, functional.Maybe[int], functional.Maybe[func(int) int], functional.Maybe[func(int) int], functional.Maybe[int]]{
		Name:   "no instances",
		Values: testutil.MaybeGen(rapid.Int()),
	})
	assert.ErrorIs(t, err, laws.ErrInvalidSuite)
}
