// Package laws verifies that Functor, Applicative and Monad instances obey
// their laws on randomly drawn samples.
package laws

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Checker runs law suites with a fixed configuration.
type Checker struct {
	cfg     Config
	logger  *zap.Logger
	cmpOpts []cmp.Option
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCmpOptions adds go-cmp options used when comparing containers.
func WithCmpOptions(opts ...cmp.Option) Option {
	return func(c *Checker) {
		c.cmpOpts = append(c.cmpOpts, opts...)
	}
}

// NewChecker creates a Checker after validating cfg.
func NewChecker(cfg Config, opts ...Option) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Checker{
		cfg:     cfg,
		logger:  zap.NewNop(),
		cmpOpts: []cmp.Option{cmp.Exporter(func(reflect.Type) bool { return true })},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the checker configuration.
func (c *Checker) Config() Config {
	return c.cfg
}

// diff returns "" when want and got are structurally equal.
func (c *Checker) diff(want, got any) string {
	return cmp.Diff(want, got, c.cmpOpts...)
}

// evaluation runs one prepared trial and returns its input and a non-empty
// diff if the law does not hold.
type evaluation func() (input any, diff string)

// verify draws every trial of a law sequentially, then evaluates them
// concurrently. draw is called with the trial's seed.
func (c *Checker) verify(ctx context.Context, suite, law string, draw func(seed int) evaluation) error {
	start := time.Now()
	c.logger.Debug("checking law",
		zap.String("suite", suite),
		zap.String("law", law),
		zap.Int("trials", c.cfg.Trials),
	)

	evals := make([]evaluation, c.cfg.Trials)
	for i := range evals {
		evals[i] = draw(c.cfg.Seed + i)
	}

	var (
		mu         sync.Mutex
		violations []*Violation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Parallelism)
	for i, eval := range evals {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input, diff := eval()
			if diff == "" {
				return nil
			}
			v := &Violation{
				Suite: suite,
				Law:   law,
				Trial: i,
				Seed:  c.cfg.Seed + i,
				Input: input,
				Diff:  diff,
			}
			c.logger.Warn("law violated",
				zap.String("suite", suite),
				zap.String("law", law),
				zap.Int("trial", i),
				zap.Any("input", input),
				zap.String("diff", diff),
			)
			mu.Lock()
			violations = append(violations, v)
			mu.Unlock()
			if c.cfg.FailFast {
				return v
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, ErrLawViolated) {
		return err
	}

	c.logger.Info("law checked",
		zap.String("suite", suite),
		zap.String("law", law),
		zap.Int("trials", c.cfg.Trials),
		zap.Int("violations", len(violations)),
		zap.Duration("duration", time.Since(start)),
	)

	sort.Slice(violations, func(i, j int) bool { return violations[i].Trial < violations[j].Trial })
	errs := make([]error, len(violations))
	for i, v := range violations {
		errs[i] = v
	}
	return errors.Join(errs...)
}

// checkAll verifies every law in order and joins the failures. It stops early
// only when ctx is done.
func (c *Checker) checkAll(ctx context.Context, suite string, laws []namedLaw) error {
	var errs []error
	for _, l := range laws {
		err := c.verify(ctx, suite, l.name, l.draw)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrLawViolated) {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

type namedLaw struct {
	name string
	draw func(seed int) evaluation
}
