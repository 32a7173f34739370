package laws

import (
	"errors"
	"fmt"
)

var (
	// ErrLawViolated is matched by every *Violation.
	ErrLawViolated = errors.New("laws: law violated")
	// ErrInvalidConfig is returned for unusable configuration.
	ErrInvalidConfig = errors.New("laws: invalid config")
	// ErrInvalidSuite is returned when a suite is missing a required field.
	ErrInvalidSuite = errors.New("laws: invalid suite")
)

// Violation describes one trial on which a law did not hold.
type Violation struct {
	Suite string
	Law   string
	Trial int
	Seed  int
	Input any
	// Diff is a (-want +got) diff, or a description for predicate laws.
	Diff string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s law violated on trial %d (seed %d) for input %v:\n%s",
		v.Suite, v.Law, v.Trial, v.Seed, v.Input, v.Diff)
}

// Unwrap returns ErrLawViolated for errors.Is.
func (v *Violation) Unwrap() error {
	return ErrLawViolated
}
