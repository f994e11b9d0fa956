// Package scalarroot provides a safeguarded scalar root finder shared by
// the harmonic solver packages.
package scalarroot

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned when the iteration budget is exhausted
// without the residual entering the acceptance window.
var ErrNoConvergence = errors.New("scalarroot: no convergence")

// Default iteration parameters. Fixed here so every solver in the module
// reports roots against the same documented criteria.
const (
	DefaultStepTol     = 1e-12
	DefaultResidualTol = 1e-10
	DefaultMaxIter     = 100

	derivStep = 1e-7
)

// Config controls the iteration. Zero fields fall back to the defaults
// above.
type Config struct {
	StepTol     float64 // stop when the step magnitude drops below this
	ResidualTol float64 // acceptance window on |f(x)|
	MaxIter     int     // iteration budget
}

func (cfg *Config) applyDefaults() {
	if cfg.StepTol <= 0 {
		cfg.StepTol = DefaultStepTol
	}

	if cfg.ResidualTol <= 0 {
		cfg.ResidualTol = DefaultResidualTol
	}

	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultMaxIter
	}
}

// Find locates a root of f near guess, constrained to [lo, hi].
//
// The iteration is Newton's method with a numeric derivative. Steps that
// would leave [lo, hi] are replaced by a bisection step when a sign change
// has been observed, and clamped to the interval otherwise. The returned
// root is accepted only if |f(root)| is within the residual tolerance;
// anything else is ErrNoConvergence, never a best-effort value.
func Find(f func(float64) float64, guess, lo, hi float64, cfg Config) (float64, error) {
	cfg.applyDefaults()

	if lo > hi {
		lo, hi = hi, lo
	}

	x := clamp(guess, lo, hi)

	// Endpoints of the tightest sign-change bracket seen so far.
	var posX, negX float64

	havePos, haveNeg := false, false

	for range cfg.MaxIter {
		fx := f(x)
		if math.Abs(fx) <= cfg.ResidualTol {
			return x, nil
		}

		if fx > 0 {
			posX, havePos = x, true
		} else {
			negX, haveNeg = x, true
		}

		d := derivative(f, x, lo, hi)

		next := math.NaN()
		if d != 0 {
			next = x - fx/d
		}

		if math.IsNaN(next) || next < lo || next > hi {
			switch {
			case havePos && haveNeg:
				next = (posX + negX) / 2
			case next < lo:
				next = lo
			case next > hi:
				next = hi
			default:
				// Flat region with no bracket: nothing sensible left to try.
				return 0, ErrNoConvergence
			}
		}

		if math.Abs(next-x) <= cfg.StepTol {
			x = next
			break
		}

		x = next
	}

	if math.Abs(f(x)) <= cfg.ResidualTol {
		return x, nil
	}

	return 0, ErrNoConvergence
}

// derivative estimates f'(x) by central difference, degrading to a
// one-sided difference when x is too close to an interval bound.
func derivative(f func(float64) float64, x, lo, hi float64) float64 {
	h := derivStep * math.Max(1, math.Abs(x))

	switch {
	case x+h > hi:
		return (f(x) - f(x-h)) / h
	case x-h < lo:
		return (f(x+h) - f(x)) / h
	default:
		return (f(x+h) - f(x-h)) / (2 * h)
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}

	if x > hi {
		return hi
	}

	return x
}
