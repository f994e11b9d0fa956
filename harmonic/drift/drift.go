package drift

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonics/internal/scalarroot"
)

// Errors returned by the solver.
var (
	ErrInvalidIndex = errors.New("drift: harmonic index must be >= 1")
	ErrDivergence   = errors.New("drift: solver did not converge to a valid root")
)

// ResidualTol is the acceptance window on the equation residual. A root
// reported by Solve always satisfies |Residual(n, m)| <= ResidualTol.
const ResidualTol = 1e-10

const (
	// domainMargin keeps accepted roots strictly inside (-1, 1). The N=1
	// root approaches the upper bound tangentially, so the margin doubles
	// as the closest representable approach to the maximal-drift limit.
	domainMargin = 1e-12

	// penalty replaces the equation value for iterates outside |m| <= 1,
	// steering the solver back into the valid domain instead of taking
	// the square root of a negative number.
	penalty = 100.0
)

// Guess returns the analytic small-drift seed 1/(pi*N). The equation is
// not globally monotonic, so this exact seed is what pins the solver to
// the correct branch.
func Guess(n int) float64 {
	return 1 / (math.Pi * float64(n))
}

// Residual evaluates the stability equation
// sqrt(1-m^2) - m*(pi*N - arccos(-m)) at drift m for harmonic index n.
// Values of m outside [-1, 1] evaluate to a large positive penalty.
func Residual(n int, m float64) float64 {
	if math.Abs(m) > 1 {
		return penalty
	}

	return math.Sqrt(1-m*m) - m*(math.Pi*float64(n)-math.Acos(-m))
}

// Solve finds the drift root for harmonic index n.
//
// The returned root lies strictly inside (-1, 1) and satisfies the
// equation within [ResidualTol]. Non-convergence and out-of-domain
// results are reported as [ErrDivergence], never silently accepted.
func Solve(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}

	f := func(m float64) float64 {
		return Residual(n, m)
	}

	m, err := scalarroot.Find(f, Guess(n), -1+domainMargin, 1-domainMargin, scalarroot.Config{
		ResidualTol: ResidualTol,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: n=%d: %v", ErrDivergence, n, err)
	}

	// Post-hoc validation: the iteration's own acceptance test already
	// covers this, but a wrong root here corrupts every downstream ratio,
	// so the contract is re-checked at the package boundary.
	if math.Abs(m) >= 1 || math.Abs(Residual(n, m)) > ResidualTol {
		return 0, fmt.Errorf("%w: n=%d: root %g outside contract", ErrDivergence, n, m)
	}

	return m, nil
}
