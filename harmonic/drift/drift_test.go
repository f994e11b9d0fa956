package drift

import (
	"errors"
	"math"
	"testing"
)

func TestSolveInvalidIndex(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := Solve(n)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Solve(%d) err = %v, want ErrInvalidIndex", n, err)
		}
	}
}

func TestSolveDomainAndResidual(t *testing.T) {
	indices := []int{1, 2, 3, 5, 10, 100, 1000, 12000}

	for _, n := range indices {
		m, err := Solve(n)
		if err != nil {
			t.Fatalf("Solve(%d): %v", n, err)
		}

		if math.Abs(m) >= 1 {
			t.Errorf("Solve(%d) = %g, outside (-1, 1)", n, m)
		}

		if r := math.Abs(Residual(n, m)); r > ResidualTol {
			t.Errorf("Solve(%d) residual = %g, above %g", n, r, ResidualTol)
		}
	}
}

func TestSolveMaximalDriftAtOne(t *testing.T) {
	// The N=1 branch is the maximal-drift regime: the root sits against
	// the upper domain bound, far above any higher harmonic.
	m1, err := Solve(1)
	if err != nil {
		t.Fatal(err)
	}

	if m1 < 0.999 {
		t.Errorf("Solve(1) = %g, want near-unit drift", m1)
	}

	m50, err := Solve(50)
	if err != nil {
		t.Fatal(err)
	}

	if m1 <= m50 {
		t.Errorf("Solve(1) = %g not above Solve(50) = %g", m1, m50)
	}
}

func TestSolveSmallDriftAsymptote(t *testing.T) {
	// For large N the root approaches the seed 1/(pi*N).
	for _, n := range []int{100, 1000, 10000} {
		m, err := Solve(n)
		if err != nil {
			t.Fatalf("Solve(%d): %v", n, err)
		}

		guess := Guess(n)
		if rel := math.Abs(m-guess) / guess; rel > 0.01 {
			t.Errorf("Solve(%d) = %g, relative distance %g from asymptote %g", n, m, rel, guess)
		}
	}
}

func TestSolveMonotonicDescent(t *testing.T) {
	prev := math.Inf(1)

	for n := 1; n <= 50; n++ {
		m, err := Solve(n)
		if err != nil {
			t.Fatalf("Solve(%d): %v", n, err)
		}

		if m >= prev {
			t.Errorf("Solve(%d) = %g, not below Solve(%d) = %g", n, m, n-1, prev)
		}

		prev = m
	}
}

func TestSolveDeterministic(t *testing.T) {
	for _, n := range []int{1, 3, 17, 4096} {
		a, err := Solve(n)
		if err != nil {
			t.Fatal(err)
		}

		b, err := Solve(n)
		if err != nil {
			t.Fatal(err)
		}

		if a != b {
			t.Errorf("Solve(%d) not deterministic: %g vs %g", n, a, b)
		}
	}
}

func TestResidualPenaltyOutsideDomain(t *testing.T) {
	for _, m := range []float64{1.0000001, -1.5, 2, -42} {
		if got := Residual(3, m); got != penalty {
			t.Errorf("Residual(3, %g) = %g, want penalty %g", m, got, penalty)
		}
	}
}

func TestGuess(t *testing.T) {
	// Expected values are computed the same way Guess evaluates at
	// runtime; constant-folded forms like 1/(1000*math.Pi) round
	// differently by one ulp and must not be used as references here.
	if got, want := Guess(1), 1/(math.Pi*float64(1)); got != want {
		t.Errorf("Guess(1) = %g, want %g", got, want)
	}

	if got, want := Guess(1000), 1/(math.Pi*float64(1000)); got != want {
		t.Errorf("Guess(1000) = %g, want %g", got, want)
	}
}
