package scalarroot

import (
	"errors"
	"math"
	"testing"
)

func TestFindSimpleRoots(t *testing.T) {
	tests := []struct {
		name   string
		f      func(float64) float64
		guess  float64
		lo, hi float64
		want   float64
	}{
		{"linear", func(x float64) float64 { return 2*x - 1 }, 0, -10, 10, 0.5},
		{"quadratic", func(x float64) float64 { return x*x - 2 }, 1, 0, 10, math.Sqrt2},
		{"cosine", math.Cos, 1, 0, 3, math.Pi / 2},
		{"cubic off-guess", func(x float64) float64 { return x*x*x - 8 }, 1, -10, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.f, tt.guess, tt.lo, tt.hi, Config{})
			if err != nil {
				t.Fatal(err)
			}

			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("root = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestFindResidualAcceptance(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 2 }

	root, err := Find(f, 0, -5, 5, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if r := math.Abs(f(root)); r > DefaultResidualTol {
		t.Errorf("residual = %g, above tolerance %g", r, DefaultResidualTol)
	}
}

func TestFindTangentialRoot(t *testing.T) {
	// (x-1)^2 touches zero at x=1 without a sign change; the safeguarded
	// iteration must still land inside the residual window.
	f := func(x float64) float64 { return (x - 1) * (x - 1) }

	root, err := Find(f, 0.5, 0, 2, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(f(root)) > DefaultResidualTol {
		t.Errorf("residual = %g at root %g", f(root), root)
	}
}

func TestFindNoRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := Find(f, 0, -10, 10, Config{})
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("err = %v, want ErrNoConvergence", err)
	}
}

func TestFindGuessOutsideInterval(t *testing.T) {
	f := func(x float64) float64 { return x - 3 }

	root, err := Find(f, 100, 0, 10, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(root-3) > 1e-8 {
		t.Errorf("root = %g, want 3", root)
	}
}

func TestFindCustomBudget(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x*x + 1 // no real root
	}

	_, err := Find(f, 0.7, -10, 10, Config{MaxIter: 5})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("err = %v, want ErrNoConvergence", err)
	}

	// Each iteration costs at most three evaluations (residual plus the
	// two-sided derivative), plus the final acceptance check.
	if max := 5*3 + 1; calls > max {
		t.Errorf("f evaluated %d times, budget allows at most %d", calls, max)
	}
}
