package drift_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonics/harmonic/drift"
)

func ExampleSolve() {
	m, err := drift.Solve(3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("m(3) = %.4f\n", m)
	fmt.Printf("residual below tolerance: %v\n", math.Abs(drift.Residual(3, m)) < drift.ResidualTol)

	// Output:
	// m(3) = 0.1284
	// residual below tolerance: true
}
