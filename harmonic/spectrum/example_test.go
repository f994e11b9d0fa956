package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmonics/harmonic/spectrum"
)

func ExampleGenerate() {
	curve, err := spectrum.Generate(1, 20, 3)
	if err != nil {
		panic(err)
	}

	anchor, _ := curve.Lookup(3)

	fmt.Printf("entries: %d\n", curve.Len())
	fmt.Printf("anchor ratio: %.1f\n", anchor.Ratio)

	// Output:
	// entries: 20
	// anchor ratio: 1.0
}

func ExampleCurve_Match() {
	// Synthetic-scale sweep: anchor at N=3, search for the index whose
	// proxy ratio is nearest a target.
	curve, err := spectrum.Generate(2, 500, 3)
	if err != nil {
		panic(err)
	}

	res, err := curve.Match(100)
	if err != nil {
		panic(err)
	}

	fmt.Printf("nearest ratio to 100 is at N=%d\n", res.N)
	fmt.Printf("fractional error below 1%%: %v\n", res.FracError < 0.01)

	// Output:
	// nearest ratio to 100 is at N=298
	// fractional error below 1%: true
}
