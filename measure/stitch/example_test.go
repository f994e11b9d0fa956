package stitch_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmonics/measure/stitch"
)

func ExampleStationaryDrift() {
	// A particle hovering at 4 Schwarzschild radii must swim outward at
	// half the speed of light; that swim speed is its drift.
	m, err := stitch.StationaryDrift(4, 1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("drift at 4 Rs: %.2fc\n", m)

	// Output:
	// drift at 4 Rs: 0.50c
}

func ExampleWaveform_ManifestRatio() {
	w := &stitch.Waveform{Drift: 0.5, Cycles: 10, SampleRate: 10000}

	ratio, err := w.ManifestRatio()
	if err != nil {
		panic(err)
	}

	fmt.Printf("manifest/hidden: %.1f\n", ratio)

	// Output:
	// manifest/hidden: 2.0
}
