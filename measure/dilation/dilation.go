// Package dilation cross-checks the helical stitching model against
// special relativity.
//
// In the helical model a particle moving at v keeps its internal rotation
// at v_rot = sqrt(c^2 - v^2), so one internal revolution takes longer by
// the factor c/v_rot. That geometric ratio must reproduce the Lorentz
// factor exactly; Verify sweeps a velocity grid and reports the largest
// deviation between the two.
package dilation

import (
	"errors"
	"math"
)

// Errors returned by dilation functions.
var (
	ErrInvalidVelocity = errors.New("dilation: velocity must satisfy 0 <= v < 1")
	ErrInvalidSteps    = errors.New("dilation: step count must be >= 1")
)

// Gamma returns the Lorentz factor 1/sqrt(1-v^2) for a velocity v in
// units of c.
func Gamma(v float64) (float64, error) {
	if v < 0 || v >= 1 || math.IsNaN(v) {
		return 0, ErrInvalidVelocity
	}

	return 1 / math.Sqrt((1-v)*(1+v)), nil
}

// HelicalRatio returns the stitch dilation factor c/v_rot with
// v_rot = sqrt(c^2 - v^2), for a velocity v in units of c.
func HelicalRatio(v float64) (float64, error) {
	if v < 0 || v >= 1 || math.IsNaN(v) {
		return 0, ErrInvalidVelocity
	}

	vRot := math.Sqrt(1 - v*v)

	return 1 / vRot, nil
}

// Verify evaluates Gamma and HelicalRatio on an even grid of steps
// velocities over [0, maxV] and returns the largest absolute difference.
// A result at floating-point noise level confirms the geometric
// derivation reproduces the Lorentz factor.
func Verify(steps int, maxV float64) (float64, error) {
	if steps < 1 {
		return 0, ErrInvalidSteps
	}

	if maxV < 0 || maxV >= 1 || math.IsNaN(maxV) {
		return 0, ErrInvalidVelocity
	}

	maxDiff := 0.0

	for i := range steps {
		v := maxV
		if steps > 1 {
			v = maxV * float64(i) / float64(steps-1)
		}

		g, err := Gamma(v)
		if err != nil {
			return 0, err
		}

		h, err := HelicalRatio(v)
		if err != nil {
			return 0, err
		}

		if d := math.Abs(g - h); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
