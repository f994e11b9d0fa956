package stitch

import (
	"errors"
	"math"
)

// Errors returned by stitch functions.
var (
	ErrInvalidSchwarzschild = errors.New("stitch: Schwarzschild radius must be positive")
	ErrInsideHorizon        = errors.New("stitch: radius must be at least the Schwarzschild radius")
	ErrInvalidDrift         = errors.New("stitch: drift must satisfy |m| <= 1")
	ErrInvalidCycles        = errors.New("stitch: cycle count must be positive")
	ErrInvalidSampleRate    = errors.New("stitch: sample rate must be positive")
)

// Carrier parameters under the strict-mode constraint: the internal
// rotation runs at k = 2*pi with amplitude A = c/k, so the carrier term
// A*k has unit slope.
const (
	waveNumber = 2 * math.Pi
	amplitude  = 1 / waveNumber
)

// FlowVelocity returns the inward river velocity -c*sqrt(Rs/r) at radius
// r outside a horizon of Schwarzschild radius rs, in units of c.
func FlowVelocity(r, rs float64) (float64, error) {
	if rs <= 0 {
		return 0, ErrInvalidSchwarzschild
	}

	if r < rs {
		return 0, ErrInsideHorizon
	}

	return -math.Sqrt(rs / r), nil
}

// StationaryDrift returns the outward swim speed sqrt(Rs/r) a particle
// needs to hover at radius r, in units of c. This is the drift m that the
// river imposes on the particle's stitch.
func StationaryDrift(r, rs float64) (float64, error) {
	v, err := FlowVelocity(r, rs)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

// Waveform describes a stitch synthesis run.
type Waveform struct {
	Drift      float64 // drift m in units of c, |m| <= 1
	Cycles     float64 // number of carrier cycles (unit-time spans) to cover
	SampleRate float64 // samples per unit time
}

// Validate checks the Waveform parameters.
func (w *Waveform) Validate() error {
	if math.Abs(w.Drift) > 1 {
		return ErrInvalidDrift
	}

	if w.Cycles <= 0 {
		return ErrInvalidCycles
	}

	if w.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

func (w *Waveform) samples() int {
	return int(math.Round(w.Cycles * w.SampleRate))
}

// Generate synthesises y(t) = A*sin(k*t) + m*t over Cycles unit-time
// spans at SampleRate samples per unit time.
func (w *Waveform) Generate() ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, w.samples())
	for i := range out {
		t := float64(i) / w.SampleRate
		out[i] = amplitude*math.Sin(waveNumber*t) + w.Drift*t
	}

	return out, nil
}

// ManifestRatio returns the ratio of manifest (rising) to hidden
// (falling) samples of the stitch. The derivative is evaluated
// analytically, y'(t) = cos(k*t) + m, so the ratio does not depend on
// finite-difference noise. When no sample falls, the ratio is +Inf.
func (w *Waveform) ManifestRatio() (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	var rising, falling int

	n := w.samples()
	for i := range n {
		t := float64(i) / w.SampleRate

		switch yp := math.Cos(waveNumber*t) + w.Drift; {
		case yp > 0:
			rising++
		case yp < 0:
			falling++
		}
	}

	if falling == 0 {
		return math.Inf(1), nil
	}

	return float64(rising) / float64(falling), nil
}
