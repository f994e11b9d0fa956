// Package phaseshift predicts atom-interferometer phase shifts for a
// quantised velocity step.
//
// A drift-band spacing dv shows up in a light-pulse interferometer as a
// phase shift dphi = k_eff * dv * T, where k_eff is the effective wave
// number after large-momentum-transfer (LMT) enhancement and T the
// interrogation time. Given a per-shot phase noise the package also
// reports how many shots are needed to resolve the shift at a chosen
// significance, and builds prediction grids over LMT factors and
// interrogation times. Rendering the grid (CSV, plots) is the consumer's
// concern.
package phaseshift

import (
	"errors"
	"math"
)

// Errors returned by phaseshift functions.
var (
	ErrInvalidWavelength = errors.New("phaseshift: wavelength must be positive")
	ErrInvalidNoise      = errors.New("phaseshift: per-shot noise must be positive")
	ErrInvalidSigma      = errors.New("phaseshift: significance must be positive")
)

// Defaults match the reference detection scenario: a 1e-12 m/s velocity
// step probed at the rubidium D2 line with millirad per-shot noise and a
// five-sigma detection threshold.
const (
	DefaultDeltaV       = 1e-12  // m/s
	DefaultWavelength   = 780e-9 // m
	DefaultPerShotNoise = 1e-3   // rad
	DefaultSigma        = 5.0
)

// DeltaPhi returns the interferometer phase shift k_eff*deltaV*t in
// radians.
func DeltaPhi(kEff, deltaV, t float64) float64 {
	return kEff * deltaV * t
}

// RequiredShots returns the number of averaged shots needed to detect
// deltaPhi at the given significance, assuming independent Gaussian
// per-shot phase noise: (sigma * noise / deltaPhi)^2. A zero signal needs
// infinitely many shots.
func RequiredShots(deltaPhi, noisePerShot, sigma float64) float64 {
	if deltaPhi == 0 {
		return math.Inf(1)
	}

	r := sigma * noisePerShot / math.Abs(deltaPhi)

	return r * r
}

// Config holds the fixed scenario parameters of a prediction run.
type Config struct {
	DeltaV       float64 // velocity step in m/s
	Wavelength   float64 // laser wavelength in m
	PerShotNoise float64 // per-shot phase noise in rad
	Sigma        float64 // detection significance
}

// DefaultConfig returns the reference scenario.
func DefaultConfig() Config {
	return Config{
		DeltaV:       DefaultDeltaV,
		Wavelength:   DefaultWavelength,
		PerShotNoise: DefaultPerShotNoise,
		Sigma:        DefaultSigma,
	}
}

// Validate checks the Config parameters. DeltaV may be any real value
// including zero; the other parameters must be positive.
func (c *Config) Validate() error {
	if c.Wavelength <= 0 {
		return ErrInvalidWavelength
	}

	if c.PerShotNoise <= 0 {
		return ErrInvalidNoise
	}

	if c.Sigma <= 0 {
		return ErrInvalidSigma
	}

	return nil
}

// Row is one grid point of a prediction table.
type Row struct {
	NLMT     int     // LMT enhancement factor
	KEff     float64 // effective wave number in 1/m
	T        float64 // interrogation time in s
	DeltaPhi float64 // predicted phase shift in rad
	Shots    float64 // shots for detection at Config.Sigma; may be +Inf
}

// Predictor builds prediction tables for a validated scenario.
type Predictor struct {
	cfg Config
}

// NewPredictor validates cfg and returns a Predictor.
func NewPredictor(cfg Config) (*Predictor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Predictor{cfg: cfg}, nil
}

// Config returns the scenario the predictor was built with.
func (p *Predictor) Config() Config {
	return p.cfg
}

// BuildTable evaluates the scenario on the grid of LMT factors and
// interrogation times, in the given order. Finite shot counts are
// rounded up to whole shots.
func (p *Predictor) BuildTable(lmtFactors []int, times []float64) []Row {
	kSingle := 2 * math.Pi / p.cfg.Wavelength

	rows := make([]Row, 0, len(lmtFactors)*len(times))

	for _, n := range lmtFactors {
		kEff := float64(n) * kSingle

		for _, t := range times {
			dphi := DeltaPhi(kEff, p.cfg.DeltaV, t)

			shots := RequiredShots(dphi, p.cfg.PerShotNoise, p.cfg.Sigma)
			if !math.IsInf(shots, 1) {
				shots = math.Ceil(shots)
			}

			rows = append(rows, Row{
				NLMT:     n,
				KEff:     kEff,
				T:        t,
				DeltaPhi: dphi,
				Shots:    shots,
			})
		}
	}

	return rows
}
