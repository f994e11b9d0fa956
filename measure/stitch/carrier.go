package stitch

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrTooShort is returned when a signal is too short for spectral analysis.
var ErrTooShort = errors.New("stitch: signal too short for carrier estimate")

// CarrierFrequency estimates the dominant oscillation frequency of a
// stitch waveform from its magnitude spectrum. The drift term m*t is a
// linear trend that would bury the carrier in the lowest bins, so the
// best-fit line is removed before the transform. The result is quantised
// to the FFT bin grid: its resolution is sampleRate/fftSize.
func CarrierFrequency(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if len(samples) < 4 {
		return 0, ErrTooShort
	}

	detrended := detrend(samples)

	fftSize := nextPowerOf2(len(detrended))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("stitch: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range detrended {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return 0, fmt.Errorf("stitch: forward FFT failed: %w", err)
	}

	// Magnitudes over the positive-frequency half, DC excluded.
	half := fftSize / 2

	re := make([]float64, half)
	im := make([]float64, half)

	for i := 1; i <= half; i++ {
		re[i-1] = real(freq[i])
		im[i-1] = imag(freq[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	peak := 0
	for i, v := range mag {
		if v > mag[peak] {
			peak = i
		}
	}

	return float64(peak+1) * sampleRate / float64(fftSize), nil
}

// detrend removes the least-squares line from samples.
func detrend(samples []float64) []float64 {
	n := float64(len(samples))

	var sumX, sumY, sumXX, sumXY float64

	for i, y := range samples {
		x := float64(i)
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return samples
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	out := make([]float64, len(samples))
	for i, y := range samples {
		out[i] = y - (intercept + slope*float64(i))
	}

	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
