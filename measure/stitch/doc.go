// Package stitch models the phase-stitch mechanics of a drifting rotor
// in the river picture of gravity.
//
// Space flows inward past a stationary particle at -c*sqrt(Rs/r); to
// hover, the particle must swim outward at the same speed, and that swim
// speed is exactly its drift m. In the particle's phase space the drift
// tilts the internal rotation into a stitch waveform
//
//	y(t) = A*sin(k*t) + m*t
//
// with the strict-mode constraint A = c/k. Segments where y rises are
// manifest, segments where it falls are hidden; their duration ratio
// diverges as the drift approaches the rotation speed.
//
// The package synthesises stitch waveforms, measures the manifest/hidden
// ratio, and cross-checks the synthesised carrier in the frequency
// domain.
package stitch
