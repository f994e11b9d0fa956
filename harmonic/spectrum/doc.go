// Package spectrum sweeps the drift solver over a range of harmonic
// indices and exposes the resulting mass-proxy curve.
//
// For every index N in the sweep range the package solves the stability
// equation, derives the mass proxy N*sqrt(1-m^2), and normalises all
// proxies against a designated anchor index. The anchor's own ratio is
// exactly 1.0 by construction. The curve is immutable once built and safe
// to share across readers without synchronisation.
//
// # Usage
//
// Sweep N=2..12000 anchored at the electron index and search for the
// index whose ratio best matches a target:
//
//	curve, _ := spectrum.Generate(2, 12000, 3)
//	res, _ := curve.Match(206.768)
//	fmt.Println(res.N, res.Ratio)
//
// Sweeps of thousands of indices can be spread over a worker pool with
// [WithWorkers]; the curve contents are identical to a serial sweep.
package spectrum
