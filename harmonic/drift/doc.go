// Package drift solves the per-harmonic stability equation of the
// topological stitch model.
//
// For a harmonic index N >= 1 the drift root m is the solution of
//
//	sqrt(1 - m^2) = m * (pi*N - arccos(-m))
//
// inside the open interval (-1, 1). The equation admits multiple roots;
// the package keeps the one nearest the analytic small-drift seed
// 1/(pi*N), which is the physically meaningful branch. Roots decrease
// strictly with N: the N=1 root sits hard against the upper domain bound
// (the maximal-drift regime) and the large-N roots fall off as ~1/(pi*N).
//
// Solve validates its result instead of trusting the iteration: a root is
// only returned when it lies strictly inside (-1, 1) and the equation
// residual is within [ResidualTol]. Everything else is [ErrDivergence].
package drift
