// Package vpa computes S-wave phase shifts by the variable phase
// approach (phase equation method).
//
// Instead of solving an integral equation in momentum space, the
// variable phase approach integrates the first-order phase equation
//
//	δ′(r) = −(mass/k₀) · V(r) · sin²(k₀r + δ(r)),  δ(0) = 0,
//
// outward in the radius r; δ(r) is the phase shift the potential
// truncated at r would produce, and δ(RMax) approximates the full phase
// shift once V has died off. The integration uses classic fixed-step
// fourth-order Runge-Kutta.
//
// vpa requires the potential in coordinate-space form (scatter.Radial);
// it complements the kmatrix method and serves as an independent
// cross-check of its results.
package vpa
