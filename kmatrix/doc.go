// Package kmatrix solves the S-wave Lippmann-Schwinger equation by the
// reactance-matrix (K-matrix) method.
//
// The integral equation for the reactance matrix K,
//
//	K(k,k′) = V(k,k′) + (2/π) P∫₀^∞ dq q² V(k,q) · m/(k₀²−q²) · K(q,k′),
//
// has a principal-value pole at the on-shell momentum q = k₀. The method
// discretizes the integral on a Gauss-Legendre mesh mapped onto (0,∞),
// appends k₀ itself as an extra mesh point, and cancels the pole with an
// analytic subtraction weight on that on-shell column. What remains is a
// dense (N+1)×(N+1) linear system
//
//	A·K = V,  A = I − V·U,
//
// solved directly by LU factorization. The phase shift follows from the
// on-shell element: δ = atan(−K[N+1,N+1]·m·k₀), reported in degrees.
//
// Accuracy scales with the mesh size N; the dense solve makes each
// evaluation O(N³). Choosing N large enough for convergence is the
// caller's responsibility — there is no adaptive refinement.
package kmatrix
