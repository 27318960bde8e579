// Package mesh builds the momentum quadrature mesh the scattering
// methods integrate on.
//
// The mesh package provides:
//
//   - Gauss: Gauss-Legendre nodes and weights on [-1,1], delegated to
//     gonum's quadrature routines.
//   - Momentum: the in-place tangent compactification that carries the
//     finite interval onto the semi-infinite momentum domain (0,∞),
//     rescaling the weights by the transform's Jacobian.
//
// The transform k = tan(π/4·(1+x)) is a monotonic, differentiable
// bijection (-1,1)→(0,∞). It concentrates points at low momentum, where
// the scattering physics lives, while still covering the unbounded
// domain exactly, and it introduces no boundary singularities.
//
// See kmatrix for the consumer of these meshes.
package mesh
