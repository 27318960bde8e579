// Package scatter computes two-body quantum scattering phase shifts
// for a given interaction potential.
//
// 🚀 What is scatter?
//
//	A small, pure-Go library for S-wave partial-wave analysis:
//		• K-matrix method: the Lippmann-Schwinger integral equation
//		  discretized on a Gauss-Legendre momentum mesh and solved as a
//		  dense linear system (kmatrix/)
//		• Variable phase approach: direct integration of the phase
//		  equation in coordinate space (vpa/)
//		• Ready-made potentials: Yukawa, square well, Malfliet-Tjon
//		  (potential/)
//		• Physical constants in MeV and natural units (phys/)
//
// ✨ Why choose scatter?
//
//   - Minimal API — one Method interface, one PhaseShift entry point
//   - Deterministic — every evaluation is a one-shot pure function,
//     no hidden state between calls
//   - Concurrency-safe — method values are immutable and shareable
//   - Extensible — plug in any Potential; add new Method variants
//     without touching existing ones
//
// Everything is organized under five subpackages:
//
//	mesh/      — Gauss-Legendre quadrature + semi-infinite momentum transform
//	kmatrix/   — reactance-matrix (K-matrix) solver
//	vpa/       — variable phase approach
//	potential/ — concrete interaction potentials
//	phys/      — frozen physical constants
//
// Quick usage:
//
//	v := potential.Yukawa{V0: -0.5, Mu: 1.5}
//	mass := phys.InverseFermi(phys.NucleonMass)
//	deg, err := scatter.PhaseShift(kmatrix.New(40), 0.25, mass, v)
//
// See example tests in each package for complete scenarios.
package scatter
