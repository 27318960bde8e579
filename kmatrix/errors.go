// Package kmatrix: sentinel error set. All exported functions return
// these sentinels (possibly fmt.Errorf-wrapped at the outer boundary)
// and tests match them via errors.Is; user-triggered conditions never
// panic.

package kmatrix

import "errors"

var (
	// ErrNonPositiveMomentum indicates an on-shell momentum k₀ ≤ 0.
	ErrNonPositiveMomentum = errors.New("kmatrix: on-shell momentum must be positive")

	// ErrNonPositiveMass indicates a mass parameter ≤ 0.
	ErrNonPositiveMass = errors.New("kmatrix: mass must be positive")

	// ErrLengthMismatch indicates that the mesh is not exactly one entry
	// longer than the weight sequence (the on-shell point carries no
	// direct quadrature weight).
	ErrLengthMismatch = errors.New("kmatrix: mesh must have exactly one more entry than weights")

	// ErrPotentialShape indicates a potential sample matrix that is not
	// square with side length equal to the mesh length.
	ErrPotentialShape = errors.New("kmatrix: potential matrix shape does not match mesh")

	// ErrOnShellNode indicates that k₀ coincides exactly with a quadrature
	// node. The mesh is deterministic in N, so retrying with the same
	// inputs would recur; change N or k₀.
	ErrOnShellNode = errors.New("kmatrix: on-shell momentum coincides with a mesh node")

	// ErrDimensionDrift indicates a post-solve matrix dimension mismatch.
	// This is a builder bug, not a recoverable input condition.
	ErrDimensionDrift = errors.New("kmatrix: solver produced mismatched matrix dimensions")

	// ErrSingular indicates that the LU factorization of A found the
	// system singular to working precision.
	ErrSingular = errors.New("kmatrix: singular linear system")
)
