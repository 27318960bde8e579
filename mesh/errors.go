package mesh

import "errors"

var (
	// ErrMeshSize indicates a non-positive quadrature point count.
	ErrMeshSize = errors.New("mesh: at least one quadrature point required")
	// ErrLengthMismatch indicates node and weight slices of unequal length.
	ErrLengthMismatch = errors.New("mesh: nodes and weights must have equal length")
)
