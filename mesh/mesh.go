package mesh

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Gauss returns n Gauss-Legendre nodes and weights on [-1,1].
//
// Nodes come back in ascending order with strictly positive weights.
// Returns ErrMeshSize if n < 1.
func Gauss(n int) (nodes, weights []float64, err error) {
	if n < 1 {
		return nil, nil, ErrMeshSize
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	quad.Legendre{}.FixedLocations(nodes, weights, -1, 1)

	return nodes, weights, nil
}

// Momentum maps Gauss-Legendre nodes x ∈ (-1,1) onto momenta in (0,∞),
// in place, rescaling the weights by the Jacobian:
//
//	k = tan(π/4·(1+x))
//	ω = (π/4)·w / cos²(π/4·(1+x))
//
// The map is monotonic, so ascending nodes stay ascending and all
// resulting momenta are strictly positive. Consistent indexing between
// nodes and weights is what the principal-value handling downstream
// relies on; both slices must have equal length
// (ErrLengthMismatch otherwise).
func Momentum(nodes, weights []float64) error {
	if len(nodes) != len(weights) {
		return ErrLengthMismatch
	}
	const quarterPi = math.Pi / 4
	for i, x := range nodes {
		t := quarterPi * (1 + x)
		c := math.Cos(t)
		nodes[i] = math.Tan(t)
		weights[i] = quarterPi * weights[i] / (c * c)
	}

	return nil
}
