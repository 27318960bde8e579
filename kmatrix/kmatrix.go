package kmatrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wavekit/scatter"
	"github.com/wavekit/scatter/mesh"
)

// twoOverPi is the normalization of the partial-wave momentum integral.
const twoOverPi = 2 / math.Pi

// KMatrix configures the K-matrix method. N is the number of quadrature
// points before the on-shell momentum is appended; accuracy grows with N
// at O(N³) cost per evaluation.
//
// The zero value is unusable (N must be ≥ 1). KMatrix is immutable and
// safe to share between concurrent PhaseShift calls.
type KMatrix struct {
	N int
}

// New returns a K-matrix method with an N-point quadrature mesh.
func New(n int) KMatrix { return KMatrix{N: n} }

// PhaseShift — S-wave phase shift by the K-matrix method
//
// Description:
//
//	Solves the Lippmann-Schwinger equation for the reactance matrix K at
//	on-shell momentum k0 and extracts the phase shift from K's on-shell
//	diagonal element.
//
// Algorithm Outline:
//  1. Generate N Gauss-Legendre nodes/weights on [-1,1] and map them
//     onto the momentum domain (0,∞) (mesh.Gauss, mesh.Momentum).
//  2. Reject k0 if it coincides exactly with a quadrature node.
//  3. Append k0 as the (N+1)-th mesh point and sample the potential on
//     every mesh-point pair: V[i,j] = v.Momentum(k[i], k[j]).
//  4. Build A = I − V·U, where U carries the quadrature weights divided
//     by the energy denominator (k0²−k²)/mass, and the on-shell column
//     holds the analytic principal-value subtraction weight (BuildSystem).
//  5. Solve the dense system A·K = V by LU factorization.
//  6. δ = atan(−K[N+1,N+1]·mass·k0)·180/π.
//
// The result is in degrees, strictly inside (−90°, 90°). By
// construction each call allocates its own mesh and matrices; identical
// inputs give identical results.
//
// Complexity:
//
//	Time   = O(N³) (dense LU solve; assembly is O(N²))
//	Memory = O(N²)
//
// Errors:
//   - mesh.ErrMeshSize          — N < 1.
//   - ErrNonPositiveMomentum    — k0 ≤ 0.
//   - ErrNonPositiveMass        — mass ≤ 0.
//   - ErrOnShellNode            — k0 equals a quadrature node exactly.
//   - ErrSingular               — A is singular to working precision.
//   - ErrDimensionDrift         — post-solve dimension invariant broken.
//
// A k0 very close to (but not equal to) a mesh node, or an
// ill-conditioned A, degrades accuracy without raising an error.
func (m KMatrix) PhaseShift(k0, mass float64, v scatter.Potential) (float64, error) {
	if k0 <= 0 {
		return 0, ErrNonPositiveMomentum
	}
	if mass <= 0 {
		return 0, ErrNonPositiveMass
	}

	nodes, weights, err := mesh.Gauss(m.N)
	if err != nil {
		return 0, err
	}
	if err = mesh.Momentum(nodes, weights); err != nil {
		return 0, err
	}
	if err = checkOnShell(nodes, k0); err != nil {
		return 0, err
	}

	k := append(nodes, k0)
	vm := Sample(v, k)
	a, err := BuildSystem(vm, k, weights, mass)
	if err != nil {
		return 0, err
	}

	kmat, err := Solve(a, vm)
	if err != nil {
		return 0, err
	}

	n := len(k)
	if !square(a, n) || !square(vm, n) || !square(kmat, n) {
		return 0, ErrDimensionDrift
	}

	kk0 := kmat.At(n-1, n-1)

	return math.Atan(-kk0*mass*k0) * (180 / math.Pi), nil
}

// Sample evaluates v on every pair of mesh points, including the
// appended on-shell point, and returns the dense sample matrix
// V[i,j] = v.Momentum(k[i], k[j]). No symmetry is assumed or imposed.
func Sample(v scatter.Potential, k []float64) *mat.Dense {
	n := len(k)
	s := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.Set(i, j, v.Momentum(k[i], k[j]))
		}
	}

	return s
}

// BuildSystem assembles the discretized integral-equation matrix
// A = I − V·U for the mesh k (last entry = on-shell momentum k0) and
// quadrature weights.
//
// U is diagonal. Ordinary columns j ≤ N carry the principal-value
// kernel weight
//
//	u_j = (2/π) · ω_j·k_j² · mass/(k0²−k_j²),
//
// combining the quadrature weight, the k² radial Jacobian, and the
// Lippmann-Schwinger energy denominator. The on-shell column j = N+1
// carries the analytic subtraction weight
//
//	u_{N+1} = −(2/π) · Σ_{n=1..N} ω_n·k0² · mass/(k0²−k_n²),
//
// which cancels the divergent part of the pole at k = k0: the principal
// value of ∫dk/(k0²−k²) vanishes in the symmetric limit, so only the
// quadrature's imbalance around the pole must be subtracted. The sum
// runs over the N quadrature nodes only, never the on-shell point.
//
// Preconditions (ErrLengthMismatch / ErrPotentialShape /
// ErrNonPositiveMass): len(k)-1 == len(weights), V square with side
// len(k), mass > 0. They are checked before any allocation; there are
// no other failure modes.
func BuildSystem(v *mat.Dense, k, weights []float64, mass float64) (*mat.Dense, error) {
	n := len(k)
	if n-1 != len(weights) {
		return nil, ErrLengthMismatch
	}
	if !square(v, n) {
		return nil, ErrPotentialShape
	}
	if mass <= 0 {
		return nil, ErrNonPositiveMass
	}

	k0 := k[n-1]
	u := make([]float64, n)
	var sum float64
	for j := 0; j < n-1; j++ {
		d := (k0*k0 - k[j]*k[j]) / mass
		u[j] = twoOverPi * weights[j] * k[j] * k[j] / d
		sum += weights[j] * k0 * k0 / d
	}
	u[n-1] = -twoOverPi * sum

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e := -v.At(i, j) * u[j]
			if i == j {
				e++
			}
			a.Set(i, j, e)
		}
	}

	return a, nil
}

// Solve solves the dense system A·K = V for the reactance matrix K by
// LU factorization. An exactly singular A (infinite condition estimate)
// yields ErrSingular; a merely ill-conditioned A is solved anyway and
// degrades accuracy silently.
func Solve(a, v *mat.Dense) (*mat.Dense, error) {
	n, _ := a.Dims()
	var lu mat.LU
	lu.Factorize(a)

	k := mat.NewDense(n, n, nil)
	if err := lu.SolveTo(k, false, v); err != nil {
		// SolveTo reports singular and near-singular systems alike as a
		// Condition error; only an infinite estimate means the solve
		// divided by a zero pivot and K holds no usable solution.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, ErrSingular
		}
	}

	return k, nil
}

// checkOnShell rejects an on-shell momentum that exactly equals a
// quadrature node; the singular kernel weight degenerates there. Only
// exact equality is rejected — a nearby k0 is a quality-of-result
// issue, not an error.
func checkOnShell(nodes []float64, k0 float64) error {
	for _, k := range nodes {
		if k == k0 {
			return ErrOnShellNode
		}
	}

	return nil
}

// square reports whether m is n×n.
func square(m *mat.Dense, n int) bool {
	r, c := m.Dims()

	return r == n && c == n
}
