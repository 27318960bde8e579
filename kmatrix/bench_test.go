package kmatrix_test

import (
	"testing"

	"github.com/wavekit/scatter/kmatrix"
	"github.com/wavekit/scatter/phys"
	"github.com/wavekit/scatter/potential"
)

// benchmarkPhaseShift runs the K-matrix method at mesh size n. The
// dense solve dominates, so timings scale roughly as n³.
func benchmarkPhaseShift(b *testing.B, n int) {
	m := kmatrix.New(n)
	v := potential.MTV()
	mass := phys.InverseFermi(phys.NucleonMass)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.PhaseShift(0.5, mass, v); err != nil {
			b.Fatalf("PhaseShift failed: %v", err)
		}
	}
}

// BenchmarkPhaseShift_N20 benchmarks a coarse 20-point mesh.
func BenchmarkPhaseShift_N20(b *testing.B) { benchmarkPhaseShift(b, 20) }

// BenchmarkPhaseShift_N50 benchmarks a production-accuracy 50-point mesh.
func BenchmarkPhaseShift_N50(b *testing.B) { benchmarkPhaseShift(b, 50) }

// BenchmarkPhaseShift_N100 benchmarks a high-accuracy 100-point mesh.
func BenchmarkPhaseShift_N100(b *testing.B) { benchmarkPhaseShift(b, 100) }
