package vpa_test

import (
	"fmt"
	"math"

	"github.com/wavekit/scatter"
	"github.com/wavekit/scatter/phys"
	"github.com/wavekit/scatter/potential"
	"github.com/wavekit/scatter/vpa"
)

// ExampleVariablePhase_PhaseShift cross-checks a shallow square well
// against its textbook closed-form phase shift.
func ExampleVariablePhase_PhaseShift() {
	v := potential.SquareWell{V0: 0.05, R: 2.0}
	mass := phys.InverseFermi(phys.NucleonMass)
	const k0 = 0.3

	deg, err := scatter.PhaseShift(vpa.Default(), k0, mass, v)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	kappa := math.Sqrt(k0*k0 + mass*v.V0)
	exact := (math.Atan(k0/kappa*math.Tan(kappa*v.R)) - k0*v.R) * (180 / math.Pi)
	fmt.Println(math.Abs(deg-exact) < 0.5)
	// Output: true
}
