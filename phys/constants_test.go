package phys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavekit/scatter/phys"
)

// TestInverseFermi: the nucleon mass in natural units is the ≈ 4.76 fm⁻¹
// mass parameter of equal-mass nucleon-nucleon scattering.
func TestInverseFermi(t *testing.T) {
	assert.InDelta(t, 4.758, phys.InverseFermi(phys.NucleonMass), 1e-3)
	assert.InDelta(t, 1.0, phys.InverseFermi(phys.HBarC), 1e-15, "ħc itself converts to exactly 1 fm⁻¹")
}

// TestMassOrdering: basic sanity on the frozen constants.
func TestMassOrdering(t *testing.T) {
	assert.Greater(t, phys.NeutronMass, phys.ProtonMass)
	assert.Greater(t, phys.NucleonMass, phys.ProtonMass)
	assert.Less(t, phys.NucleonMass, phys.NeutronMass)
	assert.Less(t, phys.NeutralPionMass, phys.ChargedPionMass)
}
