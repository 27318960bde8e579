package phys

const (
	// HBarC is the conversion constant ħc in MeV·fm.
	HBarC = 197.3269804

	// ProtonMass in MeV.
	ProtonMass = 938.27208816

	// NeutronMass in MeV.
	NeutronMass = 939.56542052

	// NucleonMass is the isospin-averaged nucleon mass in MeV.
	NucleonMass = (ProtonMass + NeutronMass) / 2

	// ChargedPionMass in MeV.
	ChargedPionMass = 139.57039

	// NeutralPionMass in MeV.
	NeutralPionMass = 134.9768
)

// InverseFermi converts an energy, momentum or mass given in MeV to
// natural units of fm⁻¹. NucleonMass converts to ≈ 4.758 fm⁻¹, the mass
// parameter of equal-mass nucleon-nucleon scattering.
func InverseFermi(mev float64) float64 { return mev / HBarC }
