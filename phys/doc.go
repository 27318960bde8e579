// Package phys holds the physical constants used throughout scatter.
//
// All values are process-wide read-only constants (CODATA / PDG), masses
// and energies in MeV, ħc in MeV·fm. InverseFermi converts an energy or
// momentum in MeV to natural units of fm⁻¹, the unit system every
// scattering method in this module works in.
package phys
