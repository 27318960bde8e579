package scatter

// Potential is the interaction seen by the scattering methods that work
// in momentum space. Momentum returns the S-wave partial-wave matrix
// element ⟨k|V|k′⟩ = ∫₀^∞ j₀(kr)·V(r)·j₀(k′r)·r² dr for momenta k,k′ > 0.
//
// Implementations must be pure: no observable side effects, safe for
// concurrent evaluation. The value may be undefined at k = 0 or k′ = 0;
// methods in this module never evaluate it there.
type Potential interface {
	Momentum(k, kp float64) float64
}

// MomentumFunc adapts a plain two-argument function to Potential.
type MomentumFunc func(k, kp float64) float64

// Momentum implements Potential.
func (f MomentumFunc) Momentum(k, kp float64) float64 { return f(k, kp) }

// Radial is the optional coordinate-space form of a potential, V(r) for
// r > 0. Methods that integrate in coordinate space (vpa) require it in
// addition to Potential; potentials defined only on the momentum mesh
// may omit it.
type Radial interface {
	Radial(r float64) float64
}

// RadialFunc adapts a plain function of r to Radial.
type RadialFunc func(r float64) float64

// Radial implements the Radial interface.
func (f RadialFunc) Radial(r float64) float64 { return f(r) }

// Method solves the S-wave scattering problem for one (k₀, mass,
// potential) triple and reports the phase shift in degrees.
//
// k0 is the on-shell momentum and mass the mass parameter of the energy
// denominator (k₀²−k²)/mass, both in consistent natural units (fm⁻¹ when
// the potential is in fm units; see phys). Implementations are immutable
// configuration values: concurrent calls with distinct inputs need no
// coordination.
type Method interface {
	PhaseShift(k0, mass float64, v Potential) (float64, error)
}

// PhaseShift evaluates v at on-shell momentum k0 with the given method.
// It is the single caller-facing entry point of the module; the method
// value carries all tuning (mesh size, integration range, ...).
func PhaseShift(m Method, k0, mass float64, v Potential) (float64, error) {
	return m.PhaseShift(k0, mass, v)
}
