// Package potential provides ready-made two-body interaction potentials
// in both coordinate-space and S-wave momentum-space form.
//
// Available potentials:
//
//   - Yukawa — screened Coulomb form V(r) = V0·e^(−μr)/r, the building
//     block of one-boson-exchange models.
//   - SquareWell — constant attraction −V0 inside radius R; its phase
//     shift is known in closed form, which makes it the standard
//     verification case.
//   - MalflietTjon — the classic two-Yukawa nucleon-nucleon
//     parameterization (short-range repulsion, mid-range attraction).
//
// All values and parameters are in natural units: strengths and momenta
// in fm⁻¹, ranges in fm. Use phys.InverseFermi to convert MeV inputs.
// Each potential is an immutable value, safe for concurrent use, and
// implements both scatter.Potential and scatter.Radial.
package potential
