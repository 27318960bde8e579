package potential

import (
	"math"

	"github.com/wavekit/scatter/phys"
)

// Yukawa is the screened Coulomb potential
//
//	V(r) = V0 · e^(−μr) / r
//
// with strength V0 (fm⁻¹, negative = attractive) and screening mass Mu
// (fm⁻¹). Its S-wave momentum-space matrix element is closed-form:
//
//	⟨k|V|k′⟩ = V0/(4kk′) · ln( ((k+k′)²+μ²) / ((k−k′)²+μ²) )
//
// Momentum requires k, k′ > 0; Radial requires r > 0.
type Yukawa struct {
	V0 float64
	Mu float64
}

// Momentum implements scatter.Potential.
func (y Yukawa) Momentum(k, kp float64) float64 {
	num := (k+kp)*(k+kp) + y.Mu*y.Mu
	den := (k-kp)*(k-kp) + y.Mu*y.Mu

	return y.V0 / (4 * k * kp) * math.Log(num/den)
}

// Radial implements scatter.Radial.
func (y Yukawa) Radial(r float64) float64 {
	return y.V0 * math.Exp(-y.Mu*r) / r
}

// SquareWell is the attractive square well: V(r) = −V0 for r < R and 0
// beyond. V0 > 0 is the well depth (fm⁻¹), R the range (fm). The S-wave
// matrix element is
//
//	⟨k|V|k′⟩ = −V0/(kk′) · ( S(k−k′) − S(k+k′) ),  S(q) = sin(qR)/(2q)
//
// with the coincident-argument limit S(0) = R/2 taken analytically, so
// diagonal samples V(k,k) are well defined.
type SquareWell struct {
	V0 float64
	R  float64
}

// Momentum implements scatter.Potential.
func (w SquareWell) Momentum(k, kp float64) float64 {
	return -w.V0 / (k * kp) * (w.halfSinc(k-kp) - w.halfSinc(k+kp))
}

// halfSinc returns sin(qR)/(2q), taking the q→0 limit R/2.
func (w SquareWell) halfSinc(q float64) float64 {
	if q == 0 {
		return w.R / 2
	}

	return math.Sin(q*w.R) / (2 * q)
}

// Radial implements scatter.Radial.
func (w SquareWell) Radial(r float64) float64 {
	if r < w.R {
		return -w.V0
	}

	return 0
}

// MalflietTjon is a two-term Yukawa superposition with a long-range
// attractive and a short-range repulsive part.
type MalflietTjon struct {
	Attractive Yukawa
	Repulsive  Yukawa
}

// MTV returns the Malfliet-Tjon V parameterization of the s-wave
// nucleon-nucleon force (strengths −570.3163 and 1438.720 MeV·fm,
// ranges 1.550 and 3.110 fm⁻¹), converted to natural units.
func MTV() MalflietTjon {
	return MalflietTjon{
		Attractive: Yukawa{V0: -570.3163 / phys.HBarC, Mu: 1.550},
		Repulsive:  Yukawa{V0: 1438.720 / phys.HBarC, Mu: 3.110},
	}
}

// Momentum implements scatter.Potential.
func (p MalflietTjon) Momentum(k, kp float64) float64 {
	return p.Attractive.Momentum(k, kp) + p.Repulsive.Momentum(k, kp)
}

// Radial implements scatter.Radial.
func (p MalflietTjon) Radial(r float64) float64 {
	return p.Attractive.Radial(r) + p.Repulsive.Radial(r)
}
