package vmath

import "github.com/chewxy/math32"

// Spring holds the parameters of a damped harmonic oscillator used for the
// float suspension and upright torque.
//
// Useful background:
//   - https://www.ryanjuckett.com/damped-springs/
//   - https://gafferongames.com/post/spring_physics/
type Spring struct {
	// Frequency is the desired angular frequency of the spring. The actual
	// stiffness is derived from it together with the mass (or inertia) the
	// spring acts on, so behavior stays the same across body masses.
	Frequency float32 `yaml:"frequency"`

	// Stiffness is a raw coefficient for the F = -kx - cv function. When
	// non-zero it overrides Frequency.
	Stiffness float32 `yaml:"stiffness"`

	// DampingRatio controls oscillation. <1 overshoots the target, 1 is
	// critically damped, >1 reaches the target slowly.
	DampingRatio float32 `yaml:"damping_ratio"`
}

// StiffnessFor returns the spring stiffness coefficient for the given mass
// (or moment of inertia for angular springs).
func (s Spring) StiffnessFor(mass float32) float32 {
	if s.Stiffness > 0 {
		return s.Stiffness
	}
	return mass * s.Frequency * s.Frequency
}

// CriticalDamping returns the damping coefficient that just reaches the
// target without overshooting, 2*sqrt(k*m).
func (s Spring) CriticalDamping(mass float32) float32 {
	km := s.StiffnessFor(mass) * mass
	if km <= 0 {
		return 0
	}
	return 2 * math32.Sqrt(km)
}

// DampCoefficient returns the damping coefficient for the configured ratio.
func (s Spring) DampCoefficient(mass float32) float32 {
	return s.DampingRatio * s.CriticalDamping(mass)
}
