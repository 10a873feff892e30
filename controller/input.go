package controller

import "github.com/go-gl/mathgl/mgl32"

// ControlInput is the per-tick intent for one controlled body. Most games
// map Movement to WASD or an analog stick projected onto the ground plane.
type ControlInput struct {
	// Movement is the desired direction of travel. Clamped to unit length
	// before use, so analog magnitudes below 1 scale speed.
	Movement mgl32.Vec3

	// Jumping reports whether the jump control is currently held.
	Jumping bool

	// ExtraLinear and ExtraAngular are raw impulse overrides summed into the
	// output untouched, for abilities like dashes or knockback.
	ExtraLinear  mgl32.Vec3
	ExtraAngular mgl32.Vec3
}
