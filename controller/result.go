package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/stride/physics"
)

// Forces is a linear and angular impulse pair.
type Forces struct {
	Linear  mgl32.Vec3
	Angular mgl32.Vec3
}

// Parts breaks the accumulated body impulse down per contribution, useful
// for tuning and tests.
type Parts struct {
	Movement mgl32.Vec3
	Jump     mgl32.Vec3
	Float    mgl32.Vec3
	Gravity  mgl32.Vec3
	Upright  mgl32.Vec3
}

// Output is the result of resolving one tick for one body. Impulses only;
// the caller (or Apply) feeds them to the physics engine in a dedicated
// write phase.
type Output struct {
	// Body is the total impulse requested for the controlled body.
	Body Forces
	// Parts are the individual contributions making up Body.
	Parts Parts

	// Ground is the equal-and-opposite reaction for the ground body,
	// non-zero only when the reaction scales are configured.
	Ground Forces
	// GroundEntity receives the reaction. None while airborne.
	GroundEntity physics.Entity
	// GroundPoint is the contact point used as the reaction lever arm.
	GroundPoint mgl32.Vec3

	// Grounded is this tick's classification.
	Grounded bool
	// JumpFired marks that a jump launched this tick.
	JumpFired bool
}
