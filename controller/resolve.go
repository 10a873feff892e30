// Package controller converts per-tick player or AI intent into impulses on
// a dynamic rigid body, floating it above detected ground on a spring
// suspension. The pipeline per tick is fixed: ground detection, ground cache
// update, grounded classification, then the float, movement, jump and
// upright contributions, then accumulation with the ground reaction.
package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/stride/physics"
	"github.com/driftmark/stride/vmath"
)

// Resolver runs the motion pipeline against a physics backend. One resolver
// serves any number of bodies; all per-body state lives in State, so
// independent bodies may be resolved concurrently as long as the backend's
// queries are safe for concurrent reads.
type Resolver struct {
	Physics physics.Backend
	Log     *logrus.Logger
}

// NewResolver returns a resolver over the given backend. log may be nil.
func NewResolver(b physics.Backend, log *logrus.Logger) *Resolver {
	return &Resolver{Physics: b, Log: log}
}

// Resolve runs one tick of the pipeline for one body and returns the
// requested impulses. It never mutates the body; apply the output in a
// separate write phase (see Apply).
func (r *Resolver) Resolve(s *State, body BodyState, input ControlInput) Output {
	dt := r.Physics.TickDelta()
	if dt <= 0 {
		return Output{}
	}

	input.Movement = vmath.ClampMag(input.Movement, 1)

	sample, ok := r.findGround(s, &body, dt)
	s.Ground.Update(sample, ok)
	s.Grounded = classifyGrounded(s, &body)

	var parts Parts
	parts.Gravity = gravityForce(s, &body, dt)
	parts.Float = floatForce(s, &body, dt)
	parts.Movement = movementForce(s, &body, input.Movement, dt)
	parts.Upright = uprightForce(s, &body, dt)

	jump := jumpUpdate(s, &body, s.Grounded, input.Jumping, dt)
	parts.Jump = jump.force
	if jump.zeroFloat {
		parts.Float = mgl32.Vec3{}
	}
	if jump.zeroGravity {
		parts.Gravity = mgl32.Vec3{}
	}

	out := r.accumulate(s, input, parts)
	out.Grounded = s.Grounded
	out.JumpFired = jump.fired
	return out
}
