package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/stride/vmath"
)

// movementForce converts the clamped input direction into an impulse toward
// a goal velocity relative to the ground's own motion. The goal eases in at
// the configured acceleration, and the final correction is capped so the
// controller cannot snap to speed instantly.
//
// On ground too steep to stand on, the goal is redirected down the slope so
// the controller slides off instead of clinging via friction; SlipFactor
// retains partial movement authority.
func movementForce(s *State, body *BodyState, dir mgl32.Vec3, dt float32) mgl32.Vec3 {
	spec := s.Config.Movement
	up := s.Config.Gravity.UpVector

	goal := dir.Mul(spec.MaxSpeed)

	var groundVel mgl32.Vec3
	sample, hasSample := s.Ground.Current()
	if hasSample {
		groundVel = sample.PointVelocity
	}

	if hasSample && !sample.Stable {
		goal = slipGoal(goal, sample.Normal, up, spec)
	}

	rate := vmath.Clamp32(spec.Acceleration*dt, 0, 1)
	goalVel := vmath.Lerp(s.LastGoalVelocity, goal.Add(groundVel), rate)
	s.LastGoalVelocity = goalVel

	needed := vmath.ClampMag(goalVel.Sub(body.Velocity), spec.MaxAccelForce)

	// Mass-scaled so the same tuning accelerates heavy and light bodies
	// alike.
	return vmath.MulElem(needed, spec.ForceScale).Mul(body.Mass.Mass)
}

// slipGoal projects the goal velocity onto the surface tangent plane and
// blends in a downhill component, sized by how much authority SlipFactor
// leaves on unclimbable ground.
func slipGoal(goal, normal, up mgl32.Vec3, spec MovementSpec) mgl32.Vec3 {
	tangent := goal.Sub(vmath.Project(goal, normal))

	down := up.Mul(-1)
	slide := vmath.SafeNormalize(down.Sub(vmath.Project(down, normal)))
	if slide.Len() <= vmath.Epsilon {
		// Surface is somehow flat relative to up; nothing to slide along.
		return tangent
	}

	return tangent.Mul(spec.SlipFactor).
		Add(slide.Mul(spec.MaxSpeed * (1 - spec.SlipFactor)))
}
