package controller

import "github.com/go-gl/mathgl/mgl32"

// floatForce computes the suspension impulse holding the body at the target
// hover distance. A damped spring along up, relative to the ground contact
// point's own vertical motion so moving platforms carry the body correctly.
// Produces nothing while airborne, and only ever pushes away from the
// ground.
func floatForce(s *State, body *BodyState, dt float32) mgl32.Vec3 {
	sample, ok := s.Ground.Current()
	if !ok || !sample.Viable {
		return mgl32.Vec3{}
	}

	up := s.Config.Gravity.UpVector
	spec := s.Config.Float

	// The body's velocity at its origin, accounting for spin about the
	// center of mass.
	pointVel := body.Velocity.Add(body.AngularVelocity.Cross(body.Mass.LocalCenterOfMass.Mul(-1)))
	relVelocity := up.Dot(pointVel) - up.Dot(sample.PointVelocity)

	gap := body.Position.Dot(up) - sample.Point.Dot(up)
	displacement := spec.Distance - gap
	if displacement <= 0 {
		return mgl32.Vec3{}
	}

	mass := body.Mass.Mass
	strength := displacement * spec.Spring.StiffnessFor(mass)
	damping := relVelocity * spec.Spring.DampCoefficient(mass)

	return up.Mul((strength - damping) * dt)
}
