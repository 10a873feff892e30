package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/stride/vmath"
)

// uprightForce computes the torque impulse keeping the body's local up
// aligned with the world up, and optionally facing a desired forward
// direction. Damping is derived per principal-inertia axis and taken
// relative to the ground body's spin, so riding a rotating platform does not
// fight the spring.
func uprightForce(s *State, body *BodyState, dt float32) mgl32.Vec3 {
	spec := s.Config.Upright
	up := s.Config.Gravity.UpVector

	var desired mgl32.Vec3
	if spec.Forward.Len() > vmath.Epsilon {
		desired = facingAxis(body.Rotation, vmath.SafeNormalize(spec.Forward), up)
	} else {
		current := body.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
		desired = current.Cross(up)
	}

	angularVel := body.AngularVelocity
	if sample, ok := s.Ground.Last(); ok {
		angularVel = angularVel.Sub(sample.AngularVelocity)
	}

	var torque mgl32.Vec3
	for i := 0; i < 3; i++ {
		inertia := body.Mass.Inertia[i]
		torque[i] = desired[i]*spec.Spring.StiffnessFor(inertia) -
			angularVel[i]*spec.Spring.DampCoefficient(inertia)
	}
	return torque.Mul(dt)
}

// facingAxis returns the axis-angle difference between the current rotation
// and the orientation built from the desired forward and up vectors.
func facingAxis(rotation mgl32.Quat, forward, up mgl32.Vec3) mgl32.Vec3 {
	right := vmath.SafeNormalize(up.Cross(forward))
	if right.Len() <= vmath.Epsilon {
		// Forward is parallel to up; nothing sensible to face.
		return mgl32.Vec3{}
	}
	upAxis := forward.Cross(right)

	target := mgl32.Mat4ToQuat(mgl32.Mat3{
		right.X(), right.Y(), right.Z(),
		upAxis.X(), upAxis.Y(), upAxis.Z(),
		forward.X(), forward.Y(), forward.Z(),
	}.Mat4())

	diff := target.Mul(rotation.Inverse())
	diff = diff.Normalize()

	angle := 2 * math32.Acos(vmath.Clamp32(diff.W, -1, 1))
	if angle > math32.Pi {
		angle -= 2 * math32.Pi
	}
	return vmath.SafeNormalize(diff.V).Mul(angle)
}
