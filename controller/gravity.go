package controller

import "github.com/go-gl/mathgl/mgl32"

// gravityForce returns the per-tick gravity impulse. The acceleration sign
// lives in the config, so a normal downward pull uses a negative value.
func gravityForce(s *State, body *BodyState, dt float32) mgl32.Vec3 {
	return s.Config.Gravity.UpVector.Mul(body.Mass.Mass * s.Config.Gravity.Acceleration * dt)
}
