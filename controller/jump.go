package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/stride/vmath"
)

// jumpResult is one tick's output of the jump state machine.
type jumpResult struct {
	force mgl32.Vec3
	// fired marks a launch this tick.
	fired bool
	// zeroFloat suppresses the float spring so it does not fight the launch
	// or the active ascent.
	zeroFloat bool
	// zeroGravity suppresses gravity on the launch tick only.
	zeroGravity bool
}

// jumpUpdate advances timers and charges and computes the jump impulse.
//
// A launch negates the body's current vertical velocity before applying the
// initial impulse, so jump height stays consistent across fall speeds and
// launches cannot stack. Releasing the control during the ascent applies a
// one-shot downward impulse proportional to the current vertical speed,
// giving variable height.
func jumpUpdate(s *State, body *BodyState, grounded, jumping bool, dt float32) jumpResult {
	spec := &s.Config.Jump
	rt := &s.Jump
	up := s.Config.Gravity.UpVector

	pressedEdge := jumping && !rt.PressedLast

	if grounded {
		rt.Remaining = spec.Charges
		rt.CoyoteTimer = spec.CoyoteDuration
		rt.GroundJumpFired = false
	} else {
		rt.CoyoteTimer = math32.Max(rt.CoyoteTimer-dt, 0)
		if pressedEdge {
			rt.BufferTimer = spec.BufferDuration
		} else {
			rt.BufferTimer = math32.Max(rt.BufferTimer-dt, 0)
		}
	}
	rt.CooldownTimer = math32.Max(rt.CooldownTimer-dt, 0)

	var out jumpResult

	// Sustained ascent / early release.
	if rt.Timer > 0 && !grounded {
		if !jumping {
			rt.Timer = 0
			upVel := vmath.Project(body.Velocity, up)
			out.force = upVel.Mul(-spec.StopForce * body.Mass.Mass)
		} else {
			rt.Timer = math32.Max(rt.Timer-dt, 0)
			progress := float32(0)
			if spec.Duration > 0 {
				progress = (spec.Duration - rt.Timer) / spec.Duration
			}
			out.force = up.Mul(spec.Force * spec.Decay.Eval(progress) * dt)
			out.zeroFloat = true
		}
	}

	// Launch.
	chargesUsable := rt.Remaining > 0 && (!spec.RequireGroundFirst || rt.GroundJumpFired)
	if (pressedEdge || rt.BufferTimer > 0) && rt.CooldownTimer == 0 &&
		(grounded || rt.CoyoteTimer > 0 || chargesUsable) {
		if !grounded && rt.CoyoteTimer == 0 {
			rt.Remaining--
		} else {
			rt.GroundJumpFired = true
		}

		// A fire consumes the coyote window, so an immediate airborne
		// re-jump spends a charge.
		rt.CoyoteTimer = 0
		rt.BufferTimer = 0
		rt.Timer = spec.Duration
		rt.CooldownTimer = spec.CooldownDuration
		s.SkipGroundTimer = spec.SkipGroundCheckDuration

		cancel := up.Mul(-body.Velocity.Dot(up) * body.Mass.Mass)
		out.force = cancel.Add(up.Mul(spec.InitialForce))
		out.fired = true
		out.zeroFloat = true
		out.zeroGravity = true
	}

	rt.PressedLast = jumping
	return out
}
