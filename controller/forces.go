package controller

import "github.com/driftmark/stride/physics"

// accumulate sums the per-part impulses into the final output and computes
// the Newton's-third-law reaction on the ground body. Movement-induced and
// push-induced reactions scale independently; both default to zero, which
// disables the feature entirely.
func (r *Resolver) accumulate(s *State, input ControlInput, parts Parts) Output {
	out := Output{Parts: parts}

	out.Body.Linear = parts.Movement.
		Add(parts.Jump).
		Add(parts.Float).
		Add(parts.Gravity).
		Add(input.ExtraLinear)
	out.Body.Angular = parts.Upright.Add(input.ExtraAngular)

	sample, ok := s.Ground.Current()
	if !ok {
		return out
	}
	out.GroundEntity = sample.Entity
	out.GroundPoint = sample.Point

	fs := s.Config.Forces
	opposing := parts.Movement.Mul(-fs.MovementReactionScale).
		Sub(parts.Jump.Add(parts.Float).Mul(fs.PushReactionScale))
	if opposing.Len() == 0 {
		return out
	}

	out.Ground.Linear = opposing

	// Torque about the ground body's center of mass, with the contact point
	// as lever arm. This is what lets the controller push off dynamic
	// platforms believably.
	com := sample.Point
	if mass, found := r.Physics.MassProperties(sample.Entity); found {
		if pos, posFound := r.Physics.Position(sample.Entity); posFound {
			com = pos.Add(mass.LocalCenterOfMass)
		}
	}
	out.Ground.Angular = sample.Point.Sub(com).Cross(opposing)

	return out
}

// Apply feeds a resolved output to the backend: the body impulse, then the
// ground reaction, delivered at the contact point so the backend derives the
// same lever-arm torque reported in Output.Ground.Angular. Call it in the
// write phase, after every body's Resolve for the tick has finished.
func Apply(b physics.Backend, body physics.Entity, out Output) {
	b.ApplyImpulse(body, out.Body.Linear, out.Body.Angular)
	if out.GroundEntity != physics.None && out.Ground.Linear.Len() > 0 {
		b.ApplyImpulseAt(out.GroundEntity, out.Ground.Linear, out.GroundPoint)
	}
}
