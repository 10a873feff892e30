package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/stride/physics"
	"github.com/driftmark/stride/vmath"
)

// GroundSample describes the surface found beneath the controller and the
// motion of the body that owns it. Recomputed every tick.
type GroundSample struct {
	// Entity is the rigid body owning the contacted collider.
	Entity physics.Entity

	Point  mgl32.Vec3
	Normal mgl32.Vec3
	TOI    float32

	// LinearVelocity and AngularVelocity are the ground body's velocities.
	LinearVelocity  mgl32.Vec3
	AngularVelocity mgl32.Vec3
	// PointVelocity is the ground body's velocity at the contact point:
	// linear + angular x (point - center of mass).
	PointVelocity mgl32.Vec3

	// Stable means the controller will not slip on this surface. Stable
	// implies Viable.
	Stable bool
	// Viable means the surface is shallow enough to stand on at all.
	Viable bool
}

const (
	// groundCastIterations bounds both the outer cast loop and the inner
	// penetration-correction loop.
	groundCastIterations = 12
	// penetrationCorrection overshoots the contact depth when pushing the
	// cast origin out of geometry, avoiding near-zero TOIs from float
	// imprecision.
	penetrationCorrection = 1.5
	// normalSampleFudge is the ring radius for normal reconstruction rays.
	normalSampleFudge = 0.05
	// witnessTolerance is how close a sample ray must land to the cast
	// witness point to contribute to the reconstructed normal.
	witnessTolerance = 0.25
)

// findGround locates the surface beneath the body and classifies it. The
// second return is false while airborne; that is an expected state, never an
// error.
func (r *Resolver) findGround(s *State, body *BodyState, dt float32) (GroundSample, bool) {
	caster := &s.Config.GroundCaster
	up := s.Config.Gravity.UpVector
	dir := up.Mul(-1)

	var (
		hit    physics.ShapeCastHit
		normal mgl32.Vec3
		ok     bool
	)
	if s.SkipGroundTimer == 0 && !caster.SkipOverride {
		origin := body.Position.Add(body.Rotation.Rotate(caster.CastOrigin))
		hit, normal, ok = r.groundCast(s, origin, body.Rotation, dir, caster.Shape, caster.CastLength)
	} else {
		s.SkipGroundTimer = math32.Max(s.SkipGroundTimer-dt, 0)
	}

	// If the body is touching anything at all, stop skipping so a landing is
	// never detected late.
	s.manifolds = r.Physics.ContactManifolds(body.Position, body.Rotation, caster.Shape, s.Filter(), s.manifolds[:0])
	if len(s.manifolds) > 0 {
		s.SkipGroundTimer = 0
	}

	if !ok {
		return GroundSample{}, false
	}

	sample := GroundSample{
		Entity: r.Physics.BodyOf(hit.Entity),
		Point:  hit.Point,
		Normal: normal,
		TOI:    hit.TOI,
	}

	if vel, found := r.Physics.Velocity(sample.Entity); found {
		sample.LinearVelocity = vel.Linear
		sample.AngularVelocity = vel.Angular
	}
	com := mgl32.Vec3{}
	if mass, found := r.Physics.MassProperties(sample.Entity); found {
		if pos, posFound := r.Physics.Position(sample.Entity); posFound {
			com = pos.Add(mass.LocalCenterOfMass)
		}
	}
	sample.PointVelocity = sample.LinearVelocity.
		Add(sample.AngularVelocity.Cross(sample.Point.Sub(com)))

	// A degenerate normal means we could not reconstruct anything usable;
	// reject rather than guess.
	if normal.Len() > vmath.Epsilon {
		angle := vmath.AngleBetween(normal, up)
		sample.Viable = angle <= caster.ViableAngle
		sample.Stable = sample.Viable && angle <= caster.StableAngle
	} else {
		return GroundSample{}, false
	}

	return sample, true
}

// groundCast robustly finds the ground with a swept shape, correcting
// starting penetration and reconstructing the contact normal, with a ray
// fallback for thin or non-convex colliders the sweep misses.
func (r *Resolver) groundCast(s *State, pos mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3, shape physics.Shape, maxDist float32) (physics.ShapeCastHit, mgl32.Vec3, bool) {
	filter := s.Filter()

	for i := 0; i < groundCastIterations; i++ {
		hit, ok := r.Physics.ShapeCast(pos, rot, dir, shape, maxDist, filter)
		if !ok {
			break
		}

		if !hit.Penetrating {
			normal, valid := r.reconstructNormal(s, pos, dir, shape, maxDist, hit)
			if !valid {
				return physics.ShapeCastHit{}, mgl32.Vec3{}, false
			}
			return hit, normal, true
		}

		// The cast starts inside geometry, common right after a landing.
		// Nudge the origin out along contact normals and retry.
		if !r.correctPenetration(s, &pos, rot, shape, hit.Entity) {
			break
		}
	}

	// Last resort: a plain ray along the cast axis. Offset the start by the
	// shape's silhouette so the contact point stays comparable.
	pos = pos.Add(dir.Mul(shape.Support(dir)))
	ray, ok := r.Physics.RayCast(pos, dir, maxDist, filter)
	if !ok {
		return physics.ShapeCastHit{}, mgl32.Vec3{}, false
	}
	return physics.ShapeCastHit{
		Entity: ray.Entity,
		TOI:    ray.TOI,
		Normal: ray.Normal,
		Point:  ray.Point,
	}, ray.Normal, true
}

// correctPenetration pushes the cast origin out of the penetrated collider
// using contact manifolds. Reports whether any correction was applied.
func (r *Resolver) correctPenetration(s *State, pos *mgl32.Vec3, rot mgl32.Quat, shape physics.Shape, against physics.Entity) bool {
	corrected := false
	for i := 0; i < groundCastIterations; i++ {
		s.manifolds = r.Physics.ContactManifolds(*pos, rot, shape, s.Filter(), s.manifolds[:0])

		deepest := float32(0)
		var normal mgl32.Vec3
		for _, m := range s.manifolds {
			if against != physics.None && m.Entity != against {
				continue
			}
			for _, p := range m.Points {
				if p.Distance < deepest {
					deepest = p.Distance
					normal = m.Normal
				}
			}
		}
		if deepest >= 0 {
			break
		}

		*pos = pos.Add(normal.Mul(-deepest * penetrationCorrection))
		corrected = true
	}
	return corrected
}

// reconstructNormal replaces the shape cast's interpolated normal, which is
// unreliable on edge and vertex contacts of composite shapes. It averages
// ring-sampled ray normals landing near the witness point, weighted by
// alignment with up, and falls back to a direct ray at the contact point.
func (r *Resolver) reconstructNormal(s *State, pos, dir mgl32.Vec3, shape physics.Shape, maxDist float32, hit physics.ShapeCastHit) (mgl32.Vec3, bool) {
	filter := s.Filter()
	up := s.Config.Gravity.UpVector

	// Project the witness point back onto the pre-cast shape position.
	above := hit.Point.Add(dir.Mul(-hit.TOI))

	t1, t2 := vmath.OrthonormalPair(dir)
	offsets := [4]mgl32.Vec3{
		t1.Add(t2), t1.Sub(t2),
		t1.Mul(-1).Add(t2), t1.Mul(-1).Sub(t2),
	}

	var sum mgl32.Vec3
	for _, off := range offsets {
		origin := above.Sub(off.Mul(normalSampleFudge))
		ray, ok := r.Physics.RayCast(origin, dir, maxDist, filter)
		if !ok || ray.Entity != hit.Entity || ray.TOI <= 0 {
			continue
		}
		if ray.Normal.Len() <= vmath.Epsilon {
			continue
		}
		if ray.Point.Sub(hit.Point).Len() > witnessTolerance {
			continue
		}
		weight := math32.Max(ray.Normal.Dot(up), 0) + vmath.Epsilon
		sum = sum.Add(ray.Normal.Mul(weight))
	}

	if sum.Len() > vmath.Epsilon {
		return vmath.SafeNormalize(sum), true
	}

	// No ring sample landed; check a direct path to the contact point.
	direct := vmath.SafeNormalize(hit.Point.Sub(pos))
	if direct.Len() <= vmath.Epsilon {
		return hit.Normal, hit.Normal.Len() > vmath.Epsilon
	}
	ray, ok := r.Physics.RayCast(pos, direct, hit.TOI+shape.Support(direct)+normalSampleFudge, filter)
	if !ok {
		if r.Log != nil {
			r.Log.Debugf("ground cast: direct ray missed the contact point at %v", hit.Point)
		}
		return mgl32.Vec3{}, false
	}
	if ray.Entity == hit.Entity && ray.TOI > 0 && ray.Normal.Len() > vmath.Epsilon &&
		vmath.AngleBetween(hit.Normal, ray.Normal) < math32.Pi/2 {
		return ray.Normal, true
	}
	return hit.Normal, hit.Normal.Len() > vmath.Epsilon
}
