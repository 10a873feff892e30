// Package cpspace implements physics.Backend on top of the Chipmunk2D port
// github.com/jakecoffman/cp. The 2D plane maps to the X/Y axes of the 3D
// math types and angular quantities are carried on Z, so the resolver's
// cross products come out right without special cases.
package cpspace

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"

	"github.com/driftmark/stride/physics"
)

// Space wraps a cp.Space and tracks entity ids for its bodies. Only sphere
// cast shapes are supported; a sphere is a circle in plane terms, and a
// circle sweep is exactly a thick segment query.
type Space struct {
	space *cp.Space
	dt    float64

	ids    map[*cp.Body]physics.Entity
	bodies map[physics.Entity]*cp.Body
	next   physics.Entity
}

// New creates an empty space stepping at the given fixed timestep.
func New(dt float32) *Space {
	s := &Space{
		space:  cp.NewSpace(),
		dt:     float64(dt),
		ids:    map[*cp.Body]physics.Entity{},
		bodies: map[physics.Entity]*cp.Body{},
		next:   1,
	}
	s.Track(s.space.StaticBody)
	return s
}

// Underlying exposes the wrapped cp.Space for scene construction.
func (s *Space) Underlying() *cp.Space {
	return s.space
}

// Static returns the entity of the space's shared static body.
func (s *Space) Static() physics.Entity {
	return s.Track(s.space.StaticBody)
}

// Track registers a body and returns its entity id. Idempotent.
func (s *Space) Track(body *cp.Body) physics.Entity {
	if id, ok := s.ids[body]; ok {
		return id
	}
	id := s.next
	s.next++
	s.ids[body] = id
	s.bodies[id] = body
	return id
}

// Step advances the simulation by one tick.
func (s *Space) Step() {
	s.space.Step(s.dt)
}

func (s *Space) entityOf(shape *cp.Shape) physics.Entity {
	return s.Track(shape.Body())
}

func cpv(v mgl32.Vec3) cp.Vector {
	return cp.Vector{X: float64(v.X()), Y: float64(v.Y())}
}

func vec3(v cp.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), 0}
}

// ShapeCast sweeps a sphere (circle) using a segment query with radius.
// Non-sphere shapes are unsupported and report no hit.
func (s *Space) ShapeCast(pos mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3, shape physics.Shape, maxDist float32, filter *physics.Filter) (physics.ShapeCastHit, bool) {
	sphere, ok := shape.(physics.Sphere)
	if !ok {
		return physics.ShapeCastHit{}, false
	}
	radius := float64(sphere.Radius)

	// A sweep that starts overlapping reports penetration, which the ground
	// caster resolves via contact manifolds.
	if e, overlapping := s.overlapAt(pos, radius, filter); overlapping {
		return physics.ShapeCastHit{Entity: e, Penetrating: true}, true
	}

	start := cpv(pos)
	end := cpv(pos.Add(dir.Mul(maxDist)))

	best := physics.ShapeCastHit{}
	bestAlpha := 2.0
	found := false
	s.space.SegmentQuery(start, end, radius, cp.SHAPE_FILTER_ALL, func(sh *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if sh.Sensor() || filter.Excluded(s.entityOf(sh)) {
			return
		}
		if alpha < bestAlpha {
			bestAlpha = alpha
			best = physics.ShapeCastHit{
				Entity: s.entityOf(sh),
				TOI:    float32(alpha) * maxDist,
				Normal: vec3(normal),
				Point:  vec3(point),
			}
			found = true
		}
	}, nil)

	return best, found
}

// RayCast is a zero-radius segment query.
func (s *Space) RayCast(pos, dir mgl32.Vec3, maxDist float32, filter *physics.Filter) (physics.RayHit, bool) {
	start := cpv(pos)
	end := cpv(pos.Add(dir.Mul(maxDist)))

	best := physics.RayHit{}
	bestAlpha := 2.0
	found := false
	s.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL, func(sh *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if sh.Sensor() || filter.Excluded(s.entityOf(sh)) {
			return
		}
		if alpha < bestAlpha {
			bestAlpha = alpha
			best = physics.RayHit{
				Entity: s.entityOf(sh),
				TOI:    float32(alpha) * maxDist,
				Normal: vec3(normal),
				Point:  vec3(point),
			}
			found = true
		}
	}, nil)

	return best, found
}

// ContactManifolds collects contacts between a probe circle at pos and
// nearby shapes.
func (s *Space) ContactManifolds(pos mgl32.Vec3, rot mgl32.Quat, shape physics.Shape, filter *physics.Filter, out []physics.Manifold) []physics.Manifold {
	radius := float64(shape.Support(mgl32.Vec3{1, 0, 0}))
	probe := s.probeCircle(pos, radius)

	s.space.ShapeQuery(probe, func(sh *cp.Shape, set *cp.ContactPointSet) {
		e := s.entityOf(sh)
		if sh.Sensor() || filter.Excluded(e) {
			return
		}
		// Chipmunk's query normal points from the probe toward the shape;
		// the Manifold convention is the reverse.
		m := physics.Manifold{Entity: e, Normal: vec3(set.Normal).Mul(-1)}
		for i := 0; i < set.Count; i++ {
			p := set.Points[i]
			m.Points = append(m.Points, physics.ManifoldPoint{
				Point:    vec3(p.PointB),
				Distance: float32(p.Distance),
			})
		}
		out = append(out, m)
	})

	return out
}

// overlapAt reports whether a circle at pos overlaps any non-excluded shape.
func (s *Space) overlapAt(pos mgl32.Vec3, radius float64, filter *physics.Filter) (physics.Entity, bool) {
	probe := s.probeCircle(pos, radius)

	hit := physics.None
	s.space.ShapeQuery(probe, func(sh *cp.Shape, set *cp.ContactPointSet) {
		if hit != physics.None || sh.Sensor() || filter.Excluded(s.entityOf(sh)) {
			return
		}
		for i := 0; i < set.Count; i++ {
			if set.Points[i].Distance < 0 {
				hit = s.entityOf(sh)
				return
			}
		}
	})
	return hit, hit != physics.None
}

func (s *Space) probeCircle(pos mgl32.Vec3, radius float64) *cp.Shape {
	body := cp.NewKinematicBody()
	body.SetPosition(cpv(pos))
	return cp.NewCircle(body, radius, cp.Vector{})
}

// BodyOf is the identity here; entity ids are handed out per body, and
// query hits already resolve through the shape's body.
func (s *Space) BodyOf(e physics.Entity) physics.Entity {
	return e
}

func (s *Space) MassProperties(e physics.Entity) (physics.MassProperties, bool) {
	body, ok := s.bodies[e]
	if !ok {
		return physics.MassProperties{}, false
	}
	mass := body.Mass()
	moment := body.Moment()
	if math.IsInf(mass, 0) {
		mass = 0
	}
	if math.IsInf(moment, 0) {
		moment = 0
	}
	return physics.MassProperties{
		Mass:              float32(mass),
		Inertia:           mgl32.Vec3{0, 0, float32(moment)},
		LocalCenterOfMass: vec3(body.CenterOfGravity()),
	}, true
}

func (s *Space) Velocity(e physics.Entity) (physics.Velocity, bool) {
	body, ok := s.bodies[e]
	if !ok {
		return physics.Velocity{}, false
	}
	return physics.Velocity{
		Linear:  vec3(body.Velocity()),
		Angular: mgl32.Vec3{0, 0, float32(body.AngularVelocity())},
	}, true
}

func (s *Space) Position(e physics.Entity) (mgl32.Vec3, bool) {
	body, ok := s.bodies[e]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return vec3(body.Position()), true
}

func (s *Space) ApplyImpulse(e physics.Entity, linear, angular mgl32.Vec3) {
	body, ok := s.bodies[e]
	if !ok {
		return
	}
	body.ApplyImpulseAtWorldPoint(cpv(linear), body.LocalToWorld(body.CenterOfGravity()))
	if moment := body.Moment(); angular.Z() != 0 && moment > 0 && !math.IsInf(moment, 0) {
		body.SetAngularVelocity(body.AngularVelocity() + float64(angular.Z())/moment)
	}
}

func (s *Space) ApplyImpulseAt(e physics.Entity, linear, at mgl32.Vec3) {
	body, ok := s.bodies[e]
	if !ok {
		return
	}
	body.ApplyImpulseAtWorldPoint(cpv(linear), cpv(at))
}

func (s *Space) TickDelta() float32 {
	return float32(s.dt)
}
