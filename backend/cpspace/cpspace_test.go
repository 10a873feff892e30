package cpspace

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"

	"github.com/driftmark/stride/physics"
)

func newFloorSpace(t *testing.T) *Space {
	t.Helper()
	s := New(1.0 / 60)
	floor := cp.NewSegment(s.Underlying().StaticBody, cp.Vector{X: -10}, cp.Vector{X: 10}, 0)
	s.Underlying().AddShape(floor)
	return s
}

func TestShapeCastFindsFloor(t *testing.T) {
	s := newFloorSpace(t)

	hit, ok := s.ShapeCast(mgl32.Vec3{0, 2, 0}, mgl32.QuatIdent(), mgl32.Vec3{0, -1, 0},
		physics.Sphere{Radius: 0.45}, 5, nil)
	if !ok {
		t.Fatalf("expected the sweep to hit the floor")
	}
	if hit.Penetrating {
		t.Fatalf("sweep from above must not report penetration")
	}
	if hit.Entity != s.Static() {
		t.Fatalf("hit entity: want %v, got %v", s.Static(), hit.Entity)
	}
	if math32.Abs(hit.TOI-1.55) > 1e-3 {
		t.Fatalf("TOI: want 1.55, got %v", hit.TOI)
	}
	if hit.Normal.Y() < 0.99 {
		t.Fatalf("expected an up normal, got %v", hit.Normal)
	}
}

func TestShapeCastReportsPenetration(t *testing.T) {
	s := newFloorSpace(t)

	hit, ok := s.ShapeCast(mgl32.Vec3{0, 0.2, 0}, mgl32.QuatIdent(), mgl32.Vec3{0, -1, 0},
		physics.Sphere{Radius: 0.45}, 5, nil)
	if !ok || !hit.Penetrating {
		t.Fatalf("overlapping sweep should report penetration, got %+v %v", hit, ok)
	}
}

func TestShapeCastHonorsFilter(t *testing.T) {
	s := newFloorSpace(t)

	filter := physics.NewFilter(s.Static())
	if _, ok := s.ShapeCast(mgl32.Vec3{0, 2, 0}, mgl32.QuatIdent(), mgl32.Vec3{0, -1, 0},
		physics.Sphere{Radius: 0.45}, 5, filter); ok {
		t.Fatalf("excluded entity must not be hit")
	}
}

func TestRayCast(t *testing.T) {
	s := newFloorSpace(t)

	hit, ok := s.RayCast(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0}, 5, nil)
	if !ok {
		t.Fatalf("expected the ray to hit the floor")
	}
	if math32.Abs(hit.TOI-2) > 1e-3 {
		t.Fatalf("TOI: want 2, got %v", hit.TOI)
	}
	if math32.Abs(hit.Point.Y()) > 1e-3 {
		t.Fatalf("contact point should lie on the floor, got %v", hit.Point)
	}
}

func TestContactManifolds(t *testing.T) {
	s := newFloorSpace(t)

	out := s.ContactManifolds(mgl32.Vec3{0, 0.2, 0}, mgl32.QuatIdent(),
		physics.Sphere{Radius: 0.45}, nil, nil)
	if len(out) != 1 {
		t.Fatalf("expected one manifold, got %v", len(out))
	}
	m := out[0]
	if m.Normal.Y() < 0.9 {
		t.Fatalf("manifold normal should point toward the probe, got %v", m.Normal)
	}
	if len(m.Points) == 0 || m.Points[0].Distance >= 0 {
		t.Fatalf("overlap should report a negative distance, got %+v", m.Points)
	}
}

func TestBodyPropertiesAndImpulse(t *testing.T) {
	s := New(1.0 / 60)
	body := s.Underlying().AddBody(cp.NewBody(2, 1))
	body.SetPosition(cp.Vector{X: 1, Y: 3})
	body.SetVelocity(0.5, 0)
	e := s.Track(body)

	mass, ok := s.MassProperties(e)
	if !ok || mass.Mass != 2 {
		t.Fatalf("mass: want 2, got %+v %v", mass, ok)
	}
	pos, ok := s.Position(e)
	if !ok || pos != (mgl32.Vec3{1, 3, 0}) {
		t.Fatalf("position: got %v %v", pos, ok)
	}
	vel, ok := s.Velocity(e)
	if !ok || math32.Abs(vel.Linear.X()-0.5) > 1e-5 {
		t.Fatalf("velocity: got %+v %v", vel, ok)
	}

	s.ApplyImpulse(e, mgl32.Vec3{2, 0, 0}, mgl32.Vec3{})
	vel, _ = s.Velocity(e)
	if math32.Abs(vel.Linear.X()-1.5) > 1e-5 {
		t.Fatalf("impulse should add linear velocity 1, got %v", vel.Linear)
	}

	// An off-center impulse spins the body as well as translating it.
	s.ApplyImpulseAt(e, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 3, 0})
	vel, _ = s.Velocity(e)
	if math32.Abs(vel.Angular.Z()-1) > 1e-5 {
		t.Fatalf("point impulse should add angular velocity 1, got %v", vel.Angular)
	}
	if math32.Abs(vel.Linear.Y()-0.5) > 1e-5 {
		t.Fatalf("point impulse should add linear velocity 0.5, got %v", vel.Linear)
	}

	// The static body reports zero mass rather than infinity.
	static, _ := s.MassProperties(s.Static())
	if static.Mass != 0 {
		t.Fatalf("static mass: want 0, got %v", static.Mass)
	}
}

func TestTrackIdempotent(t *testing.T) {
	s := New(1.0 / 60)
	body := s.Underlying().AddBody(cp.NewBody(1, 1))

	a := s.Track(body)
	b := s.Track(body)
	if a != b {
		t.Fatalf("tracking the same body twice should return one id: %v %v", a, b)
	}
}
