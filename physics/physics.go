// Package physics abstracts the rigid-body engine behind a small query
// interface. The motion resolver only ever reads through it; the single
// write, impulse application, is deferred to a dedicated phase after all
// forces for a tick are computed.
package physics

import "github.com/go-gl/mathgl/mgl32"

// Entity identifies a collider or rigid body inside the backend.
type Entity uint64

// None is the zero entity, returned when a query hits nothing.
const None Entity = 0

// ShapeCastHit is the normalized result of a swept-shape query.
type ShapeCastHit struct {
	Entity Entity
	// TOI is the distance travelled along the cast direction before impact.
	TOI    float32
	Normal mgl32.Vec3
	Point  mgl32.Vec3
	// Penetrating is set when the cast started overlapping geometry, in
	// which case TOI, Normal and Point are not trustworthy.
	Penetrating bool
}

// RayHit is the normalized result of a ray query.
type RayHit struct {
	Entity Entity
	TOI    float32
	Normal mgl32.Vec3
	Point  mgl32.Vec3
}

// ManifoldPoint is a single contact inside a manifold. Distance is negative
// while the shapes overlap.
type ManifoldPoint struct {
	Point    mgl32.Vec3
	Distance float32
}

// Manifold describes the contact between a queried shape and one collider.
// Normal points from the contacted collider toward the queried shape.
type Manifold struct {
	Entity Entity
	Normal mgl32.Vec3
	Points []ManifoldPoint
}

// MassProperties mirror the backend's mass state for one rigid body.
type MassProperties struct {
	Mass              float32
	Inertia           mgl32.Vec3
	LocalCenterOfMass mgl32.Vec3
}

// Velocity holds the linear and angular velocity of a rigid body. For 2D
// backends the angular velocity is carried on the Z axis.
type Velocity struct {
	Linear  mgl32.Vec3
	Angular mgl32.Vec3
}

// Backend bridges the physics engine for queries and deferred writes. All
// query methods must be safe for concurrent readers; ApplyImpulse and
// ApplyImpulseAt are serialized by the engine's own ingestion point.
type Backend interface {
	// ShapeCast sweeps shape from pos along dir for up to maxDist and
	// returns the first hit, if any.
	ShapeCast(pos mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3, shape Shape, maxDist float32, filter *Filter) (ShapeCastHit, bool)

	// RayCast casts a ray from pos along dir for up to maxDist.
	RayCast(pos, dir mgl32.Vec3, maxDist float32, filter *Filter) (RayHit, bool)

	// ContactManifolds collects the contacts between shape, placed at pos
	// with rotation rot, and every nearby collider. Results are appended to
	// out and the grown slice returned, so callers can reuse a scratch
	// buffer across ticks.
	ContactManifolds(pos mgl32.Vec3, rot mgl32.Quat, shape Shape, filter *Filter, out []Manifold) []Manifold

	// BodyOf resolves the rigid body owning a collider. A collider that is
	// its own body resolves to itself.
	BodyOf(e Entity) Entity

	MassProperties(e Entity) (MassProperties, bool)
	Velocity(e Entity) (Velocity, bool)
	Position(e Entity) (mgl32.Vec3, bool)

	// ApplyImpulse applies a linear and angular impulse at the body's center
	// of mass.
	ApplyImpulse(e Entity, linear, angular mgl32.Vec3)

	// ApplyImpulseAt applies a linear impulse at a world-space point.
	ApplyImpulseAt(e Entity, linear, at mgl32.Vec3)

	// TickDelta returns the fixed simulation timestep in seconds.
	TickDelta() float32
}
