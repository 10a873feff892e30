package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape is a convex cast shape. Backends interpret the concrete type; the
// resolver itself only needs the support distance, used to offset the
// fallback ray so its contact point stays comparable to a shape cast.
type Shape interface {
	// Support returns the distance from the shape origin to its surface
	// along the given unit direction.
	Support(dir mgl32.Vec3) float32
}

// Sphere is a ball shape. 2D backends treat it as a circle.
type Sphere struct {
	Radius float32
}

func (s Sphere) Support(dir mgl32.Vec3) float32 {
	return s.Radius
}

// Capsule is a sphere-capped cylinder along the local Y axis.
type Capsule struct {
	Radius     float32
	HalfHeight float32
}

func (c Capsule) Support(dir mgl32.Vec3) float32 {
	return c.Radius + c.HalfHeight*math32.Abs(dir.Y())
}

// Box is an axis-aligned box given by its half extents.
type Box struct {
	HalfExtents mgl32.Vec3
}

func (b Box) Support(dir mgl32.Vec3) float32 {
	return math32.Abs(dir.X())*b.HalfExtents.X() +
		math32.Abs(dir.Y())*b.HalfExtents.Y() +
		math32.Abs(dir.Z())*b.HalfExtents.Z()
}
