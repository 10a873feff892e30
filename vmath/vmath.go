package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon float32 = 1e-6

// SafeNormalize returns the normalized vector, or the zero vector if the
// input is too short to normalize without blowing up.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampMag limits the magnitude of a vector to max, preserving direction.
func ClampMag(v mgl32.Vec3, max float32) mgl32.Vec3 {
	l := v.Len()
	if l <= max || l <= Epsilon {
		return v
	}
	return v.Mul(max / l)
}

// Clamp32 clamps the given value to the given range.
func Clamp32(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Lerp linearly interpolates between two vectors by t.
func Lerp(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// MulElem multiplies two vectors component-wise.
func MulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// Project projects v onto the direction onto. A degenerate direction yields
// the zero vector.
func Project(v, onto mgl32.Vec3) mgl32.Vec3 {
	d := onto.Dot(onto)
	if d <= Epsilon {
		return mgl32.Vec3{}
	}
	return onto.Mul(v.Dot(onto) / d)
}

// AngleBetween returns the unsigned angle between two vectors in radians.
func AngleBetween(a, b mgl32.Vec3) float32 {
	an, bn := SafeNormalize(a), SafeNormalize(b)
	if an.Len() <= Epsilon || bn.Len() <= Epsilon {
		return 0
	}
	return math32.Acos(Clamp32(an.Dot(bn), -1, 1))
}

// OrthonormalPair returns two unit vectors perpendicular to dir and to each
// other. dir does not need to be normalized.
func OrthonormalPair(dir mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	n := SafeNormalize(dir)
	if n.Len() <= Epsilon {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}
	}

	ref := mgl32.Vec3{1, 0, 0}
	if math32.Abs(n.X()) > 0.9 {
		ref = mgl32.Vec3{0, 1, 0}
	}

	t1 := SafeNormalize(n.Cross(ref))
	t2 := n.Cross(t1)
	return t1, t2
}

// IsNormalized reports whether the vector has unit length within tolerance.
func IsNormalized(v mgl32.Vec3) bool {
	return math32.Abs(v.Len()-1) <= 1e-3
}
