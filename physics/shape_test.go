package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSphereSupport(t *testing.T) {
	s := Sphere{Radius: 0.45}
	if got := s.Support(mgl32.Vec3{0, -1, 0}); got != 0.45 {
		t.Fatalf("sphere support should be radius, got %v", got)
	}
}

func TestCapsuleSupport(t *testing.T) {
	c := Capsule{Radius: 0.3, HalfHeight: 0.5}
	if got := c.Support(mgl32.Vec3{0, -1, 0}); math32.Abs(got-0.8) > 1e-5 {
		t.Fatalf("capsule vertical support: want 0.8, got %v", got)
	}
	if got := c.Support(mgl32.Vec3{1, 0, 0}); math32.Abs(got-0.3) > 1e-5 {
		t.Fatalf("capsule lateral support: want 0.3, got %v", got)
	}
}

func TestBoxSupport(t *testing.T) {
	b := Box{HalfExtents: mgl32.Vec3{0.5, 1, 0.5}}
	if got := b.Support(mgl32.Vec3{0, -1, 0}); math32.Abs(got-1) > 1e-5 {
		t.Fatalf("box vertical support: want 1, got %v", got)
	}
}

func TestFilterExcluded(t *testing.T) {
	f := NewFilter(3)
	f.Exclude(7)

	if !f.Excluded(3) || !f.Excluded(7) {
		t.Fatalf("expected 3 and 7 excluded")
	}
	if f.Excluded(5) {
		t.Fatalf("5 should not be excluded")
	}

	var nilFilter *Filter
	if nilFilter.Excluded(3) {
		t.Fatalf("nil filter should exclude nothing")
	}

	got := f.Excludes()
	if len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Fatalf("expected insertion order [3 7], got %v", got)
	}
}
