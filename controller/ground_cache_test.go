package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGroundCacheGrace(t *testing.T) {
	var c GroundCache

	viable := GroundSample{Entity: 7, Point: mgl32.Vec3{0, 1, 0}, Viable: true, Stable: true}
	c.Update(viable, true)
	if !c.Touching() || c.Phase() != GroundCurrent {
		t.Fatalf("viable hit should confirm ground, phase %v", c.Phase())
	}
	if _, ok := c.Viable(); !ok {
		t.Fatalf("confirmed ground should be viable")
	}

	// One missed cast demotes without dropping the sample.
	c.Update(GroundSample{}, false)
	if c.Touching() {
		t.Fatalf("missed cast must not report touching")
	}
	if c.Phase() != GroundLast {
		t.Fatalf("missed cast should archive the ground, phase %v", c.Phase())
	}
	if _, ok := c.Viable(); ok {
		t.Fatalf("archived ground is not confirmed")
	}
	last, ok := c.Last()
	if !ok || last.Entity != 7 {
		t.Fatalf("archived ground should stay readable, got %+v %v", last, ok)
	}

	// Further misses keep the archive.
	c.Update(GroundSample{}, false)
	if _, ok := c.Last(); !ok {
		t.Fatalf("repeated misses must not drop the archive")
	}

	// A non-viable hit replaces the raw sample but not the viable one.
	steep := GroundSample{Entity: 9}
	c.Update(steep, true)
	if cur, ok := c.Current(); !ok || cur.Entity != 9 {
		t.Fatalf("raw sample should track the latest cast, got %+v", cur)
	}
	if last, ok := c.Last(); !ok || last.Entity != 7 {
		t.Fatalf("non-viable hit must not overwrite the viable ground, got %+v", last)
	}

	c.Clear()
	if _, ok := c.Last(); ok || c.Phase() != GroundNone {
		t.Fatalf("clear should drop everything")
	}
}
