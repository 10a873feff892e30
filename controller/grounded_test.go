package controller

import "testing"

func TestInBand(t *testing.T) {
	const (
		minOffset = -0.3
		maxOffset = 0.05
	)
	cases := []struct {
		name       string
		offset     float32
		upVelocity float32
		want       bool
	}{
		{"at rest on target", 0, 0, true},
		{"hovering high", 0.1, 0, false},
		{"spring overshoot while rising", 0.1, 0.2, true},
		{"sunk too deep", -0.4, 0, false},
		{"sinking fast widens the band", -0.4, -0.5, true},
		{"falling through the target", 0, -5, true},
		{"launched well past the band", 0.5, 0.1, false},
	}
	for _, c := range cases {
		if got := InBand(c.offset, c.upVelocity, minOffset, maxOffset); got != c.want {
			t.Fatalf("%s: InBand(%v, %v) = %v, want %v",
				c.name, c.offset, c.upVelocity, got, c.want)
		}
	}
}
