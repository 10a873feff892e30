package preset

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yml")

	cfg := Character()
	cfg.Movement.MaxSpeed = 7.5
	cfg.Jump.Charges = 2
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Movement.MaxSpeed != 7.5 || got.Jump.Charges != 2 {
		t.Fatalf("tuned fields lost in the round trip: %+v", got)
	}
	if got.Gravity.Acceleration != cfg.Gravity.Acceleration {
		t.Fatalf("gravity: want %v, got %v", cfg.Gravity.Acceleration, got.Gravity.Acceleration)
	}
	// Shape is runtime-only and never serialized; the default survives.
	if got.GroundCaster.Shape == nil {
		t.Fatalf("loading must keep the default cast shape")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestStarshipIgnoresGround(t *testing.T) {
	cfg := Starship()
	if !cfg.GroundCaster.SkipOverride {
		t.Fatalf("starship should disable the ground cast")
	}
	if cfg.Gravity.Acceleration != 0 {
		t.Fatalf("starship should be weightless, got %v", cfg.Gravity.Acceleration)
	}
	// Full authority on every axis, unlike the walking default.
	if cfg.Movement.ForceScale.Y() != 1 {
		t.Fatalf("starship movement should keep the vertical axis, got %v",
			cfg.Movement.ForceScale)
	}
}
