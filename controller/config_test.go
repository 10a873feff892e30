package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/driftmark/stride/physics"
)

func TestValidateWarnsOnBadConfig(t *testing.T) {
	log, hook := test.NewNullLogger()

	cfg := DefaultConfig()
	cfg.Gravity.UpVector = mgl32.Vec3{0, 2, 0}
	cfg.GroundCaster.StableAngle = cfg.GroundCaster.ViableAngle + 1

	cfg.Validate(log)

	if len(hook.AllEntries()) != 2 {
		t.Fatalf("expected 2 warnings, got %v", hook.AllEntries())
	}
	for _, entry := range hook.AllEntries() {
		if entry.Level != logrus.WarnLevel {
			t.Fatalf("violations must warn, not %v", entry.Level)
		}
	}
	if cfg.GroundCaster.StableAngle != cfg.GroundCaster.ViableAngle {
		t.Fatalf("stable angle should clamp to viable, got %v", cfg.GroundCaster.StableAngle)
	}
}

func TestNewStateSurfacesWarnings(t *testing.T) {
	log, hook := test.NewNullLogger()

	cfg := DefaultConfig()
	cfg.Gravity.UpVector = mgl32.Vec3{0, 0.5, 0}

	NewState(cfg, 1, log)

	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("construction should warn about the non-unit up vector, got %v",
			hook.AllEntries())
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroundCaster.Shape = nil
	cfg.Movement.SlipFactor = 2
	cfg.Jump.BufferDuration = -1
	cfg.Jump.Charges = -3

	cfg.Validate(nil)

	if _, ok := cfg.GroundCaster.Shape.(physics.Sphere); !ok {
		t.Fatalf("nil cast shape should default to a sphere, got %T", cfg.GroundCaster.Shape)
	}
	if cfg.Movement.SlipFactor != 1 {
		t.Fatalf("slip factor should clamp to 1, got %v", cfg.Movement.SlipFactor)
	}
	if cfg.Jump.BufferDuration != 0 {
		t.Fatalf("negative durations should clamp to 0, got %v", cfg.Jump.BufferDuration)
	}
	if cfg.Jump.Charges != 0 {
		t.Fatalf("negative charges should clamp to 0, got %v", cfg.Jump.Charges)
	}
}
