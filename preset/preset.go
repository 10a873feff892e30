// Package preset ships ready-made controller tunings and YAML load/save for
// them, so games can keep feel tweaks in data files.
package preset

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/driftmark/stride/controller"
)

// Character is a standard walking character. Works for most first and third
// person games.
func Character() controller.Config {
	cfg := controller.DefaultConfig()
	// Realistic gravity feels floaty; games usually want more pull.
	cfg.Gravity.Acceleration = -25
	return cfg
}

// Starship can accelerate in any direction and ignores ground entirely: the
// cast is disabled and movement keeps authority on every axis.
func Starship() controller.Config {
	cfg := controller.DefaultConfig()
	cfg.Movement.Acceleration = 0.3
	cfg.Movement.MaxSpeed = 100
	cfg.Movement.ForceScale = mgl32.Vec3{1, 1, 1}
	cfg.Gravity.Acceleration = 0
	cfg.GroundCaster.SkipOverride = true
	return cfg
}

// Load reads a controller config from a YAML file. Fields absent from the
// file keep their defaults.
func Load(path string) (controller.Config, error) {
	cfg := controller.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode preset: %w", err)
	}
	return cfg, nil
}

// Save writes a controller config as YAML.
func Save(path string, cfg controller.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}
