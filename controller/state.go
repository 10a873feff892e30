package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/stride/physics"
)

// BodyState is the authoritative pose and velocity of the controlled body,
// read from the physics engine at the start of every tick. The resolver
// never mutates the body directly; it only requests impulses.
type BodyState struct {
	Entity physics.Entity

	Position mgl32.Vec3
	Rotation mgl32.Quat

	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3

	Mass physics.MassProperties
}

// JumpRuntime is the mutable half of the jump state machine.
type JumpRuntime struct {
	// Remaining airborne charges. Never exceeds JumpSpec.Charges.
	Remaining int

	// Timer runs while a jump's sustained phase is active.
	Timer float32
	// BufferTimer runs after an airborne press, firing the jump on landing.
	BufferTimer float32
	// CoyoteTimer runs after leaving the ground; a jump within it counts as
	// grounded.
	CoyoteTimer float32
	// CooldownTimer blocks refiring right after a launch.
	CooldownTimer float32

	// PressedLast is whether the jump control was held last tick, used for
	// rising-edge detection.
	PressedLast bool

	// GroundJumpFired marks that a grounded or coyote jump happened since
	// the last landing, unlocking airborne charges when
	// JumpSpec.RequireGroundFirst is set.
	GroundJumpFired bool
}

// State is the persistent per-entity controller state. The caller owns it
// and passes it back every tick; bodies are independent, so multiple states
// may be resolved in parallel.
type State struct {
	Config Config

	// Ground holds the current/last-known ground cast.
	Ground GroundCache
	// Grounded is the velocity-tolerant grounded classification for the
	// current tick.
	Grounded bool

	// SkipGroundTimer suppresses ground casting after a launch. Force-reset
	// to zero the moment the body touches anything.
	SkipGroundTimer float32

	// LastGoalVelocity smooths the movement goal across ticks.
	LastGoalVelocity mgl32.Vec3

	Jump JumpRuntime

	filter *physics.Filter

	// manifolds is per-tick scratch for contact queries, kept here so
	// resolving one body never shares buffers with another.
	manifolds []physics.Manifold
}

// NewState returns controller state for the given body and configuration.
// The configuration is validated with clamps applied; invariant violations
// are warned on log, which may be nil.
func NewState(cfg Config, body physics.Entity, log *logrus.Logger) *State {
	cfg.Validate(log)
	s := &State{Config: cfg}
	s.filter = physics.NewFilter(body)
	for _, e := range cfg.GroundCaster.Exclude {
		s.filter.Exclude(e)
	}
	s.Jump.Remaining = cfg.Jump.Charges
	return s
}

// Filter returns the cast filter, excluding the controlled body and any
// configured extra entities.
func (s *State) Filter() *physics.Filter {
	return s.filter
}
