package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/stride/physics"
	"github.com/driftmark/stride/vmath"
)

// GravitySpec defines the up direction and how hard the controller is pulled
// against it.
type GravitySpec struct {
	// UpVector is the world up direction. Expected to be normalized; a
	// non-unit vector is warned about and used as-is.
	UpVector mgl32.Vec3 `yaml:"up_vector"`
	// Acceleration along the up vector, so a downward pull is negative. The
	// default of -9.817 is realistic but tends to feel floaty in games.
	Acceleration float32 `yaml:"acceleration"`
}

// GroundCasterConfig controls how the ground beneath the controller is
// detected.
type GroundCasterConfig struct {
	// CastOrigin offsets the cast start from the body origin.
	CastOrigin mgl32.Vec3 `yaml:"cast_origin"`
	// CastLength is how far below the body to look for ground. Too long and
	// the controller counts as grounded on ledges; too short and it flickers
	// off the ground on bumps.
	CastLength float32 `yaml:"cast_length"`
	// Shape swept toward the ground. Defaults to a small sphere; most games
	// pass the body's own collision shape.
	Shape physics.Shape `yaml:"-"`
	// Exclude lists entities ignored by ground casts, on top of the
	// controlled body itself.
	Exclude []physics.Entity `yaml:"-"`
	// StableAngle is the normal-to-up angle in radians past which the
	// controller slips on the surface but is still grounded.
	StableAngle float32 `yaml:"stable_angle"`
	// ViableAngle is the angle past which a surface no longer counts as
	// ground at all. Must be >= StableAngle.
	ViableAngle float32 `yaml:"viable_angle"`
	// SkipOverride disables ground casting entirely while set.
	SkipOverride bool `yaml:"skip_override"`
}

// FloatSpec tunes the hovering suspension.
type FloatSpec struct {
	// Distance is the target hover gap between body origin and ground.
	Distance float32 `yaml:"distance"`
	// MinOffset and MaxOffset bound how far below/above the target distance
	// the body may drift while still counting as grounded.
	MinOffset float32 `yaml:"min_offset"`
	MaxOffset float32 `yaml:"max_offset"`
	// Spring pushes the body toward the target distance.
	Spring vmath.Spring `yaml:"spring"`
}

// MovementSpec tunes directional movement.
type MovementSpec struct {
	// Acceleration is how fast the goal velocity approaches the input goal.
	Acceleration float32 `yaml:"acceleration"`
	// MaxSpeed is the speed the controller works toward.
	MaxSpeed float32 `yaml:"max_speed"`
	// MaxAccelForce caps the per-tick velocity correction so the controller
	// cannot snap to the goal instantly.
	MaxAccelForce float32 `yaml:"max_accel_force"`
	// ForceScale scales the movement impulse per axis. Setting the up axis
	// to 0 keeps movement from fighting the float spring.
	ForceScale mgl32.Vec3 `yaml:"force_scale"`
	// SlipFactor in [0, 1] is how much movement authority remains on ground
	// too steep to stand on. 0 slides fully, 1 climbs anything.
	SlipFactor float32 `yaml:"slip_factor"`
}

// DecayCurve names the easing applied to the sustained jump force over the
// jump's duration.
type DecayCurve uint8

const (
	// DecayNone applies the sustained force unmodified.
	DecayNone DecayCurve = iota
	// DecayLinear fades linearly to zero.
	DecayLinear
	// DecaySqrt fades as sqrt(1-progress), front-loading the boost.
	DecaySqrt
	// DecaySmooth fades with a smoothstep.
	DecaySmooth
)

// Eval returns the force multiplier for progress in [0, 1].
func (d DecayCurve) Eval(progress float32) float32 {
	p := vmath.Clamp32(progress, 0, 1)
	switch d {
	case DecayLinear:
		return 1 - p
	case DecaySqrt:
		return math32.Sqrt(1 - p)
	case DecaySmooth:
		r := 1 - p
		return r * r * (3 - 2*r)
	default:
		return 1
	}
}

// JumpSpec tunes buffered, coyote-time, multi-charge, variable-height
// jumping.
type JumpSpec struct {
	// InitialForce is the launch impulse along up.
	InitialForce float32 `yaml:"initial_force"`
	// Force is the sustained upward force applied per second while the jump
	// control is held and the jump timer runs.
	Force float32 `yaml:"force"`
	// StopForce scales the downward impulse applied when the control is
	// released early, cutting the jump short for variable height.
	StopForce float32 `yaml:"stop_force"`
	// Duration is how long the sustained force can last.
	Duration float32 `yaml:"duration"`
	// Decay eases the sustained force over the duration.
	Decay DecayCurve `yaml:"decay"`
	// BufferDuration is how early before landing a press still fires on the
	// landing tick.
	BufferDuration float32 `yaml:"buffer_duration"`
	// CoyoteDuration is the grace period after leaving ground during which
	// a jump still counts as grounded.
	CoyoteDuration float32 `yaml:"coyote_duration"`
	// SkipGroundCheckDuration suppresses ground casting right after launch
	// so the cast does not immediately re-ground the controller.
	SkipGroundCheckDuration float32 `yaml:"skip_ground_check_duration"`
	// CooldownDuration blocks re-firing for a short window after a launch.
	CooldownDuration float32 `yaml:"cooldown_duration"`
	// Charges is how many airborne jumps are available. 1 corresponds to a
	// double jump counting the grounded one.
	Charges int `yaml:"charges"`
	// RequireGroundFirst locks airborne charges until a grounded or coyote
	// jump has fired since the last landing.
	RequireGroundFirst bool `yaml:"require_ground_first"`
}

// UprightSpec tunes the torque spring keeping the body upright.
type UprightSpec struct {
	Spring vmath.Spring `yaml:"spring"`
	// Forward, when non-zero, is the world direction the body should face.
	// Must be perpendicular to the up vector. Zero disables facing control
	// and only rights the body.
	Forward mgl32.Vec3 `yaml:"forward"`
}

// ForceSettings controls the equal-and-opposite reaction applied to the
// ground body. Both scales default to 0, disabling the feature.
type ForceSettings struct {
	// PushReactionScale scales the reaction to float and jump forces.
	PushReactionScale float32 `yaml:"push_reaction_scale"`
	// MovementReactionScale scales the reaction to movement forces. 0 keeps
	// dynamic ground from slipping out beneath the controller's feet.
	MovementReactionScale float32 `yaml:"movement_reaction_scale"`
}

// Config aggregates every tunable of the resolver.
type Config struct {
	Gravity      GravitySpec        `yaml:"gravity"`
	GroundCaster GroundCasterConfig `yaml:"ground_caster"`
	Float        FloatSpec          `yaml:"float"`
	Movement     MovementSpec       `yaml:"movement"`
	Jump         JumpSpec           `yaml:"jump"`
	Upright      UprightSpec        `yaml:"upright"`
	Forces       ForceSettings      `yaml:"forces"`
}

// DefaultConfig returns the walking-character defaults.
func DefaultConfig() Config {
	return Config{
		Gravity: GravitySpec{
			UpVector:     mgl32.Vec3{0, 1, 0},
			Acceleration: -9.817,
		},
		GroundCaster: GroundCasterConfig{
			CastLength:  1.0,
			Shape:       physics.Sphere{Radius: 0.45},
			StableAngle: 45 * math32.Pi / 180,
			ViableAngle: 60 * math32.Pi / 180,
		},
		Float: FloatSpec{
			Distance:  0.55,
			MinOffset: -0.3,
			MaxOffset: 0.05,
			Spring:    vmath.Spring{Frequency: 10, DampingRatio: 0.8},
		},
		Movement: MovementSpec{
			Acceleration:  50,
			MaxSpeed:      10,
			MaxAccelForce: 10,
			ForceScale:    mgl32.Vec3{1, 0, 1},
			SlipFactor:    0.1,
		},
		Jump: JumpSpec{
			InitialForce:            15,
			Force:                   500,
			StopForce:               0.3,
			Duration:                0.5,
			Decay:                   DecaySqrt,
			BufferDuration:          0.16,
			CoyoteDuration:          0.16,
			SkipGroundCheckDuration: 0.5,
			Charges:                 0,
		},
		Upright: UprightSpec{
			Spring: vmath.Spring{Frequency: 10, DampingRatio: 0.5},
		},
	}
}

// Validate applies defensive clamps and warns about invariant violations.
// The configuration keeps running with the given values; nothing here is
// fatal.
func (c *Config) Validate(log *logrus.Logger) {
	if !vmath.IsNormalized(c.Gravity.UpVector) && log != nil {
		log.Warnf("gravity up vector is not normalized (len=%v)", c.Gravity.UpVector.Len())
	}
	if c.GroundCaster.StableAngle > c.GroundCaster.ViableAngle {
		if log != nil {
			log.Warnf("stable angle %v exceeds viable angle %v, clamping",
				c.GroundCaster.StableAngle, c.GroundCaster.ViableAngle)
		}
		c.GroundCaster.StableAngle = c.GroundCaster.ViableAngle
	}
	if c.GroundCaster.Shape == nil {
		c.GroundCaster.Shape = physics.Sphere{Radius: 0.45}
	}
	c.Movement.SlipFactor = vmath.Clamp32(c.Movement.SlipFactor, 0, 1)
	if c.Jump.Charges < 0 {
		c.Jump.Charges = 0
	}
	for _, d := range []*float32{
		&c.Jump.Duration, &c.Jump.BufferDuration, &c.Jump.CoyoteDuration,
		&c.Jump.SkipGroundCheckDuration, &c.Jump.CooldownDuration,
	} {
		if *d < 0 {
			*d = 0
		}
	}
}
