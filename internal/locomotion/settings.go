package locomotion

import (
	"fmt"

	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings holds every tunable of the controller. Angles are degrees, times seconds.
type Settings struct {
	GroundMask          engine.LayerMask `yaml:"ground_mask"`
	GroundCheckDistance float32          `yaml:"ground_check_distance"`

	JumpForce     float32 `yaml:"jump_force"`
	MaxJumps      int     `yaml:"max_jumps"`
	WalkForce     float32 `yaml:"walk_force"`
	WalkSpeed     float32 `yaml:"walk_speed"`
	RunSpeed      float32 `yaml:"run_speed"`
	AirMultiplier float32 `yaml:"air_movement_multiplier"`

	MouseSensitivityX float32 `yaml:"mouse_sensitivity_x"`
	MouseSensitivityY float32 `yaml:"mouse_sensitivity_y"`

	Friction       float32 `yaml:"friction"`
	MinVelocity    float32 `yaml:"min_velocity"`
	MaxSlopeAngle  float32 `yaml:"max_slope_angle"`
	SlopeRayLength float32 `yaml:"slope_ray_length"`

	Gravity                    rl.Vector3 `yaml:"gravity"`
	GravityMultiplier          float32    `yaml:"gravity_multiplier"`
	ExtraGravity               float32    `yaml:"extra_gravity"`
	ExtraGravityTimeAfterSlope float32    `yaml:"extra_gravity_time_after_slope"`

	Debug bool `yaml:"debug"`
}

func DefaultSettings() Settings {
	return Settings{
		GroundMask:                 engine.LayerBit(0),
		GroundCheckDistance:        0.05,
		JumpForce:                  8.5,
		MaxJumps:                   1,
		WalkForce:                  50,
		WalkSpeed:                  3,
		RunSpeed:                   6,
		AirMultiplier:              0.15,
		MouseSensitivityX:          20,
		MouseSensitivityY:          20,
		Friction:                   15,
		MinVelocity:                0.5,
		MaxSlopeAngle:              45,
		SlopeRayLength:             0.5,
		Gravity:                    rl.Vector3{X: 0, Y: -9.81, Z: 0},
		GravityMultiplier:          0.9,
		ExtraGravity:               2,
		ExtraGravityTimeAfterSlope: 0.3,
	}
}

// Validate rejects settings the resolver cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.MaxJumps < 0:
		return fmt.Errorf("%w: max_jumps %d < 0", ErrInvalidSettings, s.MaxJumps)
	case s.GroundCheckDistance < 0:
		return fmt.Errorf("%w: ground_check_distance %g < 0", ErrInvalidSettings, s.GroundCheckDistance)
	case s.WalkSpeed <= 0 || s.RunSpeed <= 0:
		return fmt.Errorf("%w: walk_speed %g and run_speed %g must be positive", ErrInvalidSettings, s.WalkSpeed, s.RunSpeed)
	case s.MinVelocity < 0 || s.Friction < 0:
		return fmt.Errorf("%w: friction %g and min_velocity %g must not be negative", ErrInvalidSettings, s.Friction, s.MinVelocity)
	case s.MaxSlopeAngle < 0 || s.MaxSlopeAngle > 180:
		return fmt.Errorf("%w: max_slope_angle %g outside [0,180]", ErrInvalidSettings, s.MaxSlopeAngle)
	case s.SlopeRayLength < 0:
		return fmt.Errorf("%w: slope_ray_length %g < 0", ErrInvalidSettings, s.SlopeRayLength)
	case s.ExtraGravityTimeAfterSlope < 0:
		return fmt.Errorf("%w: extra_gravity_time_after_slope %g < 0", ErrInvalidSettings, s.ExtraGravityTimeAfterSlope)
	}
	return nil
}

// SpeedCap is the active speed limit for the sprint state.
func (s Settings) SpeedCap(sprint bool) float32 {
	if sprint {
		return s.RunSpeed
	}
	return s.WalkSpeed
}
