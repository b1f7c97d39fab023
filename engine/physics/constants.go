package physics

import (
	"github.com/pkg/errors"
)

// Constants is the flat set of movement tunables. All values are plain
// floats so the whole set can be hot-reloaded from a YAML file at runtime.
// Units: distances in world units, speeds in units/second, accelerations in
// units/second², windows in seconds, slopes in degrees.
type Constants struct {
	// Acceleration applied toward the target velocity while grounded.
	Acceleration float32 `yaml:"acceleration"`
	// Friction decelerates toward zero when there is no input. Doubled when
	// the input opposes the current velocity.
	Friction float32 `yaml:"friction"`
	// AirControlMultiplier scales acceleration (not friction) while airborne. 0..1
	AirControlMultiplier float32 `yaml:"air_control_multiplier"`
	// BaseMoveSpeed is the max horizontal speed the intent vector maps to.
	BaseMoveSpeed float32 `yaml:"base_move_speed"`

	// WaterSpeedMultiplier scales the horizontal target velocity while submerged.
	WaterSpeedMultiplier float32 `yaml:"water_speed_multiplier"`
	// WaterDragCoefficient is the per-second multiplicative velocity decay in water.
	WaterDragCoefficient float32 `yaml:"water_drag_coefficient"`
	// WaterBuoyancy is the upward acceleration while submerged.
	WaterBuoyancy float32 `yaml:"water_buoyancy"`
	// SwimUpForce and SwimDownForce are the vertical swim accelerations.
	SwimUpForce   float32 `yaml:"swim_up_force"`
	SwimDownForce float32 `yaml:"swim_down_force"`

	// MaxWalkableSlopeDegrees is the steepest slope that counts as walkable.
	MaxWalkableSlopeDegrees float32 `yaml:"max_walkable_slope_degrees"`
	// SlideAcceleration pushes along the downslope direction while sliding.
	SlideAcceleration float32 `yaml:"slide_acceleration"`
	// SlideFriction replaces Friction while sliding, so momentum carries further.
	SlideFriction float32 `yaml:"slide_friction"`
	// SlideControlMultiplier scales player control while sliding. 0..1
	SlideControlMultiplier float32 `yaml:"slide_control_multiplier"`

	// Gravity is the vertical acceleration, negative meaning down.
	Gravity float32 `yaml:"gravity"`
	// MaxFallSpeed is the magnitude cap on downward speed.
	MaxFallSpeed float32 `yaml:"max_fall_speed"`

	// JumpHeight is the apex height a full jump reaches under Gravity.
	JumpHeight float32 `yaml:"jump_height"`
	// CoyoteTimeWindow still allows a jump this long after leaving the ground.
	CoyoteTimeWindow float64 `yaml:"coyote_time_window"`
	// JumpBufferWindow honors a jump press this long before landing.
	JumpBufferWindow float64 `yaml:"jump_buffer_window"`
	// VariableJumpCutoffRatio multiplies upward speed once on early release. 0..1
	VariableJumpCutoffRatio float32 `yaml:"variable_jump_cutoff_ratio"`
}

// DefaultConstants mirrors the shipped tuning.
func DefaultConstants() Constants {
	return Constants{
		Acceleration:         30.0,
		Friction:             15.0,
		AirControlMultiplier: 0.5,
		BaseMoveSpeed:        6.0,

		WaterSpeedMultiplier: 0.5,
		WaterDragCoefficient: 2.0,
		WaterBuoyancy:        14.0,
		SwimUpForce:          12.0,
		SwimDownForce:        8.0,

		MaxWalkableSlopeDegrees: 45.0,
		SlideAcceleration:       15.0,
		SlideFriction:           5.0,
		SlideControlMultiplier:  0.3,

		Gravity:      -20.0,
		MaxFallSpeed: 20.0,

		JumpHeight:              1.2,
		CoyoteTimeWindow:        0.15,
		JumpBufferWindow:        0.15,
		VariableJumpCutoffRatio: 0.55,
	}
}

// Validate rejects configurations the integrator cannot run with. Everything
// else is tuning and allowed.
func (c Constants) Validate() error {
	if c.Gravity >= 0 {
		return errors.Errorf("gravity must be negative (down), got %f", c.Gravity)
	}
	if c.MaxFallSpeed <= 0 {
		return errors.Errorf("max_fall_speed must be a positive magnitude, got %f", c.MaxFallSpeed)
	}
	if c.Acceleration < 0 || c.Friction < 0 || c.SlideAcceleration < 0 || c.SlideFriction < 0 {
		return errors.New("accelerations and frictions must be non-negative")
	}
	if c.AirControlMultiplier < 0 || c.AirControlMultiplier > 1 {
		return errors.Errorf("air_control_multiplier must be in [0,1], got %f", c.AirControlMultiplier)
	}
	if c.SlideControlMultiplier < 0 || c.SlideControlMultiplier > 1 {
		return errors.Errorf("slide_control_multiplier must be in [0,1], got %f", c.SlideControlMultiplier)
	}
	if c.BaseMoveSpeed < 0 {
		return errors.Errorf("base_move_speed must be non-negative, got %f", c.BaseMoveSpeed)
	}
	if c.MaxWalkableSlopeDegrees < 0 || c.MaxWalkableSlopeDegrees > 90 {
		return errors.Errorf("max_walkable_slope_degrees must be in [0,90], got %f", c.MaxWalkableSlopeDegrees)
	}
	if c.JumpHeight < 0 {
		return errors.Errorf("jump_height must be non-negative, got %f", c.JumpHeight)
	}
	if c.CoyoteTimeWindow < 0 || c.JumpBufferWindow < 0 {
		return errors.New("coyote_time_window and jump_buffer_window must be non-negative")
	}
	if c.VariableJumpCutoffRatio <= 0 || c.VariableJumpCutoffRatio > 1 {
		return errors.Errorf("variable_jump_cutoff_ratio must be in (0,1], got %f", c.VariableJumpCutoffRatio)
	}
	if c.WaterSpeedMultiplier < 0 || c.WaterSpeedMultiplier > 1 {
		return errors.Errorf("water_speed_multiplier must be in [0,1], got %f", c.WaterSpeedMultiplier)
	}
	if c.WaterDragCoefficient < 0 {
		return errors.Errorf("water_drag_coefficient must be non-negative, got %f", c.WaterDragCoefficient)
	}
	return nil
}
