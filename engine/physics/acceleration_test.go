package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAccelerationRampsTowardTarget(t *testing.T) {
	con := DefaultConstants() // acceleration 30
	state := NewKinematicState()
	state.Grounded = true

	ApplyHorizontalAcceleration(state, mgl32.Vec3{6, 0, 0}, 0.1, con)
	if math.Abs(float64(state.Velocity.X())-3.0) > 0.001 {
		t.Errorf("expected 3.0 after one tick of 30u/s² over 0.1s, got %f", state.Velocity.X())
	}

	// target reached without overshoot
	for i := 0; i < 10; i++ {
		ApplyHorizontalAcceleration(state, mgl32.Vec3{6, 0, 0}, 0.1, con)
	}
	if math.Abs(float64(state.Velocity.X())-6.0) > 0.001 {
		t.Errorf("expected exactly the target speed, got %f", state.Velocity.X())
	}
}

func TestFrictionDeceleratesToZeroWithoutInput(t *testing.T) {
	con := DefaultConstants() // friction 15
	state := NewKinematicState()
	state.Grounded = true
	state.Velocity = mgl32.Vec3{6, 0, 0}

	ApplyHorizontalAcceleration(state, mgl32.Vec3{}, 0.1, con)
	if math.Abs(float64(state.Velocity.X())-4.5) > 0.001 {
		t.Errorf("expected 4.5 after one friction tick, got %f", state.Velocity.X())
	}
	for i := 0; i < 10; i++ {
		ApplyHorizontalAcceleration(state, mgl32.Vec3{}, 0.1, con)
	}
	if state.Velocity.X() != 0 {
		t.Errorf("friction must settle at exactly zero, got %f", state.Velocity.X())
	}
}

func TestDirectionReversalUsesBoostedDeceleration(t *testing.T) {
	con := DefaultConstants()
	con.Acceleration = 10
	con.Friction = 15

	state := NewKinematicState()
	state.Grounded = true
	state.Velocity = mgl32.Vec3{6, 0, 0}

	// opposing input decelerates at 2x friction (30), not at the lower accel (10)
	ApplyHorizontalAcceleration(state, mgl32.Vec3{-6, 0, 0}, 0.1, con)
	if math.Abs(float64(state.Velocity.X())-3.0) > 0.001 {
		t.Errorf("expected boosted deceleration to 3.0, got %f", state.Velocity.X())
	}
}

func TestAirControlScalesAccelerationOnly(t *testing.T) {
	con := DefaultConstants() // air control 0.5
	grounded := NewKinematicState()
	grounded.Grounded = true
	airborne := NewKinematicState()
	airborne.Grounded = false

	ApplyHorizontalAcceleration(grounded, mgl32.Vec3{6, 0, 0}, 0.1, con)
	ApplyHorizontalAcceleration(airborne, mgl32.Vec3{6, 0, 0}, 0.1, con)
	if math.Abs(float64(airborne.Velocity.X())*2-float64(grounded.Velocity.X())) > 0.001 {
		t.Errorf("airborne acceleration should be half of grounded: %f vs %f",
			airborne.Velocity.X(), grounded.Velocity.X())
	}

	// friction without input is NOT reduced in the air
	coasting := NewKinematicState()
	coasting.Grounded = false
	coasting.Velocity = mgl32.Vec3{6, 0, 0}
	ApplyHorizontalAcceleration(coasting, mgl32.Vec3{}, 0.1, con)
	if math.Abs(float64(coasting.Velocity.X())-4.5) > 0.001 {
		t.Errorf("air friction must match ground friction, got %f", coasting.Velocity.X())
	}
}

func TestSlidingReducesControl(t *testing.T) {
	con := DefaultConstants() // slide control 0.3
	sliding := NewKinematicState()
	sliding.Grounded = true
	sliding.Sliding = true
	normal := NewKinematicState()
	normal.Grounded = true

	ApplyHorizontalAcceleration(sliding, mgl32.Vec3{6, 0, 0}, 0.1, con)
	ApplyHorizontalAcceleration(normal, mgl32.Vec3{6, 0, 0}, 0.1, con)
	if sliding.Velocity.X() >= normal.Velocity.X() {
		t.Errorf("sliding control must be weaker: %f vs %f", sliding.Velocity.X(), normal.Velocity.X())
	}
}
