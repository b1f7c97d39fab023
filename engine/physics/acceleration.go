package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

const velocityEpsilon = 0.001

// ApplyHorizontalAcceleration moves the horizontal velocity toward target
// (a world-space XZ velocity, already scaled to the desired speed).
//
// Acceleration is used while the input pushes with or across the current
// velocity; friction is used when there is no input. When the input opposes
// the current velocity the deceleration is boosted to twice the friction for
// snappier direction changes. Airborne entities steer with acceleration
// scaled by the air control multiplier; sliding entities get reduced control
// and the lower slide friction.
func ApplyHorizontalAcceleration(state *KinematicState, target mgl32.Vec3, dt float64, con Constants) {
	horizontal := mgl32.Vec3{state.Velocity.X(), 0, state.Velocity.Z()}
	target[1] = 0

	accel := con.Acceleration
	friction := con.Friction
	if state.Sliding {
		accel *= con.SlideControlMultiplier
		friction = con.SlideFriction
	}
	if !state.Grounded {
		accel *= con.AirControlMultiplier
	}

	if target.Len() <= velocityEpsilon {
		// no input, friction toward zero
		speed := horizontal.Len()
		if speed > velocityEpsilon {
			newSpeed := util.Max(0, speed-friction*float32(dt))
			horizontal = horizontal.Mul(newSpeed / speed)
		} else {
			horizontal = mgl32.Vec3{}
		}
	} else {
		rate := accel
		if horizontal.Dot(target) < 0 {
			// turning around, boosted deceleration
			rate = util.Max(rate, friction*2)
		}
		delta := target.Sub(horizontal)
		dist := delta.Len()
		step := rate * float32(dt)
		if step >= dist {
			horizontal = target
		} else {
			horizontal = horizontal.Add(delta.Mul(step / dist))
		}
	}

	state.Velocity[0] = horizontal.X()
	state.Velocity[2] = horizontal.Z()
	sanitizeVelocity(state)
}
