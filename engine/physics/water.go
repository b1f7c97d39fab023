package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// Water interaction primitives. The water collaborator decides whether an
// entity is submerged (position below the water surface); these functions
// adjust the same kinematic state the dry-land primitives work on. While
// submerged the buffered-jump path is bypassed entirely: vertical input is
// swim intent, not a jump request.

// ScaleTargetForWater reduces the horizontal target velocity before the
// acceleration model runs. submersion is 0..1; anything above half counts
// as fully submerged, a partial dip keeps more speed.
func ScaleTargetForWater(target mgl32.Vec3, submersion float32, con Constants) mgl32.Vec3 {
	if submersion <= 0 {
		return target
	}
	multiplier := con.WaterSpeedMultiplier
	if submersion <= 0.5 {
		multiplier = util.Mix(1.0, con.WaterSpeedMultiplier, submersion*2)
	}
	return target.Mul(multiplier)
}

// ApplyBuoyancy adds the upward water acceleration. Call before ApplyGravity
// so the two oppose each other within the same tick.
func ApplyBuoyancy(state *KinematicState, dt float64, con Constants) {
	state.Velocity[1] += con.WaterBuoyancy * float32(dt)
}

// ApplySwimIntent converts vertical input into swim acceleration.
func ApplySwimIntent(state *KinematicState, swimUp, swimDown bool, dt float64, con Constants) {
	if swimUp {
		state.Velocity[1] += con.SwimUpForce * float32(dt)
	}
	if swimDown {
		state.Velocity[1] -= con.SwimDownForce * float32(dt)
	}
}

// ApplyWaterDrag decays every velocity component multiplicatively. The decay
// factor is clamped at zero so an extreme dt cannot flip the velocity sign.
func ApplyWaterDrag(state *KinematicState, dt float64, con Constants) {
	factor := 1 - con.WaterDragCoefficient*float32(dt)
	if factor < 0 {
		factor = 0
	}
	state.Velocity = state.Velocity.Mul(factor)
	sanitizeVelocity(state)
}
