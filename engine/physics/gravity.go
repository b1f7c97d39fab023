package physics

// ApplyGravity accelerates the vertical velocity by gravity*dt and clamps
// the downward speed at maxFallSpeed (a positive magnitude). Call once per
// tick before IntegrateMovement.
func ApplyGravity(state *KinematicState, dt float64, gravity, maxFallSpeed float32) {
	vy := state.Velocity.Y() + gravity*float32(dt)
	if vy < -maxFallSpeed {
		vy = -maxFallSpeed
	}
	state.Velocity[1] = vy
	sanitizeVelocity(state)
}
