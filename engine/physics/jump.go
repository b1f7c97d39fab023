package physics

import (
	"github.com/memmaker/ridgeline/engine/util"
)

// minSlopeForBoost is the slope angle below which a jump gets no slope
// contribution, in degrees.
const minSlopeForBoost = 1.0

// RegisterJumpPress records a jump request. The request stays valid for the
// buffer window and is consumed by PerformJump.
func RegisterJumpPress(state *KinematicState) {
	state.TimeSinceJumpPressed = 0
}

// UpdateTimers advances the coyote and buffer timers. Call once per tick
// after IntegrateMovement so the grounded flag is current.
func UpdateTimers(state *KinematicState, dt float64) {
	if state.Grounded {
		state.TimeSinceGrounded = 0
	} else {
		state.TimeSinceGrounded += dt
	}
	state.TimeSinceJumpPressed += dt
}

// CanConsumeJump is the single gate for jump execution: a recent enough
// press (buffering) meeting recent enough ground contact (coyote time).
func CanConsumeJump(state *KinematicState, coyoteTime, jumpBufferTime float64) bool {
	recentlyGrounded := state.Grounded || state.TimeSinceGrounded <= coyoteTime
	return recentlyGrounded && state.TimeSinceJumpPressed <= jumpBufferTime
}

// PerformJump sets the vertical velocity to exactly reach jumpHeight under
// the given gravity, adds the slope contribution (uphill jumps gain height,
// downhill jumps gain horizontal carry), and latches the press so the same
// request cannot be consumed twice.
func PerformJump(state *KinematicState, jumpHeight, gravity float32) {
	vy := util.Sqrt(2 * util.Abs(gravity) * jumpHeight)

	if state.Grounded && state.SlopeAngle > minSlopeForBoost {
		boost := slopeJumpBoost(state)
		if boost > 0 {
			vy += boost
		} else if boost < 0 {
			// downhill: keep the apex, convert the slope into extra carry
			horizSpeed := util.HorizontalLen(state.Velocity)
			if horizSpeed > velocityEpsilon {
				carry := 1 + (-boost)/horizSpeed*0.5
				state.Velocity[0] *= carry
				state.Velocity[2] *= carry
			}
		}
	}

	state.Velocity[1] = vy
	state.Grounded = false
	state.TimeSinceJumpPressed = jumpPressLatched
	sanitizeVelocity(state)
}

// CutJump applies the variable-height cutoff: while still ascending, the
// upward speed is multiplied by the cutoff ratio. The caller decides when to
// invoke this (on jump release) and must only do so once per jump.
func CutJump(state *KinematicState, cutoffRatio float32) {
	if state.Velocity.Y() > 0 {
		state.Velocity[1] *= cutoffRatio
	}
}

// JumpVelocityForHeight is the closed-form launch speed for reaching height
// under constant gravity.
func JumpVelocityForHeight(height, gravity float32) float32 {
	return util.Sqrt(2 * util.Abs(gravity) * height)
}
