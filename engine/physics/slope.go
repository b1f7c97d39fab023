package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// slopeAngleEpsilon keeps a surface built at exactly the walkable threshold
// walkable despite float rounding in the normal.
const slopeAngleEpsilon = 0.01

// SlopeAngleDegrees returns the angle between a surface normal and straight
// up: 0 for flat ground, 90 for a vertical wall.
func SlopeAngleDegrees(normal mgl32.Vec3) float32 {
	ny := util.Clamp(float64(normal.Y()), -1, 1)
	return util.ToDegree(float32(math.Acos(ny)))
}

// DownslopeDirection is the horizontal direction of steepest descent, or the
// zero vector on flat ground.
func DownslopeDirection(normal mgl32.Vec3) mgl32.Vec3 {
	down := mgl32.Vec3{-normal.X(), 0, -normal.Z()}
	if down.Len() < velocityEpsilon {
		return mgl32.Vec3{}
	}
	return down.Normalize()
}

// ProjectOntoSlope removes the velocity component perpendicular to the
// surface, keeping only motion parallel to it.
func ProjectOntoSlope(velocity, normal mgl32.Vec3) mgl32.Vec3 {
	return velocity.Sub(normal.Mul(velocity.Dot(normal)))
}

// ClassifySlope updates Sliding from the stored surface normal. A surface at
// exactly the walkable threshold still counts as walkable.
func ClassifySlope(state *KinematicState, maxWalkableSlopeDegrees float32) {
	state.SlopeAngle = SlopeAngleDegrees(state.SurfaceNormal)
	state.Sliding = state.SlopeAngle > maxWalkableSlopeDegrees+slopeAngleEpsilon
}

// ApplySlopeForces accelerates a sliding entity along the downslope
// direction and bleeds speed with the slide friction. No-op unless sliding.
func ApplySlopeForces(state *KinematicState, dt float64, con Constants) {
	if !state.Sliding {
		return
	}
	downslope := DownslopeDirection(state.SurfaceNormal)
	state.Velocity[0] += downslope.X() * con.SlideAcceleration * float32(dt)
	state.Velocity[2] += downslope.Z() * con.SlideAcceleration * float32(dt)

	horizontal := mgl32.Vec3{state.Velocity.X(), 0, state.Velocity.Z()}
	speed := horizontal.Len()
	if speed > velocityEpsilon {
		newSpeed := util.Max(0, speed-con.SlideFriction*float32(dt))
		factor := newSpeed / speed
		state.Velocity[0] *= factor
		state.Velocity[2] *= factor
	}
	sanitizeVelocity(state)
}

// slopeJumpBoost derives the slope contribution for a jump from the stored
// surface normal and the current horizontal velocity. Positive means moving
// uphill (extra height), negative means moving downhill (extra carry).
func slopeJumpBoost(state *KinematicState) float32 {
	normal := state.SurfaceNormal
	if util.Abs(normal.Y()) < velocityEpsilon {
		return 0 // nearly vertical surface, no usable slope
	}
	horizSpeed := util.HorizontalLen(state.Velocity)
	if horizSpeed < velocityEpsilon {
		return 0
	}
	moveDir := mgl32.Vec3{state.Velocity.X() / horizSpeed, 0, state.Velocity.Z() / horizSpeed}
	downslope := DownslopeDirection(normal)
	// tan(slope angle) from the normal
	slopeFactor := util.HorizontalLen(normal) / normal.Y()
	// uphill when moving against the downslope direction
	return -moveDir.Dot(downslope) * horizSpeed * slopeFactor * 0.5
}
