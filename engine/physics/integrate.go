package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// groundSnapTolerance is how far above the detected surface an entity may be
// and still be snapped down onto it.
const groundSnapTolerance = 0.01

// Body is whatever the integrator moves. Entities own their position; the
// integrator only reads and writes it through this interface.
type Body interface {
	GetPosition() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
}

// GroundChecker and WallChecker decouple the integrator from the concrete
// terrain representation. Production code wraps the raycast queries; tests
// inject fakes.
type GroundChecker interface {
	CheckGround(position mgl32.Vec3) (GroundHit, bool)
}

type WallChecker interface {
	CheckWall(position, movement mgl32.Vec3) mgl32.Vec3
}

type GroundCheckerFunc func(position mgl32.Vec3) (GroundHit, bool)

func (f GroundCheckerFunc) CheckGround(position mgl32.Vec3) (GroundHit, bool) {
	return f(position)
}

type WallCheckerFunc func(position, movement mgl32.Vec3) mgl32.Vec3

func (f WallCheckerFunc) CheckWall(position, movement mgl32.Vec3) mgl32.Vec3 {
	return f(position, movement)
}

// IntegrateMovement performs one tick of displacement and collision
// resolution:
//
//  1. wall-correct the intended horizontal displacement (before applying it,
//     so thin walls cannot be tunneled at speed),
//  2. apply the corrected horizontal displacement,
//  3. apply the vertical displacement,
//  4. ground-query the final horizontal position; snap onto a hit within
//     tolerance, zeroing downward velocity and latching grounded state.
func IntegrateMovement(body Body, state *KinematicState, dt float64, ground GroundChecker, wall WallChecker, con Constants) {
	pos := body.GetPosition()
	dt32 := float32(dt)

	movement := mgl32.Vec3{state.Velocity.X() * dt32, 0, state.Velocity.Z() * dt32}
	if wall != nil {
		movement = wall.CheckWall(pos, movement)
	}
	pos = pos.Add(movement)

	pos[1] += state.Velocity.Y() * dt32

	landed := false
	if ground != nil {
		if hit, ok := ground.CheckGround(pos); ok {
			state.SurfaceNormal = hit.Normal
			state.SlopeAngle = SlopeAngleDegrees(hit.Normal)
			if pos.Y() <= hit.Height+groundSnapTolerance && state.Velocity.Y() <= 0 {
				if !state.Grounded {
					util.LogPhysicsDebug(fmt.Sprintf("[Kinematic] landed at y=%.3f slope=%.1f", hit.Height, SlopeAngleDegrees(hit.Normal)))
				}
				pos[1] = hit.Height
				state.Velocity[1] = 0
				state.Grounded = true
				state.TimeSinceGrounded = 0
				ClassifySlope(state, con.MaxWalkableSlopeDegrees)
				landed = true
			}
		}
	}
	if !landed {
		state.Grounded = false
		state.Sliding = false
		state.SurfaceNormal = upVector
		state.SlopeAngle = 0
	}

	sanitizeVelocity(state)
	body.SetPosition(pos)
}
