package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/physics"
)

// MovementIntent is the resolved input for one tick: a world-space movement
// direction plus the jump and swim signals. Producing it from raw input is
// the input collaborator's job.
type MovementIntent struct {
	// Direction is the desired horizontal movement direction, length 0..1.
	Direction mgl32.Vec3
	// JumpPressed is the press edge event, JumpHeld the level signal used
	// for variable jump height.
	JumpPressed bool
	JumpHeld    bool

	// Submersion is 0 on land, 1 fully underwater.
	Submersion float32
	SwimUp     bool
	SwimDown   bool
}

func (i MovementIntent) Submerged() bool {
	return i.Submersion > 0.5
}

// GroundMovement runs the standard ground tick for one body: acceleration,
// jump handling with buffering and coyote time, slope forces, collision
// integration and the physics timers.
type GroundMovement struct {
	con    physics.Constants
	ground physics.GroundChecker
	wall   physics.WallChecker

	jumpCutDone bool
}

func NewGroundMovement(con physics.Constants, terrain physics.RayCaster) *GroundMovement {
	return &GroundMovement{
		con: con,
		ground: physics.GroundCheckerFunc(func(position mgl32.Vec3) (physics.GroundHit, bool) {
			return physics.RaycastGroundHeight(position, terrain,
				physics.GroundRayMaxDistance, physics.GroundRayOriginOffset, physics.FootOffset)
		}),
		wall: physics.WallCheckerFunc(func(position, movement mgl32.Vec3) mgl32.Vec3 {
			return physics.RaycastWallCheck(position, movement, terrain,
				physics.WallRayHeight, physics.WallRayBuffer, physics.WallSlideFactor)
		}),
		jumpCutDone: true,
	}
}

// SetConstants swaps in a hot-reloaded tunables set.
func (g *GroundMovement) SetConstants(con physics.Constants) {
	g.con = con
}

func (g *GroundMovement) Constants() physics.Constants {
	return g.con
}

func (g *GroundMovement) Update(body *MovingBody, intent MovementIntent, dt float64) {
	state := body.State
	con := g.con

	target := intent.Direction.Mul(con.BaseMoveSpeed)
	physics.ApplyHorizontalAcceleration(state, target, dt, con)

	if intent.JumpPressed {
		physics.RegisterJumpPress(state)
	}

	physics.ApplyGravity(state, dt, con.Gravity, con.MaxFallSpeed)
	physics.ApplySlopeForces(state, dt, con)

	if physics.CanConsumeJump(state, con.CoyoteTimeWindow, con.JumpBufferWindow) {
		physics.PerformJump(state, con.JumpHeight, con.Gravity)
		g.jumpCutDone = false
	}
	// early release while still ascending shortens the jump, once
	if !g.jumpCutDone && !intent.JumpHeld && state.Velocity.Y() > 0 {
		physics.CutJump(state, con.VariableJumpCutoffRatio)
		g.jumpCutDone = true
	}

	physics.IntegrateMovement(body, state, dt, g.ground, g.wall, con)
	physics.UpdateTimers(state, dt)
}
