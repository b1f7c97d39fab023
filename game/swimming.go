package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/physics"
)

// Swimming runs the submerged tick. Vertical input becomes swim intent and
// the buffered-jump path is skipped entirely; surfacing hands control back
// to GroundMovement with the same state.
type Swimming struct {
	con    physics.Constants
	ground physics.GroundChecker
	wall   physics.WallChecker
}

func NewSwimming(con physics.Constants, terrain physics.RayCaster) *Swimming {
	return &Swimming{
		con: con,
		ground: physics.GroundCheckerFunc(func(position mgl32.Vec3) (physics.GroundHit, bool) {
			return physics.RaycastGroundHeight(position, terrain,
				physics.GroundRayMaxDistance, physics.GroundRayOriginOffset, physics.FootOffset)
		}),
		wall: physics.WallCheckerFunc(func(position, movement mgl32.Vec3) mgl32.Vec3 {
			return physics.RaycastWallCheck(position, movement, terrain,
				physics.WallRayHeight, physics.WallRayBuffer, physics.WallSlideFactor)
		}),
	}
}

func (s *Swimming) SetConstants(con physics.Constants) {
	s.con = con
}

func (s *Swimming) Update(body *MovingBody, intent MovementIntent, dt float64) {
	state := body.State
	con := s.con

	target := physics.ScaleTargetForWater(intent.Direction.Mul(con.BaseMoveSpeed), intent.Submersion, con)
	physics.ApplyHorizontalAcceleration(state, target, dt, con)

	physics.ApplyBuoyancy(state, dt, con)
	physics.ApplyGravity(state, dt, con.Gravity, con.MaxFallSpeed)
	physics.ApplySwimIntent(state, intent.SwimUp, intent.SwimDown, dt, con)
	physics.ApplyWaterDrag(state, dt, con)

	physics.IntegrateMovement(body, state, dt, s.ground, s.wall, con)
	physics.UpdateTimers(state, dt)
}
