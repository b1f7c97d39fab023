package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// jumpPressLatched parks a consumed or never-made jump request far outside
// any sane buffer window, so it cannot be consumed (again).
const jumpPressLatched = 999.0

var upVector = mgl32.Vec3{0, 1, 0}

// KinematicState is the per-entity physics record. It is exclusively owned
// by its entity and only mutated through that entity's own update call, so
// no locking is needed between entities.
type KinematicState struct {
	Velocity mgl32.Vec3 // world units per second

	// Grounded is true only for ticks on which a ground hit was confirmed.
	Grounded bool
	// Sliding is true while the surface below is steeper than walkable.
	Sliding bool

	// TimeSinceGrounded drives coyote time, TimeSinceJumpPressed drives jump
	// buffering. Both count up in seconds.
	TimeSinceGrounded    float64
	TimeSinceJumpPressed float64

	// SurfaceNormal is the unit normal of the last confirmed ground hit.
	// Reset to straight up while airborne.
	SurfaceNormal mgl32.Vec3
	// SlopeAngle is the angle between SurfaceNormal and up, in degrees.
	SlopeAngle float32
}

// NewKinematicState returns an airborne state with both timers latched, so
// a freshly spawned entity can neither coyote-jump nor consume a stale press.
func NewKinematicState() *KinematicState {
	return &KinematicState{
		TimeSinceGrounded:    jumpPressLatched,
		TimeSinceJumpPressed: jumpPressLatched,
		SurfaceNormal:        upVector,
	}
}

// sanitizeVelocity clamps non-finite components to zero. A frame-time spike
// can blow up the integration; we absorb that instead of propagating it.
func sanitizeVelocity(state *KinematicState) {
	for i := 0; i < 3; i++ {
		if !util.IsFinite(state.Velocity[i]) {
			util.LogPhysicsWarning(fmt.Sprintf("[Kinematic] zeroed non-finite velocity component %d", i))
			state.Velocity[i] = 0
		}
	}
}
