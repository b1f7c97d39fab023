package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/physics"
	"github.com/memmaker/ridgeline/engine/voxel"
)

const dt = 1.0 / 60.0

func flatWorld() *voxel.Map {
	return voxel.NewMap(1, 1, func(x, z int32) int32 { return 0 })
}

// a tall cliff for every column at x >= 10
func cliffWorld() *voxel.Map {
	return voxel.NewMap(1, 1, func(x, z int32) int32 {
		if x >= 10 {
			return 6
		}
		return 0
	})
}

func settle(c *Controller, body *MovingBody, ticks int) {
	for i := 0; i < ticks; i++ {
		c.Update(body, MovementIntent{}, dt)
	}
}

func TestBodyFallsAndLandsOnTerrain(t *testing.T) {
	terrain := flatWorld()
	body := NewMovingBody("walker", mgl32.Vec3{8, 3, 8})
	controller := NewController(physics.DefaultConstants(), terrain)

	settle(controller, body, 120)

	if !body.State.Grounded {
		t.Fatalf("expected the body to land within two seconds")
	}
	wantHeight := float64(physics.FootOffset)
	if math.Abs(float64(body.GetPosition().Y())-wantHeight) > 0.01 {
		t.Errorf("expected stand height %f, got %f", wantHeight, body.GetPosition().Y())
	}
	if body.State.Velocity.Y() != 0 {
		t.Errorf("grounded body must have zero vertical velocity, got %f", body.State.Velocity.Y())
	}
}

func TestHeldJumpFliesHigherThanReleasedJump(t *testing.T) {
	apexFor := func(holdJump bool) float32 {
		terrain := flatWorld()
		body := NewMovingBody("jumper", mgl32.Vec3{8, 1, 8})
		controller := NewController(physics.DefaultConstants(), terrain)
		settle(controller, body, 120)

		controller.Update(body, MovementIntent{JumpPressed: true, JumpHeld: true}, dt)
		apex := body.GetPosition().Y()
		for i := 0; i < 120; i++ {
			controller.Update(body, MovementIntent{JumpHeld: holdJump}, dt)
			if body.GetPosition().Y() > apex {
				apex = body.GetPosition().Y()
			}
		}
		return apex
	}

	heldApex := apexFor(true)
	releasedApex := apexFor(false)

	if releasedApex >= heldApex {
		t.Errorf("early release must shorten the jump: released %f vs held %f", releasedApex, heldApex)
	}
	// full jump reaches roughly stand height + jump height
	wantApex := float64(physics.FootOffset + 1.2)
	if math.Abs(float64(heldApex)-wantApex) > 0.15 {
		t.Errorf("held apex should be near %f, got %f", wantApex, heldApex)
	}
}

func TestWalkingIntoCliffStops(t *testing.T) {
	terrain := cliffWorld()
	body := NewMovingBody("runner", mgl32.Vec3{9.55, 1, 8.5})
	controller := NewController(physics.DefaultConstants(), terrain)
	settle(controller, body, 60)

	startX := body.GetPosition().X()
	for i := 0; i < 120; i++ {
		controller.Update(body, MovementIntent{Direction: mgl32.Vec3{1, 0, 0}}, dt)
	}

	if body.GetPosition().X() >= 10 {
		t.Fatalf("body must not pass through the cliff face, got x=%f", body.GetPosition().X())
	}
	if math.Abs(float64(body.GetPosition().X()-startX)) > 0.01 {
		t.Errorf("head-on movement into a wall should go nowhere, moved from %f to %f", startX, body.GetPosition().X())
	}
}

func TestWalkingIntoCliffAtAngleSlidesAlongIt(t *testing.T) {
	terrain := cliffWorld()
	body := NewMovingBody("slider", mgl32.Vec3{9.55, 1, 6})
	controller := NewController(physics.DefaultConstants(), terrain)
	settle(controller, body, 60)

	startZ := body.GetPosition().Z()
	diagonal := mgl32.Vec3{1, 0, 1}.Normalize()
	for i := 0; i < 120; i++ {
		controller.Update(body, MovementIntent{Direction: diagonal}, dt)
	}

	if body.GetPosition().X() >= 10 {
		t.Fatalf("body must not pass through the cliff face, got x=%f", body.GetPosition().X())
	}
	if body.GetPosition().Z()-startZ < 0.1 {
		t.Errorf("diagonal movement should slide along the wall, z moved only %f", body.GetPosition().Z()-startZ)
	}
}

func TestSwimmingRisesAgainstGravity(t *testing.T) {
	terrain := flatWorld()
	body := NewMovingBody("swimmer", mgl32.Vec3{8, 6, 8})
	controller := NewController(physics.DefaultConstants(), terrain)

	startY := body.GetPosition().Y()
	for i := 0; i < 60; i++ {
		controller.Update(body, MovementIntent{Submersion: 1, SwimUp: true}, dt)
	}

	if body.GetPosition().Y() <= startY {
		t.Errorf("swimming up must rise, went from %f to %f", startY, body.GetPosition().Y())
	}
	if body.State.Grounded {
		t.Errorf("a swimming body is not grounded")
	}
}

func TestSurfacingHandsBackToGroundMovement(t *testing.T) {
	terrain := flatWorld()
	body := NewMovingBody("diver", mgl32.Vec3{8, 2, 8})
	controller := NewController(physics.DefaultConstants(), terrain)

	// submerged ticks bypass the jump path entirely
	controller.Update(body, MovementIntent{Submersion: 1, JumpPressed: true}, dt)
	if body.State.TimeSinceJumpPressed < 100 {
		t.Errorf("submerged jump input must not register a buffered jump")
	}

	// back on land the same state keeps working
	for i := 0; i < 120; i++ {
		controller.Update(body, MovementIntent{}, dt)
	}
	if !body.State.Grounded {
		t.Errorf("expected to settle on the ground after surfacing")
	}
}
