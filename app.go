package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/physics"
	"github.com/memmaker/ridgeline/engine/util"
	"github.com/memmaker/ridgeline/engine/voxel"
	"github.com/memmaker/ridgeline/game"
)

const tunablesFile = "./assets/physics.yaml"

// rollingHills is the demo terrain: deterministic, no external world data.
func rollingHills(x, z int32) int32 {
	fx := float64(x)
	fz := float64(z)
	h := 4.0 + 2.5*math.Sin(fx*0.15) + 2.0*math.Cos(fz*0.11) + 1.5*math.Sin((fx+fz)*0.05)
	if h < 0 {
		h = 0
	}
	return int32(h)
}

func runSim() {
	constants := physics.DefaultConstants()
	if _, err := os.Stat(tunablesFile); err == nil {
		loaded, err := physics.LoadConstants(tunablesFile)
		if err != nil {
			util.LogConfigError(fmt.Sprintf("[Sim] falling back to defaults: %v", err))
		} else {
			constants = loaded
		}
	}

	profiler := util.NewProfiler()

	stopMeshing := profiler.Start("chunk meshes")
	terrain := voxel.NewMap(4, 4, rollingHills)
	stopMeshing()

	spawn := voxel.Int3{X: 8, Y: 20, Z: 8}.ToBlockCenterVec3()
	player := game.NewMovingBody("player", spawn)
	controller := game.NewController(constants, terrain)

	var watcher *physics.ConstantsWatcher
	if w, err := physics.NewConstantsWatcher(tunablesFile); err == nil {
		watcher = w
		defer watcher.Close()
	} else {
		util.LogConfigError(fmt.Sprintf("[Sim] tunables watcher disabled: %v", err))
	}

	const dt = 1.0 / 60.0
	forward := mgl32.Vec3{1, 0, 0}
	for tick := 0; tick < 1200; tick++ {
		if watcher != nil {
			select {
			case updated := <-watcher.Updates:
				controller.SetConstants(updated)
			default:
			}
		}

		intent := game.MovementIntent{Direction: forward}
		// hop every two seconds
		if tick%120 == 0 && tick > 0 {
			intent.JumpPressed = true
			intent.JumpHeld = true
		}

		stopTick := profiler.Start("tick")
		controller.Update(player, intent, dt)
		stopTick()

		// turn around before running off the generated terrain
		if !terrain.ContainsVec(player.GetPosition()) {
			forward = forward.Mul(-1)
		}

		if tick%30 == 0 {
			pos := player.GetPosition()
			chunkLabel := "off-map"
			if chunk := terrain.GetChunkFromPosition(pos); chunk != nil {
				cp := chunk.Position()
				chunkLabel = fmt.Sprintf("%d/%d", cp.X, cp.Z)
			}
			util.LogSimInfo(fmt.Sprintf("[Sim] t=%5.2fs pos=(%.2f, %.2f, %.2f) vel=(%.2f, %.2f, %.2f) chunk=%s grounded=%v sliding=%v",
				float64(tick)*dt, pos.X(), pos.Y(), pos.Z(),
				player.State.Velocity.X(), player.State.Velocity.Y(), player.State.Velocity.Z(),
				chunkLabel, player.State.Grounded, player.State.Sliding))
		}
	}

	util.LogSimInfo("[Sim] timings:\n" + profiler.String())
}
