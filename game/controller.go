package game

import (
	"github.com/memmaker/ridgeline/engine/physics"
)

// Controller picks the active mechanic per tick. Any movement mechanic can
// be composed from the physics primitives instead; this is the default
// pairing for player-like entities.
type Controller struct {
	Ground *GroundMovement
	Swim   *Swimming
}

func NewController(con physics.Constants, terrain physics.RayCaster) *Controller {
	return &Controller{
		Ground: NewGroundMovement(con, terrain),
		Swim:   NewSwimming(con, terrain),
	}
}

// SetConstants propagates a hot-reloaded tunables set to both mechanics.
func (c *Controller) SetConstants(con physics.Constants) {
	c.Ground.SetConstants(con)
	c.Swim.SetConstants(con)
}

func (c *Controller) Update(body *MovingBody, intent MovementIntent, dt float64) {
	if intent.Submerged() {
		c.Swim.Update(body, intent, dt)
		return
	}
	c.Ground.Update(body, intent, dt)
}
