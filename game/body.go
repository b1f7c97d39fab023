package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/physics"
	"github.com/memmaker/ridgeline/engine/util"
)

// MovingBody is a physics-enabled entity: a transform plus the kinematic
// state that the movement mechanics mutate. The state lives and dies with
// the body and is never shared between entities.
type MovingBody struct {
	Transform util.Transform
	State     *physics.KinematicState
	name      string
}

func NewMovingBody(name string, position mgl32.Vec3) *MovingBody {
	return &MovingBody{
		Transform: util.NewTransform(position),
		State:     physics.NewKinematicState(),
		name:      name,
	}
}

func (b *MovingBody) GetName() string {
	return b.name
}

func (b *MovingBody) GetPosition() mgl32.Vec3 {
	return b.Transform.Position
}

func (b *MovingBody) SetPosition(pos mgl32.Vec3) {
	b.Transform.Position = pos
}
