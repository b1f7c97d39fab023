package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

// ToBlockCenterVec3 is the world position in the middle of the block's
// horizontal footprint.
func (i Int3) ToBlockCenterVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X) + 0.5, float32(i.Y), float32(i.Z) + 0.5}
}

func ToGridInt3(pos mgl32.Vec3) Int3 {
	return Int3{
		X: int32(math.Floor(float64(pos.X()))),
		Y: int32(math.Floor(float64(pos.Y()))),
		Z: int32(math.Floor(float64(pos.Z()))),
	}
}
