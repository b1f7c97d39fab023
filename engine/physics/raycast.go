package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// RayCaster is the read-only terrain query the collision raycasts run
// against. voxel.Map implements it; tests use fakes.
type RayCaster interface {
	IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, util.RayHit)
}

// GroundHit is a confirmed walkable surface below an entity.
type GroundHit struct {
	// Height is the y the entity should stand at, foot offset included.
	Height float32
	Normal mgl32.Vec3
}

// Default raycast tuning. These are entity-shape properties, not gameplay
// tunables, so they live here instead of the constants file.
const (
	// GroundRayOriginOffset lifts the ray start above the entity anchor so
	// the cast never starts embedded in the surface it stands on.
	GroundRayOriginOffset = 2.0
	// GroundRayMaxDistance is how far below the anchor ground is searched.
	GroundRayMaxDistance = 5.0
	// FootOffset raises the stand height to account for the anchor point.
	FootOffset = 0.2
	// WallRayHeight casts the wall ray at entity mid-height.
	WallRayHeight = 0.9
	// WallRayBuffer extends the wall cast beyond the movement distance.
	WallRayBuffer = 0.5
	// WallSlideFactor scales the kept parallel motion along a wall.
	WallSlideFactor = 0.5
)

// wallNormalCutoff rejects ground hits whose normal is within about one
// degree of horizontal; those are walls, not floors. sin(1°).
const wallNormalCutoff = 0.0175

// RaycastGroundHeight casts straight down from above position and returns
// the stand height and surface normal of the nearest walkable hit within
// maxDistance below the anchor. No hit is free space (over a ledge, falling),
// not an error.
func RaycastGroundHeight(position mgl32.Vec3, terrain RayCaster, maxDistance, originOffset, footOffset float32) (GroundHit, bool) {
	rayStart := position.Add(mgl32.Vec3{0, originOffset, 0})
	rayEnd := position.Sub(mgl32.Vec3{0, maxDistance, 0})
	hit, info := terrain.IntersectsRay(rayStart, rayEnd)
	if !hit {
		return GroundHit{}, false
	}
	if info.Normal.Y() < wallNormalCutoff {
		// near-vertical surface, do not treat a wall as ground
		return GroundHit{}, false
	}
	return GroundHit{Height: info.Point.Y() + footOffset, Normal: info.Normal}, true
}

// RaycastWallCheck casts along the intended horizontal movement and returns
// the corrected displacement. Blocked movement keeps its wall-parallel
// component, scaled by the slide factor, and loses the perpendicular
// component, so entities slide along walls instead of sticking to them.
func RaycastWallCheck(position, movement mgl32.Vec3, terrain RayCaster, rayHeight, distanceBuffer, slideFactor float32) mgl32.Vec3 {
	moveLen := util.HorizontalLen(movement)
	if moveLen < velocityEpsilon {
		return movement
	}
	direction := mgl32.Vec3{movement.X() / moveLen, 0, movement.Z() / moveLen}
	rayStart := position.Add(mgl32.Vec3{0, rayHeight, 0})
	rayEnd := rayStart.Add(direction.Mul(moveLen + distanceBuffer))

	hit, info := terrain.IntersectsRay(rayStart, rayEnd)
	if !hit {
		return movement
	}
	wallNormal := mgl32.Vec3{info.Normal.X(), 0, info.Normal.Z()}
	if wallNormal.Len() < velocityEpsilon {
		// hit something flat enough to walk on, not a wall
		return movement
	}
	wallNormal = wallNormal.Normalize()
	parallel := movement.Sub(wallNormal.Mul(movement.Dot(wallNormal)))
	return parallel.Mul(slideFactor)
}
