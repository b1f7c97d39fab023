package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// Chunk holds the sampled surface heights for a CHUNK_SIZE x CHUNK_SIZE
// area of columns plus the collision mesh built from them. Terrain is
// static, so both are fixed after NewChunk returns.
type Chunk struct {
	heights   []int32
	chunkPosX int32
	chunkPosZ int32
	sampler   HeightSampler
	collider  *util.TriangleMesh
}

func NewChunk(sampler HeightSampler, chunkX, chunkZ int32) *Chunk {
	c := &Chunk{
		heights:   make([]int32, CHUNK_SIZE_SQUARED),
		chunkPosX: chunkX,
		chunkPosZ: chunkZ,
		sampler:   sampler,
	}
	baseX := chunkX * CHUNK_SIZE
	baseZ := chunkZ * CHUNK_SIZE
	for x := int32(0); x < CHUNK_SIZE; x++ {
		for z := int32(0); z < CHUNK_SIZE; z++ {
			c.heights[columnIndex(x, z)] = sampler(baseX+x, baseZ+z)
		}
	}
	c.collider = c.buildCollisionMesh()
	return c
}

func columnIndex(x, z int32) int32 {
	return x + z*CHUNK_SIZE
}

func (c *Chunk) Position() Int3 {
	return Int3{X: c.chunkPosX, Z: c.chunkPosZ}
}

func (c *Chunk) Contains(x, z int32) bool {
	return x >= 0 && x < CHUNK_SIZE && z >= 0 && z < CHUNK_SIZE
}

// HeightAt returns the surface height of a local column.
func (c *Chunk) HeightAt(x, z int32) int32 {
	return c.heights[columnIndex(x, z)]
}

// neighborHeight falls back to the sampler for columns outside this chunk,
// so side faces on chunk borders see the real neighbor terrain.
func (c *Chunk) neighborHeight(localX, localZ int32) int32 {
	if c.Contains(localX, localZ) {
		return c.heights[columnIndex(localX, localZ)]
	}
	return c.sampler(c.chunkPosX*CHUNK_SIZE+localX, c.chunkPosZ*CHUNK_SIZE+localZ)
}

func (c *Chunk) Collider() *util.TriangleMesh {
	return c.collider
}

var sideDirections = [4]Int3{
	{X: 1},
	{X: -1},
	{Z: 1},
	{Z: -1},
}

// buildCollisionMesh emits one top quad per column and, for each horizontal
// direction, one side quad per unit of height difference on the higher
// column's exposed face. Top faces are deliberately not merged across
// columns: the mesh is static and built once, so we trade polygon count for
// raycast precision at every column boundary.
// TODO: stacked side quads on the same face could be merged into one tall quad.
func (c *Chunk) buildCollisionMesh() *util.TriangleMesh {
	mesh := util.NewTriangleMesh(fmt.Sprintf("chunk_collision_%d_%d", c.chunkPosX, c.chunkPosZ))
	baseX := float32(c.chunkPosX * CHUNK_SIZE)
	baseZ := float32(c.chunkPosZ * CHUNK_SIZE)

	for x := int32(0); x < CHUNK_SIZE; x++ {
		for z := int32(0); z < CHUNK_SIZE; z++ {
			h := c.heights[columnIndex(x, z)]
			wx := baseX + float32(x)
			wz := baseZ + float32(z)
			fh := float32(h)

			// top face, counter-clockwise seen from above
			mesh.AppendQuad(
				mgl32.Vec3{wx, fh, wz},
				mgl32.Vec3{wx, fh, wz + 1},
				mgl32.Vec3{wx + 1, fh, wz + 1},
				mgl32.Vec3{wx + 1, fh, wz},
			)

			// exposed side faces, one quad per unit of height difference,
			// emitted on the higher column only
			for _, dir := range sideDirections {
				neighbor := Int3{X: x, Z: z}.Add(dir)
				nh := c.neighborHeight(neighbor.X, neighbor.Z)
				if nh >= h {
					continue
				}
				for y := nh; y < h; y++ {
					c.appendSideQuad(mesh, wx, wz, float32(y), dir)
				}
			}
		}
	}
	util.LogVoxelDebug(fmt.Sprintf("[Chunk] built %s", mesh.ToString()))
	return mesh
}

// appendSideQuad adds a unit wall quad on the face of column (wx, wz) that
// borders the neighbor in direction dir, spanning y to y+1. The winding puts
// the face normal on the neighbor's side.
func (c *Chunk) appendSideQuad(mesh *util.TriangleMesh, wx, wz, y float32, dir Int3) {
	y1 := y + 1
	switch {
	case dir.X > 0: // neighbor at +X, normal +X, plane x = wx+1
		mesh.AppendQuad(
			mgl32.Vec3{wx + 1, y, wz},
			mgl32.Vec3{wx + 1, y1, wz},
			mgl32.Vec3{wx + 1, y1, wz + 1},
			mgl32.Vec3{wx + 1, y, wz + 1},
		)
	case dir.X < 0: // neighbor at -X, normal -X, plane x = wx
		mesh.AppendQuad(
			mgl32.Vec3{wx, y, wz},
			mgl32.Vec3{wx, y, wz + 1},
			mgl32.Vec3{wx, y1, wz + 1},
			mgl32.Vec3{wx, y1, wz},
		)
	case dir.Z > 0: // neighbor at +Z, normal +Z, plane z = wz+1
		mesh.AppendQuad(
			mgl32.Vec3{wx, y, wz + 1},
			mgl32.Vec3{wx + 1, y, wz + 1},
			mgl32.Vec3{wx + 1, y1, wz + 1},
			mgl32.Vec3{wx, y1, wz + 1},
		)
	default: // neighbor at -Z, normal -Z, plane z = wz
		mesh.AppendQuad(
			mgl32.Vec3{wx, y, wz},
			mgl32.Vec3{wx, y1, wz},
			mgl32.Vec3{wx + 1, y1, wz},
			mgl32.Vec3{wx + 1, y, wz},
		)
	}
}
