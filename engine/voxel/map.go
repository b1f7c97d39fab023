package voxel

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// Map owns the loaded chunks and answers terrain queries. It is read-only
// once NewMap returns and safe for concurrent raycasts.
type Map struct {
	chunks  []*Chunk
	width   int32 // in chunks
	depth   int32 // in chunks
	sampler HeightSampler
}

func NewMap(widthChunks, depthChunks int32, sampler HeightSampler) *Map {
	m := &Map{
		chunks:  make([]*Chunk, widthChunks*depthChunks),
		width:   widthChunks,
		depth:   depthChunks,
		sampler: sampler,
	}
	for cx := int32(0); cx < widthChunks; cx++ {
		for cz := int32(0); cz < depthChunks; cz++ {
			m.chunks[cx+cz*widthChunks] = NewChunk(sampler, cx, cz)
		}
	}
	util.LogVoxelInfo(fmt.Sprintf("[Map] generated %d chunks (%dx%d)", len(m.chunks), widthChunks, depthChunks))
	return m
}

func (m *Map) ChunkExists(cx, cz int32) bool {
	return cx >= 0 && cx < m.width && cz >= 0 && cz < m.depth
}

func (m *Map) GetChunk(cx, cz int32) *Chunk {
	return m.chunks[cx+cz*m.width]
}

func (m *Map) GetChunkFromPosition(pos mgl32.Vec3) *Chunk {
	// floor division, so negative positions land outside instead of in chunk 0
	cx := int32(math.Floor(float64(pos.X()) / float64(CHUNK_SIZE)))
	cz := int32(math.Floor(float64(pos.Z()) / float64(CHUNK_SIZE)))
	if !m.ChunkExists(cx, cz) {
		return nil
	}
	return m.GetChunk(cx, cz)
}

func (m *Map) Contains(x, z int32) bool {
	return x >= 0 && x < m.width*CHUNK_SIZE && z >= 0 && z < m.depth*CHUNK_SIZE
}

func (m *Map) ContainsVec(pos mgl32.Vec3) bool {
	grid := ToGridInt3(pos)
	return m.Contains(grid.X, grid.Z)
}

// GetHeightAt returns the surface height of a world column. Columns outside
// the generated chunks fall back to the sampler.
func (m *Map) GetHeightAt(x, z int32) int32 {
	if !m.Contains(x, z) {
		return m.sampler(x, z)
	}
	chunk := m.GetChunk(x/CHUNK_SIZE, z/CHUNK_SIZE)
	return chunk.HeightAt(x%CHUNK_SIZE, z%CHUNK_SIZE)
}

// IntersectsRay casts a segment against every chunk collider whose bounds the
// segment box overlaps and returns the hit nearest to rayStart.
func (m *Map) IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, util.RayHit) {
	doesIntersect := false
	var nearest util.RayHit
	for _, chunk := range m.chunks {
		collider := chunk.Collider()
		if !collider.OverlapsSegmentBounds(rayStart, rayEnd) {
			continue
		}
		hit, info := collider.IntersectsRay(rayStart, rayEnd)
		if hit && (!doesIntersect || info.Distance < nearest.Distance) {
			doesIntersect = true
			nearest = info
		}
	}
	return doesIntersect, nearest
}
