package voxel

const (
	CHUNK_SIZE         int32 = 16
	CHUNK_SIZE_SQUARED int32 = CHUNK_SIZE * CHUNK_SIZE
)

// HeightSampler returns the terrain surface height for a world column.
// Provided by the world generation collaborator; must be deterministic.
type HeightSampler func(x, z int32) int32
