package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/ridgeline/engine/util"
)

// terrain with a single raised column at the origin
func singleTowerSampler(height int32) HeightSampler {
	return func(x, z int32) int32 {
		if x == 0 && z == 0 {
			return height
		}
		return 2
	}
}

func countQuadsOnPlane(mesh *util.TriangleMesh, axis int, plane float32, normal mgl32.Vec3) int {
	triangles := 0
	mesh.IterateTriangles(func(tri [3]mgl32.Vec3, n mgl32.Vec3) {
		if !n.ApproxEqualThreshold(normal, 0.0001) {
			return
		}
		for _, v := range tri {
			if util.Abs(v[axis]-plane) > 0.0001 {
				return
			}
		}
		triangles++
	})
	return triangles / 2
}

func TestSideFacesEmittedOnHigherColumnOnly(t *testing.T) {
	chunk := NewChunk(singleTowerSampler(5), 0, 0)
	mesh := chunk.Collider()

	// height difference of 3 between column (0,0) and (1,0): exactly 3 side
	// quads on the tower's +X face
	exposed := countQuadsOnPlane(mesh, 0, 1, mgl32.Vec3{1, 0, 0})
	if exposed != 3 {
		t.Errorf("expected 3 exposed side quads on the higher column, got %d", exposed)
	}

	// the reverse face (lower column facing the tower) must never be emitted
	reverse := countQuadsOnPlane(mesh, 0, 1, mgl32.Vec3{-1, 0, 0})
	if reverse != 0 {
		t.Errorf("expected no reverse side quads, got %d", reverse)
	}
}

func TestTopFacesPerColumn(t *testing.T) {
	chunk := NewChunk(singleTowerSampler(5), 0, 0)
	mesh := chunk.Collider()

	topTriangles := 0
	mesh.IterateTriangles(func(_ [3]mgl32.Vec3, n mgl32.Vec3) {
		if n.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 0.0001) {
			topTriangles++
		}
	})
	wantColumns := int(CHUNK_SIZE * CHUNK_SIZE)
	if topTriangles != wantColumns*2 {
		t.Errorf("expected %d top triangles (one quad per column), got %d", wantColumns*2, topTriangles)
	}
}

func TestSideFaceCountMatchesHeightDifference(t *testing.T) {
	for _, diff := range []int32{1, 2, 4, 7} {
		chunk := NewChunk(singleTowerSampler(2+diff), 0, 0)
		exposed := countQuadsOnPlane(chunk.Collider(), 0, 1, mgl32.Vec3{1, 0, 0})
		if exposed != int(diff) {
			t.Errorf("height diff %d: expected %d side quads, got %d", diff, diff, exposed)
		}
	}
}

func TestSideFacesAcrossChunkBorder(t *testing.T) {
	// step right on the border between chunk 0 and chunk 1: high columns in
	// chunk 0 (x <= 15), low in chunk 1 (x >= 16)
	sampler := func(x, z int32) int32 {
		if x < CHUNK_SIZE {
			return 6
		}
		return 1
	}
	m := NewMap(2, 1, sampler)

	highChunk := m.GetChunk(0, 0)
	// one quad per unit of height difference per border column
	exposed := countQuadsOnPlane(highChunk.Collider(), 0, float32(CHUNK_SIZE), mgl32.Vec3{1, 0, 0})
	if exposed != int(CHUNK_SIZE)*5 {
		t.Errorf("expected %d border side quads, got %d", int(CHUNK_SIZE)*5, exposed)
	}

	lowChunk := m.GetChunk(1, 0)
	reverse := countQuadsOnPlane(lowChunk.Collider(), 0, float32(CHUNK_SIZE), mgl32.Vec3{-1, 0, 0})
	if reverse != 0 {
		t.Errorf("lower chunk must not emit faces toward the higher chunk, got %d", reverse)
	}
}

func TestMapRaycastIsIdempotent(t *testing.T) {
	m := NewMap(1, 1, singleTowerSampler(5))
	start := mgl32.Vec3{0.5, 9, 0.5}
	end := mgl32.Vec3{0.5, 2, 0.5}

	hitA, infoA := m.IntersectsRay(start, end)
	hitB, infoB := m.IntersectsRay(start, end)
	if !hitA || !hitB {
		t.Fatalf("expected both casts to hit the tower top")
	}
	if infoA != infoB {
		t.Errorf("identical casts against static terrain must return identical hits: %v vs %v", infoA, infoB)
	}
	if util.Abs(infoA.Point.Y()-5) > 0.0001 {
		t.Errorf("expected hit on the tower top at y=5, got %f", infoA.Point.Y())
	}
}

func TestMapHeightAt(t *testing.T) {
	m := NewMap(1, 1, singleTowerSampler(5))
	if h := m.GetHeightAt(0, 0); h != 5 {
		t.Errorf("expected tower height 5, got %d", h)
	}
	if h := m.GetHeightAt(3, 3); h != 2 {
		t.Errorf("expected base height 2, got %d", h)
	}
	// outside the generated chunks the sampler answers
	if h := m.GetHeightAt(100, 100); h != 2 {
		t.Errorf("expected sampler fallback height 2, got %d", h)
	}
}

func TestGetChunkFromPosition(t *testing.T) {
	m := NewMap(2, 2, singleTowerSampler(5))

	chunk := m.GetChunkFromPosition(mgl32.Vec3{17.5, 3, 2.5})
	if chunk == nil {
		t.Fatalf("expected a chunk for an in-range position")
	}
	if p := chunk.Position(); p.X != 1 || p.Z != 0 {
		t.Errorf("expected chunk 1/0, got %d/%d", p.X, p.Z)
	}

	// negative positions are outside the map, not chunk 0
	if c := m.GetChunkFromPosition(mgl32.Vec3{-0.5, 3, 2.5}); c != nil {
		t.Errorf("expected nil for a negative x position, got chunk %v", c.Position())
	}
	if c := m.GetChunkFromPosition(mgl32.Vec3{2.5, 3, -0.5}); c != nil {
		t.Errorf("expected nil for a negative z position, got chunk %v", c.Position())
	}
	if c := m.GetChunkFromPosition(mgl32.Vec3{64.5, 3, 2.5}); c != nil {
		t.Errorf("expected nil beyond the far edge, got chunk %v", c.Position())
	}
}

func TestContainsVec(t *testing.T) {
	m := NewMap(1, 1, singleTowerSampler(5))
	if !m.ContainsVec(mgl32.Vec3{0.5, 3, 15.5}) {
		t.Errorf("position inside the single chunk must be contained")
	}
	if m.ContainsVec(mgl32.Vec3{-0.5, 3, 0.5}) || m.ContainsVec(mgl32.Vec3{16.5, 3, 0.5}) {
		t.Errorf("positions outside the chunk footprint must not be contained")
	}
}

func TestBlockCenter(t *testing.T) {
	center := Int3{X: 8, Y: 20, Z: 8}.ToBlockCenterVec3()
	want := mgl32.Vec3{8.5, 20, 8.5}
	if !center.ApproxEqualThreshold(want, 0.0001) {
		t.Errorf("expected %v, got %v", want, center)
	}
}
