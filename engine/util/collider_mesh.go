package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RayHit is the result of a successful mesh raycast.
type RayHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// TriangleMesh is a static collision mesh. Triangles and their face normals
// are fixed at build time, so any number of raycasts may query the mesh
// concurrently without synchronization.
type TriangleMesh struct {
	vertices []mgl32.Vec3 // three per triangle
	normals  []mgl32.Vec3 // one per triangle
	name     string
	min, max mgl32.Vec3
	empty    bool
}

func NewTriangleMesh(name string) *TriangleMesh {
	return &TriangleMesh{name: name, empty: true}
}

func (m *TriangleMesh) GetName() string {
	return m.name
}

func (m *TriangleMesh) TriangleCount() int {
	return len(m.normals)
}

// AppendTriangle adds one triangle. The face normal is derived from the
// counter-clockwise winding of a, b, c.
func (m *TriangleMesh) AppendTriangle(a, b, c mgl32.Vec3) {
	normal := b.Sub(a).Cross(c.Sub(a))
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}
	m.vertices = append(m.vertices, a, b, c)
	m.normals = append(m.normals, normal)
	m.extendBounds(a)
	m.extendBounds(b)
	m.extendBounds(c)
}

// AppendQuad adds two triangles for the quad bl, br, tr, tl (counter-clockwise).
func (m *TriangleMesh) AppendQuad(bl, br, tr, tl mgl32.Vec3) {
	m.AppendTriangle(bl, br, tr)
	m.AppendTriangle(bl, tr, tl)
}

func (m *TriangleMesh) extendBounds(v mgl32.Vec3) {
	if m.empty {
		m.min, m.max = v, v
		m.empty = false
		return
	}
	for i := 0; i < 3; i++ {
		if v[i] < m.min[i] {
			m.min[i] = v[i]
		}
		if v[i] > m.max[i] {
			m.max[i] = v[i]
		}
	}
}

func (m *TriangleMesh) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	return m.min, m.max
}

// OverlapsSegmentBounds is the broad-phase check: does the axis-aligned box
// of the segment touch the box of this mesh?
func (m *TriangleMesh) OverlapsSegmentBounds(start, end mgl32.Vec3) bool {
	if m.empty {
		return false
	}
	for i := 0; i < 3; i++ {
		lo := Min(start[i], end[i])
		hi := Max(start[i], end[i])
		if hi < m.min[i] || lo > m.max[i] {
			return false
		}
	}
	return true
}

// IntersectsRay scans all triangles and returns the hit nearest to rayStart.
func (m *TriangleMesh) IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, RayHit) {
	minDist := float32(math.MaxFloat32)
	doesIntersect := false
	var nearest RayHit
	for i := 0; i < len(m.normals); i++ {
		a := m.vertices[i*3]
		b := m.vertices[i*3+1]
		c := m.vertices[i*3+2]
		intersection, atPoint, _ := IntersectLineSegmentTriangle(rayStart, rayEnd, a, b, c)
		if intersection {
			dist := atPoint.Sub(rayStart).Len()
			if dist < minDist {
				minDist = dist
				nearest = RayHit{Point: atPoint, Normal: m.normals[i], Distance: dist}
				doesIntersect = true
			}
		}
	}
	return doesIntersect, nearest
}

// IterateTriangles visits every triangle with its face normal.
func (m *TriangleMesh) IterateTriangles(callback func(triangle [3]mgl32.Vec3, normal mgl32.Vec3)) {
	for i := 0; i < len(m.normals); i++ {
		callback([3]mgl32.Vec3{m.vertices[i*3], m.vertices[i*3+1], m.vertices[i*3+2]}, m.normals[i])
	}
}

func (m *TriangleMesh) ToString() string {
	return fmt.Sprintf("TriangleMesh{Name = %s, Triangles = %d}", m.GetName(), m.TriangleCount())
}
