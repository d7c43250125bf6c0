package terrain

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// emptyBounds is the starting value for bounds accumulation.
func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// ComputeBounds recalculates the bounding box from the vertices.
func (m *Mesh) ComputeBounds() {
	b := emptyBounds()
	for i := range m.Vertices {
		updateBounds(&b, m.Vertices[i].Position)
	}
	m.Bounds = b
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Merge concatenates meshes into a single indexed mesh.
func Merge(meshes ...*Mesh) *Mesh {
	var vertexCount, indexCount int
	for _, m := range meshes {
		vertexCount += len(m.Vertices)
		indexCount += len(m.Indices)
	}

	out := &Mesh{
		Vertices: make([]Vertex, 0, vertexCount),
		Indices:  make([]uint32, 0, indexCount),
	}
	for _, m := range meshes {
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	out.ComputeBounds()
	return out
}

// RecomputeNormals replaces the vertex normals with area-weighted face
// normals. Displaced planets keep the undisplaced sphere normal by default;
// this gives exact shading when it matters (exports). Front faces wind
// clockwise, as the renderer culls them.
func (m *Mesh) RecomputeNormals() {
	sums := make([]math.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		p0 := vec3(m.Vertices[i0].Position)
		p1 := vec3(m.Vertices[i1].Position)
		p2 := vec3(m.Vertices[i2].Position)

		n := p2.Sub(p0).Cross(p1.Sub(p0))
		sums[i0] = sums[i0].Add(n)
		sums[i1] = sums[i1].Add(n)
		sums[i2] = sums[i2].Add(n)
	}

	for i := range m.Vertices {
		if n, err := sums[i].Unit(); err == nil {
			m.Vertices[i].Normal = n.Array()
		}
	}
}

// weldEpsilon is the grid SmoothNormals snaps positions to.
const weldEpsilon float32 = 1e-4

// SmoothNormals averages the normals of vertices that share a position. On
// a merged planet this welds the shading seams along face edges, where
// every face carries its own copy of the edge vertices.
func (m *Mesh) SmoothNormals() {
	groups := make(map[[3]int32][]int)
	for i := range m.Vertices {
		k := weldKey(m.Vertices[i].Position)
		groups[k] = append(groups[k], i)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		var sum math.Vec3
		for _, i := range group {
			sum = sum.Add(vec3(m.Vertices[i].Normal))
		}
		n, err := sum.Unit()
		if err != nil {
			continue
		}
		for _, i := range group {
			m.Vertices[i].Normal = n.Array()
		}
	}
}

// weldKey snaps p to the nearest weldEpsilon grid point.
func weldKey(p [3]float32) [3]int32 {
	var k [3]int32
	for i, c := range p {
		k[i] = int32(math32.Floor(c/weldEpsilon + 0.5))
	}
	return k
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
