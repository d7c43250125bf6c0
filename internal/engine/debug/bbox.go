// Package debug provides debug visualization geometry.
package debug

import "github.com/Faultbox/sphere-explorer/internal/terrain"

// BoxVertexCount is the number of line vertices for one box (12 edges x 2).
const BoxVertexCount = 24

// BoxLines returns line-list vertices for the edges of a bounding box,
// [x, y, z] per vertex, grown by padding on every side.
func BoxLines(b terrain.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding
	maxX, maxY, maxZ := b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding

	return []float32{
		// Bottom
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Verticals
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// MeshBoxLines concatenates the box lines of every non-empty mesh.
func MeshBoxLines(meshes []*terrain.Mesh, padding float32) []float32 {
	out := make([]float32, 0, len(meshes)*BoxVertexCount*3)
	for _, m := range meshes {
		if m == nil || len(m.Vertices) == 0 {
			continue
		}
		out = append(out, BoxLines(m.Bounds, padding)...)
	}
	return out
}
