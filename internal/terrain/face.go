package terrain

import (
	"fmt"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Face is one of the six grids of a cube-sphere.
type Face struct {
	Resolution int
	LocalUp    math.Vec3
	AxisA      math.Vec3
	AxisB      math.Vec3
	Color      [3]float32
	Shape      Shape

	// Elevations holds one per-axis displacement per grid vertex, in the same
	// row-major order as the vertices. Nil means no displacement.
	Elevations []math.Vec3

	mesh *Mesh
}

// NewFace creates a face and builds its mesh.
func NewFace(resolution int, localUp math.Vec3, color [3]float32) (*Face, error) {
	if _, err := localUp.Unit(); err != nil {
		return nil, fmt.Errorf("face local up: %w", err)
	}

	// AxisA is a component permutation of localUp; crossing gives the second tangent.
	axisA := math.Vec3{X: localUp.Y, Y: localUp.Z, Z: localUp.X}
	f := &Face{
		Resolution: resolution,
		LocalUp:    localUp,
		AxisA:      axisA,
		AxisB:      localUp.Cross(axisA),
		Color:      color,
	}
	if _, err := f.Build(); err != nil {
		return nil, err
	}
	return f, nil
}

// Mesh returns the most recently built mesh.
func (f *Face) Mesh() *Mesh {
	return f.mesh
}

// VertexCount returns N^2.
func (f *Face) VertexCount() int {
	return f.Resolution * f.Resolution
}

// IndexCount returns 6 * (N-1)^2.
func (f *Face) IndexCount() int {
	return 6 * (f.Resolution - 1) * (f.Resolution - 1)
}

// Build regenerates the face mesh from scratch.
func (f *Face) Build() (*Mesh, error) {
	n := f.Resolution
	if n < MinResolution || n > MaxResolution {
		return nil, fmt.Errorf("%w: %d", ErrResolution, n)
	}
	if f.Elevations != nil && len(f.Elevations) != n*n {
		return nil, fmt.Errorf("%w: face has %d elevations, want %d", ErrElevationCount, len(f.Elevations), n*n)
	}

	vertices := make([]Vertex, n*n)
	indices := make([]uint32, 0, f.IndexCount())
	bounds := emptyBounds()
	last := float32(n - 1)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := x + y*n
			percent := math.Vec2{X: float32(x) / last, Y: float32(y) / last}

			pointOnCube := f.LocalUp.
				Add(f.AxisA.Scale((percent.X - 0.5) * 2)).
				Add(f.AxisB.Scale((percent.Y - 0.5) * 2))

			point := pointOnCube
			normal := f.LocalUp
			if f.Shape == ShapeSphere {
				point = pointOnCube.Normalize()
				normal = point
			}

			if f.Elevations != nil {
				e := f.Elevations[i]
				point = point.Mul(math.Vec3{X: 1 + e.X, Y: 1 + e.Y, Z: 1 + e.Z})
			}

			vertices[i] = Vertex{
				Position: point.Array(),
				Color:    f.Color,
				TexCoord: percent.Array(),
				Normal:   normal.Array(),
			}
			updateBounds(&bounds, vertices[i].Position)

			// Clockwise seen from outside
			if x != n-1 && y != n-1 {
				ui, un := uint32(i), uint32(n)
				indices = append(indices,
					ui, ui+un, ui+un+1,
					ui, ui+un+1, ui+1,
				)
			}
		}
	}

	f.mesh = &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
	return f.mesh, nil
}
