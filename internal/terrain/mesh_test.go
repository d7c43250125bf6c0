package terrain

import (
	"testing"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

func verticesAt(m *Mesh, p math.Vec3) []int {
	var out []int
	for i, v := range m.Vertices {
		if vec3(v.Position).ApproxEqual(p, 1e-5) {
			out = append(out, i)
		}
	}
	return out
}

func TestSmoothNormalsWeldsCubeSeams(t *testing.T) {
	s := defaultSettings()
	s.Resolution = 3
	s.Shape = ShapeCube
	p, err := NewPlanet(s, 1)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	m := p.Merged()

	corner := verticesAt(m, math.Vec3{X: 1, Y: 1, Z: 1})
	if len(corner) != 3 {
		t.Fatalf("corner shared by %d faces, want 3", len(corner))
	}
	if m.Vertices[corner[0]].Normal == m.Vertices[corner[1]].Normal {
		t.Fatal("cube corner normals already equal before smoothing")
	}

	m.SmoothNormals()

	tests := []struct {
		name   string
		at     math.Vec3
		copies int
		want   math.Vec3
	}{
		{"corner", math.Vec3{X: 1, Y: 1, Z: 1}, 3, math.Vec3{X: 1, Y: 1, Z: 1}.Normalize()},
		{"edge", math.Vec3{X: 1, Y: 1, Z: 0}, 2, math.Vec3{X: 1, Y: 1}.Normalize()},
		{"face center", math.Vec3{Y: 1}, 1, math.Vec3{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := verticesAt(m, tt.at)
			if len(idx) != tt.copies {
				t.Fatalf("%d copies, want %d", len(idx), tt.copies)
			}
			for _, i := range idx {
				if n := vec3(m.Vertices[i].Normal); !n.ApproxEqual(tt.want, 1e-5) {
					t.Errorf("vertex %d normal = %v, want %v", i, n, tt.want)
				}
			}
		})
	}
}

func TestSmoothNormalsNoisySeams(t *testing.T) {
	s := defaultSettings()
	s.NoiseEnabled = true
	p, err := NewPlanet(s, 4)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	m := p.Merged()
	m.RecomputeNormals()
	m.SmoothNormals()

	seams := 0
	normals := make(map[[3]int32][3]float32)
	for i, v := range m.Vertices {
		if l := vec3(v.Normal).Length(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d: |n| = %f, want 1", i, l)
		}
		k := weldKey(v.Position)
		prev, ok := normals[k]
		if !ok {
			normals[k] = v.Normal
			continue
		}
		seams++
		if !vec3(prev).ApproxEqual(vec3(v.Normal), 1e-5) {
			t.Errorf("vertex %d normal %v differs from its seam copy %v", i, v.Normal, prev)
		}
	}
	if seams == 0 {
		t.Error("merged planet has no shared seam vertices")
	}
}

func TestRecomputeNormalsPointOutward(t *testing.T) {
	p, err := NewPlanet(defaultSettings(), 1)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	m := p.Merged()
	m.RecomputeNormals()
	for i, v := range m.Vertices {
		if d := vec3(v.Normal).Dot(vec3(v.Position)); d < 0.9 {
			t.Fatalf("vertex %d: n.p = %f, want outward normal", i, d)
		}
	}
}
