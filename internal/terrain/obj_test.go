package terrain

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReadOBJ(t *testing.T) {
	s := defaultSettings()
	s.Resolution = 6
	p, err := NewPlanet(s, 1)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	m := p.Merged()

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "planet", m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if !strings.Contains(buf.String(), "\nf ") && !strings.HasPrefix(buf.String(), "f ") {
		t.Fatal("output has no face lines")
	}

	path := filepath.Join(t.TempDir(), "planet.obj")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	color := [3]float32{0.1, 0.2, 0.3}
	got, err := ReadOBJ(path, color)
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if got.TriangleCount() != m.TriangleCount() {
		t.Errorf("triangles = %d, want %d", got.TriangleCount(), m.TriangleCount())
	}
	for i, v := range got.Vertices {
		if l := vec3(v.Position).Length(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d: |p| = %f, want 1", i, l)
		}
		if v.Color != color {
			t.Fatalf("vertex %d color = %v, want %v", i, v.Color, color)
		}
	}
}

func TestReadOBJMissingFile(t *testing.T) {
	if _, err := ReadOBJ(filepath.Join(t.TempDir(), "missing.obj"), [3]float32{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToObjLayout(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{1, 2, 3}, TexCoord: [2]float32{0.5, 1}, Normal: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 0, 0},
	}
	obj := ToObj("one", m)
	if obj.StrideSize != 32 {
		t.Errorf("stride = %d, want 32", obj.StrideSize)
	}
	want := []float32{1, 2, 3, 0.5, 1, 0, 1, 0}
	for i, f := range want {
		if obj.Coord[i] != f {
			t.Errorf("coord[%d] = %f, want %f", i, obj.Coord[i], f)
		}
	}
	if len(obj.Groups) != 1 || obj.Groups[0].IndexCount != 3 {
		t.Errorf("groups = %+v, want one group of 3 indices", obj.Groups)
	}

	back, err := FromObj(obj, [3]float32{1, 1, 1})
	if err != nil {
		t.Fatalf("FromObj: %v", err)
	}
	if back.Vertices[0].Position != m.Vertices[0].Position || back.Vertices[0].Normal != m.Vertices[0].Normal {
		t.Errorf("FromObj vertex = %+v", back.Vertices[0])
	}
}
