package terrain

import (
	"fmt"
	"io"

	"github.com/udhos/gwob"
)

// OBJ layout: position (3), texcoord (2), normal (3) floats per element.
const (
	objStrideFloats   = 8
	objOffsetPosition = 0
	objOffsetTexture  = 3
	objOffsetNormal   = 5
)

// ToObj converts a mesh to a gwob object with a single group.
func ToObj(name string, m *Mesh) *gwob.Obj {
	coord := make([]float32, 0, len(m.Vertices)*objStrideFloats)
	for _, v := range m.Vertices {
		coord = append(coord,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}

	indices := make([]int, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = int(idx)
	}

	return &gwob.Obj{
		Indices:              indices,
		Coord:                coord,
		Groups:               []*gwob.Group{{Name: name, IndexBegin: 0, IndexCount: len(indices)}},
		TextCoordFound:       true,
		NormCoordFound:       true,
		StrideSize:           objStrideFloats * 4,
		StrideOffsetPosition: objOffsetPosition * 4,
		StrideOffsetTexture:  objOffsetTexture * 4,
		StrideOffsetNormal:   objOffsetNormal * 4,
	}
}

// WriteOBJ writes the mesh as Wavefront OBJ. Vertex colors are not part of
// the format and are dropped.
func WriteOBJ(w io.Writer, name string, m *Mesh) error {
	if err := ToObj(name, m).ToWriter(w); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}

// ReadOBJ loads an OBJ file into a mesh. Vertices get the given color since
// OBJ carries none.
func ReadOBJ(path string, color [3]float32) (*Mesh, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("parsing obj %s: %w", path, err)
	}
	return FromObj(obj, color)
}

// FromObj converts a parsed gwob object to a mesh.
func FromObj(obj *gwob.Obj, color [3]float32) (*Mesh, error) {
	if obj.StrideSize <= 0 {
		return nil, fmt.Errorf("obj has invalid stride %d", obj.StrideSize)
	}

	stride := obj.StrideSize / 4
	count := len(obj.Coord) / stride
	posOff := obj.StrideOffsetPosition / 4
	texOff := obj.StrideOffsetTexture / 4
	normOff := obj.StrideOffsetNormal / 4

	m := &Mesh{
		Vertices: make([]Vertex, count),
		Indices:  make([]uint32, 0, len(obj.Indices)),
	}
	for i := 0; i < count; i++ {
		base := i * stride
		v := Vertex{
			Position: [3]float32{obj.Coord[base+posOff], obj.Coord[base+posOff+1], obj.Coord[base+posOff+2]},
			Color:    color,
		}
		if obj.TextCoordFound {
			v.TexCoord = [2]float32{obj.Coord[base+texOff], obj.Coord[base+texOff+1]}
		}
		if obj.NormCoordFound {
			v.Normal = [3]float32{obj.Coord[base+normOff], obj.Coord[base+normOff+1], obj.Coord[base+normOff+2]}
		}
		m.Vertices[i] = v
	}

	for _, idx := range obj.Indices {
		if idx < 0 || idx >= count {
			return nil, fmt.Errorf("obj index %d out of range (%d vertices)", idx, count)
		}
		m.Indices = append(m.Indices, uint32(idx))
	}

	if !obj.NormCoordFound {
		m.RecomputeNormals()
	}
	m.ComputeBounds()
	return m, nil
}
