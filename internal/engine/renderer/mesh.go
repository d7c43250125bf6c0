package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

// Interleaved vertex layout matching terrain.Vertex.
var (
	VertexStride   = int32(unsafe.Sizeof(terrain.Vertex{}))
	offsetPosition = unsafe.Offsetof(terrain.Vertex{}.Position)
	offsetColor    = unsafe.Offsetof(terrain.Vertex{}.Color)
	offsetTexCoord = unsafe.Offsetof(terrain.Vertex{}.TexCoord)
	offsetNormal   = unsafe.Offsetof(terrain.Vertex{}.Normal)
)

// Attribute locations shared with planet.vert.
const (
	attrPosition = 0
	attrColor    = 1
	attrTexCoord = 2
	attrNormal   = 3
)

// GPUMesh is a mesh uploaded to a VAO with its own VBO and EBO. The buffers
// are written once; a changed mesh gets a new GPUMesh.
type GPUMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewGPUMesh uploads a mesh.
func NewGPUMesh(m *terrain.Mesh) *GPUMesh {
	g := &GPUMesh{indexCount: int32(len(m.Indices))}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(VertexStride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	attrib(attrPosition, 3, offsetPosition)
	attrib(attrColor, 3, offsetColor)
	attrib(attrTexCoord, 2, offsetTexCoord)
	attrib(attrNormal, 3, offsetNormal)

	gl.BindVertexArray(0)
	return g
}

func attrib(location uint32, size int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, VertexStride, offset)
	gl.EnableVertexAttribArray(location)
}

// Draw issues the indexed draw call.
func (g *GPUMesh) Draw() {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
