package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// lineBatch is a dynamic line-list buffer of [x, y, z] vertices.
type lineBatch struct {
	vao, vbo uint32
	count    int32
}

func newLineBatch() *lineBatch {
	b := &lineBatch{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(attrPosition)
	gl.BindVertexArray(0)
	return b
}

func (b *lineBatch) upload(vertices []float32) {
	b.count = int32(len(vertices) / 3)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
}

func (b *lineBatch) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *lineBatch) delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
