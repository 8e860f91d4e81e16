package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/axes"
)

// Geometry is an immutable vertex buffer plus the vertex array describing it.
// To change the vertices, delete it and create a new one.
type Geometry struct {
	vao, vbo uint32
	count    int32
}

// NewGeometry uploads verts once with STATIC_DRAW and records layout in a new
// vertex array.
func NewGeometry(verts []axes.Vertex, layout axes.Layout) (*Geometry, error) {
	if len(verts) == 0 {
		return nil, axes.ErrEmptyGeometry
	}

	g := &Geometry{count: int32(len(verts))}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)

	// Bind the vertex array first so it captures the buffer binding below.
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*axes.VertexSize, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(layout.Attrib, layout.Size, gl.FLOAT, false, layout.Stride, layout.Offset)
	gl.EnableVertexAttribArray(layout.Attrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g, nil
}

// VertexArray returns the GL vertex array name.
func (g *Geometry) VertexArray() uint32 {
	return g.vao
}

// Buffer returns the GL buffer name.
func (g *Geometry) Buffer() uint32 {
	return g.vbo
}

// Count returns the number of uploaded vertices.
func (g *Geometry) Count() int32 {
	return g.count
}

// Delete releases the buffer and the vertex array. Safe to call twice.
func (g *Geometry) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
}
