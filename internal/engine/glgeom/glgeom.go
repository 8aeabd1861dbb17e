// Package glgeom uploads geometry buffers into OpenGL vertex array objects.
// All functions must be called on the thread owning the GL context.
package glgeom

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-gfx/pkg/geometry"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// Attrib is one glVertexAttribPointer call.
type Attrib struct {
	Buffer     uint32 // vertex buffer index in the geometry
	Location   uint32
	Size       int32
	Type       uint32
	Normalized bool
	Integer    bool // use glVertexAttribIPointer
	Stride     int32
	Offset     uintptr
}

// Attribs lists the attribute pointers for every binding of g.
func Attribs(g *geometry.Geometry) ([]Attrib, error) {
	var attribs []Attrib
	for i := uint32(0); i < g.VertexBindingCount(); i++ {
		binding, _ := g.VertexBinding(i)
		for _, attr := range binding.Attributes() {
			typ, normalized, integer, err := glType(attr.Format)
			if err != nil {
				return nil, errors.Wrapf(err, "%s attribute", attr.Semantic)
			}
			attribs = append(attribs, Attrib{
				Buffer:     i,
				Location:   attr.Location,
				Size:       int32(attr.Format.ComponentCount()),
				Type:       typ,
				Normalized: normalized,
				Integer:    integer,
				Stride:     int32(binding.Stride()),
				Offset:     uintptr(attr.Offset),
			})
		}
	}
	return attribs, nil
}

func glType(f gfx.Format) (typ uint32, normalized, integer bool, err error) {
	switch f.ComponentType() {
	case gfx.ComponentFloat32:
		return gl.FLOAT, false, false, nil
	case gfx.ComponentFloat16:
		return gl.HALF_FLOAT, false, false, nil
	case gfx.ComponentUnorm8:
		return gl.UNSIGNED_BYTE, true, false, nil
	case gfx.ComponentSnorm8:
		return gl.BYTE, true, false, nil
	case gfx.ComponentUint16:
		return gl.UNSIGNED_SHORT, false, true, nil
	case gfx.ComponentUint32:
		return gl.UNSIGNED_INT, false, true, nil
	}
	return 0, false, false, errors.Newf("format %s has no GL vertex type", f)
}

// Mesh is a Geometry resident in GL buffers.
type Mesh struct {
	vao        uint32
	vbos       []uint32
	ebo        uint32
	indexType  uint32
	indexCount int32
	vertCount  int32
}

// Upload copies g's buffers into a new VAO.
func Upload(g *geometry.Geometry) (*Mesh, error) {
	attribs, err := Attribs(g)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		indexCount: int32(g.IndexCount()),
		vertCount:  int32(g.VertexCount()),
	}
	switch g.IndexType() {
	case gfx.IndexTypeUint16:
		m.indexType = gl.UNSIGNED_SHORT
	case gfx.IndexTypeUint32:
		m.indexType = gl.UNSIGNED_INT
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	m.vbos = make([]uint32, g.VertexBufferCount())
	if len(m.vbos) > 0 {
		gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])
	}
	for i, vbo := range m.vbos {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		bufferData(gl.ARRAY_BUFFER, g.VertexBuffer(uint32(i)).Data())
	}

	for _, a := range attribs {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[a.Buffer])
		if a.Integer {
			gl.VertexAttribIPointerWithOffset(a.Location, a.Size, a.Type, a.Stride, a.Offset)
		} else {
			gl.VertexAttribPointerWithOffset(a.Location, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
		}
		gl.EnableVertexAttribArray(a.Location)
	}

	if m.indexCount > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		bufferData(gl.ELEMENT_ARRAY_BUFFER, g.IndexBuffer().Data())
	}

	gl.BindVertexArray(0)
	return m, nil
}

func bufferData(target uint32, data []byte) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(target, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
}

// Draw issues one draw call for the whole mesh.
func (m *Mesh) Draw(mode uint32) {
	gl.BindVertexArray(m.vao)
	if m.indexCount > 0 {
		gl.DrawElementsWithOffset(mode, m.indexCount, m.indexType, 0)
	} else {
		gl.DrawArrays(mode, 0, m.vertCount)
	}
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (m *Mesh) Destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
