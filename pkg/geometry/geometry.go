// Package geometry lays out vertex and index data into GPU-ready byte
// buffers. A Geometry is configured by Options and fills its buffers
// through one of three layouts (interleaved, planar, position-planar).
//
// A Geometry is not safe for concurrent use. Distinct Geometry values may
// be built concurrently.
package geometry

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// bufferIndex is an optional index into Geometry.vertexBuffers.
type bufferIndex struct {
	index uint32
	ok    bool
}

const semanticSlots = int(gfx.SemanticTexCoord) + 1

// Geometry owns an index buffer and one vertex buffer per binding.
type Geometry struct {
	opts            *Options
	processor       vertexProcessor
	indexBuffer     Buffer
	vertexBuffers   []Buffer
	semanticBuffers [semanticSlots]bufferIndex
}

// New creates an empty Geometry from opts. The options are copied.
func New(opts *Options) (*Geometry, error) {
	if opts == nil {
		return nil, errors.Wrap(ErrInvalidCreateArgument, "nil options")
	}
	if opts.Topology != gfx.PrimitiveTopologyTriangleList {
		return nil, errors.Wrapf(ErrInvalidCreateArgument, "unsupported primitive topology %s", opts.Topology)
	}
	switch opts.IndexType {
	case gfx.IndexTypeUndefined, gfx.IndexTypeUint16, gfx.IndexTypeUint32:
	default:
		return nil, errors.Wrapf(ErrInvalidCreateArgument, "unsupported index type %s", opts.IndexType)
	}
	if opts.VertexBindingCount() == 0 {
		return nil, errors.Wrap(ErrInvalidCreateArgument, "no vertex bindings")
	}
	if !opts.HasSemantic(gfx.SemanticPosition) {
		return nil, errors.Wrap(ErrInvalidCreateArgument, "position attribute is required")
	}

	processor, ok := processorFor(opts.Layout)
	if !ok {
		return nil, errors.Wrapf(ErrFailed, "unknown vertex layout %s", opts.Layout)
	}

	g := &Geometry{
		opts:      opts.Clone(),
		processor: processor,
	}
	if err := processor.validate(g); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s layout", opts.Layout), ErrFailed)
	}

	g.indexBuffer = Buffer{bufferType: BufferTypeIndex, elementSize: opts.IndexType.Size()}

	if err := processor.updateVertexBuffers(g); err != nil {
		return nil, err
	}
	return g, nil
}

// IndexType returns the index width.
func (g *Geometry) IndexType() gfx.IndexType { return g.opts.IndexType }

// Layout returns the vertex attribute layout.
func (g *Geometry) Layout() Layout { return g.opts.Layout }

// Options returns a copy of the options the Geometry was created with.
func (g *Geometry) Options() *Options { return g.opts.Clone() }

// IndexCount returns the number of indices appended.
func (g *Geometry) IndexCount() uint32 {
	if g.opts.IndexType == gfx.IndexTypeUndefined {
		return 0
	}
	return g.indexBuffer.ElementCount()
}

// VertexCount returns the number of vertices appended, as counted by the
// position buffer.
func (g *Geometry) VertexCount() uint32 {
	return g.processor.vertexCount(g)
}

// VertexBindingCount returns the number of vertex bindings.
func (g *Geometry) VertexBindingCount() uint32 { return g.opts.VertexBindingCount() }

// VertexBinding returns a copy of binding i.
func (g *Geometry) VertexBinding(i uint32) (gfx.VertexBinding, bool) {
	return g.opts.VertexBinding(i)
}

// VertexBufferCount returns the number of vertex buffers.
func (g *Geometry) VertexBufferCount() uint32 { return uint32(len(g.vertexBuffers)) }

// VertexBuffer returns vertex buffer i, or nil if i is out of range.
func (g *Geometry) VertexBuffer(i uint32) *Buffer {
	if i >= uint32(len(g.vertexBuffers)) {
		return nil
	}
	return &g.vertexBuffers[i]
}

// VertexBufferFor returns the vertex buffer holding semantic.
func (g *Geometry) VertexBufferFor(semantic gfx.Semantic) (*Buffer, bool) {
	return g.semanticBuffer(semantic)
}

// IndexBuffer returns the index buffer. It is empty when the Geometry has no index type.
func (g *Geometry) IndexBuffer() *Buffer { return &g.indexBuffer }

// LargestBufferSize returns the byte size of the largest buffer.
func (g *Geometry) LargestBufferSize() uint32 {
	size := g.indexBuffer.Size()
	for i := range g.vertexBuffers {
		size = max(size, g.vertexBuffers[i].Size())
	}
	return size
}

// SetIndexBuffer replaces the index data with a copy of b. The buffer
// must be an index buffer whose element size matches the index type.
func (g *Geometry) SetIndexBuffer(b *Buffer) error {
	if b.Type() != BufferTypeIndex || b.ElementSize() != g.opts.IndexType.Size() {
		return errors.Wrapf(ErrInvalidCreateArgument,
			"%s buffer with element size %d does not match index type %s",
			b.Type(), b.ElementSize(), g.opts.IndexType)
	}
	g.indexBuffer = b.clone()
	return nil
}

// AppendIndex appends one index. Indices are truncated to 16 bits on a
// uint16 Geometry. On a Geometry without an index type it does nothing.
func (g *Geometry) AppendIndex(i uint32) {
	switch g.opts.IndexType {
	case gfx.IndexTypeUint16:
		g.indexBuffer.data = binary.LittleEndian.AppendUint16(g.indexBuffer.data, uint16(i))
	case gfx.IndexTypeUint32:
		g.indexBuffer.data = binary.LittleEndian.AppendUint32(g.indexBuffer.data, i)
	}
}

// AppendIndicesTriangle appends three indices.
func (g *Geometry) AppendIndicesTriangle(v0, v1, v2 uint32) {
	g.AppendIndex(v0)
	g.AppendIndex(v1)
	g.AppendIndex(v2)
}

// AppendIndicesEdge appends two indices.
func (g *Geometry) AppendIndicesEdge(v0, v1 uint32) {
	g.AppendIndex(v0)
	g.AppendIndex(v1)
}

// AppendIndicesU32 bulk appends 32-bit indices. It panics unless the
// Geometry's index type is uint32.
func (g *Geometry) AppendIndicesU32(indices []uint32) {
	if g.opts.IndexType != gfx.IndexTypeUint32 {
		panic(errors.AssertionFailedf("AppendIndicesU32 on geometry with index type %s", g.opts.IndexType))
	}
	Append(&g.indexBuffer, indices...)
}

// AppendVertexData appends one vertex and returns the vertex count.
// The new vertex's index is the returned count minus one.
func (g *Geometry) AppendVertexData(v mesh.TriMeshVertexData) uint32 {
	return g.processor.appendVertexData(g, triRecord(v))
}

// AppendWireVertexData appends one wire vertex and returns the vertex count.
// Attributes a wire vertex does not carry are left out of planar buffers
// and zero filled in interleaved ones.
func (g *Geometry) AppendWireVertexData(v mesh.WireMeshVertexData) uint32 {
	return g.processor.appendVertexData(g, wireRecord(v))
}

// AppendTriangle appends three vertices and a triangle referencing them.
func (g *Geometry) AppendTriangle(v0, v1, v2 mesh.TriMeshVertexData) {
	n0 := g.AppendVertexData(v0) - 1
	n1 := g.AppendVertexData(v1) - 1
	n2 := g.AppendVertexData(v2) - 1
	g.AppendIndicesTriangle(n0, n1, n2)
}

// AppendEdge appends two vertices and an edge referencing them.
func (g *Geometry) AppendEdge(v0, v1 mesh.WireMeshVertexData) {
	n0 := g.AppendWireVertexData(v0) - 1
	n1 := g.AppendWireVertexData(v1) - 1
	g.AppendIndicesEdge(n0, n1)
}

// Accessors used by the processors.

func (g *Geometry) bindingCount() uint32 { return uint32(len(g.opts.bindings)) }

func (g *Geometry) binding(i uint32) *gfx.VertexBinding {
	assertf(i < uint32(len(g.opts.bindings)), "binding %d out of range", i)
	return &g.opts.bindings[i]
}

func (g *Geometry) resetVertexBuffers() {
	g.vertexBuffers = g.vertexBuffers[:0]
	g.semanticBuffers = [semanticSlots]bufferIndex{}
}

func (g *Geometry) addVertexBuffer(stride uint32) uint32 {
	g.vertexBuffers = append(g.vertexBuffers, Buffer{bufferType: BufferTypeVertex, elementSize: stride})
	return uint32(len(g.vertexBuffers) - 1)
}

func (g *Geometry) vertexBuffer(i uint32) *Buffer {
	assertf(i < uint32(len(g.vertexBuffers)), "vertex buffer %d out of range", i)
	return &g.vertexBuffers[i]
}

func (g *Geometry) setSemanticBuffer(semantic gfx.Semantic, index uint32) {
	g.semanticBuffers[semantic] = bufferIndex{index: index, ok: true}
}

func (g *Geometry) semanticBufferIndex(semantic gfx.Semantic) (uint32, bool) {
	if int(semantic) >= semanticSlots {
		return 0, false
	}
	bi := g.semanticBuffers[semantic]
	return bi.index, bi.ok
}

func (g *Geometry) semanticBuffer(semantic gfx.Semantic) (*Buffer, bool) {
	index, ok := g.semanticBufferIndex(semantic)
	if !ok {
		return nil, false
	}
	return &g.vertexBuffers[index], true
}
