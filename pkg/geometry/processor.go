package geometry

import (
	"github.com/cockroachdb/errors"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// vertexProcessor writes vertex records into a Geometry's buffers for one
// layout. Implementations hold no state; one value serves every Geometry.
type vertexProcessor interface {
	// validate checks the binding arrangement required by the layout.
	validate(g *Geometry) error
	// updateVertexBuffers allocates one buffer per binding and records
	// which buffer holds each semantic.
	updateVertexBuffers(g *Geometry) error
	// appendVertexData writes one vertex and returns the new vertex count.
	appendVertexData(g *Geometry, r vertexRecord) uint32
	// vertexCount returns the element count of the position buffer.
	vertexCount(g *Geometry) uint32
}

var (
	interleavedProcessor    vertexProcessor = interleaved{}
	planarProcessor         vertexProcessor = planar{}
	positionPlanarProcessor vertexProcessor = positionPlanar{}
)

func processorFor(layout Layout) (vertexProcessor, bool) {
	switch layout {
	case LayoutInterleaved:
		return interleavedProcessor, true
	case LayoutPlanar:
		return planarProcessor, true
	case LayoutPositionPlanar:
		return positionPlanarProcessor, true
	}
	return nil, false
}

// mapBindingBuffers allocates a vertex buffer per binding and maps every
// attribute's semantic to the buffer of its binding.
func mapBindingBuffers(g *Geometry) error {
	g.resetVertexBuffers()
	for i := uint32(0); i < g.bindingCount(); i++ {
		binding := g.binding(i)
		index := g.addVertexBuffer(binding.Stride())
		for j := 0; j < binding.AttributeCount(); j++ {
			attr, _ := binding.Attribute(j)
			if !knownSemantic(attr.Semantic) {
				return errors.Wrapf(ErrInvalidVertexSemantic,
					"binding %d attribute %d has semantic %s", i, j, attr.Semantic)
			}
			g.setSemanticBuffer(attr.Semantic, index)
		}
	}
	return nil
}

func knownSemantic(s gfx.Semantic) bool {
	switch s {
	case gfx.SemanticPosition, gfx.SemanticNormal, gfx.SemanticColor,
		gfx.SemanticTangent, gfx.SemanticBitangent, gfx.SemanticTexCoord:
		return true
	}
	return false
}

// appendBinding writes every attribute of binding into b in binding order
// and checks that exactly one stride was written.
func appendBinding(b *Buffer, binding *gfx.VertexBinding, r vertexRecord) {
	before := b.Size()
	for j := 0; j < binding.AttributeCount(); j++ {
		attr, _ := binding.Attribute(j)
		appendAttribute(b, attr, r)
	}
	written := b.Size() - before
	assertf(written == binding.Stride(),
		"binding %d wrote %d bytes, stride is %d", binding.Binding(), written, binding.Stride())
}

func positionVertexCount(g *Geometry) uint32 {
	b, ok := g.semanticBuffer(gfx.SemanticPosition)
	if !ok {
		return 0
	}
	return b.ElementCount()
}

type interleaved struct{}

func (interleaved) validate(g *Geometry) error {
	if n := g.bindingCount(); n != 1 {
		return errors.Newf("interleaved layout requires 1 vertex binding, have %d", n)
	}
	return nil
}

func (interleaved) updateVertexBuffers(g *Geometry) error {
	return mapBindingBuffers(g)
}

func (p interleaved) appendVertexData(g *Geometry, r vertexRecord) uint32 {
	_, ok := g.semanticBufferIndex(gfx.SemanticPosition)
	assertf(ok, "geometry has no position buffer")

	appendBinding(g.vertexBuffer(0), g.binding(0), r)
	return p.vertexCount(g)
}

func (interleaved) vertexCount(g *Geometry) uint32 {
	return positionVertexCount(g)
}

type planar struct{}

func (planar) validate(g *Geometry) error {
	for i := uint32(0); i < g.bindingCount(); i++ {
		if n := g.binding(i).AttributeCount(); n != 1 {
			return errors.Newf("planar layout requires 1 attribute per binding, binding %d has %d", i, n)
		}
	}
	return nil
}

func (planar) updateVertexBuffers(g *Geometry) error {
	return mapBindingBuffers(g)
}

func (p planar) appendVertexData(g *Geometry, r vertexRecord) uint32 {
	_, ok := g.semanticBufferIndex(gfx.SemanticPosition)
	assertf(ok, "geometry has no position buffer")

	for _, semantic := range gfx.Semantics {
		index, ok := g.semanticBufferIndex(semantic)
		if !ok || !r.has(semantic) {
			continue
		}
		attr, _ := g.binding(index).Attribute(0)
		appendAttribute(g.vertexBuffer(index), attr, r)
	}
	return p.vertexCount(g)
}

func (planar) vertexCount(g *Geometry) uint32 {
	return positionVertexCount(g)
}

type positionPlanar struct{}

func (positionPlanar) validate(g *Geometry) error {
	if n := g.bindingCount(); n != 2 {
		return errors.Newf("position planar layout requires 2 vertex bindings, have %d", n)
	}
	if n := g.binding(0).AttributeCount(); n != 1 || !g.binding(0).HasSemantic(gfx.SemanticPosition) {
		return errors.New("position planar layout requires binding 0 to hold only position")
	}
	return nil
}

func (positionPlanar) updateVertexBuffers(g *Geometry) error {
	return mapBindingBuffers(g)
}

func (p positionPlanar) appendVertexData(g *Geometry, r vertexRecord) uint32 {
	index, ok := g.semanticBufferIndex(gfx.SemanticPosition)
	assertf(ok && index == 0, "position must live in vertex buffer 0")

	appendBinding(g.vertexBuffer(0), g.binding(0), r)
	appendBinding(g.vertexBuffer(1), g.binding(1), r)
	return p.vertexCount(g)
}

func (positionPlanar) vertexCount(g *Geometry) uint32 {
	return positionVertexCount(g)
}
