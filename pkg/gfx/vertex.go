package gfx

import "slices"

// MaxVertexBindings is the maximum number of vertex bindings a layout may use.
const MaxVertexBindings = 16

// AppendOffsetAligned places an attribute directly after the previous one in its binding.
const AppendOffsetAligned = ^uint32(0)

// VertexAttribute describes one attribute inside a vertex binding.
type VertexAttribute struct {
	SemanticName string
	Location     uint32
	Format       Format
	Binding      uint32
	Offset       uint32
	InputRate    VertexInputRate
	Semantic     Semantic
}

// Size returns the attribute's byte size.
func (a VertexAttribute) Size() uint32 {
	return a.Format.BytesPerTexel()
}

// VertexBinding is an ordered list of attributes read from one vertex buffer.
type VertexBinding struct {
	binding    uint32
	stride     uint32
	inputRate  VertexInputRate
	attributes []VertexAttribute
}

// NewVertexBinding creates an empty per-vertex binding.
func NewVertexBinding(binding uint32) VertexBinding {
	return VertexBinding{binding: binding, inputRate: VertexInputRateVertex}
}

// Binding returns the binding number.
func (b *VertexBinding) Binding() uint32 { return b.binding }

// SetBinding renumbers the binding and all of its attributes.
func (b *VertexBinding) SetBinding(binding uint32) {
	b.binding = binding
	for i := range b.attributes {
		b.attributes[i].Binding = binding
	}
}

// Stride returns the byte distance between consecutive vertices.
func (b *VertexBinding) Stride() uint32 { return b.stride }

// SetStride overrides the computed stride.
func (b *VertexBinding) SetStride(stride uint32) { b.stride = stride }

// InputRate returns the binding's input rate.
func (b *VertexBinding) InputRate() VertexInputRate { return b.inputRate }

// AttributeCount returns the number of attributes in the binding.
func (b *VertexBinding) AttributeCount() int { return len(b.attributes) }

// Attribute returns the attribute at index i.
func (b *VertexBinding) Attribute(i int) (VertexAttribute, bool) {
	if i < 0 || i >= len(b.attributes) {
		return VertexAttribute{}, false
	}
	return b.attributes[i], true
}

// Attributes returns a copy of the attribute list.
func (b *VertexBinding) Attributes() []VertexAttribute {
	return slices.Clone(b.attributes)
}

// AttributeIndex returns the index of the attribute with the given semantic.
func (b *VertexBinding) AttributeIndex(semantic Semantic) (int, bool) {
	for i := range b.attributes {
		if b.attributes[i].Semantic == semantic {
			return i, true
		}
	}
	return -1, false
}

// HasSemantic reports whether the binding holds an attribute with the given semantic.
func (b *VertexBinding) HasSemantic(semantic Semantic) bool {
	_, ok := b.AttributeIndex(semantic)
	return ok
}

// AppendAttribute adds an attribute to the end of the binding.
// An attribute with Offset AppendOffsetAligned is placed right after
// the previous attribute. The stride is recomputed afterwards.
func (b *VertexBinding) AppendAttribute(attr VertexAttribute) {
	attr.Binding = b.binding
	if attr.Offset == AppendOffsetAligned {
		attr.Offset = 0
		if n := len(b.attributes); n > 0 {
			prev := b.attributes[n-1]
			attr.Offset = prev.Offset + prev.Size()
		}
	}
	if b.inputRate == VertexInputRateUndefined {
		b.inputRate = attr.InputRate
		if b.inputRate == VertexInputRateUndefined {
			b.inputRate = VertexInputRateVertex
		}
	}
	if attr.InputRate == VertexInputRateUndefined {
		attr.InputRate = b.inputRate
	}
	b.attributes = append(b.attributes, attr)

	var stride uint32
	for i := range b.attributes {
		stride += b.attributes[i].Size()
	}
	b.stride = stride
}

// Clone returns a deep copy of the binding.
func (b *VertexBinding) Clone() VertexBinding {
	c := *b
	c.attributes = slices.Clone(b.attributes)
	return c
}
