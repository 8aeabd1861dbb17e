package geometry

import (
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// Default attribute formats.
const (
	DefaultPositionFormat  = gfx.FormatR32G32B32Float
	DefaultNormalFormat    = gfx.FormatR32G32B32Float
	DefaultColorFormat     = gfx.FormatR32G32B32Float
	DefaultTexCoordFormat  = gfx.FormatR32G32Float
	DefaultTangentFormat   = gfx.FormatR32G32B32A32Float
	DefaultBitangentFormat = gfx.FormatR32G32B32Float
)

// DefaultFormat returns the format the Add methods use for semantic when
// none is given.
func DefaultFormat(semantic gfx.Semantic) gfx.Format {
	switch semantic {
	case gfx.SemanticPosition:
		return DefaultPositionFormat
	case gfx.SemanticNormal:
		return DefaultNormalFormat
	case gfx.SemanticColor:
		return DefaultColorFormat
	case gfx.SemanticTexCoord:
		return DefaultTexCoordFormat
	case gfx.SemanticTangent:
		return DefaultTangentFormat
	case gfx.SemanticBitangent:
		return DefaultBitangentFormat
	}
	return gfx.FormatUndefined
}

// Options describes the index width, vertex layout and attributes of a
// Geometry. Attributes are registered with the Add methods, which assign
// shader locations in call order:
//
//	opts := geometry.InterleavedU16().AddColor().AddTexCoord()
//
// Here position gets location 0, color 1 and texcoord 2. Changing the call
// order changes the locations.
type Options struct {
	IndexType gfx.IndexType
	Layout    Layout
	Topology  gfx.PrimitiveTopology

	bindings []gfx.VertexBinding
}

// NewOptions returns empty triangle-list options for the given layout.
func NewOptions(layout Layout) *Options {
	return &Options{
		Layout:   layout,
		Topology: gfx.PrimitiveTopologyTriangleList,
	}
}

func preset(layout Layout, indexType gfx.IndexType, format []gfx.Format) *Options {
	o := NewOptions(layout)
	o.IndexType = indexType
	return o.AddPosition(format...)
}

// Interleaved returns unindexed interleaved options with a position attribute.
func Interleaved(format ...gfx.Format) *Options {
	return preset(LayoutInterleaved, gfx.IndexTypeUndefined, format)
}

// InterleavedU16 returns interleaved options with 16-bit indices and a position attribute.
func InterleavedU16(format ...gfx.Format) *Options {
	return preset(LayoutInterleaved, gfx.IndexTypeUint16, format)
}

// InterleavedU32 returns interleaved options with 32-bit indices and a position attribute.
func InterleavedU32(format ...gfx.Format) *Options {
	return preset(LayoutInterleaved, gfx.IndexTypeUint32, format)
}

// Planar returns unindexed planar options with a position attribute.
func Planar(format ...gfx.Format) *Options {
	return preset(LayoutPlanar, gfx.IndexTypeUndefined, format)
}

// PlanarU16 returns planar options with 16-bit indices and a position attribute.
func PlanarU16(format ...gfx.Format) *Options {
	return preset(LayoutPlanar, gfx.IndexTypeUint16, format)
}

// PlanarU32 returns planar options with 32-bit indices and a position attribute.
func PlanarU32(format ...gfx.Format) *Options {
	return preset(LayoutPlanar, gfx.IndexTypeUint32, format)
}

// PositionPlanar returns unindexed position-planar options with a position attribute.
func PositionPlanar(format ...gfx.Format) *Options {
	return preset(LayoutPositionPlanar, gfx.IndexTypeUndefined, format)
}

// PositionPlanarU16 returns position-planar options with 16-bit indices and a position attribute.
func PositionPlanarU16(format ...gfx.Format) *Options {
	return preset(LayoutPositionPlanar, gfx.IndexTypeUint16, format)
}

// PositionPlanarU32 returns position-planar options with 32-bit indices and a position attribute.
func PositionPlanarU32(format ...gfx.Format) *Options {
	return preset(LayoutPositionPlanar, gfx.IndexTypeUint32, format)
}

// WithIndexType sets the index width.
func (o *Options) WithIndexType(indexType gfx.IndexType) *Options {
	o.IndexType = indexType
	return o
}

// IndexTypeU16 sets 16-bit indices.
func (o *Options) IndexTypeU16() *Options { return o.WithIndexType(gfx.IndexTypeUint16) }

// IndexTypeU32 sets 32-bit indices.
func (o *Options) IndexTypeU32() *Options { return o.WithIndexType(gfx.IndexTypeUint32) }

// AddPosition registers the position attribute.
func (o *Options) AddPosition(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticPosition, pickFormat(format, DefaultPositionFormat))
}

// AddNormal registers the normal attribute.
func (o *Options) AddNormal(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticNormal, pickFormat(format, DefaultNormalFormat))
}

// AddColor registers the vertex color attribute.
func (o *Options) AddColor(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticColor, pickFormat(format, DefaultColorFormat))
}

// AddTexCoord registers the texture coordinate attribute.
func (o *Options) AddTexCoord(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticTexCoord, pickFormat(format, DefaultTexCoordFormat))
}

// AddTangent registers the tangent attribute.
func (o *Options) AddTangent(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticTangent, pickFormat(format, DefaultTangentFormat))
}

// AddBitangent registers the bitangent attribute.
func (o *Options) AddBitangent(format ...gfx.Format) *Options {
	return o.AddAttribute(gfx.SemanticBitangent, pickFormat(format, DefaultBitangentFormat))
}

// AddAttribute registers an attribute for semantic. Registering a semantic
// that already exists in any binding does nothing. The new attribute's
// location is the number of attributes registered before it. An undefined
// format selects DefaultFormat(semantic).
func (o *Options) AddAttribute(semantic gfx.Semantic, format gfx.Format) *Options {
	if o.HasSemantic(semantic) {
		return o
	}
	if format == gfx.FormatUndefined {
		format = DefaultFormat(semantic)
	}

	attr := gfx.VertexAttribute{
		SemanticName: semantic.Name(),
		Location:     o.AttributeCount(),
		Format:       format,
		Offset:       gfx.AppendOffsetAligned,
		InputRate:    gfx.VertexInputRateVertex,
		Semantic:     semantic,
	}

	switch o.Layout {
	case LayoutInterleaved:
		o.ensureBindings(1)
		o.bindings[0].AppendAttribute(attr)
	case LayoutPlanar:
		assertf(len(o.bindings) < gfx.MaxVertexBindings, "max vertex bindings exceeded")
		b := gfx.NewVertexBinding(uint32(len(o.bindings)))
		b.AppendAttribute(attr)
		o.bindings = append(o.bindings, b)
	case LayoutPositionPlanar:
		o.ensureBindings(2)
		if semantic == gfx.SemanticPosition {
			o.bindings[0].AppendAttribute(attr)
		} else {
			o.bindings[1].AppendAttribute(attr)
		}
	default:
		assertf(false, "unknown vertex layout %s", o.Layout)
	}
	return o
}

// HasSemantic reports whether any binding holds an attribute for semantic.
func (o *Options) HasSemantic(semantic gfx.Semantic) bool {
	for i := range o.bindings {
		if o.bindings[i].HasSemantic(semantic) {
			return true
		}
	}
	return false
}

// Attribute returns the attribute registered for semantic.
func (o *Options) Attribute(semantic gfx.Semantic) (gfx.VertexAttribute, bool) {
	for i := range o.bindings {
		if idx, ok := o.bindings[i].AttributeIndex(semantic); ok {
			return o.bindings[i].Attribute(idx)
		}
	}
	return gfx.VertexAttribute{}, false
}

// AttributeCount returns the number of attributes across all bindings.
func (o *Options) AttributeCount() uint32 {
	var n uint32
	for i := range o.bindings {
		n += uint32(o.bindings[i].AttributeCount())
	}
	return n
}

// VertexBindingCount returns the number of vertex bindings.
func (o *Options) VertexBindingCount() uint32 { return uint32(len(o.bindings)) }

// VertexBinding returns a copy of binding i.
func (o *Options) VertexBinding(i uint32) (gfx.VertexBinding, bool) {
	if i >= uint32(len(o.bindings)) {
		return gfx.VertexBinding{}, false
	}
	return o.bindings[i].Clone(), true
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	c := *o
	c.bindings = make([]gfx.VertexBinding, len(o.bindings))
	for i := range o.bindings {
		c.bindings[i] = o.bindings[i].Clone()
	}
	return &c
}

func (o *Options) ensureBindings(n int) {
	for len(o.bindings) < n {
		o.bindings = append(o.bindings, gfx.NewVertexBinding(uint32(len(o.bindings))))
	}
}

func pickFormat(format []gfx.Format, def gfx.Format) gfx.Format {
	if len(format) > 0 && format[0] != gfx.FormatUndefined {
		return format[0]
	}
	return def
}
