package geometry

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// vertexRecord is one vertex handed to a processor. Wire vertices only
// carry position and color.
type vertexRecord struct {
	data mesh.TriMeshVertexData
	wire bool
}

func triRecord(v mesh.TriMeshVertexData) vertexRecord {
	return vertexRecord{data: v}
}

func wireRecord(v mesh.WireMeshVertexData) vertexRecord {
	return vertexRecord{
		data: mesh.TriMeshVertexData{Position: v.Position, Color: v.Color},
		wire: true,
	}
}

// has reports whether the record carries a value for semantic.
func (r vertexRecord) has(semantic gfx.Semantic) bool {
	switch semantic {
	case gfx.SemanticPosition, gfx.SemanticColor:
		return true
	case gfx.SemanticNormal, gfx.SemanticTexCoord, gfx.SemanticTangent, gfx.SemanticBitangent:
		return !r.wire
	}
	return false
}

// value returns the record's components for semantic. Missing components
// default to 0, except color alpha which defaults to 1.
func (r vertexRecord) value(semantic gfx.Semantic) [4]float32 {
	d := r.data
	switch semantic {
	case gfx.SemanticPosition:
		return [4]float32{d.Position[0], d.Position[1], d.Position[2], 0}
	case gfx.SemanticNormal:
		return [4]float32{d.Normal[0], d.Normal[1], d.Normal[2], 0}
	case gfx.SemanticColor:
		return [4]float32{d.Color[0], d.Color[1], d.Color[2], 1}
	case gfx.SemanticTexCoord:
		return [4]float32{d.TexCoord[0], d.TexCoord[1], 0, 0}
	case gfx.SemanticTangent:
		return [4]float32(d.Tangent)
	case gfx.SemanticBitangent:
		return [4]float32{d.Bitangent[0], d.Bitangent[1], d.Bitangent[2], 0}
	}
	return [4]float32{}
}

// appendAttribute writes attr's value from r into b. A semantic the record
// does not carry is written as zeros so interleaved strides stay intact.
func appendAttribute(b *Buffer, attr gfx.VertexAttribute, r vertexRecord) {
	if !r.has(attr.Semantic) {
		b.SetSize(b.Size() + attr.Size())
		return
	}
	b.data = encodeComponents(b.data, r.value(attr.Semantic), attr.Format)
}

// encodeComponents appends v converted to format f in little-endian order.
func encodeComponents(dst []byte, v [4]float32, f gfx.Format) []byte {
	n := int(f.ComponentCount())
	for i := 0; i < n; i++ {
		switch f.ComponentType() {
		case gfx.ComponentFloat32:
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v[i]))
		case gfx.ComponentFloat16:
			dst = binary.LittleEndian.AppendUint16(dst, float16Bits(v[i]))
		case gfx.ComponentUnorm8:
			dst = append(dst, uint8(math.Round(float64(clamp(v[i], 0, 1))*255)))
		case gfx.ComponentSnorm8:
			dst = append(dst, uint8(int8(math.Round(float64(clamp(v[i], -1, 1))*127))))
		case gfx.ComponentUint16:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v[i]))
		case gfx.ComponentUint32:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(v[i]))
		}
	}
	return dst
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// float16Bits converts f to IEEE 754 half precision, rounding to nearest even.
func float16Bits(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}
