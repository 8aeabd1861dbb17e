package gfx

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// IndexType is the width of the values stored in an index buffer.
type IndexType uint32

// Index types.
const (
	IndexTypeUndefined IndexType = iota
	IndexTypeUint16
	IndexTypeUint32
)

// Size returns the byte size of one index, or 0 for IndexTypeUndefined.
func (t IndexType) Size() uint32 {
	switch t {
	case IndexTypeUint16:
		return 2
	case IndexTypeUint32:
		return 4
	default:
		return 0
	}
}

// Format returns the buffer format matching the index width.
func (t IndexType) Format() Format {
	switch t {
	case IndexTypeUint16:
		return FormatR16Uint
	case IndexTypeUint32:
		return FormatR32Uint
	default:
		return FormatUndefined
	}
}

// String returns a human-readable index type name.
func (t IndexType) String() string {
	switch t {
	case IndexTypeUndefined:
		return "undefined"
	case IndexTypeUint16:
		return "uint16"
	case IndexTypeUint32:
		return "uint32"
	default:
		return fmt.Sprintf("IndexType(%d)", uint32(t))
	}
}

// ParseIndexType accepts "", "none", "undefined", "u16", "uint16", "u32" and "uint32".
func ParseIndexType(s string) (IndexType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "undefined":
		return IndexTypeUndefined, nil
	case "u16", "uint16":
		return IndexTypeUint16, nil
	case "u32", "uint32":
		return IndexTypeUint32, nil
	}
	return IndexTypeUndefined, errors.Newf("unknown index type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t IndexType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *IndexType) UnmarshalText(text []byte) error {
	v, err := ParseIndexType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Semantic is the logical meaning of a vertex attribute.
type Semantic uint32

// Vertex semantics.
const (
	SemanticUndefined Semantic = iota
	SemanticPosition
	SemanticNormal
	SemanticColor
	SemanticTangent
	SemanticBitangent
	SemanticTexCoord
)

// Semantics lists every defined semantic in declaration order.
var Semantics = []Semantic{
	SemanticPosition,
	SemanticNormal,
	SemanticColor,
	SemanticTangent,
	SemanticBitangent,
	SemanticTexCoord,
}

var semanticNames = [...]string{
	SemanticUndefined: "UNDEFINED",
	SemanticPosition:  "POSITION",
	SemanticNormal:    "NORMAL",
	SemanticColor:     "COLOR",
	SemanticTangent:   "TANGENT",
	SemanticBitangent: "BITANGENT",
	SemanticTexCoord:  "TEXCOORD",
}

// Name returns the shader semantic name, e.g. "POSITION".
func (s Semantic) Name() string {
	if int(s) >= len(semanticNames) {
		return semanticNames[SemanticUndefined]
	}
	return semanticNames[s]
}

// String returns the lower-case semantic name.
func (s Semantic) String() string {
	if int(s) >= len(semanticNames) {
		return fmt.Sprintf("Semantic(%d)", uint32(s))
	}
	return strings.ToLower(semanticNames[s])
}

// ParseSemantic converts a semantic name into a Semantic. Matching ignores case.
func ParseSemantic(s string) (Semantic, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, sem := range Semantics {
		if semanticNames[sem] == name {
			return sem, nil
		}
	}
	return SemanticUndefined, errors.Newf("unknown vertex semantic %q", s)
}

// PrimitiveTopology is how vertices are assembled into primitives.
type PrimitiveTopology uint32

// Primitive topologies.
const (
	PrimitiveTopologyUndefined PrimitiveTopology = iota
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyPointList
)

// String returns a human-readable topology name.
func (t PrimitiveTopology) String() string {
	switch t {
	case PrimitiveTopologyUndefined:
		return "undefined"
	case PrimitiveTopologyTriangleList:
		return "triangle_list"
	case PrimitiveTopologyTriangleStrip:
		return "triangle_strip"
	case PrimitiveTopologyLineList:
		return "line_list"
	case PrimitiveTopologyLineStrip:
		return "line_strip"
	case PrimitiveTopologyPointList:
		return "point_list"
	default:
		return fmt.Sprintf("PrimitiveTopology(%d)", uint32(t))
	}
}

// VertexInputRate selects whether a binding advances per vertex or per instance.
type VertexInputRate uint32

// Vertex input rates.
const (
	VertexInputRateUndefined VertexInputRate = iota
	VertexInputRateVertex
	VertexInputRateInstance
)

// String returns a human-readable input rate name.
func (r VertexInputRate) String() string {
	switch r {
	case VertexInputRateVertex:
		return "vertex"
	case VertexInputRateInstance:
		return "instance"
	default:
		return "undefined"
	}
}
