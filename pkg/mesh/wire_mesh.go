package mesh

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// WireMesh is a line mesh made of edges between colored positions.
type WireMesh struct {
	indexType gfx.IndexType
	indices   []byte
	positions []mgl32.Vec3
	colors    []mgl32.Vec3
	bounds    Bounds
}

// NewWireMesh creates an empty wire mesh.
func NewWireMesh(indexType gfx.IndexType) *WireMesh {
	return &WireMesh{indexType: indexType}
}

// IndexType returns the width of the mesh's indices.
func (m *WireMesh) IndexType() gfx.IndexType { return m.indexType }

// IndexData returns the raw index bytes.
func (m *WireMesh) IndexData() []byte { return m.indices }

// IndexCount returns the number of stored indices.
func (m *WireMesh) IndexCount() uint32 {
	size := m.indexType.Size()
	if size == 0 {
		return 0
	}
	return uint32(len(m.indices)) / size
}

// EdgeCount returns the number of indexed edges.
func (m *WireMesh) EdgeCount() uint32 { return m.IndexCount() / 2 }

// PositionCount returns the number of vertices.
func (m *WireMesh) PositionCount() uint32 { return uint32(len(m.positions)) }

// ColorCount returns the number of vertex colors.
func (m *WireMesh) ColorCount() uint32 { return uint32(len(m.colors)) }

// HasColors reports whether the mesh carries vertex colors.
func (m *WireMesh) HasColors() bool { return len(m.colors) > 0 }

// Bounds returns the bounding box of all positions.
func (m *WireMesh) Bounds() Bounds { return m.bounds }

// AppendEdge appends one edge's indices and returns the edge count.
// It does nothing on a mesh without an index type.
func (m *WireMesh) AppendEdge(v0, v1 uint32) uint32 {
	m.indices = appendIndices(m.indices, m.indexType, v0, v1)
	return m.EdgeCount()
}

// AppendPosition appends a position and returns the position count.
func (m *WireMesh) AppendPosition(p mgl32.Vec3) uint32 {
	m.bounds.extend(p, len(m.positions) == 0)
	m.positions = append(m.positions, p)
	return m.PositionCount()
}

// AppendColor appends a vertex color and returns the color count.
func (m *WireMesh) AppendColor(c mgl32.Vec3) uint32 {
	m.colors = append(m.colors, c)
	return m.ColorCount()
}

// Edge returns the vertex indices of edge i.
func (m *WireMesh) Edge(i uint32) (v0, v1 uint32, err error) {
	if m.indexType == gfx.IndexTypeUndefined {
		return 0, 0, ErrNoIndexData
	}
	if i >= m.EdgeCount() {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "edge %d of %d", i, m.EdgeCount())
	}
	return readIndex(m.indices, m.indexType, 2*i), readIndex(m.indices, m.indexType, 2*i+1), nil
}

// VertexData returns the position and color of vertex i.
func (m *WireMesh) VertexData(i uint32) (WireMeshVertexData, error) {
	if i >= m.PositionCount() {
		return WireMeshVertexData{}, errors.Wrapf(ErrOutOfRange, "vertex %d of %d", i, m.PositionCount())
	}
	vd := WireMeshVertexData{Position: m.positions[i]}
	if int(i) < len(m.colors) {
		vd.Color = m.colors[i]
	}
	return vd, nil
}
