package mesh

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// TriMesh is a triangle mesh stored as separate attribute streams.
// Index data is kept as little-endian bytes of the mesh's index type.
type TriMesh struct {
	indexType  gfx.IndexType
	indices    []byte
	positions  []mgl32.Vec3
	colors     []mgl32.Vec3
	normals    []mgl32.Vec3
	texCoords  []mgl32.Vec2
	tangents   []mgl32.Vec4
	bitangents []mgl32.Vec3
	bounds     Bounds
}

// NewTriMesh creates an empty triangle mesh.
func NewTriMesh(indexType gfx.IndexType) *TriMesh {
	return &TriMesh{indexType: indexType}
}

// IndexType returns the width of the mesh's indices.
func (m *TriMesh) IndexType() gfx.IndexType { return m.indexType }

// IndexData returns the raw index bytes.
func (m *TriMesh) IndexData() []byte { return m.indices }

// IndexCount returns the number of stored indices.
func (m *TriMesh) IndexCount() uint32 {
	size := m.indexType.Size()
	if size == 0 {
		return 0
	}
	return uint32(len(m.indices)) / size
}

// TriangleCount returns the number of indexed triangles.
func (m *TriMesh) TriangleCount() uint32 { return m.IndexCount() / 3 }

// PositionCount returns the number of vertices.
func (m *TriMesh) PositionCount() uint32 { return uint32(len(m.positions)) }

// ColorCount returns the number of vertex colors.
func (m *TriMesh) ColorCount() uint32 { return uint32(len(m.colors)) }

// NormalCount returns the number of normals.
func (m *TriMesh) NormalCount() uint32 { return uint32(len(m.normals)) }

// TexCoordCount returns the number of texture coordinates.
func (m *TriMesh) TexCoordCount() uint32 { return uint32(len(m.texCoords)) }

// TangentCount returns the number of tangents.
func (m *TriMesh) TangentCount() uint32 { return uint32(len(m.tangents)) }

// BitangentCount returns the number of bitangents.
func (m *TriMesh) BitangentCount() uint32 { return uint32(len(m.bitangents)) }

// HasColors reports whether the mesh carries vertex colors.
func (m *TriMesh) HasColors() bool { return len(m.colors) > 0 }

// HasNormals reports whether the mesh carries normals.
func (m *TriMesh) HasNormals() bool { return len(m.normals) > 0 }

// HasTexCoords reports whether the mesh carries texture coordinates.
func (m *TriMesh) HasTexCoords() bool { return len(m.texCoords) > 0 }

// HasTangents reports whether the mesh carries tangents.
func (m *TriMesh) HasTangents() bool { return len(m.tangents) > 0 }

// HasBitangents reports whether the mesh carries bitangents.
func (m *TriMesh) HasBitangents() bool { return len(m.bitangents) > 0 }

// Bounds returns the bounding box of all positions.
func (m *TriMesh) Bounds() Bounds { return m.bounds }

// AppendTriangle appends one triangle's indices and returns the triangle count.
// It does nothing on a mesh without an index type.
func (m *TriMesh) AppendTriangle(v0, v1, v2 uint32) uint32 {
	m.indices = appendIndices(m.indices, m.indexType, v0, v1, v2)
	return m.TriangleCount()
}

// AppendPosition appends a position and returns the position count.
func (m *TriMesh) AppendPosition(p mgl32.Vec3) uint32 {
	m.bounds.extend(p, len(m.positions) == 0)
	m.positions = append(m.positions, p)
	return m.PositionCount()
}

// AppendColor appends a vertex color and returns the color count.
func (m *TriMesh) AppendColor(c mgl32.Vec3) uint32 {
	m.colors = append(m.colors, c)
	return m.ColorCount()
}

// AppendNormal appends a normal and returns the normal count.
func (m *TriMesh) AppendNormal(n mgl32.Vec3) uint32 {
	m.normals = append(m.normals, n)
	return m.NormalCount()
}

// AppendTexCoord appends a texture coordinate and returns the texture coordinate count.
func (m *TriMesh) AppendTexCoord(uv mgl32.Vec2) uint32 {
	m.texCoords = append(m.texCoords, uv)
	return m.TexCoordCount()
}

// AppendTangent appends a tangent and returns the tangent count.
func (m *TriMesh) AppendTangent(t mgl32.Vec4) uint32 {
	m.tangents = append(m.tangents, t)
	return m.TangentCount()
}

// AppendBitangent appends a bitangent and returns the bitangent count.
func (m *TriMesh) AppendBitangent(b mgl32.Vec3) uint32 {
	m.bitangents = append(m.bitangents, b)
	return m.BitangentCount()
}

// Triangle returns the vertex indices of triangle i.
func (m *TriMesh) Triangle(i uint32) (v0, v1, v2 uint32, err error) {
	if m.indexType == gfx.IndexTypeUndefined {
		return 0, 0, 0, ErrNoIndexData
	}
	if i >= m.TriangleCount() {
		return 0, 0, 0, errors.Wrapf(ErrOutOfRange, "triangle %d of %d", i, m.TriangleCount())
	}
	base := 3 * i
	return readIndex(m.indices, m.indexType, base),
		readIndex(m.indices, m.indexType, base+1),
		readIndex(m.indices, m.indexType, base+2),
		nil
}

// VertexData returns every attribute stored for vertex i.
// Attributes the mesh does not carry are left zero.
func (m *TriMesh) VertexData(i uint32) (TriMeshVertexData, error) {
	if i >= m.PositionCount() {
		return TriMeshVertexData{}, errors.Wrapf(ErrOutOfRange, "vertex %d of %d", i, m.PositionCount())
	}
	vd := TriMeshVertexData{Position: m.positions[i]}
	if int(i) < len(m.colors) {
		vd.Color = m.colors[i]
	}
	if int(i) < len(m.normals) {
		vd.Normal = m.normals[i]
	}
	if int(i) < len(m.texCoords) {
		vd.TexCoord = m.texCoords[i]
	}
	if int(i) < len(m.tangents) {
		vd.Tangent = m.tangents[i]
	}
	if int(i) < len(m.bitangents) {
		vd.Bitangent = m.bitangents[i]
	}
	return vd, nil
}

func appendIndices(dst []byte, indexType gfx.IndexType, values ...uint32) []byte {
	switch indexType {
	case gfx.IndexTypeUint16:
		for _, v := range values {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		}
	case gfx.IndexTypeUint32:
		for _, v := range values {
			dst = binary.LittleEndian.AppendUint32(dst, v)
		}
	}
	return dst
}

func readIndex(data []byte, indexType gfx.IndexType, i uint32) uint32 {
	switch indexType {
	case gfx.IndexTypeUint16:
		return uint32(binary.LittleEndian.Uint16(data[2*i:]))
	case gfx.IndexTypeUint32:
		return binary.LittleEndian.Uint32(data[4*i:])
	}
	return 0
}
