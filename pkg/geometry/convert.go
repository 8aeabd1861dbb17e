package geometry

import (
	"github.com/cockroachdb/errors"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// TriMeshOptions returns planar options matching the attributes and index
// type of m. Attributes are registered as position, color, normal,
// texcoord, tangent, bitangent, skipping those m does not carry.
func TriMeshOptions(m *mesh.TriMesh) *Options {
	opts := NewOptions(LayoutPlanar).WithIndexType(m.IndexType()).AddPosition()
	if m.HasColors() {
		opts.AddColor()
	}
	if m.HasNormals() {
		opts.AddNormal()
	}
	if m.HasTexCoords() {
		opts.AddTexCoord()
	}
	if m.HasTangents() {
		opts.AddTangent()
	}
	if m.HasBitangents() {
		opts.AddBitangent()
	}
	return opts
}

// WireMeshOptions returns planar options matching the attributes and index type of m.
func WireMeshOptions(m *mesh.WireMesh) *Options {
	opts := NewOptions(LayoutPlanar).WithIndexType(m.IndexType()).AddPosition()
	if m.HasColors() {
		opts.AddColor()
	}
	return opts
}

// FromTriMesh builds a Geometry from m using TriMeshOptions(m).
func FromTriMesh(m *mesh.TriMesh) (*Geometry, error) {
	return NewFromTriMesh(TriMeshOptions(m), m)
}

// FromWireMesh builds a Geometry from m using WireMeshOptions(m).
func FromWireMesh(m *mesh.WireMesh) (*Geometry, error) {
	return NewFromWireMesh(WireMeshOptions(m), m)
}

// NewFromTriMesh builds a Geometry with opts and fills it from m.
//
// Depending on whether the target and the source are indexed:
//   - target unindexed, source indexed: every triangle's vertices are
//     appended in triangle order, duplicating shared vertices.
//   - neither indexed: vertices are appended in order.
//   - both indexed: the source indices are copied verbatim, then every
//     source vertex is appended in order.
//   - target indexed, source unindexed: each run of three vertices becomes
//     a new indexed triangle.
func NewFromTriMesh(opts *Options, m *mesh.TriMesh) (*Geometry, error) {
	g, err := New(opts)
	if err != nil {
		return nil, err
	}

	targetIndexed := g.IndexType() != gfx.IndexTypeUndefined
	sourceIndexed := m.IndexType() != gfx.IndexTypeUndefined

	switch {
	case !targetIndexed && sourceIndexed:
		for t := uint32(0); t < m.TriangleCount(); t++ {
			v0, v1, v2, err := m.Triangle(t)
			if err != nil {
				return nil, errors.Wrapf(err, "triangle %d", t)
			}
			for _, vi := range [3]uint32{v0, v1, v2} {
				vd, err := m.VertexData(vi)
				if err != nil {
					return nil, errors.Wrapf(err, "triangle %d", t)
				}
				g.AppendVertexData(vd)
			}
		}

	case !targetIndexed && !sourceIndexed:
		if err := appendTriMeshVertices(g, m); err != nil {
			return nil, err
		}

	case targetIndexed && sourceIndexed:
		for t := uint32(0); t < m.TriangleCount(); t++ {
			v0, v1, v2, err := m.Triangle(t)
			if err != nil {
				return nil, errors.Wrapf(err, "triangle %d", t)
			}
			g.AppendIndicesTriangle(v0, v1, v2)
		}
		if err := appendTriMeshVertices(g, m); err != nil {
			return nil, err
		}

	default:
		for i := uint32(0); i+2 < m.PositionCount(); i += 3 {
			var vtx [3]mesh.TriMeshVertexData
			for k := range vtx {
				if vtx[k], err = m.VertexData(i + uint32(k)); err != nil {
					return nil, errors.Wrapf(err, "vertex %d", i+uint32(k))
				}
			}
			g.AppendTriangle(vtx[0], vtx[1], vtx[2])
		}
	}
	return g, nil
}

func appendTriMeshVertices(g *Geometry, m *mesh.TriMesh) error {
	for i := uint32(0); i < m.PositionCount(); i++ {
		vd, err := m.VertexData(i)
		if err != nil {
			return errors.Wrapf(err, "vertex %d", i)
		}
		g.AppendVertexData(vd)
	}
	return nil
}

// NewFromWireMesh builds a Geometry with opts and fills it from m, following
// the same rules as NewFromTriMesh with edges in place of triangles.
func NewFromWireMesh(opts *Options, m *mesh.WireMesh) (*Geometry, error) {
	g, err := New(opts)
	if err != nil {
		return nil, err
	}

	targetIndexed := g.IndexType() != gfx.IndexTypeUndefined
	sourceIndexed := m.IndexType() != gfx.IndexTypeUndefined

	switch {
	case !targetIndexed && sourceIndexed:
		for e := uint32(0); e < m.EdgeCount(); e++ {
			v0, v1, err := m.Edge(e)
			if err != nil {
				return nil, errors.Wrapf(err, "edge %d", e)
			}
			for _, vi := range [2]uint32{v0, v1} {
				vd, err := m.VertexData(vi)
				if err != nil {
					return nil, errors.Wrapf(err, "edge %d", e)
				}
				g.AppendWireVertexData(vd)
			}
		}

	case !targetIndexed && !sourceIndexed:
		if err := appendWireMeshVertices(g, m); err != nil {
			return nil, err
		}

	case targetIndexed && sourceIndexed:
		for e := uint32(0); e < m.EdgeCount(); e++ {
			v0, v1, err := m.Edge(e)
			if err != nil {
				return nil, errors.Wrapf(err, "edge %d", e)
			}
			g.AppendIndicesEdge(v0, v1)
		}
		if err := appendWireMeshVertices(g, m); err != nil {
			return nil, err
		}

	default:
		for i := uint32(0); i+1 < m.PositionCount(); i += 2 {
			v0, err := m.VertexData(i)
			if err != nil {
				return nil, errors.Wrapf(err, "vertex %d", i)
			}
			v1, err := m.VertexData(i + 1)
			if err != nil {
				return nil, errors.Wrapf(err, "vertex %d", i+1)
			}
			g.AppendEdge(v0, v1)
		}
	}
	return g, nil
}

func appendWireMeshVertices(g *Geometry, m *mesh.WireMesh) error {
	for i := uint32(0); i < m.PositionCount(); i++ {
		vd, err := m.VertexData(i)
		if err != nil {
			return errors.Wrapf(err, "vertex %d", i)
		}
		g.AppendWireVertexData(vd)
	}
	return nil
}
