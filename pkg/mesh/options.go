package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// DefaultObjectColor is the flat color used when ObjectColor is enabled without a color.
var DefaultObjectColor = mgl32.Vec3{0.7, 0.7, 0.7}

// TriMeshOptions selects which attributes the generators and importer emit.
type TriMeshOptions struct {
	Indices           bool // emit uint32 indices
	VertexColors      bool
	Normals           bool
	TexCoords         bool
	Tangents          bool // tangents and bitangents
	EnableObjectColor bool // overrides vertex colors with ObjectColor
	ObjectColor       mgl32.Vec3
	Scale             mgl32.Vec3 // zero means {1, 1, 1}
	TexCoordScale     mgl32.Vec2 // zero means {1, 1}
	InvertTexCoordsV  bool
	InvertWinding     bool
}

// DefaultTriMeshOptions returns options that emit positions only.
func DefaultTriMeshOptions() TriMeshOptions {
	return TriMeshOptions{
		ObjectColor:   DefaultObjectColor,
		Scale:         mgl32.Vec3{1, 1, 1},
		TexCoordScale: mgl32.Vec2{1, 1},
	}
}

// AllAttributes returns options with indices and every attribute enabled.
func AllAttributes() TriMeshOptions {
	opts := DefaultTriMeshOptions()
	opts.Indices = true
	opts.VertexColors = true
	opts.Normals = true
	opts.TexCoords = true
	opts.Tangents = true
	return opts
}

func (o TriMeshOptions) indexType() gfx.IndexType {
	if o.Indices {
		return gfx.IndexTypeUint32
	}
	return gfx.IndexTypeUndefined
}

func (o TriMeshOptions) scale() mgl32.Vec3 {
	if o.Scale == (mgl32.Vec3{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return o.Scale
}

func (o TriMeshOptions) texCoordScale() mgl32.Vec2 {
	if o.TexCoordScale == (mgl32.Vec2{}) {
		return mgl32.Vec2{1, 1}
	}
	return o.TexCoordScale
}

// WireMeshOptions selects which attributes the wire generators emit.
type WireMeshOptions struct {
	Indices           bool
	VertexColors      bool
	EnableObjectColor bool
	ObjectColor       mgl32.Vec3
	Scale             mgl32.Vec3 // zero means {1, 1, 1}
}

// DefaultWireMeshOptions returns options that emit positions only.
func DefaultWireMeshOptions() WireMeshOptions {
	return WireMeshOptions{
		ObjectColor: DefaultObjectColor,
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

func (o WireMeshOptions) indexType() gfx.IndexType {
	if o.Indices {
		return gfx.IndexTypeUint32
	}
	return gfx.IndexTypeUndefined
}

func (o WireMeshOptions) scale() mgl32.Vec3 {
	if o.Scale == (mgl32.Vec3{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return o.Scale
}

func mulVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func mulVec2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] * b[0], a[1] * b[1]}
}
