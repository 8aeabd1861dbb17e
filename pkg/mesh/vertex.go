// Package mesh provides CPU-side source meshes (triangle and wire) along
// with procedural generators and an OBJ importer.
package mesh

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh lookup errors.
var (
	ErrNoIndexData = errors.New("mesh has no index data")
	ErrOutOfRange  = errors.New("index out of range")
)

// TriMeshVertexData is one fully attributed triangle mesh vertex.
type TriMeshVertexData struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoord  mgl32.Vec2
	Tangent   mgl32.Vec4
	Bitangent mgl32.Vec3
}

// WireMeshVertexData is one wire mesh vertex.
type WireMeshVertexData struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the center of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// extend grows the box to include p. first resets the box to p.
func (b *Bounds) extend(p mgl32.Vec3, first bool) {
	if first {
		b.Min, b.Max = p, p
		return
	}
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}
