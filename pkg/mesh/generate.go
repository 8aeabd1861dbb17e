package mesh

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane selects the orientation of a generated plane.
type Plane uint8

// Plane orientations. The name is the direction of the face normal.
const (
	PlanePositiveY Plane = iota
	PlaneNegativeY
)

// String returns the plane name, e.g. "+y".
func (p Plane) String() string {
	switch p {
	case PlanePositiveY:
		return "+y"
	case PlaneNegativeY:
		return "-y"
	default:
		return fmt.Sprintf("Plane(%d)", uint8(p))
	}
}

// ParsePlane accepts "+y", "y", "-y".
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y", "+y":
		return PlanePositiveY, nil
	case "-y":
		return PlaneNegativeY, nil
	}
	return PlanePositiveY, errors.Newf("unknown plane %q", s)
}

// sphericalToCartesian maps azimuth theta and polar angle phi to a unit vector with Y up.
func sphericalToCartesian(theta, phi float32) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Cos(theta) * math32.Sin(phi),
		math32.Cos(phi),
		math32.Sin(theta) * math32.Sin(phi),
	}
}

// sphericalTangent is the derivative direction of sphericalToCartesian along theta.
func sphericalTangent(theta float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(theta), 0, -math32.Cos(theta)}
}

// buildTriMesh copies a vertex table into a new TriMesh honoring opts.
// With indices enabled the table is copied verbatim and the triangle list
// becomes index data. Without indices every referenced vertex is expanded.
func buildTriMesh(vertices []TriMeshVertexData, triangles []uint32, opts TriMeshOptions) *TriMesh {
	m := NewTriMesh(opts.indexType())
	scale := opts.scale()
	tcScale := opts.texCoordScale()

	appendVertex := func(v TriMeshVertexData) {
		m.AppendPosition(mulVec3(v.Position, scale))
		if opts.VertexColors || opts.EnableObjectColor {
			c := v.Color
			if opts.EnableObjectColor {
				c = opts.ObjectColor
			}
			m.AppendColor(c)
		}
		if opts.Normals {
			m.AppendNormal(v.Normal)
		}
		if opts.TexCoords {
			uv := mulVec2(v.TexCoord, tcScale)
			if opts.InvertTexCoordsV {
				uv[1] = 1 - uv[1]
			}
			m.AppendTexCoord(uv)
		}
		if opts.Tangents {
			m.AppendTangent(v.Tangent)
			m.AppendBitangent(v.Bitangent)
		}
	}

	if opts.Indices {
		for _, v := range vertices {
			appendVertex(v)
		}
	}
	for i := 0; i+2 < len(triangles); i += 3 {
		v0, v1, v2 := triangles[i], triangles[i+1], triangles[i+2]
		if opts.InvertWinding {
			v1, v2 = v2, v1
		}
		if opts.Indices {
			m.AppendTriangle(v0, v1, v2)
			continue
		}
		appendVertex(vertices[v0])
		appendVertex(vertices[v1])
		appendVertex(vertices[v2])
	}
	return m
}

// buildWireMesh is the wire mesh counterpart of buildTriMesh.
func buildWireMesh(vertices []WireMeshVertexData, edges []uint32, opts WireMeshOptions) *WireMesh {
	m := NewWireMesh(opts.indexType())
	scale := opts.scale()

	appendVertex := func(v WireMeshVertexData) {
		m.AppendPosition(mulVec3(v.Position, scale))
		if opts.VertexColors || opts.EnableObjectColor {
			c := v.Color
			if opts.EnableObjectColor {
				c = opts.ObjectColor
			}
			m.AppendColor(c)
		}
	}

	if opts.Indices {
		for _, v := range vertices {
			appendVertex(v)
		}
	}
	for i := 0; i+1 < len(edges); i += 2 {
		if opts.Indices {
			m.AppendEdge(edges[i], edges[i+1])
			continue
		}
		appendVertex(vertices[edges[i]])
		appendVertex(vertices[edges[i+1]])
	}
	return m
}

// NewPlane generates a plane of the given size centered on the origin,
// subdivided into usegs by vsegs quads.
func NewPlane(plane Plane, size mgl32.Vec2, usegs, vsegs uint32, opts TriMeshOptions) *TriMesh {
	usegs, vsegs = max(usegs, 1), max(vsegs, 1)
	uverts, vverts := usegs+1, vsegs+1
	hs, ht := size[0]/2, size[1]/2

	normal := mgl32.Vec3{0, 1, 0}
	tangent := mgl32.Vec3{1, 0, 0}
	if plane == PlaneNegativeY {
		normal = mgl32.Vec3{0, -1, 0}
		tangent = mgl32.Vec3{-1, 0, 0}
	}
	bitangent := normal.Cross(tangent)

	vertices := make([]TriMeshVertexData, 0, uverts*vverts)
	for j := uint32(0); j < vverts; j++ {
		for i := uint32(0); i < uverts; i++ {
			s := float32(i) / float32(usegs)
			t := float32(j) / float32(vsegs)

			position := mgl32.Vec3{s*size[0] - hs, 0, t*size[1] - ht}
			if plane == PlaneNegativeY {
				position = mgl32.Vec3{(1-s)*size[0] - hs, 0, (1-t)*size[1] - ht}
			}
			vertices = append(vertices, TriMeshVertexData{
				Position:  position,
				Color:     mgl32.Vec3{s, t, 0},
				Normal:    normal,
				TexCoord:  mgl32.Vec2{s, t},
				Tangent:   tangent.Vec4(1),
				Bitangent: bitangent,
			})
		}
	}

	triangles := make([]uint32, 0, 6*usegs*vsegs)
	for j := uint32(1); j < vverts; j++ {
		for i := uint32(1); i < uverts; i++ {
			v0 := (j-1)*uverts + (i - 1)
			v1 := j*uverts + (i - 1)
			v2 := j*uverts + i
			v3 := (j-1)*uverts + i
			if plane == PlaneNegativeY {
				triangles = append(triangles, v0, v2, v1, v0, v3, v2)
			} else {
				triangles = append(triangles, v0, v1, v2, v0, v2, v3)
			}
		}
	}

	return buildTriMesh(vertices, triangles, opts)
}

// NewCube generates an axis-aligned box centered on the origin with
// four unshared vertices per face.
func NewCube(size mgl32.Vec3, opts TriMeshOptions) *TriMesh {
	half := size.Mul(0.5)
	vertices := make([]TriMeshVertexData, len(cubeVertices))
	for i, v := range cubeVertices {
		v.Position = mulVec3(v.Position, half)
		vertices[i] = v
	}
	return buildTriMesh(vertices, cubeTriangles, opts)
}

// NewSphere generates a UV sphere. usegs runs around the Y axis and
// vsegs from pole to pole.
func NewSphere(radius float32, usegs, vsegs uint32, opts TriMeshOptions) *TriMesh {
	usegs, vsegs = max(usegs, 3), max(vsegs, 2)
	uverts, vverts := usegs+1, vsegs+1
	dt := 2 * math32.Pi / float32(usegs)
	dp := math32.Pi / float32(vsegs)

	vertices := make([]TriMeshVertexData, 0, uverts*vverts)
	for i := uint32(0); i < uverts; i++ {
		for j := uint32(0); j < vverts; j++ {
			theta := float32(i) * dt
			phi := float32(j) * dp
			u := theta / (2 * math32.Pi)
			v := phi / math32.Pi

			normal := sphericalToCartesian(theta, phi)
			tangent := sphericalTangent(theta).Mul(-1)
			vertices = append(vertices, TriMeshVertexData{
				Position:  normal.Mul(radius),
				Color:     mgl32.Vec3{u, v, 0},
				Normal:    normal,
				TexCoord:  mgl32.Vec2{u, v},
				Tangent:   tangent.Vec4(1),
				Bitangent: normal.Cross(tangent),
			})
		}
	}

	triangles := make([]uint32, 0, 6*usegs*vsegs)
	for i := uint32(1); i < uverts; i++ {
		for j := uint32(1); j < vverts; j++ {
			v0 := i*vverts + (j - 1)
			v1 := i*vverts + j
			v2 := (i-1)*vverts + j
			v3 := (i-1)*vverts + (j - 1)
			triangles = append(triangles, v0, v1, v2, v0, v2, v3)
		}
	}

	return buildTriMesh(vertices, triangles, opts)
}

// NewWirePlane generates the grid lines of a plane: usegs+1 lines along V
// and vsegs+1 lines along U.
func NewWirePlane(plane Plane, size mgl32.Vec2, usegs, vsegs uint32, opts WireMeshOptions) *WireMesh {
	usegs, vsegs = max(usegs, 1), max(vsegs, 1)
	hs, ht := size[0]/2, size[1]/2

	point := func(s, t float32) mgl32.Vec3 {
		if plane == PlaneNegativeY {
			return mgl32.Vec3{(1-s)*size[0] - hs, 0, (1-t)*size[1] - ht}
		}
		return mgl32.Vec3{s*size[0] - hs, 0, t*size[1] - ht}
	}

	var vertices []WireMeshVertexData
	var edges []uint32
	line := func(a, b WireMeshVertexData) {
		n := uint32(len(vertices))
		vertices = append(vertices, a, b)
		edges = append(edges, n, n+1)
	}

	for i := uint32(0); i <= usegs; i++ {
		s := float32(i) / float32(usegs)
		line(
			WireMeshVertexData{Position: point(s, 0), Color: mgl32.Vec3{s, 0, 0}},
			WireMeshVertexData{Position: point(s, 1), Color: mgl32.Vec3{s, 1, 0}},
		)
	}
	for j := uint32(0); j <= vsegs; j++ {
		t := float32(j) / float32(vsegs)
		line(
			WireMeshVertexData{Position: point(0, t), Color: mgl32.Vec3{0, t, 0}},
			WireMeshVertexData{Position: point(1, t), Color: mgl32.Vec3{1, t, 0}},
		)
	}

	return buildWireMesh(vertices, edges, opts)
}

// NewWireCube generates the outline of every face of a box.
func NewWireCube(size mgl32.Vec3, opts WireMeshOptions) *WireMesh {
	half := size.Mul(0.5)
	vertices := make([]WireMeshVertexData, len(cubeVertices))
	for i, v := range cubeVertices {
		vertices[i] = WireMeshVertexData{Position: mulVec3(v.Position, half), Color: v.Color}
	}
	return buildWireMesh(vertices, cubeEdges, opts)
}

// NewWireSphere generates latitude rings and longitude arcs of a UV sphere.
func NewWireSphere(radius float32, usegs, vsegs uint32, opts WireMeshOptions) *WireMesh {
	usegs, vsegs = max(usegs, 3), max(vsegs, 2)
	dt := 2 * math32.Pi / float32(usegs)
	dp := math32.Pi / float32(vsegs)

	var vertices []WireMeshVertexData
	var edges []uint32
	line := func(theta0, phi0, theta1, phi1 float32) {
		n := uint32(len(vertices))
		vertices = append(vertices,
			WireMeshVertexData{
				Position: sphericalToCartesian(theta0, phi0).Mul(radius),
				Color:    mgl32.Vec3{theta0 / (2 * math32.Pi), phi0 / math32.Pi, 0},
			},
			WireMeshVertexData{
				Position: sphericalToCartesian(theta1, phi1).Mul(radius),
				Color:    mgl32.Vec3{theta1 / (2 * math32.Pi), phi1 / math32.Pi, 0},
			},
		)
		edges = append(edges, n, n+1)
	}

	// Rings skip both poles.
	for j := uint32(1); j < vsegs; j++ {
		for i := uint32(1); i <= usegs; i++ {
			phi := float32(j) * dp
			line(float32(i-1)*dt, phi, float32(i)*dt, phi)
		}
	}
	for i := uint32(0); i < usegs; i++ {
		for j := uint32(1); j <= vsegs; j++ {
			theta := float32(i) * dt
			line(theta, float32(j)*dp, theta, float32(j-1)*dp)
		}
	}

	return buildWireMesh(vertices, edges, opts)
}
