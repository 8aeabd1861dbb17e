package mesh

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// OBJ import errors.
var (
	ErrOBJLoad   = errors.New("failed to load OBJ file")
	ErrOBJNoData = errors.New("OBJ file has no geometry")
)

// faceColors cycles per triangle when the importer emits vertex colors.
var faceColors = []mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}

// LoadOBJ reads a Wavefront OBJ file into a TriMesh. A material library
// with the same base name is used when present.
func LoadOBJ(path string, opts TriMeshOptions) (*TriMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOBJLoad, "%s: %v", path, err)
	}
	defer f.Close()

	var mtl io.Reader = strings.NewReader("")
	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
	if mf, err := os.Open(mtlPath); err == nil {
		defer mf.Close()
		mtl = mf
	}

	return DecodeOBJ(f, mtl, opts)
}

// DecodeOBJ decodes OBJ data from r. Polygons are triangulated as fans and
// vertices are not shared between triangles.
func DecodeOBJ(r, mtl io.Reader, opts TriMeshOptions) (*TriMesh, error) {
	if mtl == nil {
		mtl = strings.NewReader("")
	}
	dec, err := obj.DecodeReader(r, mtl)
	if err != nil {
		return nil, errors.Wrapf(ErrOBJLoad, "%v", err)
	}
	if len(dec.Objects) == 0 {
		return nil, ErrOBJNoData
	}

	m := NewTriMesh(opts.indexType())
	scale := opts.scale()
	tcScale := opts.texCoordScale()

	var triIndex int
	for _, object := range dec.Objects {
		for _, face := range object.Faces {
			for k := 2; k < len(face.Vertices); k++ {
				corners := [3]int{0, k - 1, k}
				var vtx [3]TriMeshVertexData

				color := faceColors[triIndex%len(faceColors)]
				if opts.EnableObjectColor {
					color = opts.ObjectColor
				}
				hasNormals, hasUVs := true, true
				for c, corner := range corners {
					vtx[c].Color = color
					vtx[c].Position = objVec3(dec.Vertices, face.Vertices[corner])

					n, ok := objAttr(face.Normals, corner)
					if ok && 3*n+2 < len(dec.Normals) {
						vtx[c].Normal = objVec3(dec.Normals, n)
					} else {
						hasNormals = false
					}

					uv, ok := objAttr(face.Uvs, corner)
					if ok && 2*uv+1 < len(dec.Uvs) {
						vtx[c].TexCoord = mulVec2(mgl32.Vec2{dec.Uvs[2*uv], dec.Uvs[2*uv+1]}, tcScale)
						if opts.InvertTexCoordsV {
							vtx[c].TexCoord[1] = 1 - vtx[c].TexCoord[1]
						}
					} else {
						hasUVs = false
					}
				}
				if !hasNormals {
					for c := range vtx {
						vtx[c].Normal = mgl32.Vec3{}
					}
				}
				if !hasUVs {
					for c := range vtx {
						vtx[c].TexCoord = mgl32.Vec2{}
					}
				}

				var first uint32
				for c := range vtx {
					n := m.AppendPosition(mulVec3(vtx[c].Position, scale))
					if c == 0 {
						first = n - 1
					}
				}
				if opts.VertexColors || opts.EnableObjectColor {
					for c := range vtx {
						m.AppendColor(vtx[c].Color)
					}
				}
				if opts.Normals {
					for c := range vtx {
						m.AppendNormal(vtx[c].Normal)
					}
				}
				if opts.TexCoords {
					for c := range vtx {
						m.AppendTexCoord(vtx[c].TexCoord)
					}
				}
				if opts.Tangents {
					tangent, bitangent := triangleTangent(vtx)
					for range vtx {
						m.AppendTangent(tangent)
						m.AppendBitangent(bitangent)
					}
				}
				if opts.Indices {
					if opts.InvertWinding {
						m.AppendTriangle(first, first+2, first+1)
					} else {
						m.AppendTriangle(first, first+1, first+2)
					}
				}
				triIndex++
			}
		}
	}

	if m.PositionCount() == 0 {
		return nil, ErrOBJNoData
	}
	return m, nil
}

// triangleTangent derives a per-face tangent frame from positions and UVs.
func triangleTangent(vtx [3]TriMeshVertexData) (mgl32.Vec4, mgl32.Vec3) {
	edge1 := vtx[1].Position.Sub(vtx[0].Position)
	edge2 := vtx[2].Position.Sub(vtx[0].Position)
	duv1 := vtx[1].TexCoord.Sub(vtx[0].TexCoord)
	duv2 := vtx[2].TexCoord.Sub(vtx[0].TexCoord)

	det := duv1[0]*duv2[1] - duv1[1]*duv2[0]
	if det == 0 {
		return mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 1, 0}
	}
	r := 1 / det

	tangent := edge1.Mul(duv2[1]).Sub(edge2.Mul(duv1[1])).Mul(r)
	bitangent := edge1.Mul(duv2[0]).Sub(edge2.Mul(duv1[0])).Mul(r)

	normal := vtx[0].Normal
	tangent = tangent.Sub(normal.Mul(normal.Dot(tangent)))
	if tangent.Len() > 0 {
		tangent = tangent.Normalize()
	}
	return tangent.Mul(-1).Vec4(1), bitangent.Mul(-1)
}

func objVec3(data []float32, i int) mgl32.Vec3 {
	if i < 0 || 3*i+2 >= len(data) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{data[3*i], data[3*i+1], data[3*i+2]}
}

func objAttr(indices []int, corner int) (int, bool) {
	if corner >= len(indices) || indices[corner] < 0 {
		return 0, false
	}
	return indices[corner], true
}
