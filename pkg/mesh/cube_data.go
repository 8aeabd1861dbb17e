package mesh

import "github.com/go-gl/mathgl/mgl32"

// cubeVertices holds a unit-sign box; positions are scaled by the half size.
var cubeVertices = []TriMeshVertexData{
	// -Z
	{mgl32.Vec3{1, 1, -1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 0}, mgl32.Vec4{-1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, -1, -1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 1}, mgl32.Vec4{-1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 1}, mgl32.Vec4{-1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, 1, -1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 0}, mgl32.Vec4{-1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},

	// +Z
	{mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, -1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, -1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, -1, 0}},

	// -X
	{mgl32.Vec3{-1, 1, -1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 0}, mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 1}, mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, -1, 1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec3{0, -1, 0}},

	// +X
	{mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 0}, mgl32.Vec4{0, 0, -1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, -1, 1}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 1}, mgl32.Vec4{0, 0, -1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, -1, -1}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec4{0, 0, -1, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{1, 1, -1}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec4{0, 0, -1, 1}, mgl32.Vec3{0, -1, 0}},

	// -Y
	{mgl32.Vec3{-1, -1, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{1, -1, -1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{1, -1, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, -1}},

	// +Y
	{mgl32.Vec3{-1, 1, -1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{1, 1, -1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 0}, mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec3{0, 0, 1}},
}

var cubeTriangles = []uint32{
	0, 1, 2, 0, 2, 3, // -Z
	4, 5, 6, 4, 6, 7, // +Z
	8, 9, 10, 8, 10, 11, // -X
	12, 13, 14, 12, 14, 15, // +X
	16, 17, 18, 16, 18, 19, // -Y
	20, 21, 22, 20, 22, 23, // +Y
}

var cubeEdges = []uint32{
	0, 1, 1, 2, 2, 3, 3, 0,
	4, 5, 5, 6, 6, 7, 7, 4,
	8, 9, 9, 10, 10, 11, 11, 8,
	12, 13, 13, 14, 14, 15, 15, 12,
	16, 17, 17, 18, 18, 19, 19, 16,
	20, 21, 21, 22, 22, 23, 23, 20,
}
