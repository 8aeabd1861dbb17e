package geometry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// testVertex returns a vertex with distinct values in every attribute.
func testVertex(i int) mesh.TriMeshVertexData {
	f := float32(i)
	return mesh.TriMeshVertexData{
		Position:  mgl32.Vec3{f, f + 0.5, -f},
		Color:     mgl32.Vec3{0.1 * f, 0.2, 0.3},
		Normal:    mgl32.Vec3{0, 1, f},
		TexCoord:  mgl32.Vec2{f / 10, 1 - f/10},
		Tangent:   mgl32.Vec4{1, 0, f, 1},
		Bitangent: mgl32.Vec3{0, f, -1},
	}
}

func encode(t *testing.T, values ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range values {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	return buf.Bytes()
}

func fullOptions(o *Options) *Options {
	return o.AddColor().AddNormal().AddTexCoord().AddTangent().AddBitangent()
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	lineList := Interleaved()
	lineList.Topology = gfx.PrimitiveTopologyLineList

	badIndex := Interleaved()
	badIndex.IndexType = gfx.IndexType(9)

	tests := []struct {
		name string
		opts *Options
		want error
	}{
		{"nil options", nil, ErrInvalidCreateArgument},
		{"line list", lineList, ErrInvalidCreateArgument},
		{"index type", badIndex, ErrInvalidCreateArgument},
		{"no bindings", NewOptions(LayoutPlanar), ErrInvalidCreateArgument},
		{"no position", NewOptions(LayoutPlanar).AddNormal(), ErrInvalidCreateArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.opts)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewUnknownLayout(t *testing.T) {
	o := Interleaved()
	o.Layout = Layout(7)

	_, err := New(o)
	assert.ErrorIs(t, err, ErrFailed)
}

func TestNewValidationFailure(t *testing.T) {
	// Interleaved with a second binding.
	inter := Interleaved()
	inter.ensureBindings(2)

	// Planar binding holding two attributes.
	planar := Planar().AddNormal()
	planar.bindings[1].AppendAttribute(gfx.VertexAttribute{
		Semantic: gfx.SemanticColor,
		Format:   gfx.FormatR32G32B32Float,
		Offset:   gfx.AppendOffsetAligned,
	})

	// Position planar with a single binding.
	posPlanar := PositionPlanar()
	posPlanar.bindings = posPlanar.bindings[:1]

	for name, o := range map[string]*Options{"interleaved": inter, "planar": planar, "position planar": posPlanar} {
		t.Run(name, func(t *testing.T) {
			_, err := New(o)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFailed), "%+v", err)
		})
	}
}

func TestNewInvalidSemantic(t *testing.T) {
	o := Planar()
	b := gfx.NewVertexBinding(1)
	b.AppendAttribute(gfx.VertexAttribute{
		Semantic: gfx.SemanticUndefined,
		Format:   gfx.FormatR32Float,
		Offset:   gfx.AppendOffsetAligned,
	})
	o.bindings = append(o.bindings, b)

	_, err := New(o)
	assert.ErrorIs(t, err, ErrInvalidVertexSemantic)
}

func TestNewCopiesOptions(t *testing.T) {
	o := Interleaved()
	g, err := New(o)
	require.NoError(t, err)

	o.AddColor()
	o.IndexType = gfx.IndexTypeUint32

	b, _ := g.VertexBinding(0)
	assert.Equal(t, 1, b.AttributeCount())
	assert.Equal(t, gfx.IndexTypeUndefined, g.IndexType())
	assert.Equal(t, uint32(12), g.VertexBuffer(0).ElementSize())
}

func TestInterleavedScenario(t *testing.T) {
	g, err := New(InterleavedU16().AddColor())
	require.NoError(t, err)

	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	for i, p := range positions {
		n := g.AppendVertexData(mesh.TriMeshVertexData{Position: p, Color: mgl32.Vec3{float32(i), 0.5, 1}})
		assert.Equal(t, uint32(i+1), n)
	}
	g.AppendIndicesTriangle(0, 1, 2)

	assert.Equal(t, uint32(3), g.VertexCount())
	assert.Equal(t, uint32(3), g.IndexCount())
	require.Equal(t, uint32(1), g.VertexBufferCount())

	vb := g.VertexBuffer(0)
	assert.Equal(t, uint32(3), vb.ElementCount())
	assert.Equal(t, uint32(24), vb.ElementSize())
	assert.Equal(t, uint32(72), vb.Size())
}

func TestPlanarScenario(t *testing.T) {
	g, err := New(Planar().AddNormal())
	require.NoError(t, err)

	g.AppendVertexData(testVertex(0))
	g.AppendVertexData(testVertex(1))

	require.Equal(t, uint32(2), g.VertexBufferCount())
	pos, norm := g.VertexBuffer(0), g.VertexBuffer(1)
	assert.Equal(t, uint32(2), pos.ElementCount())
	assert.Equal(t, uint32(2), norm.ElementCount())
	assert.Equal(t, pos.ElementSize(), norm.ElementSize())

	g2, err := New(Planar().AddTexCoord())
	require.NoError(t, err)
	assert.NotEqual(t, g2.VertexBuffer(0).ElementSize(), g2.VertexBuffer(1).ElementSize())
}

func TestRoundTrip(t *testing.T) {
	const n = 4
	vertices := make([]mesh.TriMeshVertexData, n)
	for i := range vertices {
		vertices[i] = testVertex(i)
	}

	var interleaved, positions, rest []byte
	planes := make([][]byte, 6)
	for _, v := range vertices {
		attrs := []any{v.Position, v.Color, v.Normal, v.TexCoord, v.Tangent, v.Bitangent}
		interleaved = append(interleaved, encode(t, attrs...)...)
		positions = append(positions, encode(t, v.Position)...)
		rest = append(rest, encode(t, attrs[1:]...)...)
		for i, a := range attrs {
			planes[i] = append(planes[i], encode(t, a)...)
		}
	}

	tests := []struct {
		name string
		opts *Options
		want [][]byte
	}{
		{"interleaved", fullOptions(Interleaved()), [][]byte{interleaved}},
		{"planar", fullOptions(Planar()), planes},
		{"position planar", fullOptions(PositionPlanar()), [][]byte{positions, rest}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.opts)
			require.NoError(t, err)
			for _, v := range vertices {
				g.AppendVertexData(v)
			}

			assert.Equal(t, uint32(n), g.VertexCount())
			require.Equal(t, uint32(len(tt.want)), g.VertexBufferCount())
			for i, want := range tt.want {
				vb := g.VertexBuffer(uint32(i))
				assert.Equal(t, want, vb.Data(), "vertex buffer %d", i)
				assert.Equal(t, uint32(n), vb.ElementCount(), "vertex buffer %d", i)
			}
		})
	}
}

func TestIndexWidthU16(t *testing.T) {
	g, err := New(InterleavedU16())
	require.NoError(t, err)

	in := []uint32{5, 0, 1, 65535, 42}
	g.AppendIndex(in[0])
	g.AppendIndicesTriangle(in[1], in[2], in[3])
	g.AppendIndex(in[4])

	require.Equal(t, uint32(len(in)), g.IndexCount())
	ib := g.IndexBuffer()
	assert.Equal(t, uint32(2), ib.ElementSize())
	assert.Equal(t, BufferTypeIndex, ib.Type())

	got := make([]uint16, len(in))
	require.NoError(t, binary.Read(bytes.NewReader(ib.Data()), binary.LittleEndian, got))
	for i := range in {
		assert.Equal(t, uint16(in[i]), got[i])
	}
}

func TestIndexWidthU32(t *testing.T) {
	g, err := New(PlanarU32())
	require.NoError(t, err)

	g.AppendIndicesEdge(70000, 1)
	g.AppendIndicesU32([]uint32{2, 3, 4})

	assert.Equal(t, uint32(5), g.IndexCount())
	assert.Equal(t, encode(t, []uint32{70000, 1, 2, 3, 4}), g.IndexBuffer().Data())
}

func TestAppendIndicesU32RequiresU32(t *testing.T) {
	for _, opts := range []*Options{InterleavedU16(), Interleaved()} {
		g, err := New(opts)
		require.NoError(t, err)

		assert.Panics(t, func() { g.AppendIndicesU32([]uint32{0, 1, 2}) }, "index type %s", opts.IndexType)
		assert.Equal(t, uint32(0), g.IndexCount())
	}
}

func TestUndefinedIndexNoOp(t *testing.T) {
	g, err := New(Interleaved())
	require.NoError(t, err)

	for i := uint32(0); i < 10; i++ {
		g.AppendIndex(i)
		g.AppendIndicesTriangle(i, i+1, i+2)
		g.AppendIndicesEdge(i, i+1)
	}

	assert.Equal(t, uint32(0), g.IndexCount())
	require.NotNil(t, g.IndexBuffer())
	assert.Equal(t, uint32(0), g.IndexBuffer().Size())
}

func TestAppendTriangleGeneratesIndices(t *testing.T) {
	g, err := New(InterleavedU32().AddNormal())
	require.NoError(t, err)

	g.AppendTriangle(testVertex(0), testVertex(1), testVertex(2))
	g.AppendTriangle(testVertex(3), testVertex(4), testVertex(5))

	assert.Equal(t, uint32(6), g.VertexCount())
	assert.Equal(t, encode(t, []uint32{0, 1, 2, 3, 4, 5}), g.IndexBuffer().Data())
}

func TestAppendEdgeWireVertices(t *testing.T) {
	v0 := mesh.WireMeshVertexData{Position: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec3{1, 0, 0}}
	v1 := mesh.WireMeshVertexData{Position: mgl32.Vec3{1, 1, 1}, Color: mgl32.Vec3{0, 1, 0}}

	t.Run("planar skips missing attributes", func(t *testing.T) {
		g, err := New(PlanarU16().AddColor().AddNormal())
		require.NoError(t, err)
		g.AppendEdge(v0, v1)

		assert.Equal(t, uint32(2), g.VertexCount())
		assert.Equal(t, uint32(2), g.IndexCount())
		normals, ok := g.VertexBufferFor(gfx.SemanticNormal)
		require.True(t, ok)
		assert.Equal(t, uint32(0), normals.ElementCount())
	})

	t.Run("interleaved zero fills missing attributes", func(t *testing.T) {
		g, err := New(Interleaved().AddColor().AddNormal())
		require.NoError(t, err)
		g.AppendWireVertexData(v1)

		vb := g.VertexBuffer(0)
		require.Equal(t, uint32(1), vb.ElementCount())
		assert.Equal(t, encode(t, v1.Position, v1.Color, mgl32.Vec3{}), vb.Data())
	})
}

func TestVertexBufferBounds(t *testing.T) {
	g, err := New(PositionPlanarU16().AddColor())
	require.NoError(t, err)

	assert.NotNil(t, g.VertexBuffer(1))
	assert.Nil(t, g.VertexBuffer(2))
	_, ok := g.VertexBinding(2)
	assert.False(t, ok)
	_, ok = g.VertexBufferFor(gfx.SemanticTangent)
	assert.False(t, ok)
}

func TestLargestBufferSize(t *testing.T) {
	g, err := New(PlanarU32().AddTexCoord())
	require.NoError(t, err)
	assert.Equal(t, uint32(0), g.LargestBufferSize())

	g.AppendVertexData(testVertex(0))
	assert.Equal(t, uint32(12), g.LargestBufferSize())

	g.AppendIndicesU32([]uint32{0, 0, 0, 0})
	assert.Equal(t, uint32(16), g.LargestBufferSize())
}

func TestSetIndexBuffer(t *testing.T) {
	g, err := New(InterleavedU16())
	require.NoError(t, err)

	b := NewBuffer(BufferTypeIndex, 2)
	Append(b, uint16(3), uint16(2), uint16(1))
	require.NoError(t, g.SetIndexBuffer(b))
	assert.Equal(t, uint32(3), g.IndexCount())

	// The geometry keeps its own copy.
	Append(b, uint16(0))
	assert.Equal(t, uint32(3), g.IndexCount())

	wrong := NewBuffer(BufferTypeIndex, 4)
	assert.ErrorIs(t, g.SetIndexBuffer(wrong), ErrInvalidCreateArgument)
}

func TestAttributeFormats(t *testing.T) {
	g, err := New(Interleaved().AddColor(gfx.FormatR8G8B8A8Unorm).AddTexCoord(gfx.FormatR16G16Float))
	require.NoError(t, err)

	g.AppendVertexData(mesh.TriMeshVertexData{
		Position: mgl32.Vec3{1, 2, 3},
		Color:    mgl32.Vec3{1, 0, 2},
		TexCoord: mgl32.Vec2{1, -2},
	})

	vb := g.VertexBuffer(0)
	require.Equal(t, uint32(12+4+4), vb.ElementSize())
	require.Equal(t, uint32(1), vb.ElementCount())
	assert.Equal(t, []byte{255, 0, 255, 255}, vb.Data()[12:16])
	assert.Equal(t, []byte{0x00, 0x3c, 0x00, 0xc0}, vb.Data()[16:20])
}

func TestFloat16Bits(t *testing.T) {
	tests := []struct {
		in   float32
		want uint16
	}{
		{0, 0x0000},
		{1, 0x3c00},
		{-2, 0xc000},
		{0.5, 0x3800},
		{65504, 0x7bff},
		{1e6, 0x7c00},
		{5.960464477539063e-08, 0x0001},
		{-0.0001, 0x868e},
		{float32(math.Inf(1)), 0x7c00},
		{float32(math.Inf(-1)), 0xfc00},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, float16Bits(tt.in))
		})
	}
}

func TestConcurrentGeometries(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]uint32, 8)
	for w := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			layout := Layout(w % 3)
			g, err := New(fullOptions(NewOptions(layout).AddPosition()))
			if err != nil {
				return
			}
			for i := 0; i < 100; i++ {
				g.AppendVertexData(testVertex(i))
			}
			results[w] = g.VertexCount()
		}()
	}
	wg.Wait()

	for w, n := range results {
		assert.Equal(t, uint32(100), n, "worker %d", w)
	}
}

func TestAssertionPanicsAreAssertionFailures(t *testing.T) {
	g, err := New(InterleavedU16())
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(err))
	}()
	g.AppendIndicesU32([]uint32{1})
}

func TestAppendChecksBindingStride(t *testing.T) {
	if !checkInvariants {
		t.Skip("invariant checks compiled out")
	}

	tests := map[string]*Options{
		"interleaved":     Interleaved().AddColor(),
		"position_planar": PositionPlanar().AddColor(),
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := New(opts)
			require.NoError(t, err)
			require.Equal(t, uint32(1), g.AppendVertexData(testVertex(0)))

			last := g.bindingCount() - 1
			b := g.binding(last)
			b.SetStride(b.Stride() + 4)

			assert.Panics(t, func() { g.AppendVertexData(testVertex(1)) })
		})
	}
}
