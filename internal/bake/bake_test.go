package bake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-gfx/internal/config"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

func TestBuildDefaultShapes(t *testing.T) {
	b, err := New(config.Default())
	require.NoError(t, err)

	results, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	tests := []struct {
		name     string
		vertices uint32
		indices  uint32
	}{
		{"cube", 24, 36},
		{"ground", 25, 96},
		{"sphere", 25 * 17, 6 * 24 * 16},
	}
	for i, tt := range tests {
		r := results[i]
		assert.Equal(t, tt.name, r.Shape.Name)
		assert.Equal(t, tt.vertices, r.Geometry.VertexCount(), tt.name)
		assert.Equal(t, tt.indices, r.Geometry.IndexCount(), tt.name)
		assert.Equal(t, gfx.IndexTypeUint32, r.Geometry.IndexType(), tt.name)
	}
}

func TestBuildWireShapes(t *testing.T) {
	cfg := config.Default()
	cfg.Geometry.Layout = "planar"
	cfg.Geometry.IndexType = "uint16"
	cfg.Geometry.Attributes = []config.AttributeConfig{{Name: "position"}, {Name: "color"}}
	cfg.Shapes = []config.ShapeConfig{
		{Name: "box", Kind: config.KindWireCube, Size: []float32{1, 1, 1}, Indexed: true},
		{Name: "grid", Kind: config.KindWirePlane, Size: []float32{2, 2}, Segments: []uint32{2, 3}},
	}

	b, err := New(cfg)
	require.NoError(t, err)
	results, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	box := results[0].Geometry
	assert.Equal(t, uint32(24), box.VertexCount())
	assert.Equal(t, uint32(48), box.IndexCount())
	assert.Equal(t, uint32(2), box.VertexBufferCount())

	// Unindexed source into an indexed target gets one index per vertex.
	grid := results[1].Geometry
	assert.Equal(t, uint32(2*(3+4)), grid.VertexCount())
	assert.Equal(t, grid.VertexCount(), grid.IndexCount())
}

func TestBuildOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	obj := "o quad\nv 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	require.NoError(t, os.WriteFile(path, []byte(obj), 0644))

	cfg := config.Default()
	cfg.Shapes = []config.ShapeConfig{{Name: "quad", Kind: config.KindOBJ, Path: path, Indexed: true}}

	b, err := New(cfg)
	require.NoError(t, err)
	results, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint32(6), results[0].Geometry.IndexCount())
}

func TestBuildErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Shapes = []config.ShapeConfig{{Name: "bad", Kind: "torus"}}
	b, err := New(cfg)
	require.NoError(t, err)

	_, err = b.Build(context.Background())
	assert.ErrorContains(t, err, "bad")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, err = New(config.Default())
	require.NoError(t, err)
	results, err := b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)

	cfg = config.Default()
	cfg.Geometry.Layout = "striped"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestWriteManifest(t *testing.T) {
	b, err := New(config.Default())
	require.NoError(t, err)
	results, err := b.Build(context.Background())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	written, err := Write(dir, b.Options(), results)
	require.NoError(t, err)

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, written, m)

	assert.Equal(t, "interleaved", m.Layout)
	assert.Equal(t, "uint32", m.IndexType)
	require.Len(t, m.Shapes, 3)

	cube := m.Shapes[0]
	assert.Equal(t, "cube", cube.Name)
	assert.Equal(t, uint32(24), cube.VertexCount)
	assert.Equal(t, "cube.idx", cube.IndexFile)
	require.Len(t, cube.Bindings, 1)

	binding := cube.Bindings[0]
	assert.Equal(t, uint32(32), binding.Stride)
	assert.Equal(t, uint32(24*32), binding.Size)
	require.Len(t, binding.Attributes, 3)
	assert.Equal(t, AttributeManifest{Semantic: "texcoord", Location: 2, Format: "R32G32_FLOAT", Offset: 24}, binding.Attributes[2])

	vb, err := os.ReadFile(filepath.Join(dir, binding.File))
	require.NoError(t, err)
	assert.Equal(t, results[0].Geometry.VertexBuffer(0).Data(), vb)

	idx, err := os.ReadFile(filepath.Join(dir, cube.IndexFile))
	require.NoError(t, err)
	assert.Len(t, idx, 36*4)
}

func TestWriteUnindexed(t *testing.T) {
	cfg := config.Default()
	cfg.Geometry.IndexType = "none"
	cfg.Shapes = cfg.Shapes[:1]

	b, err := New(cfg)
	require.NoError(t, err)
	results, err := b.Build(context.Background())
	require.NoError(t, err)

	m, err := Write(t.TempDir(), b.Options(), results)
	require.NoError(t, err)
	assert.Empty(t, m.Shapes[0].IndexFile)
	assert.Equal(t, uint32(36), m.Shapes[0].VertexCount)
}

func TestWriteRejectsUnsafeNames(t *testing.T) {
	b, err := New(config.Default())
	require.NoError(t, err)
	results, err := b.Build(context.Background())
	require.NoError(t, err)

	root := t.TempDir()
	dir := filepath.Join(root, "out")
	results[0].Shape.Name = "../escaped"

	_, err = Write(dir, b.Options(), results)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(root, "escaped.vb0"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
