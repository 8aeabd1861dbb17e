package vkinput

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-gfx/pkg/geometry"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

func TestFormat(t *testing.T) {
	tests := map[gfx.Format]vk.Format{
		gfx.FormatR32G32B32Float:    vk.FormatR32g32b32Sfloat,
		gfx.FormatR32G32Float:       vk.FormatR32g32Sfloat,
		gfx.FormatR32G32B32A32Float: vk.FormatR32g32b32a32Sfloat,
		gfx.FormatR8G8B8A8Unorm:     vk.FormatR8g8b8a8Unorm,
		gfx.FormatR16Uint:           vk.FormatR16Uint,
	}
	for in, want := range tests {
		got, err := Format(in)
		require.NoError(t, err, in.String())
		assert.Equal(t, want, got, in.String())
	}

	_, err := Format(gfx.FormatUndefined)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestIndexType(t *testing.T) {
	got, err := IndexType(gfx.IndexTypeUint16)
	require.NoError(t, err)
	assert.Equal(t, vk.IndexTypeUint16, got)

	got, err = IndexType(gfx.IndexTypeUint32)
	require.NoError(t, err)
	assert.Equal(t, vk.IndexTypeUint32, got)

	_, err = IndexType(gfx.IndexTypeUndefined)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDescribeInterleaved(t *testing.T) {
	in, err := Describe(geometry.InterleavedU16().AddColor(gfx.FormatR8G8B8A8Unorm).AddTexCoord())
	require.NoError(t, err)

	require.Len(t, in.Bindings, 1)
	assert.Equal(t, uint32(0), in.Bindings[0].Binding)
	assert.Equal(t, uint32(12+4+8), in.Bindings[0].Stride)
	assert.Equal(t, vk.VertexInputRateVertex, in.Bindings[0].InputRate)

	want := []vk.VertexInputAttributeDescription{
		{Location: 0, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 0},
		{Location: 1, Binding: 0, Format: vk.FormatR8g8b8a8Unorm, Offset: 12},
		{Location: 2, Binding: 0, Format: vk.FormatR32g32Sfloat, Offset: 16},
	}
	assert.Equal(t, want, in.Attributes)
	assert.Equal(t, vk.PrimitiveTopologyTriangleList, in.Topology)

	info := in.CreateInfo()
	assert.Equal(t, uint32(1), info.VertexBindingDescriptionCount)
	assert.Equal(t, uint32(3), info.VertexAttributeDescriptionCount)

	ia := in.InputAssembly()
	assert.Equal(t, vk.StructureTypePipelineInputAssemblyStateCreateInfo, ia.SType)
	assert.Equal(t, vk.PrimitiveTopologyTriangleList, ia.Topology)
	assert.Equal(t, vk.Bool32(vk.False), ia.PrimitiveRestartEnable)
}

func TestInputAssemblyTopology(t *testing.T) {
	opts := geometry.Interleaved()
	opts.Topology = gfx.PrimitiveTopologyLineList
	in, err := Describe(opts)
	require.NoError(t, err)
	assert.Equal(t, vk.PrimitiveTopologyLineList, in.InputAssembly().Topology)
}

func TestDescribePositionPlanar(t *testing.T) {
	in, err := Describe(geometry.PositionPlanar().AddNormal().AddTangent())
	require.NoError(t, err)

	require.Len(t, in.Bindings, 2)
	assert.Equal(t, uint32(12), in.Bindings[0].Stride)
	assert.Equal(t, uint32(12+16), in.Bindings[1].Stride)

	require.Len(t, in.Attributes, 3)
	tangent := in.Attributes[2]
	assert.Equal(t, uint32(2), tangent.Location)
	assert.Equal(t, uint32(1), tangent.Binding)
	assert.Equal(t, uint32(12), tangent.Offset)
}

func TestDescribeRejectsTopology(t *testing.T) {
	opts := geometry.Planar()
	opts.Topology = gfx.PrimitiveTopologyUndefined
	_, err := Describe(opts)
	assert.ErrorIs(t, err, ErrUnsupported)
}
