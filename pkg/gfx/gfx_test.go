package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSizes(t *testing.T) {
	tests := []struct {
		format     Format
		bytes      uint32
		components uint32
	}{
		{FormatUndefined, 0, 0},
		{FormatR32Float, 4, 1},
		{FormatR32G32Float, 8, 2},
		{FormatR32G32B32Float, 12, 3},
		{FormatR32G32B32A32Float, 16, 4},
		{FormatR16G16Float, 4, 2},
		{FormatR8G8B8A8Unorm, 4, 4},
		{FormatR16Uint, 2, 1},
		{FormatR32Uint, 4, 1},
		{Format(999), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.bytes, tt.format.BytesPerTexel())
			assert.Equal(t, tt.components, tt.format.ComponentCount())
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("r32g32b32_float")
	require.NoError(t, err)
	assert.Equal(t, FormatR32G32B32Float, f)

	_, err = ParseFormat("UNDEFINED")
	assert.Error(t, err)

	_, err = ParseFormat("rgb8")
	assert.Error(t, err)

	var g Format
	require.NoError(t, g.UnmarshalText([]byte("R32G32_FLOAT")))
	assert.Equal(t, FormatR32G32Float, g)
}

func TestIndexType(t *testing.T) {
	assert.Equal(t, uint32(0), IndexTypeUndefined.Size())
	assert.Equal(t, uint32(2), IndexTypeUint16.Size())
	assert.Equal(t, uint32(4), IndexTypeUint32.Size())
	assert.Equal(t, uint32(0), IndexType(7).Size())

	for _, s := range []string{"u16", "UINT16"} {
		it, err := ParseIndexType(s)
		require.NoError(t, err)
		assert.Equal(t, IndexTypeUint16, it)
	}
	it, err := ParseIndexType("")
	require.NoError(t, err)
	assert.Equal(t, IndexTypeUndefined, it)

	_, err = ParseIndexType("u8")
	assert.Error(t, err)
}

func TestParseSemantic(t *testing.T) {
	for _, sem := range Semantics {
		got, err := ParseSemantic(sem.String())
		require.NoError(t, err)
		assert.Equal(t, sem, got)
	}
	_, err := ParseSemantic("weights")
	assert.Error(t, err)
}

func TestVertexBindingAppendAligned(t *testing.T) {
	b := NewVertexBinding(3)
	b.AppendAttribute(VertexAttribute{Semantic: SemanticPosition, Format: FormatR32G32B32Float, Offset: AppendOffsetAligned})
	b.AppendAttribute(VertexAttribute{Semantic: SemanticTexCoord, Format: FormatR32G32Float, Offset: AppendOffsetAligned})
	b.AppendAttribute(VertexAttribute{Semantic: SemanticTangent, Format: FormatR32G32B32A32Float, Offset: AppendOffsetAligned})

	require.Equal(t, 3, b.AttributeCount())
	assert.Equal(t, uint32(12+8+16), b.Stride())
	assert.Equal(t, VertexInputRateVertex, b.InputRate())

	offsets := []uint32{0, 12, 20}
	for i, want := range offsets {
		attr, ok := b.Attribute(i)
		require.True(t, ok)
		assert.Equal(t, want, attr.Offset)
		assert.Equal(t, uint32(3), attr.Binding)
	}

	idx, ok := b.AttributeIndex(SemanticTexCoord)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, b.HasSemantic(SemanticNormal))

	_, ok = b.Attribute(3)
	assert.False(t, ok)
}

func TestVertexBindingClone(t *testing.T) {
	b := NewVertexBinding(0)
	b.AppendAttribute(VertexAttribute{Semantic: SemanticPosition, Format: FormatR32G32B32Float, Offset: AppendOffsetAligned})

	c := b.Clone()
	c.AppendAttribute(VertexAttribute{Semantic: SemanticColor, Format: FormatR32G32B32Float, Offset: AppendOffsetAligned})
	c.SetBinding(5)

	assert.Equal(t, 1, b.AttributeCount())
	assert.Equal(t, uint32(0), b.Binding())
	assert.Equal(t, uint32(12), b.Stride())
	assert.Equal(t, 2, c.AttributeCount())
	assert.Equal(t, uint32(24), c.Stride())

	attr, _ := c.Attribute(1)
	assert.Equal(t, uint32(5), attr.Binding)
}
