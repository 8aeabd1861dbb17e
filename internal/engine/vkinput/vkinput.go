// Package vkinput describes geometry buffers as Vulkan vertex input state.
package vkinput

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"

	"github.com/Faultbox/midgard-gfx/pkg/geometry"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
)

// ErrUnsupported is returned for values with no Vulkan equivalent.
var ErrUnsupported = errors.New("no vulkan equivalent")

var formats = map[gfx.Format]vk.Format{
	gfx.FormatR32Float:          vk.FormatR32Sfloat,
	gfx.FormatR32G32Float:       vk.FormatR32g32Sfloat,
	gfx.FormatR32G32B32Float:    vk.FormatR32g32b32Sfloat,
	gfx.FormatR32G32B32A32Float: vk.FormatR32g32b32a32Sfloat,
	gfx.FormatR16G16Float:       vk.FormatR16g16Sfloat,
	gfx.FormatR16G16B16A16Float: vk.FormatR16g16b16a16Sfloat,
	gfx.FormatR8G8B8A8Unorm:     vk.FormatR8g8b8a8Unorm,
	gfx.FormatR8G8B8A8Snorm:     vk.FormatR8g8b8a8Snorm,
	gfx.FormatR16Uint:           vk.FormatR16Uint,
	gfx.FormatR32Uint:           vk.FormatR32Uint,
}

// Format converts f to a vk.Format.
func Format(f gfx.Format) (vk.Format, error) {
	if vf, ok := formats[f]; ok {
		return vf, nil
	}
	return vk.FormatUndefined, errors.Wrapf(ErrUnsupported, "format %s", f)
}

// IndexType converts t to a vk.IndexType. Undefined has no equivalent;
// such geometries are drawn without an index buffer.
func IndexType(t gfx.IndexType) (vk.IndexType, error) {
	switch t {
	case gfx.IndexTypeUint16:
		return vk.IndexTypeUint16, nil
	case gfx.IndexTypeUint32:
		return vk.IndexTypeUint32, nil
	}
	return vk.IndexTypeUint32, errors.Wrapf(ErrUnsupported, "index type %s", t)
}

// Topology converts t to a vk.PrimitiveTopology.
func Topology(t gfx.PrimitiveTopology) (vk.PrimitiveTopology, error) {
	switch t {
	case gfx.PrimitiveTopologyTriangleList:
		return vk.PrimitiveTopologyTriangleList, nil
	case gfx.PrimitiveTopologyTriangleStrip:
		return vk.PrimitiveTopologyTriangleStrip, nil
	case gfx.PrimitiveTopologyLineList:
		return vk.PrimitiveTopologyLineList, nil
	case gfx.PrimitiveTopologyLineStrip:
		return vk.PrimitiveTopologyLineStrip, nil
	case gfx.PrimitiveTopologyPointList:
		return vk.PrimitiveTopologyPointList, nil
	}
	return vk.PrimitiveTopologyTriangleList, errors.Wrapf(ErrUnsupported, "topology %s", t)
}

func inputRate(r gfx.VertexInputRate) vk.VertexInputRate {
	if r == gfx.VertexInputRateInstance {
		return vk.VertexInputRateInstance
	}
	return vk.VertexInputRateVertex
}

// VertexInput holds the binding and attribute descriptions for a pipeline.
type VertexInput struct {
	Bindings   []vk.VertexInputBindingDescription
	Attributes []vk.VertexInputAttributeDescription
	Topology   vk.PrimitiveTopology
}

// Describe builds the vertex input descriptions for opts.
func Describe(opts *geometry.Options) (*VertexInput, error) {
	topology, err := Topology(opts.Topology)
	if err != nil {
		return nil, err
	}

	in := &VertexInput{Topology: topology}
	for i := uint32(0); i < opts.VertexBindingCount(); i++ {
		b, _ := opts.VertexBinding(i)
		in.Bindings = append(in.Bindings, vk.VertexInputBindingDescription{
			Binding:   b.Binding(),
			Stride:    b.Stride(),
			InputRate: inputRate(b.InputRate()),
		})
		for _, attr := range b.Attributes() {
			f, err := Format(attr.Format)
			if err != nil {
				return nil, errors.Wrapf(err, "%s attribute", attr.Semantic)
			}
			in.Attributes = append(in.Attributes, vk.VertexInputAttributeDescription{
				Location: attr.Location,
				Binding:  attr.Binding,
				Format:   f,
				Offset:   attr.Offset,
			})
		}
	}
	return in, nil
}

// CreateInfo returns the pipeline vertex input state for in. The returned
// struct references in's slices.
func (in *VertexInput) CreateInfo() vk.PipelineVertexInputStateCreateInfo {
	return vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(in.Bindings)),
		PVertexBindingDescriptions:      in.Bindings,
		VertexAttributeDescriptionCount: uint32(len(in.Attributes)),
		PVertexAttributeDescriptions:    in.Attributes,
	}
}

// InputAssembly returns the input assembly state for in.
func (in *VertexInput) InputAssembly() vk.PipelineInputAssemblyStateCreateInfo {
	return vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               in.Topology,
		PrimitiveRestartEnable: vk.False,
	}
}
