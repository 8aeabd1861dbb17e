// Package gfx provides the GPU-facing vocabulary shared by geometry,
// source meshes and the graphics API adapters.
package gfx

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ComponentType is the scalar type of a single format component.
type ComponentType uint8

// Component types.
const (
	ComponentUndefined ComponentType = iota
	ComponentFloat32
	ComponentFloat16
	ComponentUnorm8
	ComponentSnorm8
	ComponentUint16
	ComponentUint32
)

// Format describes the memory layout of one vertex attribute or index.
type Format uint32

// Supported formats.
const (
	FormatUndefined Format = iota
	FormatR32Float
	FormatR32G32Float
	FormatR32G32B32Float
	FormatR32G32B32A32Float
	FormatR16G16Float
	FormatR16G16B16A16Float
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Snorm
	FormatR16Uint
	FormatR32Uint
)

type formatDesc struct {
	name          string
	componentType ComponentType
	components    uint32
	bytesPerTexel uint32
}

var formatDescs = [...]formatDesc{
	FormatUndefined:         {"UNDEFINED", ComponentUndefined, 0, 0},
	FormatR32Float:          {"R32_FLOAT", ComponentFloat32, 1, 4},
	FormatR32G32Float:       {"R32G32_FLOAT", ComponentFloat32, 2, 8},
	FormatR32G32B32Float:    {"R32G32B32_FLOAT", ComponentFloat32, 3, 12},
	FormatR32G32B32A32Float: {"R32G32B32A32_FLOAT", ComponentFloat32, 4, 16},
	FormatR16G16Float:       {"R16G16_FLOAT", ComponentFloat16, 2, 4},
	FormatR16G16B16A16Float: {"R16G16B16A16_FLOAT", ComponentFloat16, 4, 8},
	FormatR8G8B8A8Unorm:     {"R8G8B8A8_UNORM", ComponentUnorm8, 4, 4},
	FormatR8G8B8A8Snorm:     {"R8G8B8A8_SNORM", ComponentSnorm8, 4, 4},
	FormatR16Uint:           {"R16_UINT", ComponentUint16, 1, 2},
	FormatR32Uint:           {"R32_UINT", ComponentUint32, 1, 4},
}

func (f Format) desc() formatDesc {
	if int(f) >= len(formatDescs) {
		return formatDescs[FormatUndefined]
	}
	return formatDescs[f]
}

// BytesPerTexel returns the size in bytes of one element of this format.
func (f Format) BytesPerTexel() uint32 {
	return f.desc().bytesPerTexel
}

// ComponentCount returns the number of components (1-4).
func (f Format) ComponentCount() uint32 {
	return f.desc().components
}

// ComponentType returns the scalar type of each component.
func (f Format) ComponentType() ComponentType {
	return f.desc().componentType
}

// Valid reports whether f is a known, non-undefined format.
func (f Format) Valid() bool {
	return f != FormatUndefined && int(f) < len(formatDescs)
}

// String returns the format name, e.g. "R32G32B32_FLOAT".
func (f Format) String() string {
	if int(f) >= len(formatDescs) {
		return fmt.Sprintf("Format(%d)", uint32(f))
	}
	return formatDescs[f].name
}

// ParseFormat converts a format name into a Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, d := range formatDescs {
		if d.name == name && Format(i) != FormatUndefined {
			return Format(i), nil
		}
	}
	return FormatUndefined, errors.Newf("unknown format %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
