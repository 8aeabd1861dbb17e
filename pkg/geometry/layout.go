package geometry

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Layout selects how vertex attributes are distributed across vertex buffers.
type Layout uint32

// Vertex attribute layouts.
const (
	// LayoutInterleaved packs every attribute of a vertex into one binding.
	LayoutInterleaved Layout = iota
	// LayoutPlanar gives every attribute its own binding.
	LayoutPlanar
	// LayoutPositionPlanar keeps position in binding 0 and interleaves the rest in binding 1.
	LayoutPositionPlanar
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutPlanar:
		return "planar"
	case LayoutPositionPlanar:
		return "position_planar"
	default:
		return fmt.Sprintf("Layout(%d)", uint32(l))
	}
}

// ParseLayout converts a layout name into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "interleaved":
		return LayoutInterleaved, nil
	case "planar":
		return LayoutPlanar, nil
	case "position_planar", "positionplanar":
		return LayoutPositionPlanar, nil
	}
	return LayoutInterleaved, errors.Newf("unknown vertex layout %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	v, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
