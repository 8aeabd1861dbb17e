// Package config handles geomtool configuration loading and management.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Faultbox/midgard-gfx/pkg/geometry"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// Config holds all geomtool settings.
type Config struct {
	Geometry GeometryConfig `yaml:"geometry" toml:"geometry"`
	Shapes   []ShapeConfig  `yaml:"shapes" toml:"shapes"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GeometryConfig describes the buffer layout every shape is baked into.
type GeometryConfig struct {
	Layout     string            `yaml:"layout" toml:"layout"`
	IndexType  string            `yaml:"index_type" toml:"index_type"`
	Attributes []AttributeConfig `yaml:"attributes" toml:"attributes"`
}

// AttributeConfig names one vertex attribute. An empty format selects the
// semantic's default.
type AttributeConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Shape kinds.
const (
	KindPlane      = "plane"
	KindCube       = "cube"
	KindSphere     = "sphere"
	KindWirePlane  = "wire_plane"
	KindWireCube   = "wire_cube"
	KindWireSphere = "wire_sphere"
	KindOBJ        = "obj"
)

// ShapeConfig describes one source mesh.
type ShapeConfig struct {
	Name     string    `yaml:"name" toml:"name"`
	Kind     string    `yaml:"kind" toml:"kind"`
	Size     []float32 `yaml:"size,omitempty" toml:"size,omitempty"`         // plane: w,h  cube: x,y,z  sphere: radius
	Segments []uint32  `yaml:"segments,omitempty" toml:"segments,omitempty"` // u, v
	Plane    string    `yaml:"plane,omitempty" toml:"plane,omitempty"`
	Path     string    `yaml:"path,omitempty" toml:"path,omitempty"` // obj only
	Indexed  bool      `yaml:"indexed" toml:"indexed"`
}

// Wire reports whether the shape produces a wire mesh.
func (s ShapeConfig) Wire() bool {
	switch s.Kind {
	case KindWirePlane, KindWireCube, KindWireSphere:
		return true
	}
	return false
}

// OutputConfig holds where baked buffers are written.
type OutputConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{
			Layout:    geometry.LayoutInterleaved.String(),
			IndexType: gfx.IndexTypeUint32.String(),
			Attributes: []AttributeConfig{
				{Name: "position"},
				{Name: "normal"},
				{Name: "texcoord"},
			},
		},
		Shapes: []ShapeConfig{
			{Name: "cube", Kind: KindCube, Size: []float32{1, 1, 1}, Indexed: true},
			{Name: "ground", Kind: KindPlane, Size: []float32{10, 10}, Segments: []uint32{4, 4}, Plane: "+y", Indexed: true},
			{Name: "sphere", Kind: KindSphere, Size: []float32{0.5}, Segments: []uint32{24, 16}, Indexed: true},
		},
		Output: OutputConfig{
			Dir: "baked",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the geometry section into geometry options. Position is
// always registered first, with the format from the attribute list if it
// names one.
func (g GeometryConfig) Options() (*geometry.Options, error) {
	layout, err := geometry.ParseLayout(g.Layout)
	if err != nil {
		return nil, err
	}
	indexType, err := gfx.ParseIndexType(g.IndexType)
	if err != nil {
		return nil, err
	}

	type attr struct {
		semantic gfx.Semantic
		format   gfx.Format
	}
	attrs := make([]attr, 0, len(g.Attributes))
	positionFormat := gfx.FormatUndefined
	for _, a := range g.Attributes {
		semantic, err := gfx.ParseSemantic(a.Name)
		if err != nil {
			return nil, err
		}
		format := gfx.FormatUndefined
		if a.Format != "" {
			if format, err = gfx.ParseFormat(a.Format); err != nil {
				return nil, errors.Wrapf(err, "attribute %s", a.Name)
			}
		}
		if semantic == gfx.SemanticPosition {
			positionFormat = format
			continue
		}
		attrs = append(attrs, attr{semantic, format})
	}

	opts := geometry.NewOptions(layout).WithIndexType(indexType).AddPosition(positionFormat)
	for _, a := range attrs {
		opts.AddAttribute(a.semantic, a.format)
	}
	return opts, nil
}

// CheckShapeName rejects names that cannot be used as a plain file name
// inside the output directory.
func CheckShapeName(name string) error {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errors.Newf("shape name %q must not contain path separators or \"..\"", name)
	}
	return nil
}

// Validate checks every shape for a known kind and usable dimensions.
func (c *Config) Validate() error {
	if _, err := c.Geometry.Options(); err != nil {
		return errors.Wrap(err, "geometry")
	}
	seen := make(map[string]bool, len(c.Shapes))
	for i, s := range c.Shapes {
		if s.Name == "" {
			return errors.Newf("shape %d has no name", i)
		}
		if err := CheckShapeName(s.Name); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.Newf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true

		switch s.Kind {
		case KindPlane, KindWirePlane:
			if len(s.Size) != 2 {
				return errors.Newf("shape %q: plane size needs 2 values, have %d", s.Name, len(s.Size))
			}
			if _, err := mesh.ParsePlane(s.Plane); err != nil {
				return errors.Wrapf(err, "shape %q", s.Name)
			}
		case KindCube, KindWireCube:
			if len(s.Size) != 3 {
				return errors.Newf("shape %q: cube size needs 3 values, have %d", s.Name, len(s.Size))
			}
		case KindSphere, KindWireSphere:
			if len(s.Size) != 1 || s.Size[0] <= 0 {
				return errors.Newf("shape %q: sphere size needs a positive radius", s.Name)
			}
		case KindOBJ:
			if s.Path == "" {
				return errors.Newf("shape %q: obj needs a path", s.Name)
			}
		default:
			return errors.Newf("shape %q: unknown kind %q", s.Name, s.Kind)
		}
	}
	return nil
}
