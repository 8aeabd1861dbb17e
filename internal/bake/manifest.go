package bake

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gfx/internal/config"
	"github.com/Faultbox/midgard-gfx/internal/logger"
	"github.com/Faultbox/midgard-gfx/pkg/geometry"
)

// ManifestFile is the name of the manifest written next to the buffers.
const ManifestFile = "manifest.yaml"

// Manifest describes every baked shape and the files holding its buffers.
type Manifest struct {
	Layout    string          `yaml:"layout"`
	IndexType string          `yaml:"index_type"`
	Shapes    []ShapeManifest `yaml:"shapes"`
}

// ShapeManifest describes one baked Geometry.
type ShapeManifest struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	VertexCount uint32            `yaml:"vertex_count"`
	IndexCount  uint32            `yaml:"index_count"`
	IndexFile   string            `yaml:"index_file,omitempty"`
	Bindings    []BindingManifest `yaml:"bindings"`
	BuildTime   string            `yaml:"build_time"`
}

// BindingManifest describes one vertex binding and its buffer file.
type BindingManifest struct {
	Binding    uint32              `yaml:"binding"`
	Stride     uint32              `yaml:"stride"`
	File       string              `yaml:"file"`
	Size       uint32              `yaml:"size"`
	Attributes []AttributeManifest `yaml:"attributes"`
}

// AttributeManifest describes one vertex attribute.
type AttributeManifest struct {
	Semantic string `yaml:"semantic"`
	Location uint32 `yaml:"location"`
	Format   string `yaml:"format"`
	Offset   uint32 `yaml:"offset"`
}

// Write stores every result's buffers under dir as raw little-endian files
// and writes a manifest describing them.
func Write(dir string, opts *geometry.Options, results []Result) (*Manifest, error) {
	for _, r := range results {
		if err := config.CheckShapeName(r.Shape.Name); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	m := &Manifest{
		Layout:    opts.Layout.String(),
		IndexType: opts.IndexType.String(),
		Shapes:    make([]ShapeManifest, 0, len(results)),
	}
	for _, r := range results {
		sm, err := writeGeometry(dir, r)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", r.Shape.Name)
		}
		m.Shapes = append(m.Shapes, sm)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644); err != nil {
		return nil, err
	}

	logger.Named("bake").Info("wrote manifest",
		zap.String("dir", dir),
		zap.Int("shapes", len(m.Shapes)),
	)
	return m, nil
}

func writeGeometry(dir string, r Result) (ShapeManifest, error) {
	g := r.Geometry
	sm := ShapeManifest{
		Name:        r.Shape.Name,
		Kind:        r.Shape.Kind,
		VertexCount: g.VertexCount(),
		IndexCount:  g.IndexCount(),
		BuildTime:   r.Elapsed.String(),
	}

	if g.IndexCount() > 0 {
		sm.IndexFile = r.Shape.Name + ".idx"
		if err := os.WriteFile(filepath.Join(dir, sm.IndexFile), g.IndexBuffer().Data(), 0644); err != nil {
			return sm, err
		}
	}

	for i := uint32(0); i < g.VertexBindingCount(); i++ {
		binding, _ := g.VertexBinding(i)
		vb := g.VertexBuffer(i)

		bm := BindingManifest{
			Binding: binding.Binding(),
			Stride:  binding.Stride(),
			File:    fmt.Sprintf("%s.vb%d", r.Shape.Name, i),
			Size:    vb.Size(),
		}
		for _, attr := range binding.Attributes() {
			bm.Attributes = append(bm.Attributes, AttributeManifest{
				Semantic: attr.Semantic.String(),
				Location: attr.Location,
				Format:   attr.Format.String(),
				Offset:   attr.Offset,
			})
		}
		if err := os.WriteFile(filepath.Join(dir, bm.File), vb.Data(), 0644); err != nil {
			return sm, err
		}
		sm.Bindings = append(sm.Bindings, bm)
	}
	return sm, nil
}

// ReadManifest loads a manifest written by Write.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}
	return &m, nil
}
