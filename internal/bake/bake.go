// Package bake turns configured shapes into geometry buffers on disk.
package bake

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gfx/internal/config"
	"github.com/Faultbox/midgard-gfx/internal/logger"
	"github.com/Faultbox/midgard-gfx/pkg/geometry"
	"github.com/Faultbox/midgard-gfx/pkg/gfx"
	"github.com/Faultbox/midgard-gfx/pkg/mesh"
)

// Result is one built shape.
type Result struct {
	Shape    config.ShapeConfig
	Geometry *geometry.Geometry
	Elapsed  time.Duration
}

// Baker builds every configured shape with one set of geometry options.
type Baker struct {
	cfg  *config.Config
	opts *geometry.Options
	log  *zap.Logger
}

// New creates a Baker for cfg.
func New(cfg *config.Config) (*Baker, error) {
	opts, err := cfg.Geometry.Options()
	if err != nil {
		return nil, errors.Wrap(err, "geometry options")
	}
	return &Baker{cfg: cfg, opts: opts, log: logger.Named("bake")}, nil
}

// Options returns a copy of the geometry options shapes are built with.
func (b *Baker) Options() *geometry.Options { return b.opts.Clone() }

// Build builds every shape in order. It stops at the first failure or when
// ctx is done.
func (b *Baker) Build(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(b.cfg.Shapes))
	for _, s := range b.cfg.Shapes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := hrtime.Now()
		g, err := b.BuildShape(s)
		if err != nil {
			return results, errors.Wrapf(err, "shape %q", s.Name)
		}
		elapsed := hrtime.Since(start)

		b.log.Debug("built shape",
			zap.String("shape", s.Name),
			zap.String("kind", s.Kind),
			zap.Uint32("vertices", g.VertexCount()),
			zap.Uint32("indices", g.IndexCount()),
			zap.Duration("elapsed", elapsed),
		)
		results = append(results, Result{Shape: s, Geometry: g, Elapsed: elapsed})
	}
	return results, nil
}

// BuildShape generates the source mesh for s and lays it out into a new Geometry.
func (b *Baker) BuildShape(s config.ShapeConfig) (*geometry.Geometry, error) {
	if s.Wire() {
		m, err := wireMesh(s, b.wireMeshOptions(s))
		if err != nil {
			return nil, err
		}
		return geometry.NewFromWireMesh(b.opts, m)
	}

	m, err := triMesh(s, b.triMeshOptions(s))
	if err != nil {
		return nil, err
	}
	return geometry.NewFromTriMesh(b.opts, m)
}

// triMeshOptions asks the generator for exactly the attributes the layout consumes.
func (b *Baker) triMeshOptions(s config.ShapeConfig) mesh.TriMeshOptions {
	opts := mesh.DefaultTriMeshOptions()
	opts.Indices = s.Indexed
	opts.VertexColors = b.opts.HasSemantic(gfx.SemanticColor)
	opts.Normals = b.opts.HasSemantic(gfx.SemanticNormal)
	opts.TexCoords = b.opts.HasSemantic(gfx.SemanticTexCoord)
	opts.Tangents = b.opts.HasSemantic(gfx.SemanticTangent) || b.opts.HasSemantic(gfx.SemanticBitangent)
	return opts
}

func (b *Baker) wireMeshOptions(s config.ShapeConfig) mesh.WireMeshOptions {
	opts := mesh.DefaultWireMeshOptions()
	opts.Indices = s.Indexed
	opts.VertexColors = b.opts.HasSemantic(gfx.SemanticColor)
	return opts
}

func segments(s config.ShapeConfig, u, v uint32) (uint32, uint32) {
	if len(s.Segments) > 0 {
		u = s.Segments[0]
	}
	if len(s.Segments) > 1 {
		v = s.Segments[1]
	}
	return u, v
}

func size2(s config.ShapeConfig) (mgl32.Vec2, error) {
	if len(s.Size) != 2 {
		return mgl32.Vec2{}, errors.Newf("expected 2 size values, have %d", len(s.Size))
	}
	return mgl32.Vec2{s.Size[0], s.Size[1]}, nil
}

func size3(s config.ShapeConfig) (mgl32.Vec3, error) {
	if len(s.Size) != 3 {
		return mgl32.Vec3{}, errors.Newf("expected 3 size values, have %d", len(s.Size))
	}
	return mgl32.Vec3{s.Size[0], s.Size[1], s.Size[2]}, nil
}

func radius(s config.ShapeConfig) (float32, error) {
	if len(s.Size) != 1 {
		return 0, errors.Newf("expected a radius, have %d size values", len(s.Size))
	}
	return s.Size[0], nil
}

func triMesh(s config.ShapeConfig, opts mesh.TriMeshOptions) (*mesh.TriMesh, error) {
	switch s.Kind {
	case config.KindPlane:
		plane, err := mesh.ParsePlane(s.Plane)
		if err != nil {
			return nil, err
		}
		size, err := size2(s)
		if err != nil {
			return nil, err
		}
		u, v := segments(s, 1, 1)
		return mesh.NewPlane(plane, size, u, v, opts), nil
	case config.KindCube:
		size, err := size3(s)
		if err != nil {
			return nil, err
		}
		return mesh.NewCube(size, opts), nil
	case config.KindSphere:
		r, err := radius(s)
		if err != nil {
			return nil, err
		}
		u, v := segments(s, 16, 8)
		return mesh.NewSphere(r, u, v, opts), nil
	case config.KindOBJ:
		return mesh.LoadOBJ(s.Path, opts)
	}
	return nil, errors.Newf("unknown shape kind %q", s.Kind)
}

func wireMesh(s config.ShapeConfig, opts mesh.WireMeshOptions) (*mesh.WireMesh, error) {
	switch s.Kind {
	case config.KindWirePlane:
		plane, err := mesh.ParsePlane(s.Plane)
		if err != nil {
			return nil, err
		}
		size, err := size2(s)
		if err != nil {
			return nil, err
		}
		u, v := segments(s, 1, 1)
		return mesh.NewWirePlane(plane, size, u, v, opts), nil
	case config.KindWireCube:
		size, err := size3(s)
		if err != nil {
			return nil, err
		}
		return mesh.NewWireCube(size, opts), nil
	case config.KindWireSphere:
		r, err := radius(s)
		if err != nil {
			return nil, err
		}
		u, v := segments(s, 16, 8)
		return mesh.NewWireSphere(r, u, v, opts), nil
	}
	return nil, errors.Newf("unknown wire shape kind %q", s.Kind)
}
