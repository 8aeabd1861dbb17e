package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gfx/internal/bake"
	"github.com/Faultbox/midgard-gfx/internal/config"
	"github.com/Faultbox/midgard-gfx/internal/engine/glgeom"
	"github.com/Faultbox/midgard-gfx/internal/engine/shader"
	"github.com/Faultbox/midgard-gfx/internal/engine/window"
	"github.com/Faultbox/midgard-gfx/internal/logger"
)

// Position is always location 0, so one program serves every layout.
const previewVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
uniform mat4 uMVP;
out vec3 vPosition;
void main() {
	vPosition = aPosition;
	gl_Position = uMVP * vec4(aPosition, 1.0);
}`

const previewFragmentShader = `#version 410 core
in vec3 vPosition;
out vec4 fragColor;
void main() {
	fragColor = vec4(normalize(abs(vPosition) + vec3(0.2)), 1.0);
}`

func cmdPreview(args []string) {
	cfg := setup("preview", args)
	defer logger.Sync()

	_, results := build(context.Background(), cfg)
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No shapes configured")
		os.Exit(1)
	}

	win, err := window.New(window.Config{Title: "geomtool preview", Width: 1024, Height: 768, VSync: true})
	if err != nil {
		fatal("failed to open window", err)
	}
	defer win.Close()

	program, err := shader.CompileProgram(previewVertexShader, previewFragmentShader)
	if err != nil {
		fatal("failed to compile preview shader", err)
	}
	defer gl.DeleteProgram(program)
	mvpLoc := shader.Uniform(program, "uMVP")

	meshes := make([]*glgeom.Mesh, 0, len(results))
	defer func() {
		for _, m := range meshes {
			m.Destroy()
		}
	}()
	for _, r := range results {
		m, err := glgeom.Upload(r.Geometry)
		if err != nil {
			fatal("failed to upload "+r.Shape.Name, err)
		}
		meshes = append(meshes, m)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.12, 1)

	current := 0
	logger.Info("previewing", zap.String("shape", results[current].Shape.Name))
	start := time.Now()
	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_SPACE, sdl.K_RIGHT:
					current = (current + 1) % len(meshes)
					logger.Info("previewing", zap.String("shape", results[current].Shape.Name))
				case sdl.K_LEFT:
					current = (current + len(meshes) - 1) % len(meshes)
					logger.Info("previewing", zap.String("shape", results[current].Shape.Name))
				}
			}
		}

		w, h := win.DrawableSize()
		gl.Viewport(0, 0, w, h)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		r := results[current]
		mvp := previewMVP(r.Shape, float32(w)/float32(max(h, 1)), float32(time.Since(start).Seconds()))
		gl.UseProgram(program)
		gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])
		meshes[current].Draw(drawMode(r))

		win.SwapBuffers()
	}
}

func drawMode(r bake.Result) uint32 {
	if r.Shape.Wire() {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// previewMVP orbits the camera around the shape, framed by its largest size.
func previewMVP(s config.ShapeConfig, aspect, seconds float32) mgl32.Mat4 {
	radius := float32(1)
	for _, v := range s.Size {
		radius = max(radius, v)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.01*radius, 20*radius)
	view := mgl32.LookAtV(mgl32.Vec3{0, radius, 2.5 * radius}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(0.5 * seconds)
	return proj.Mul4(view).Mul4(model)
}
