// geomtool is a CLI utility for laying out and baking vertex buffers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gfx/internal/bake"
	"github.com/Faultbox/midgard-gfx/internal/config"
	"github.com/Faultbox/midgard-gfx/internal/engine/glgeom"
	"github.com/Faultbox/midgard-gfx/internal/engine/vkinput"
	"github.com/Faultbox/midgard-gfx/internal/logger"
	"github.com/Faultbox/midgard-gfx/pkg/geometry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "shapes", "ls":
		cmdShapes(args)
	case "bake":
		cmdBake(args)
	case "preview":
		cmdPreview(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`geomtool - vertex buffer layout utility

Usage:
  geomtool <command> [options]

Commands:
  info                 Show bindings, attributes and GPU input state
  shapes               Build every configured shape and print its counts
  bake                 Build every shape and write buffers plus a manifest
  preview              Draw every shape in a window (space/arrows cycle, esc quits)
  init [path]          Write the default config (user config dir without a path)

Options (info, shapes, bake, preview):
  -config <file>       Config file (.yaml or .toml)
  -layout <name>       interleaved, planar or position_planar
  -index <type>        none, uint16 or uint32
  -out <dir>           Output directory (bake)
  -log <file>          Log file
  -debug               Enable debug logging

Examples:
  geomtool info -layout planar
  geomtool bake -config shapes.toml -out ./baked
  geomtool init geomtool.yaml`)
}

// setup parses flags, loads the config and starts logging.
func setup(name string, args []string) *config.Config {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var flags config.Flags
	flags.Register(fs)
	fs.Parse(args)

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func fatal(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	logger.Sync()
	os.Exit(1)
}

func cmdInfo(args []string) {
	cfg := setup("info", args)
	defer logger.Sync()

	opts, err := cfg.Geometry.Options()
	if err != nil {
		fatal("invalid geometry options", err)
	}

	fmt.Printf("Layout:     %s\n", opts.Layout)
	fmt.Printf("Index type: %s\n", opts.IndexType)
	fmt.Printf("Topology:   %s\n", opts.Topology)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BINDING\tSTRIDE\tLOCATION\tSEMANTIC\tFORMAT\tOFFSET")
	for i := uint32(0); i < opts.VertexBindingCount(); i++ {
		b, _ := opts.VertexBinding(i)
		for _, attr := range b.Attributes() {
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%d\n",
				b.Binding(), b.Stride(), attr.Location, attr.SemanticName, attr.Format, attr.Offset)
		}
	}
	w.Flush()

	// An empty geometry carries the same bindings as the options.
	g, err := geometry.New(opts)
	if err != nil {
		fatal("failed to create geometry", err)
	}
	attribs, err := glgeom.Attribs(g)
	if err != nil {
		fatal("no OpenGL mapping", err)
	}
	fmt.Println()
	fmt.Println("OpenGL attribute pointers:")
	for _, a := range attribs {
		fmt.Printf("  location %d: buffer %d, %d x 0x%04x, normalized=%t, stride %d, offset %d\n",
			a.Location, a.Buffer, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
	}

	in, err := vkinput.Describe(opts)
	if err != nil {
		fatal("no Vulkan mapping", err)
	}
	fmt.Println()
	fmt.Println("Vulkan vertex input:")
	for _, b := range in.Bindings {
		fmt.Printf("  binding %d: stride %d, rate %d\n", b.Binding, b.Stride, b.InputRate)
	}
	for _, a := range in.Attributes {
		fmt.Printf("  location %d: binding %d, format %d, offset %d\n", a.Location, a.Binding, a.Format, a.Offset)
	}
	ia := in.InputAssembly()
	fmt.Printf("  input assembly: topology %d, primitive restart %d\n", ia.Topology, ia.PrimitiveRestartEnable)
}

func build(ctx context.Context, cfg *config.Config) (*bake.Baker, []bake.Result) {
	b, err := bake.New(cfg)
	if err != nil {
		fatal("failed to create baker", err)
	}
	results, err := b.Build(ctx)
	if err != nil {
		fatal("build failed", err)
	}
	return b, results
}

func cmdShapes(args []string) {
	cfg := setup("shapes", args)
	defer logger.Sync()

	_, results := build(context.Background(), cfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tVERTICES\tINDICES\tBUFFERS\tLARGEST\tTIME")
	for _, r := range results {
		g := r.Geometry
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Shape.Name, r.Shape.Kind, g.VertexCount(), g.IndexCount(),
			g.VertexBufferCount(), g.LargestBufferSize(), r.Elapsed)
	}
	w.Flush()
}

func cmdBake(args []string) {
	cfg := setup("bake", args)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b, results := build(ctx, cfg)
	m, err := bake.Write(cfg.Output.Dir, b.Options(), results)
	if err != nil {
		fatal("failed to write buffers", err)
	}

	for _, s := range m.Shapes {
		fmt.Printf("Baked: %s (%d vertices, %d indices, %d buffers)\n",
			s.Name, s.VertexCount, s.IndexCount, len(s.Bindings))
	}
	fmt.Fprintf(os.Stderr, "\nWrote %d shapes to %s\n", len(m.Shapes), cfg.Output.Dir)
}

func cmdInit(args []string) {
	cfg := config.Default()
	path := config.UserConfigFile()
	save := cfg.Save
	if len(args) > 0 {
		path = args[0]
		save = func() error { return cfg.SaveTo(path) }
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Refusing to overwrite %s\n", path)
		os.Exit(1)
	}
	if err := save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
