// Command trisurf builds colored tri-surfaces from PLY files or sample
// surfaces and renders them, or serves the builder over HTTP.
//
//	trisurf -mode build -sample moebius -wireframe
//	trisurf -mode build -ply chopper.ply -colormap rdbu -out png
//	trisurf -mode serve -config trisurf.yaml
//	trisurf -mode colormaps
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
	"github.com/katalvlaran/trisurf/ply"
	"github.com/katalvlaran/trisurf/render"
	"github.com/katalvlaran/trisurf/sample"
	"github.com/katalvlaran/trisurf/server"
	"github.com/katalvlaran/trisurf/surface"
)

const (
	buildMode         = "build"
	serveMode         = "serve"
	colormapsMode     = "colormaps"
	samplesMode       = "samples"
	defaultConfigPath = "trisurf.yaml"
)

// options collects the command line; empty strings mean "keep config value".
type options struct {
	mode       string
	configPath string
	plyPath    string
	sampleName string
	title      string
	colormap   string
	out        string
	listen     string
	wireframe  bool
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("trisurf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mode, "mode", buildMode, "One of build, serve, colormaps or samples.")
	fs.StringVar(&o.configPath, "config", defaultConfigPath, "YAML configuration file (optional).")
	fs.StringVar(&o.plyPath, "ply", "", "PLY mesh to color (build mode).")
	fs.StringVar(&o.sampleName, "sample", "", "Sample surface to color (build mode): "+strings.Join(sample.Names(), ", ")+".")
	fs.StringVar(&o.title, "title", "", "Figure title.")
	fs.StringVar(&o.colormap, "colormap", "", "Colormap name: "+strings.Join(colormap.Names(), ", ")+" (append _r to reverse).")
	fs.StringVar(&o.out, "out", "", "Output kind: json, png or remote.")
	fs.StringVar(&o.listen, "listen", "", "Listen address (serve mode).")
	fs.BoolVar(&o.wireframe, "wireframe", false, "Overlay triangle edges.")
	err := fs.Parse(args)

	return o, fs, err
}

// apply overlays explicitly set flags on cfg.
func (o options) apply(cfg *Config, set map[string]bool) {
	if o.colormap != "" {
		cfg.Colormap = o.colormap
	}
	if o.out != "" {
		cfg.Output.Kind = o.out
	}
	if o.listen != "" {
		cfg.Server.Listen = o.listen
	}
	if set["wireframe"] {
		cfg.Wireframe = o.wireframe
	}
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := loadConfig(o.configPath, !set["config"])
	if err != nil {
		return err
	}
	o.apply(&cfg, set)
	if err = cfg.validate(); err != nil {
		return err
	}

	switch o.mode {
	case buildMode:
		return build(ctx, o, cfg, stdout)
	case serveMode:
		return serve(cfg)
	case colormapsMode:
		fmt.Fprintln(stdout, strings.Join(colormap.Names(), "\n"))
		return nil
	case samplesMode:
		fmt.Fprintln(stdout, strings.Join(sample.Names(), "\n"))
		return nil
	default:
		return fmt.Errorf("unknown mode %q", o.mode)
	}
}

// loadMesh reads the PLY file or samples the named surface.
func loadMesh(o options, cfg Config) (*mesh.Mesh, string, error) {
	switch {
	case o.plyPath != "" && o.sampleName != "":
		return nil, "", fmt.Errorf("use either -ply or -sample, not both")
	case o.plyPath != "":
		m, err := ply.ReadFile(o.plyPath)
		return m, o.plyPath, err
	case o.sampleName != "":
		m, err := sample.ByName(o.sampleName, sample.WithResolution(cfg.Resolution[0], cfg.Resolution[1]))
		return m, o.sampleName, err
	default:
		return nil, "", fmt.Errorf("build mode needs -ply or -sample")
	}
}

func build(ctx context.Context, o options, cfg Config, stdout io.Writer) error {
	m, source, err := loadMesh(o, cfg)
	if err != nil {
		return err
	}
	cm, err := colormap.ByName(cfg.Colormap)
	if err != nil {
		return err
	}

	surf, err := surface.Build(m,
		surface.WithColormap(cm),
		surface.WithWireframe(cfg.Wireframe),
		surface.WithFlatValue(cfg.FlatValue),
	)
	if err != nil {
		return err
	}
	log.Printf("%s: %d points, %d triangles", source, m.NumPoints(), m.NumTriangles())

	title := o.title
	if title == "" {
		title = source
	}
	handle, err := cfg.renderer().Render(ctx, render.NewFigure(title, surf))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, handle)

	return nil
}

func serve(cfg Config) error {
	engine := server.New(server.Config{
		Colormap:     cfg.Colormap,
		Wireframe:    cfg.Wireframe,
		MaxTriangles: cfg.Server.MaxTriangles,
		Renderer:     cfg.renderer(),
	})
	log.Printf("listening on %s", cfg.Server.Listen)

	return engine.Run(cfg.Server.Listen)
}
