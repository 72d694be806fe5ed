// SPDX-License-Identifier: MIT
// Package: trisurf/cmd/trisurf
//
// config.go — YAML configuration file and its defaults.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trisurf/render"
	"github.com/katalvlaran/trisurf/sample"
)

// Output kinds accepted by the "out" setting.
const (
	outJSON   = "json"
	outPNG    = "png"
	outRemote = "remote"
)

// Config mirrors trisurf.yaml. Every field has a default, so the file is optional.
type Config struct {
	Colormap   string  `yaml:"colormap"`
	Wireframe  bool    `yaml:"wireframe"`
	FlatValue  float64 `yaml:"flat_value"`
	Resolution []int   `yaml:"resolution"`

	Output struct {
		Kind   string `yaml:"kind"`
		Dir    string `yaml:"dir"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Remote string `yaml:"remote"`
	} `yaml:"output"`

	Server struct {
		Listen       string `yaml:"listen"`
		MaxTriangles int    `yaml:"max_triangles"`
	} `yaml:"server"`
}

func defaultConfig() Config {
	var c Config
	c.Colormap = "viridis"
	c.FlatValue = 0.5
	c.Resolution = []int{sample.DefaultFirst, sample.DefaultSecond}
	c.Output.Kind = outJSON
	c.Output.Dir = "figures"
	c.Output.Width = render.DefaultWidth
	c.Output.Height = render.DefaultHeight
	c.Server.Listen = ":8080"

	return c
}

// loadConfig overlays the YAML file at path on the defaults. A missing file
// is not an error when optional is set.
func loadConfig(path string, optional bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Output.Kind {
	case outJSON, outPNG:
	case outRemote:
		if c.Output.Remote == "" {
			return fmt.Errorf("config: output.kind remote needs output.remote")
		}
	default:
		return fmt.Errorf("config: unknown output.kind %q", c.Output.Kind)
	}
	if len(c.Resolution) != 2 || c.Resolution[0] < 2 || c.Resolution[1] < 2 {
		return fmt.Errorf("config: resolution %v: want two counts, both ≥ 2", c.Resolution)
	}

	return nil
}

// renderer builds the Renderer selected by the output settings.
func (c Config) renderer() render.Renderer {
	switch c.Output.Kind {
	case outPNG:
		return &render.PNGRenderer{Dir: c.Output.Dir, Width: c.Output.Width, Height: c.Output.Height}
	case outRemote:
		return &render.HTTPRenderer{Endpoint: c.Output.Remote}
	default:
		return &render.JSONRenderer{Dir: c.Output.Dir}
	}
}
