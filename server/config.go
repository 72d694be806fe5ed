// SPDX-License-Identifier: MIT
// Package: trisurf/server
//
// config.go — server settings.

package server

import "github.com/katalvlaran/trisurf/render"

// Config holds server defaults. Zero values are usable: viridis, no
// wireframe, no renderer (the render route then answers 503).
type Config struct {
	// Colormap is used when a request names none.
	Colormap string
	// Wireframe is used when a request does not say.
	Wireframe bool
	// MaxTriangles rejects larger meshes with 413; 0 means unlimited.
	MaxTriangles int
	// Renderer backs POST /v1/trisurf/render.
	Renderer render.Renderer
}

const defaultColormap = "viridis"

func (c Config) colormapName() string {
	if c.Colormap == "" {
		return defaultColormap
	}

	return c.Colormap
}
