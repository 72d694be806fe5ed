// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// build.go — orchestration of the three operations into a Surface.

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
)

// Build validates m once and assembles its Surface: point columns, index
// channels, face colors, and the wireframe when WithWireframe(true) is set.
//
// Every point, referenced or not, must have finite coordinates, since all of
// them end up in X/Y/Z.
//
// Errors: any error of BuildFaceColors or BuildWireframe, and ErrNonFinite
// for a NaN or infinite x, y or z; nothing partial is returned.
func Build(m *mesh.Mesh, opts ...Option) (*Surface, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, wrapf(methodBuild, err)
	}
	if err = colormap.Check(cfg.cmap); err != nil {
		return nil, wrapf(methodBuild, err)
	}
	if m == nil {
		return nil, wrapf(methodBuild, mesh.ErrEmptyPoints)
	}
	if err = m.Validate(); err != nil {
		return nil, wrapf(methodBuild, err)
	}
	if err = checkFinite(m.Points); err != nil {
		return nil, wrapf(methodBuild, err)
	}

	colors, err := faceColors(m.Points, m.Triangles, cfg.cmap, cfg)
	if err != nil {
		return nil, wrapf(methodBuild, err)
	}

	s := &Surface{FaceColors: colors}
	s.X, s.Y, s.Z = m.Columns()
	s.I, s.J, s.K = ExtractIndexChannels(m.Triangles)
	if cfg.wireframe {
		s.Wireframe = wireframe(m.Points, m.Triangles)
	}

	return s, nil
}

func checkFinite(points []mesh.Point3D) error {
	for n, p := range points {
		for _, v := range [...]float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("point %d (%v, %v, %v): %w", n, p.X, p.Y, p.Z, ErrNonFinite)
			}
		}
	}

	return nil
}
