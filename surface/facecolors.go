// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// facecolors.go — per-triangle height coloring.

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
)

// BuildFaceColors colors every triangle by its mean vertex height.
//
// Algorithm:
//  1. For each triangle, mean of its three vertex z-coordinates.
//  2. zmin, zmax over those means (or the WithRange bounds).
//  3. If zmin == zmax every face takes the flat value (default 0.5).
//  4. Otherwise t = (mean - zmin) / (zmax - zmin); the maximum maps to
//     exactly 1 and the minimum to exactly 0.
//  5. t is pushed through cm and each channel rounded into [0,255].
//
// The result is aligned with triangles. Nothing is returned on error.
//
// Errors:
//   - mesh.ErrEmptyPoints, mesh.ErrIndexOutOfRange — input contract.
//   - colormap.ErrMalformed — nil cm, or cm returned a non-finite channel.
//   - ErrNonFinite — a referenced z is NaN or infinite.
//   - ErrBadRange, ErrOptionViolation — option resolution.
//
// Complexity: O(T) time, O(T) memory.
func BuildFaceColors(points []mesh.Point3D, triangles []mesh.Triangle, cm colormap.Func, opts ...Option) ([]colormap.Color, error) {
	if err := colormap.Check(cm); err != nil {
		return nil, wrapf(methodBuildFaceColors, err)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, wrapf(methodBuildFaceColors, err)
	}
	if err = mesh.ValidateTriangles(points, triangles); err != nil {
		return nil, wrapf(methodBuildFaceColors, err)
	}

	return faceColors(points, triangles, cm, cfg)
}

// Normalize returns the normalized height t ∈ [0,1] of every triangle, the
// values BuildFaceColors feeds to the colormap.
//
// Errors: as BuildFaceColors, minus the colormap checks.
func Normalize(points []mesh.Point3D, triangles []mesh.Triangle, opts ...Option) ([]float64, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, wrapf(methodNormalize, err)
	}
	if err = mesh.ValidateTriangles(points, triangles); err != nil {
		return nil, wrapf(methodNormalize, err)
	}
	ts, err := normalize(points, triangles, cfg)
	if err != nil {
		return nil, wrapf(methodNormalize, err)
	}

	return ts, nil
}

// faceColors assumes validated input and a resolved config.
func faceColors(points []mesh.Point3D, triangles []mesh.Triangle, cm colormap.Func, cfg config) ([]colormap.Color, error) {
	ts, err := normalize(points, triangles, cfg)
	if err != nil {
		return nil, wrapf(methodBuildFaceColors, err)
	}

	colors := make([]colormap.Color, len(ts))
	for n, t := range ts {
		c, err := colormap.Quantize(cm(t))
		if err != nil {
			return nil, fmt.Errorf("%s: triangle %d (t=%v): %w", methodBuildFaceColors, n, t, err)
		}
		colors[n] = c
	}

	return colors, nil
}

func normalize(points []mesh.Point3D, triangles []mesh.Triangle, cfg config) ([]float64, error) {
	means := mesh.FaceMeanZ(points, triangles)
	if len(means) == 0 {
		return means, nil
	}

	zmin, zmax := math.Inf(1), math.Inf(-1)
	for n, m := range means {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("triangle %d mean z %v: %w", n, m, ErrNonFinite)
		}
		zmin = math.Min(zmin, m)
		zmax = math.Max(zmax, m)
	}
	if cfg.hasRange {
		zmin, zmax = cfg.vmin, cfg.vmax
	}

	ts := means // normalized in place
	if zmin == zmax {
		for n := range ts {
			ts[n] = cfg.flatValue
		}

		return ts, nil
	}

	span := zmax - zmin
	for n, m := range means {
		m = math.Max(zmin, math.Min(zmax, m))
		ts[n] = (m - zmin) / span
	}

	return ts, nil
}
