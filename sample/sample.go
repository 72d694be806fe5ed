// SPDX-License-Identifier: MIT
// Package: trisurf/sample
//
// sample.go — grid sampling and Delaunay triangulation.

package sample

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/trisurf/mesh"
)

// Interval is a closed real range [Min, Max].
type Interval struct {
	Min, Max float64
}

func (iv Interval) validate() error {
	if math.IsNaN(iv.Min) || math.IsNaN(iv.Max) || math.IsInf(iv.Min, 0) || math.IsInf(iv.Max, 0) || iv.Min >= iv.Max {
		return fmt.Errorf("[%v,%v]: %w", iv.Min, iv.Max, ErrBadInterval)
	}

	return nil
}

// linspace returns n evenly spaced values from Min to Max inclusive.
func (iv Interval) linspace(n int) []float64 {
	out := make([]float64, n)
	step := (iv.Max - iv.Min) / float64(n-1)
	for i := range out {
		out[i] = iv.Min + float64(i)*step
	}
	out[n-1] = iv.Max

	return out
}

// ParametricFunc maps a parameter pair to a point in space.
type ParametricFunc func(u, v float64) r3.Vec

// HeightFunc gives the height of a surface over the xy plane.
type HeightFunc func(x, y float64) float64

// Parametric samples fn on a grid over u × v, triangulates the parameter
// plane and returns the mapped mesh. Points are ordered u-major.
//
// Errors: ErrBadInterval, ErrTriangulation.
func Parametric(fn ParametricFunc, u, v Interval, opts ...Option) (*mesh.Mesh, error) {
	if err := u.validate(); err != nil {
		return nil, wrapf(methodParametric, fmt.Errorf("u %w", err))
	}
	if err := v.validate(); err != nil {
		return nil, wrapf(methodParametric, fmt.Errorf("v %w", err))
	}
	cfg := newConfig(opts...)

	us, vs := u.linspace(cfg.first), v.linspace(cfg.second)
	plane := make([]delaunay.Point, 0, len(us)*len(vs))
	points := make([]mesh.Point3D, 0, len(us)*len(vs))
	for _, uu := range us {
		for _, vv := range vs {
			plane = append(plane, delaunay.Point{X: uu, Y: vv})
			points = append(points, mesh.FromVec(fn(uu, vv)))
		}
	}

	m, err := triangulate(plane, points)
	if err != nil {
		return nil, wrapf(methodParametric, err)
	}

	return m, nil
}

// Polar samples fn over a disc or annulus: `second` rings spread across
// radius and `first` angles per ring in [0, 2π). A zero inner radius
// collapses the innermost ring to the single center point.
//
// Errors: ErrBadInterval (including a negative inner radius), ErrTriangulation.
func Polar(fn HeightFunc, radius Interval, opts ...Option) (*mesh.Mesh, error) {
	if err := radius.validate(); err != nil {
		return nil, wrapf(methodPolar, fmt.Errorf("radius %w", err))
	}
	if radius.Min < 0 {
		return nil, wrapf(methodPolar, fmt.Errorf("radius [%v,%v]: %w", radius.Min, radius.Max, ErrBadInterval))
	}
	cfg := newConfig(opts...)

	rs := radius.linspace(cfg.second)
	var plane []delaunay.Point
	var points []mesh.Point3D
	for _, r := range rs {
		if r == 0 {
			plane = append(plane, delaunay.Point{})
			points = append(points, mesh.Point3D{Z: fn(0, 0)})
			continue
		}
		for k := 0; k < cfg.first; k++ {
			theta := 2 * math.Pi * float64(k) / float64(cfg.first)
			x, y := r*math.Cos(theta), r*math.Sin(theta)
			plane = append(plane, delaunay.Point{X: x, Y: y})
			points = append(points, mesh.Point3D{X: x, Y: y, Z: fn(x, y)})
		}
	}

	m, err := triangulate(plane, points)
	if err != nil {
		return nil, wrapf(methodPolar, err)
	}

	return m, nil
}

// Triangulate builds a mesh over scattered points using their xy projection.
// The points are referenced, not copied.
//
// Errors: ErrTriangulation, mesh.ErrEmptyPoints.
func Triangulate(points []mesh.Point3D) (*mesh.Mesh, error) {
	if len(points) == 0 {
		return nil, wrapf(methodTriangulate, mesh.ErrEmptyPoints)
	}
	plane := make([]delaunay.Point, len(points))
	for i, p := range points {
		plane[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	m, err := triangulate(plane, points)
	if err != nil {
		return nil, wrapf(methodTriangulate, err)
	}

	return m, nil
}

// triangulate runs Delaunay on plane and attaches the triangles to points,
// which must be index-aligned with plane.
func triangulate(plane []delaunay.Point, points []mesh.Point3D) (*mesh.Mesh, error) {
	tri, err := delaunay.Triangulate(plane)
	if err != nil {
		return nil, fmt.Errorf("%d points: %v: %w", len(plane), err, ErrTriangulation)
	}
	if len(tri.Triangles) == 0 {
		return nil, fmt.Errorf("%d points: no triangles: %w", len(plane), ErrTriangulation)
	}

	triangles := make([]mesh.Triangle, len(tri.Triangles)/3)
	for t := range triangles {
		triangles[t] = mesh.Triangle{tri.Triangles[3*t], tri.Triangles[3*t+1], tri.Triangles[3*t+2]}
	}

	return mesh.New(points, triangles)
}
