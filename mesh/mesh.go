// SPDX-License-Identifier: MIT
// Package: trisurf/mesh
//
// mesh.go — construction and validation of meshes.

package mesh

import (
	"fmt"
	"math"
)

const (
	methodNew      = "New"
	methodValidate = "Validate"
	methodFromFlat = "FromFlat"
	methodBounds   = "Bounds"
	methodMeanZ    = "FaceMeanZ"
)

// New builds a Mesh from points and triangles and validates it.
// The slices are referenced, not copied.
//
// Errors: ErrEmptyPoints, ErrIndexOutOfRange.
func New(points []Point3D, triangles []Triangle) (*Mesh, error) {
	m := &Mesh{Points: points, Triangles: triangles}
	if err := m.Validate(); err != nil {
		return nil, meshErrorf(methodNew, err)
	}

	return m, nil
}

// Validate checks the mesh invariant.
//
// An empty triangle slice is valid; an empty point slice is not.
// The first offending index is reported as an *IndexError.
//
// Complexity: O(T) time, O(1) memory.
func (m *Mesh) Validate() error {
	return ValidateTriangles(m.Points, m.Triangles)
}

// ValidateTriangles is Validate for callers holding bare slices.
func ValidateTriangles(points []Point3D, triangles []Triangle) error {
	if len(points) == 0 {
		return meshErrorf(methodValidate, ErrEmptyPoints)
	}
	n := len(points)
	for t, tri := range triangles {
		for c, idx := range tri {
			if idx < 0 || idx >= n {
				return meshErrorf(methodValidate, &IndexError{Triangle: t, Corner: c, Index: idx, Len: n})
			}
		}
	}

	return nil
}

// FromFlat builds a mesh from coordinate columns and a flattened index list
// (three entries per triangle), the shape triangulation libraries return.
//
// Errors: ErrLengthMismatch, ErrEmptyPoints, ErrIndexOutOfRange.
func FromFlat(xs, ys, zs []float64, flat []int) (*Mesh, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("%s: columns %d/%d/%d: %w", methodFromFlat, len(xs), len(ys), len(zs), ErrLengthMismatch)
	}
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("%s: %d indices is not a multiple of 3: %w", methodFromFlat, len(flat), ErrLengthMismatch)
	}

	points := make([]Point3D, len(xs))
	for i := range xs {
		points[i] = Point3D{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	triangles := make([]Triangle, len(flat)/3)
	for t := range triangles {
		triangles[t] = Triangle{flat[3*t], flat[3*t+1], flat[3*t+2]}
	}

	return New(points, triangles)
}

// FaceMeanZ returns the arithmetic mean of the three vertex z-coordinates of
// every triangle, in triangle order.
func (m *Mesh) FaceMeanZ() ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, meshErrorf(methodMeanZ, err)
	}

	return faceMeanZ(m.Points, m.Triangles), nil
}

// FaceMeanZ is the slice form of (*Mesh).FaceMeanZ; it assumes the input was validated.
func FaceMeanZ(points []Point3D, triangles []Triangle) []float64 {
	return faceMeanZ(points, triangles)
}

func faceMeanZ(points []Point3D, triangles []Triangle) []float64 {
	means := make([]float64, len(triangles))
	for t, tri := range triangles {
		means[t] = mean3(points[tri[0]].Z, points[tri[1]].Z, points[tri[2]].Z)
	}

	return means
}

// mean3 averages three values, scaling first when the plain sum of finite
// inputs overflows.
func mean3(a, b, c float64) float64 {
	m := (a + b + c) / 3
	if math.IsInf(m, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) && !math.IsInf(c, 0) {
		return a/3 + b/3 + c/3
	}

	return m
}

// Bounds returns the component-wise minimum and maximum over all points.
//
// Errors: ErrEmptyPoints.
func (m *Mesh) Bounds() (lo, hi Point3D, err error) {
	if len(m.Points) == 0 {
		return lo, hi, meshErrorf(methodBounds, ErrEmptyPoints)
	}
	lo = Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range m.Points {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}

	return lo, hi, nil
}

// Columns splits the points into parallel X, Y and Z slices.
func (m *Mesh) Columns() (xs, ys, zs []float64) {
	xs = make([]float64, len(m.Points))
	ys = make([]float64, len(m.Points))
	zs = make([]float64, len(m.Points))
	for i, p := range m.Points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	return xs, ys, zs
}
