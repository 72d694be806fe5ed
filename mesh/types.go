// SPDX-License-Identifier: MIT
// Package: trisurf/mesh
//
// types.go — Point3D, Triangle and Mesh.

package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Point3D is a real-valued (x, y, z) coordinate. Values are immutable once sampled.
type Point3D struct {
	X, Y, Z float64
}

// Vec converts p into a gonum r3.Vec.
func (p Point3D) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec converts a gonum r3.Vec into a Point3D.
func FromVec(v r3.Vec) Point3D {
	return Point3D{X: v.X, Y: v.Y, Z: v.Z}
}

// Triangle is an ordered triple of 0-based indices into a shared point slice.
type Triangle [3]int

// Mesh binds a point slice and a triangle slice.
//
// Invariant (checked by Validate): every index of every triangle is < len(Points).
type Mesh struct {
	Points    []Point3D
	Triangles []Triangle
}

// NumPoints returns len(m.Points).
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumTriangles returns len(m.Triangles).
func (m *Mesh) NumTriangles() int { return len(m.Triangles) }
