// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// wireframe.go — closed triangle loops separated by gaps.

package surface

import "github.com/katalvlaran/trisurf/mesh"

// entriesPerTriangle is v0, v1, v2, v0 and the trailing gap.
const entriesPerTriangle = 5

// BuildWireframe emits, for each triangle in input order, its three
// vertices, its first vertex again to close the loop, and a Gap. Joined into
// one polyline the loops stay disconnected from each other.
//
// Errors: mesh.ErrEmptyPoints, mesh.ErrIndexOutOfRange. Empty triangles
// yield an empty, non-nil Wireframe.
//
// Complexity: O(T) time, exactly 5·T entries per axis.
func BuildWireframe(points []mesh.Point3D, triangles []mesh.Triangle) (*Wireframe, error) {
	if err := mesh.ValidateTriangles(points, triangles); err != nil {
		return nil, wrapf(methodBuildWireframe, err)
	}

	return wireframe(points, triangles), nil
}

func wireframe(points []mesh.Point3D, triangles []mesh.Triangle) *Wireframe {
	size := entriesPerTriangle * len(triangles)
	w := &Wireframe{
		X: make([]Coord, 0, size),
		Y: make([]Coord, 0, size),
		Z: make([]Coord, 0, size),
	}
	for _, tri := range triangles {
		for _, idx := range [...]int{tri[0], tri[1], tri[2], tri[0]} {
			p := points[idx]
			w.X = append(w.X, At(p.X))
			w.Y = append(w.Y, At(p.Y))
			w.Z = append(w.Z, At(p.Z))
		}
		w.X = append(w.X, Gap)
		w.Y = append(w.Y, Gap)
		w.Z = append(w.Z, Gap)
	}

	return w
}
