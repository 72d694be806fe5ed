// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// indices.go — triangle corners as parallel index channels.

package surface

import "github.com/katalvlaran/trisurf/mesh"

// ExtractIndexChannels splits triangles into three parallel slices so that
// i[n], j[n], k[n] are the first, second and third corner of triangles[n].
// It is a pure reshape; indices are not validated.
func ExtractIndexChannels(triangles []mesh.Triangle) (i, j, k []int) {
	i = make([]int, len(triangles))
	j = make([]int, len(triangles))
	k = make([]int, len(triangles))
	for n, tri := range triangles {
		i[n], j[n], k[n] = tri[0], tri[1], tri[2]
	}

	return i, j, k
}
