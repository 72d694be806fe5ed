package surface_test

import (
	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
)

// gray is a colormap whose red channel equals t, which makes the normalized
// value readable back from the quantized color.
var gray = colormap.Gray

// mustColor quantizes f(t) for expectations.
func mustColor(f colormap.Func, t float64) colormap.Color {
	c, err := colormap.Quantize(f(t))
	if err != nil {
		panic(err)
	}

	return c
}

// twoLevels returns two disjoint triangles with mean z 0 and 10. When
// highFirst is set the high triangle comes first in the input.
func twoLevels(highFirst bool) ([]mesh.Point3D, []mesh.Triangle) {
	points := []mesh.Point3D{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 2, Y: 0, Z: 10}, {X: 3, Y: 0, Z: 10}, {X: 2, Y: 1, Z: 10},
	}
	low, high := mesh.Triangle{0, 1, 2}, mesh.Triangle{3, 4, 5}
	if highFirst {
		return points, []mesh.Triangle{high, low}
	}

	return points, []mesh.Triangle{low, high}
}

// strip returns a fan of n triangles over n+2 points with increasing heights.
func strip(n int) ([]mesh.Point3D, []mesh.Triangle) {
	points := make([]mesh.Point3D, n+2)
	for i := range points {
		points[i] = mesh.Point3D{X: float64(i), Y: float64(i % 2), Z: float64(i * i)}
	}
	tris := make([]mesh.Triangle, n)
	for i := range tris {
		tris[i] = mesh.Triangle{i, i + 1, i + 2}
	}

	return points, tris
}
