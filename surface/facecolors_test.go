package surface_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
	"github.com/katalvlaran/trisurf/surface"
)

// TestBuildFaceColors_OnePerTriangle checks length and input alignment.
func TestBuildFaceColors_OnePerTriangle(t *testing.T) {
	points, tris := strip(7)
	colors, err := surface.BuildFaceColors(points, tris, colormap.Viridis)
	require.NoError(t, err)
	require.Len(t, colors, len(tris))

	ts, err := surface.Normalize(points, tris)
	require.NoError(t, err)
	for n := range tris {
		assert.Equal(t, mustColor(colormap.Viridis, ts[n]), colors[n], "triangle %d", n)
	}
}

// TestBuildFaceColors_SingleTriangleIsFlat covers the degenerate branch:
// a lone triangle has zmin == zmax.
func TestBuildFaceColors_SingleTriangleIsFlat(t *testing.T) {
	points := []mesh.Point3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 5}}
	colors, err := surface.BuildFaceColors(points, []mesh.Triangle{{0, 1, 2}}, colormap.Viridis)
	require.NoError(t, err)
	assert.Equal(t, []colormap.Color{mustColor(colormap.Viridis, 0.5)}, colors)
}

// TestBuildFaceColors_AllEqualMeans maps every face to the flat value.
func TestBuildFaceColors_AllEqualMeans(t *testing.T) {
	points := []mesh.Point3D{{Z: 1}, {Z: 2}, {Z: 3}, {Z: 2}}
	tris := []mesh.Triangle{{0, 1, 2}, {1, 3, 1}, {2, 0, 3}}

	colors, err := surface.BuildFaceColors(points, tris, colormap.Plasma)
	require.NoError(t, err)
	for _, c := range colors {
		assert.Equal(t, mustColor(colormap.Plasma, 0.5), c)
	}

	ts, err := surface.Normalize(points, tris, surface.WithFlatValue(0.25))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, ts)
}

// TestNormalize_ExtremesAreExact checks that min and max means land on
// exactly 0 and 1 regardless of input order.
func TestNormalize_ExtremesAreExact(t *testing.T) {
	for _, highFirst := range []bool{false, true} {
		points, tris := twoLevels(highFirst)
		ts, err := surface.Normalize(points, tris)
		require.NoError(t, err)
		if highFirst {
			assert.Equal(t, []float64{1, 0}, ts)
		} else {
			assert.Equal(t, []float64{0, 1}, ts)
		}

		colors, err := surface.BuildFaceColors(points, tris, gray)
		require.NoError(t, err)
		if highFirst {
			assert.Equal(t, []colormap.Color{{R: 255, G: 255, B: 255}, {}}, colors)
		} else {
			assert.Equal(t, []colormap.Color{{}, {R: 255, G: 255, B: 255}}, colors)
		}
	}
}

// TestNormalize_Interior checks an interior value on an uneven mesh.
func TestNormalize_Interior(t *testing.T) {
	points := []mesh.Point3D{{Z: 0}, {Z: 3}, {Z: 6}, {Z: 9}, {Z: 12}}
	// means: 3, 6, 9
	tris := []mesh.Triangle{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
	ts, err := surface.Normalize(points, tris)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, ts)
}

// TestNormalize_WithRange clamps to an explicit range and rejects bad ones.
func TestNormalize_WithRange(t *testing.T) {
	points, tris := twoLevels(false)

	ts, err := surface.Normalize(points, tris, surface.WithRange(-10, 10))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, ts)

	ts, err = surface.Normalize(points, tris, surface.WithRange(2, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, ts)

	ts, err = surface.Normalize(points, tris, surface.WithRange(3, 3), surface.WithFlatValue(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, ts)

	_, err = surface.Normalize(points, tris, surface.WithRange(4, 2))
	assert.ErrorIs(t, err, surface.ErrBadRange)

	_, err = surface.Normalize(points, tris, surface.WithRange(math.NaN(), 2))
	assert.ErrorIs(t, err, surface.ErrBadRange)
}

// TestBuildFaceColors_Errors covers every contract violation; no partial
// output is returned.
func TestBuildFaceColors_Errors(t *testing.T) {
	points := []mesh.Point3D{{}, {X: 1}, {Y: 1}}
	nan := colormap.Func(func(float64) colormap.RGB { return colormap.RGB{G: math.NaN()} })
	// finite at the probe points, NaN elsewhere
	sneaky := colormap.Func(func(t float64) colormap.RGB {
		if t == 0 || t == 0.5 || t == 1 {
			return colormap.RGB{}
		}
		return colormap.RGB{R: math.NaN()}
	})

	cases := []struct {
		name   string
		points []mesh.Point3D
		tris   []mesh.Triangle
		cm     colormap.Func
		opts   []surface.Option
		want   error
	}{
		{"index out of range", points, []mesh.Triangle{{0, 1, 5}}, colormap.Viridis, nil, mesh.ErrIndexOutOfRange},
		{"empty points", nil, nil, colormap.Viridis, nil, mesh.ErrEmptyPoints},
		{"nil colormap", points, []mesh.Triangle{{0, 1, 2}}, nil, nil, colormap.ErrMalformed},
		{"nan colormap", points, []mesh.Triangle{{0, 1, 2}}, nan, nil, colormap.ErrMalformed},
		{"nan off-probe", []mesh.Point3D{{Z: 0}, {Z: 1}, {Z: 2}, {Z: 4}},
			[]mesh.Triangle{{0, 0, 0}, {1, 1, 1}, {3, 3, 3}}, sneaky, nil, colormap.ErrMalformed},
		{"nan z", []mesh.Point3D{{Z: math.NaN()}, {}, {}}, []mesh.Triangle{{0, 1, 2}}, colormap.Viridis, nil, surface.ErrNonFinite},
		{"flat value", points, []mesh.Triangle{{0, 1, 2}}, colormap.Viridis, []surface.Option{surface.WithFlatValue(1.5)}, surface.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			colors, err := surface.BuildFaceColors(tc.points, tc.tris, tc.cm, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, colors)
		})
	}
}

// TestBuildFaceColors_LargeFinite accepts heights whose plain sum overflows.
func TestBuildFaceColors_LargeFinite(t *testing.T) {
	points := []mesh.Point3D{{Z: 1.7e308}, {Z: 1.7e308}, {Z: -1.7e308}, {}}
	colors, err := surface.BuildFaceColors(points, []mesh.Triangle{{0, 1, 2}, {3, 3, 3}}, gray)
	require.NoError(t, err)
	assert.Equal(t, []colormap.Color{mustColor(gray, 1), mustColor(gray, 0)}, colors)
}

// TestBuildFaceColors_EmptyTriangles yields an empty result, not an error.
func TestBuildFaceColors_EmptyTriangles(t *testing.T) {
	colors, err := surface.BuildFaceColors([]mesh.Point3D{{}}, nil, colormap.Viridis)
	require.NoError(t, err)
	assert.Empty(t, colors)
}
