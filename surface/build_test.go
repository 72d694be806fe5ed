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

// TestBuild_Assembles checks that Build agrees with the individual operations.
func TestBuild_Assembles(t *testing.T) {
	points, tris := strip(5)
	m, err := mesh.New(points, tris)
	require.NoError(t, err)

	s, err := surface.Build(m, surface.WithColormap(colormap.RdBu), surface.WithWireframe(true))
	require.NoError(t, err)

	colors, err := surface.BuildFaceColors(points, tris, colormap.RdBu)
	require.NoError(t, err)
	i, j, k := surface.ExtractIndexChannels(tris)
	w, err := surface.BuildWireframe(points, tris)
	require.NoError(t, err)

	assert.Equal(t, colors, s.FaceColors)
	assert.Equal(t, i, s.I)
	assert.Equal(t, j, s.J)
	assert.Equal(t, k, s.K)
	assert.Equal(t, w, s.Wireframe)
	assert.Equal(t, 5, s.NumFaces())
	assert.Len(t, s.X, len(points))
	assert.Equal(t, points[3].Z, s.Z[3])
}

// TestBuild_Defaults uses viridis and omits the wireframe.
func TestBuild_Defaults(t *testing.T) {
	points, tris := twoLevels(true)
	s, err := surface.Build(&mesh.Mesh{Points: points, Triangles: tris})
	require.NoError(t, err)
	assert.Nil(t, s.Wireframe)
	assert.Equal(t, mustColor(colormap.Viridis, 1), s.FaceColors[0])
	assert.Equal(t, mustColor(colormap.Viridis, 0), s.FaceColors[1])
}

// TestBuild_Errors surfaces contract violations without partial output.
func TestBuild_Errors(t *testing.T) {
	s, err := surface.Build(&mesh.Mesh{Points: []mesh.Point3D{{}}, Triangles: []mesh.Triangle{{0, 0, 1}}})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	assert.Nil(t, s)

	s, err = surface.Build(&mesh.Mesh{})
	assert.ErrorIs(t, err, mesh.ErrEmptyPoints)
	assert.Nil(t, s)

	_, err = surface.Build(nil)
	assert.ErrorIs(t, err, mesh.ErrEmptyPoints)

	for _, p := range []mesh.Point3D{{X: math.NaN()}, {Y: math.Inf(-1)}} {
		s, err = surface.Build(&mesh.Mesh{Points: []mesh.Point3D{{}, p}, Triangles: []mesh.Triangle{{0, 0, 0}}})
		assert.ErrorIs(t, err, surface.ErrNonFinite)
		assert.Nil(t, s)
	}

	_, err = surface.Build(&mesh.Mesh{Points: []mesh.Point3D{{}}}, surface.WithFlatValue(-1))
	assert.ErrorIs(t, err, surface.ErrOptionViolation)
}

// TestWithColormap_PanicsOnNil enforces the option-constructor contract.
func TestWithColormap_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { surface.WithColormap(nil) })
}
