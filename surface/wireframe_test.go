package surface_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisurf/mesh"
	"github.com/katalvlaran/trisurf/surface"
)

// TestExtractIndexChannels checks the reshape for every triangle.
func TestExtractIndexChannels(t *testing.T) {
	tris := []mesh.Triangle{{0, 1, 2}, {2, 1, 3}, {7, 8, 9}}
	i, j, k := surface.ExtractIndexChannels(tris)
	require.Len(t, i, 3)
	for n, tri := range tris {
		assert.Equal(t, tri[0], i[n])
		assert.Equal(t, tri[1], j[n])
		assert.Equal(t, tri[2], k[n])
	}

	i, j, k = surface.ExtractIndexChannels(nil)
	assert.Empty(t, i)
	assert.Empty(t, j)
	assert.Empty(t, k)
}

// TestBuildWireframe_Layout checks the v0,v1,v2,v0,gap pattern and length.
func TestBuildWireframe_Layout(t *testing.T) {
	points, tris := twoLevels(false)
	w, err := surface.BuildWireframe(points, tris)
	require.NoError(t, err)
	require.Equal(t, 5*len(tris), w.Len())
	assert.Len(t, w.Y, w.Len())
	assert.Len(t, w.Z, w.Len())

	for n, tri := range tris {
		base := 5 * n
		for c, idx := range []int{tri[0], tri[1], tri[2], tri[0]} {
			p := points[idx]
			assert.Equal(t, surface.At(p.X), w.X[base+c])
			assert.Equal(t, surface.At(p.Y), w.Y[base+c])
			assert.Equal(t, surface.At(p.Z), w.Z[base+c])
		}
		assert.Equal(t, surface.Gap, w.X[base+4])
		assert.Equal(t, surface.Gap, w.Y[base+4])
		assert.Equal(t, surface.Gap, w.Z[base+4])
	}
}

// TestBuildWireframe_Errors rejects out-of-range indices with no output and
// accepts empty triangles.
func TestBuildWireframe_Errors(t *testing.T) {
	points := []mesh.Point3D{{}, {X: 1}, {Y: 1}}
	w, err := surface.BuildWireframe(points, []mesh.Triangle{{0, 1, 5}})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	assert.Nil(t, w)

	w, err = surface.BuildWireframe(points, nil)
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

// TestCoord_JSON encodes gaps as null and decodes them back.
func TestCoord_JSON(t *testing.T) {
	in := []surface.Coord{surface.At(1.5), surface.Gap, surface.At(0)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,null,0]`, string(raw))

	var out []surface.Coord
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
