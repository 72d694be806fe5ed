package ply_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisurf/mesh"
	"github.com/katalvlaran/trisurf/ply"
)

const asciiSquare = `ply
format ascii 1.0
comment two triangles and a quad
element vertex 5
property float x
property float y
property float z
property uchar red
element face 3
property list uchar int vertex_indices
property uchar flags
element edge 1
property int vertex1
property int vertex2
end_header
0 0 0 255
1 0 0.5 0
1 1 1 0
0 1 1.5 0
0.5 0.5 2 0
3 0 1 4 7
3 1 2 4 7
4 2 3 0 1 7
0 1
`

// TestRead_ASCII decodes vertices, trims a quad to its first three indices
// and skips unrelated properties and elements.
func TestRead_ASCII(t *testing.T) {
	m, err := ply.Read(strings.NewReader(asciiSquare))
	require.NoError(t, err)
	require.Equal(t, 5, m.NumPoints())
	assert.Equal(t, mesh.Point3D{X: 0.5, Y: 0.5, Z: 2}, m.Points[4])
	assert.Equal(t, []mesh.Triangle{{0, 1, 4}, {1, 2, 4}, {2, 3, 0}}, m.Triangles)
}

// binaryTetra encodes a tetrahedron with float vertices, an extra double
// property, and int32 face indices.
func binaryTetra(t *testing.T, order binary.ByteOrder, name string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("ply\nformat " + name + " 1.0\n")
	buf.WriteString("element vertex 4\nproperty float x\nproperty float y\nproperty float z\nproperty double confidence\n")
	buf.WriteString("element face 4\nproperty list uchar int vertex_index\n")
	buf.WriteString("end_header\n")

	verts := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, v := range verts {
		require.NoError(t, binary.Write(&buf, order, v))
		require.NoError(t, binary.Write(&buf, order, float64(0.9)))
	}
	faces := [][3]int32{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for _, f := range faces {
		buf.WriteByte(3)
		require.NoError(t, binary.Write(&buf, order, f))
	}

	return buf.Bytes()
}

// TestRead_Binary covers both byte orders.
func TestRead_Binary(t *testing.T) {
	for name, order := range map[string]binary.ByteOrder{
		"binary_little_endian": binary.LittleEndian,
		"binary_big_endian":    binary.BigEndian,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := ply.Read(bytes.NewReader(binaryTetra(t, order, name)))
			require.NoError(t, err)
			assert.Equal(t, mesh.Point3D{Z: 1}, m.Points[3])
			assert.Equal(t, []mesh.Triangle{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, m.Triangles)
		})
	}
}

// TestRead_TruncatedBinary drops the last bytes of a valid file.
func TestRead_TruncatedBinary(t *testing.T) {
	data := binaryTetra(t, binary.LittleEndian, "binary_little_endian")
	_, err := ply.Read(bytes.NewReader(data[:len(data)-3]))
	assert.ErrorIs(t, err, ply.ErrTruncated)
}

// TestRead_Errors covers header and body contract violations.
func TestRead_Errors(t *testing.T) {
	body := func(header, rows string) string {
		return "ply\nformat ascii 1.0\n" + header + "end_header\n" + rows
	}
	vert3 := "element vertex 3\nproperty float x\nproperty float y\nproperty float z\n"
	face1 := "element face 1\nproperty list uchar int vertex_indices\n"
	rows3 := "0 0 0\n1 0 0\n0 1 0\n"

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no magic", "plx\n", ply.ErrBadHeader},
		{"no format", "ply\nelement vertex 0\nend_header\n", ply.ErrBadHeader},
		{"bad format", "ply\nformat binary_middle_endian 1.0\nend_header\n", ply.ErrUnsupportedFormat},
		{"no end_header", "ply\nformat ascii 1.0\n", ply.ErrBadHeader},
		{"bad type", body("element vertex 1\nproperty quad x\n", ""), ply.ErrBadHeader},
		{"property first", "ply\nformat ascii 1.0\nproperty float x\nend_header\n", ply.ErrBadHeader},
		{"missing z", body("element vertex 1\nproperty float x\nproperty float y\n", "0 0\n"), ply.ErrBadHeader},
		{"short face", body(vert3+face1, rows3+"2 0 1\n"), ply.ErrShortFace},
		{"out of range", body(vert3+face1, rows3+"3 0 1 9\n"), mesh.ErrIndexOutOfRange},
		{"truncated", body(vert3+face1, rows3), ply.ErrTruncated},
		{"bad number", body(vert3, "0 0 0\n1 x 0\n0 1 0\n"), ply.ErrBadValue},
		{"fractional index", body(vert3+face1, rows3+"3 0 1.5 2\n"), ply.ErrBadValue},
		{"huge vertex count", body("element vertex 1099511627776\nproperty float x\nproperty float y\nproperty float z\n", "0 0 0\n"), ply.ErrTruncated},
		{"huge face count", body(vert3+"element face 1099511627776\nproperty list uchar int vertex_indices\n", rows3+"3 0 1 2\n"), ply.ErrTruncated},
		{"no vertices", body("element vertex 0\nproperty float x\nproperty float y\nproperty float z\n", ""), mesh.ErrEmptyPoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ply.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

// TestReadFile reads from disk and reports missing files.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.ply")
	require.NoError(t, os.WriteFile(path, []byte(asciiSquare), 0o600))

	m, err := ply.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumTriangles())

	_, err = ply.ReadFile(filepath.Join(t.TempDir(), "missing.ply"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
