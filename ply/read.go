// SPDX-License-Identifier: MIT
// Package: trisurf/ply
//
// read.go — Read and ReadFile.

package ply

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/trisurf/mesh"
)

const (
	elementVertex = "vertex"
	elementFace   = "face"
)

// maxPrealloc bounds the capacity reserved from a header count; the body
// must actually hold the rows before the slices grow past it.
const maxPrealloc = 1 << 16

func initialCap(count int) int {
	return min(count, maxPrealloc)
}

// Read decodes a PLY stream into a validated mesh.
//
// Errors: ErrBadHeader, ErrUnsupportedFormat, ErrShortFace, ErrTruncated,
// ErrBadValue, mesh.ErrEmptyPoints, mesh.ErrIndexOutOfRange.
func Read(r io.Reader) (*mesh.Mesh, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	var dec decoder
	switch h.format {
	case formatASCII:
		dec = newASCIIDecoder(br)
	case formatBinaryLE:
		dec = &binaryDecoder{r: br, order: binary.LittleEndian}
	default:
		dec = &binaryDecoder{r: br, order: binary.BigEndian}
	}

	m := &mesh.Mesh{}
	for i := range h.elements {
		el := &h.elements[i]
		switch el.name {
		case elementVertex:
			err = readVertices(dec, el, m)
		case elementFace:
			err = readFaces(dec, el, m)
		default:
			err = skipElement(dec, el)
		}
		if err != nil {
			return nil, fmt.Errorf("Read: element %s: %w", el.name, err)
		}
	}

	if err = m.Validate(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return m, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func readVertices(dec decoder, el *element, m *mesh.Mesh) error {
	xi, yi, zi := el.index("x"), el.index("y"), el.index("z")
	if xi < 0 || yi < 0 || zi < 0 {
		return fmt.Errorf("vertex needs x, y and z: %w", ErrBadHeader)
	}

	m.Points = make([]mesh.Point3D, 0, initialCap(el.count))
	row := make([]float64, len(el.props))
	for n := 0; n < el.count; n++ {
		for p, prop := range el.props {
			if prop.list {
				if err := skipList(dec, prop); err != nil {
					return fmt.Errorf("vertex %d: %w", n, err)
				}
				continue
			}
			v, err := dec.scalar(prop.typ)
			if err != nil {
				return fmt.Errorf("vertex %d: %w", n, err)
			}
			row[p] = v
		}
		m.Points = append(m.Points, mesh.Point3D{X: row[xi], Y: row[yi], Z: row[zi]})
	}

	return nil
}

func readFaces(dec decoder, el *element, m *mesh.Mesh) error {
	li := el.index("vertex_indices", "vertex_index")
	if li < 0 || !el.props[li].list {
		return fmt.Errorf("face needs a vertex_indices list: %w", ErrBadHeader)
	}

	m.Triangles = make([]mesh.Triangle, 0, initialCap(el.count))
	for n := 0; n < el.count; n++ {
		var tri mesh.Triangle
		for p, prop := range el.props {
			if p != li {
				if err := skipProperty(dec, prop); err != nil {
					return fmt.Errorf("face %d: %w", n, err)
				}
				continue
			}
			var err error
			if tri, err = readFaceIndices(dec, prop); err != nil {
				return fmt.Errorf("face %d: %w", n, err)
			}
		}
		m.Triangles = append(m.Triangles, tri)
	}

	return nil
}

// readFaceIndices reads one index list and keeps its first three entries.
func readFaceIndices(dec decoder, prop property) (mesh.Triangle, error) {
	var tri mesh.Triangle
	cnt, err := dec.scalar(prop.countType)
	if err != nil {
		return tri, err
	}
	count, err := toIndex(cnt)
	if err != nil {
		return tri, err
	}
	if count < 3 {
		return tri, fmt.Errorf("%d indices: %w", count, ErrShortFace)
	}
	for c := 0; c < count; c++ {
		v, err := dec.scalar(prop.typ)
		if err != nil {
			return tri, err
		}
		if c >= 3 {
			continue
		}
		if tri[c], err = toIndex(v); err != nil {
			return tri, err
		}
	}

	return tri, nil
}

func skipElement(dec decoder, el *element) error {
	for n := 0; n < el.count; n++ {
		for _, prop := range el.props {
			if err := skipProperty(dec, prop); err != nil {
				return fmt.Errorf("row %d: %w", n, err)
			}
		}
	}

	return nil
}

func skipProperty(dec decoder, prop property) error {
	if prop.list {
		return skipList(dec, prop)
	}
	_, err := dec.scalar(prop.typ)

	return err
}

func skipList(dec decoder, prop property) error {
	cnt, err := dec.scalar(prop.countType)
	if err != nil {
		return err
	}
	count, err := toIndex(cnt)
	if err != nil {
		return err
	}
	for c := 0; c < count; c++ {
		if _, err = dec.scalar(prop.typ); err != nil {
			return err
		}
	}

	return nil
}
