// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// types.go — Surface, Wireframe and the gap-aware Coord.

package surface

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/trisurf/colormap"
)

// Coord is one polyline coordinate: either a real value or a gap that
// breaks the line. Gaps encode as JSON null, which is how the renderer
// expects line breaks.
type Coord struct {
	Value float64
	Gap   bool
}

// Gap is the sentinel placed after each triangle's closed loop.
var Gap = Coord{Gap: true}

// At wraps a real coordinate.
func At(v float64) Coord { return Coord{Value: v} }

var jsonNull = []byte("null")

// MarshalJSON encodes a gap as null and a value as a JSON number.
func (c Coord) MarshalJSON() ([]byte, error) {
	if c.Gap {
		return jsonNull, nil
	}

	return json.Marshal(c.Value)
}

// UnmarshalJSON accepts null (gap) or a number.
func (c *Coord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*c = Gap

		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = At(v)

	return nil
}

// Wireframe is the edge overlay: three positionally aligned coordinate
// slices, five entries per triangle (v0, v1, v2, v0, gap).
type Wireframe struct {
	X []Coord `json:"x"`
	Y []Coord `json:"y"`
	Z []Coord `json:"z"`
}

// Len returns the number of polyline entries (gaps included).
func (w *Wireframe) Len() int { return len(w.X) }

// Surface is the renderable description of a colored tri-surface.
//
// X/Y/Z are the point columns, I/J/K the triangle corners, FaceColors is
// aligned with I/J/K. Wireframe is nil unless requested.
type Surface struct {
	X          []float64        `json:"x"`
	Y          []float64        `json:"y"`
	Z          []float64        `json:"z"`
	I          []int            `json:"i"`
	J          []int            `json:"j"`
	K          []int            `json:"k"`
	FaceColors []colormap.Color `json:"facecolor"`
	Wireframe  *Wireframe       `json:"wireframe,omitempty"`
}

// NumFaces returns the number of triangles described by s.
func (s *Surface) NumFaces() int { return len(s.I) }
