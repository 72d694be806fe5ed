// SPDX-License-Identifier: MIT
// Package: trisurf/render
//
// figure.go — renderer payload.

package render

import (
	"github.com/goccy/go-json"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/surface"
)

// Trace type names understood by the plotting service.
const (
	TypeMesh3D    = "mesh3d"
	TypeScatter3D = "scatter3d"
	modeLines     = "lines"
)

// DefaultEdgeColor is the wireframe color, rgb(50, 50, 50).
var DefaultEdgeColor = colormap.Color{R: 50, G: 50, B: 50}

// DefaultEdgeWidth is the wireframe line width in pixels.
const DefaultEdgeWidth = 1.5

// MeshTrace is the filled surface.
type MeshTrace struct {
	Type      string           `json:"type"`
	Name      string           `json:"name,omitempty"`
	X         []float64        `json:"x"`
	Y         []float64        `json:"y"`
	Z         []float64        `json:"z"`
	I         []int            `json:"i"`
	J         []int            `json:"j"`
	K         []int            `json:"k"`
	FaceColor []colormap.Color `json:"facecolor"`
}

// LineStyle styles a LineTrace.
type LineStyle struct {
	Color colormap.Color `json:"color"`
	Width float64        `json:"width"`
}

// LineTrace is the wireframe overlay.
type LineTrace struct {
	Type string          `json:"type"`
	Mode string          `json:"mode"`
	Name string          `json:"name,omitempty"`
	X    []surface.Coord `json:"x"`
	Y    []surface.Coord `json:"y"`
	Z    []surface.Coord `json:"z"`
	Line LineStyle       `json:"line"`
}

// Layout carries figure-level settings.
type Layout struct {
	Title  string `json:"title,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Figure is what a Renderer consumes. Lines is nil without a wireframe.
type Figure struct {
	Mesh   *MeshTrace
	Lines  *LineTrace
	Layout Layout
}

// NewFigure wraps s into a figure titled title.
func NewFigure(title string, s *surface.Surface) *Figure {
	f := &Figure{
		Mesh: &MeshTrace{
			Type:      TypeMesh3D,
			Name:      title,
			X:         s.X,
			Y:         s.Y,
			Z:         s.Z,
			I:         s.I,
			J:         s.J,
			K:         s.K,
			FaceColor: s.FaceColors,
		},
		Layout: Layout{Title: title},
	}
	if s.Wireframe != nil {
		f.Lines = &LineTrace{
			Type: TypeScatter3D,
			Mode: modeLines,
			X:    s.Wireframe.X,
			Y:    s.Wireframe.Y,
			Z:    s.Wireframe.Z,
			Line: LineStyle{Color: DefaultEdgeColor, Width: DefaultEdgeWidth},
		}
	}

	return f
}

type wireFigure struct {
	Data   []any  `json:"data"`
	Layout Layout `json:"layout"`
}

// MarshalJSON emits {"data":[mesh, lines?], "layout":{...}}.
func (f *Figure) MarshalJSON() ([]byte, error) {
	w := wireFigure{Layout: f.Layout}
	if f.Mesh != nil {
		w.Data = append(w.Data, f.Mesh)
	}
	if f.Lines != nil {
		w.Data = append(w.Data, f.Lines)
	}

	return json.Marshal(w)
}

func (f *Figure) check() error {
	if f == nil || f.Mesh == nil {
		return ErrNilFigure
	}

	return nil
}
