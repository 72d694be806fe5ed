// SPDX-License-Identifier: MIT
// Package: trisurf/render
//
// png.go — outline rendering with tidwall/pinhole.

package render

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tidwall/pinhole"
)

// Default PNG size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// PNGRenderer draws every face outline in its face color, then the
// wireframe (if any) in the edge color, and writes <uuid>.png under Dir.
// Zero Width or Height fall back to the defaults.
type PNGRenderer struct {
	Dir           string
	Width, Height int
}

// Render implements Renderer.
func (r *PNGRenderer) Render(ctx context.Context, f *Figure) (Handle, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	w, h := r.Width, r.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	p := pinhole.New()
	fit := newFitter(f.Mesh)
	drawFaces(p, f.Mesh, fit)
	if f.Lines != nil {
		drawPolyline(p, f.Lines, fit)
	}
	p.Rotate(-math.Pi/3, 0, math.Pi/6)

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	id := uuid.New().String()
	if err := p.SavePNG(filepath.Join(r.Dir, id+".png"), w, h, pinhole.DefaultImageOptions); err != nil {
		return "", fmt.Errorf("render: save png: %w", err)
	}

	return Handle(id), nil
}

// fitter maps mesh coordinates into a cube of side 1 centered on the origin.
type fitter struct {
	cx, cy, cz, scale float64
}

func newFitter(m *MeshTrace) fitter {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for n := range m.X {
		for a, v := range [3]float64{m.X[n], m.Y[n], m.Z[n]} {
			lo[a], hi[a] = math.Min(lo[a], v), math.Max(hi[a], v)
		}
	}
	span := math.Max(hi[0]-lo[0], math.Max(hi[1]-lo[1], hi[2]-lo[2]))
	if len(m.X) == 0 || span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return fitter{scale: 1}
	}

	return fitter{
		cx:    (lo[0] + hi[0]) / 2,
		cy:    (lo[1] + hi[1]) / 2,
		cz:    (lo[2] + hi[2]) / 2,
		scale: 1 / span,
	}
}

func (f fitter) at(x, y, z float64) (float64, float64, float64) {
	return (x - f.cx) * f.scale, (y - f.cy) * f.scale, (z - f.cz) * f.scale
}

func drawFaces(p *pinhole.Pinhole, m *MeshTrace, fit fitter) {
	for n := range m.I {
		corners := [4]int{m.I[n], m.J[n], m.K[n], m.I[n]}
		p.Begin()
		for c := 0; c < 3; c++ {
			a, b := corners[c], corners[c+1]
			x1, y1, z1 := fit.at(m.X[a], m.Y[a], m.Z[a])
			x2, y2, z2 := fit.at(m.X[b], m.Y[b], m.Z[b])
			p.DrawLine(x1, y1, z1, x2, y2, z2)
		}
		if n < len(m.FaceColor) {
			fc := m.FaceColor[n]
			p.Colorize(color.RGBA{R: fc.R, G: fc.G, B: fc.B, A: 0xff})
		}
		p.End()
	}
}

// drawPolyline joins consecutive real entries and breaks at every gap.
func drawPolyline(p *pinhole.Pinhole, l *LineTrace, fit fitter) {
	p.Begin()
	for n := 1; n < len(l.X); n++ {
		if isGap(l, n-1) || isGap(l, n) {
			continue
		}
		x1, y1, z1 := fit.at(l.X[n-1].Value, l.Y[n-1].Value, l.Z[n-1].Value)
		x2, y2, z2 := fit.at(l.X[n].Value, l.Y[n].Value, l.Z[n].Value)
		p.DrawLine(x1, y1, z1, x2, y2, z2)
	}
	c := l.Line.Color
	p.Colorize(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	p.End()
}

func isGap(l *LineTrace, n int) bool {
	return l.X[n].Gap || l.Y[n].Gap || l.Z[n].Gap
}

// segments counts the line segments drawPolyline would emit.
func segments(l *LineTrace) int {
	count := 0
	for n := 1; n < len(l.X); n++ {
		if !isGap(l, n-1) && !isGap(l, n) {
			count++
		}
	}

	return count
}
