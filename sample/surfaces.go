// SPDX-License-Identifier: MIT
// Package: trisurf/sample
//
// surfaces.go — a catalogue of ready-made surfaces.

package sample

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/trisurf/mesh"
)

// Moebius is the Möbius band over u ∈ [0, 2π], v ∈ [-1, 1].
func Moebius(u, v float64) r3.Vec {
	w := 1 + 0.5*v*math.Cos(u/2)

	return r3.Vec{X: w * math.Cos(u), Y: w * math.Sin(u), Z: 0.5 * v * math.Sin(u/2)}
}

// Torus returns the torus with tube center radius major and tube radius
// minor, over u, v ∈ [0, 2π].
func Torus(major, minor float64) ParametricFunc {
	return func(u, v float64) r3.Vec {
		ring := r3.Vec{X: math.Cos(u), Y: math.Sin(u)}
		tube := r3.Add(r3.Scale(minor*math.Cos(v), ring), r3.Vec{Z: minor * math.Sin(v)})

		return r3.Add(r3.Scale(major, ring), tube)
	}
}

// Paraboloid is z = x² + y².
func Paraboloid(x, y float64) float64 {
	return x*x + y*y
}

// Ripple is the damped radial wave z = 4·sin(r²) / (1 + r²), r² = x² + y².
func Ripple(x, y float64) float64 {
	r2 := x*x + y*y

	return 4 * math.Sin(r2) / (1 + r2)
}

// catalogue maps a surface name to its sampler.
var catalogue = map[string]func(opts ...Option) (*mesh.Mesh, error){
	"moebius": func(opts ...Option) (*mesh.Mesh, error) {
		return Parametric(Moebius, Interval{0, 2 * math.Pi}, Interval{-1, 1}, opts...)
	},
	"torus": func(opts ...Option) (*mesh.Mesh, error) {
		return Parametric(Torus(2, 0.6), Interval{0, 2 * math.Pi}, Interval{0, 2 * math.Pi}, opts...)
	},
	"paraboloid": func(opts ...Option) (*mesh.Mesh, error) {
		return Polar(Paraboloid, Interval{0, 1}, opts...)
	},
	"ripple": func(opts ...Option) (*mesh.Mesh, error) {
		return Polar(Ripple, Interval{0, 3}, opts...)
	},
}

// ByName samples a catalogue surface.
//
// Errors: ErrUnknownSurface, or any sampler error.
func ByName(name string, opts ...Option) (*mesh.Mesh, error) {
	fn, ok := catalogue[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownSurface)
	}

	return fn(opts...)
}

// Names lists the catalogue in ascending order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
