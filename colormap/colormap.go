// SPDX-License-Identifier: MIT
// Package: trisurf/colormap
//
// colormap.go — constructing, checking and quantizing colormaps.

package colormap

import (
	"fmt"
	"math"
)

// Stops returns a Func that interpolates linearly between evenly spaced
// anchors: stops[0] at t=0, stops[len-1] at t=1. Inputs outside [0,1] are
// clamped. The stops are copied.
//
// Errors: ErrTooFewStops, ErrBadStop.
func Stops(stops ...RGB) (Func, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("Stops: got %d: %w", len(stops), ErrTooFewStops)
	}
	for i, s := range stops {
		for _, ch := range [...]float64{s.R, s.G, s.B} {
			if !(ch >= 0 && ch <= 1) {
				return nil, fmt.Errorf("Stops: stop %d channel %v: %w", i, ch, ErrBadStop)
			}
		}
	}

	return stopsFunc(append([]RGB(nil), stops...)), nil
}

// mustStops is Stops for the package-level tables, which are known good.
func mustStops(stops ...RGB) Func {
	f, err := Stops(stops...)
	if err != nil {
		panic(err)
	}

	return f
}

func stopsFunc(stops []RGB) Func {
	last := len(stops) - 1

	return func(t float64) RGB {
		switch {
		case math.IsNaN(t):
			return RGB{R: math.NaN(), G: math.NaN(), B: math.NaN()}
		case t <= 0:
			return stops[0]
		case t >= 1:
			return stops[last]
		}
		pos := t * float64(last)
		i := int(pos)
		if i >= last {
			return stops[last]
		}
		frac := pos - float64(i)
		a, b := stops[i], stops[i+1]

		return RGB{
			R: a.R + (b.R-a.R)*frac,
			G: a.G + (b.G-a.G)*frac,
			B: a.B + (b.B-a.B)*frac,
		}
	}
}

// Linear returns the two-stop colormap running from one color to another.
func Linear(from, to RGB) Func {
	return stopsFunc([]RGB{from, to})
}

// Reverse returns f evaluated at 1-t.
func Reverse(f Func) Func {
	return func(t float64) RGB { return f(1 - t) }
}

// Quantize rounds each unit channel of c to the nearest integer in [0,255].
// Channels outside [0,1] are clamped.
//
// Errors: ErrMalformed for NaN or infinite channels.
func Quantize(c RGB) (Color, error) {
	var out [3]uint8
	for i, ch := range [...]float64{c.R, c.G, c.B} {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			return Color{}, fmt.Errorf("Quantize: channel %d is %v: %w", i, ch, ErrMalformed)
		}
		v := math.Round(ch * 255)
		out[i] = uint8(math.Max(0, math.Min(255, v)))
	}

	return Color{R: out[0], G: out[1], B: out[2]}, nil
}

// Apply evaluates f at t and quantizes the result.
//
// Errors: ErrMalformed if f is nil or returns a non-finite channel.
func Apply(f Func, t float64) (Color, error) {
	if f == nil {
		return Color{}, fmt.Errorf("Apply: nil colormap: %w", ErrMalformed)
	}

	return Quantize(f(t))
}

// Check probes f at 0, 0.5 and 1 and reports whether it is usable.
//
// Errors: ErrMalformed.
func Check(f Func) error {
	if f == nil {
		return fmt.Errorf("Check: nil colormap: %w", ErrMalformed)
	}
	for _, t := range [...]float64{0, 0.5, 1} {
		if _, err := Quantize(f(t)); err != nil {
			return fmt.Errorf("Check: t=%v: %w", t, err)
		}
	}

	return nil
}
