// SPDX-License-Identifier: MIT
// Package: trisurf/colormap
//
// types.go — color value types and the colormap function type.

package colormap

import "fmt"

// Color is an 8-bit-per-channel RGB color, one per rendered face.
type Color struct {
	R, G, B uint8
}

// String renders c in the renderer's facecolor syntax: "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// MarshalText encodes c as its String form, so JSON carries "rgb(r, g, b)".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the "rgb(r, g, b)" form.
func (c *Color) UnmarshalText(text []byte) error {
	var r, g, b int
	if _, err := fmt.Sscanf(string(text), "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return fmt.Errorf("colormap: parse %q: %w", text, ErrMalformed)
	}
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("colormap: parse %q: channel %d: %w", text, v, ErrMalformed)
		}
	}
	*c = Color{R: uint8(r), G: uint8(g), B: uint8(b)}

	return nil
}

// RGB holds unit-interval channel intensities as returned by a Func.
type RGB struct {
	R, G, B float64
}

// Func maps a normalized scalar t ∈ [0,1] to a color. Implementations must be
// pure and must return finite channels for every t in the closed interval,
// including the boundary values 0 and 1.
type Func func(t float64) RGB

// hexRGB converts 0xRRGGBB into unit channels.
func hexRGB(v uint32) RGB {
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}
