// Package colormap maps a normalized scalar in [0,1] to a color.
//
// A colormap is a plain function value, Func, returning unit-interval RGB
// channels. Quantize turns those channels into the 8-bit Color the renderer
// consumes, rounding each channel to the nearest integer in [0,255].
//
// Built-ins (Viridis, Plasma, RdBu, Gray) are piecewise-linear over anchor
// stops; Stops and Linear build custom maps the same way, Reverse flips one.
// ByName resolves the names accepted by the CLI and the HTTP server.
//
//	c, err := colormap.Quantize(colormap.Viridis(0.5))
//	fmt.Println(c) // rgb(33, 144, 140)
package colormap
