// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// options.go — functional options and their resolution.
//
// Contract:
//   • Option constructors panic on programmer errors (nil functions).
//   • Values that may come from user input (flat value, range) are checked
//     when options are resolved and surface as errors.

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trisurf/colormap"
)

// DefaultFlatValue is the normalized value used when all face means are equal.
const DefaultFlatValue = 0.5

// Option customizes Build and BuildFaceColors.
type Option func(*config)

type config struct {
	cmap      colormap.Func
	wireframe bool
	flatValue float64

	// explicit normalization range; used only when hasRange is set
	hasRange   bool
	vmin, vmax float64
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{
		cmap:      colormap.Viridis,
		flatValue: DefaultFlatValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !(cfg.flatValue >= 0 && cfg.flatValue <= 1) {
		return cfg, fmt.Errorf("flat value %v not in [0,1]: %w", cfg.flatValue, ErrOptionViolation)
	}
	if cfg.hasRange {
		if math.IsNaN(cfg.vmin) || math.IsNaN(cfg.vmax) || math.IsInf(cfg.vmin, 0) || math.IsInf(cfg.vmax, 0) || cfg.vmin > cfg.vmax {
			return cfg, fmt.Errorf("range [%v,%v]: %w", cfg.vmin, cfg.vmax, ErrBadRange)
		}
	}

	return cfg, nil
}

// WithColormap selects the colormap used by Build. Panics on nil.
func WithColormap(f colormap.Func) Option {
	if f == nil {
		panic("surface: WithColormap(nil)")
	}
	return func(c *config) {
		c.cmap = f
	}
}

// WithWireframe requests the edge overlay from Build.
func WithWireframe(on bool) Option {
	return func(c *config) {
		c.wireframe = on
	}
}

// WithFlatValue overrides DefaultFlatValue. v must lie in [0,1]; otherwise
// the build fails with ErrOptionViolation.
func WithFlatValue(v float64) Option {
	return func(c *config) {
		c.flatValue = v
	}
}

// WithRange normalizes against [vmin, vmax] instead of the mesh-derived range
// of face means. Means outside the range are clamped. vmin == vmax takes the
// flat branch; vmin > vmax fails with ErrBadRange.
func WithRange(vmin, vmax float64) Option {
	return func(c *config) {
		c.hasRange = true
		c.vmin, c.vmax = vmin, vmax
	}
}
