// SPDX-License-Identifier: MIT
// Package: trisurf/sample
//
// options.go — sampling resolution.

package sample

import "fmt"

// Default grid resolution: samples along the first and second axis.
const (
	DefaultFirst  = 40
	DefaultSecond = 20
	minSamples    = 2
)

// Option customizes a sampler.
type Option func(*config)

type config struct {
	first, second int
}

func newConfig(opts ...Option) config {
	cfg := config{first: DefaultFirst, second: DefaultSecond}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithResolution sets the sample counts. For Parametric these are the u and
// v counts; for Polar the angular and radial counts. Panics if either is < 2.
func WithResolution(first, second int) Option {
	if first < minSamples || second < minSamples {
		panic(fmt.Sprintf("sample: WithResolution(%d, %d): both must be ≥ %d", first, second, minSamples))
	}
	return func(c *config) {
		c.first, c.second = first, second
	}
}
