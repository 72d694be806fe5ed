// SPDX-License-Identifier: MIT
// Package: trisurf/sample
//
// errors.go — sentinel errors for the sample package.

package sample

import (
	"errors"
	"fmt"
)

// ErrBadInterval indicates an interval with Min >= Max or non-finite bounds.
var ErrBadInterval = errors.New("sample: invalid interval")

// ErrTriangulation wraps a failure of the underlying Delaunay library, such
// as fewer than three distinct or all-collinear points.
var ErrTriangulation = errors.New("sample: triangulation failed")

// ErrUnknownSurface indicates that ByName was given an unregistered name.
var ErrUnknownSurface = errors.New("sample: unknown surface")

const (
	methodParametric  = "Parametric"
	methodPolar       = "Polar"
	methodTriangulate = "Triangulate"
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
