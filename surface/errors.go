// SPDX-License-Identifier: MIT
// Package: trisurf/surface
//
// errors.go — sentinel errors for the surface package.
//
// Contract violations coming from the input mesh surface as mesh.ErrEmptyPoints
// and mesh.ErrIndexOutOfRange; a bad colormap surfaces as colormap.ErrMalformed.
// The sentinels below cover what is specific to this package.

package surface

import (
	"errors"
	"fmt"
)

// ErrNonFinite indicates a NaN or infinite coordinate: a referenced z for the
// face-color operations, any coordinate for Build.
var ErrNonFinite = errors.New("surface: non-finite coordinate")

// ErrBadRange indicates an explicit normalization range with vmin > vmax or
// non-finite bounds (see WithRange).
var ErrBadRange = errors.New("surface: invalid normalization range")

// ErrOptionViolation indicates an option value that can only be checked when
// options are resolved, such as a flat value outside [0,1].
var ErrOptionViolation = errors.New("surface: invalid option value")

// Method tags used as error prefixes.
const (
	methodBuild           = "Build"
	methodBuildFaceColors = "BuildFaceColors"
	methodNormalize       = "Normalize"
	methodBuildWireframe  = "BuildWireframe"
)

// wrapf prefixes err with the method tag, keeping it visible to errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
