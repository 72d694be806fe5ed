// SPDX-License-Identifier: MIT
// Package: trisurf/render
//
// errors.go — sentinel errors for the render package.

package render

import "errors"

// ErrNilFigure indicates a nil figure or a figure without a mesh trace.
var ErrNilFigure = errors.New("render: figure has no mesh")

// ErrRemote indicates a non-2xx answer or an unusable body from a remote service.
var ErrRemote = errors.New("render: remote service error")
