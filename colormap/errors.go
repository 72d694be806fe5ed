// SPDX-License-Identifier: MIT
// Package: trisurf/colormap
//
// errors.go — sentinel errors for the colormap package.

package colormap

import "errors"

// ErrMalformed indicates a nil colormap, or one that returned a non-finite channel.
var ErrMalformed = errors.New("colormap: malformed colormap")

// ErrUnknownColormap indicates that ByName was given an unregistered name.
var ErrUnknownColormap = errors.New("colormap: unknown colormap")

// ErrTooFewStops indicates that Stops received fewer than two anchors.
var ErrTooFewStops = errors.New("colormap: need at least two stops")

// ErrBadStop indicates a stop channel outside [0,1].
var ErrBadStop = errors.New("colormap: stop channel out of range")
