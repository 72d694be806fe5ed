// SPDX-License-Identifier: MIT
// Package: trisurf/ply
//
// errors.go — sentinel errors for the ply package.

package ply

import "errors"

// ErrBadHeader indicates a malformed or incomplete header.
var ErrBadHeader = errors.New("ply: bad header")

// ErrUnsupportedFormat indicates a format line other than ascii or binary.
var ErrUnsupportedFormat = errors.New("ply: unsupported format")

// ErrShortFace indicates a face with fewer than three vertex indices.
var ErrShortFace = errors.New("ply: face has fewer than three indices")

// ErrTruncated indicates that the body ended before every declared element was read.
var ErrTruncated = errors.New("ply: truncated body")

// ErrBadValue indicates an unparsable ASCII value or a non-integral index.
var ErrBadValue = errors.New("ply: bad value")
