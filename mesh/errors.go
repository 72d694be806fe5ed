// SPDX-License-Identifier: MIT
// Package: trisurf/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, triangle number, offending index) is attached with %w.

package mesh

import (
	"errors"
	"fmt"
)

// ErrEmptyPoints indicates that a mesh has no points at all.
var ErrEmptyPoints = errors.New("mesh: point set must be non-empty")

// ErrIndexOutOfRange indicates that a triangle references a point index
// outside [0, len(Points)).
var ErrIndexOutOfRange = errors.New("mesh: out-of-range index")

// ErrLengthMismatch indicates misaligned coordinate columns or a flattened
// index list whose length is not a multiple of three.
var ErrLengthMismatch = errors.New("mesh: length mismatch")

// IndexError reports the triangle and corner of an out-of-range index.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Triangle int // position of the triangle in the input slice
	Corner   int // 0, 1 or 2
	Index    int // offending index
	Len      int // number of points
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("triangle %d corner %d: index %d not in [0,%d): %v",
		e.Triangle, e.Corner, e.Index, e.Len, ErrIndexOutOfRange)
}

// Unwrap exposes ErrIndexOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// meshErrorf prefixes err with the method tag, preserving it for errors.Is.
func meshErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
