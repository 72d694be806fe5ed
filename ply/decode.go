// SPDX-License-Identifier: MIT
// Package: trisurf/ply
//
// decode.go — scalar decoding for the ascii and binary bodies.

package ply

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// decoder yields one scalar at a time, whatever the body encoding.
type decoder interface {
	scalar(t scalarType) (float64, error)
}

type asciiDecoder struct {
	words *bufio.Scanner
}

func newASCIIDecoder(r io.Reader) *asciiDecoder {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	return &asciiDecoder{words: s}
}

func (d *asciiDecoder) scalar(scalarType) (float64, error) {
	if !d.words.Scan() {
		if err := d.words.Err(); err != nil {
			return 0, err
		}
		return 0, ErrTruncated
	}
	v, err := strconv.ParseFloat(d.words.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", d.words.Text(), ErrBadValue)
	}

	return v, nil
}

type binaryDecoder struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (d *binaryDecoder) scalar(t scalarType) (float64, error) {
	b := d.buf[:t.size()]
	if _, err := io.ReadFull(d.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrTruncated
		}
		return 0, err
	}

	switch t {
	case typeInt8:
		return float64(int8(b[0])), nil
	case typeUint8:
		return float64(b[0]), nil
	case typeInt16:
		return float64(int16(d.order.Uint16(b))), nil
	case typeUint16:
		return float64(d.order.Uint16(b)), nil
	case typeInt32:
		return float64(int32(d.order.Uint32(b))), nil
	case typeUint32:
		return float64(d.order.Uint32(b)), nil
	case typeFloat32:
		return float64(math.Float32frombits(d.order.Uint32(b))), nil
	default:
		return math.Float64frombits(d.order.Uint64(b)), nil
	}
}

// toIndex converts a decoded list entry into a vertex index.
func toIndex(v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("index %v: %w", v, ErrBadValue)
	}

	return int(v), nil
}
