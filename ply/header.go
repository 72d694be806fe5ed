// SPDX-License-Identifier: MIT
// Package: trisurf/ply
//
// header.go — header grammar: format, elements and properties.

package ply

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

type format int

const (
	formatASCII format = iota
	formatBinaryLE
	formatBinaryBE
)

type scalarType int

const (
	typeInt8 scalarType = iota
	typeUint8
	typeInt16
	typeUint16
	typeInt32
	typeUint32
	typeFloat32
	typeFloat64
)

var scalarTypes = map[string]scalarType{
	"char": typeInt8, "int8": typeInt8,
	"uchar": typeUint8, "uint8": typeUint8,
	"short": typeInt16, "int16": typeInt16,
	"ushort": typeUint16, "uint16": typeUint16,
	"int": typeInt32, "int32": typeInt32,
	"uint": typeUint32, "uint32": typeUint32,
	"float": typeFloat32, "float32": typeFloat32,
	"double": typeFloat64, "float64": typeFloat64,
}

// size returns the binary width in bytes.
func (t scalarType) size() int {
	switch t {
	case typeInt8, typeUint8:
		return 1
	case typeInt16, typeUint16:
		return 2
	case typeInt32, typeUint32, typeFloat32:
		return 4
	default:
		return 8
	}
}

type property struct {
	name      string
	typ       scalarType
	list      bool
	countType scalarType // list properties only
}

type element struct {
	name  string
	count int
	props []property
}

type header struct {
	format   format
	elements []element
}

// readHeader consumes everything up to and including "end_header".
func readHeader(r *bufio.Reader) (*header, error) {
	line, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return nil, fmt.Errorf("missing magic: %w", ErrBadHeader)
	}

	h := &header{}
	seenFormat := false
	for {
		line, err = r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("no end_header: %w", ErrBadHeader)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "comment", "obj_info":
		case "format":
			if len(fields) != 3 {
				return nil, fmt.Errorf("format line %q: %w", strings.TrimSpace(line), ErrBadHeader)
			}
			switch fields[1] {
			case "ascii":
				h.format = formatASCII
			case "binary_little_endian":
				h.format = formatBinaryLE
			case "binary_big_endian":
				h.format = formatBinaryBE
			default:
				return nil, fmt.Errorf("format %q: %w", fields[1], ErrUnsupportedFormat)
			}
			seenFormat = true
		case "element":
			if len(fields) != 3 {
				return nil, fmt.Errorf("element line %q: %w", strings.TrimSpace(line), ErrBadHeader)
			}
			n, convErr := strconv.Atoi(fields[2])
			if convErr != nil || n < 0 {
				return nil, fmt.Errorf("element %s count %q: %w", fields[1], fields[2], ErrBadHeader)
			}
			h.elements = append(h.elements, element{name: fields[1], count: n})
		case "property":
			if len(h.elements) == 0 {
				return nil, fmt.Errorf("property before element: %w", ErrBadHeader)
			}
			p, perr := parseProperty(fields[1:])
			if perr != nil {
				return nil, perr
			}
			el := &h.elements[len(h.elements)-1]
			el.props = append(el.props, p)
		case "end_header":
			if !seenFormat {
				return nil, fmt.Errorf("no format line: %w", ErrBadHeader)
			}
			return h, nil
		default:
			return nil, fmt.Errorf("unknown keyword %q: %w", fields[0], ErrBadHeader)
		}
	}
}

func parseProperty(fields []string) (property, error) {
	if len(fields) == 4 && fields[0] == "list" {
		ct, ok1 := scalarTypes[fields[1]]
		it, ok2 := scalarTypes[fields[2]]
		if !ok1 || !ok2 {
			return property{}, fmt.Errorf("list types %s/%s: %w", fields[1], fields[2], ErrBadHeader)
		}
		return property{name: fields[3], typ: it, list: true, countType: ct}, nil
	}
	if len(fields) != 2 {
		return property{}, fmt.Errorf("property %v: %w", fields, ErrBadHeader)
	}
	t, ok := scalarTypes[fields[0]]
	if !ok {
		return property{}, fmt.Errorf("property type %s: %w", fields[0], ErrBadHeader)
	}

	return property{name: fields[1], typ: t}, nil
}

// index returns the position of the named property, or -1.
func (e *element) index(names ...string) int {
	for i, p := range e.props {
		for _, n := range names {
			if p.name == n {
				return i
			}
		}
	}

	return -1
}
