// SPDX-License-Identifier: MIT
// Package: trisurf/colormap
//
// builtin.go — named colormaps and the name registry.

package colormap

import (
	"fmt"
	"sort"
	"strings"
)

// Viridis is the perceptually uniform blue-green-yellow map.
var Viridis = mustStops(
	hexRGB(0x440154), hexRGB(0x472d7b), hexRGB(0x3b528b), hexRGB(0x2c728e),
	hexRGB(0x21908c), hexRGB(0x27ad81), hexRGB(0x5dc863), hexRGB(0xaadc32),
	hexRGB(0xfde725),
)

// Plasma is the perceptually uniform blue-magenta-yellow map.
var Plasma = mustStops(
	hexRGB(0x0d0887), hexRGB(0x7e03a8), hexRGB(0xcc4678), hexRGB(0xf89441),
	hexRGB(0xf0f921),
)

// RdBu is the diverging red-white-blue map (red at 0, blue at 1).
var RdBu = mustStops(
	hexRGB(0x67001f), hexRGB(0xb2182b), hexRGB(0xd6604d), hexRGB(0xf4a582),
	hexRGB(0xfddbc7), hexRGB(0xf7f7f7), hexRGB(0xd1e5f0), hexRGB(0x92c5de),
	hexRGB(0x4393c3), hexRGB(0x2166ac), hexRGB(0x053061),
)

// Gray runs from black to white.
var Gray = Linear(RGB{0, 0, 0}, RGB{1, 1, 1})

var registry = map[string]Func{
	"viridis": Viridis,
	"plasma":  Plasma,
	"rdbu":    RdBu,
	"gray":    Gray,
}

// ByName resolves a built-in colormap, case-insensitively. A "_r" suffix
// selects the reversed map ("viridis_r").
//
// Errors: ErrUnknownColormap.
func ByName(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	reversed := strings.HasSuffix(key, "_r")
	key = strings.TrimSuffix(key, "_r")
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownColormap)
	}
	if reversed {
		return Reverse(f), nil
	}

	return f, nil
}

// Names lists the built-in colormap names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
