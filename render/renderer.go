// SPDX-License-Identifier: MIT
// Package: trisurf/render
//
// renderer.go — the Renderer contract and the file-backed JSON renderer.

package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Handle identifies a rendered figure. It is opaque to callers.
type Handle string

// Renderer turns a figure into something viewable and returns its handle.
type Renderer interface {
	Render(ctx context.Context, f *Figure) (Handle, error)
}

// JSONRenderer writes each figure as <uuid>.json under Dir.
type JSONRenderer struct {
	Dir string
}

// Render implements Renderer.
func (r *JSONRenderer) Render(ctx context.Context, f *Figure) (Handle, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: encode figure: %w", err)
	}
	id := uuid.New().String()
	if err = writeFile(r.Dir, id+".json", data); err != nil {
		return "", err
	}

	return Handle(id), nil
}

func writeFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
