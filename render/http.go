// SPDX-License-Identifier: MIT
// Package: trisurf/render
//
// http.go — client for a remote plotting service.

package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 512

// HTTPRenderer posts figures as JSON to Endpoint and expects {"id": "..."}
// back. A nil Client means http.DefaultClient. Timeouts and retries are the
// caller's business, through ctx and Client.
type HTTPRenderer struct {
	Endpoint string
	Client   *http.Client
}

type remoteReply struct {
	ID string `json:"id"`
}

// Render implements Renderer.
func (r *HTTPRenderer) Render(ctx context.Context, f *Figure) (Handle, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	payload, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("render: encode figure: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("render: post %s: %w", r.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("render: %s answered %d %q: %w", r.Endpoint, resp.StatusCode, bytes.TrimSpace(msg), ErrRemote)
	}
	var reply remoteReply
	if err = json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("render: decode reply: %v: %w", err, ErrRemote)
	}
	if reply.ID == "" {
		return "", fmt.Errorf("render: reply without id: %w", ErrRemote)
	}

	return Handle(reply.ID), nil
}
