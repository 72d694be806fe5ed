// SPDX-License-Identifier: MIT
// Package: trisurf/server
//
// server.go — routes and handlers.

package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/katalvlaran/trisurf/colormap"
	"github.com/katalvlaran/trisurf/mesh"
	"github.com/katalvlaran/trisurf/render"
	"github.com/katalvlaran/trisurf/sample"
	"github.com/katalvlaran/trisurf/surface"
)

// errTooLarge marks meshes above Config.MaxTriangles.
var errTooLarge = errors.New("server: mesh too large")

// errShape marks points, triangles or ranges of the wrong length.
var errShape = errors.New("server: wrong number of values")

// errNoRenderer marks render requests on a server without a renderer.
var errNoRenderer = errors.New("server: no renderer configured")

// trisurfRequest is the body of both POST routes.
type trisurfRequest struct {
	Title     string       `json:"title"`
	Points    [][]float64 `json:"points"`
	Triangles [][]int     `json:"triangles"`
	Colormap  string      `json:"colormap"`
	Wireframe *bool       `json:"wireframe"`
	FlatValue *float64    `json:"flat_value"`
	Range     []float64   `json:"range"`
}

type handler struct {
	cfg Config
}

// New returns a gin engine serving the routes listed in the package doc.
func New(cfg Config) *gin.Engine {
	h := &handler{cfg: cfg}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.GET("/healthz", h.health)

	v1 := r.Group("/v1")
	v1.GET("/colormaps", h.colormaps)
	v1.GET("/samples", h.samples)
	v1.POST("/trisurf", h.trisurf)
	v1.POST("/trisurf/render", h.render)

	return r
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) colormaps(c *gin.Context) {
	c.JSON(http.StatusOK, colormap.Names())
}

func (h *handler) samples(c *gin.Context) {
	c.JSON(http.StatusOK, sample.Names())
}

func (h *handler) trisurf(c *gin.Context) {
	fig, err := h.figure(c)
	if err != nil {
		abort(c, err)
		return
	}
	body, err := json.Marshal(fig)
	if err != nil {
		abort(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *handler) render(c *gin.Context) {
	if h.cfg.Renderer == nil {
		abort(c, errNoRenderer)
		return
	}
	fig, err := h.figure(c)
	if err != nil {
		abort(c, err)
		return
	}
	handle, err := h.cfg.Renderer.Render(c.Request.Context(), fig)
	if err != nil {
		log.Printf("render %q: %v", fig.Layout.Title, err)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"handle": handle})
}

// figure decodes the request and runs the builder.
func (h *handler) figure(c *gin.Context) (*render.Figure, error) {
	var req trisurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("decode body: %w", errBadRequest{err})
	}
	if h.cfg.MaxTriangles > 0 && len(req.Triangles) > h.cfg.MaxTriangles {
		return nil, fmt.Errorf("%d triangles, limit %d: %w", len(req.Triangles), h.cfg.MaxTriangles, errTooLarge)
	}

	points := make([]mesh.Point3D, len(req.Points))
	for n, p := range req.Points {
		if len(p) != 3 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 3: %w", n, len(p), errBadRequest{errShape})
		}
		points[n] = mesh.Point3D{X: p[0], Y: p[1], Z: p[2]}
	}
	tris := make([]mesh.Triangle, len(req.Triangles))
	for n, t := range req.Triangles {
		if len(t) != 3 {
			return nil, fmt.Errorf("triangle %d has %d indices, want 3: %w", n, len(t), errBadRequest{errShape})
		}
		tris[n] = mesh.Triangle{t[0], t[1], t[2]}
	}
	if req.Range != nil && len(req.Range) != 2 {
		return nil, fmt.Errorf("range has %d bounds, want 2: %w", len(req.Range), errBadRequest{errShape})
	}

	name := req.Colormap
	if name == "" {
		name = h.cfg.colormapName()
	}
	cm, err := colormap.ByName(name)
	if err != nil {
		return nil, err
	}
	wire := h.cfg.Wireframe
	if req.Wireframe != nil {
		wire = *req.Wireframe
	}
	opts := []surface.Option{surface.WithColormap(cm), surface.WithWireframe(wire)}
	if req.FlatValue != nil {
		opts = append(opts, surface.WithFlatValue(*req.FlatValue))
	}
	if req.Range != nil {
		opts = append(opts, surface.WithRange(req.Range[0], req.Range[1]))
	}

	surf, err := surface.Build(&mesh.Mesh{Points: points, Triangles: tris}, opts...)
	if err != nil {
		return nil, err
	}

	return render.NewFigure(req.Title, surf), nil
}

// errBadRequest marks undecodable bodies.
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

// statusFor maps builder and input errors to HTTP statuses.
func statusFor(err error) int {
	var bad errBadRequest
	switch {
	case errors.As(err, &bad),
		errors.Is(err, mesh.ErrEmptyPoints),
		errors.Is(err, mesh.ErrIndexOutOfRange),
		errors.Is(err, colormap.ErrUnknownColormap),
		errors.Is(err, colormap.ErrMalformed),
		errors.Is(err, surface.ErrBadRange),
		errors.Is(err, surface.ErrNonFinite),
		errors.Is(err, surface.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errNoRenderer):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
