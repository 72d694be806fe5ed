// Package server exposes the tri-surface builder over HTTP with gin.
//
//	GET  /healthz               liveness
//	GET  /v1/colormaps          built-in colormap names
//	GET  /v1/samples            built-in sample surface names
//	POST /v1/trisurf            mesh in, figure JSON out
//	POST /v1/trisurf/render     mesh in, renderer handle out
//
// Input contract violations (bad indices, empty points, unknown colormap,
// bad range) answer 400 with {"error": "..."}; renderer failures answer 502.
package server
