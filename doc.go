// Package trisurf is a toolkit for turning triangulated point sets into
// colored, renderable tri-surfaces.
//
// 🚀 What is a tri-surface?
//
//	A 3D surface made of triangles, each face colored from a scalar field
//	(here: height). Given points and index triplets, the builder produces
//	one color per face, the faces as I/J/K index channels, and optionally a
//	wireframe polyline with gaps between triangles.
//
// Packages:
//
//	mesh/      — Point3D, Triangle, Mesh and the index invariant
//	colormap/  — scalar → color maps (viridis, plasma, rdbu, gray, custom stops)
//	surface/   — face coloring, index channels, wireframe, Build
//	sample/    — parametric and polar surfaces, Delaunay-triangulated
//	ply/       — ascii and binary PLY mesh files
//	render/    — figure payload + JSON, PNG and remote renderers
//	server/    — the builder over HTTP (gin)
//	cmd/trisurf — command line: build, serve, list
//
// Quick ASCII example:
//
//	    2
//	    │╲
//	    │ ╲      points  = (0,0,0) (1,0,0) (0,1,5)
//	    0──1     triangle = (0,1,2) → one face, flat range → colormap(0.5)
//
//	go get github.com/katalvlaran/trisurf
//
// This root package holds documentation only; import the packages above.
package trisurf
