// Package render hands a finished tri-surface to a renderer.
//
// Figure is the renderer payload: a mesh3d trace (point columns, I/J/K
// corners and one facecolor per face) and, when a wireframe was built, a
// scatter3d trace in "lines" mode whose null entries break the polyline
// between triangles. It encodes to the JSON shape plotting services accept.
//
// Renderer implementations:
//   - JSONRenderer — writes <uuid>.json to a directory.
//   - PNGRenderer  — draws the triangle outlines with tidwall/pinhole and
//     writes <uuid>.png.
//   - HTTPRenderer — posts the figure to a remote plotting service and
//     returns the id it answers with.
//
// Every renderer returns an opaque Handle; callers must not parse it.
package render
