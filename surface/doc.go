// Package surface turns a triangulated point set into a colored, renderable
// tri-surface description, with optional wireframe edge geometry.
//
// 🚀 What is a tri-surface?
//
//	A 3D surface represented as a mesh of triangles, each colored from a
//	scalar field. Here the scalar is height: every face is colored by the
//	mean z of its three vertices, normalized against the mesh-wide range of
//	those means and pushed through a colormap.
//
// ✨ Operations:
//   - BuildFaceColors       — one Color per triangle, in triangle order.
//   - ExtractIndexChannels  — the triangles reshaped into parallel I, J, K slices.
//   - BuildWireframe        — per triangle v0,v1,v2,v0 followed by a gap,
//     so one concatenated polyline never joins unrelated triangles.
//   - Build                 — validates a mesh once and runs all three.
//
// Degenerate range:
//
//	When every face has the same mean z (a flat or single-triangle mesh) the
//	normalized value cannot be computed by division. An explicit branch maps
//	every face to the flat value instead (0.5 unless WithFlatValue says
//	otherwise). This constant is a documented choice, not derived data.
//
// ⚙️ Usage:
//
//	surf, err := surface.Build(m,
//	  surface.WithColormap(colormap.RdBu),
//	  surface.WithWireframe(true),
//	)
//	if errors.Is(err, mesh.ErrIndexOutOfRange) {
//	  // reject input; nothing partial is returned
//	}
//
// Everything here is pure and synchronous: no I/O, no shared state.
//
// Complexity: O(T) time and memory for T triangles, for every operation.
package surface
