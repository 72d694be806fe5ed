// Package sample produces triangulated meshes from analytic surfaces.
//
// Three sources are supported:
//
//   - Parametric: a function (u, v) → (x, y, z) sampled on a regular grid;
//     the (u, v) parameter plane is Delaunay-triangulated and the triangles
//     carried over to the mapped points.
//   - Polar: a height field z = f(x, y) sampled on concentric rings; the
//     (x, y) samples are Delaunay-triangulated directly.
//   - Triangulate: scattered 3D points triangulated over their xy projection.
//
// Triangulation itself is delegated to github.com/fogleman/delaunay.
//
// A small catalogue (Moebius, Torus, Paraboloid, Ripple) backs the CLI's
// -sample flag.
package sample
