// Package mesh defines the shared data model for triangulated surfaces:
// points in 3D space, index-triplet triangles, and the Mesh that binds them.
//
// 🚀 What is a Mesh?
//
//	A Mesh is a sequence of Point3D plus a sequence of Triangle, where each
//	Triangle is an ordered triple (i, j, k) of 0-based indices into the shared
//	point slice. Triangles are produced upstream (a Delaunay triangulation in
//	package sample, or a PLY file in package ply) and are treated as read-only.
//
// ✨ Invariant:
//   - every index referenced by every Triangle is in [0, len(Points)).
//
// Validate enforces that invariant and is the single gate every consumer
// (trisurf, render, server) passes through before touching coordinates.
//
// ⚙️ Usage:
//
//	m, err := mesh.New(points, triangles)
//	if errors.Is(err, mesh.ErrIndexOutOfRange) {
//	  // reject input
//	}
//
// Complexity:
//
//   - Validate:  O(T) time, O(1) memory.
//   - FaceMeanZ: O(T) time, O(T) memory.
//   - Bounds:    O(P) time, O(1) memory.
package mesh
