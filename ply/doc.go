// Package ply reads Stanford PLY polygon files into a mesh.Mesh.
//
// Supported:
//   - format ascii 1.0, binary_little_endian 1.0, binary_big_endian 1.0
//   - every PLY scalar type (char … double and their int8 … float64 aliases)
//   - element vertex with x, y, z (other vertex properties are skipped)
//   - element face with a list property vertex_indices or vertex_index;
//     only the first three indices of each face are kept
//   - any other element, which is read and discarded
//
// Faces with fewer than three indices fail with ErrShortFace. The decoded
// mesh is validated, so dangling face indices fail with
// mesh.ErrIndexOutOfRange.
package ply
