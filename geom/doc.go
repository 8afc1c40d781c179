// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom provides the 2D/3D point, vector, matrix and triangle value
// types shared by the unwrap and project packages. Unlike a general purpose
// 3D-engine math library, geom intentionally excludes quaternions, 4-vectors,
// and transform stacks: the unwrapping and stroke-projection algorithms only
// ever need points, vectors, 3x3/4x4 matrices and triangles built from them.
//
// Design Notes:
//
//  1. Values, not pointers. Every type here is small and copied by value.
//     Operations that combine two values return a new value rather than
//     mutating a receiver, with the single exception of Vector3F.Normalize,
//     which mirrors the in-place "did normalize" convention of the source
//     this package was ported from.
//  2. float32 throughout, matching the precision of the vertex and UV data
//     that flows in from host callers (meshes are rarely authored with more
//     than float32 precision, and texture pixel coordinates don't need it).
package geom

// Epsilon is used to decide when a float32 is close enough to zero to be
// treated as a degenerate input (a zero-length vector, a zero-area basis).
const Epsilon = 1.1920929e-7 // float32 machine epsilon, matches math.Nextafter32(1, 2)-1
