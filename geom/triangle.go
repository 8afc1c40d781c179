// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Triangle3F is three 3D points forming a mesh face.
type Triangle3F struct {
	P1, P2, P3 Point3F
}

// Normal returns the (un-normalized) face normal (P2-P1) x (P3-P1). Callers
// that need a unit normal should run the result through Vector3F.Normalized,
// or use TriangleNormal which does both steps and reports degeneracy.
func (t Triangle3F) Normal() Vector3F {
	return NewVector3F(t.P1, t.P2).Cross(NewVector3F(t.P1, t.P3))
}

// Triangle2F is three 2D points: either a projected screen-space triangle
// or a triangle's per-vertex UV coordinates.
type Triangle2F struct {
	P1, P2, P3 Point2F
}
