// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(degrees float32) float32 { return degrees * float32(math.Pi) / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(radians float32) float32 { return radians * 180 / float32(math.Pi) }

// TriangleNormal returns the unit normal of the triangle (v1, v2, v3), built
// from (v2-v1) x (v3-v1). The second return value is false when the
// triangle is degenerate (zero area), in which case the first return value
// is the zero vector and must not be used.
func TriangleNormal(v1, v2, v3 Point3F) (Vector3F, bool) {
	return NewVector3F(v1, v2).Cross(NewVector3F(v1, v3)).Normalized()
}
