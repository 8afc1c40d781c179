// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Point2F is a point in 2D space, used both for viewport pixel coordinates
// and for UV coordinates in the unit square.
type Point2F struct {
	X, Y float32
}

// Point3F is a point in 3D space: a mesh vertex position.
type Point3F struct {
	X, Y, Z float32
}

// Less gives Point3F a total lexicographic order on (X, Y, Z). It exists so
// points can be used as map/sort keys, e.g. when deduplicating vertices.
func (p Point3F) Less(o Point3F) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}
