// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Matrix44F is a row-major 4x4 matrix, typically a camera projection matrix
// supplied by the host.
type Matrix44F struct {
	M [4][4]float32
}

// NewMatrix44F builds a Matrix44F from a row-major 4x4 array.
func NewMatrix44F(values [4][4]float32) Matrix44F { return Matrix44F{values} }

// PreMultiply returns the affine 3D result of M*[p;1], treating p as a
// homogeneous point with w=1. It does not perform a perspective divide;
// callers that need the perspective divide do it themselves afterwards.
func (m Matrix44F) PreMultiply(p Point3F) Point3F {
	r := m.M
	return Point3F{
		X: r[0][0]*p.X + r[0][1]*p.Y + r[0][2]*p.Z + r[0][3],
		Y: r[1][0]*p.X + r[1][1]*p.Y + r[1][2]*p.Z + r[1][3],
		Z: r[2][0]*p.X + r[2][1]*p.Y + r[2][2]*p.Z + r[2][3],
	}
}

// Matrix33F is a row-major 3x3 matrix, used to project a 3D point to 2D
// along the first two rows and to hold the orthogonal basis built from a
// chart's mean normal during unwrap.
type Matrix33F struct {
	M [3][3]float32
}

// Transpose returns the transpose of m.
func (m Matrix33F) Transpose() Matrix33F {
	var t Matrix33F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.M[j][i] = m.M[i][j]
		}
	}
	return t
}

// Project projects vertex to 2D by dotting it with the first two rows of m.
func (m Matrix33F) Project(vertex Point3F) Point2F {
	return Point2F{
		X: m.M[0][0]*vertex.X + m.M[0][1]*vertex.Y + m.M[0][2]*vertex.Z,
		Y: m.M[1][0]*vertex.X + m.M[1][1]*vertex.Y + m.M[1][2]*vertex.Z,
	}
}

// MakeOrthogonalBasis builds a 3x3 orthogonal basis whose third row is the
// given unit normal, and whose first two rows span the plane perpendicular
// to it. The construction is deliberately the one used by the original
// C++ implementation this package tracks, including its near-polar special
// case, rather than a more generic Gram-Schmidt basis: reusing a known-good
// numerically stable formula across ports avoids re-deriving edge-case
// behaviour for normals pointing nearly straight up or down the Z axis.
func MakeOrthogonalBasis(normal Vector3F) Matrix33F {
	var m Matrix33F
	m.M[2][0] = normal.X
	m.M[2][1] = normal.Y
	m.M[2][2] = normal.Z

	lengthSquared := (Vector3F{X: normal.X, Y: normal.Y}).LengthSquared()
	if lengthSquared > Epsilon {
		length := float32(math.Sqrt(float64(lengthSquared)))

		m.M[0][0] = normal.Y / length
		m.M[0][1] = -normal.X / length
		m.M[0][2] = 0

		m.M[1][0] = -normal.Z * m.M[0][1]
		m.M[1][1] = normal.Z * m.M[0][0]
		m.M[1][2] = normal.X*m.M[0][1] - normal.Y*m.M[0][0]
	} else {
		if normal.Z < 0 {
			m.M[0][0] = -1
		} else {
			m.M[0][0] = 1
		}
		m.M[0][1], m.M[0][2], m.M[1][0], m.M[1][2] = 0, 0, 0, 0
		m.M[1][1] = 1
	}

	return m
}
