// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package project implements the stroke-projection core: given a 2D stroke
// polygon drawn in viewport pixel space, it floods outward from a seed face
// across the mesh's face adjacency graph, projects each front-facing
// triangle to the viewport, clips the stroke against it, and lifts the
// clipped remainder into texture-pixel space via barycentric coordinates.
package project

import (
	"math"

	"github.com/ultimaker/uvula-go/clipping"
	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

// degenerateDenominator is the barycentric-denominator threshold below
// which a 2D triangle is considered too thin to carry a meaningful
// barycentric mapping. It is deliberately an absolute, scale-dependent
// threshold (viewport pixels squared), matching the source this package
// tracks; very small viewports could in principle false-positive here, but
// no real caller uses a viewport that small.
const degenerateDenominator = 1e-6

// Camera describes the projection the stroke was drawn under: the 4x4
// projection matrix (applied without a perspective divide by Matrix44F, the
// divide is applied here when Perspective is set), whether that projection
// is perspective or orthographic, the viewport's pixel dimensions, and the
// world-space viewing normal pointing from the scene to the viewer (used
// for back-face culling).
type Camera struct {
	Projection     geom.Matrix44F
	Perspective    bool
	ViewportWidth  uint32
	ViewportHeight uint32
	Normal         geom.Vector3F
}

// Project returns the stroke's footprint on the mesh's texture, as a union
// of closed polygons in texture-pixel coordinates. seedFace out of range
// for m returns an empty result rather than panicking: it is a programming
// error at the contract level, but must not be unsafe.
func Project(stroke []geom.Point2F, m mesh.Mesh, textureWidth, textureHeight uint32, camera Camera, seedFace uint32) []clipping.Polygon {
	faceCount := uint32(m.FaceCount())
	if faceCount == 0 || seedFace >= faceCount {
		return nil
	}

	strokePolygon := clipping.Polygon(stroke)

	work := map[uint32]struct{}{seedFace: {}}
	processed := make(map[uint32]struct{}, faceCount)
	var contributions []clipping.Polygon

	for len(work) > 0 {
		var f uint32
		for candidate := range work {
			f = candidate
			break
		}
		delete(work, f)
		processed[f] = struct{}{}

		face := m.Face(f)
		triangle3 := m.Triangle(face)
		normal := triangle3.Normal()

		if normal.Dot(camera.Normal) >= 0 {
			contributions = append(contributions, projectFace(m, face, triangle3, strokePolygon, camera, textureWidth, textureHeight)...)
		}

		propagate(m, f, processed, work)
	}

	return clipping.UnionAll(contributions)
}

// projectFace projects a single front-facing triangle to the viewport,
// clips the stroke against it, and lifts every resulting sub-polygon into
// texture-pixel space. It returns nil if the triangle misses the stroke or
// is degenerate once projected to 2D.
func projectFace(m mesh.Mesh, face mesh.Face, triangle3 geom.Triangle3F, strokePolygon clipping.Polygon, camera Camera, textureWidth, textureHeight uint32) []clipping.Polygon {
	projected := projectTriangle(triangle3, camera)
	trianglePolygon := clipping.Polygon{projected.P1, projected.P2, projected.P3}

	uvAreas := clipping.Intersect(strokePolygon, trianglePolygon)
	if len(uvAreas) == 0 {
		return nil
	}

	faceUV := m.UVTriangle(face)
	var lifted []clipping.Polygon
	for _, area := range uvAreas {
		barycentrics, ok := barycentricCoordinates(area, projected)
		if !ok {
			continue
		}

		polygon := make(clipping.Polygon, 0, len(barycentrics))
		for _, bary := range barycentrics {
			polygon = append(polygon, textureCoordinates(bary, faceUV, textureWidth, textureHeight))
		}
		lifted = append(lifted, polygon)
	}
	return lifted
}

// propagate enqueues f's unprocessed neighbors. The processed-set check
// happens here, at insertion time, rather than only when a face is popped:
// under the assumption of symmetric adjacency this guard is the only thing
// that bounds the traversal to O(faces) visits, and checking only on pop
// would let an asymmetric mesh re-queue a face indefinitely.
func propagate(m mesh.Mesh, f uint32, processed map[uint32]struct{}, work map[uint32]struct{}) {
	if int(f) >= len(m.Adjacency) {
		return
	}
	for _, neighbor := range m.Adjacency[f].Neighbors() {
		if neighbor < 0 {
			continue
		}
		n := uint32(neighbor)
		if _, done := processed[n]; done {
			continue
		}
		work[n] = struct{}{}
	}
}

// projectTriangle projects a 3D triangle's three vertices to viewport pixel
// coordinates.
func projectTriangle(triangle geom.Triangle3F, camera Camera) geom.Triangle2F {
	return geom.Triangle2F{
		P1: projectToViewport(triangle.P1, camera),
		P2: projectToViewport(triangle.P2, camera),
		P3: projectToViewport(triangle.P3, camera),
	}
}

// projectToViewport applies the camera's affine projection matrix, an
// optional perspective divide, and the viewport's pixel scale to a single
// 3D point. The divide by 2*z (rather than z) is intentional: it matches
// the normalized-device-coordinate convention the host side expects and
// must not be "corrected" without a matching host-side change.
func projectToViewport(point geom.Point3F, camera Camera) geom.Point2F {
	projected := camera.Projection.PreMultiply(point)

	if camera.Perspective && projected.Z != 0 {
		scale := 2 * projected.Z
		projected = geom.Point3F{X: projected.X / scale, Y: projected.Y / scale, Z: projected.Z / scale}
	}

	return geom.Point2F{
		X: projected.X * float32(camera.ViewportWidth) / 2,
		Y: projected.Y * float32(camera.ViewportHeight) / 2,
	}
}

// barycentricCoordinates computes the barycentric (u,v,w) coordinates of
// every point in polygon against triangle, returning each triple packed
// into a Point3F (X=u, Y=v, Z=w). The second return value is false when
// triangle is degenerate in 2D, in which case the caller must skip the
// sub-polygon but keep traversing. The clipped input polygon is already
// confined to triangle, so the resulting barycentrics should be
// numerically near [0,1]; they are intentionally not clamped even if
// adversarial input pushes them slightly outside that range.
func barycentricCoordinates(polygon clipping.Polygon, triangle geom.Triangle2F) ([]geom.Point3F, bool) {
	v0 := geom.NewVector2F(triangle.P1, triangle.P2)
	v1 := geom.NewVector2F(triangle.P1, triangle.P3)

	d00 := float64(v0.Dot(v0))
	d01 := float64(v0.Dot(v1))
	d11 := float64(v1.Dot(v1))

	denom := d00*d11 - d01*d01
	if math.Abs(denom) < degenerateDenominator {
		return nil, false
	}

	result := make([]geom.Point3F, 0, len(polygon))
	for _, point := range polygon {
		v2 := geom.NewVector2F(triangle.P1, point)
		d20 := float64(v2.Dot(v0))
		d21 := float64(v2.Dot(v1))

		v := (d11*d20 - d01*d21) / denom
		w := (d00*d21 - d01*d20) / denom
		u := 1 - v - w

		result = append(result, geom.Point3F{X: float32(u), Y: float32(v), Z: float32(w)})
	}
	return result, true
}

// textureCoordinates maps a barycentric triple (packed as X=u, Y=v, Z=w)
// to a pixel coordinate in the face's texture chart, using the face's UV
// triangle and the texture's dimensions.
func textureCoordinates(barycentric geom.Point3F, uv geom.Triangle2F, textureWidth, textureHeight uint32) geom.Point2F {
	u := uv.P1.X*barycentric.X + uv.P2.X*barycentric.Y + uv.P3.X*barycentric.Z
	v := uv.P1.Y*barycentric.X + uv.P2.Y*barycentric.Y + uv.P3.Y*barycentric.Z
	return geom.Point2F{X: u * float32(textureWidth), Y: v * float32(textureHeight)}
}
