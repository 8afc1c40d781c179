// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package unwrap groups, planar-projects and packs the faces of a mesh
// into non-overlapping, unit-square UV coordinates, and reports the
// texture dimensions that give those UVs a sensible texel density.
package unwrap

import (
	"math"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

// texelDensity is the number of texels per unit of chart-projection space,
// used to turn the packed atlas size into a recommended texture size. It
// is a fixed default rather than a caller-tunable parameter because the
// public contract (see the project package's Camera for the equivalent in
// Project) has no field for it; callers that need a specific resolution
// can rescale the returned UVs against their own texture_width/height.
const texelDensity = 256

// minTextureSize is the smallest recommended texture dimension, so that a
// mesh with a single, tiny chart doesn't get an unusably small texture.
const minTextureSize = 64

// Unwrap groups faces into locally-planar charts, projects each chart to
// 2D, and packs the charts into the unit square. It returns the per-vertex
// UVs (aligned 1:1 with vertices), a recommended texture size, and false
// if the mesh has no faces or every face is degenerate.
func Unwrap(vertices []geom.Point3F, faces []mesh.Face) (uvs []geom.Point2F, textureWidth, textureHeight uint32, ok bool) {
	m := mesh.Mesh{Vertices: vertices, Faces: faces}
	faceCount := m.FaceCount()
	if faceCount == 0 {
		return nil, 0, 0, false
	}

	adjacency := buildAdjacency(m)
	charts := segmentCharts(m, adjacency, defaultAngleThresholdDegrees)

	type chartProjection struct {
		vertexOrder []uint32           // unique vertex indices touched by this chart, in first-seen order.
		local       map[uint32]geom.Point2F // each of those vertices' chart-local 2D projection.
		minX, minY  float32
	}

	projections := make([]chartProjection, len(charts))
	rects := make([]rectSize, len(charts))
	anyNonDegenerate := false

	for ci, c := range charts {
		basis := geom.MakeOrthogonalBasis(c.normal)
		proj := chartProjection{local: make(map[uint32]geom.Point2F)}

		minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
		maxX, maxY := -float32(math.MaxFloat32), -float32(math.MaxFloat32)
		for _, f := range c.faces {
			face := m.Face(f)
			for _, idx := range [3]uint32{face.I1, face.I2, face.I3} {
				if _, ok := proj.local[idx]; ok {
					continue
				}
				p := basis.Project(vertices[idx])
				proj.local[idx] = p
				proj.vertexOrder = append(proj.vertexOrder, idx)
				if p.X < minX {
					minX = p.X
				}
				if p.Y < minY {
					minY = p.Y
				}
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y > maxY {
					maxY = p.Y
				}
			}
		}

		width, height := maxX-minX, maxY-minY
		if width <= geom.Epsilon && height <= geom.Epsilon {
			// A fully degenerate chart (every face collapsed to a point):
			// give it a minimal footprint so the packer has something to
			// place instead of dividing by a zero-size rectangle later.
			width, height = geom.Epsilon, geom.Epsilon
		} else {
			anyNonDegenerate = true
		}

		proj.minX, proj.minY = minX, minY
		projections[ci] = proj
		rects[ci] = rectSize{width: width, height: height}
	}

	if !anyNonDegenerate {
		return nil, 0, 0, false
	}

	placements, canvasWidth, canvasHeight := packShelves(rects)
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return nil, 0, 0, false
	}

	uvs = make([]geom.Point2F, len(vertices))
	for ci, proj := range projections {
		offset := placements[ci]
		for _, idx := range proj.vertexOrder {
			local := proj.local[idx]
			uvs[idx] = geom.Point2F{
				X: (local.X - proj.minX + offset.x) / canvasWidth,
				Y: (local.Y - proj.minY + offset.y) / canvasHeight,
			}
		}
	}

	textureWidth = texelSize(canvasWidth)
	textureHeight = texelSize(canvasHeight)

	return uvs, textureWidth, textureHeight, true
}

// texelSize turns a packed-atlas dimension into a recommended texture
// pixel size, floored at minTextureSize.
func texelSize(dimension float32) uint32 {
	size := uint32(math.Ceil(float64(dimension) * texelDensity))
	if size < minTextureSize {
		return minTextureSize
	}
	return size
}
