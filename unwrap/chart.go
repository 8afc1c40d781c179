// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package unwrap

import (
	"math"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

// defaultAngleThresholdDegrees bounds how far a face's normal may deviate
// from its chart's seed normal before it is cut into a new chart. The
// specification leaves the exact threshold as an implementation choice;
// 45 degrees is a common default for this kind of normal-based chart
// segmentation and keeps charts reasonably flat without fragmenting gently
// curved surfaces into one chart per face.
const defaultAngleThresholdDegrees = 45

// chart is a connected, locally planar patch of faces sharing a roughly
// common normal.
type chart struct {
	faces  []uint32
	normal geom.Vector3F // the seed face's normal while the chart grows; its mean face normal afterwards.
}

// segmentCharts groups the mesh's faces into charts by agglomerating
// adjacency-connected neighbors whose normal agrees with the chart's seed
// normal within angleThresholdDegrees. Faces with a degenerate 2D-or-3D
// normal (zero area) are folded into whichever neighboring chart reaches
// them first, since they contribute no orientation information of their
// own; a degenerate face with no processed neighbor yet becomes the seed
// of its own chart with an arbitrary +Z normal. Once a chart stops growing,
// its normal is replaced by the normalized mean of its non-degenerate
// faces' normals, the direction Unwrap projects the chart along.
//
// Traversal order is face-index order with a FIFO queue, not map
// iteration, so that the same mesh always segments into the same charts:
// unwrap's determinism guarantee depends on it.
func segmentCharts(m mesh.Mesh, adjacency []mesh.FaceSigned, angleThresholdDegrees float32) []chart {
	faceCount := m.FaceCount()
	normals := make([]geom.Vector3F, faceCount)
	degenerate := make([]bool, faceCount)
	for i := 0; i < faceCount; i++ {
		face := m.Face(uint32(i))
		triangle := m.Triangle(face)
		normal, ok := triangle.Normal().Normalized()
		normals[i] = normal
		degenerate[i] = !ok
	}

	cosThreshold := float32(math.Cos(float64(geom.Deg2Rad(angleThresholdDegrees))))

	visited := make([]bool, faceCount)
	var charts []chart

	for seed := 0; seed < faceCount; seed++ {
		if visited[seed] {
			continue
		}

		seedNormal := normals[seed]
		if degenerate[seed] {
			seedNormal = geom.Vector3F{X: 0, Y: 0, Z: 1}
		}

		c := chart{normal: seedNormal}
		queue := []uint32{uint32(seed)}
		visited[seed] = true

		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			c.faces = append(c.faces, f)

			for _, neighbor := range adjacency[f].Neighbors() {
				if neighbor < 0 || visited[neighbor] {
					continue
				}
				if !degenerate[neighbor] && c.normal.Dot(normals[neighbor]) < cosThreshold {
					continue
				}
				visited[neighbor] = true
				queue = append(queue, uint32(neighbor))
			}
		}

		var sum geom.Vector3F
		for _, f := range c.faces {
			if !degenerate[f] {
				sum = sum.Add(normals[f])
			}
		}
		if mean, ok := sum.Normalized(); ok {
			c.normal = mean
		}

		charts = append(charts, c)
	}

	return charts
}
