// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package unwrap

import "github.com/ultimaker/uvula-go/mesh"

// edgeKey canonically identifies an undirected mesh edge by its two vertex
// indices, lowest first, so that both faces sharing the edge compute the
// same key.
type edgeKey struct{ a, b uint32 }

func newEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// buildAdjacency derives the per-face neighbor list for m by grouping
// faces that share an edge. Unlike Project, Unwrap's public contract takes
// no adjacency input, so the chart segmentation builds its own from the
// raw face list. A non-manifold edge (shared by more than two faces) keeps
// only the first other face encountered; this mirrors how Project treats
// adjacency as a simple per-edge neighbor, not a full non-manifold graph.
func buildAdjacency(m mesh.Mesh) []mesh.FaceSigned {
	faceCount := m.FaceCount()
	adjacency := make([]mesh.FaceSigned, faceCount)
	for i := range adjacency {
		adjacency[i] = mesh.FaceSigned{I1: -1, I2: -1, I3: -1}
	}

	edgeFaces := make(map[edgeKey][2]int32, faceCount*3)
	for i := 0; i < faceCount; i++ {
		face := m.Face(uint32(i))
		edges := [3]edgeKey{
			newEdgeKey(face.I1, face.I2),
			newEdgeKey(face.I2, face.I3),
			newEdgeKey(face.I3, face.I1),
		}
		for _, key := range edges {
			entry := edgeFaces[key]
			switch {
			case entry[0] == 0:
				entry[0] = int32(i) + 1 // store 1-based so the zero value means "empty"
			case entry[1] == 0:
				entry[1] = int32(i) + 1
			}
			edgeFaces[key] = entry
		}
	}

	for i := 0; i < faceCount; i++ {
		face := m.Face(uint32(i))
		edges := [3]edgeKey{
			newEdgeKey(face.I1, face.I2),
			newEdgeKey(face.I2, face.I3),
			newEdgeKey(face.I3, face.I1),
		}
		var neighbors [3]int32
		for e, key := range edges {
			entry := edgeFaces[key]
			neighbors[e] = -1
			for _, slot := range entry {
				if slot != 0 && int(slot-1) != i {
					neighbors[e] = slot - 1
					break
				}
			}
		}
		adjacency[i] = mesh.FaceSigned{I1: neighbors[0], I2: neighbors[1], I3: neighbors[2]}
	}

	return adjacency
}
