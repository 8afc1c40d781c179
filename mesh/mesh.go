// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mesh holds the read-only, index-based mesh view shared by unwrap
// and project: vertex positions, triangular faces, per-vertex UVs and
// per-face adjacency. All of it is arena-style flat arrays; there are no
// cyclic references anywhere in the data model.
package mesh

import "github.com/ultimaker/uvula-go/geom"

// Face is a triangle expressed as three vertex indices.
type Face struct {
	I1, I2, I3 uint32
}

// FaceSigned is a triangle-shaped triple of signed indices, used for face
// adjacency where -1 means "no neighbor across this edge".
type FaceSigned struct {
	I1, I2, I3 int32
}

// Neighbors returns the three adjacency entries as an array, in edge order,
// for convenient iteration.
func (f FaceSigned) Neighbors() [3]int32 { return [3]int32{f.I1, f.I2, f.I3} }

// Mesh is the read-only input view of a triangulated mesh. Vertices,
// Faces, UVs and Adjacency are all caller-owned and must not be mutated by
// anything that receives a Mesh.
type Mesh struct {
	// Vertices are the mesh's 3D vertex positions.
	Vertices []geom.Point3F

	// Faces lists the mesh's triangles as vertex-index triples. If Faces is
	// empty, face i is implicitly the triple {3i, 3i+1, 3i+2} over
	// Vertices: see Face.
	Faces []Face

	// UV is aligned 1:1 with Vertices; only required for Project.
	UV []geom.Point2F

	// Adjacency is aligned 1:1 with the (explicit or implicit) face list;
	// only required for Project. Adjacency is expected but not verified to
	// be symmetric: if face a lists b as a neighbor, b should list a.
	Adjacency []FaceSigned
}

// FaceCount returns the number of triangular faces in the mesh, accounting
// for the implicit-faces case where Faces is empty.
func (m Mesh) FaceCount() int {
	if len(m.Faces) > 0 {
		return len(m.Faces)
	}
	return len(m.Vertices) / 3
}

// Face returns the vertex-index triple for face i, synthesizing it from
// the flat vertex list when the mesh has no explicit face indices.
func (m Mesh) Face(i uint32) Face {
	if len(m.Faces) == 0 {
		base := i * 3
		return Face{base, base + 1, base + 2}
	}
	return m.Faces[i]
}

// Triangle returns the 3D triangle for face f.
func (m Mesh) Triangle(f Face) geom.Triangle3F {
	return geom.Triangle3F{P1: m.Vertices[f.I1], P2: m.Vertices[f.I2], P3: m.Vertices[f.I3]}
}

// UVTriangle returns the per-vertex UV triangle for face f.
func (m Mesh) UVTriangle(f Face) geom.Triangle2F {
	return geom.Triangle2F{P1: m.UV[f.I1], P2: m.UV[f.I2], P3: m.UV[f.I3]}
}
