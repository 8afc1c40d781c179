// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package unwrap

import (
	"reflect"
	"testing"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

// cubeMesh returns a closed, triangulated unit cube: 8 vertices, 12 faces,
// with face normals falling into 6 axis-aligned groups.
func cubeMesh() ([]geom.Point3F, []mesh.Face) {
	verts := []geom.Point3F{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	faces := []mesh.Face{
		{I1: 0, I2: 1, I3: 2}, {I1: 0, I2: 2, I3: 3}, // bottom (-Z)
		{I1: 4, I2: 6, I3: 5}, {I1: 4, I2: 7, I3: 6}, // top (+Z)
		{I1: 0, I2: 4, I3: 5}, {I1: 0, I2: 5, I3: 1}, // front (-Y)
		{I1: 3, I2: 2, I3: 6}, {I1: 3, I2: 6, I3: 7}, // back (+Y)
		{I1: 0, I2: 3, I3: 7}, {I1: 0, I2: 7, I3: 4}, // left (-X)
		{I1: 1, I2: 5, I3: 6}, {I1: 1, I2: 6, I3: 2}, // right (+X)
	}
	return verts, faces
}

func TestUnwrapNoFacesFails(t *testing.T) {
	_, _, _, ok := Unwrap(nil, nil)
	if ok {
		t.Error("Unwrap() with zero vertices/faces succeeded, want failure")
	}
}

func TestUnwrapAllDegenerateFacesFails(t *testing.T) {
	verts := []geom.Point3F{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}}
	faces := []mesh.Face{{I1: 0, I2: 1, I3: 2}}
	if _, _, _, ok := Unwrap(verts, faces); ok {
		t.Error("Unwrap() of a fully collapsed face succeeded, want failure")
	}
}

func TestUnwrapCubeUVsInUnitSquare(t *testing.T) {
	verts, faces := cubeMesh()
	uvs, w, h, ok := Unwrap(verts, faces)
	if !ok {
		t.Fatal("Unwrap() failed on a well-formed cube")
	}
	if w == 0 || h == 0 {
		t.Errorf("Unwrap() texture size = (%d,%d), want positive", w, h)
	}
	if len(uvs) != len(verts) {
		t.Fatalf("Unwrap() returned %d UVs, want %d (one per vertex)", len(uvs), len(verts))
	}
	for i, uv := range uvs {
		if uv.X < -1e-4 || uv.X > 1+1e-4 || uv.Y < -1e-4 || uv.Y > 1+1e-4 {
			t.Errorf("uv[%d] = %v, want within [0,1]^2", i, uv)
		}
	}
}

func TestUnwrapDeterministic(t *testing.T) {
	verts, faces := cubeMesh()
	uvs1, w1, h1, ok1 := Unwrap(verts, faces)
	uvs2, w2, h2, ok2 := Unwrap(verts, faces)
	if ok1 != ok2 || w1 != w2 || h1 != h2 {
		t.Fatalf("Unwrap() not deterministic across runs: (%v,%d,%d) vs (%v,%d,%d)", ok1, w1, h1, ok2, w2, h2)
	}
	if !reflect.DeepEqual(uvs1, uvs2) {
		t.Errorf("Unwrap() UVs differ across runs:\n%v\n%v", uvs1, uvs2)
	}
}

func TestBuildAdjacencySymmetric(t *testing.T) {
	verts, faces := cubeMesh()
	m := mesh.Mesh{Vertices: verts, Faces: faces}
	adjacency := buildAdjacency(m)
	for f, entry := range adjacency {
		for _, n := range entry.Neighbors() {
			if n < 0 {
				continue
			}
			found := false
			for _, back := range adjacency[n].Neighbors() {
				if int(back) == f {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("face %d lists %d as a neighbor, but %d does not list %d back", f, n, n, f)
			}
		}
	}
}

func TestSegmentChartsGroupsByNormal(t *testing.T) {
	verts, faces := cubeMesh()
	m := mesh.Mesh{Vertices: verts, Faces: faces}
	adjacency := buildAdjacency(m)
	charts := segmentCharts(m, adjacency, defaultAngleThresholdDegrees)

	// Each pair of triangles forming one cube side shares a normal and no
	// other side does, so a 45 degree threshold should yield exactly 6
	// two-face charts.
	if len(charts) != 6 {
		t.Fatalf("segmentCharts() produced %d charts, want 6", len(charts))
	}
	for _, c := range charts {
		if len(c.faces) != 2 {
			t.Errorf("chart %v has %d faces, want 2", c.faces, len(c.faces))
		}
	}
}
