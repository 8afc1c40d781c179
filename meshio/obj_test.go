// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

const triangleOBJ = `
# a single triangle
o triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vt 0.0 0.0
vt 1.0 0.0
vt 0.0 1.0
f 1/1 2/2 3/3
`

func TestLoadTriangle(t *testing.T) {
	m, err := Load(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("Load() vertices = %d, want 3", len(m.Vertices))
	}
	if len(m.Faces) != 1 {
		t.Fatalf("Load() faces = %d, want 1", len(m.Faces))
	}
	if len(m.UV) != 3 {
		t.Fatalf("Load() UVs = %d, want 3", len(m.UV))
	}
	want := geom.Point3F{X: 1, Y: 0, Z: 0}
	if m.Vertices[1] != want {
		t.Errorf("Load() vertex[1] = %v, want %v", m.Vertices[1], want)
	}
}

func TestLoadNoFacesFails(t *testing.T) {
	if _, err := Load(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\n")); err == nil {
		t.Error("Load() of a faceless file succeeded, want error")
	}
}

func TestLoadQuadFails(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Error("Load() of a quad face succeeded, want error (not triangulated)")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	m := mesh.Mesh{
		Vertices: []geom.Point3F{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Faces: []mesh.Face{{I1: 0, I2: 1, I3: 2}},
	}
	uvs := []geom.Point2F{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	var buf bytes.Buffer
	if err := Save(&buf, m, uvs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.Contains(buf.String(), "unwrapped") {
		t.Error("Save() output does not name the unwrapped UV channel")
	}

	reloaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() of saved OBJ error = %v", err)
	}
	if len(reloaded.Vertices) != len(m.Vertices) || len(reloaded.Faces) != len(m.Faces) {
		t.Fatalf("round trip mismatch: got %d verts / %d faces, want %d / %d",
			len(reloaded.Vertices), len(reloaded.Faces), len(m.Vertices), len(m.Faces))
	}
	for i, uv := range uvs {
		if reloaded.UV[i] != uv {
			t.Errorf("round trip UV[%d] = %v, want %v", i, reloaded.UV[i], uv)
		}
	}
}

func TestSaveMismatchedUVCountFails(t *testing.T) {
	m := mesh.Mesh{
		Vertices: []geom.Point3F{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces:    []mesh.Face{{I1: 0, I2: 1, I3: 2}},
	}
	var buf bytes.Buffer
	err := Save(&buf, m, []geom.Point2F{{X: 0, Y: 0}})
	if err == nil {
		t.Error("Save() with mismatched UV count succeeded, want error")
	}
}
