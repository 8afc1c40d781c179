// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package arraybind

import "testing"

func TestVerticesReinterpretsBuffer(t *testing.T) {
	buf := []float32{1, 2, 3, 4, 5, 6}
	verts, err := Vertices(buf)
	if err != nil {
		t.Fatalf("Vertices() error = %v", err)
	}
	if len(verts) != 2 {
		t.Fatalf("Vertices() = %d points, want 2", len(verts))
	}
	if verts[1].X != 4 || verts[1].Y != 5 || verts[1].Z != 6 {
		t.Errorf("Vertices()[1] = %v, want (4,5,6)", verts[1])
	}

	// Aliasing: mutating the flat buffer must be visible through the
	// reinterpreted slice, proving no copy was made.
	buf[3] = 99
	if verts[1].X != 99 {
		t.Error("Vertices() copied instead of reinterpreting the buffer")
	}
}

func TestVerticesBadLengthFails(t *testing.T) {
	if _, err := Vertices([]float32{1, 2}); err == nil {
		t.Error("Vertices() with a length not a multiple of 3 succeeded, want error")
	}
}

func TestFacesReinterpretsBuffer(t *testing.T) {
	buf := []uint32{0, 1, 2, 2, 3, 0}
	faces, err := Faces(buf)
	if err != nil {
		t.Fatalf("Faces() error = %v", err)
	}
	if len(faces) != 2 {
		t.Fatalf("Faces() = %d faces, want 2", len(faces))
	}
	if faces[1].I1 != 2 || faces[1].I2 != 3 || faces[1].I3 != 0 {
		t.Errorf("Faces()[1] = %v, want {2,3,0}", faces[1])
	}
}

func TestUnwrapEmptyBuffersFail(t *testing.T) {
	if _, _, _, err := Unwrap(nil, nil); err == nil {
		t.Error("Unwrap() with no vertices/faces succeeded, want error")
	}
}
