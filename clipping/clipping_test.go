// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package clipping

import (
	"testing"
)

func square(x0, y0, x1, y1 float32) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestRoundTripPrecision(t *testing.T) {
	original := square(0.1234, 0.5678, 1.4321, 1.8765)
	converted := fromContour(toContour(original))
	if len(converted) != len(original) {
		t.Fatalf("round trip changed vertex count: got %d, want %d", len(converted), len(original))
	}
	for i := range original {
		dx := float64(converted[i].X - original[i].X)
		dy := float64(converted[i].Y - original[i].Y)
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx > 1/Precision || dy > 1/Precision {
			t.Errorf("vertex %d drifted by (%v,%v), want within %v", i, dx, dy, 1/Precision)
		}
	}
}

func TestIntersectOverlapping(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)
	got := Intersect(a, b)
	if len(got) != 1 {
		t.Fatalf("Intersect() returned %d polygons, want 1", len(got))
	}
	area := polygonArea(got[0])
	if area < 0.99 || area > 1.01 {
		t.Errorf("Intersect() area = %v, want ~1", area)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(10, 10, 11, 11)
	if got := Intersect(a, b); len(got) != 0 {
		t.Errorf("Intersect() of disjoint squares = %v, want empty", got)
	}
}

func TestUnionAllAdjacentSquares(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(1, 0, 2, 1)
	got := UnionAll([]Polygon{a, b})
	if len(got) != 1 {
		t.Fatalf("UnionAll() returned %d polygons, want 1", len(got))
	}
	area := polygonArea(got[0])
	if area < 1.99 || area > 2.01 {
		t.Errorf("UnionAll() area = %v, want ~2", area)
	}
}

func TestUnionAllEmpty(t *testing.T) {
	if got := UnionAll(nil); got != nil {
		t.Errorf("UnionAll(nil) = %v, want nil", got)
	}
}

// polygonArea computes the unsigned area of a closed 2D polygon via the
// shoelace formula, used only to sanity-check clipping results in tests.
func polygonArea(p Polygon) float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += float64(p[i].X)*float64(p[j].Y) - float64(p[j].X)*float64(p[i].Y)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
