// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package clipping adapts the project package's floating-point polygons to
// and from the fixed-point paths expected by an integer-coordinate 2D
// polygon boolean-op engine, and exposes the two boolean operations the
// projection core needs: Intersect and UnionAll.
package clipping

import (
	"math"

	"github.com/akavel/polyclip-go"

	"github.com/ultimaker/uvula-go/geom"
)

// Precision is the fixed-point scale factor applied to every vertex before
// handing it to the clipping engine: coordinates are multiplied by
// Precision and rounded to the nearest integer unit, so the engine sees
// 1/Precision of the input unit as its smallest representable step. This
// quantizes away sub-millipixel detail; callers must treat anything finer
// than 1/Precision as lost.
const Precision = 1000.0

// Polygon is a closed 2D ring: an ordered, implicitly-closed sequence of
// points. Winding must be consistent within a single polygon but polygons
// need not be simple (self-intersection is not required to be absent).
type Polygon []geom.Point2F

// toContour quantizes polygon to the fixed-point precision and returns it
// as a clipping engine contour. Banker's rounding is not required; the
// nearest-integer rounding below is the "banker-neutral" rounding the
// contract calls for.
func toContour(polygon Polygon) polyclip.Contour {
	contour := make(polyclip.Contour, 0, len(polygon))
	for _, p := range polygon {
		contour = append(contour, polyclip.Point{
			X: math.Round(float64(p.X) * Precision),
			Y: math.Round(float64(p.Y) * Precision),
		})
	}
	return contour
}

// fromContour converts a fixed-point contour back to a floating-point
// polygon by dividing by Precision.
func fromContour(contour polyclip.Contour) Polygon {
	polygon := make(Polygon, 0, len(contour))
	for _, p := range contour {
		polygon = append(polygon, geom.Point2F{
			X: float32(p.X / Precision),
			Y: float32(p.Y / Precision),
		})
	}
	return polygon
}

func fromPaths(result polyclip.Polygon) []Polygon {
	polygons := make([]Polygon, 0, len(result))
	for _, contour := range result {
		polygons = append(polygons, fromContour(contour))
	}
	return polygons
}

// Intersect returns the boolean AND of the closed regions described by
// subject and clip, as zero or more output polygons (one per output loop).
// Fill is even-odd, matching the clipping engine's default.
func Intersect(subject, clip Polygon) []Polygon {
	if len(subject) == 0 || len(clip) == 0 {
		return nil
	}
	s := polyclip.Polygon{toContour(subject)}
	c := polyclip.Polygon{toContour(clip)}
	return fromPaths(s.Construct(polyclip.INTERSECTION, c))
}

// UnionAll returns the boolean OR of every polygon in polygons, treating
// them all as subjects. An empty input returns an empty output.
func UnionAll(polygons []Polygon) []Polygon {
	if len(polygons) == 0 {
		return nil
	}

	result := polyclip.Polygon{toContour(polygons[0])}
	for _, p := range polygons[1:] {
		next := polyclip.Polygon{toContour(p)}
		result = result.Construct(polyclip.UNION, next)
	}
	return fromPaths(result)
}
