// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

package unwrap

import (
	"math"
	"sort"
)

// shelfPadding separates neighboring charts in the packed atlas so that
// rounding during the later UV normalization step can't make two charts'
// texel footprints touch.
const shelfPadding = 0.02

// rectSize is the bounding size of a chart's locally-projected 2D points,
// the only thing the packer needs to know about a chart.
type rectSize struct {
	width, height float32
}

// point2 is a packed chart's placement offset within the atlas canvas.
type point2 struct {
	x, y float32
}

// packShelves places each rectangle into a left-to-right, top-to-bottom
// shelf layout: charts are placed tallest-first into rows no wider than
// a target width derived from the total chart area, wrapping to a new
// row (shelf) when a chart would overflow it. It returns each input
// rectangle's placement, indexed the same as rects, plus the resulting
// canvas size.
//
// This stands in for the external atlas-packing library the specification
// delegates to: no third-party rectangle/atlas packer was found anywhere
// in the reference corpus, so chart placement is implemented directly,
// using a textbook shelf-packing heuristic.
func packShelves(rects []rectSize) (placements []point2, canvasWidth, canvasHeight float32) {
	placements = make([]point2, len(rects))
	if len(rects) == 0 {
		return placements, 0, 0
	}

	var totalArea float64
	var maxWidth float32
	for _, r := range rects {
		totalArea += float64(r.width) * float64(r.height)
		if r.width > maxWidth {
			maxWidth = r.width
		}
	}
	targetWidth := float32(math.Sqrt(totalArea))
	if maxWidth > targetWidth {
		targetWidth = maxWidth
	}

	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rects[order[i]].height > rects[order[j]].height
	})

	var shelfX, shelfY, shelfHeight float32
	for _, i := range order {
		r := rects[i]
		if shelfX > 0 && shelfX+r.width > targetWidth {
			shelfY += shelfHeight + shelfPadding
			shelfX = 0
			shelfHeight = 0
		}

		placements[i] = point2{x: shelfX, y: shelfY}

		shelfX += r.width + shelfPadding
		if r.height > shelfHeight {
			shelfHeight = r.height
		}
		if shelfX-shelfPadding > canvasWidth {
			canvasWidth = shelfX - shelfPadding
		}
	}
	canvasHeight = shelfY + shelfHeight

	return placements, canvasWidth, canvasHeight
}
