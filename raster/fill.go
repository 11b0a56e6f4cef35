// seehuhn.de/go/eps - render Encapsulated PostScript to PNG
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"
)

type edge struct {
	x0, y0, x1, y1 float64
}

// FillPolygon paints the interior of a polygon under the even-odd winding
// rule.  Each ring is a sub-path of at least three vertices, in device
// coordinates; rings are closed implicitly.
//
// Per pixel row, the crossings of all non-horizontal edges with the row
// center are collected; each edge counts on the half-open interval
// [min(y), max(y)), so shared vertices are not counted twice and
// horizontal edges never cross.  Sorted crossings are paired and the
// pixels whose centers lie between a pair are painted.
func (p *Pixmap) FillPolygon(rings [][]vec.Vec2, v byte) {
	var edges []edge
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i, a := range ring {
			b := ring[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y})
			minY = math.Min(minY, math.Min(a.Y, b.Y))
			maxY = math.Max(maxY, math.Max(a.Y, b.Y))
		}
	}
	if len(edges) == 0 {
		return
	}

	rowStart := int(math.Floor(minY))
	if rowStart < 0 {
		rowStart = 0
	}
	rowEnd := int(math.Ceil(maxY))
	if rowEnd > p.Height-1 {
		rowEnd = p.Height - 1
	}

	var xs []float64
	for r := rowStart; r <= rowEnd; r++ {
		cy := float64(r) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if (e.y0 <= cy && cy < e.y1) || (e.y1 <= cy && cy < e.y0) {
				t := (cy - e.y0) / (e.y1 - e.y0)
				xs = append(xs, e.x0+t*(e.x1-e.x0))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			c0 := int(math.Ceil(xs[i] - 0.5))
			c1 := int(math.Floor(xs[i+1] - 0.5))
			if c0 < 0 {
				c0 = 0
			}
			if c1 > p.Width-1 {
				c1 = p.Width - 1
			}
			for c := c0; c <= c1; c++ {
				p.Pix[r*p.Width+c] = v
			}
		}
	}
}
