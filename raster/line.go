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

// Line draws the 8-connected Bresenham segment between the two endpoints.
// Every pixel on the segment is visited exactly once, and the endpoints
// are interchangeable: the segment is put into a canonical order first,
// so both directions paint the same pixels.
func (p *Pixmap) Line(x0, y0, x1, y1 int, v byte) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		p.SetPixel(x, y, v)
	})
}

// ThickLine draws a line with a centered square pen of the given width.
// A width of 1 or less is a plain Line.
func (p *Pixmap) ThickLine(x0, y0, x1, y1, width int, v byte) {
	if width <= 1 {
		p.Line(x0, y0, x1, y1, v)
		return
	}
	lo := (width - 1) / 2
	hi := width / 2
	bresenham(x0, y0, x1, y1, func(x, y int) {
		for dy := -lo; dy <= hi; dy++ {
			for dx := -lo; dx <= hi; dx++ {
				p.SetPixel(x+dx, y+dy, v)
			}
		}
	})
}

func bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
