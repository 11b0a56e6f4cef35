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
	"testing"

	"seehuhn.de/go/geom/vec"
)

// insideEvenOdd is an independent even-odd point-in-polygon test, used to
// cross-check FillPolygon.
func insideEvenOdd(x, y float64, rings [][]vec.Vec2) bool {
	in := false
	for _, ring := range rings {
		n := len(ring)
		for i, a := range ring {
			b := ring[(i+1)%n]
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				t := (y - a.Y) / (b.Y - a.Y)
				if x < a.X+t*(b.X-a.X) {
					in = !in
				}
			}
		}
	}
	return in
}

func checkFill(t *testing.T, p *Pixmap, rings [][]vec.Vec2) {
	t.Helper()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			want := insideEvenOdd(float64(x)+0.5, float64(y)+0.5, rings)
			got := p.At(x, y) == 0
			if got != want {
				t.Errorf("pixel (%d, %d): painted=%t, inside=%t", x, y, got, want)
			}
		}
	}
}

func TestFillSquare(t *testing.T) {
	p := New(10, 10)
	rings := [][]vec.Vec2{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	p.FillPolygon(rings, 0)
	if n := countPainted(p); n != 100 {
		t.Errorf("got %d painted pixels, expected 100", n)
	}
}

func TestFillConvexQuad(t *testing.T) {
	rings := [][]vec.Vec2{{
		{X: 2.2, Y: 1.7}, {X: 9.3, Y: 2.6}, {X: 8.4, Y: 8.3}, {X: 2.8, Y: 7.1},
	}}
	p := New(12, 12)
	p.FillPolygon(rings, 0)
	checkFill(t, p, rings)
}

func TestFillStarEvenOdd(t *testing.T) {
	// a self-intersecting five-pointed star; even-odd leaves the inner
	// pentagon unpainted, nonzero would fill it
	var ring []vec.Vec2
	for i := 0; i < 5; i++ {
		a := (90 + 144*float64(i)) * math.Pi / 180
		ring = append(ring, vec.Vec2{
			X: 25 + 20*math.Cos(a),
			Y: 25 + 20*math.Sin(a),
		})
	}
	rings := [][]vec.Vec2{ring}

	p := New(50, 50)
	p.FillPolygon(rings, 0)

	if p.At(25, 25) != White {
		t.Error("star center painted; winding rule is not even-odd")
	}
	if p.At(25, 40) != 0 {
		t.Error("star arm not painted")
	}
	checkFill(t, p, rings)
}

func TestFillHorizontalEdges(t *testing.T) {
	// the horizontal base must be counted neither twice nor at all
	rings := [][]vec.Vec2{{
		{X: 2, Y: 2}, {X: 12, Y: 2}, {X: 7, Y: 10},
	}}
	p := New(15, 15)
	p.FillPolygon(rings, 0)
	checkFill(t, p, rings)
	if countPainted(p) == 0 {
		t.Error("triangle not painted")
	}
}

func TestFillMultipleSubpaths(t *testing.T) {
	// a ring: outer square minus inner square under even-odd
	rings := [][]vec.Vec2{
		{{X: 1, Y: 1}, {X: 13, Y: 1}, {X: 13, Y: 13}, {X: 1, Y: 13}},
		{{X: 5, Y: 5}, {X: 9, Y: 5}, {X: 9, Y: 9}, {X: 5, Y: 9}},
	}
	p := New(14, 14)
	p.FillPolygon(rings, 0)
	if p.At(7, 7) != White {
		t.Error("hole painted")
	}
	if p.At(2, 7) != 0 {
		t.Error("ring not painted")
	}
	checkFill(t, p, rings)
}

func TestFillDegenerate(t *testing.T) {
	p := New(10, 10)
	p.FillPolygon(nil, 0)
	p.FillPolygon([][]vec.Vec2{{{X: 1, Y: 1}, {X: 5, Y: 5}}}, 0)
	if countPainted(p) != 0 {
		t.Error("degenerate input painted pixels")
	}
}

func TestFillClipping(t *testing.T) {
	p := New(8, 8)
	rings := [][]vec.Vec2{{
		{X: -10, Y: -10}, {X: 20, Y: -10}, {X: 20, Y: 20}, {X: -10, Y: 20},
	}}
	p.FillPolygon(rings, 0)
	if n := countPainted(p); n != 64 {
		t.Errorf("got %d painted pixels, expected 64", n)
	}
}
