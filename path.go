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

package eps

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Path is the current path of the graphics state: a sequence of sub-paths
// of already-flattened points, in user coordinates.  Curved segments do
// not occur; arcs are flattened into line segments when they are appended.
type Path struct {
	subpaths []subpath
}

type subpath struct {
	points []vec.Vec2
	closed bool
}

// IsEmpty reports whether the path contains no sub-paths.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// Clear removes all sub-paths.
func (p *Path) Clear() {
	p.subpaths = nil
}

// MoveTo starts a new sub-path at the given point.
func (p *Path) MoveTo(pt vec.Vec2) {
	p.subpaths = append(p.subpaths, subpath{points: []vec.Vec2{pt}})
}

// needsStart reports whether a LineTo requires a new sub-path first,
// i.e. whether there is no open sub-path to append to.
func (p *Path) needsStart() bool {
	n := len(p.subpaths)
	return n == 0 || p.subpaths[n-1].closed
}

// LineTo appends a straight segment to the open sub-path.  The caller
// must ensure that an open sub-path exists.
func (p *Path) LineTo(pt vec.Vec2) {
	sp := &p.subpaths[len(p.subpaths)-1]
	sp.points = append(sp.points, pt)
}

// Close marks the open sub-path as closed and returns its starting point.
// Closing an empty path is a no-op.
func (p *Path) Close() (vec.Vec2, bool) {
	if p.needsStart() {
		return vec.Vec2{}, false
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	sp.closed = true
	return sp.points[0], true
}

// flattenArc approximates a counterclockwise circular arc by the given
// number of straight segments and returns the steps+1 vertices.  Angles
// are in degrees; an end angle smaller than the start angle wraps around
// by a full turn.
func flattenArc(center vec.Vec2, radius, startDeg, endDeg float64, steps int) []vec.Vec2 {
	a1 := startDeg * math.Pi / 180
	a2 := endDeg * math.Pi / 180
	if a2 < a1 {
		a2 += 2 * math.Pi
	}
	pts := make([]vec.Vec2, steps+1)
	for i := 0; i <= steps; i++ {
		a := a1 + (a2-a1)*float64(i)/float64(steps)
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}
