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
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/vec"
)

// opArity gives the number of numeric operands each supported operator
// pops.  Membership in this table is what makes an operator "supported";
// everything else is subject to the UnknownOps policy.
var opArity = map[Operator]int{
	"moveto":       2,
	"lineto":       2,
	"rmoveto":      2,
	"rlineto":      2,
	"arc":          5,
	"closepath":    0,
	"newpath":      0,
	"stroke":       0,
	"fill":         0,
	"setgray":      1,
	"setlinewidth": 1,
	"gsave":        0,
	"grestore":     0,
	"showpage":     0,
}

// SupportedOperators returns the names of all operators the interpreter
// implements, in sorted order.
func SupportedOperators() []Operator {
	ops := maps.Keys(opArity)
	slices.Sort(ops)
	return ops
}

func (intp *Interpreter) apply(op Operator) error {
	arity, ok := opArity[op]
	if !ok {
		return intp.unknownOperator(op)
	}

	if len(intp.Stack) < arity {
		return errStackunderflow(op)
	}
	base := len(intp.Stack) - arity
	args := make([]float64, arity)
	for i, o := range intp.Stack[base:] {
		x, ok := asReal(o)
		if !ok {
			return errTypecheck(op)
		}
		args[i] = x
	}
	intp.Stack = intp.Stack[:base]

	state := &intp.State
	switch op {
	case "moveto":
		p := vec.Vec2{X: args[0], Y: args[1]}
		state.Path.MoveTo(p)
		state.Current = p
		state.HasCurrent = true

	case "rmoveto":
		if !state.HasCurrent {
			return errNocurrentpoint(op)
		}
		p := vec.Vec2{X: state.Current.X + args[0], Y: state.Current.Y + args[1]}
		state.Path.MoveTo(p)
		state.Current = p

	case "lineto":
		if !state.HasCurrent {
			return errNocurrentpoint(op)
		}
		if state.Path.needsStart() {
			state.Path.MoveTo(state.Current)
		}
		p := vec.Vec2{X: args[0], Y: args[1]}
		state.Path.LineTo(p)
		state.Current = p

	case "rlineto":
		if !state.HasCurrent {
			return errNocurrentpoint(op)
		}
		if state.Path.needsStart() {
			state.Path.MoveTo(state.Current)
		}
		p := vec.Vec2{X: state.Current.X + args[0], Y: state.Current.Y + args[1]}
		state.Path.LineTo(p)
		state.Current = p

	case "arc":
		center := vec.Vec2{X: args[0], Y: args[1]}
		radius := args[2]
		if radius < 0 {
			return &Error{Kind: KindMalformedProgram, Op: op, Msg: "negative radius"}
		}
		steps := intp.ArcSteps
		if steps < 1 {
			steps = DefaultArcSteps
		}
		pts := flattenArc(center, radius, args[3], args[4], steps)
		if state.Path.needsStart() {
			state.Path.MoveTo(pts[0])
		} else {
			// connect the current sub-path to the arc start
			state.Path.LineTo(pts[0])
		}
		for _, p := range pts[1:] {
			state.Path.LineTo(p)
		}
		state.Current = pts[len(pts)-1]
		state.HasCurrent = true

	case "closepath":
		start, ok := state.Path.Close()
		if ok {
			state.Current = start
		}

	case "newpath":
		// The current point survives; only the path is dropped.
		state.Path.Clear()

	case "stroke":
		intp.stroke()
		state.Path.Clear()

	case "fill":
		intp.fill()
		state.Path.Clear()

	case "setgray":
		g := args[0]
		if g < 0 {
			g = 0
		} else if g > 1 {
			g = 1
		}
		state.Gray = g

	case "setlinewidth":
		state.LineWidth = args[0]

	case "gsave", "grestore", "showpage":
		// recognized, but outside the drawing subset

	default:
		panic("unreachable: operator in arity table but not dispatched")
	}
	return nil
}

func (intp *Interpreter) unknownOperator(op Operator) error {
	if intp.UnknownOps == SkipUnknown {
		if intp.Warnings != nil {
			fmt.Fprintf(intp.Warnings, "warning: skipping unsupported operator %q\n", string(op))
		}
		return nil
	}
	return &Error{Kind: KindUnsupportedOperator, Op: op, Msg: "not implemented"}
}

// stroke rasterizes every sub-path as connected straight segments, using
// the current gray level and line width.
func (intp *Interpreter) stroke() {
	v := intp.grayByte()
	width := intp.penWidth()
	for _, sp := range intp.State.Path.subpaths {
		n := len(sp.points)
		if n < 2 {
			continue
		}
		x0, y0 := pixel(intp.device(sp.points[0]))
		px, py := x0, y0
		for _, p := range sp.points[1:] {
			x, y := pixel(intp.device(p))
			intp.canvas.ThickLine(px, py, x, y, width, v)
			px, py = x, y
		}
		if sp.closed {
			intp.canvas.ThickLine(px, py, x0, y0, width, v)
		}
	}
}

// fill paints the interior of the path using even-odd scanline filling.
// Open sub-paths are closed implicitly.
func (intp *Interpreter) fill() {
	v := intp.grayByte()
	var rings [][]vec.Vec2
	for _, sp := range intp.State.Path.subpaths {
		if len(sp.points) < 3 {
			continue
		}
		ring := make([]vec.Vec2, len(sp.points))
		for i, p := range sp.points {
			ring[i] = intp.device(p)
		}
		rings = append(rings, ring)
	}
	intp.canvas.FillPolygon(rings, v)
}
