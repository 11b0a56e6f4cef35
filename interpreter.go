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
	"io"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/eps/raster"
)

// UnknownOpMode selects how the interpreter treats operators outside the
// supported subset.
type UnknownOpMode int

const (
	// AbortOnUnknown stops the run with an UnsupportedOperator error.
	// This is the default.
	AbortOnUnknown UnknownOpMode = iota

	// SkipUnknown skips the operator and continues.  Operands the
	// operator would have consumed are left on the stack, and each
	// skipped operator is reported on the Warnings writer.
	SkipUnknown
)

// DefaultArcSteps is the number of straight segments an arc is flattened
// into when Interpreter.ArcSteps is not set.
const DefaultArcSteps = 32

const maxOperandStackDepth = 500

// GraphicsState is the mutable drawing state of one interpreter run.
type GraphicsState struct {
	Current    vec.Vec2 // current point, in user coordinates
	HasCurrent bool
	Path       Path
	Gray       float64 // 0 = black ... 1 = white
	LineWidth  float64
}

// Interpreter executes the drawing subset of PostScript against a pixmap.
// All state is instance-local; independent conversions can run in
// separate goroutines as long as each uses its own Interpreter and Pixmap.
type Interpreter struct {
	Stack []Object
	State GraphicsState

	// ArcSteps is the number of straight segments an arc is flattened
	// into, spanning the requested sweep.  Values < 1 select
	// DefaultArcSteps.
	ArcSteps int

	// UnknownOps selects the policy for operators outside the supported
	// subset.
	UnknownOps UnknownOpMode

	// Warnings receives one line per skipped operator in SkipUnknown
	// mode.  A nil writer discards the warnings.
	Warnings io.Writer

	canvas *raster.Pixmap
	origin vec.Vec2 // lower-left corner of the bounding box
}

// NewInterpreter returns an interpreter drawing on the given canvas.
// User coordinates are relative to the lower-left corner of bbox, with y
// increasing upwards; the flip to the canvas' top-down rows happens here,
// in the user-to-device transform, and nowhere else.
func NewInterpreter(canvas *raster.Pixmap, bbox rect.Rect) *Interpreter {
	return &Interpreter{
		State: GraphicsState{
			LineWidth: 1,
		},
		ArcSteps: DefaultArcSteps,
		canvas:   canvas,
		origin:   vec.Vec2{X: bbox.LLx, Y: bbox.LLy},
	}
}

// Execute runs the document's token stream.
func (intp *Interpreter) Execute(doc *Document) error {
	for _, o := range doc.tokens {
		err := intp.executeOne(o)
		if err != nil {
			return err
		}
	}
	return nil
}

// ExecuteString tokenizes and runs a fragment of PostScript code.
func (intp *Interpreter) ExecuteString(code string) error {
	s := newScanner(strings.NewReader(code))
	for {
		o, err := s.scanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		err = intp.executeOne(o)
		if err != nil {
			return err
		}
	}
	return nil
}

func (intp *Interpreter) executeOne(o Object) error {
	if len(intp.Stack) > maxOperandStackDepth {
		return &Error{Kind: KindMalformedProgram, Msg: "operand stack overflow"}
	}

	switch o := o.(type) {
	case Operator:
		return intp.apply(o)
	default:
		intp.Stack = append(intp.Stack, o)
		return nil
	}
}

// device maps a user-space point to continuous device coordinates.
// Device y grows downwards; the bounding box top edge maps to y=0.
func (intp *Interpreter) device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.X - intp.origin.X,
		Y: float64(intp.canvas.Height) - (p.Y - intp.origin.Y),
	}
}

// pixel quantizes a device point to pixel coordinates.  The bounding box
// bottom edge lands on the last row, the top edge one row above the first.
func pixel(p vec.Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y)) - 1
}

func (intp *Interpreter) grayByte() byte {
	return byte(math.Round(intp.State.Gray * 255))
}

func (intp *Interpreter) penWidth() int {
	w := int(math.Round(intp.State.LineWidth))
	if w < 1 {
		w = 1
	}
	return w
}
