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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/eps/raster"
)

func testInterpreter(w, h int) *Interpreter {
	bbox := rect.Rect{URx: float64(w), URy: float64(h)}
	return NewInterpreter(raster.New(w, h), bbox)
}

func TestStackUnderflow(t *testing.T) {
	intp := testInterpreter(10, 10)
	err := intp.ExecuteString("5 moveto")
	if !IsKind(err, KindMalformedProgram) {
		t.Errorf("got %v, expected a malformed program error", err)
	}
}

func TestTypecheck(t *testing.T) {
	intp := testInterpreter(10, 10)
	err := intp.ExecuteString("(x) 5 moveto")
	if !IsKind(err, KindMalformedProgram) {
		t.Errorf("got %v, expected a malformed program error", err)
	}
}

func TestNoCurrentPoint(t *testing.T) {
	intp := testInterpreter(10, 10)
	err := intp.ExecuteString("5 5 lineto")
	if !IsKind(err, KindMalformedProgram) {
		t.Errorf("got %v, expected a malformed program error", err)
	}
}

func TestUnknownOperatorAborts(t *testing.T) {
	intp := testInterpreter(10, 10)
	err := intp.ExecuteString("0 0 moveto frobnicate")
	if !IsKind(err, KindUnsupportedOperator) {
		t.Fatalf("got %v, expected an unsupported operator error", err)
	}
	e := err.(*Error)
	if e.Op != "frobnicate" {
		t.Errorf("got operator %q", e.Op)
	}
}

func TestUnknownOperatorSkipped(t *testing.T) {
	var warnings bytes.Buffer
	intp := testInterpreter(10, 10)
	intp.UnknownOps = SkipUnknown
	intp.Warnings = &warnings

	err := intp.ExecuteString("(hello) show 3 4 moveto")
	if err != nil {
		t.Fatal(err)
	}

	// the skipped operator's operands stay on the stack
	exp := []Object{String("hello")}
	if d := cmp.Diff(exp, intp.Stack); d != "" {
		t.Errorf("unexpected stack: %s", d)
	}
	if got := intp.State.Current; got != (vec.Vec2{X: 3, Y: 4}) {
		t.Errorf("unexpected current point %v", got)
	}
	if !strings.Contains(warnings.String(), `"show"`) {
		t.Errorf("warning not observable: %q", warnings.String())
	}
}

func TestSetGrayClamped(t *testing.T) {
	intp := testInterpreter(10, 10)
	err := intp.ExecuteString("-0.5 setgray")
	if err != nil {
		t.Fatal(err)
	}
	if intp.State.Gray != 0 {
		t.Errorf("got gray %v, expected 0", intp.State.Gray)
	}
	err = intp.ExecuteString("2 setgray")
	if err != nil {
		t.Fatal(err)
	}
	if intp.State.Gray != 1 {
		t.Errorf("got gray %v, expected 1", intp.State.Gray)
	}
}

func TestNewpathKeepsCurrentPoint(t *testing.T) {
	intp := testInterpreter(40, 40)
	err := intp.ExecuteString("10 20 moveto newpath 5 5 rlineto")
	if err != nil {
		t.Fatal(err)
	}
	if !intp.State.Path.IsEmpty() {
		// rlineto must have started a fresh sub-path
		if got := intp.State.Current; got != (vec.Vec2{X: 15, Y: 25}) {
			t.Errorf("unexpected current point %v", got)
		}
	} else {
		t.Error("rlineto after newpath left no path")
	}
}

func TestRelativeOperators(t *testing.T) {
	intp := testInterpreter(40, 40)
	err := intp.ExecuteString("10 10 moveto 5 0 rlineto 0 5 rlineto -5 -5 rmoveto")
	if err != nil {
		t.Fatal(err)
	}
	if got := intp.State.Current; got != (vec.Vec2{X: 10, Y: 10}) {
		t.Errorf("unexpected current point %v", got)
	}
}

func TestClosepathReturnsToStart(t *testing.T) {
	intp := testInterpreter(40, 40)
	err := intp.ExecuteString("3 4 moveto 10 4 lineto 10 12 lineto closepath")
	if err != nil {
		t.Fatal(err)
	}
	if got := intp.State.Current; got != (vec.Vec2{X: 3, Y: 4}) {
		t.Errorf("unexpected current point %v", got)
	}
}

func TestPaintingConsumesPath(t *testing.T) {
	intp := testInterpreter(20, 20)
	err := intp.ExecuteString("0 0 moveto 10 10 lineto stroke")
	if err != nil {
		t.Fatal(err)
	}
	if !intp.State.Path.IsEmpty() {
		t.Error("stroke did not reset the path")
	}
}

func TestSupportedOperators(t *testing.T) {
	ops := SupportedOperators()
	found := false
	for i, op := range ops {
		if op == "moveto" {
			found = true
		}
		if i > 0 && ops[i-1] >= op {
			t.Errorf("operators not sorted: %q before %q", ops[i-1], op)
		}
	}
	if !found {
		t.Error("moveto missing from supported operators")
	}
}
