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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, in string) []Object {
	t.Helper()
	s := newScanner(strings.NewReader(in))
	var oo []Object
	for {
		o, err := s.scanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		oo = append(oo, o)
	}
	return oo
}

func TestScanToken(t *testing.T) {
	in := `
	% this is a comment
	123
	-9
	1e6
	-1.
	2#1000
	16#FF
	(ABC)
	ABC
	/ABC
	moveto
	23E1
	`
	exp := []Object{
		Integer(123),
		Integer(-9),
		Real(1e6),
		Real(-1),
		Integer(0b1000),
		Integer(0xFF),
		String([]byte("ABC")),
		Operator("ABC"),
		Name("ABC"),
		Operator("moveto"),
		Real(23e1),
	}
	oo := scanAll(t, in)
	if d := cmp.Diff(exp, oo); d != "" {
		t.Errorf("unexpected objects: %s", d)
	}
}

func TestScanString(t *testing.T) {
	exp := "A(BC))\n\r\t\b\f\\DE\n%*!&}^"
	r := strings.NewReader(`(A(BC)\)\
\n\r\t\b\f\\\D\105
%*!&}^)`)
	s := newScanner(r)
	o, err := s.scanToken()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(String(exp), o); d != "" {
		t.Errorf("unexpected string: %s", d)
	}
}

func TestMalformedNumber(t *testing.T) {
	cases := []string{
		"12.3.4",
		"1e",
		"5x",
		"99#1",
	}
	for _, in := range cases {
		s := newScanner(strings.NewReader(in))
		_, err := s.scanToken()
		if !IsKind(err, KindParse) {
			t.Errorf("%q: got %v, expected a parse error", in, err)
		}
	}
}

func TestNumericLookalikes(t *testing.T) {
	// tokens that merely start like punctuation stay operators
	oo := scanAll(t, "- . x2y")
	exp := []Object{
		Operator("-"),
		Operator("."),
		Operator("x2y"),
	}
	if d := cmp.Diff(exp, oo); d != "" {
		t.Errorf("unexpected objects: %s", d)
	}
}

func TestDSCComments(t *testing.T) {
	in := "%!PS-Adobe-3.0 EPSF-3.0\n" +
		"%%BoundingBox: 0 0 100 50\n" +
		"%%Title: first line\n" +
		"%%+ second line\n" +
		"% plain comment\n" +
		"0 0 moveto\n"
	s := newScanner(strings.NewReader(in))
	var count int
	for {
		_, err := s.scanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		count++
	}
	if count != 3 { // 0 0 moveto
		t.Errorf("got %d tokens, expected 3", count)
	}

	exp := []Comment{
		{"BoundingBox", "0 0 100 50"},
		{"Title", "first line second line"},
	}
	if d := cmp.Diff(exp, s.DSC); d != "" {
		t.Errorf("unexpected DSC comments: %s", d)
	}
}
