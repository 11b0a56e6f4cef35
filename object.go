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

import "fmt"

// Object is a scanned token: one of Integer, Real, Name, String or
// Operator.
type Object interface{}

type Integer int

type Real float64

type Name string

func (n Name) String() string {
	return "/" + string(n)
}

type String []byte

func (s String) String() string {
	return fmt.Sprintf("%q", string(s))
}

// Operator is an executable name, e.g. "moveto" or "stroke".
type Operator string

// asReal converts a numeric object to a float64.
func asReal(o Object) (float64, bool) {
	switch o := o.(type) {
	case Integer:
		return float64(o), true
	case Real:
		return float64(o), true
	default:
		return 0, false
	}
}
