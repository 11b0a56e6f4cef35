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
	"errors"
	"fmt"
)

// ErrorKind classifies the fatal errors of the conversion pipeline.
type ErrorKind int

const (
	// KindParse indicates a malformed token or structured comment in the
	// input document.
	KindParse ErrorKind = iota + 1

	// KindMalformedProgram indicates a structurally invalid program, for
	// example an operator finding too few operands on the stack.
	KindMalformedProgram

	// KindUnsupportedOperator indicates an operator outside the
	// interpreted subset, with the abort policy active.
	KindUnsupportedOperator

	// KindEncoding indicates an internal invariant violation while
	// writing the output image.
	KindEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindMalformedProgram:
		return "malformed program"
	case KindUnsupportedOperator:
		return "unsupported operator"
	case KindEncoding:
		return "encoding error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by the loader, the interpreter and the
// encoder.
type Error struct {
	Kind ErrorKind
	Op   Operator // operator being executed, if any
	Msg  string
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func parseError(format string, a ...interface{}) error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, a...)}
}

func errStackunderflow(op Operator) error {
	return &Error{Kind: KindMalformedProgram, Op: op, Msg: "stack underflow"}
}

func errTypecheck(op Operator) error {
	return &Error{Kind: KindMalformedProgram, Op: op, Msg: "invalid argument"}
}

func errNocurrentpoint(op Operator) error {
	return &Error{Kind: KindMalformedProgram, Op: op, Msg: "no current point"}
}
