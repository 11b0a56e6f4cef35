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
	"io"
	"math"
	"regexp"
	"strconv"
)

// scanner splits the input into PostScript tokens.  Structured comments
// (`%%Key: value`) are collected into the DSC field, normal comments are
// skipped.
type scanner struct {
	Line int // 0-based
	Col  int // 0-based
	DSC  []Comment

	r         io.Reader
	buf       []byte
	pos, used int
	crSeen    bool
	peek      []byte

	// err is the first error returned by r.Read().  Once an error has
	// been returned, all subsequent calls to refill() will return it.
	err error
}

// Comment is a structured document comment.
type Comment struct {
	Key   string
	Value string
}

func newScanner(r io.Reader) *scanner {
	return &scanner{
		r:   r,
		buf: make([]byte, 512),
	}
}

func (s *scanner) scanToken() (Object, error) {
	err := s.skipWhiteSpace()
	if err != nil {
		return nil, err
	}
	b, err := s.peekByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case '(':
		return s.readString()
	case '<':
		if s.lookingAt("<<") {
			s.skipN(2)
			return Operator("<<"), nil
		}
		return nil, parseError("line %d: hex strings are not supported", s.Line+1)
	case '>':
		if s.lookingAt(">>") {
			s.skipN(2)
			return Operator(">>"), nil
		}
		if s.err != nil {
			return nil, s.err
		}
		return nil, parseError("line %d: unexpected '>'", s.Line+1)
	case '/':
		var name []byte
		s.skipByte()
		for {
			b, err := s.peekByte()
			if err == io.EOF {
				break
			} else if err != nil {
				return nil, err
			}
			if !isRegular(b) {
				break
			}
			s.skipByte()
			name = append(name, b)
		}
		return Name(name), nil
	default:
		s.skipByte()
		tok := []byte{b}
		if isRegular(b) {
			for {
				b, err := s.peekByte()
				if err == io.EOF {
					break
				} else if err != nil {
					return nil, err
				}
				if !isRegular(b) {
					break
				}
				s.skipByte()
				tok = append(tok, b)
			}
		}

		if looksNumeric(tok) {
			return parseNumber(tok, s.Line)
		}
		return Operator(tok), nil
	}
}

func (s *scanner) readString() (String, error) {
	err := s.skipRequiredByte('(')
	if err != nil {
		return nil, err
	}
	var res []byte
	bracketLevel := 1
	ignoreLF := false
	for {
		b, err := s.next()
		if err != nil {
			return nil, err
		}
		if ignoreLF && b == 10 {
			continue
		}
		ignoreLF = false
		switch b {
		case '(':
			bracketLevel++
			res = append(res, b)
		case ')':
			bracketLevel--
			if bracketLevel == 0 {
				return String(res), nil
			}
			res = append(res, b)
		case '\\':
			b, err = s.next()
			if err != nil {
				return nil, err
			}
			switch b {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '(', ')', '\\':
				res = append(res, b)
			case 10: // LF
				// ignore
			case 13: // CR or CR+LF
				ignoreLF = true
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for i := 0; i < 2; i++ {
					b, err = s.peekByte()
					if err == io.EOF {
						break
					} else if err != nil {
						return nil, err
					}
					if b < '0' || b > '7' {
						break
					}
					s.skipByte()
					oct = oct*8 + (b - '0')
				}
				res = append(res, oct)
			default:
				res = append(res, b)
			}
		case 13: // CR or CR+LF
			res = append(res, '\n')
			ignoreLF = true
		default:
			res = append(res, b)
		}
	}
}

// skipWhiteSpace skips all input (including comments) until a
// non-whitespace character is found.
func (s *scanner) skipWhiteSpace() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		if b <= 32 {
			s.skipByte()
		} else if b == '%' {
			if s.Col == 0 && s.lookingAt("%%") {
				key, val, err := s.readStructuredComment()
				if err == nil {
					s.DSC = append(s.DSC, Comment{key, val})
					continue
				}
			} else {
				err = s.skipComment()
				if err != nil {
					return err
				}
			}
		} else {
			return nil
		}
	}
}

// readStructuredComment reads the next structured comment into a key-value
// pair.
func (s *scanner) readStructuredComment() (key, value string, err error) {
	if !s.lookingAt("%%") {
		err = parseError("not a structured comment")
		return
	}
	s.skipN(2)

	key, err = s.readCommentKey()
	if err != nil {
		s.skipToEOL()
		return
	}

	value, err = s.readCommentValue()
	return
}

func (s *scanner) readCommentKey() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := s.peekByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if b <= 32 {
			break
		}
		s.skipByte()
		if b == ':' {
			break
		}
		buf.WriteByte(b)
	}
	if buf.Len() == 0 {
		return "", parseError("empty DSC key")
	}
	return buf.String(), nil
}

// readCommentValue reads the value of a structured comment.  Multi-line
// values (using `%%+`) are supported.  The method consumes the first EOL
// after the value.
func (s *scanner) readCommentValue() (string, error) {
	var buf bytes.Buffer

commentLineLoop:
	for {
		for {
			b, err := s.peekByte()
			if err == io.EOF {
				break
			} else if err != nil {
				return "", err
			}
			if b == '\n' || b == '\r' || b > 32 {
				break
			}
			s.skipByte()
		}

		for {
			b, err := s.next()
			if err == io.EOF {
				break
			} else if err != nil {
				return "", err
			} else if b == '\n' { // LF
				break
			} else if b == '\r' { // CR or CR+LF
				s.skipOptionalByte(10)
				break
			}
			buf.WriteByte(b)
		}

		if s.lookingAt("%%+") {
			s.skipN(3)
			buf.WriteByte(' ')
			continue commentLineLoop
		}

		break
	}

	return buf.String(), nil
}

// skipComment skips everything from a % to the end of the line (both
// inclusive).
func (s *scanner) skipComment() error {
	err := s.skipRequiredByte('%')
	if err != nil {
		return err
	}
	return s.skipToEOL()
}

func (s *scanner) skipToEOL() error {
	for {
		b, err := s.next()
		if err != nil {
			return err
		} else if b == 10 { // LF
			return nil
		} else if b == 13 { // CR or CR+LF
			s.skipOptionalByte(10)
			return nil
		}
	}
}

func (s *scanner) lookingAt(pat string) bool {
	return string(s.peekN(len(pat))) == pat
}

// skipByte skips a single byte of input.
func (s *scanner) skipByte() {
	s.next()
}

func (s *scanner) skipRequiredByte(expected byte) error {
	seen, err := s.next()
	if err != nil {
		return err
	}
	if seen != expected {
		return parseError("line %d: expected %q, got %q", s.Line+1, expected, seen)
	}
	return nil
}

func (s *scanner) skipOptionalByte(b byte) {
	next, err := s.peekByte()
	if err == nil && next == b {
		s.next()
	}
}

// skipN skips n bytes which have already been peeked.
func (s *scanner) skipN(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

func (s *scanner) peekByte() (byte, error) {
	for len(s.peek) == 0 {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		s.peek = append(s.peek, b)
	}
	return s.peek[0], nil
}

func (s *scanner) peekN(n int) []byte {
	for len(s.peek) < n {
		b, err := s.readByte()
		if err != nil {
			return s.peek
		}
		s.peek = append(s.peek, b)
	}
	return s.peek[:n]
}

func (s *scanner) next() (byte, error) {
	var b byte

	if len(s.peek) > 0 {
		b = s.peek[0]
		copy(s.peek, s.peek[1:])
		s.peek = s.peek[:len(s.peek)-1]
	} else {
		var err error
		b, err = s.readByte()
		if err != nil {
			return 0, err
		}
	}

	if s.crSeen && b == 10 {
		// ignore LF after CR
	} else if b == 10 || b == 13 {
		s.Line++
		s.Col = 0
	} else {
		s.Col++
	}
	s.crSeen = (b == 13)

	return b, nil
}

func (s *scanner) readByte() (byte, error) {
	for s.pos >= s.used {
		err := s.refill()
		if err != nil {
			return 0, err
		}
	}

	b := s.buf[s.pos]
	s.pos++

	return b, nil
}

func (s *scanner) refill() error {
	if s.err != nil {
		return s.err
	}
	s.used = copy(s.buf, s.buf[s.pos:s.used])
	s.pos = 0

	n, err := s.r.Read(s.buf[s.used:])
	s.used += n
	if err != nil {
		s.err = err
	}
	if n > 0 {
		err = nil
	}
	return err
}

func isRegular(b byte) bool {
	if b <= 32 {
		return false
	}
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	default:
		return true
	}
}

// looksNumeric reports whether a token must be a numeric literal.  Such
// tokens either parse as a number or are a parse error; they never fall
// back to being operator names.
func looksNumeric(tok []byte) bool {
	if len(tok) == 0 {
		return false
	}
	switch tok[0] {
	case '+', '-', '.':
		return len(tok) > 1
	default:
		return tok[0] >= '0' && tok[0] <= '9'
	}
}

func parseNumber(tok []byte, line int) (Object, error) {
	x, err := strconv.ParseInt(string(tok), 10, 0)
	if err == nil {
		return Integer(x), nil
	}

	y, err := strconv.ParseFloat(string(tok), 64)
	if err == nil && !math.IsInf(y, 0) && !math.IsNaN(y) {
		return Real(y), nil
	}

	mm := radixNumberRe.FindSubmatch(tok)
	if mm != nil {
		base, err := strconv.ParseInt(string(mm[1]), 10, 0)
		if err == nil && base >= 2 && base <= 36 {
			z, err := strconv.ParseInt(string(mm[2]), int(base), 0)
			if err == nil {
				return Integer(z), nil
			}
		}
	}

	return nil, parseError("line %d: invalid number %q", line+1, tok)
}

var radixNumberRe = regexp.MustCompile(`^([0-9]{1,2})#([0-9a-zA-Z]+)$`)
