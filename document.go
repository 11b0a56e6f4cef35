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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Document is a loaded EPS file: the declared bounding box, the structured
// comments, and the scanned token stream.
type Document struct {
	// BBox is the declared %%BoundingBox, in document units.
	BBox rect.Rect

	// Comments lists all structured comments, in document order.
	Comments []Comment

	tokens []Object
}

// ReadDocument reads an EPS file from r.  The whole input is tokenized up
// front; a malformed token or a missing or invalid %%BoundingBox comment
// is a parse error and no Document is returned.
func ReadDocument(r io.Reader) (*Document, error) {
	s := newScanner(r)
	var tokens []Object
	for {
		o, err := s.scanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		tokens = append(tokens, o)
	}

	doc := &Document{
		Comments: s.DSC,
		tokens:   tokens,
	}

	val, ok := doc.Comment("BoundingBox")
	if !ok {
		return nil, parseError("no %%BoundingBox comment found")
	}
	bbox, err := parseBoundingBox(val)
	if err != nil {
		return nil, err
	}
	doc.BBox = bbox

	if doc.Width() <= 0 || doc.Height() <= 0 {
		return nil, parseError("empty bounding box %q", val)
	}

	return doc, nil
}

// ReadDocumentString reads an EPS file from a string.
func ReadDocumentString(code string) (*Document, error) {
	return ReadDocument(strings.NewReader(code))
}

// Comment returns the value of the first structured comment with the given
// key.
func (doc *Document) Comment(key string) (string, bool) {
	for _, c := range doc.Comments {
		if c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// Width returns the width of the rendered image in pixels.
func (doc *Document) Width() int {
	return int(math.Round(doc.BBox.Dx()))
}

// Height returns the height of the rendered image in pixels.
func (doc *Document) Height() int {
	return int(math.Round(doc.BBox.Dy()))
}

func parseBoundingBox(val string) (rect.Rect, error) {
	fields := strings.Fields(val)
	if len(fields) != 4 {
		return rect.Rect{}, parseError("invalid %%BoundingBox %q", val)
	}
	var xx [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return rect.Rect{}, parseError("invalid %%BoundingBox %q", val)
		}
		xx[i] = x
	}
	return rect.Rect{LLx: xx[0], LLy: xx[1], URx: xx[2], URy: xx[3]}, nil
}
