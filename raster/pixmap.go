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

// Package raster implements a minimal software rasterizer for 8-bit
// grayscale images.  It knows nothing about PostScript or PNG.
package raster

// White is the background intensity of a new Pixmap.
const White = 255

// Pixmap is a Width×Height grid of 8-bit intensity samples, stored
// row-major with row 0 first.  All drawing operations clip silently at
// the grid boundary and overwrite pixels without blending.
type Pixmap struct {
	Width, Height int
	Pix           []byte
}

// New allocates a pixmap filled with White.
func New(width, height int) *Pixmap {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = White
	}
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    pix,
	}
}

// SetPixel sets the sample at (x, y).  Out-of-bounds coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, v byte) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	p.Pix[y*p.Width+x] = v
}

// At returns the sample at (x, y), or White for out-of-bounds
// coordinates.
func (p *Pixmap) At(x, y int) byte {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return White
	}
	return p.Pix[y*p.Width+x]
}

// Row returns the y-th row of samples.  The slice aliases the pixmap.
func (p *Pixmap) Row(y int) []byte {
	return p.Pix[y*p.Width : (y+1)*p.Width]
}
