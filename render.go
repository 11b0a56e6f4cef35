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

// Package eps converts a drawing subset of Encapsulated PostScript into
// grayscale PNG images.
//
// The pipeline is ReadDocument (bounding box and token stream), an
// Interpreter run which rasterizes onto a raster.Pixmap, and pngenc.Encode
// which serializes the pixmap.  Convert wires the three together.
package eps

import (
	"bytes"
	"io"

	"seehuhn.de/go/eps/pngenc"
	"seehuhn.de/go/eps/raster"
)

// Options controls a conversion run.  The zero value gives compressed
// output, the default arc flattening, and the abort-on-unknown-operator
// policy.
type Options struct {
	// NoCompression selects stored (uncompressed) image data blocks.
	NoCompression bool

	// ArcSteps overrides Interpreter.ArcSteps when > 0.
	ArcSteps int

	// UnknownOps selects the unsupported-operator policy.
	UnknownOps UnknownOpMode

	// Warnings receives skipped-operator warnings in SkipUnknown mode.
	Warnings io.Writer
}

// Render interprets the document and returns the rasterized image.
func Render(doc *Document, opt *Options) (*raster.Pixmap, error) {
	canvas := raster.New(doc.Width(), doc.Height())
	intp := NewInterpreter(canvas, doc.BBox)
	if opt != nil {
		if opt.ArcSteps > 0 {
			intp.ArcSteps = opt.ArcSteps
		}
		intp.UnknownOps = opt.UnknownOps
		intp.Warnings = opt.Warnings
	}
	err := intp.Execute(doc)
	if err != nil {
		return nil, err
	}
	return canvas, nil
}

// Convert reads an EPS document from r and writes the corresponding PNG
// file to w.  The output is assembled in memory first; on error nothing
// at all is written to w.
func Convert(r io.Reader, w io.Writer, opt *Options) error {
	doc, err := ReadDocument(r)
	if err != nil {
		return err
	}
	pix, err := Render(doc, opt)
	if err != nil {
		return err
	}

	pngOpt := &pngenc.Options{}
	if opt != nil {
		pngOpt.NoCompression = opt.NoCompression
	}
	var buf bytes.Buffer
	err = pngenc.Encode(&buf, pix, pngOpt)
	if err != nil {
		return &Error{Kind: KindEncoding, Msg: err.Error()}
	}

	_, err = w.Write(buf.Bytes())
	return err
}
