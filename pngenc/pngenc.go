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

// Package pngenc writes 8-bit grayscale PNG files.
//
// The encoder emits the fixed chunk sequence signature, IHDR, IDAT, IEND.
// Image data uses filter type 0 ("none") for every scanline; no adaptive
// filter selection is attempted, which affects output size only.  The
// zlib stream inside IDAT uses either compressed or stored deflate
// blocks; both are conformant and decode identically.
package pngenc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"seehuhn.de/go/eps/raster"
)

// Options modifies the behavior of Encode.
type Options struct {
	// NoCompression substitutes stored (uncompressed) deflate blocks
	// for compressed ones.
	NoCompression bool
}

var signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

const (
	bitDepth      = 8
	colorTypeGray = 0
	filterNone    = 0
)

// Encode writes pix to w as a grayscale PNG file.
func Encode(w io.Writer, pix *raster.Pixmap, opt *Options) error {
	noCompression := opt != nil && opt.NoCompression

	e := &encoder{w: w}
	err := e.load(pix)
	if err != nil {
		return err
	}
	err = e.writeSignature()
	if err != nil {
		return err
	}
	err = e.writeHeader(pix)
	if err != nil {
		return err
	}
	err = e.writeData(pix, noCompression)
	if err != nil {
		return err
	}
	return e.writeTerminal()
}

// The encoder steps through its stages in fixed order; calling a method
// out of order is an error.
type stage int

const (
	stageNew stage = iota
	stageLoaded
	stageSignature
	stageHeader
	stageData
	stageDone
)

type encoder struct {
	w     io.Writer
	stage stage
}

func (e *encoder) advance(from, to stage) error {
	if e.stage != from {
		return fmt.Errorf("pngenc: invalid encoder state %d, expected %d", e.stage, from)
	}
	e.stage = to
	return nil
}

func (e *encoder) load(pix *raster.Pixmap) error {
	err := e.advance(stageNew, stageLoaded)
	if err != nil {
		return err
	}
	if pix.Width < 1 || pix.Height < 1 {
		return fmt.Errorf("pngenc: invalid image size %dx%d", pix.Width, pix.Height)
	}
	if len(pix.Pix) != pix.Width*pix.Height {
		return fmt.Errorf("pngenc: pixel buffer has %d bytes, expected %d",
			len(pix.Pix), pix.Width*pix.Height)
	}
	return nil
}

func (e *encoder) writeSignature() error {
	err := e.advance(stageLoaded, stageSignature)
	if err != nil {
		return err
	}
	_, err = e.w.Write(signature)
	return err
}

func (e *encoder) writeHeader(pix *raster.Pixmap) error {
	err := e.advance(stageSignature, stageHeader)
	if err != nil {
		return err
	}
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(pix.Width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(pix.Height))
	ihdr[8] = bitDepth
	ihdr[9] = colorTypeGray
	ihdr[10] = 0 // compression method: deflate
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // interlace: none
	return e.writeChunk("IHDR", ihdr[:])
}

func (e *encoder) writeData(pix *raster.Pixmap, noCompression bool) error {
	err := e.advance(stageHeader, stageData)
	if err != nil {
		return err
	}

	level := zlib.BestCompression
	if noCompression {
		level = zlib.NoCompression
	}
	var zbuf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&zbuf, level)
	if err != nil {
		return err
	}
	filter := []byte{filterNone}
	for y := 0; y < pix.Height; y++ {
		_, err = zw.Write(filter)
		if err != nil {
			return err
		}
		_, err = zw.Write(pix.Row(y))
		if err != nil {
			return err
		}
	}
	err = zw.Close()
	if err != nil {
		return err
	}

	return e.writeChunk("IDAT", zbuf.Bytes())
}

func (e *encoder) writeTerminal() error {
	err := e.advance(stageData, stageDone)
	if err != nil {
		return err
	}
	return e.writeChunk("IEND", nil)
}

// writeChunk frames one chunk: 4-byte big-endian payload length, 4-byte
// type tag, payload, and a CRC-32 over tag and payload (never over the
// length).
func (e *encoder) writeChunk(tag string, payload []byte) error {
	if len(tag) != 4 {
		return fmt.Errorf("pngenc: invalid chunk tag %q", tag)
	}
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(payload)))
	copy(hdr[4:8], tag)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())

	_, err := e.w.Write(hdr[:])
	if err != nil {
		return err
	}
	_, err = e.w.Write(payload)
	if err != nil {
		return err
	}
	_, err = e.w.Write(sum[:])
	return err
}
