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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/eps"
)

func main() {
	store := flag.Bool("store", false, "write stored (uncompressed) image data")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Printf("Usage: %s [options] input.eps output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	f, err := os.Open(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	opt := &eps.Options{
		NoCompression: *store,
	}
	var buf bytes.Buffer
	err = eps.Convert(f, &buf, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
		os.Exit(1)
	}

	// Write via a temporary file, so that a failure can never leave a
	// truncated output file behind.
	tmpFile := outputFile + ".tmp"
	err = os.WriteFile(tmpFile, buf.Bytes(), 0666)
	if err == nil {
		err = os.Rename(tmpFile, outputFile)
	}
	if err != nil {
		os.Remove(tmpFile)
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
}
