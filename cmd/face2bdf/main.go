// seehuhn.de/go/bdf - write bitmap fonts in BDF format
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

// Face2bdf writes the built-in 7x13 bitmap face of golang.org/x/image as a
// BDF font.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/term"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/face"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	foundry := flag.String("foundry", "", "XLFD foundry name")
	family := flag.String("family", "", "XLFD family name")
	packing := flag.String("packing", "padded", "bitmap row packing: padded or minimal")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	err := run(*out, *foundry, *family, *packing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "face2bdf: %v\n", err)
		os.Exit(1)
	}
}

func run(out, foundry, family, packing string) error {
	var mode bdf.Packing
	switch packing {
	case "padded":
		mode = bdf.PackPadded
	case "minimal":
		mode = bdf.PackMinimal
	default:
		return fmt.Errorf("unknown packing %q", packing)
	}

	src := basicfont.Face7x13
	opt := &face.Options{
		Foundry:     foundry,
		Family:      family,
		DefaultChar: '\ufffd',
	}
	font, err := face.New(src, face.BasicRunes(src), opt)
	if err != nil {
		return err
	}
	if err := font.Check(); err != nil {
		return err
	}

	fd := os.Stdout
	if out != "" {
		fd, err = os.Create(out)
		if err != nil {
			return err
		}
	} else if term.IsTerminal(int(fd.Fd())) {
		fmt.Fprintln(os.Stderr, "face2bdf: writing BDF data to the terminal, use -o to select a file")
	}

	w := bdf.NewWriter(fd)
	w.Packing = mode
	err = font.Encode(w)
	if err == nil {
		err = w.Flush()
	}
	if out != "" {
		if err2 := fd.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return fmt.Errorf("writing BDF: %w", err)
	}
	return nil
}
