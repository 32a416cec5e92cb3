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

package bdf

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
)

// Packing selects how bitmap rows are converted to hex digits.
type Packing int

const (
	// PackPadded pads every row with zero bits on the right to a multiple
	// of 8 pixels, as required by the BDF specification.  A row of width w
	// is written as 2*ceil(w/8) hex digits.
	PackPadded Packing = iota

	// PackMinimal reads each row as one unpadded binary number, leftmost
	// pixel first, and writes it with at least two hex digits.  This
	// matches files written by older encoders, but is only valid BDF when
	// the width is a multiple of 8.
	PackMinimal
)

// Writer writes BDF entries to an output stream.
//
// Output is buffered; call [Writer.Flush] after the last entry.
// A Writer must not be used concurrently.
type Writer struct {
	w *bufio.Writer

	// Packing determines how bitmap rows are encoded.
	Packing Packing
}

// NewWriter returns a Writer which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteEntry appends the textual form of e to the output.
// Errors from the underlying writer are returned unchanged.
//
// WriteEntry panics if e is an [Unknown] entry.
func (w *Writer) WriteEntry(e Entry) error {
	switch e := e.(type) {
	case StartFont:
		return w.line("STARTFONT %s", e.Format)
	case Comment:
		return w.line("COMMENT \"%s\"", e.Text)
	case ContentVersion:
		return w.line("CONTENTVERSION %s", e.Version)
	case FontName:
		return w.line("FONT %s", e.Name)
	case Size:
		return w.line("SIZE %d %d %d", e.PointSize, e.XRes, e.YRes)
	case FontBoundingBox:
		return w.line("FONTBOUNDINGBOX %d %d %d %d", e.Width, e.Height, e.X, e.Y)
	case StartProperties:
		return w.line("STARTPROPERTIES %d", e.Count)
	case Property:
		switch v := e.Value.(type) {
		case String:
			return w.line("%s \"%s\"", e.Name, string(v))
		case Integer:
			return w.line("%s %d", e.Name, int(v))
		default:
			panic(fmt.Sprintf("bdf: property %s has invalid value %v", e.Name, v))
		}
	case EndProperties:
		return w.line("ENDPROPERTIES")
	case Chars:
		return w.line("CHARS %d", e.Count)
	case StartChar:
		return w.line("STARTCHAR %s", e.Name)
	case Encoding:
		return w.line("ENCODING %d", uint32(e.Code))
	case SWidth:
		return w.line("SWIDTH %d %d", e.X, e.Y)
	case DWidth:
		return w.line("DWIDTH %d %d", e.X, e.Y)
	case BBX:
		return w.line("BBX %d %d %d %d", e.Width, e.Height, e.X, e.Y)
	case BitmapRows:
		return w.bitmap(e.Bitmap)
	case EndChar:
		return w.line("ENDCHAR")
	case EndFont:
		return w.line("ENDFONT")
	case Unknown:
		panic("bdf: cannot write unknown entry " + e.Text)
	default:
		panic(fmt.Sprintf("bdf: unexpected entry type %T", e))
	}
}

func (w *Writer) line(format string, a ...any) error {
	_, err := fmt.Fprintf(w.w, format+"\n", a...)
	return err
}

func (w *Writer) bitmap(b *Bitmap) error {
	if err := w.line("BITMAP"); err != nil {
		return err
	}
	if b == nil {
		return nil
	}

	if w.Packing == PackMinimal {
		v := new(big.Int)
		for y := 0; y < b.height; y++ {
			v.SetInt64(0)
			for x := 0; x < b.width; x++ {
				v.Lsh(v, 1)
				if b.Get(x, y) {
					v.SetBit(v, 0, 1)
				}
			}
			if err := w.line("%02X", v); err != nil {
				return err
			}
		}
		return nil
	}

	row := make([]byte, max((b.width+7)/8, 1))
	buf := make([]byte, 2*len(row)+1)
	for y := 0; y < b.height; y++ {
		clear(row)
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
		for i, c := range row {
			buf[2*i] = hexDigits[c>>4]
			buf[2*i+1] = hexDigits[c&15]
		}
		buf[len(buf)-1] = '\n'
		if _, err := w.w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

const hexDigits = "0123456789ABCDEF"
