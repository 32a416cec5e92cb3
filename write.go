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
	"io"
	"os"
)

// Write writes the font to w in BDF format.
func (f *Font) Write(w io.Writer) error {
	bw := NewWriter(w)
	if err := f.Encode(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes the font to the named file, creating the file if
// necessary and truncating it otherwise.
func (f *Font) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = f.Write(fd)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

// Encode passes the entries of the font to w, in the order required by the
// BDF format.  Encode does not flush w.
//
// Encoding stops at the first error.  In this case the output is
// incomplete.
func (f *Font) Encode(w *Writer) error {
	write := w.WriteEntry

	// Write header
	if err := write(StartFont{Format: f.Format}); err != nil {
		return err
	}
	for _, text := range f.Comments {
		if err := write(Comment{Text: text}); err != nil {
			return err
		}
	}
	if err := write(FontName{Name: f.Name}); err != nil {
		return err
	}
	if err := write(Size{PointSize: f.PointSize, XRes: f.XRes, YRes: f.YRes}); err != nil {
		return err
	}
	if f.Version != "" {
		if err := write(ContentVersion{Version: f.Version}); err != nil {
			return err
		}
	}
	if err := write(FontBoundingBox(f.Bounds)); err != nil {
		return err
	}

	// Write properties
	if len(f.Properties) > 0 {
		if err := write(StartProperties{Count: len(f.Properties)}); err != nil {
			return err
		}
		for _, p := range f.Properties {
			if err := write(p); err != nil {
				return err
			}
		}
		if err := write(EndProperties{}); err != nil {
			return err
		}
	}

	// Write glyphs
	if err := write(Chars{Count: len(f.Glyphs)}); err != nil {
		return err
	}
	for _, code := range f.Codes() {
		if err := f.Glyphs[code].encode(w, code); err != nil {
			return err
		}
	}

	// Write footer
	return write(EndFont{})
}

func (g *Glyph) encode(w *Writer, code rune) error {
	write := w.WriteEntry

	if err := write(StartChar{Name: g.Name}); err != nil {
		return err
	}
	if err := write(Encoding{Code: code}); err != nil {
		return err
	}
	if err := write(SWidth{X: g.SWidth[0], Y: g.SWidth[1]}); err != nil {
		return err
	}
	if err := write(DWidth{X: g.DWidth[0], Y: g.DWidth[1]}); err != nil {
		return err
	}
	if g.BBox != nil {
		if err := write(BBX(*g.BBox)); err != nil {
			return err
		}
	}
	if err := write(BitmapRows{Bitmap: g.Bitmap}); err != nil {
		return err
	}
	return write(EndChar{})
}
