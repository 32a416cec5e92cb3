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

// Entry is one record of a BDF file.  Each entry type corresponds to one
// BDF keyword.  With the exception of [BitmapRows], every entry is written
// as a single line.
type Entry interface {
	isEntry()
}

// StartFont is the first line of a BDF file, giving the format version.
type StartFont struct {
	Format string
}

// Comment is a COMMENT line.  The text must not contain double quotes or
// line breaks.
type Comment struct {
	Text string
}

// ContentVersion is the CONTENTVERSION line.
type ContentVersion struct {
	Version string
}

// FontName is the FONT line.
type FontName struct {
	Name string
}

// Size is the SIZE line.
type Size struct {
	PointSize  int
	XRes, YRes int
}

// FontBoundingBox is the FONTBOUNDINGBOX line.
type FontBoundingBox BoundingBox

// StartProperties opens the property block.  Count is the number of
// properties which follow.
type StartProperties struct {
	Count int
}

// Property is a named font property.  Property values are written as
// the property name followed by the value.
type Property struct {
	Name  string
	Value PropertyValue
}

// EndProperties closes the property block.
type EndProperties struct{}

// Chars gives the number of glyphs in the font.
type Chars struct {
	Count int
}

// StartChar starts a glyph.
type StartChar struct {
	Name string
}

// Encoding is the code point of a glyph.
type Encoding struct {
	Code rune
}

// SWidth is the scalable width of a glyph.
type SWidth struct {
	X, Y int
}

// DWidth is the device width of a glyph.
type DWidth struct {
	X, Y int
}

// BBX is the bounding box of a glyph.
type BBX BoundingBox

// BitmapRows is the BITMAP keyword, followed by one line of hex digits for
// each row of the bitmap.
type BitmapRows struct {
	Bitmap *Bitmap
}

// EndChar ends a glyph.
type EndChar struct{}

// EndFont is the last line of a BDF file.
type EndFont struct{}

// Unknown holds a line which has no representation in the BDF grammar.
// Unknown entries cannot be written; passing one to [Writer.WriteEntry]
// panics.
type Unknown struct {
	Text string
}

func (StartFont) isEntry()       {}
func (Comment) isEntry()         {}
func (ContentVersion) isEntry()  {}
func (FontName) isEntry()        {}
func (Size) isEntry()            {}
func (FontBoundingBox) isEntry() {}
func (StartProperties) isEntry() {}
func (Property) isEntry()        {}
func (EndProperties) isEntry()   {}
func (Chars) isEntry()           {}
func (StartChar) isEntry()       {}
func (Encoding) isEntry()        {}
func (SWidth) isEntry()          {}
func (DWidth) isEntry()          {}
func (BBX) isEntry()             {}
func (BitmapRows) isEntry()      {}
func (EndChar) isEntry()         {}
func (EndFont) isEntry()         {}
func (Unknown) isEntry()         {}
