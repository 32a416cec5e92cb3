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

// Package bdf writes bitmap fonts in the Glyph Bitmap Distribution Format
// (BDF), version 2.1 and 2.2.
//
// A font is written by walking a [Font] and passing one [Entry] per
// BDF line to a [Writer].  Most callers only need [Font.Write] or
// [Font.WriteFile].
//
// See https://adobe-type-tools.github.io/font-tech-notes/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"golang.org/x/exp/slices"
)

// Font is a bitmap font.
//
// The writer only reads the font.  No validation is performed when a
// font is written; use [Font.Check] to find problems beforehand.
type Font struct {
	// Format is the BDF version written in the STARTFONT line,
	// normally "2.1".
	Format string

	// Name is the font name, normally an XLFD name.
	Name string

	// Version is the optional CONTENTVERSION.  The line is omitted
	// if Version is empty.
	Version string

	// Comments are written as COMMENT lines directly after STARTFONT.
	Comments []string

	// PointSize is the point size of the font.  XRes and YRes give the
	// resolution of the target device in dots per inch.
	PointSize  int
	XRes, YRes int

	// Bounds is the font bounding box.
	Bounds BoundingBox

	// Properties are written in slice order.
	Properties []Property

	Glyphs map[rune]*Glyph
}

// Glyph is a single character of a bitmap font.
type Glyph struct {
	Name string

	// SWidth is the scalable width in units of 1/1000 of the point size.
	SWidth [2]int

	// DWidth is the device width in pixels.
	DWidth [2]int

	// BBox, if not nil, overrides the font bounding box for this glyph.
	BBox *BoundingBox

	Bitmap *Bitmap
}

// BoundingBox describes the size and placement of a bitmap.  X and Y give
// the offset of the lower left corner from the origin.
type BoundingBox struct {
	Width, Height int
	X, Y          int
}

// PropertyValue is the value of a font property.
// This is either a [String] or an [Integer].
type PropertyValue interface {
	isPropertyValue()
}

// String is a string-valued property.  The value is written in double
// quotes, without escaping.
type String string

// Integer is an integer-valued property.
type Integer int

func (String) isPropertyValue()  {}
func (Integer) isPropertyValue() {}

// Property returns the value of the named property, or nil if the font has
// no such property.
func (f *Font) Property(name string) PropertyValue {
	for _, p := range f.Properties {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

// SetProperty sets the value of a property.  An existing property keeps its
// position, new properties are appended.
func (f *Font) SetProperty(name string, value PropertyValue) {
	for i := range f.Properties {
		if f.Properties[i].Name == name {
			f.Properties[i].Value = value
			return
		}
	}
	f.Properties = append(f.Properties, Property{Name: name, Value: value})
}

// Codes returns the code points of all glyphs, in increasing order.
// This is the order in which glyphs are written.
func (f *Font) Codes() []rune {
	codes := make([]rune, 0, len(f.Glyphs))
	for r := range f.Glyphs {
		codes = append(codes, r)
	}
	slices.Sort(codes)
	return codes
}
