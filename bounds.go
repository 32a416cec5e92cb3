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
	"math"

	"seehuhn.de/go/geom/rect"
)

// GlyphBounds returns the bounding box which applies to glyph g.  This is
// the glyph's own BBX if present, and the font bounding box otherwise.
func (f *Font) GlyphBounds(g *Glyph) BoundingBox {
	if g.BBox != nil {
		return *g.BBox
	}
	return f.Bounds
}

// ComputeBounds returns the smallest box enclosing the bounding boxes of
// all glyphs.  Glyphs without a BBX use the size of their bitmap, placed at
// the offset of the current font bounding box.  Empty boxes are ignored.
// If no glyph has a non-empty bounding box, the zero box is returned.
//
// The result can be used as the font bounding box.
func (f *Font) ComputeBounds() BoundingBox {
	var fontBBox rect.Rect
	first := true
	for _, g := range f.Glyphs {
		if g == nil {
			continue
		}
		b := BoundingBox{X: f.Bounds.X, Y: f.Bounds.Y}
		if g.BBox != nil {
			b = *g.BBox
		} else if g.Bitmap != nil {
			b.Width = g.Bitmap.Width()
			b.Height = g.Bitmap.Height()
		}
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		glyphBBox := rect.Rect{
			LLx: float64(b.X),
			LLy: float64(b.Y),
			URx: float64(b.X + b.Width),
			URy: float64(b.Y + b.Height),
		}
		if first {
			fontBBox = glyphBBox
			first = false
		} else {
			fontBBox.Extend(glyphBBox)
		}
	}
	if first {
		return BoundingBox{}
	}

	llx := int(math.Round(fontBBox.LLx))
	lly := int(math.Round(fontBBox.LLy))
	return BoundingBox{
		Width:  int(math.Round(fontBBox.URx)) - llx,
		Height: int(math.Round(fontBBox.URy)) - lly,
		X:      llx,
		Y:      lly,
	}
}
