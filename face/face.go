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

// Package face converts rasterized glyphs of a [font.Face] into a bitmap font.
package face

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/glyphname"
)

// Options control the conversion of a font face.
// The zero value gives a "Misc Fixed Medium" font at 72 dpi.
type Options struct {
	// These fields are used for the XLFD font name and the corresponding
	// font properties.
	Foundry  string // default "Misc"
	Family   string // default "Fixed"
	Weight   string // default "Medium"
	Slant    string // default "R"
	Setwidth string // default "Normal"

	// Resolution is the device resolution in dots per inch.
	// The default is 72.
	Resolution int

	// PointSize is the size of the font in points.  The default is
	// computed from the pixel size and the resolution.
	PointSize int

	// DefaultChar, if non-zero, is written as the DEFAULT_CHAR property.
	DefaultChar rune

	// Version, if set, is written as the CONTENTVERSION.
	Version string
}

// alphaThreshold is the minimum mask alpha for a pixel to be set.
const alphaThreshold = 0x8000

// New converts the glyphs for the given runes into a bitmap font.
// Runes for which src has no glyph are skipped.
func New(src font.Face, runes []rune, opt *Options) (*bdf.Font, error) {
	if opt == nil {
		opt = &Options{}
	}

	m := src.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	pixelSize := ascent + descent
	if pixelSize <= 0 {
		return nil, fmt.Errorf("face: invalid pixel size %d", pixelSize)
	}

	res := opt.Resolution
	if res <= 0 {
		res = 72
	}
	pointSize := opt.PointSize
	if pointSize <= 0 {
		pointSize = max(int(math.Round(float64(pixelSize*72)/float64(res))), 1)
	}

	glyphs := make(map[rune]*bdf.Glyph, len(runes))
	for _, r := range runes {
		if _, seen := glyphs[r]; seen {
			continue
		}
		dr, mask, maskp, advance, ok := src.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		bitmap := bdf.NewBitmap(dr.Dx(), dr.Dy())
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
				bitmap.Set(x, y, a >= alphaThreshold)
			}
		}

		dWidth := advance.Round()
		glyphs[r] = &bdf.Glyph{
			Name:   glyphname.FromRune(r),
			SWidth: [2]int{scalableWidth(dWidth, pointSize, res), 0},
			DWidth: [2]int{dWidth, 0},
			BBox: &bdf.BoundingBox{
				Width:  dr.Dx(),
				Height: dr.Dy(),
				X:      dr.Min.X,
				Y:      -dr.Max.Y,
			},
			Bitmap: bitmap,
		}
	}
	if len(glyphs) == 0 {
		return nil, errors.New("face: no glyphs")
	}

	f := &bdf.Font{
		Format:    "2.1",
		Version:   opt.Version,
		PointSize: pointSize,
		XRes:      res,
		YRes:      res,
		Glyphs:    glyphs,
	}
	f.Bounds = f.ComputeBounds()

	name := xlfd{
		foundry:  orDefault(opt.Foundry, "Misc"),
		family:   orDefault(opt.Family, "Fixed"),
		weight:   orDefault(opt.Weight, "Medium"),
		slant:    orDefault(opt.Slant, "R"),
		setwidth: orDefault(opt.Setwidth, "Normal"),
		pixel:    pixelSize,
		point:    10 * pointSize,
		res:      res,
		spacing:  spacing(glyphs),
		average:  averageWidth(glyphs),
	}
	name.registry, name.encoding = charset(glyphs)
	f.Name = name.String()

	f.Properties = []bdf.Property{
		{Name: "FOUNDRY", Value: bdf.String(name.foundry)},
		{Name: "FAMILY_NAME", Value: bdf.String(name.family)},
		{Name: "WEIGHT_NAME", Value: bdf.String(name.weight)},
		{Name: "SLANT", Value: bdf.String(name.slant)},
		{Name: "SETWIDTH_NAME", Value: bdf.String(name.setwidth)},
		{Name: "PIXEL_SIZE", Value: bdf.Integer(name.pixel)},
		{Name: "POINT_SIZE", Value: bdf.Integer(name.point)},
		{Name: "RESOLUTION_X", Value: bdf.Integer(res)},
		{Name: "RESOLUTION_Y", Value: bdf.Integer(res)},
		{Name: "SPACING", Value: bdf.String(name.spacing)},
		{Name: "AVERAGE_WIDTH", Value: bdf.Integer(name.average)},
		{Name: "CHARSET_REGISTRY", Value: bdf.String(name.registry)},
		{Name: "CHARSET_ENCODING", Value: bdf.String(name.encoding)},
		{Name: "FONT_ASCENT", Value: bdf.Integer(ascent)},
		{Name: "FONT_DESCENT", Value: bdf.Integer(descent)},
	}
	if opt.DefaultChar != 0 && glyphs[opt.DefaultChar] != nil {
		f.SetProperty("DEFAULT_CHAR", bdf.Integer(opt.DefaultChar))
	}

	return f, nil
}

// BasicRunes returns all runes covered by the ranges of f.
func BasicRunes(f *basicfont.Face) []rune {
	var res []rune
	for _, rng := range f.Ranges {
		for r := rng.Low; r < rng.High; r++ {
			res = append(res, r)
		}
	}
	return res
}

// scalableWidth converts a device width in pixels into units of 1/1000 of
// the point size.
func scalableWidth(dWidth, pointSize, res int) int {
	return int(math.Round(float64(dWidth) * 1000 * 72 / float64(pointSize*res)))
}

// spacing returns the XLFD spacing: "C" (character cell) if all glyphs
// have the same advance and fit into the cell, "P" (proportional)
// otherwise.
func spacing(glyphs map[rune]*bdf.Glyph) string {
	width := -1
	for _, g := range glyphs {
		if width < 0 {
			width = g.DWidth[0]
		}
		if g.DWidth[0] != width || g.BBox.X < 0 || g.BBox.X+g.BBox.Width > width {
			return "P"
		}
	}
	return "C"
}

// averageWidth returns the mean device width in tenths of a pixel.
func averageWidth(glyphs map[rune]*bdf.Glyph) int {
	total := 0
	for _, g := range glyphs {
		total += g.DWidth[0]
	}
	return int(math.Round(10 * float64(total) / float64(len(glyphs))))
}

// charset returns the XLFD registry and encoding.  Fonts which only
// contain Latin-1 characters are marked as ISO8859-1, all others as
// ISO10646-1.
func charset(glyphs map[rune]*bdf.Glyph) (registry, encoding string) {
	for r := range glyphs {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return "ISO10646", "1"
		}
	}
	return "ISO8859", "1"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
