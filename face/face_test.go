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

package face

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/bdf"
)

// tinyFace returns a face with two 3x2 glyphs for "a" and "b".
func tinyFace() *basicfont.Face {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 4))
	mask.SetAlpha(0, 0, color.Alpha{A: 0xFF})
	mask.SetAlpha(2, 1, color.Alpha{A: 0xFF})
	mask.SetAlpha(1, 2, color.Alpha{A: 0x7F})
	mask.SetAlpha(1, 3, color.Alpha{A: 0x80})
	return &basicfont.Face{
		Advance: 4,
		Width:   3,
		Height:  2,
		Ascent:  2,
		Descent: 0,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: 'a', High: 'c', Offset: 0},
		},
	}
}

const tinyFaceBDF = `STARTFONT 2.1
FONT -Misc-Fixed-Medium-R-Normal--2-20-72-72-C-40-ISO8859-1
SIZE 2 72 72
FONTBOUNDINGBOX 3 2 0 0
STARTPROPERTIES 15
FOUNDRY "Misc"
FAMILY_NAME "Fixed"
WEIGHT_NAME "Medium"
SLANT "R"
SETWIDTH_NAME "Normal"
PIXEL_SIZE 2
POINT_SIZE 20
RESOLUTION_X 72
RESOLUTION_Y 72
SPACING "C"
AVERAGE_WIDTH 40
CHARSET_REGISTRY "ISO8859"
CHARSET_ENCODING "1"
FONT_ASCENT 2
FONT_DESCENT 0
ENDPROPERTIES
CHARS 2
STARTCHAR a
ENCODING 97
SWIDTH 2000 0
DWIDTH 4 0
BBX 3 2 0 0
BITMAP
80
20
ENDCHAR
STARTCHAR b
ENCODING 98
SWIDTH 2000 0
DWIDTH 4 0
BBX 3 2 0 0
BITMAP
00
40
ENDCHAR
ENDFONT
`

func TestNew(t *testing.T) {
	f, err := New(tinyFace(), []rune("abz"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Check(); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(tinyFaceBDF, buf.String()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestNewOptions(t *testing.T) {
	opt := &Options{
		Foundry:     "Test",
		Family:      "Tiny",
		Weight:      "Bold",
		Resolution:  75,
		PointSize:   10,
		DefaultChar: 'a',
		Version:     "1.2",
	}
	f, err := New(tinyFace(), []rune("ab"), opt)
	if err != nil {
		t.Fatal(err)
	}

	want := "-Test-Tiny-Bold-R-Normal--2-100-75-75-C-40-ISO8859-1"
	if f.Name != want {
		t.Errorf("name: got %q, want %q", f.Name, want)
	}
	if f.Version != "1.2" {
		t.Errorf("version: got %q", f.Version)
	}
	if f.PointSize != 10 || f.XRes != 75 || f.YRes != 75 {
		t.Errorf("size: got %d %d %d", f.PointSize, f.XRes, f.YRes)
	}
	if v := f.Property("DEFAULT_CHAR"); v != bdf.Integer('a') {
		t.Errorf("DEFAULT_CHAR: got %v", v)
	}
	if v := f.Property("FOUNDRY"); v != bdf.String("Test") {
		t.Errorf("FOUNDRY: got %v", v)
	}
	if got := f.Glyphs['a'].SWidth; got != [2]int{384, 0} {
		t.Errorf("SWIDTH: got %v", got)
	}
}

func TestNewNoGlyphs(t *testing.T) {
	_, err := New(tinyFace(), []rune("xyz"), nil)
	if err == nil {
		t.Error("expected an error")
	}
}

// partialFace hides the glyph for "b".
type partialFace struct {
	*basicfont.Face
}

func (f partialFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	if r == 'b' {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	return f.Face.Glyph(dot, r)
}

var _ font.Face = partialFace{}

func TestNewMissingGlyph(t *testing.T) {
	f, err := New(partialFace{tinyFace()}, []rune("ab"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]rune{'a'}, f.Codes()); diff != "" {
		t.Errorf("codes (-want +got):\n%s", diff)
	}
}

func TestFace7x13(t *testing.T) {
	src := basicfont.Face7x13
	runes := BasicRunes(src)
	if len(runes) != 96 {
		t.Fatalf("got %d runes, want 96", len(runes))
	}

	f, err := New(src, runes, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Check(); err != nil {
		t.Fatal(err)
	}

	if len(f.Glyphs) != 96 {
		t.Errorf("got %d glyphs, want 96", len(f.Glyphs))
	}
	want := bdf.BoundingBox{Width: 6, Height: 13, X: 0, Y: -2}
	if f.Bounds != want {
		t.Errorf("font bounds: got %v, want %v", f.Bounds, want)
	}
	wantName := "-Misc-Fixed-Medium-R-Normal--13-130-72-72-C-70-ISO10646-1"
	if f.Name != wantName {
		t.Errorf("name: got %q, want %q", f.Name, wantName)
	}

	g := f.Glyphs['A']
	if g == nil {
		t.Fatal("missing glyph A")
	}
	if g.Name != "A" || g.DWidth != [2]int{7, 0} || g.SWidth != [2]int{538, 0} {
		t.Errorf("glyph A: %q %v %v", g.Name, g.DWidth, g.SWidth)
	}
	if *g.BBox != want {
		t.Errorf("glyph A bounds: got %v, want %v", *g.BBox, want)
	}

	// "A" must have some ink, the space must not
	ink := func(b *bdf.Bitmap) int {
		n := 0
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if b.Get(x, y) {
					n++
				}
			}
		}
		return n
	}
	if ink(g.Bitmap) == 0 {
		t.Error("glyph A is blank")
	}
	if ink(f.Glyphs[' '].Bitmap) != 0 {
		t.Error("space is not blank")
	}
}
