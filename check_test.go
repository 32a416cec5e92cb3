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
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	if err := testFont().Check(); err != nil {
		t.Fatalf("valid font: %v", err)
	}

	cases := []struct {
		name   string
		modify func(f *Font)
	}{
		{"no format", func(f *Font) { f.Format = "" }},
		{"no name", func(f *Font) { f.Name = "" }},
		{"name with newline", func(f *Font) { f.Name = "a\nb" }},
		{"version with newline", func(f *Font) { f.Version = "1\n" }},
		{"quote in comment", func(f *Font) { f.Comments = []string{`say "hi"`} }},
		{"quote in property", func(f *Font) { f.SetProperty("COPYRIGHT", String(`"x"`)) }},
		{"empty property name", func(f *Font) { f.SetProperty("", Integer(1)) }},
		{"space in property name", func(f *Font) { f.SetProperty("A B", Integer(1)) }},
		{"missing property value", func(f *Font) { f.SetProperty("X", nil) }},
		{"duplicate property", func(f *Font) {
			f.Properties = append(f.Properties, Property{Name: "FOUNDRY", Value: String("x")})
		}},
		{"negative code", func(f *Font) { f.Glyphs[-1] = f.Glyphs['A'] }},
		{"nil glyph", func(f *Font) { f.Glyphs['B'] = nil }},
		{"bad glyph name", func(f *Font) { f.Glyphs['A'].Name = "capital A" }},
		{"missing bitmap", func(f *Font) { f.Glyphs['A'].Bitmap = nil }},
		{"bitmap size", func(f *Font) { f.Glyphs['A'].Bitmap = NewBitmap(5, 11) }},
		{"font bbox size", func(f *Font) { f.Bounds.Height = 12 }},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			f := testFont()
			test.modify(f)

			err := f.Check()
			var fontErr *InvalidFontError
			if !errors.As(err, &fontErr) {
				t.Fatalf("got error %v, want *InvalidFontError", err)
			}
		})
	}
}
