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
	"fmt"
	"strings"

	"seehuhn.de/go/bdf/glyphname"
)

// Check reports the first problem which would make the font unreadable
// once written in BDF format.  The returned error, if any, is of type
// [*InvalidFontError].
//
// The writer does not call Check; fonts which fail the check are written
// as given.
func (f *Font) Check() error {
	if f.Format == "" || strings.ContainsAny(f.Format, " \t\r\n") {
		return invalidSince(fmt.Sprintf("invalid format version %q", f.Format))
	}
	if f.Name == "" || hasLineBreak(f.Name) {
		return invalidSince(fmt.Sprintf("invalid font name %q", f.Name))
	}
	if hasLineBreak(f.Version) {
		return invalidSince(fmt.Sprintf("invalid content version %q", f.Version))
	}
	for _, text := range f.Comments {
		if !isQuotable(text) {
			return invalidSince(fmt.Sprintf("invalid comment %q", text))
		}
	}

	seen := make(map[string]bool, len(f.Properties))
	for _, p := range f.Properties {
		if p.Name == "" || strings.ContainsAny(p.Name, " \t\r\n\"") {
			return invalidSince(fmt.Sprintf("invalid property name %q", p.Name))
		}
		if seen[p.Name] {
			return invalidSince("duplicate property " + p.Name)
		}
		seen[p.Name] = true

		switch v := p.Value.(type) {
		case String:
			if !isQuotable(string(v)) {
				return invalidSince(fmt.Sprintf("invalid value %q for property %s", v, p.Name))
			}
		case Integer:
			// pass
		default:
			return invalidSince("missing value for property " + p.Name)
		}
	}

	for _, code := range f.Codes() {
		g := f.Glyphs[code]
		if code < 0 {
			return invalidSince(fmt.Sprintf("invalid code point %d", code))
		}
		if g == nil {
			return invalidSince(fmt.Sprintf("missing glyph for code point %d", code))
		}
		if !glyphname.IsValid(g.Name) {
			return invalidSince(fmt.Sprintf("invalid glyph name %q", g.Name))
		}
		if g.Bitmap == nil {
			return invalidSince("missing bitmap for glyph " + g.Name)
		}
		b := f.GlyphBounds(g)
		if b.Width != g.Bitmap.Width() || b.Height != g.Bitmap.Height() {
			return invalidSince(fmt.Sprintf("glyph %s: %dx%d bitmap does not match %dx%d bounding box",
				g.Name, g.Bitmap.Width(), g.Bitmap.Height(), b.Width, b.Height))
		}
	}

	return nil
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// isQuotable reports whether s can be written between double quotes.
func isQuotable(s string) bool {
	return !strings.ContainsAny(s, "\"\r\n")
}
