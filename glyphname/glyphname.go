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

// Package glyphname chooses and checks glyph names for the STARTCHAR lines
// of BDF files.
//
// Generated names follow the Adobe Glyph List conventions, see
// https://github.com/adobe-type-tools/agl-specification .
package glyphname

import "fmt"

const maxAGLNameLength = 31

// FromRune returns a glyph name for the character r.
//
// Printable ASCII characters get their AGL names.  Other characters in the
// Basic Multilingual Plane are named "uniXXXX", characters outside the BMP
// are named "uXXXXX".
func FromRune(r rune) string {
	switch {
	case r >= ' ' && r <= '~':
		return asciiNames[r-' ']
	case r >= 0 && r <= 0xFFFF:
		return fmt.Sprintf("uni%04X", r)
	default:
		return fmt.Sprintf("u%X", uint32(r))
	}
}

// IsValid checks whether s can be used as a glyph name in a BDF file.
// Glyph names must be non-empty and consist of printable ASCII characters
// other than space.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

// IsAGL checks if s is a glyph name which conforms to the Adobe Glyph List
// specification.  Every name returned by [FromRune] for a valid Unicode
// code point satisfies IsAGL.
func IsAGL(s string) bool {
	if s == ".notdef" {
		return true
	}

	if len(s) < 1 || len(s) > maxAGLNameLength {
		return false
	}

	firstChar := s[0]
	if (firstChar >= '0' && firstChar <= '9') || firstChar == '.' {
		return false
	}

	for _, char := range s {
		if !(char >= 'A' && char <= 'Z' || char >= 'a' && char <= 'z' ||
			char >= '0' && char <= '9' || char == '.' || char == '_') {
			return false
		}
	}

	return true
}

var asciiNames = [...]string{
	"space", "exclam", "quotedbl", "numbersign",
	"dollar", "percent", "ampersand", "quotesingle",
	"parenleft", "parenright", "asterisk", "plus",
	"comma", "hyphen", "period", "slash",
	"zero", "one", "two", "three",
	"four", "five", "six", "seven",
	"eight", "nine", "colon", "semicolon",
	"less", "equal", "greater", "question",
	"at", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "bracketleft",
	"backslash", "bracketright", "asciicircum", "underscore",
	"grave", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "braceleft",
	"bar", "braceright", "asciitilde",
}
