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

// Bitmap is a rectangular grid of pixels.  The origin is at the top left,
// rows are stored top to bottom.
type Bitmap struct {
	width, height int
	pix           []bool
}

// NewBitmap allocates a blank bitmap of the given size.
// Negative sizes are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Bitmap) Height() int {
	return b.height
}

// Get reports whether the pixel at column x and row y is set.
// Pixels outside the bitmap are unset.
func (b *Bitmap) Get(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	return b.pix[y*b.width+x]
}

// Set changes the pixel at column x and row y.
// Writes outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, v bool) {
	if !b.inside(x, y) {
		return
	}
	b.pix[y*b.width+x] = v
}

func (b *Bitmap) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
