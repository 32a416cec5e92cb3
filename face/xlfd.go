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

import "fmt"

// xlfd holds the fields of an X Logical Font Description.
type xlfd struct {
	foundry, family, weight, slant, setwidth string

	pixel, point int
	res          int
	spacing      string
	average      int

	registry, encoding string
}

func (n xlfd) String() string {
	return fmt.Sprintf("-%s-%s-%s-%s-%s--%d-%d-%d-%d-%s-%d-%s-%s",
		n.foundry, n.family, n.weight, n.slant, n.setwidth,
		n.pixel, n.point, n.res, n.res, n.spacing, n.average,
		n.registry, n.encoding)
}
