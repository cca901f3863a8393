// body-metrics - body measurements from skeletal tracking frames
//  Copyright (C) 2021, The OpenKinetics Project
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
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package skeleton

import (
	"errors"

	"github.com/golang/geo/r3"
)

// ErrShortChain is returned when a chain length is requested for
// fewer than two points.
var ErrShortChain = errors.New("chain requires at least two points")

// ChainLength sums the Euclidean distances between consecutive points.
// Anatomical chains are order significant so the points must be given
// in chain order.
func ChainLength(points []r3.Vector) (float64, error) {
	if len(points) < 2 {
		return 0, ErrShortChain
	}
	var length float64
	for i := 1; i < len(points); i++ {
		length += points[i].Distance(points[i-1])
	}
	return length, nil
}
