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

package tracking

import (
	"math"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

// Default returns the tracked body closest to the sensor, judged by
// the magnitude of its spine base position. Untracked bodies are
// skipped. Returns nil when no body is tracked - a normal "no subject
// present" outcome, not an error. Ties go to the first body in
// iteration order.
func Default(bodies []skeleton.Body) *skeleton.Body {
	var closest *skeleton.Body
	minDist := math.MaxFloat64
	for i := range bodies {
		if !bodies[i].IsTracked {
			continue
		}
		dist := bodies[i].Joints[skeleton.SpineBase].Position.Norm()
		if dist < minDist {
			minDist = dist
			closest = &bodies[i]
		}
	}
	return closest
}
