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
	"github.com/OpenKinetics/body-metrics/skeleton"
)

// TrackedJoints returns a fresh slice of the body's joints usable for
// downstream geometry, in joint array order. NotTracked joints are
// always excluded. Inferred joints are included unless includeInferred
// is false; pass false when only high confidence data will do.
func TrackedJoints(body *skeleton.Body, includeInferred bool) []skeleton.Joint {
	joints := make([]skeleton.Joint, 0, len(body.Joints))
	for _, j := range body.Joints {
		switch j.TrackingState {
		case skeleton.Tracked:
			joints = append(joints, j)
		case skeleton.Inferred:
			if includeInferred {
				joints = append(joints, j)
			}
		}
	}
	return joints
}
