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

import "github.com/golang/geo/r3"

// TrackingState is the sensor's confidence in a joint's position.
type TrackingState int

const (
	// NotTracked means the joint was not seen; its position is
	// meaningless.
	NotTracked TrackingState = iota

	// Inferred means the position was estimated from surrounding
	// joints and carries lower confidence.
	Inferred

	// Tracked means the joint was directly observed.
	Tracked
)

var trackingStateNames = [...]string{"NotTracked", "Inferred", "Tracked"}

func (s TrackingState) String() string {
	if s < NotTracked || s > Tracked {
		return "TrackingState(invalid)"
	}
	return trackingStateNames[s]
}

// Joint is one anatomical landmark for a body in a single frame.
// Position is in meters, relative to the sensor.
type Joint struct {
	Type          JointType
	Position      r3.Vector
	TrackingState TrackingState
}
