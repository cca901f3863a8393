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
	"github.com/golang/geo/r3"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

// headToSkullTop compensates for the head joint sitting at skull
// centre rather than the crown of the head.
const headToSkullTop = 0.1

var (
	upperBodyChain = []skeleton.JointType{
		skeleton.Head,
		skeleton.Neck,
		skeleton.SpineShoulder,
		skeleton.SpineMid,
		skeleton.SpineBase,
	}
	leftLegChain = []skeleton.JointType{
		skeleton.HipLeft,
		skeleton.KneeLeft,
		skeleton.AnkleLeft,
		skeleton.FootLeft,
	}
	rightLegChain = []skeleton.JointType{
		skeleton.HipRight,
		skeleton.KneeRight,
		skeleton.AnkleRight,
		skeleton.FootRight,
	}
)

// Metrics are the measurements taken from the primary subject for one
// frame.
type Metrics struct {
	TrackingID   uint64
	Height       float64
	UpperHeight  float64
	UsableJoints int
	Frame        int
}

// Height estimates the subject's standing height in meters. Ankles and
// feet are often occluded so the total is built from the upper body
// chain plus whichever leg has more joints in the fully tracked state.
// When the legs tie the right leg is used. Never fails: a body with no
// trackable joints still yields a (degenerate) finite value.
func Height(body *skeleton.Body) float64 {
	leg := rightLegChain
	if numberOfTrackedJoints(chainJoints(body, leftLegChain)) >
		numberOfTrackedJoints(chainJoints(body, rightLegChain)) {
		leg = leftLegChain
	}
	return chainLength(body, upperBodyChain) + chainLength(body, leg) + headToSkullTop
}

// UpperHeight is the head to spine base chain length in meters. It is
// computable whatever state the lower body is in, so it serves as a
// partial metric when leg tracking is poor.
func UpperHeight(body *skeleton.Body) float64 {
	return chainLength(body, upperBodyChain)
}

func chainLength(body *skeleton.Body, chain []skeleton.JointType) float64 {
	points := make([]r3.Vector, len(chain))
	for i, t := range chain {
		points[i] = body.Joints[t].Position
	}
	// The chains used here always hold at least two joints.
	length, _ := skeleton.ChainLength(points)
	return length
}

func chainJoints(body *skeleton.Body, chain []skeleton.JointType) []skeleton.Joint {
	joints := make([]skeleton.Joint, len(chain))
	for i, t := range chain {
		joints[i] = body.Joints[t]
	}
	return joints
}

// numberOfTrackedJoints counts joints in the fully tracked state.
// Inferred joints deliberately don't count: leg selection wants the
// most confident data available.
func numberOfTrackedJoints(joints []skeleton.Joint) int {
	n := 0
	for _, j := range joints {
		if j.TrackingState == skeleton.Tracked {
			n++
		}
	}
	return n
}
