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

// TestBodyMaker builds bodies with known geometry for tests. The
// standard figure it produces has a 1.3 m upper body chain and legs
// of ~0.562 m, mirrored left/right.
type TestBodyMaker struct {
	body skeleton.Body
}

func MakeTestBody() *TestBodyMaker {
	return &TestBodyMaker{body: skeleton.NewBody()}
}

func (bm *TestBodyMaker) Tracked(id uint64) *TestBodyMaker {
	bm.body.TrackingID = id
	bm.body.IsTracked = true
	return bm
}

func (bm *TestBodyMaker) WithJoint(t skeleton.JointType, pos r3.Vector, state skeleton.TrackingState) *TestBodyMaker {
	bm.body.Joints[t] = skeleton.Joint{Type: t, Position: pos, TrackingState: state}
	return bm
}

// WithUpperBody sets the head to spine base chain to the standard
// upright figure, all fully tracked.
func (bm *TestBodyMaker) WithUpperBody() *TestBodyMaker {
	return bm.
		WithJoint(skeleton.Head, r3.Vector{X: 0, Y: 1.8, Z: 0}, skeleton.Tracked).
		WithJoint(skeleton.Neck, r3.Vector{X: 0, Y: 1.6, Z: 0}, skeleton.Tracked).
		WithJoint(skeleton.SpineShoulder, r3.Vector{X: 0, Y: 1.4, Z: 0}, skeleton.Tracked).
		WithJoint(skeleton.SpineMid, r3.Vector{X: 0, Y: 1.0, Z: 0}, skeleton.Tracked).
		WithJoint(skeleton.SpineBase, r3.Vector{X: 0, Y: 0.5, Z: 0}, skeleton.Tracked)
}

// WithLeftLeg sets the standard left leg geometry with every chain
// joint in the given state.
func (bm *TestBodyMaker) WithLeftLeg(state skeleton.TrackingState) *TestBodyMaker {
	return bm.
		WithJoint(skeleton.HipLeft, r3.Vector{X: 0, Y: 0.5, Z: 0}, state).
		WithJoint(skeleton.KneeLeft, r3.Vector{X: 0, Y: 0.25, Z: 0}, state).
		WithJoint(skeleton.AnkleLeft, r3.Vector{X: 0, Y: 0.05, Z: 0}, state).
		WithJoint(skeleton.FootLeft, r3.Vector{X: 0.1, Y: 0, Z: 0}, state)
}

// WithRightLeg mirrors WithLeftLeg across the body's centre plane.
func (bm *TestBodyMaker) WithRightLeg(state skeleton.TrackingState) *TestBodyMaker {
	return bm.
		WithJoint(skeleton.HipRight, r3.Vector{X: 0, Y: 0.5, Z: 0}, state).
		WithJoint(skeleton.KneeRight, r3.Vector{X: 0, Y: 0.25, Z: 0}, state).
		WithJoint(skeleton.AnkleRight, r3.Vector{X: 0, Y: 0.05, Z: 0}, state).
		WithJoint(skeleton.FootRight, r3.Vector{X: -0.1, Y: 0, Z: 0}, state)
}

// AtDistance shifts the whole body along the sensor's z axis.
func (bm *TestBodyMaker) AtDistance(z float64) *TestBodyMaker {
	for i := range bm.body.Joints {
		bm.body.Joints[i].Position.Z += z
	}
	return bm
}

func (bm *TestBodyMaker) Body() skeleton.Body {
	return bm.body
}
