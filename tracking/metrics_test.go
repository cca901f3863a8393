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
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

const (
	// Chain lengths of the TestBodyMaker standard figure.
	standardUpper = 1.3
	standardLeg   = 0.25 + 0.2 + 0.11180339887498948 // hip-knee + knee-ankle + ankle-foot

	delta = 1e-9
)

func TestUpperHeight(t *testing.T) {
	body := MakeTestBody().Tracked(1).WithUpperBody().Body()
	assert.InDelta(t, standardUpper, UpperHeight(&body), delta)
}

func TestHeightUsesLegWithMoreTrackedJoints(t *testing.T) {
	body := MakeTestBody().Tracked(1).
		WithUpperBody().
		WithLeftLeg(skeleton.Tracked).
		Body() // right leg NotTracked at origin

	assert.InDelta(t, standardUpper+standardLeg+0.1, Height(&body), delta)
}

func TestHeightTieGoesToRightLeg(t *testing.T) {
	// Both legs fully tracked, but the right leg made longer; the
	// deterministic tie-break should pick it up.
	body := MakeTestBody().Tracked(1).
		WithUpperBody().
		WithLeftLeg(skeleton.Tracked).
		WithRightLeg(skeleton.Tracked).
		WithJoint(skeleton.FootRight, r3.Vector{X: -0.2, Y: 0, Z: 0}, skeleton.Tracked).
		Body()

	longerAnkleToFoot := math.Sqrt(0.2*0.2 + 0.05*0.05)
	want := standardUpper + 0.25 + 0.2 + longerAnkleToFoot + 0.1
	assert.InDelta(t, want, Height(&body), delta)
}

func TestHeightSymmetricForMirroredLegs(t *testing.T) {
	both := MakeTestBody().Tracked(1).
		WithUpperBody().
		WithLeftLeg(skeleton.Tracked).
		WithRightLeg(skeleton.Tracked).
		Body()
	leftOnly := MakeTestBody().Tracked(1).
		WithUpperBody().
		WithLeftLeg(skeleton.Tracked).
		Body()

	// Mirrored geometry: whichever leg is chosen, the height matches.
	assert.InDelta(t, Height(&leftOnly), Height(&both), delta)
}

func TestInferredLegJointsDontWinLegSelection(t *testing.T) {
	// Left leg has 3 tracked joints; right has 2 tracked + 2 inferred.
	// The left leg must win even though the right has more "usable"
	// joints overall.
	body := MakeTestBody().Tracked(1).
		WithUpperBody().
		WithLeftLeg(skeleton.Tracked).
		WithJoint(skeleton.FootLeft, r3.Vector{X: 0.1, Y: 0, Z: 0}, skeleton.NotTracked).
		WithRightLeg(skeleton.Inferred).
		WithJoint(skeleton.HipRight, r3.Vector{X: 0, Y: 0.5, Z: 0}, skeleton.Tracked).
		WithJoint(skeleton.KneeRight, r3.Vector{X: 0, Y: 0.25, Z: 0}, skeleton.Tracked).
		Body()

	// Left leg chain still includes the NotTracked foot position.
	assert.InDelta(t, standardUpper+standardLeg+0.1, Height(&body), delta)
}

func TestHeightNeverErrorsOnDegenerateBody(t *testing.T) {
	// Everything NotTracked except a spine base at the origin.
	body := MakeTestBody().Tracked(1).
		WithJoint(skeleton.SpineBase, r3.Vector{}, skeleton.Tracked).
		Body()

	h := Height(&body)
	assert.False(t, math.IsNaN(h))
	assert.False(t, math.IsInf(h, 0))
	assert.True(t, h >= 0)
}

func TestHeightAtLeastUpperHeight(t *testing.T) {
	bodies := []skeleton.Body{
		MakeTestBody().Tracked(1).WithUpperBody().WithLeftLeg(skeleton.Tracked).Body(),
		MakeTestBody().Tracked(2).WithUpperBody().WithRightLeg(skeleton.Inferred).Body(),
		MakeTestBody().Tracked(3).WithUpperBody().Body(),
	}
	for _, body := range bodies {
		assert.True(t, Height(&body) >= UpperHeight(&body))
	}
}

func TestNumberOfTrackedJointsIsStrict(t *testing.T) {
	body := MakeTestBody().Tracked(1).
		WithLeftLeg(skeleton.Tracked).
		WithJoint(skeleton.FootLeft, r3.Vector{X: 0.1, Y: 0, Z: 0}, skeleton.Inferred).
		Body()

	joints := chainJoints(&body, leftLegChain)
	assert.Equal(t, 3, numberOfTrackedJoints(joints))
}
