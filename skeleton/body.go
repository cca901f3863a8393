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

// Body is one detected human subject in a single frame. The joint
// array always holds the full joint set, indexed by JointType; a
// joint that wasn't seen is present with state NotTracked rather than
// missing. IsTracked is false for stale or placeholder body slots.
type Body struct {
	TrackingID uint64
	IsTracked  bool
	Joints     [JointTypeCount]Joint
}

// NewBody returns an untracked body with every joint present and
// typed.
func NewBody() Body {
	var b Body
	for i := range b.Joints {
		b.Joints[i].Type = JointType(i)
	}
	return b
}

// Joint returns the body's joint of the given type.
func (b *Body) Joint(t JointType) Joint {
	return b.Joints[t]
}

// Reset returns the body to an untracked state, keeping the joint
// types in place so the slot can be refilled from the next frame.
func (b *Body) Reset() {
	b.TrackingID = 0
	b.IsTracked = false
	for i := range b.Joints {
		b.Joints[i] = Joint{Type: JointType(i)}
	}
}
