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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

// Wire format for one body frame packet sent by the sensor daemon.
// Joints the daemon omits stay NotTracked.
type frameData struct {
	Bodies []bodyData `json:"bodies"`
}

type bodyData struct {
	ID      uint64      `json:"id"`
	Tracked bool        `json:"tracked"`
	Joints  []jointData `json:"joints"`
}

type jointData struct {
	Type  int     `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	State int     `json:"state"`
}

// parseBodyFrame decodes one frame packet into the reusable body
// buffer. It implements tracking.FrameParser.
func parseBodyFrame(raw []byte, dst []skeleton.Body) error {
	var frame frameData
	if err := json.Unmarshal(raw, &frame); err != nil {
		return err
	}
	if len(frame.Bodies) > len(dst) {
		return fmt.Errorf("frame holds %d bodies but sensor declared a maximum of %d",
			len(frame.Bodies), len(dst))
	}

	for i := range dst {
		dst[i].Reset()
	}
	for i, b := range frame.Bodies {
		dst[i].TrackingID = b.ID
		dst[i].IsTracked = b.Tracked
		for _, j := range b.Joints {
			if j.Type < 0 || j.Type >= skeleton.JointTypeCount {
				return fmt.Errorf("joint type %d out of range", j.Type)
			}
			if j.State < int(skeleton.NotTracked) || j.State > int(skeleton.Tracked) {
				return fmt.Errorf("joint tracking state %d out of range", j.State)
			}
			dst[i].Joints[j.Type] = skeleton.Joint{
				Type:          skeleton.JointType(j.Type),
				Position:      r3.Vector{X: j.X, Y: j.Y, Z: j.Z},
				TrackingState: skeleton.TrackingState(j.State),
			}
		}
	}
	return nil
}
