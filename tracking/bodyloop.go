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

// SensorSpec describes the capabilities a frame source declares when a
// session starts.
type SensorSpec interface {
	// MaxBodies is the number of bodies the sensor can report
	// simultaneously.
	MaxBodies() int

	// FPS is the sensor's nominal frame rate.
	FPS() int
}

// Frame is one sensor snapshot. RefreshBodies fills dst with the
// frame's bodies; dst must hold MaxBodies entries.
type Frame interface {
	RefreshBodies(dst []skeleton.Body) error
}

// NewBodyLoop returns a BodyLoop with its buffer sized to the sensor's
// maximum simultaneous body count. Create one per frame-processing
// session and reuse it for every frame.
func NewBodyLoop(spec SensorSpec) *BodyLoop {
	bodies := make([]skeleton.Body, spec.MaxBodies())
	for i := range bodies {
		bodies[i] = skeleton.NewBody()
	}
	return &BodyLoop{bodies: bodies}
}

// BodyLoop owns the reusable per-frame body buffer. Each call to
// Bodies overwrites the previous call's contents, so callers must not
// hold on to the returned slice across frames. Not safe for
// concurrent use.
type BodyLoop struct {
	bodies []skeleton.Body
}

// Bodies refreshes the buffer in place from the given frame and
// returns it. Note: data in the returned slice is overwritten by the
// next call.
func (bl *BodyLoop) Bodies(frame Frame) ([]skeleton.Body, error) {
	if err := frame.RefreshBodies(bl.bodies); err != nil {
		return nil, err
	}
	return bl.bodies, nil
}
