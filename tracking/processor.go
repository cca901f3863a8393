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
	"time"

	"github.com/OpenKinetics/body-metrics/loglimiter"
	"github.com/OpenKinetics/body-metrics/skeleton"
)

const minLogInterval = time.Minute

// FrameParser decodes one raw frame packet into the supplied body
// buffer.
type FrameParser func([]byte, []skeleton.Body) error

// SubjectListener is notified as the primary subject comes and goes
// and as fresh metrics are measured.
type SubjectListener interface {
	SubjectDetected()
	SubjectLost()
	MetricsUpdated(m Metrics)
}

// NewSubjectProcessor returns a processor that runs each incoming
// frame through body materialization, primary subject selection and
// metrics estimation, reporting to the listener (which may be nil).
func NewSubjectProcessor(
	parseFrame FrameParser,
	conf *TrackerConfig,
	listener SubjectListener,
	spec SensorSpec,
) *SubjectProcessor {
	return &SubjectProcessor{
		parseFrame:      parseFrame,
		bodyLoop:        NewBodyLoop(spec),
		triggerFrames:   conf.TriggerFrames,
		lostFrames:      conf.LostFrames,
		minUsableJoints: conf.MinUsableJoints,
		includeInferred: conf.IncludeInferred,
		listener:        listener,
		log:             loglimiter.New(minLogInterval),
	}
}

// SubjectProcessor tracks the primary subject across frames. A subject
// is only reported present after triggerFrames consecutive frames with
// a tracked body, and only reported lost after lostFrames consecutive
// frames without one; this keeps single-frame tracking dropouts from
// generating a stream of presence changes.
type SubjectProcessor struct {
	parseFrame      FrameParser
	bodyLoop        *BodyLoop
	triggerFrames   int
	lostFrames      int
	minUsableJoints int
	includeInferred bool
	listener        SubjectListener
	triggered       int
	missing         int
	present         bool
	frameCount      int
	log             *loglimiter.LogLimiter
}

// Process decodes and processes one raw frame packet.
func (sp *SubjectProcessor) Process(rawFrame []byte) error {
	bodies, err := sp.bodyLoop.Bodies(rawBodyFrame{rawFrame, sp.parseFrame})
	if err != nil {
		return err
	}
	sp.ProcessBodies(bodies)
	return nil
}

// ProcessBodies processes one frame's worth of already-materialized
// bodies.
func (sp *SubjectProcessor) ProcessBodies(bodies []skeleton.Body) {
	sp.frameCount++

	subject := Default(bodies)
	if subject == nil {
		sp.triggered = 0
		if !sp.present {
			return
		}
		sp.missing++
		if sp.missing >= sp.lostFrames {
			sp.present = false
			sp.missing = 0
			if sp.listener != nil {
				sp.listener.SubjectLost()
			}
		}
		return
	}
	sp.missing = 0

	if !sp.present {
		sp.triggered++
		if sp.triggered < sp.triggerFrames {
			return
		}
		sp.present = true
		if sp.listener != nil {
			sp.listener.SubjectDetected()
		}
	}

	usable := TrackedJoints(subject, sp.includeInferred)
	if len(usable) < sp.minUsableJoints {
		sp.log.Printf("subject %d: only %d usable joints, metrics withheld",
			subject.TrackingID, len(usable))
		return
	}

	if sp.listener != nil {
		sp.listener.MetricsUpdated(Metrics{
			TrackingID:   subject.TrackingID,
			Height:       Height(subject),
			UpperHeight:  UpperHeight(subject),
			UsableJoints: len(usable),
			Frame:        sp.frameCount,
		})
	}
}

// SubjectPresent reports whether a (debounced) primary subject is
// currently in front of the sensor.
func (sp *SubjectProcessor) SubjectPresent() bool {
	return sp.present
}

// rawBodyFrame adapts a raw packet plus its parser to the Frame
// interface.
type rawBodyFrame struct {
	data  []byte
	parse FrameParser
}

func (f rawBodyFrame) RefreshBodies(dst []skeleton.Body) error {
	return f.parse(f.data, dst)
}
