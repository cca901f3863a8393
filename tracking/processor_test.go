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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

type eventListener struct {
	detections int
	losses     int
	metrics    []Metrics
}

func (l *eventListener) SubjectDetected()         { l.detections++ }
func (l *eventListener) SubjectLost()             { l.losses++ }
func (l *eventListener) MetricsUpdated(m Metrics) { l.metrics = append(l.metrics, m) }

func testTrackerConfig() TrackerConfig {
	return TrackerConfig{
		TriggerFrames:   3,
		LostFrames:      2,
		MinUsableJoints: 5,
		IncludeInferred: true,
	}
}

func newTestProcessor(conf TrackerConfig) (*SubjectProcessor, *eventListener) {
	listener := new(eventListener)
	processor := NewSubjectProcessor(nil, &conf, listener, &testSensor{maxBodies: 6, fps: 30})
	return processor, listener
}

func subjectFrame() []skeleton.Body {
	return []skeleton.Body{
		MakeTestBody().Tracked(1).WithUpperBody().WithLeftLeg(skeleton.Tracked).Body(),
	}
}

func emptyFrame() []skeleton.Body {
	return []skeleton.Body{MakeTestBody().Body()}
}

func TestSubjectReportedAfterTriggerFrames(t *testing.T) {
	processor, listener := newTestProcessor(testTrackerConfig())

	processor.ProcessBodies(subjectFrame())
	processor.ProcessBodies(subjectFrame())
	assert.Equal(t, 0, listener.detections)
	assert.False(t, processor.SubjectPresent())

	processor.ProcessBodies(subjectFrame())
	assert.Equal(t, 1, listener.detections)
	assert.True(t, processor.SubjectPresent())
}

func TestDropoutResetsTrigger(t *testing.T) {
	processor, listener := newTestProcessor(testTrackerConfig())

	processor.ProcessBodies(subjectFrame())
	processor.ProcessBodies(subjectFrame())
	processor.ProcessBodies(emptyFrame())
	processor.ProcessBodies(subjectFrame())
	processor.ProcessBodies(subjectFrame())
	assert.Equal(t, 0, listener.detections)

	processor.ProcessBodies(subjectFrame())
	assert.Equal(t, 1, listener.detections)
}

func TestSubjectLostAfterLostFrames(t *testing.T) {
	processor, listener := newTestProcessor(testTrackerConfig())

	for i := 0; i < 3; i++ {
		processor.ProcessBodies(subjectFrame())
	}
	require.True(t, processor.SubjectPresent())

	processor.ProcessBodies(emptyFrame())
	assert.Equal(t, 0, listener.losses)
	assert.True(t, processor.SubjectPresent())

	processor.ProcessBodies(emptyFrame())
	assert.Equal(t, 1, listener.losses)
	assert.False(t, processor.SubjectPresent())
}

func TestSingleFrameDropoutKeepsSubject(t *testing.T) {
	processor, listener := newTestProcessor(testTrackerConfig())

	for i := 0; i < 3; i++ {
		processor.ProcessBodies(subjectFrame())
	}
	processor.ProcessBodies(emptyFrame())
	processor.ProcessBodies(subjectFrame())
	processor.ProcessBodies(emptyFrame())
	processor.ProcessBodies(subjectFrame())

	assert.Equal(t, 0, listener.losses)
	assert.True(t, processor.SubjectPresent())
}

func TestMetricsReportedOncePresent(t *testing.T) {
	processor, listener := newTestProcessor(testTrackerConfig())

	for i := 0; i < 5; i++ {
		processor.ProcessBodies(subjectFrame())
	}

	// Metrics start flowing on the trigger frame.
	require.Len(t, listener.metrics, 3)
	m := listener.metrics[0]
	assert.Equal(t, uint64(1), m.TrackingID)
	assert.Equal(t, 9, m.UsableJoints)
	assert.Equal(t, 3, m.Frame)
	assert.InDelta(t, standardUpper, m.UpperHeight, delta)
	assert.InDelta(t, standardUpper+standardLeg+0.1, m.Height, delta)
}

func TestMetricsWithheldBelowJointThreshold(t *testing.T) {
	conf := testTrackerConfig()
	conf.TriggerFrames = 1
	conf.MinUsableJoints = 10
	processor, listener := newTestProcessor(conf)

	processor.ProcessBodies(subjectFrame()) // 9 usable joints

	assert.Equal(t, 1, listener.detections)
	assert.Empty(t, listener.metrics)
}

func TestStrictJointFilterConfig(t *testing.T) {
	conf := testTrackerConfig()
	conf.TriggerFrames = 1
	conf.IncludeInferred = false
	conf.MinUsableJoints = 6
	processor, listener := newTestProcessor(conf)

	frame := []skeleton.Body{
		MakeTestBody().Tracked(1).WithUpperBody().WithLeftLeg(skeleton.Inferred).Body(),
	}
	processor.ProcessBodies(frame) // only 5 strictly tracked joints

	assert.Equal(t, 1, listener.detections)
	assert.Empty(t, listener.metrics)
}

func TestNilListenerIsSafe(t *testing.T) {
	conf := testTrackerConfig()
	processor := NewSubjectProcessor(nil, &conf, nil, &testSensor{maxBodies: 2, fps: 30})

	for i := 0; i < 4; i++ {
		processor.ProcessBodies(subjectFrame())
	}
	processor.ProcessBodies(emptyFrame())
	processor.ProcessBodies(emptyFrame())
	assert.False(t, processor.SubjectPresent())
}

func TestProcessParsesRawFrames(t *testing.T) {
	conf := testTrackerConfig()
	conf.TriggerFrames = 1

	listener := new(eventListener)
	parse := func(raw []byte, dst []skeleton.Body) error {
		for i := range dst {
			dst[i].Reset()
		}
		if len(raw) > 0 && raw[0] == 's' {
			dst[0] = subjectFrame()[0]
		}
		return nil
	}
	processor := NewSubjectProcessor(parse, &conf, listener, &testSensor{maxBodies: 2, fps: 30})

	require.NoError(t, processor.Process([]byte("s")))
	require.NoError(t, processor.Process([]byte("-")))

	assert.Equal(t, 1, listener.detections)
	assert.Len(t, listener.metrics, 1)
}
