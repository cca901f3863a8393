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
	"bufio"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/OpenKinetics/body-metrics/headers"
	"github.com/OpenKinetics/body-metrics/tracking"
)

// NewPlaybackTester returns a tester which runs recorded body frame
// files through the same pipeline live frames take. A recording starts
// with the usual sensor header block and carries one JSON frame per
// line.
func NewPlaybackTester(conf *Config) *PlaybackTester {
	return &PlaybackTester{config: conf}
}

type PlaybackTester struct {
	config *Config
}

// PlaybackResults collects the pipeline events for one recording. It
// doubles as the processor's SubjectListener.
type PlaybackResults struct {
	FrameCount int
	Detections int
	Losses     int
	Heights    []float64
	verbose    bool
}

func (r *PlaybackResults) SubjectDetected() {
	if r.verbose {
		log.Printf("%d: subject detected", r.FrameCount)
	}
	r.Detections++
}

func (r *PlaybackResults) SubjectLost() {
	if r.verbose {
		log.Printf("%d: subject lost", r.FrameCount)
	}
	r.Losses++
}

func (r *PlaybackResults) MetricsUpdated(m tracking.Metrics) {
	if r.verbose {
		log.Printf("%d: subject %d height %.3f m (upper %.3f m, %d joints)",
			r.FrameCount, m.TrackingID, m.Height, m.UpperHeight, m.UsableJoints)
	}
	r.Heights = append(r.Heights, m.Height)
}

func (pt *PlaybackTester) Run(filename string) (*PlaybackResults, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	info, err := headers.ReadSensorInfo(reader)
	if err != nil {
		return nil, fmt.Errorf("reading recording header: %v", err)
	}

	results := &PlaybackResults{verbose: pt.config.Tracker.Verbose}
	processor := tracking.NewSubjectProcessor(parseBodyFrame, &pt.config.Tracker, results, info)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, maxFrameSize), maxFrameSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		results.FrameCount++
		if err := processor.Process(line); err != nil {
			return nil, fmt.Errorf("frame %d: %v", results.FrameCount, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func logPlaybackResults(results *PlaybackResults) {
	log.Printf("Frames: %-6d Detections: %-4d Losses: %-4d Measurements: %d",
		results.FrameCount, results.Detections, results.Losses, len(results.Heights))
	switch n := len(results.Heights); {
	case n == 1:
		log.Printf("Height: %.3f m", results.Heights[0])
	case n > 1:
		mean, std := stat.MeanStdDev(results.Heights, nil)
		log.Printf("Height: mean %.3f m, stddev %.3f m", mean, std)
	}
}
