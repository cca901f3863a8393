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

package report

import (
	"log"
	"time"

	"github.com/OpenKinetics/body-metrics/loglimiter"
	"github.com/OpenKinetics/body-metrics/tracking"
)

const errLogInterval = time.Minute

// NewListener adapts a Reporter to the tracking.SubjectListener
// interface. Reporting failures are logged (rate limited, since
// metrics arrive at frame rate) rather than interrupting the frame
// loop.
func NewListener(reporter Reporter) tracking.SubjectListener {
	return &reporterListener{
		reporter: reporter,
		log:      loglimiter.New(errLogInterval),
	}
}

type reporterListener struct {
	reporter Reporter
	log      *loglimiter.LogLimiter
}

func (l *reporterListener) SubjectDetected() {
	log.Print("subject detected")
	if err := l.reporter.ReportSubjectDetected(); err != nil {
		l.log.Printf("subject detected report failed: %v", err)
	}
}

func (l *reporterListener) SubjectLost() {
	log.Print("subject lost")
	if err := l.reporter.ReportSubjectLost(); err != nil {
		l.log.Printf("subject lost report failed: %v", err)
	}
}

func (l *reporterListener) MetricsUpdated(m tracking.Metrics) {
	if err := l.reporter.ReportMetrics(m); err != nil {
		l.log.Printf("metrics report failed: %v", err)
	}
}
