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
	"github.com/OpenKinetics/body-metrics/tracking"
)

// Reporter is a sink for subject presence changes and per-frame
// metrics. Implementations publish to downstream consumers (D-Bus,
// logs, test capture).
type Reporter interface {
	ReportSubjectDetected() error
	ReportSubjectLost() error
	ReportMetrics(m tracking.Metrics) error
}

// NullReporter drops everything.
type NullReporter struct{}

func (*NullReporter) ReportSubjectDetected() error         { return nil }
func (*NullReporter) ReportSubjectLost() error             { return nil }
func (*NullReporter) ReportMetrics(tracking.Metrics) error { return nil }
