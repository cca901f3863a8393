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

package throttle

import (
	"time"

	"github.com/juju/ratelimit"

	"github.com/OpenKinetics/body-metrics/report"
	"github.com/OpenKinetics/body-metrics/tracking"
)

func NewThrottledReporter(
	baseReporter report.Reporter,
	config *ThrottlerConfig,
	listener ThrottledEventListener,
) *ThrottledReporter {
	return NewThrottledReporterWithClock(baseReporter, config, listener, new(realClock))
}

func NewThrottledReporterWithClock(
	baseReporter report.Reporter,
	config *ThrottlerConfig,
	listener ThrottledEventListener,
	clock ratelimit.Clock,
) *ThrottledReporter {
	// The token bucket tracks the number of metric reports available.
	bucket := ratelimit.NewBucketWithRateAndClock(config.MaxPerSecond, config.Burst, clock)

	if listener == nil {
		listener = new(nullListener)
	}

	return &ThrottledReporter{
		reporter: baseReporter,
		listener: listener,
		bucket:   bucket,
	}
}

// ThrottledReporter wraps a reporter so that metric reports are capped
// at a configured rate. The sensor measures at frame rate but
// downstream consumers rarely want 30 height updates a second;
// suppressed reports are simply dropped since the next frame brings a
// fresh measurement anyway. Presence changes are rare and always pass
// through.
type ThrottledReporter struct {
	reporter report.Reporter
	listener ThrottledEventListener
	bucket   *ratelimit.Bucket
}

type ThrottledEventListener interface {
	WhenThrottled()
}

type nullListener struct{}

func (lis *nullListener) WhenThrottled() {}

func (throttler *ThrottledReporter) ReportSubjectDetected() error {
	return throttler.reporter.ReportSubjectDetected()
}

func (throttler *ThrottledReporter) ReportSubjectLost() error {
	return throttler.reporter.ReportSubjectLost()
}

func (throttler *ThrottledReporter) ReportMetrics(m tracking.Metrics) error {
	if throttler.bucket.TakeAvailable(1) == 0 {
		throttler.listener.WhenThrottled()
		return nil
	}
	return throttler.reporter.ReportMetrics(m)
}

// realClock implements ratelimit.Clock in terms of standard time functions.
type realClock struct{}

// Now implements Clock.Now by calling time.Now.
func (realClock) Now() time.Time {
	return time.Now()
}

// Now implements Clock.Sleep by calling time.Sleep.
func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
