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
	"errors"
	"sync"

	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"

	"github.com/OpenKinetics/body-metrics/tracking"
)

const (
	dbusName = "org.openkinetics.bodymetrics"
	dbusPath = "/org/openkinetics/bodymetrics"
)

type service struct {
	mu      sync.Mutex
	conn    *dbus.Conn
	latest  tracking.Metrics
	present bool
}

func startService() (*service, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return nil, err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return nil, errors.New("name already taken")
	}

	s := &service{conn: conn}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")

	return s, nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

// SubjectPresent reports whether a primary subject is currently in
// front of the sensor.
func (s *service) SubjectPresent() (bool, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present, nil
}

// LatestMetrics returns the most recent height and upper body height
// measurements (meters) and the subject's tracking id.
func (s *service) LatestMetrics() (float64, float64, uint64, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return 0, 0, 0, &dbus.Error{
			Name: dbusName + ".LatestMetrics",
			Body: []interface{}{"no subject present"},
		}
	}
	return s.latest.Height, s.latest.UpperHeight, s.latest.TrackingID, nil
}

// ReportSubjectDetected implements report.Reporter.
func (s *service) ReportSubjectDetected() error {
	s.mu.Lock()
	s.present = true
	s.mu.Unlock()
	return s.conn.Emit(dbusPath, dbusName+".SubjectDetected")
}

// ReportSubjectLost implements report.Reporter.
func (s *service) ReportSubjectLost() error {
	s.mu.Lock()
	s.present = false
	s.latest = tracking.Metrics{}
	s.mu.Unlock()
	return s.conn.Emit(dbusPath, dbusName+".SubjectLost")
}

// ReportMetrics implements report.Reporter.
func (s *service) ReportMetrics(m tracking.Metrics) error {
	s.mu.Lock()
	s.latest = m
	s.mu.Unlock()
	return s.conn.Emit(dbusPath, dbusName+".MetricsUpdated",
		m.TrackingID, m.Height, m.UpperHeight, int32(m.UsableJoints))
}
