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
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/OpenKinetics/body-metrics/throttle"
	"github.com/OpenKinetics/body-metrics/tracking"
)

type Config struct {
	FrameInput     string                   `yaml:"frame-input"`
	EnsureFullBody bool                     `yaml:"ensure-full-body"`
	Tracker        tracking.TrackerConfig   `yaml:"tracker"`
	Throttler      throttle.ThrottlerConfig `yaml:"throttler"`
}

func (conf *Config) Validate() error {
	if err := conf.Tracker.Validate(); err != nil {
		return err
	}
	if err := conf.Throttler.Validate(); err != nil {
		return err
	}
	return nil
}

var defaultConfig = Config{
	FrameInput:     "/var/run/skeleton-frames",
	EnsureFullBody: true,
	Tracker:        tracking.DefaultTrackerConfig(),
	Throttler:      throttle.DefaultThrottlerConfig(),
}

func ParseConfigFile(filename string) (*Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
