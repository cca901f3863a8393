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
	"errors"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

type TrackerConfig struct {
	TriggerFrames   int  `yaml:"trigger-frames"`
	LostFrames      int  `yaml:"lost-frames"`
	MinUsableJoints int  `yaml:"min-usable-joints"`
	IncludeInferred bool `yaml:"include-inferred"`
	Verbose         bool `yaml:"verbose"`
}

func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		TriggerFrames:   3,
		LostFrames:      9,
		MinUsableJoints: 6,
		IncludeInferred: true,
	}
}

func (conf *TrackerConfig) Validate() error {
	if conf.TriggerFrames < 1 {
		return errors.New("trigger-frames should be at least 1")
	}
	if conf.LostFrames < 1 {
		return errors.New("lost-frames should be at least 1")
	}
	if conf.MinUsableJoints < 0 || conf.MinUsableJoints > skeleton.JointTypeCount {
		return errors.New("min-usable-joints out of range")
	}
	return nil
}
