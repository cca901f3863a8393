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

import "errors"

type ThrottlerConfig struct {
	ApplyThrottling bool    `yaml:"apply-throttling"`
	MaxPerSecond    float64 `yaml:"max-per-second"`
	Burst           int64   `yaml:"burst"`
}

func DefaultThrottlerConfig() ThrottlerConfig {
	return ThrottlerConfig{
		ApplyThrottling: true,
		MaxPerSecond:    2,
		Burst:           6,
	}
}

func (conf *ThrottlerConfig) Validate() error {
	if conf.MaxPerSecond <= 0 {
		return errors.New("max-per-second should be positive")
	}
	if conf.Burst < 1 {
		return errors.New("burst should be at least 1")
	}
	return nil
}
