// body-metrics - body measurements from skeletal tracking frames
// Copyright (C) 2021, The OpenKinetics Project
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

package headers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v1"

	"github.com/OpenKinetics/body-metrics/skeleton"
)

// Keys the sensor daemon may send in its handshake header.
const (
	Brand      = "brand"
	Model      = "model"
	FPS        = "fps"
	MaxBodies  = "max-bodies"
	JointCount = "joint-count"
)

// SensorInfo contains the description fields a skeletal sensor daemon
// sends when a frame connection is established.
type SensorInfo struct {
	maxBodies  int
	fps        int
	jointCount int
	brand      string
	model      string
}

// MaxBodies implements tracking.SensorSpec.
func (h *SensorInfo) MaxBodies() int {
	return h.maxBodies
}

// FPS implements tracking.SensorSpec.
func (h *SensorInfo) FPS() int {
	return h.fps
}

// JointCount returns the number of joints the sensor reports per body.
func (h *SensorInfo) JointCount() int {
	return h.jointCount
}

// Brand returns the sensor brand.
func (h *SensorInfo) Brand() string {
	return h.brand
}

// Model returns the sensor model.
func (h *SensorInfo) Model() string {
	return h.model
}

// ReadSensorInfo reads the YAML handshake header from the start of a
// frame connection. The header is terminated by a blank line.
func ReadSensorInfo(reader *bufio.Reader) (*SensorInfo, error) {
	var buf bytes.Buffer
	for {
		line, err := reader.ReadString(byte('\n'))
		if err != nil {
			return nil, err
		}
		if strings.Trim(line, " ") == "\n" {
			break
		}
		buf.WriteString(line)
	}
	h := make(map[string]interface{})
	err := yaml.Unmarshal(buf.Bytes(), &h)
	if err != nil {
		return nil, err
	}

	info := &SensorInfo{
		maxBodies:  toInt(h[MaxBodies]),
		fps:        toInt(h[FPS]),
		jointCount: toInt(h[JointCount]),
		brand:      toStr(h[Brand]),
		model:      toStr(h[Model]),
	}
	if err := info.validate(); err != nil {
		return nil, err
	}
	return info, nil
}

func (h *SensorInfo) validate() error {
	if h.maxBodies <= 0 {
		return errors.New("header did not give a positive max-bodies")
	}
	if h.fps <= 0 {
		return errors.New("header did not give a positive fps")
	}
	if h.jointCount != skeleton.JointTypeCount {
		return fmt.Errorf("sensor reports %d joints per body, need %d",
			h.jointCount, skeleton.JointTypeCount)
	}
	return nil
}

func toInt(v interface{}) int {
	out, ok := v.(int)
	if !ok {
		return 0
	}
	return out
}

func toStr(v interface{}) string {
	out, ok := v.(string)
	if !ok {
		return ""
	}
	return out
}
