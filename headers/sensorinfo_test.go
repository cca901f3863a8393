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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodHeader = `brand: openkinetics
model: sk430
fps: 30
max-bodies: 6
joint-count: 25

`

func TestReadSensorInfo(t *testing.T) {
	info, err := ReadSensorInfo(headerReader(goodHeader))
	require.NoError(t, err)

	assert.Equal(t, "openkinetics", info.Brand())
	assert.Equal(t, "sk430", info.Model())
	assert.Equal(t, 30, info.FPS())
	assert.Equal(t, 6, info.MaxBodies())
	assert.Equal(t, 25, info.JointCount())
}

func TestHeaderFollowedByFrameData(t *testing.T) {
	reader := headerReader(goodHeader + "frame-bytes")

	_, err := ReadSensorInfo(reader)
	require.NoError(t, err)

	// The reader is left positioned at the frame data.
	rest := make([]byte, 11)
	_, err = reader.Read(rest)
	require.NoError(t, err)
	assert.Equal(t, "frame-bytes", string(rest))
}

func TestMissingMaxBodies(t *testing.T) {
	header := `brand: openkinetics
fps: 30
joint-count: 25

`
	_, err := ReadSensorInfo(headerReader(header))
	assert.EqualError(t, err, "header did not give a positive max-bodies")
}

func TestMissingFPS(t *testing.T) {
	header := `max-bodies: 6
joint-count: 25

`
	_, err := ReadSensorInfo(headerReader(header))
	assert.EqualError(t, err, "header did not give a positive fps")
}

func TestJointCountMismatch(t *testing.T) {
	header := `fps: 30
max-bodies: 6
joint-count: 20

`
	_, err := ReadSensorInfo(headerReader(header))
	assert.EqualError(t, err, "sensor reports 20 joints per body, need 25")
}

func TestTruncatedHeader(t *testing.T) {
	header := "fps: 30\nmax-bodies: 6\n"
	_, err := ReadSensorInfo(headerReader(header))
	assert.Error(t, err)
}

func headerReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
