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
	"log"
	"net"
	"os"

	arg "github.com/alexflint/go-arg"

	"github.com/OpenKinetics/body-metrics/headers"
	"github.com/OpenKinetics/body-metrics/report"
	"github.com/OpenKinetics/body-metrics/skeletondController"
	"github.com/OpenKinetics/body-metrics/throttle"
	"github.com/OpenKinetics/body-metrics/tracking"
)

// maxFrameSize caps one frame packet: 6 bodies of 25 joints is well
// under this even with generous JSON encoding.
const maxFrameSize = 64 * 1024

var version = "<not set>"

type Args struct {
	ConfigFile   string `arg:"-c,--config" help:"path to configuration file"`
	PlaybackFile string `arg:"-f,--playback" help:"run a recorded frame file through the pipeline to see what the results are"`
	Timestamps   bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
	Verbose      bool   `arg:"-v,--verbose" help:"make logging more verbose"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/body-metrics.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	logConfig(conf)

	if args.PlaybackFile != "" {
		conf.Tracker.Verbose = args.Verbose
		results, err := NewPlaybackTester(conf).Run(args.PlaybackFile)
		if err != nil {
			return err
		}
		logPlaybackResults(results)
		return nil
	}

	log.Println("starting d-bus service")
	svc, err := startService()
	if err != nil {
		return err
	}

	var reporter report.Reporter = svc
	if conf.Throttler.ApplyThrottling {
		reporter = throttle.NewThrottledReporter(svc, &conf.Throttler, nil)
	}

	if conf.EnsureFullBody {
		// Seated mode leaves legs untracked which would gut height
		// estimation. Failure isn't fatal: the daemon may simply not
		// be up yet.
		if err := skeletondController.SetSeatedMode(false); err != nil {
			log.Printf("unable to disable seated mode: %v", err)
		}
	}

	listener := report.NewListener(reporter)

	for {
		// Set up listener for frames sent by skeletond.
		os.Remove(conf.FrameInput)
		frameListener, err := net.Listen("unixpacket", conf.FrameInput)
		if err != nil {
			return err
		}
		log.Print("waiting for sensor connection")

		conn, err := frameListener.Accept()
		if err != nil {
			log.Printf("socket accept failed: %v", err)
			continue
		}

		// Prevent concurrent connections.
		frameListener.Close()

		err = handleConn(conn, conf, listener)
		log.Printf("sensor connection ended with: %v", err)
	}
}

func handleConn(conn net.Conn, conf *Config, listener tracking.SubjectListener) error {
	reader := bufio.NewReader(conn)
	info, err := headers.ReadSensorInfo(reader)
	if err != nil {
		return err
	}
	log.Printf("connected to %s %s: %d fps, up to %d bodies",
		info.Brand(), info.Model(), info.FPS(), info.MaxBodies())

	frameLogIntervalFirstMin := 15 * info.FPS()
	frameLogInterval := 60 * 5 * info.FPS()

	processor := tracking.NewSubjectProcessor(parseBodyFrame, &conf.Tracker, listener, info)

	rawFrame := make([]byte, maxFrameSize)
	totalFrames := 0

	log.Print("reading frames")
	for {
		n, err := conn.Read(rawFrame)
		if err != nil {
			return err
		}
		totalFrames++

		if totalFrames%frameLogIntervalFirstMin == 0 &&
			totalFrames <= 60*info.FPS() || totalFrames%frameLogInterval == 0 {
			log.Printf("%d frames for this connection", totalFrames)
		}

		if err := processor.Process(rawFrame[:n]); err != nil {
			log.Printf("frame %d not processed: %v", totalFrames, err)
		}
	}
}

func logConfig(conf *Config) {
	log.Printf("frame input: %s", conf.FrameInput)
	log.Printf("ensure full body: %v", conf.EnsureFullBody)
	log.Printf("tracker: %+v", conf.Tracker)
	log.Printf("throttler: %+v", conf.Throttler)
}
